package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Error taxonomy. Every failure is terminal for the run; these classify the
// one-line message the user sees.
var (
	errConfig     = errors.New("configuration error")
	errParse      = errors.New("parse error")
	errGeneration = errors.New("generation error")
	errWrite      = errors.New("write error")
)

// --- Main Logic ---

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	args, err := parseArguments()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	// The credential is read once here and handed to the client; nothing
	// downstream touches the environment.
	client, err := newGeminiClient(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	outPath, err := run(context.Background(), args, client)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("Output saved to %q\n", outPath)
}

// run executes the whole pipeline: parse the track, derive statistics, render
// the map concurrently with the journal and image generation, then assemble
// the document. The two branches share nothing and join before assembly.
func run(ctx context.Context, args *Arguments, gen Generator) (string, error) {
	track, err := parseGpx(args.GpxFile)
	if err != nil {
		return "", err
	}
	stats := computeStats(track)

	var (
		wg     sync.WaitGroup
		mapPNG []byte
		mapErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		mapPNG, mapErr = renderMap(track, stats, args)
	}()

	journal, err := gen.GenerateText(ctx, journalPrompt(track.routeText(), stats, args.Options))
	if err != nil {
		wg.Wait()
		return "", err
	}

	// The image prompt derives from the generated journal entry, so the
	// image call waits on the text call but not on the map render.
	image, err := gen.GenerateImage(ctx, imagePrompt(journal))
	if err != nil {
		wg.Wait()
		return "", err
	}

	wg.Wait()
	if mapErr != nil {
		return "", mapErr
	}

	return writeDocument(args.OutputDir, mapPNG, journal, image)
}
