package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
)

// --- Structs ---

type Options struct {
	Tone   string
	Focus  string
	Length string
}

type Arguments struct {
	GpxFile   string
	OutputDir string
	MapStyle  string
	MapSize   int
	PathWidth float64
	PathColor color.Color
	Options   Options
}

var (
	tones   = []string{"fun", "serious", "neutral", "poetic", "technical", "cringe"}
	focuses = []string{"landmarks", "parks", "bodies_of_water", "distance", "time", "weather", "playgrounds", "restaurants", "colors"}
	lengths = []string{"short", "medium", "detailed"}
)

// --- Argument Parsing ---

func parseArguments() (*Arguments, error) {
	args := &Arguments{}
	var toneStr, focusStr, lengthStr, pathColorStr string

	flag.StringVar(&args.GpxFile, "gpx", "inputs/ottawa.gpx", "Path to the GPX file.")
	flag.StringVar(&args.OutputDir, "out", getEnv("STROLL_OUTPUT_DIR", "outputs"), "Output directory for the HTML document.")
	flag.StringVar(&toneStr, "tone", "neutral", fmt.Sprintf("Tone for the journal entry %v.", tones))
	flag.StringVar(&focusStr, "focus", "landmarks", fmt.Sprintf("Focus for the journal entry %v.", focuses))
	flag.StringVar(&lengthStr, "length", "medium", fmt.Sprintf("Length for the journal entry %v.", lengths))
	flag.StringVar(&args.MapStyle, "style", "default", "Map tile style (default, cyclosm, toner, positron) or none for a blank background.")
	flag.IntVar(&args.MapSize, "map-size", 800, "Route map size in pixels.")
	flag.Float64Var(&args.PathWidth, "path-width", 5, "Width of the drawn route.")
	flag.StringVar(&pathColorStr, "path-color", "#0000FF", "Color of the drawn route (hex).")

	flag.Parse()

	opts, err := validateOptions(toneStr, focusStr, lengthStr)
	if err != nil {
		return nil, err
	}
	args.Options = opts

	args.PathColor, err = parseHexColor(pathColorStr)
	if err != nil {
		return nil, fmt.Errorf("invalid -path-color %q: %w", pathColorStr, err)
	}

	if args.MapStyle != styleNone {
		if _, ok := mapStyles[args.MapStyle]; !ok {
			return nil, fmt.Errorf("invalid -style %q", args.MapStyle)
		}
	}

	return args, nil
}

// validateOptions checks the style selectors against their allowed sets before
// anything else runs, so a typo never reaches the network.
func validateOptions(tone, focus, length string) (Options, error) {
	if !contains(tones, tone) {
		return Options{}, fmt.Errorf("invalid -tone %q, must be one of %v", tone, tones)
	}
	if !contains(focuses, focus) {
		return Options{}, fmt.Errorf("invalid -focus %q, must be one of %v", focus, focuses)
	}
	if !contains(lengths, length) {
		return Options{}, fmt.Errorf("invalid -length %q, must be one of %v", length, lengths)
	}
	return Options{Tone: tone, Focus: focus, Length: length}, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseHexColor(s string) (color.Color, error) {
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return color.Black, err
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func deg2num(lat, lon float64, zoom int) (float64, float64) {
	latRad := lat * math.Pi / 180
	n := math.Pow(2, float64(zoom))
	xtile := (lon + 180) / 360 * n
	ytile := (1 - math.Asinh(math.Tan(latRad))/math.Pi) / 2 * n
	return xtile, ytile
}
