package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

const (
	tileCacheDir         = "tiles"
	tileSize             = 256
	tileFetchConcurrency = 8
	styleNone            = "none"
)

// --- Structs ---

type MapStyle struct {
	Name    string
	URL     string
	Headers map[string]string
}

type Tile struct {
	X, Y, Z int
}

var mapStyles = map[string]MapStyle{
	"default":  {Name: "default", URL: "https://tile.openstreetmap.org/{z}/{x}/{y}.png"},
	"cyclosm":  {Name: "cyclosm", URL: "https://c.tile-cyclosm.openstreetmap.fr/cyclosm/{z}/{x}/{y}.png"},
	"toner":    {Name: "toner", URL: "https://tiles.stadiamaps.com/tiles/stamen_toner/{z}/{x}/{y}.png", Headers: map[string]string{"Referer": "https://mc.bbbike.org/"}},
	"positron": {Name: "positron", URL: "https://d.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png"},
}

var tileCache sync.Map // in-memory cache on top of the on-disk tile store

// --- Tile Downloading & Caching ---

func getTileImage(style string, z, x, y int) (image.Image, error) {
	styleInfo, ok := mapStyles[style]
	if !ok {
		return nil, fmt.Errorf("invalid map style: %s", style)
	}

	tilePath := filepath.Join(tileCacheDir, styleInfo.Name, strconv.Itoa(z), strconv.Itoa(x), fmt.Sprintf("%d.png", y))

	if img, ok := tileCache.Load(tilePath); ok {
		return img.(image.Image), nil
	}

	if _, err := os.Stat(tilePath); err == nil {
		file, err := os.Open(tilePath)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		img, _, err := image.Decode(file)
		if err != nil {
			return nil, err
		}
		tileCache.Store(tilePath, img)
		return img, nil
	}

	// Download
	url := strings.Replace(styleInfo.URL, "{z}", strconv.Itoa(z), 1)
	url = strings.Replace(url, "{x}", strconv.Itoa(x), 1)
	url = strings.Replace(url, "{y}", strconv.Itoa(y), 1)

	req, _ := http.NewRequest("GET", url, nil)
	req.Header.Set("User-Agent", "StrollStory/0.1")
	for k, v := range styleInfo.Headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{
		Timeout: 3 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download tile %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download tile %s: status %d", url, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, err
	}

	if err := saveTile(tilePath, img); err != nil {
		log.Printf("could not cache tile %s: %v", tilePath, err)
	}

	tileCache.Store(tilePath, img)
	return img, nil
}

func saveTile(tilePath string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(tilePath), 0755); err != nil {
		return err
	}
	out, err := os.Create(tilePath)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, img)
}

func prefetchTiles(allTiles map[Tile]struct{}, style string) {
	log.Println("Prefetching map tiles...")
	bar := progressbar.Default(int64(len(allTiles)), "Downloading Tiles")
	var wg sync.WaitGroup
	limit := make(chan struct{}, tileFetchConcurrency)

	for tile := range allTiles {
		wg.Add(1)
		limit <- struct{}{}
		go func(t Tile) {
			defer wg.Done()
			if _, err := getTileImage(style, t.Z, t.X, t.Y); err != nil {
				log.Printf("could not prefetch tile %d/%d/%d: %v", t.Z, t.X, t.Y, err)
			}
			bar.Add(1)
			<-limit
			time.Sleep(time.Second / 20) // Rate limit to 20 tiles per second
		}(tile)
	}
	wg.Wait()
}
