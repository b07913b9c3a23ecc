package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	maxMapZoom = 16
	minMapZoom = 1
)

var (
	startMarkerColor = color.RGBA{R: 0, G: 140, B: 0, A: 255}
	endMarkerColor   = color.RGBA{R: 220, G: 0, B: 0, A: 255}
	loopMarkerColor  = color.RGBA{R: 128, G: 0, B: 128, A: 255}
)

// --- Map Rendering ---

// renderMap draws the route polyline over basemap tiles, scaled and centered
// to the track bounds, and returns the encoded PNG. Tile fetch failures leave
// blank patches instead of failing the run; style "none" skips tiles
// entirely.
func renderMap(track *Track, stats RouteStats, args *Arguments) ([]byte, error) {
	size := args.MapSize
	zoom := fitZoom(stats.Bounds, size)

	centerLat, centerLon := stats.Bounds.center()
	centerX, centerY := deg2num(centerLat, centerLon, zoom)
	topLeftPx := centerX*tileSize - float64(size)/2
	topLeftPy := centerY*tileSize - float64(size)/2

	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if args.MapStyle != styleNone {
		drawTiles(dc, args.MapStyle, zoom, topLeftPx, topLeftPy, size)
	}

	// Route polyline
	if len(track.Points) > 1 {
		dc.SetColor(args.PathColor)
		dc.SetLineWidth(args.PathWidth)
		for i, p := range track.Points {
			px, py := deg2num(p.Lat, p.Lon, zoom)
			sx := px*tileSize - topLeftPx
			sy := py*tileSize - topLeftPy
			if i == 0 {
				dc.MoveTo(sx, sy)
			} else {
				dc.LineTo(sx, sy)
			}
		}
		dc.Stroke()
	}

	// Start and end markers
	endColor := endMarkerColor
	if track.isLoop() {
		endColor = loopMarkerColor
	}
	drawMarker(dc, track.Points[0], zoom, topLeftPx, topLeftPy, startMarkerColor)
	drawMarker(dc, track.Points[len(track.Points)-1], zoom, topLeftPx, topLeftPy, endColor)

	if err := drawScaleBar(dc, centerLat, zoom, size); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode map image: %w", err)
	}
	return buf.Bytes(), nil
}

// fitZoom returns the largest zoom level at which the bounding box fits the
// canvas with some margin.
func fitZoom(b Bounds, sizePx int) int {
	limit := float64(sizePx) * 0.85
	for z := maxMapZoom; z > minMapZoom; z-- {
		x1, y1 := deg2num(b.MaxLat, b.MinLon, z)
		x2, y2 := deg2num(b.MinLat, b.MaxLon, z)
		if (x2-x1)*tileSize <= limit && (y2-y1)*tileSize <= limit {
			return z
		}
	}
	return minMapZoom
}

func drawTiles(dc *gg.Context, style string, zoom int, topLeftPx, topLeftPy float64, size int) {
	txMin := int(math.Floor(topLeftPx / tileSize))
	tyMin := int(math.Floor(topLeftPy / tileSize))
	txMax := int(math.Floor((topLeftPx + float64(size)) / tileSize))
	tyMax := int(math.Floor((topLeftPy + float64(size)) / tileSize))

	needed := make(map[Tile]struct{})
	for x := txMin; x <= txMax; x++ {
		for y := tyMin; y <= tyMax; y++ {
			needed[Tile{X: x, Y: y, Z: zoom}] = struct{}{}
		}
	}
	prefetchTiles(needed, style)

	for x := txMin; x <= txMax; x++ {
		for y := tyMin; y <= tyMax; y++ {
			tileImg, err := getTileImage(style, zoom, x, y)
			if err != nil {
				log.Printf("could not get tile image: %v", err)
				continue
			}
			dc.DrawImage(tileImg, x*tileSize-int(topLeftPx), y*tileSize-int(topLeftPy))
		}
	}
}

func drawMarker(dc *gg.Context, p Point, zoom int, topLeftPx, topLeftPy float64, c color.Color) {
	px, py := deg2num(p.Lat, p.Lon, zoom)
	sx := px*tileSize - topLeftPx
	sy := py*tileSize - topLeftPy

	dc.SetColor(c)
	dc.DrawPoint(sx, sy, 8)
	dc.Fill()
	dc.SetColor(color.White)
	dc.SetLineWidth(2)
	dc.DrawPoint(sx, sy, 8)
	dc.Stroke()
}

// drawScaleBar places a labeled distance scale in the bottom-left corner.
func drawScaleBar(dc *gg.Context, centerLat float64, zoom, size int) error {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(font, &truetype.Options{Size: 14})
	dc.SetFontFace(face)

	// Meters per pixel at this latitude for 256px Web-Mercator tiles.
	metersPerPixel := 40075016.686 * math.Cos(centerLat*math.Pi/180) / (math.Pow(2, float64(zoom)) * tileSize)

	barMeters := 0.0
	for _, m := range []float64{50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000} {
		if m/metersPerPixel <= float64(size)/4 {
			barMeters = m
		}
	}
	if barMeters == 0 {
		return nil
	}

	label := fmt.Sprintf("%.0f m", barMeters)
	if barMeters >= 1000 {
		label = fmt.Sprintf("%.0f km", barMeters/1000)
	}

	barPx := barMeters / metersPerPixel
	x := 20.0
	y := float64(size) - 20.0

	dc.SetColor(color.RGBA{A: 160})
	dc.SetLineWidth(3)
	dc.DrawLine(x, y, x+barPx, y)
	dc.DrawLine(x, y-5, x, y+5)
	dc.DrawLine(x+barPx, y-5, x+barPx, y+5)
	dc.Stroke()

	dc.SetColor(color.Black)
	dc.DrawStringAnchored(label, x+barPx/2, y-8, 0.5, 0)
	return nil
}
