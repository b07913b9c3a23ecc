package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// --- Structs ---

type Point struct {
	Lat, Lon, Ele float64
	Timestamp     time.Time
}

type Track struct {
	Points []Point
}

// --- GPX Parsing ---

func parseGpx(filePath string) (*Track, error) {
	gpxFile, err := gpx.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse GPX file %q: %v", errParse, filePath, err)
	}

	var points []Point
	for _, track := range gpxFile.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				var ele float64
				if p.Elevation.NotNull() {
					ele = p.Elevation.Value()
				}
				points = append(points, Point{Lat: p.Latitude, Lon: p.Longitude, Ele: ele, Timestamp: p.Timestamp})
			}
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no track points in %q", errParse, filePath)
	}

	return &Track{Points: points}, nil
}

// routeText dumps the track as plain text for the journal prompt. Coordinates
// and times go to the model verbatim; the prompt tells it not to echo them.
func (t *Track) routeText() string {
	var sb strings.Builder
	sb.WriteString("GPS track points:\n")
	for _, p := range t.Points {
		fmt.Fprintf(&sb, "Lat: %.6f, Lon: %.6f", p.Lat, p.Lon)
		if p.Ele != 0 {
			fmt.Fprintf(&sb, ", Elev: %.1f", p.Ele)
		}
		if !p.Timestamp.IsZero() {
			fmt.Fprintf(&sb, ", Time: %s UTC", p.Timestamp.UTC().Format(time.RFC3339))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// isLoop reports whether the walk ends where it started.
func (t *Track) isLoop() bool {
	first := t.Points[0]
	last := t.Points[len(t.Points)-1]
	return first.Lat == last.Lat && first.Lon == last.Lon
}

func haversine(p1, p2 Point) float64 {
	const R = 6371 // Earth radius in kilometers
	lat1 := p1.Lat * math.Pi / 180
	lon1 := p1.Lon * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lon2 := p2.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}
