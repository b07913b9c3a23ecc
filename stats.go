package main

import "time"

// --- Structs ---

type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// RouteStats summarizes a track. Derived once after parsing and read-only
// from then on.
type RouteStats struct {
	DistanceKm  float64
	Duration    time.Duration
	HasDuration bool
	Bounds      Bounds
}

// --- Statistics ---

func computeStats(t *Track) RouteStats {
	first := t.Points[0]
	stats := RouteStats{
		Bounds: Bounds{MinLat: first.Lat, MaxLat: first.Lat, MinLon: first.Lon, MaxLon: first.Lon},
	}

	for i, p := range t.Points {
		if i > 0 {
			stats.DistanceKm += haversine(t.Points[i-1], p)
		}
		if p.Lat < stats.Bounds.MinLat {
			stats.Bounds.MinLat = p.Lat
		}
		if p.Lat > stats.Bounds.MaxLat {
			stats.Bounds.MaxLat = p.Lat
		}
		if p.Lon < stats.Bounds.MinLon {
			stats.Bounds.MinLon = p.Lon
		}
		if p.Lon > stats.Bounds.MaxLon {
			stats.Bounds.MaxLon = p.Lon
		}
	}

	last := t.Points[len(t.Points)-1]
	if !first.Timestamp.IsZero() && !last.Timestamp.IsZero() {
		stats.Duration = last.Timestamp.Sub(first.Timestamp)
		stats.HasDuration = true
	}

	return stats
}

func (b Bounds) center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}
