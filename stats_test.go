package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	track, err := parseGpx(writeTestGpx(t, threePointGpx))
	require.NoError(t, err)

	stats := computeStats(track)

	assert.Greater(t, stats.DistanceKm, 0.0)
	assert.True(t, stats.HasDuration)
	assert.Equal(t, 10*time.Minute, stats.Duration)
	assert.Equal(t, 45.42, stats.Bounds.MinLat)
	assert.Equal(t, 45.43, stats.Bounds.MaxLat)
	assert.Equal(t, -75.7086, stats.Bounds.MinLon)
	assert.Equal(t, -75.701, stats.Bounds.MaxLon)
}

func TestComputeStatsDeterministic(t *testing.T) {
	path := writeTestGpx(t, threePointGpx)

	first, err := parseGpx(path)
	require.NoError(t, err)
	second, err := parseGpx(path)
	require.NoError(t, err)

	assert.Equal(t, computeStats(first), computeStats(second))
}

func TestComputeStatsSinglePoint(t *testing.T) {
	track := &Track{Points: []Point{{Lat: 45.42, Lon: -75.7, Timestamp: time.Date(2025, 4, 11, 10, 0, 0, 0, time.UTC)}}}

	stats := computeStats(track)

	assert.Zero(t, stats.DistanceKm)
	assert.Zero(t, stats.Duration)
	assert.True(t, stats.HasDuration)
	assert.Equal(t, Bounds{MinLat: 45.42, MaxLat: 45.42, MinLon: -75.7, MaxLon: -75.7}, stats.Bounds)
}

func TestComputeStatsNoTimestamps(t *testing.T) {
	track := &Track{Points: []Point{{Lat: 45.42, Lon: -75.7}, {Lat: 45.43, Lon: -75.7}}}

	stats := computeStats(track)

	assert.False(t, stats.HasDuration)
	assert.Greater(t, stats.DistanceKm, 0.0)
}

func TestBoundsCenter(t *testing.T) {
	b := Bounds{MinLat: 10, MaxLat: 20, MinLon: -40, MaxLon: -20}
	lat, lon := b.center()
	assert.Equal(t, 15.0, lat)
	assert.Equal(t, -30.0, lon)
}
