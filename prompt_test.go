package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJournalPrompt(t *testing.T) {
	stats := RouteStats{DistanceKm: 3.42, Duration: 25 * time.Minute, HasDuration: true}
	opts := Options{Tone: "poetic", Focus: "bodies_of_water", Length: "short"}

	prompt := journalPrompt("Lat: 45.42, Lon: -75.70\n", stats, opts)

	assert.Contains(t, prompt, "poetic tone")
	assert.Contains(t, prompt, "short journal entry")
	assert.Contains(t, prompt, "focus on bodies of water")
	assert.Contains(t, prompt, "3.42 km")
	assert.Contains(t, prompt, "25m0s")
	assert.Contains(t, prompt, "Lat: 45.42")
}

func TestJournalPromptUnknownDuration(t *testing.T) {
	stats := RouteStats{DistanceKm: 1.0}
	prompt := journalPrompt("route", stats, Options{Tone: "neutral", Focus: "landmarks", Length: "medium"})
	assert.Contains(t, prompt, "duration of unknown")
}

func TestJournalPromptDeterministic(t *testing.T) {
	stats := RouteStats{DistanceKm: 2.5, Duration: 10 * time.Minute, HasDuration: true}
	opts := Options{Tone: "fun", Focus: "distance", Length: "detailed"}

	assert.Equal(t,
		journalPrompt("route text", stats, opts),
		journalPrompt("route text", stats, opts))
}

func TestImagePrompt(t *testing.T) {
	prompt := imagePrompt("<p>We strolled along the canal.</p>")
	assert.Contains(t, prompt, "sketch-style image")
	assert.Contains(t, prompt, "We strolled along the canal.")
	assert.Equal(t, prompt, imagePrompt("<p>We strolled along the canal.</p>"))
}
