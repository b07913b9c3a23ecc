package main

import (
	"fmt"
	"strings"
)

// --- Prompt Building ---
//
// Both builders are pure functions of their inputs so a given run always
// sends the same prompts for the same track and options.

func journalPrompt(route string, stats RouteStats, opts Options) string {
	duration := "unknown"
	if stats.HasDuration {
		duration = stats.Duration.String()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"Summarize a walk as a %s journal entry with a %s tone that followed these GPS coordinates with timestamps:\n%s\n",
		opts.Length, opts.Tone, route)
	fmt.Fprintf(&sb,
		"The walk covered %.2f km over a duration of %s. ", stats.DistanceKm, duration)
	fmt.Fprintf(&sb,
		"Don't report the coordinates or specific timestamps back (start and end time okay). "+
			"Try to focus on %s and otherwise identify one major landmark, park, or body of water near "+
			"each coordinate, and provide a fun fact about each (but don't explicitly say fun fact each time). "+
			"Comment on pace based on time and distance covered. Incorporate the weather. "+
			"Include a planned next walk based on the general area of this walk. "+
			"Make the output HTML formatted. Don't provide anything after the HTML, nor a blurb at start, "+
			"just the journal entry.", strings.ReplaceAll(opts.Focus, "_", " "))
	return sb.String()
}

func imagePrompt(journal string) string {
	return fmt.Sprintf(
		"Generate a sketch-style image with no added text of one of the locations mentioned in this journal entry: %s",
		journal)
}
