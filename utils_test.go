package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptions(t *testing.T) {
	opts, err := validateOptions("fun", "distance", "short")
	require.NoError(t, err)
	assert.Equal(t, Options{Tone: "fun", Focus: "distance", Length: "short"}, opts)
}

func TestValidateOptionsRejectsUnknownValues(t *testing.T) {
	_, err := validateOptions("sarcastic", "landmarks", "medium")
	assert.ErrorContains(t, err, "invalid -tone")

	_, err = validateOptions("fun", "mountains", "medium")
	assert.ErrorContains(t, err, "invalid -focus")

	_, err = validateOptions("fun", "landmarks", "epic")
	assert.ErrorContains(t, err, "invalid -length")
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#FF8800")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 136, B: 0, A: 255}, c)

	_, err = parseHexColor("red")
	assert.Error(t, err)
}

func TestDeg2Num(t *testing.T) {
	// Null Island sits at the center of the tile grid.
	x, y := deg2num(0, 0, 1)
	assert.InDelta(t, 1.0, x, 1e-9)
	assert.InDelta(t, 1.0, y, 1e-9)

	x, y = deg2num(0, 0, 0)
	assert.InDelta(t, 0.5, x, 1e-9)
	assert.InDelta(t, 0.5, y, 1e-9)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("STROLL_TEST_KEY", "value")
	assert.Equal(t, "value", getEnv("STROLL_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("STROLL_TEST_MISSING", "fallback"))
}
