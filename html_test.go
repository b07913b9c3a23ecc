package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	mapPNG := tinyPNG(t)
	imagePNG := tinyPNG(t)

	outPath, err := writeDocument(dir, mapPNG, "<p>A lovely walk by the river.</p>", imagePNG)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(outPath))
	assert.Regexp(t, `^trip_[0-9a-f]{32}\.html$`, filepath.Base(outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "<p>A lovely walk by the river.</p>")
	assert.Contains(t, html, "data:image/png;base64,")
	assert.Contains(t, html, "Walk Summary")
}

func TestWriteDocumentUniqueNames(t *testing.T) {
	dir := t.TempDir()
	png := tinyPNG(t)

	first, err := writeDocument(dir, png, "entry", png)
	require.NoError(t, err)
	second, err := writeDocument(dir, png, "entry", png)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestWriteDocumentCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	png := tinyPNG(t)

	outPath, err := writeDocument(dir, png, "entry", png)
	require.NoError(t, err)
	assert.FileExists(t, outPath)
}

func TestWriteDocumentUnwritableDir(t *testing.T) {
	// A regular file where a directory is needed makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := writeDocument(filepath.Join(blocker, "out"), tinyPNG(t), "entry", tinyPNG(t))
	require.ErrorIs(t, err, errWrite)
}
