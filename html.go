package main

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// --- Document Assembly ---

// The journal entry arrives HTML-formatted from the model (the prompt asks
// for it), so it is inlined as-is rather than escaped.
var documentTemplate = template.Must(template.New("trip").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Walk Journal</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; max-width: 900px; }
img { max-width: 100%; }
.journal { margin: 20px 0; }
</style>
</head>
<body>
<h2>Walk Summary</h2>
<div class="journal">{{.Journal}}</div>
<img src="{{.ImageSrc}}" alt="Generated Image"><br><br>
<img src="{{.MapSrc}}" alt="Route Map">
</body>
</html>
`))

type documentData struct {
	Journal  template.HTML
	MapSrc   template.URL
	ImageSrc template.URL
}

// writeDocument assembles the final HTML artifact and writes it under dir
// with a unique per-run filename. Both images are base64-inlined so the file
// is self-contained.
func writeDocument(dir string, mapPNG []byte, journal string, imagePNG []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: create output directory %q: %v", errWrite, dir, err)
	}

	id := uuid.New()
	outPath := filepath.Join(dir, fmt.Sprintf("trip_%x.html", id[:]))

	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("%w: create %q: %v", errWrite, outPath, err)
	}
	defer file.Close()

	data := documentData{
		Journal:  template.HTML(journal),
		MapSrc:   pngDataURI(mapPNG),
		ImageSrc: pngDataURI(imagePNG),
	}
	if err := documentTemplate.Execute(file, data); err != nil {
		return "", fmt.Errorf("%w: write %q: %v", errWrite, outPath, err)
	}

	return outPath, nil
}

func pngDataURI(data []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(data))
}
