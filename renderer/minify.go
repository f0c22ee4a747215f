package renderer

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
)

const (
	mediaHTML = "text/html"
	mediaCSS  = "text/css"
)

// Minifier shrinks generated HTML documents and stylesheets.
type Minifier struct {
	m *minify.M
}

// NewMinifier returns a minifier that keeps document structure tags, end tags
// and attribute quotes so the output stays readable by naive tooling.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc(mediaCSS, css.Minify)
	m.Add(mediaHTML, &minhtml.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	return &Minifier{m: m}
}

// MinifyHTML optimizes an HTML document.
func (m *Minifier) MinifyHTML(raw string) (string, error) {
	out, err := m.m.String(mediaHTML, raw)
	if err != nil {
		return "", fmt.Errorf("minify html: %w", err)
	}
	return out, nil
}

// MinifyCSS optimizes a stylesheet.
func (m *Minifier) MinifyCSS(raw string) (string, error) {
	out, err := m.m.String(mediaCSS, raw)
	if err != nil {
		return "", fmt.Errorf("minify css: %w", err)
	}
	return out, nil
}
