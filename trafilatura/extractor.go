// Package trafilatura extracts readable text from web pages so they can be
// submitted for keyword extraction.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/fwojciec/keyterms"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements keyterms.Extractor at compile time.
var _ keyterms.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main text.
func (e *Extractor) Extract(rawHTML string) (*keyterms.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" && result.ContentNode != nil {
		text = nodeText(result.ContentNode)
	}

	return &keyterms.ExtractResult{
		Title: result.Metadata.Title,
		Text:  text,
	}, nil
}

// nodeText concatenates the text nodes under n, one block per line.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, "\n")
}
