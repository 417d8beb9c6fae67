package keyterms

// ExtractResult holds the readable content of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main content as plain text.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	Text string
}

// Extractor pulls the main text out of HTML pages so a web page can be
// used as extraction input.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
