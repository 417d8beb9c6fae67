package mock

import "github.com/fwojciec/keyterms"

var _ keyterms.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of keyterms.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*keyterms.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*keyterms.ExtractResult, error) {
	return e.ExtractFn(html)
}
