package mock

import (
	"context"

	"github.com/fwojciec/keyterms"
)

var _ keyterms.KeywordService = (*KeywordService)(nil)

// KeywordService is a mock implementation of keyterms.KeywordService.
type KeywordService struct {
	ExtractKeywordsFn func(ctx context.Context, req *keyterms.ExtractionRequest) (*keyterms.Extraction, error)
	HealthFn          func(ctx context.Context) (*keyterms.Health, error)
}

func (s *KeywordService) ExtractKeywords(ctx context.Context, req *keyterms.ExtractionRequest) (*keyterms.Extraction, error) {
	return s.ExtractKeywordsFn(ctx, req)
}

func (s *KeywordService) Health(ctx context.Context) (*keyterms.Health, error) {
	return s.HealthFn(ctx)
}
