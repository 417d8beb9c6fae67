package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/keyterms"
	"github.com/fwojciec/keyterms/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ keyterms.KeywordService = &mock.KeywordService{}
}

func TestKeywordService_ExtractKeywords(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ExtractKeywordsFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *keyterms.ExtractionRequest
		svc := &mock.KeywordService{
			ExtractKeywordsFn: func(_ context.Context, req *keyterms.ExtractionRequest) (*keyterms.Extraction, error) {
				calledWith = req
				return &keyterms.Extraction{Count: 1}, nil
			},
		}

		req := &keyterms.ExtractionRequest{Text: "some text", TopN: 5}
		ext, err := svc.ExtractKeywords(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, req, calledWith)
		assert.Equal(t, 1, ext.Count)
	})
}
