// Package slog provides log/slog decorators for keyterms services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/keyterms"
)

// Ensure LoggingKeywordService implements keyterms.KeywordService.
var _ keyterms.KeywordService = (*LoggingKeywordService)(nil)

// LoggingKeywordService wraps a KeywordService with request logging.
type LoggingKeywordService struct {
	next   keyterms.KeywordService
	logger *slog.Logger
}

// NewLoggingKeywordService creates a new LoggingKeywordService.
func NewLoggingKeywordService(next keyterms.KeywordService, logger *slog.Logger) *LoggingKeywordService {
	return &LoggingKeywordService{next: next, logger: logger}
}

// ExtractKeywords delegates to the wrapped service and logs the call.
func (s *LoggingKeywordService) ExtractKeywords(ctx context.Context, req *keyterms.ExtractionRequest) (ext *keyterms.Extraction, err error) {
	defer func(begin time.Time) {
		count := 0
		if ext != nil {
			count = len(ext.Keywords)
		}
		s.logger.Info("extract keywords",
			"chars", len(req.Text),
			"top_n", req.TopN,
			"count", count,
			"duration", time.Since(begin),
			"code", keyterms.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractKeywords(ctx, req)
}

// Health delegates to the wrapped service and logs the call.
func (s *LoggingKeywordService) Health(ctx context.Context) (h *keyterms.Health, err error) {
	defer func(begin time.Time) {
		status := ""
		if h != nil {
			status = h.Status
		}
		s.logger.Info("health check",
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Health(ctx)
}
