package keyterms

import "context"

// User-facing messages for KeywordService failures that carry no message
// from the service itself.
const (
	NetworkErrorMessage   = "Unable to connect to server. Please make sure the backend is running."
	TransportErrorMessage = "Server error occurred"
	ServiceErrorMessage   = "Failed to extract keywords"
	UnknownErrorMessage   = "An unexpected error occurred"
)

// Extraction is a successful response from the scoring service.
type Extraction struct {
	Keywords []ScoredTerm

	// Count is the number of keywords as reported by the service.
	Count int

	// ExtractionTime is the service-side processing time in seconds.
	ExtractionTime float64
}

// Health is the scoring service's self-reported status.
type Health struct {
	Status  string
	Message string
}

// KeywordService scores terms in text. Implementations live behind a
// network boundary.
type KeywordService interface {
	// ExtractKeywords returns the top-N terms of the request's text.
	// Every failure is an *Error with one of ESERVICE, ETRANSPORT,
	// ENETWORK or EUNKNOWN.
	ExtractKeywords(ctx context.Context, req *ExtractionRequest) (*Extraction, error)

	// Health reports whether the service is up.
	Health(ctx context.Context) (*Health, error)
}
