package keyterms

import "strings"

// DefaultTopN is used when the requested number of terms is missing,
// unparseable or not positive.
const DefaultTopN = 10

// MaxTopN is the largest top-N offered by the input controls. It is advisory:
// ParseRequest passes larger values through and the service decides.
const MaxTopN = 50

// ExtractionRequest is a validated request for the top-N terms of a text.
type ExtractionRequest struct {
	Text string `json:"text"`
	TopN int    `json:"top_n"`
}

// ParseRequest validates raw user input and builds an ExtractionRequest.
// Returns EINVALID if the text is empty after trimming whitespace.
// The original text is sent as typed; only the emptiness check trims it.
func ParseRequest(rawText, rawTopN string) (*ExtractionRequest, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, Errorf(EINVALID, "Please enter some text to extract keywords.")
	}

	topN, ok := parseLeadingInt(rawTopN)
	if !ok || topN <= 0 {
		topN = DefaultTopN
	}

	return &ExtractionRequest{Text: rawText, TopN: topN}, nil
}

// parseLeadingInt parses an optionally signed run of digits at the start of
// s, ignoring surrounding whitespace and any trailing characters. "12abc"
// yields 12 and "7.5" yields 7.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s); digits++ {
		c := s[digits]
		if c < '0' || c > '9' {
			break
		}
		// Saturate near 2^31.
		if n > (1<<31)/10 {
			continue
		}
		n = n*10 + int(c-'0')
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
