package keyterms

import (
	"slices"
	"strconv"
	"strings"
)

// ScoredTerm is a term with its weight as reported by the scoring service.
// Score is never negative.
type ScoredTerm struct {
	Term  string  `json:"keyword"`
	Score float64 `json:"score"`
}

// RankedTerm is a ScoredTerm prepared for display.
type RankedTerm struct {
	Term  string
	Score float64

	// Rank is the 1-based position by descending score.
	Rank int

	// Emphasis is the score rescaled into [MinEmphasis, 1.0] against the
	// highest score in the same result set.
	Emphasis float64
}

// MinEmphasis is the emphasis of a zero-scored term.
const MinEmphasis = 0.6

// Rank orders terms by descending score and assigns rank and emphasis.
// Terms with equal scores keep their original relative order.
// An empty input yields an empty, non-nil slice.
func Rank(terms []ScoredTerm) []RankedTerm {
	ranked := make([]RankedTerm, 0, len(terms))
	if len(terms) == 0 {
		return ranked
	}

	sorted := slices.Clone(terms)
	slices.SortStableFunc(sorted, func(a, b ScoredTerm) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})

	maxScore := sorted[0].Score
	for i, t := range sorted {
		ranked = append(ranked, RankedTerm{
			Term:     t.Term,
			Score:    t.Score,
			Rank:     i + 1,
			Emphasis: emphasis(t.Score, maxScore),
		})
	}
	return ranked
}

// emphasis maps score linearly from [0, maxScore] to [MinEmphasis, 1.0].
// When every score is zero all terms share the top emphasis.
func emphasis(score, maxScore float64) float64 {
	if maxScore <= 0 {
		return 1.0
	}
	return MinEmphasis + (1.0-MinEmphasis)*(score/maxScore)
}

// FormatScore renders a score as the shortest decimal that round-trips.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// FormatDownload renders terms one per line as "<term> (Score: <score>)".
func FormatDownload(terms []RankedTerm) string {
	lines := make([]string, 0, len(terms))
	for _, t := range terms {
		lines = append(lines, t.Term+" (Score: "+FormatScore(t.Score)+")")
	}
	return strings.Join(lines, "\n")
}

// FormatClipboard renders the terms alone, comma separated.
func FormatClipboard(terms []RankedTerm) string {
	words := make([]string, 0, len(terms))
	for _, t := range terms {
		words = append(words, t.Term)
	}
	return strings.Join(words, ", ")
}
