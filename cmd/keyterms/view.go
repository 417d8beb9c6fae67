package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fwojciec/keyterms"
)

// barWidth is the emphasis bar length of the top-ranked term.
const barWidth = 20

// View renders session states to the terminal.
type View struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Render prints st. Failures go to Stderr, everything else to Stdout.
func (v *View) Render(st keyterms.State) {
	switch st := st.(type) {
	case keyterms.Idle:
		fmt.Fprintln(v.Stdout, "Enter some text to extract keywords.")
	case keyterms.Requesting:
		fmt.Fprintln(v.Stdout, "Processing text...")
	case keyterms.Success:
		v.renderResults(st)
	case keyterms.Failed:
		fmt.Fprintf(v.Stderr, "error: %s\n", st.Message)
	}
}

func (v *View) renderResults(st keyterms.Success) {
	if len(st.Results) == 0 {
		fmt.Fprintln(v.Stdout, "No keywords found.")
		return
	}

	stats := fmt.Sprintf("Count: %d", st.Count)
	if st.Elapsed > 0 {
		stats += fmt.Sprintf("  Time: %ss", keyterms.FormatScore(st.Elapsed))
	}
	fmt.Fprintln(v.Stdout, stats)

	width := 0
	for _, r := range st.Results {
		width = max(width, len([]rune(r.Term)))
	}
	for _, r := range st.Results {
		pad := strings.Repeat(" ", width-len([]rune(r.Term)))
		fmt.Fprintf(v.Stdout, "#%-3d %s%s  %.4f  %s\n", r.Rank, r.Term, pad, r.Score, bar(r.Emphasis))
	}
}

// bar draws emphasis as a run of blocks, barWidth long at full emphasis.
func bar(emphasis float64) string {
	return strings.Repeat("█", int(math.Round(emphasis*barWidth)))
}
