package main_test

import (
	"bytes"
	"context"
	"strings"

	"github.com/fwojciec/keyterms"
	main "github.com/fwojciec/keyterms/cmd/keyterms"
	"github.com/fwojciec/keyterms/mock"
)

// testDeps wires a command's dependencies around svc with in-memory I/O.
func testDeps(svc keyterms.KeywordService, stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:      context.Background(),
		Stdin:    strings.NewReader(stdin),
		Stdout:   stdout,
		Stderr:   stderr,
		Service:  svc,
		Session:  keyterms.NewSession(svc),
		Exporter: &keyterms.Exporter{},
		View:     &main.View{Stdout: stdout, Stderr: stderr},
	}
	return deps, stdout, stderr
}

func scoringService() *mock.KeywordService {
	return &mock.KeywordService{
		ExtractKeywordsFn: func(_ context.Context, req *keyterms.ExtractionRequest) (*keyterms.Extraction, error) {
			kw := []keyterms.ScoredTerm{
				{Term: "ai", Score: 0.9},
				{Term: "ml", Score: 0.4},
			}
			if req.TopN < len(kw) {
				kw = kw[:req.TopN]
			}
			return &keyterms.Extraction{Keywords: kw, Count: len(kw), ExtractionTime: 0.12}, nil
		},
	}
}
