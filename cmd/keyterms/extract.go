package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/keyterms"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	text, err := c.input(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return reported(err)
	}

	deps.Session.OnChange = deps.View.Render
	if err := deps.Session.Extract(deps.Ctx, text, c.TopN); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", keyterms.ErrorMessage(err))
		return reported(err)
	}

	// The view has already shown the failure.
	if st, ok := deps.Session.State().(keyterms.Failed); ok {
		return reported(keyterms.Errorf(st.Code, "%s", st.Message))
	}

	return exportResults(deps, deps.Session.Results(), c.Copy, c.Download)
}

// input resolves the text to analyse: the argument, then --url, then
// --file, then stdin.
func (c *ExtractCmd) input(deps *Dependencies) (string, error) {
	switch {
	case c.Text != "":
		return c.Text, nil
	case c.URL != "":
		html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", c.URL, err)
		}
		result, err := deps.Extractor.Extract(html)
		if err != nil {
			return "", fmt.Errorf("extract text from %s: %w", c.URL, err)
		}
		return result.Text, nil
	case c.File != "":
		data, err := os.ReadFile(c.File)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// exportResults runs the requested exports concurrently and reports each
// outcome. The first export error is returned.
func exportResults(deps *Dependencies, results []keyterms.RankedTerm, toClipboard, toFile bool) error {
	if !toClipboard && !toFile {
		return nil
	}
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No keywords to export.")
		return nil
	}

	var copyErr, downloadErr error
	var path string

	var g errgroup.Group
	if toClipboard {
		g.Go(func() error {
			copyErr = deps.Exporter.Copy(deps.Ctx, results)
			return copyErr
		})
	}
	if toFile {
		g.Go(func() error {
			path, downloadErr = deps.Exporter.Download(deps.Ctx, results)
			return downloadErr
		})
	}
	err := g.Wait()

	if toClipboard {
		if copyErr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", keyterms.ErrorMessage(copyErr))
		} else {
			fmt.Fprintln(deps.Stdout, "Keywords copied to clipboard!")
		}
	}
	if toFile {
		if downloadErr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", keyterms.ErrorMessage(downloadErr))
		} else {
			fmt.Fprintf(deps.Stdout, "Saved keywords to %s\n", path)
		}
	}

	return reported(err)
}
