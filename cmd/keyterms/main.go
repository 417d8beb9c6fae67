package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/keyterms"
	"github.com/fwojciec/keyterms/clipboard"
	"github.com/fwojciec/keyterms/fs"
	kthttp "github.com/fwojciec/keyterms/http"
	ktslog "github.com/fwojciec/keyterms/slog"
	"github.com/fwojciec/keyterms/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Clipboard used by exports. Set before calling Run() to replace the
	// system clipboard.
	Clipboard keyterms.Clipboard
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Clipboard: clipboard.NewClipboard(),
	}
}

// Run executes the CLI with the given arguments. Errors not already shown
// by the command are written to stderr.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdin, stdout, stderr)
	var shown *reportedError
	if err != nil && !errors.As(err, &shown) {
		fmt.Fprintf(stderr, "error: %s\n", userMessage(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("keyterms"),
		kong.Description("Extract the most significant terms of a text using a keyword scoring service"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'keyterms --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	client := kthttp.NewClient(cli.APIURL,
		kthttp.WithClientTimeout(cli.Timeout),
		kthttp.WithRateLimit(cli.Rate),
	)
	deps.Service = ktslog.NewLoggingKeywordService(client, logger)
	deps.Session = keyterms.NewSession(deps.Service)
	deps.Exporter = &keyterms.Exporter{
		Clipboard: m.Clipboard,
		Files:     fs.NewSaver(cli.Out),
	}
	deps.View = &View{Stdout: stdout, Stderr: stderr}

	if strings.HasPrefix(kongCtx.Command(), "extract") && cli.Extract.URL != "" {
		fetcher := kthttp.NewFetcher(
			kthttp.WithTimeout(cli.Timeout),
			kthttp.WithRetryDelays(kthttp.DefaultRetryDelays()...),
		)
		deps.Fetcher = ktslog.NewLoggingFetcher(fetcher, logger)
		deps.Extractor = trafilatura.NewExtractor()
	}

	return kongCtx.Run(deps)
}

// reportedError marks an error whose message was already written to stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// userMessage returns the message of an application error, or the error
// text of anything else.
func userMessage(err error) string {
	if keyterms.ErrorCode(err) == keyterms.EINTERNAL {
		return err.Error()
	}
	return keyterms.ErrorMessage(err)
}
