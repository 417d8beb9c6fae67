package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/keyterms"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Service   keyterms.KeywordService
	Session   *keyterms.Session
	Exporter  *keyterms.Exporter
	View      *View
	Fetcher   keyterms.Fetcher
	Extractor keyterms.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIURL  string        `name:"api-url" env:"KEYTERMS_API_URL" default:"http://localhost:5000" help:"Scoring service base URL"`
	Timeout time.Duration `env:"KEYTERMS_TIMEOUT" default:"30s" help:"Timeout per request"`
	Rate    float64       `env:"KEYTERMS_RATE" default:"2" help:"Max requests per second to the service (0 disables)"`
	Out     string        `short:"o" env:"KEYTERMS_OUT" default:"." help:"Directory for downloaded keyword lists"`
	Verbose bool          `short:"v" help:"Log service calls to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract the top terms of a text"`
	Shell   ShellCmd   `cmd:"" help:"Extract interactively, one line of text at a time"`
	Health  HealthCmd  `cmd:"" help:"Check that the scoring service is up"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Text     string `arg:"" optional:"" help:"Text to analyse (default: --file, --url or stdin)"`
	TopN     string `name:"top-n" short:"n" default:"10" help:"Number of terms to return (1-50)"`
	File     string `short:"f" help:"Read text from a file"`
	URL      string `name:"url" short:"u" help:"Fetch a web page and analyse its main text"`
	Copy     bool   `short:"c" help:"Copy the terms to the clipboard"`
	Download bool   `short:"d" help:"Save the terms to extracted_keywords.txt"`
}

// ShellCmd is the "shell" subcommand.
type ShellCmd struct {
	TopN string `name:"top-n" short:"n" default:"10" help:"Initial number of terms to return (1-50)"`
}

// HealthCmd is the "health" subcommand.
type HealthCmd struct{}
