package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/keyterms"
)

const shellHelp = `Type or paste text and press enter to extract its keywords.
Commands:
  /top N      set the number of terms to return
  /copy       copy the current keywords to the clipboard
  /download   save the current keywords to a file
  /state      show the current result
  /help       show this help
  /quit       exit`

// Run executes the shell command.
func (c *ShellCmd) Run(deps *Dependencies) error {
	topN := c.TopN
	deps.Session.OnChange = deps.View.Render

	fmt.Fprintln(deps.Stdout, shellHelp)
	deps.View.Render(deps.Session.State())

	scanner := bufio.NewScanner(deps.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if !strings.HasPrefix(line, "/") {
			if err := deps.Session.Extract(deps.Ctx, line, topN); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", keyterms.ErrorMessage(err))
			}
			continue
		}

		name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch name {
		case "/quit", "/exit":
			return nil
		case "/top":
			topN = strings.TrimSpace(arg)
			fmt.Fprintf(deps.Stdout, "top-n set to %q\n", topN)
		case "/copy":
			_ = exportResults(deps, deps.Session.Results(), true, false)
		case "/download":
			_ = exportResults(deps, deps.Session.Results(), false, true)
		case "/state":
			deps.View.Render(deps.Session.State())
		case "/help":
			fmt.Fprintln(deps.Stdout, shellHelp)
		default:
			fmt.Fprintf(deps.Stderr, "error: unknown command %s. Type /help for commands.\n", name)
		}
	}

	return scanner.Err()
}
