package main

import (
	"fmt"

	"github.com/fwojciec/keyterms"
)

// Run executes the health command.
func (c *HealthCmd) Run(deps *Dependencies) error {
	health, err := deps.Service.Health(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", keyterms.ErrorMessage(err))
		return reported(err)
	}

	if health.Message != "" {
		fmt.Fprintf(deps.Stdout, "%s: %s\n", health.Status, health.Message)
	} else {
		fmt.Fprintln(deps.Stdout, health.Status)
	}
	return nil
}
