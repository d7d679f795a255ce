// Package main is the entry point for the extra-platforms CLI.
package main

import (
	"fmt"
	"os"

	"github.com/kdeldycke/extra-platforms-sub001/cmd/extra-platforms/commands"
	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
)

func main() {
	err := commands.Execute()
	if err != nil {
		var exitErr *errors.ExitError
		switch {
		case errors.As(err, &exitErr):
			// A bare exit code (is returning false) prints nothing.
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
			}
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
		default:
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	os.Exit(errors.ExitCode(err))
}
