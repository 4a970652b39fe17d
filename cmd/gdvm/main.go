// Package main is the entry point for the gdvm CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/gdvm/cmd/gdvm/commands"
	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *gdvmerrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	os.Exit(gdvmerrors.ExitSystem)
}
