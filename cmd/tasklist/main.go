// Package main is the entry point for the tasklist CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		// Storage setup failed (bad backend, git storage outside a repository).
		// Help and version still work so the user can find out what to fix.
		if canRunWithoutStore(os.Args[1:]) {
			return cli.NewRootCommand(nil, version).Execute()
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

func canRunWithoutStore(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		switch arg {
		case "--help", "-h", "--version":
			return true
		}
	}
	return false
}
