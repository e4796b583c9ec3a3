// Package main is the entry point for the quadrant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/quadrant/internal/app"
	"github.com/runoshun/quadrant/internal/cli"
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
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd, version)
	if err != nil {
		return runWithoutContainer(err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles a config file that failed to load.
// Help, version and the config template still work so the file can be fixed.
func runWithoutContainer(configErr error) error {
	if !canRunWithoutConfig(os.Args[1:]) {
		return fmt.Errorf("failed to initialize: %w", configErr)
	}
	rootCmd := cli.NewRootCommand(nil, version)
	return rootCmd.Execute()
}

func canRunWithoutConfig(args []string) bool {
	if len(args) == 0 {
		return false
	}
	if args[0] == "help" {
		return true
	}
	if len(args) >= 2 && args[0] == "config" && args[1] == "template" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
