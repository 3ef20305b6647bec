package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zamm-dev/showcase/internal/cli"
	"github.com/zamm-dev/showcase/internal/models"
)

func main() {
	app, err := cli.NewApp()
	if err != nil {
		handleError(err)
		os.Exit(getExitCode(err))
	}

	rootCmd := app.CreateRootCommand()
	err = rootCmd.Execute()
	_ = app.Close()
	if err != nil {
		handleError(err)
		os.Exit(getExitCode(err))
	}
}

// handleError prints error messages in a user-friendly format
func handleError(err error) {
	var showcaseErr *models.ShowcaseError
	if errors.As(err, &showcaseErr) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", showcaseErr.Message)
		if showcaseErr.Details != "" {
			fmt.Fprintf(os.Stderr, "Details: %s\n", showcaseErr.Details)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
	}
}

// getExitCode returns appropriate exit code based on error type
func getExitCode(err error) int {
	var showcaseErr *models.ShowcaseError
	if errors.As(err, &showcaseErr) {
		switch showcaseErr.Type {
		case models.ErrTypeValidation, models.ErrTypeNotFound:
			return 1 // User error
		case models.ErrTypeStorage, models.ErrTypeSystem:
			return 2 // System error
		default:
			return 2
		}
	}
	return 2 // Default to system error
}
