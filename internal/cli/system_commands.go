package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/showcase/internal/config"
	"github.com/zamm-dev/showcase/internal/models"
)

// Version is the released version of the CLI
const Version = "v0.1.0"

// workingDirectory and writeDefaultConfig are swapped out by tests
var (
	workingDirectory = func() (string, error) {
		dir, err := os.Getwd()
		if err != nil {
			return "", models.NewShowcaseErrorWithCause(models.ErrTypeSystem, "failed to get working directory", err)
		}
		return dir, nil
	}
	writeDefaultConfig = config.WriteDefaultConfig
)

// createVersionCommand creates the version command
func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Showcase %s\n", Version)
		},
	}
}
