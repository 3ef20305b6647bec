package cli

import (
	"time"

	"github.com/spf13/cobra"
)

var timeNow = time.Now

// CreateRootCommand creates the root command for the CLI
func (a *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "showcase",
		Short: "Showcase - browse a catalog of projects",
		Long:  "Showcase lists the projects in a catalog, filters them by language and orders them by recent commit or development time.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := cmd.Flags().GetString("catalog")
			if err != nil {
				return err
			}
			if catalog != "" {
				a.useStorage(catalog)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "Dump every UI message to a debug log file")
	rootCmd.PersistentFlags().String("catalog", "", "Directory holding catalog.yaml (overrides storage.path)")

	showCmd := a.createShowCommand()
	rootCmd.RunE = showCmd.RunE
	addShowFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(a.createListCommand())
	rootCmd.AddCommand(a.createProjectCommand())
	rootCmd.AddCommand(a.createLanguagesCommand())
	rootCmd.AddCommand(a.createInitCommand())
	rootCmd.AddCommand(a.createVersionCommand())

	return rootCmd
}

// jsonOutput reports whether --json was given or the config asks for JSON
func (a *App) jsonOutput(cmd *cobra.Command) bool {
	if flag, err := cmd.Flags().GetBool("json"); err == nil && flag {
		return true
	}
	return a.config.CLI.OutputFormat == "json"
}
