package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/zamm-dev/showcase/internal/cli/interactive"
	"github.com/zamm-dev/showcase/internal/models"
	"go.uber.org/zap"
)

// createShowCommand creates the interactive showcase command
func (a *App) createShowCommand() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Browse the catalog interactively",
		Long:  "Open the showcase with its toolbar: pick a language, order by recent commit or development time, and switch between the list and AI pages on narrow terminals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			pageFlag, _ := cmd.Flags().GetString("page")
			page, err := models.ParsePage(pageFlag)
			if err != nil {
				return err
			}
			return a.runShow(cmd, page, debug)
		},
	}
	addShowFlags(showCmd)
	return showCmd
}

func addShowFlags(cmd *cobra.Command) {
	cmd.Flags().String("page", models.PageList.String(), "Initial page: list or ai")
}

func (a *App) runShow(cmd *cobra.Command, page models.Page, debug bool) error {
	logger := a.Logger()
	opts := []interactive.Option{interactive.WithLogger(logger), interactive.WithPage(page)}

	if debug {
		debugFile, err := createDebugLogFile()
		if err != nil {
			return models.NewShowcaseErrorWithCause(models.ErrTypeSystem, "failed to create debug log", err)
		}
		defer debugFile.Close()
		fmt.Fprintf(cmd.ErrOrStderr(), "Debug log: %s\n", debugFile.Name())
		opts = append(opts, interactive.WithDebugWriter(debugFile))
	}

	model := interactive.NewModel(interactive.NewAppAdapter(a.showcaseService, a.config), opts...)
	logger.Info("starting showcase", zap.String("catalog", a.storage.CatalogPath()))

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return models.NewShowcaseErrorWithCause(models.ErrTypeSystem, "interactive session failed", err)
	}
	return nil
}

// createListCommand creates the non-interactive list command
func (a *App) createListCommand() *cobra.Command {
	var language string
	var order string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ordering, err := models.ParseOrdering(order)
			if err != nil {
				return err
			}

			projects, err := a.showcaseService.Query(models.FilterState{Language: language, Ordering: ordering})
			if err != nil {
				return err
			}

			if a.jsonOutput(cmd) {
				return outputJSON(cmd.OutOrStdout(), projects)
			}
			return outputProjectTable(cmd.OutOrStdout(), projects, timeNow())
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", models.AllLanguages, "Only list projects in this language")
	cmd.Flags().StringVarP(&order, "order", "o", "", "Ordering: name, recent or devtime")

	return cmd
}

// createLanguagesCommand creates the command listing the language options
func (a *App) createLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the language filter options",
		RunE: func(cmd *cobra.Command, args []string) error {
			languages, err := a.showcaseService.Languages()
			if err != nil {
				return err
			}
			options := append([]string{models.AllLanguages}, languages...)

			if a.jsonOutput(cmd) {
				return outputJSON(cmd.OutOrStdout(), options)
			}
			return outputLines(cmd.OutOrStdout(), options)
		},
	}
}

// createInitCommand creates the init command
func (a *App) createInitCommand() *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a showcase catalog in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			workingDir, err := workingDirectory()
			if err != nil {
				return err
			}
			configPath, err := writeDefaultConfig(workingDir)
			if err != nil {
				return err
			}

			seeded, err := a.InitializeStorage(sample)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Initialized showcase successfully")
			fmt.Fprintf(out, "Config file: %s\n", configPath)
			fmt.Fprintf(out, "Catalog: %s\n", a.storage.CatalogPath())
			if seeded > 0 {
				fmt.Fprintf(out, "Added %d sample projects\n", seeded)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "Seed the catalog with sample projects")

	return cmd
}

func outputLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
