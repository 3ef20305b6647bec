package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/showcase/internal/models"
)

const dateLayout = "2006-01-02"

// createProjectCommand creates the catalog management commands
func (a *App) createProjectCommand() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage catalog projects",
		Long:  "Add, show and remove projects in the showcase catalog.",
	}

	// project add
	var name, language, description, url, lastCommit string
	var days int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			committed := timeNow().UTC().Truncate(time.Second)
			if lastCommit != "" {
				parsed, err := time.Parse(dateLayout, lastCommit)
				if err != nil {
					return models.NewShowcaseErrorWithCause(models.ErrTypeValidation, "invalid --last-commit date, expected YYYY-MM-DD", err)
				}
				committed = parsed
			}

			project := models.NewProject(name, language, committed, days)
			project.Description = description
			project.URL = url
			if err := a.showcaseService.AddProject(project); err != nil {
				return err
			}

			if a.jsonOutput(cmd) {
				return outputJSON(cmd.OutOrStdout(), project)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added project: %s\n", project.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", project.Name)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Project name (required)")
	addCmd.Flags().StringVar(&language, "language", "", "Primary language (required)")
	addCmd.Flags().StringVar(&description, "description", "", "Short description")
	addCmd.Flags().StringVar(&url, "url", "", "Project URL")
	addCmd.Flags().StringVar(&lastCommit, "last-commit", "", "Date of the last commit (YYYY-MM-DD, default today)")
	addCmd.Flags().IntVar(&days, "days", 0, "Days of development")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("language")

	// project show
	showCmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.showcaseService.GetProject(args[0])
			if err != nil {
				return err
			}

			if a.jsonOutput(cmd) {
				return outputJSON(cmd.OutOrStdout(), project)
			}
			return outputProjectDetails(cmd.OutOrStdout(), project, timeNow())
		},
	}

	// project remove
	removeCmd := &cobra.Command{
		Use:     "remove <project-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a project from the catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.showcaseService.GetProject(args[0])
			if err != nil {
				return err
			}
			if err := a.showcaseService.RemoveProject(project.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed project: %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	projectCmd.AddCommand(addCmd, showCmd, removeCmd)
	return projectCmd
}

func outputProjectDetails(w io.Writer, project *models.Project, now time.Time) error {
	fmt.Fprintf(w, "ID: %s\n", project.ID)
	fmt.Fprintf(w, "Name: %s\n", project.Name)
	fmt.Fprintf(w, "Language: %s\n", project.Language)
	fmt.Fprintf(w, "Last commit: %s\n", lastCommitLabel(project, now))
	fmt.Fprintf(w, "Development days: %d\n", project.DevelopmentDays)
	if project.URL != "" {
		fmt.Fprintf(w, "URL: %s\n", project.URL)
	}
	if project.Description != "" {
		fmt.Fprintf(w, "\n%s\n", project.Description)
	}
	return nil
}
