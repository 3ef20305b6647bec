package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/zamm-dev/showcase/internal/models"
)

// Output formatting helpers

const maxNameWidth = 40

func outputJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func outputProjectTable(w io.Writer, projects []*models.Project, now time.Time) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROJECT\tLANGUAGE\tLAST COMMIT\tDEV DAYS")

	for _, project := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			ansi.Truncate(project.Name, maxNameWidth, "..."),
			project.Language,
			lastCommitLabel(project, now),
			humanize.Comma(int64(project.DevelopmentDays)),
		)
	}

	return tw.Flush()
}

func lastCommitLabel(project *models.Project, now time.Time) string {
	if project.LastCommit.IsZero() {
		return "-"
	}
	return humanize.RelTime(project.LastCommit, now, "ago", "from now")
}
