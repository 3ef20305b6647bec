package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/zamm-dev/showcase/internal/cli/interactive/common"
	"github.com/zamm-dev/showcase/internal/services"
)

const barWidth = 24

// RenderInsights renders the AI page from locally computed statistics
func RenderInsights(insights services.Insights, now time.Time, width int) string {
	if insights.Total == 0 {
		return common.DimStyle().Render("No projects to analyse")
	}

	var sb strings.Builder
	sb.WriteString(common.HeaderStyle().Render("Catalog insights"))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%s across %s\n",
		plural(insights.Total, "project"),
		plural(len(insights.Languages), "language"),
	))
	sb.WriteString(fmt.Sprintf("%s days of development, %s on average\n",
		humanize.Comma(int64(insights.TotalDevelopmentDays)),
		humanize.FormatFloat("#,###.#", insights.AverageDevelopmentDays),
	))
	if insights.MostRecent != nil {
		sb.WriteString(fmt.Sprintf("Most recently active: %s (%s)\n",
			common.HighlightStyle().Render(insights.MostRecent.Name),
			humanize.RelTime(insights.MostRecent.LastCommit, now, "ago", "from now"),
		))
	}
	if insights.LongestRunning != nil {
		sb.WriteString(fmt.Sprintf("Longest running: %s (%d days)\n",
			common.HighlightStyle().Render(insights.LongestRunning.Name),
			insights.LongestRunning.DevelopmentDays,
		))
	}

	sb.WriteString("\n")
	sb.WriteString(common.HeaderStyle().Render("Languages"))
	sb.WriteString("\n")

	labelWidth := 0
	for _, lang := range insights.Languages {
		if w := lipgloss.Width(lang.Language); w > labelWidth {
			labelWidth = w
		}
	}
	for _, lang := range insights.Languages {
		filled := lang.Projects * barWidth / insights.Total
		if filled == 0 {
			filled = 1
		}
		label := lipgloss.NewStyle().Width(labelWidth).Render(lang.Language)
		bar := common.HighlightStyle().Render(strings.Repeat("█", filled))
		sb.WriteString(fmt.Sprintf("%s  %s %d\n", label, bar, lang.Projects))
	}

	out := strings.TrimRight(sb.String(), "\n")
	if width > 0 {
		out = lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	return out
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
