package pages

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/zamm-dev/showcase/internal/cli/interactive/common"
	"github.com/zamm-dev/showcase/internal/models"
)

const (
	languageColumnWidth = 12
	commitColumnWidth   = 16
	daysColumnWidth     = 9
	columnPadding       = 8
)

// ProjectList is the list page: a scrollable table of projects
type ProjectList struct {
	table    table.Model
	projects []*models.Project
	width    int
	height   int
}

func NewProjectList() ProjectList {
	t := table.New(
		table.WithColumns(projectColumns(80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(5),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("4")).
		Bold(true)
	t.SetStyles(s)

	return ProjectList{table: t}
}

func projectColumns(width int) []table.Column {
	nameWidth := width - languageColumnWidth - commitColumnWidth - daysColumnWidth - columnPadding
	if nameWidth < 10 {
		nameWidth = 10
	}
	return []table.Column{
		{Title: "PROJECT", Width: nameWidth},
		{Title: "LANGUAGE", Width: languageColumnWidth},
		{Title: "LAST COMMIT", Width: commitColumnWidth},
		{Title: "DEV DAYS", Width: daysColumnWidth},
	}
}

// SetSize sets the dimensions of the list page
func (p *ProjectList) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.table.SetColumns(projectColumns(width))
	p.fitHeight()
}

// SetProjects replaces the rows. now anchors the relative commit times.
func (p *ProjectList) SetProjects(projects []*models.Project, now time.Time) {
	p.projects = projects
	rows := make([]table.Row, len(projects))
	for i, project := range projects {
		lastCommit := "never"
		if !project.LastCommit.IsZero() {
			lastCommit = humanize.RelTime(project.LastCommit, now, "ago", "from now")
		}
		rows[i] = table.Row{
			project.Name,
			project.Language,
			lastCommit,
			fmt.Sprintf("%d", project.DevelopmentDays),
		}
	}
	p.table.SetRows(rows)
	p.table.SetCursor(0)
	p.fitHeight()
}

func (p *ProjectList) fitHeight() {
	height := len(p.projects) + 2
	if p.height > 0 && height > p.height {
		height = p.height
	}
	p.table.SetHeight(height)
}

// Selected returns the project under the cursor
func (p *ProjectList) Selected() (*models.Project, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.projects) {
		return nil, false
	}
	return p.projects[i], true
}

// Update scrolls the table
func (p *ProjectList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

// View renders the list page
func (p *ProjectList) View() string {
	if len(p.projects) == 0 {
		return common.DimStyle().Render("No projects match the current filter")
	}

	view := p.table.View()
	if project, ok := p.Selected(); ok && project.Description != "" {
		view += "\n" + common.DimStyle().Render(project.Description)
	}
	return view
}
