package toolbarview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zamm-dev/showcase/internal/cli/interactive/common"
	"github.com/zamm-dev/showcase/internal/toolbar"
)

// barPadding is the horizontal padding BarStyle adds on both sides
const barPadding = 2

// TerminalSurface draws toolbar snapshots as styled terminal text
type TerminalSurface struct {
	Width int
}

var _ toolbar.Surface = TerminalSurface{}

// Render implements toolbar.Surface
func (s TerminalSurface) Render(v toolbar.View) string {
	inner := s.Width - 2*barPadding
	if inner < 0 {
		inner = 0
	}

	controls := s.renderControls(v)

	var rows []string
	if v.Layout.ShowTitle {
		title := common.TitleStyle().Render(v.Title)
		gap := inner - lipgloss.Width(title) - lipgloss.Width(controls)
		if gap < 1 {
			gap = 1
		}
		rows = append(rows, title+strings.Repeat(" ", gap)+controls)
	} else {
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, controls))
	}

	if v.Layout.ShowPageToggle {
		rows = append(rows, s.renderToggle(v, inner))
	}

	return common.BarStyle(s.Width).Render(strings.Join(rows, "\n"))
}

func (s TerminalSurface) renderControls(v toolbar.View) string {
	filter := "Filter ▾"
	if v.MenuOpen {
		filter = "Filter ▴"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		common.SelectStyle().Render("Language: "+v.SelectedLanguage+" ▾"),
		" ",
		common.ButtonStyle().Render(filter),
		" ",
		common.CloseButtonStyle().Render("✕"),
	)
}

func (s TerminalSurface) renderToggle(v toolbar.View, inner int) string {
	if len(v.Pages) == 0 {
		return ""
	}
	cell := inner / len(v.Pages)
	if cell < 6 {
		cell = 6
	}

	options := make([]string, 0, len(v.Pages))
	for _, page := range v.Pages {
		active := page == v.Page
		marker := "□ "
		if active {
			marker = "■ "
		}
		options = append(options, common.ToggleStyle(active).Width(cell).Render(marker+page.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, options...)
}
