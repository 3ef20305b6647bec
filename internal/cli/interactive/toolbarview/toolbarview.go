// Package toolbarview drives a toolbar.Toolbar from bubbletea messages and
// draws it in the terminal.
package toolbarview

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zamm-dev/showcase/internal/cli/interactive/common"
	"github.com/zamm-dev/showcase/internal/models"
	"github.com/zamm-dev/showcase/internal/toolbar"
)

// DefaultCellWidthPx approximates the width of one terminal column
const DefaultCellWidthPx = 8

// Model maps keys onto toolbar activations and selections. The language
// picker is local widget state; the filter menu mirrors the toolbar's menu
// anchor and is rebuilt whenever the toolbar opens it.
type Model struct {
	toolbar     *toolbar.Toolbar
	cellWidthPx int
	width       int

	languagePicker *common.Picker
	filterMenu     *common.Picker

	keys     keyMap
	help     help.Model
	showHelp bool
}

// New wraps tb. cellWidthPx converts terminal columns to logical pixels.
func New(tb *toolbar.Toolbar, cellWidthPx int) *Model {
	if tb == nil {
		panic("toolbar cannot be nil in toolbarview.New")
	}
	if cellWidthPx <= 0 {
		cellWidthPx = DefaultCellWidthPx
	}
	return &Model{
		toolbar:     tb,
		cellWidthPx: cellWidthPx,
		keys:        keys,
		help:        help.New(),
	}
}

// Toolbar returns the wrapped interaction model
func (m *Model) Toolbar() *toolbar.Toolbar {
	return m.toolbar
}

// SetWidth records the terminal width in columns
func (m *Model) SetWidth(columns int) {
	m.width = columns
	m.help.Width = columns
	m.toolbar.Resize(columns * m.cellWidthPx)
}

// LanguagePickerOpen reports whether the language dropdown is showing
func (m *Model) LanguagePickerOpen() bool {
	return m.languagePicker != nil
}

// Update handles a message and reports whether the toolbar consumed it
func (m *Model) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return false, nil
	case tea.KeyMsg:
		handled, cmd := m.handleKey(msg)
		m.syncFilterMenu()
		return handled, cmd
	}
	return false, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.languagePicker != nil {
		return true, m.handleLanguagePickerKey(msg)
	}

	// close and page toggle stay live while the filter menu is open
	switch {
	case key.Matches(msg, m.keys.Close):
		m.toolbar.OnActivate(toolbar.ControlClose)
		return true, nil
	case key.Matches(msg, m.keys.TogglePage):
		return m.selectPage(m.otherPage()), nil
	case key.Matches(msg, m.keys.ListPage):
		return m.selectPage(models.PageList), nil
	case key.Matches(msg, m.keys.AIPage):
		return m.selectPage(models.PageAI), nil
	}

	if m.toolbar.MenuOpen() {
		return true, m.handleFilterMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Language):
		m.openLanguagePicker()
		return true, nil
	case key.Matches(msg, m.keys.Filter):
		m.toolbar.OnActivate(toolbar.ControlFilter)
		return true, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return true, nil
	}
	return false, nil
}

func (m *Model) handleLanguagePickerKey(msg tea.KeyMsg) tea.Cmd {
	picker, result, cmd := m.languagePicker.HandleKey(msg)
	m.languagePicker = &picker

	switch result {
	case common.PickerChosen:
		value, _ := picker.Selected()
		m.languagePicker = nil
		m.toolbar.OnSelect(toolbar.ControlLanguage, value)
	case common.PickerDismissed:
		m.languagePicker = nil
	}
	return cmd
}

func (m *Model) handleFilterMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.RecentCommit):
		m.toolbar.OnSelect(toolbar.ControlFilterMenu, string(toolbar.MenuRecentCommit))
		return nil
	case key.Matches(msg, m.keys.DevelopmentTime):
		m.toolbar.OnSelect(toolbar.ControlFilterMenu, string(toolbar.MenuDevelopmentTime))
		return nil
	}

	if m.filterMenu == nil {
		m.syncFilterMenu()
	}
	menu, result, cmd := m.filterMenu.HandleKey(msg)
	m.filterMenu = &menu

	switch result {
	case common.PickerChosen:
		value, _ := menu.Selected()
		m.toolbar.OnSelect(toolbar.ControlFilterMenu, value)
	case common.PickerDismissed:
		m.toolbar.Dismiss()
	}
	return cmd
}

// selectPage reports whether the toggle was visible to receive the key
func (m *Model) selectPage(page models.Page) bool {
	if !m.toolbar.Layout().ShowPageToggle {
		return false
	}
	m.toolbar.OnSelect(toolbar.ControlPageToggle, page.String())
	return true
}

func (m *Model) otherPage() models.Page {
	if m.toolbar.Page() == models.PageAI {
		return models.PageList
	}
	return models.PageAI
}

func (m *Model) openLanguagePicker() {
	options := m.toolbar.LanguageOptions()
	items := make([]common.PickerItem, 0, len(options))
	for _, option := range options {
		items = append(items, common.PickerItem{Value: option, Label: option})
	}
	picker := common.NewPicker("Language", items, m.toolbar.SelectedLanguage())
	m.languagePicker = &picker
}

// syncFilterMenu keeps the menu widget in step with the toolbar's anchor
func (m *Model) syncFilterMenu() {
	if !m.toolbar.MenuOpen() {
		m.filterMenu = nil
		return
	}
	if m.filterMenu != nil {
		return
	}
	items := make([]common.PickerItem, 0, len(toolbar.MenuItems))
	for _, item := range toolbar.MenuItems {
		items = append(items, common.PickerItem{Value: string(item), Label: item.Label()})
	}
	menu := common.NewPicker("Filter", items, "")
	m.filterMenu = &menu
}

// Popup returns the widget to draw over the screen, if any
func (m *Model) Popup() (tea.Model, bool) {
	if m.languagePicker != nil {
		return *m.languagePicker, true
	}
	m.syncFilterMenu()
	if m.filterMenu != nil {
		return *m.filterMenu, true
	}
	return nil, false
}

// View renders the toolbar strip
func (m *Model) View() string {
	return m.toolbar.Render(TerminalSurface{Width: m.width})
}

// Height returns the number of lines View occupies
func (m *Model) Height() int {
	return lipgloss.Height(m.View())
}

// HelpView renders the key help line
func (m *Model) HelpView() string {
	return strings.TrimRight(m.help.View(m.keys), "\n")
}
