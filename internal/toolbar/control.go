package toolbar

import (
	"github.com/zamm-dev/showcase/internal/models"
)

// ControlID names an interactive element of the toolbar
type ControlID string

const (
	ControlLanguage   ControlID = "language"
	ControlFilter     ControlID = "filter"
	ControlFilterMenu ControlID = "filter-menu"
	ControlClose      ControlID = "close"
	ControlPageToggle ControlID = "page-toggle"
)

// MenuItem is an entry of the filter menu
type MenuItem string

const (
	MenuRecentCommit    MenuItem = "recent-commit"
	MenuDevelopmentTime MenuItem = "development-time"
)

// Label returns the text shown for the menu item
func (m MenuItem) Label() string {
	switch m {
	case MenuRecentCommit:
		return "By Recent Commit"
	case MenuDevelopmentTime:
		return "By Development Time"
	}
	return string(m)
}

// MenuItems lists the filter menu entries in display order
var MenuItems = []MenuItem{MenuRecentCommit, MenuDevelopmentTime}

// Surface renders toolbar snapshots. Widget layers implement it and feed
// user input back through OnActivate, OnSelect and Dismiss.
type Surface interface {
	Render(view View) string
}

// View is an immutable snapshot of everything a surface draws
type View struct {
	Title            string
	Layout           Layout
	LanguageOptions  []string
	SelectedLanguage string
	MenuOpen         bool
	MenuAnchor       ControlID
	MenuItems        []MenuItem
	Page             models.Page
	Pages            []models.Page
}

// View snapshots the current state
func (t *Toolbar) View() View {
	layout := t.Layout()
	view := View{
		Layout:           layout,
		LanguageOptions:  t.LanguageOptions(),
		SelectedLanguage: t.selected,
		MenuOpen:         t.MenuOpen(),
		MenuAnchor:       t.menuAnchor,
	}
	if layout.ShowTitle {
		view.Title = t.config.Title
	}
	if view.MenuOpen {
		view.MenuItems = append([]MenuItem(nil), MenuItems...)
	}
	if layout.ShowPageToggle {
		view.Page = t.Page()
		view.Pages = append([]models.Page(nil), models.Pages...)
	}
	return view
}

// Render draws the toolbar with the given surface
func (t *Toolbar) Render(surface Surface) string {
	return surface.Render(t.View())
}

// OnActivate handles a press on a button-like control. It reports whether
// the activation was handled.
func (t *Toolbar) OnActivate(id ControlID) bool {
	switch id {
	case ControlFilter:
		t.OpenFilterMenu(id)
		return true
	case ControlClose:
		t.Close()
		return true
	}
	return false
}

// OnSelect handles a value chosen from a selector-like control. It reports
// whether the selection changed anything.
func (t *Toolbar) OnSelect(id ControlID, value string) bool {
	switch id {
	case ControlLanguage:
		return t.SelectLanguage(value)
	case ControlFilterMenu:
		return t.ChooseMenuItem(MenuItem(value))
	case ControlPageToggle:
		return t.TogglePage(models.Page(value))
	}
	return false
}

// Dismiss closes any transient overlay owned by the toolbar
func (t *Toolbar) Dismiss() {
	t.DismissMenu()
}
