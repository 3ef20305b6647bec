// Package toolbar holds the interaction model of the showcase toolbar: the
// language selector, the filter menu, the close action and the page toggle
// shown on narrow viewports. It keeps only ephemeral UI state and forwards
// every request to callbacks owned by its parent. Rendering is left to a
// Surface so the same state machine can drive any widget layer.
package toolbar

import (
	"github.com/zamm-dev/showcase/internal/models"
)

// DefaultLanguage is the option selected before the user picks a language
const DefaultLanguage = models.AllLanguages

// Title is the label shown on wide layouts
const Title = "Tool Bar"

// Config carries everything the parent supplies to the toolbar.
// Nil callbacks are treated as no-ops.
type Config struct {
	OnFilterByLanguage        func(language string)
	OnFilterByRecentCommit    func()
	OnFilterByDevelopmentTime func()
	OnClose                   func()
	AvailableLanguages        []string

	// Page reads the parent-owned page on every render
	Page func() models.Page
	// SetPage asks the parent to switch pages
	SetPage func(page models.Page)

	// Title overrides the wide-layout label
	Title string
	// BreakpointPx overrides DefaultBreakpointPx
	BreakpointPx int
}

// Toolbar is the interaction model. It is not safe for concurrent use; all
// calls are expected from a single UI event loop.
type Toolbar struct {
	config   Config
	options  []string
	selected string

	// menuAnchor is the control that opened the filter menu, empty while closed
	menuAnchor ControlID

	viewportPx int
}

// New creates a toolbar in its initial state: default language selected and
// the filter menu closed.
func New(config Config) *Toolbar {
	if config.Title == "" {
		config.Title = Title
	}
	if config.BreakpointPx <= 0 {
		config.BreakpointPx = DefaultBreakpointPx
	}
	return &Toolbar{
		config:   config,
		options:  languageOptions(config.AvailableLanguages),
		selected: DefaultLanguage,
	}
}

// languageOptions prepends the default sentinel and drops repeated values so
// each option renders once.
func languageOptions(available []string) []string {
	options := make([]string, 0, len(available)+1)
	seen := map[string]bool{DefaultLanguage: true}
	options = append(options, DefaultLanguage)
	for _, lang := range available {
		if seen[lang] {
			continue
		}
		seen[lang] = true
		options = append(options, lang)
	}
	return options
}

// SetAvailableLanguages replaces the parent-supplied language list. The
// current selection is kept, like any other local state across a re-render,
// and stays among the options even when the new list no longer has it.
func (t *Toolbar) SetAvailableLanguages(available []string) {
	t.config.AvailableLanguages = available
	t.options = languageOptions(available)
	if !t.hasOption(t.selected) {
		t.options = append(t.options, t.selected)
	}
}

// SelectedLanguage returns the language currently shown by the selector
func (t *Toolbar) SelectedLanguage() string {
	return t.selected
}

// LanguageOptions returns the selector options, default first
func (t *Toolbar) LanguageOptions() []string {
	out := make([]string, len(t.options))
	copy(out, t.options)
	return out
}

// MenuOpen reports whether the filter menu is visible
func (t *Toolbar) MenuOpen() bool {
	return t.menuAnchor != ""
}

// MenuAnchor returns the control that opened the filter menu
func (t *Toolbar) MenuAnchor() (ControlID, bool) {
	return t.menuAnchor, t.menuAnchor != ""
}

// Page returns the parent-owned page
func (t *Toolbar) Page() models.Page {
	if t.config.Page == nil {
		return models.PageList
	}
	return t.config.Page()
}

// SelectLanguage updates the selector and notifies the parent in the same
// step. Values that are not among the options, or equal to the current
// selection, are ignored.
func (t *Toolbar) SelectLanguage(language string) bool {
	if language == t.selected || !t.hasOption(language) {
		return false
	}
	t.selected = language
	if t.config.OnFilterByLanguage != nil {
		t.config.OnFilterByLanguage(language)
	}
	return true
}

func (t *Toolbar) hasOption(language string) bool {
	for _, option := range t.options {
		if option == language {
			return true
		}
	}
	return false
}

// OpenFilterMenu opens the filter menu anchored at the given control
func (t *Toolbar) OpenFilterMenu(anchor ControlID) {
	if anchor == "" {
		anchor = ControlFilter
	}
	t.menuAnchor = anchor
}

// ChooseMenuItem runs the filter action for item and closes the menu.
// It does nothing while the menu is closed.
func (t *Toolbar) ChooseMenuItem(item MenuItem) bool {
	if !t.MenuOpen() {
		return false
	}
	var callback func()
	switch item {
	case MenuRecentCommit:
		callback = t.config.OnFilterByRecentCommit
	case MenuDevelopmentTime:
		callback = t.config.OnFilterByDevelopmentTime
	default:
		return false
	}
	if callback != nil {
		callback()
	}
	t.menuAnchor = ""
	return true
}

// DismissMenu closes the filter menu without running a filter action
func (t *Toolbar) DismissMenu() {
	t.menuAnchor = ""
}

// Close forwards the close request. Menu and language state are untouched.
func (t *Toolbar) Close() {
	if t.config.OnClose != nil {
		t.config.OnClose()
	}
}

// TogglePage asks the parent to show page. Choosing the page that is already
// active, or using the toggle while it is hidden, does nothing.
func (t *Toolbar) TogglePage(page models.Page) bool {
	if !t.Layout().ShowPageToggle {
		return false
	}
	if page != models.PageList && page != models.PageAI {
		return false
	}
	if page == t.Page() {
		return false
	}
	if t.config.SetPage != nil {
		t.config.SetPage(page)
	}
	return true
}

// Resize records the viewport width in logical pixels
func (t *Toolbar) Resize(widthPx int) {
	t.viewportPx = widthPx
}

// Layout derives the rendering mode from the last viewport width
func (t *Toolbar) Layout() Layout {
	return LayoutFor(t.viewportPx, t.config.BreakpointPx)
}
