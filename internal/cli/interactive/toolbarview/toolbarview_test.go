package toolbarview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/showcase/internal/models"
	"github.com/zamm-dev/showcase/internal/toolbar"
)

type calls struct {
	languages       []string
	recentCommit    int
	developmentTime int
	closed          int
	page            models.Page
	pageRequests    int
}

func newTestView(t *testing.T, columns int, languages ...string) (*Model, *calls) {
	t.Helper()
	c := &calls{page: models.PageList}
	tb := toolbar.New(toolbar.Config{
		OnFilterByLanguage:        func(l string) { c.languages = append(c.languages, l) },
		OnFilterByRecentCommit:    func() { c.recentCommit++ },
		OnFilterByDevelopmentTime: func() { c.developmentTime++ },
		OnClose:                   func() { c.closed++ },
		AvailableLanguages:        languages,
		Page:                      func() models.Page { return c.page },
		SetPage: func(p models.Page) {
			c.pageRequests++
			c.page = p
		},
	})
	m := New(tb, DefaultCellWidthPx)
	m.Update(tea.WindowSizeMsg{Width: columns, Height: 24})
	return m, c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWideLayoutShowsTitle(t *testing.T) {
	m, _ := newTestView(t, 100, "Go")

	view := m.View()
	assert.Contains(t, view, "Tool Bar")
	assert.Contains(t, view, "Language: All Langs")
	assert.Contains(t, view, "Filter")
	assert.NotContains(t, view, "List")
	assert.Equal(t, 1, m.Height())
}

func TestNarrowLayoutShowsToggle(t *testing.T) {
	m, c := newTestView(t, 60, "Go")

	view := m.View()
	assert.NotContains(t, view, "Tool Bar")
	assert.Contains(t, view, "■ List")
	assert.Contains(t, view, "□ AI")
	assert.Equal(t, 2, m.Height())

	c.page = models.PageAI
	assert.Contains(t, m.View(), "■ AI")
}

func TestBreakpointAtSeventyFiveColumns(t *testing.T) {
	m, _ := newTestView(t, 75)
	assert.True(t, m.Toolbar().Layout().Narrow)

	m.Update(tea.WindowSizeMsg{Width: 76, Height: 24})
	assert.False(t, m.Toolbar().Layout().Narrow)
}

func TestLanguagePicker(t *testing.T) {
	m, c := newTestView(t, 100, "Go", "Rust")

	handled, _ := m.Update(runes("l"))
	require.True(t, handled)
	require.True(t, m.LanguagePickerOpen())
	popup, ok := m.Popup()
	require.True(t, ok)
	assert.Contains(t, popup.View(), "Rust")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.LanguagePickerOpen())
	assert.Equal(t, []string{"Rust"}, c.languages)
	assert.Equal(t, "Rust", m.Toolbar().SelectedLanguage())
	assert.Contains(t, m.View(), "Language: Rust")
}

func TestLanguagePickerEscape(t *testing.T) {
	m, c := newTestView(t, 100, "Go")

	m.Update(runes("l"))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.LanguagePickerOpen())
	assert.Empty(t, c.languages)
	_, ok := m.Popup()
	assert.False(t, ok)
}

func TestFilterMenuWithEnter(t *testing.T) {
	m, c := newTestView(t, 100)

	m.Update(runes("f"))
	require.True(t, m.Toolbar().MenuOpen())
	popup, ok := m.Popup()
	require.True(t, ok)
	assert.Contains(t, popup.View(), "By Recent Commit")
	assert.Contains(t, popup.View(), "By Development Time")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, c.developmentTime)
	assert.Equal(t, 0, c.recentCommit)
	assert.False(t, m.Toolbar().MenuOpen())
	_, ok = m.Popup()
	assert.False(t, ok)
}

func TestFilterMenuHotkeys(t *testing.T) {
	m, c := newTestView(t, 100)

	m.Update(runes("f"))
	m.Update(runes("r"))
	assert.Equal(t, 1, c.recentCommit)
	assert.False(t, m.Toolbar().MenuOpen())

	// hotkeys do nothing while the menu is closed
	handled, _ := m.Update(runes("d"))
	assert.False(t, handled)
	assert.Equal(t, 0, c.developmentTime)
}

func TestFilterMenuDismiss(t *testing.T) {
	m, c := newTestView(t, 100)

	m.Update(runes("f"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Toolbar().MenuOpen())
	assert.Zero(t, c.recentCommit)
	assert.Zero(t, c.developmentTime)
}

func TestFilterMenuReopensWithCursorReset(t *testing.T) {
	m, c := newTestView(t, 100)

	m.Update(runes("f"))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m.Update(runes("f"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, c.recentCommit)
}

func TestCloseWhileMenuOpen(t *testing.T) {
	m, c := newTestView(t, 100)

	m.Update(runes("f"))
	handled, _ := m.Update(runes("x"))
	assert.True(t, handled)
	assert.Equal(t, 1, c.closed)
	assert.True(t, m.Toolbar().MenuOpen())
}

func TestPageToggleKeys(t *testing.T) {
	m, c := newTestView(t, 60)

	handled, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, handled)
	assert.Equal(t, models.PageAI, c.page)

	m.Update(runes("2"))
	assert.Equal(t, 1, c.pageRequests)

	m.Update(runes("1"))
	assert.Equal(t, models.PageList, c.page)
	assert.Equal(t, 2, c.pageRequests)
}

func TestPageToggleIgnoredWhenWide(t *testing.T) {
	m, c := newTestView(t, 120)

	handled, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, handled)
	assert.Zero(t, c.pageRequests)
}

func TestUnknownKeysPassThrough(t *testing.T) {
	m, _ := newTestView(t, 100)

	handled, _ := m.Update(runes("z"))
	assert.False(t, handled)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestView(t, 120)

	short := m.HelpView()
	m.Update(runes("?"))
	full := m.HelpView()

	assert.Contains(t, short, "filter")
	assert.Contains(t, full, "by recent commit")
	assert.Greater(t, strings.Count(full, "\n"), strings.Count(short, "\n"))
}
