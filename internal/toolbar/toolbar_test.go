package toolbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/showcase/internal/models"
)

type recorder struct {
	languages       []string
	recentCommit    int
	developmentTime int
	closed          int
	pageRequests    []models.Page
	page            models.Page
}

func newRecorder() *recorder {
	return &recorder{page: models.PageList}
}

func (r *recorder) config(languages ...string) Config {
	return Config{
		OnFilterByLanguage:        func(l string) { r.languages = append(r.languages, l) },
		OnFilterByRecentCommit:    func() { r.recentCommit++ },
		OnFilterByDevelopmentTime: func() { r.developmentTime++ },
		OnClose:                   func() { r.closed++ },
		AvailableLanguages:        languages,
		Page:                      func() models.Page { return r.page },
		SetPage: func(p models.Page) {
			r.pageRequests = append(r.pageRequests, p)
			r.page = p
		},
	}
}

func TestNewToolbarInitialState(t *testing.T) {
	r := newRecorder()
	tb := New(r.config("Go", "Rust"))

	assert.Equal(t, DefaultLanguage, tb.SelectedLanguage())
	assert.Equal(t, []string{"All Langs", "Go", "Rust"}, tb.LanguageOptions())
	assert.False(t, tb.MenuOpen())
	_, anchored := tb.MenuAnchor()
	assert.False(t, anchored)
}

func TestEmptyLanguagesOfferOnlyDefault(t *testing.T) {
	tb := New(newRecorder().config())
	assert.Equal(t, []string{DefaultLanguage}, tb.LanguageOptions())
}

func TestDuplicateLanguagesRenderOnce(t *testing.T) {
	tb := New(newRecorder().config("Go", "Go", DefaultLanguage, "Rust"))
	assert.Equal(t, []string{"All Langs", "Go", "Rust"}, tb.LanguageOptions())
}

func TestSelectLanguage(t *testing.T) {
	r := newRecorder()
	tb := New(r.config("Go", "Rust"))

	require.True(t, tb.OnSelect(ControlLanguage, "Rust"))
	assert.Equal(t, "Rust", tb.SelectedLanguage())
	assert.Equal(t, []string{"Rust"}, r.languages)

	require.True(t, tb.OnSelect(ControlLanguage, "Go"))
	require.True(t, tb.OnSelect(ControlLanguage, DefaultLanguage))
	assert.Equal(t, DefaultLanguage, tb.SelectedLanguage())
	assert.Equal(t, []string{"Rust", "Go", "All Langs"}, r.languages)
}

func TestSelectLanguageSequence(t *testing.T) {
	r := newRecorder()
	tb := New(r.config("Go", "Rust", "Zig"))

	sequence := []string{"Zig", "Go", "All Langs", "Rust", "Go"}
	for i, lang := range sequence {
		tb.SelectLanguage(lang)
		assert.Equal(t, lang, tb.SelectedLanguage())
		require.Len(t, r.languages, i+1)
		assert.Equal(t, lang, r.languages[i])
	}
}

func TestSelectLanguageIgnoresUnknownAndRepeated(t *testing.T) {
	r := newRecorder()
	tb := New(r.config("Go"))

	assert.False(t, tb.SelectLanguage("COBOL"))
	assert.False(t, tb.SelectLanguage(DefaultLanguage))
	assert.Equal(t, DefaultLanguage, tb.SelectedLanguage())
	assert.Empty(t, r.languages)

	tb.SelectLanguage("Go")
	assert.False(t, tb.SelectLanguage("Go"))
	assert.Equal(t, []string{"Go"}, r.languages)
}

func TestFilterMenuRecentCommit(t *testing.T) {
	r := newRecorder()
	tb := New(r.config())

	require.True(t, tb.OnActivate(ControlFilter))
	assert.True(t, tb.MenuOpen())
	anchor, ok := tb.MenuAnchor()
	assert.True(t, ok)
	assert.Equal(t, ControlFilter, anchor)

	require.True(t, tb.OnSelect(ControlFilterMenu, string(MenuRecentCommit)))
	assert.Equal(t, 1, r.recentCommit)
	assert.Equal(t, 0, r.developmentTime)
	assert.False(t, tb.MenuOpen())
}

func TestFilterMenuDevelopmentTime(t *testing.T) {
	r := newRecorder()
	tb := New(r.config())

	tb.OnActivate(ControlFilter)
	require.True(t, tb.OnSelect(ControlFilterMenu, string(MenuDevelopmentTime)))
	assert.Equal(t, 1, r.developmentTime)
	assert.Equal(t, 0, r.recentCommit)
	assert.False(t, tb.MenuOpen())
}

func TestFilterMenuDismiss(t *testing.T) {
	r := newRecorder()
	tb := New(r.config())

	tb.OnActivate(ControlFilter)
	tb.Dismiss()
	assert.False(t, tb.MenuOpen())
	assert.Equal(t, 0, r.recentCommit)
	assert.Equal(t, 0, r.developmentTime)
}

func TestFilterMenuItemsNeedOpenMenu(t *testing.T) {
	r := newRecorder()
	tb := New(r.config())

	assert.False(t, tb.ChooseMenuItem(MenuRecentCommit))
	assert.Equal(t, 0, r.recentCommit)

	tb.OpenFilterMenu(ControlFilter)
	assert.False(t, tb.ChooseMenuItem(MenuItem("by-stars")))
	assert.True(t, tb.MenuOpen())
}

func TestFilterMenuReopens(t *testing.T) {
	r := newRecorder()
	tb := New(r.config())

	for i := 0; i < 3; i++ {
		tb.OnActivate(ControlFilter)
		assert.True(t, tb.MenuOpen())
		tb.ChooseMenuItem(MenuRecentCommit)
		assert.False(t, tb.MenuOpen())
	}
	assert.Equal(t, 3, r.recentCommit)
}

func TestCloseIgnoresOtherState(t *testing.T) {
	r := newRecorder()
	tb := New(r.config("Go"))

	tb.SelectLanguage("Go")
	tb.OnActivate(ControlFilter)
	require.True(t, tb.OnActivate(ControlClose))

	assert.Equal(t, 1, r.closed)
	assert.True(t, tb.MenuOpen())
	assert.Equal(t, "Go", tb.SelectedLanguage())
}

func TestLayoutBreakpoint(t *testing.T) {
	cases := []struct {
		width  int
		narrow bool
	}{
		{320, true},
		{600, true},
		{601, false},
		{1280, false},
	}
	for _, tc := range cases {
		layout := LayoutFor(tc.width, DefaultBreakpointPx)
		assert.Equal(t, tc.narrow, layout.Narrow, "width %d", tc.width)
		assert.Equal(t, !tc.narrow, layout.ShowTitle, "width %d", tc.width)
		assert.Equal(t, tc.narrow, layout.ShowPageToggle, "width %d", tc.width)
	}
}

func TestViewFollowsViewport(t *testing.T) {
	r := newRecorder()
	r.page = models.PageAI
	tb := New(r.config())

	tb.Resize(1024)
	view := tb.View()
	assert.Equal(t, Title, view.Title)
	assert.Empty(t, view.Pages)

	tb.Resize(480)
	view = tb.View()
	assert.Empty(t, view.Title)
	assert.Equal(t, models.PageAI, view.Page)
	assert.Equal(t, []models.Page{models.PageList, models.PageAI}, view.Pages)

	tb.Resize(800)
	assert.Equal(t, Title, tb.View().Title)
}

func TestTogglePage(t *testing.T) {
	r := newRecorder()
	tb := New(r.config())
	tb.Resize(400)

	require.True(t, tb.OnSelect(ControlPageToggle, "ai"))
	assert.Equal(t, []models.Page{models.PageAI}, r.pageRequests)

	assert.False(t, tb.OnSelect(ControlPageToggle, "ai"))
	assert.Len(t, r.pageRequests, 1)

	require.True(t, tb.TogglePage(models.PageList))
	assert.Equal(t, []models.Page{models.PageAI, models.PageList}, r.pageRequests)
}

func TestTogglePageReadsParentPage(t *testing.T) {
	r := newRecorder()
	tb := New(Config{
		Page:    func() models.Page { return r.page },
		SetPage: func(p models.Page) { r.pageRequests = append(r.pageRequests, p) },
	})
	tb.Resize(400)

	// the parent ignores the request, so the toolbar keeps showing list
	tb.TogglePage(models.PageAI)
	assert.Equal(t, models.PageList, tb.View().Page)

	r.page = models.PageAI
	assert.Equal(t, models.PageAI, tb.View().Page)
	assert.False(t, tb.TogglePage(models.PageAI))
}

func TestTogglePageHiddenOnWideLayout(t *testing.T) {
	r := newRecorder()
	tb := New(r.config())
	tb.Resize(900)

	assert.False(t, tb.TogglePage(models.PageAI))
	assert.Empty(t, r.pageRequests)
}

func TestPageToggleWhileMenuOpen(t *testing.T) {
	r := newRecorder()
	tb := New(r.config())
	tb.Resize(400)

	tb.OnActivate(ControlFilter)
	require.True(t, tb.TogglePage(models.PageAI))
	assert.True(t, tb.MenuOpen())
}

func TestNilCallbacks(t *testing.T) {
	tb := New(Config{AvailableLanguages: []string{"Go"}})
	tb.Resize(100)

	assert.NotPanics(t, func() {
		tb.SelectLanguage("Go")
		tb.OnActivate(ControlFilter)
		tb.ChooseMenuItem(MenuDevelopmentTime)
		tb.Close()
		tb.TogglePage(models.PageAI)
	})
	assert.Equal(t, models.PageList, tb.Page())
}

type textSurface struct{}

func (textSurface) Render(v View) string {
	parts := []string{v.Title, v.SelectedLanguage}
	if v.MenuOpen {
		for _, item := range v.MenuItems {
			parts = append(parts, item.Label())
		}
	}
	for _, p := range v.Pages {
		parts = append(parts, p.Label())
	}
	return strings.Join(parts, "|")
}

func TestRenderThroughSurface(t *testing.T) {
	tb := New(newRecorder().config("Go"))
	tb.Resize(700)
	assert.Equal(t, "Tool Bar|All Langs", tb.Render(textSurface{}))

	tb.OnActivate(ControlFilter)
	assert.Equal(t, "Tool Bar|All Langs|By Recent Commit|By Development Time", tb.Render(textSurface{}))

	tb.Dismiss()
	tb.Resize(300)
	assert.Equal(t, "|All Langs|List|AI", tb.Render(textSurface{}))
}

func TestSetAvailableLanguagesKeepsSelection(t *testing.T) {
	r := newRecorder()
	tb := New(r.config())

	tb.SetAvailableLanguages([]string{"Go", "Rust"})
	assert.Equal(t, []string{"All Langs", "Go", "Rust"}, tb.LanguageOptions())

	tb.SelectLanguage("Rust")
	tb.SetAvailableLanguages([]string{"Rust", "Zig"})
	assert.Equal(t, "Rust", tb.SelectedLanguage())
	assert.Equal(t, []string{"All Langs", "Rust", "Zig"}, tb.LanguageOptions())
	assert.Equal(t, []string{"Rust"}, r.languages)
}

func TestSetAvailableLanguagesKeepsStaleSelectionSelectable(t *testing.T) {
	r := newRecorder()
	tb := New(r.config("Go", "Rust"))

	tb.SelectLanguage("Rust")
	tb.SetAvailableLanguages([]string{"Go"})

	assert.Equal(t, "Rust", tb.SelectedLanguage())
	assert.Equal(t, []string{"All Langs", "Go", "Rust"}, tb.LanguageOptions())
	assert.Contains(t, tb.View().LanguageOptions, tb.View().SelectedLanguage)

	require.True(t, tb.SelectLanguage("Go"))
	tb.SetAvailableLanguages([]string{"Go"})
	assert.Equal(t, []string{"All Langs", "Go"}, tb.LanguageOptions())
}
