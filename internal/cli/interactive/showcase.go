package interactive

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/zamm-dev/showcase/internal/cli/interactive/common"
	"github.com/zamm-dev/showcase/internal/cli/interactive/pages"
	"github.com/zamm-dev/showcase/internal/cli/interactive/toolbarview"
	"github.com/zamm-dev/showcase/internal/models"
	"github.com/zamm-dev/showcase/internal/services"
	"github.com/zamm-dev/showcase/internal/toolbar"
	"go.uber.org/zap"
)

// chromeLines is the number of lines around the page body: the gap under the
// toolbar, the gap above the status line, the status line and the help line
const chromeLines = 4

// Model is the showcase screen. It owns the page, the filter and the loaded
// catalog, and supplies the toolbar with its callbacks.
type Model struct {
	coordinator *Coordinator
	logger      *zap.Logger
	debugWriter io.Writer
	now         func() time.Time

	toolbar *toolbarview.Model
	list    pages.ProjectList

	page     models.Page
	filter   models.FilterState
	all      []*models.Project
	visible  []*models.Project
	loaded   bool
	loadErr  error
	quitting bool

	width  int
	height int
}

// Option customises a Model
type Option func(*Model)

// WithLogger sets the structured logger used for toolbar events
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDebugWriter dumps every message to w
func WithDebugWriter(w io.Writer) Option {
	return func(m *Model) {
		m.debugWriter = w
	}
}

// WithPage sets the page shown first
func WithPage(page models.Page) Option {
	return func(m *Model) {
		if page == models.PageList || page == models.PageAI {
			m.page = page
		}
	}
}

// WithClock replaces time.Now for relative timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// NewModel creates the showcase screen. The catalog is loaded by Init.
func NewModel(app AppInterface, opts ...Option) *Model {
	if app == nil {
		panic("app cannot be nil in NewModel")
	}

	m := &Model{
		coordinator: NewCoordinator(app),
		logger:      zap.NewNop(),
		now:         time.Now,
		list:        pages.NewProjectList(),
		page:        models.PageList,
		filter:      models.FilterState{Language: models.AllLanguages},
		width:       80,
		height:      24,
	}
	for _, opt := range opts {
		opt(m)
	}

	cfg := app.Config()
	tb := toolbar.New(toolbar.Config{
		OnFilterByLanguage:        m.filterByLanguage,
		OnFilterByRecentCommit:    m.filterByRecentCommit,
		OnFilterByDevelopmentTime: m.filterByDevelopmentTime,
		OnClose:                   m.close,
		Page:                      m.currentPage,
		SetPage:                   m.setPage,
		Title:                     cfg.ToolbarTitle(),
		BreakpointPx:              cfg.BreakpointPx(),
	})
	m.toolbar = toolbarview.New(tb, cfg.CellWidthPx())
	m.resize(m.width, m.height)

	return m
}

func (m *Model) currentPage() models.Page {
	return m.page
}

func (m *Model) setPage(page models.Page) {
	m.logger.Debug("page requested", zap.Stringer("from", m.page), zap.Stringer("to", page))
	m.page = page
}

func (m *Model) filterByLanguage(language string) {
	m.logger.Debug("filter by language", zap.String("language", language))
	m.filter.Language = language
	m.applyFilter()
}

func (m *Model) filterByRecentCommit() {
	m.logger.Debug("filter by recent commit")
	m.filter.Ordering = models.OrderByRecentCommit
	m.applyFilter()
}

func (m *Model) filterByDevelopmentTime() {
	m.logger.Debug("filter by development time")
	m.filter.Ordering = models.OrderByDevelopmentTime
	m.applyFilter()
}

func (m *Model) close() {
	m.logger.Info("toolbar closed")
	m.quitting = true
}

func (m *Model) applyFilter() {
	m.visible = services.FilterProjects(m.all, m.filter)
	m.list.SetProjects(m.visible, m.now())
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.toolbar.SetWidth(width)

	bodyHeight := height - m.toolbar.Height() - chromeLines
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.list.SetSize(width, bodyHeight)
}

// Page returns the active page
func (m *Model) Page() models.Page {
	return m.page
}

// Filter returns the active language filter and ordering
func (m *Model) Filter() models.FilterState {
	return m.filter
}

// VisibleProjects returns the projects after filtering
func (m *Model) VisibleProjects() []*models.Project {
	return m.visible
}

// Toolbar returns the toolbar interaction model
func (m *Model) Toolbar() *toolbar.Toolbar {
	return m.toolbar.Toolbar()
}

// Quitting reports whether the close action was used
func (m *Model) Quitting() bool {
	return m.quitting
}

// Init loads the catalog
func (m *Model) Init() tea.Cmd {
	return m.coordinator.LoadProjectsCmd()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.debugWriter != nil {
		spew.Fdump(m.debugWriter, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ProjectsLoadedMsg:
		m.loaded = true
		m.loadErr = msg.err
		if msg.err != nil {
			m.logger.Error("failed to load catalog", zap.Error(msg.err))
			return m, nil
		}
		m.all = msg.projects
		m.Toolbar().SetAvailableLanguages(msg.languages)
		m.applyFilter()
		m.logger.Info("catalog loaded", zap.Int("projects", len(msg.projects)), zap.Int("languages", len(msg.languages)))
		return m, nil

	case ReloadProjectsMsg:
		return m, m.coordinator.LoadProjectsCmd()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		handled, cmd := m.toolbar.Update(msg)
		if m.quitting {
			return m, tea.Quit
		}
		if handled {
			return m, cmd
		}

		if msg.Type == tea.KeyCtrlR {
			return m, func() tea.Msg { return ReloadProjectsMsg{} }
		}
		if m.page == models.PageList {
			return m, m.list.Update(msg)
		}
	}

	return m, nil
}

// View renders the showcase screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.toolbar.View(),
		"",
		m.bodyView(),
		"",
		m.statusView(),
		m.toolbar.HelpView(),
	)

	if popup, ok := m.toolbar.Popup(); ok {
		return overlay.New(
			popup,
			rendered(screen),
			overlay.Right,
			overlay.Top,
			0,
			m.toolbar.Height(),
		).View()
	}
	return screen
}

func (m *Model) bodyView() string {
	switch {
	case !m.loaded:
		return common.DimStyle().Render("Loading catalog...")
	case m.loadErr != nil:
		return common.DimStyle().Render("Catalog unavailable, press ctrl+r to retry")
	case m.page == models.PageAI:
		return pages.RenderInsights(m.coordinator.Insights(m.visible), m.now(), m.width)
	default:
		return m.list.View()
	}
}

func (m *Model) statusView() string {
	if !m.loaded {
		return ""
	}
	if m.loadErr != nil {
		return common.ErrorStyle().Render(fmt.Sprintf("Error: %v", m.loadErr))
	}
	return common.DimStyle().Render(fmt.Sprintf("Showing %d of %d · language: %s · order: %s · page: %s",
		len(m.visible), len(m.all), m.filter.Language, m.filter.Ordering, m.page.Label()))
}
