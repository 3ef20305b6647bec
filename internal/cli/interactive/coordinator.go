package interactive

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zamm-dev/showcase/internal/models"
	"github.com/zamm-dev/showcase/internal/services"
)

type AppInterface interface {
	ShowcaseService() services.ShowcaseService
	Config() ConfigInterface
}

type ConfigInterface interface {
	BreakpointPx() int
	CellWidthPx() int
	ToolbarTitle() string
}

type Coordinator struct {
	app AppInterface
}

func NewCoordinator(app AppInterface) *Coordinator {
	return &Coordinator{
		app: app,
	}
}

// LoadProjectsCmd reads the catalog and the language list in one step
func (c *Coordinator) LoadProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		service := c.app.ShowcaseService()

		projects, err := service.ListProjects()
		if err != nil {
			return ProjectsLoadedMsg{err: err}
		}

		languages, err := service.Languages()
		if err != nil {
			return ProjectsLoadedMsg{err: err}
		}

		return ProjectsLoadedMsg{projects: projects, languages: languages}
	}
}

// Insights summarises the projects currently on screen
func (c *Coordinator) Insights(projects []*models.Project) services.Insights {
	return c.app.ShowcaseService().Insights(projects)
}
