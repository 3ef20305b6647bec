package interactive

import (
	"github.com/zamm-dev/showcase/internal/config"
	"github.com/zamm-dev/showcase/internal/services"
)

type AppAdapter struct {
	showcaseService services.ShowcaseService
	config          *config.Config
}

func NewAppAdapter(showcaseService services.ShowcaseService, config *config.Config) *AppAdapter {
	return &AppAdapter{
		showcaseService: showcaseService,
		config:          config,
	}
}

func (a *AppAdapter) ShowcaseService() services.ShowcaseService {
	return a.showcaseService
}

func (a *AppAdapter) Config() ConfigInterface {
	return &ConfigAdapter{config: a.config}
}

type ConfigAdapter struct {
	config *config.Config
}

func (c *ConfigAdapter) BreakpointPx() int {
	if c.config == nil {
		return 0
	}
	return c.config.Layout.BreakpointPx
}

func (c *ConfigAdapter) CellWidthPx() int {
	if c.config == nil {
		return 0
	}
	return c.config.Layout.CellWidthPx
}

func (c *ConfigAdapter) ToolbarTitle() string {
	if c.config == nil {
		return ""
	}
	return c.config.Toolbar.Title
}
