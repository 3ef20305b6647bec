package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/zamm-dev/showcase/internal/config"
	"github.com/zamm-dev/showcase/internal/models"
	"github.com/zamm-dev/showcase/internal/services"
	"github.com/zamm-dev/showcase/internal/storage"
	"go.uber.org/zap"
)

// App represents the CLI application
type App struct {
	config          *config.Config
	storage         *storage.FileStorage
	showcaseService services.ShowcaseService

	logFile *os.File
	logger  *zap.Logger
}

// NewApp creates a new CLI application from the configuration of the
// current working directory
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewAppWithConfig(cfg), nil
}

// NewAppWithConfig creates a CLI application from an already loaded config
func NewAppWithConfig(cfg *config.Config) *App {
	a := &App{config: cfg}
	a.useStorage(cfg.Storage.Path)
	applyColorSetting(cfg.CLI.Color)
	return a
}

func (a *App) useStorage(path string) {
	a.config.Storage.Path = path
	a.storage = storage.NewFileStorage(path)
	a.showcaseService = services.NewShowcaseService(a.storage)
}

// Logger returns the application logger, opening the configured log file on
// first use. If the file cannot be opened, logging is discarded.
func (a *App) Logger() *zap.Logger {
	if a.logger != nil {
		return a.logger
	}

	file, err := openLogFile(a.config.Logging.File)
	if err != nil {
		a.logger = zap.NewNop()
		return a.logger
	}
	a.logFile = file
	a.logger = newLogger(file, a.config.Logging.Level)
	return a.logger
}

// InitializeStorage creates the storage directory and an empty catalog,
// optionally seeding it with sample projects
func (a *App) InitializeStorage(sample bool) (int, error) {
	if err := config.EnsureDirectories(a.config); err != nil {
		return 0, err
	}
	if err := a.storage.InitializeStorage(); err != nil {
		return 0, err
	}
	if !sample {
		return 0, nil
	}

	existing, err := a.storage.ListProjects()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	seeded := 0
	for _, project := range storage.SeedProjects(timeNow()) {
		if err := a.showcaseService.AddProject(project); err != nil {
			return seeded, models.NewShowcaseErrorWithCause(models.ErrTypeStorage, "failed to seed catalog", err)
		}
		seeded++
	}
	return seeded, nil
}

// Close closes the application and cleans up resources
func (a *App) Close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func applyColorSetting(color string) {
	switch color {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
