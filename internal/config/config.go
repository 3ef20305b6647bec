package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/zamm-dev/showcase/internal/models"
)

// DirName is the per-project directory holding config and catalog
const DirName = ".showcase"

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	Layout  LayoutConfig  `mapstructure:"layout"`
	Toolbar ToolbarConfig `mapstructure:"toolbar"`
	CLI     CLIConfig     `mapstructure:"cli"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// LayoutConfig maps terminal cells onto the toolbar breakpoint
type LayoutConfig struct {
	BreakpointPx int `mapstructure:"breakpoint_px"`
	CellWidthPx  int `mapstructure:"cell_width_px"`
}

// ToolbarConfig holds toolbar presentation settings
type ToolbarConfig struct {
	Title string `mapstructure:"title"`
}

// CLIConfig holds CLI-related configuration
type CLIConfig struct {
	OutputFormat string `mapstructure:"output_format"`
	Color        string `mapstructure:"color"`
}

// Load loads configuration for the current working directory
func Load() (*Config, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, models.NewShowcaseErrorWithCause(models.ErrTypeSystem, "failed to get working directory", err)
	}
	return LoadFrom(workingDir)
}

// LoadFrom loads configuration from file and environment variables,
// resolving relative paths against workingDir
func LoadFrom(workingDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	showcaseDir := filepath.Join(workingDir, DirName)
	v.AddConfigPath(showcaseDir)
	v.AddConfigPath(workingDir)

	setDefaults(v, showcaseDir)

	// Environment variable support
	v.SetEnvPrefix("SHOWCASE")
	v.AutomaticEnv()

	if configPath := os.Getenv("SHOWCASE_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is OK, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, models.NewShowcaseErrorWithCause(models.ErrTypeSystem, "failed to read config file", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, models.NewShowcaseErrorWithCause(models.ErrTypeSystem, "failed to unmarshal config", err)
	}

	// Apply environment variable overrides
	if storagePath := os.Getenv("SHOWCASE_STORAGE_PATH"); storagePath != "" {
		config.Storage.Path = storagePath
	}
	if logLevel := os.Getenv("SHOWCASE_LOG_LEVEL"); logLevel != "" {
		config.Logging.Level = logLevel
	}
	if os.Getenv("SHOWCASE_NO_COLOR") != "" {
		config.CLI.Color = "never"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Storage.Path = expandPath(config.Storage.Path, workingDir)
	config.Logging.File = expandPath(config.Logging.File, workingDir)

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper, showcaseDir string) {
	v.SetDefault("storage.path", showcaseDir)

	homeDir, err := os.UserHomeDir()
	logPath := filepath.Join(homeDir, DirName, "logs", "showcase.log")
	if err != nil {
		logPath = filepath.Join(DirName, "logs", "showcase.log") // fallback
	}
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", logPath)

	v.SetDefault("layout.breakpoint_px", 600)
	v.SetDefault("layout.cell_width_px", 8)

	v.SetDefault("toolbar.title", "Tool Bar")

	v.SetDefault("cli.output_format", "table")
	v.SetDefault("cli.color", "auto")
}

// Validate rejects settings the UI cannot work with
func (c *Config) Validate() error {
	if c.Layout.BreakpointPx <= 0 {
		return models.NewShowcaseError(models.ErrTypeValidation, fmt.Sprintf("layout.breakpoint_px must be positive, got %d", c.Layout.BreakpointPx))
	}
	if c.Layout.CellWidthPx <= 0 {
		return models.NewShowcaseError(models.ErrTypeValidation, fmt.Sprintf("layout.cell_width_px must be positive, got %d", c.Layout.CellWidthPx))
	}
	switch c.CLI.OutputFormat {
	case "table", "json":
	default:
		return models.NewShowcaseError(models.ErrTypeValidation, fmt.Sprintf("unknown output format %q", c.CLI.OutputFormat))
	}
	return nil
}

// expandPath expands ~ to the home directory and resolves relative paths
// against base
func expandPath(path, base string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			if path[1] == '/' || path[1] == filepath.Separator {
				return filepath.Join(homeDir, path[2:])
			}
		}
	}

	if !filepath.IsAbs(path) {
		return filepath.Join(base, path)
	}

	return path
}

// EnsureDirectories creates necessary directories for the configuration
func EnsureDirectories(config *Config) error {
	if config.Storage.Path != "" {
		if err := os.MkdirAll(config.Storage.Path, 0755); err != nil {
			return models.NewShowcaseErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create storage directory: %s", config.Storage.Path), err)
		}
	}

	if config.Logging.File != "" {
		logDir := filepath.Dir(config.Logging.File)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return models.NewShowcaseErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create log directory: %s", logDir), err)
		}
	}

	return nil
}

// WriteDefaultConfig writes a default configuration file into the
// .showcase directory under workingDir unless one already exists
func WriteDefaultConfig(workingDir string) (string, error) {
	showcaseDir := filepath.Join(workingDir, DirName)
	configPath := filepath.Join(showcaseDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := os.MkdirAll(showcaseDir, 0755); err != nil {
		return "", models.NewShowcaseErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create showcase directory: %s", showcaseDir), err)
	}

	configContent := `storage:
  path: .showcase

logging:
  level: info

layout:
  breakpoint_px: 600
  cell_width_px: 8

toolbar:
  title: Tool Bar

cli:
  output_format: table
  color: auto
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return "", models.NewShowcaseErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to write config file: %s", configPath), err)
	}

	return configPath, nil
}
