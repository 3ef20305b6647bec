package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// createDebugLogFile creates a debug log file in ~/.showcase/logs directory
// Returns the file handle and any error encountered
func createDebugLogFile() (*os.File, error) {
	logPath, err := generateDebugLogPath()
	if err != nil {
		return nil, fmt.Errorf("failed to generate debug log path: %w", err)
	}

	// Ensure the logs directory exists
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory %s: %w", logDir, err)
	}

	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create debug log file %s: %w", logPath, err)
	}

	return file, nil
}

// generateDebugLogPath generates the path for a debug log file
// Format: ~/.showcase/logs/showcase-debug-YYYY-MM-DD-HH-MM-SS.log
func generateDebugLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02-15-04-05")
	filename := fmt.Sprintf("showcase-debug-%s.log", timestamp)

	logPath := filepath.Join(homeDir, ".showcase", "logs", filename)
	return logPath, nil
}

// parseLogLevel maps a config level name onto zap; unknown names mean info
func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// newLogger builds the JSON logger used by the interactive session
func newLogger(w io.Writer, level string) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		parseLogLevel(level),
	)
	return zap.New(core)
}

// openLogFile opens the configured log file for appending
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", filepath.Dir(path), err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file, nil
}
