package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/pablasso/tickbar/internal/config"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func logger() *slog.Logger {
	return newLogger(os.Stderr, verbose)
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}
