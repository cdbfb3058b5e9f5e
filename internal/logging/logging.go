package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/nfrund/specboard/internal/config"
)

// New initializes a new slog logger from the configuration and sets it as the default.
// LOG_FORMAT selects "text" (development) or "json" (production); debug mode
// lowers the level to Debug.
func New(cfg config.Provider) *slog.Logger {
	logger := slog.New(NewHandler(os.Stdout, cfg.GetLogFormat(), cfg.GetDebug()))
	slog.SetDefault(logger)
	return logger
}

// NewHandler builds the slog handler for the given format.
func NewHandler(w io.Writer, format string, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	switch format {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true, // Adds source file and line number
		})
	}
}
