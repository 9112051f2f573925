// Package logging builds the structured loggers used by the pathfind
// command and the scenario runner.
//
// Search packages (bfs, dfs, astar) never log; they expose hooks. Callers
// that want a trace wire those hooks to a *slog.Logger created here:
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug, JSON: true})
//	logger.Info("loaded map", "vertices", g.VertexCount())
//
// Four levels are supported, matching slog conventions:
//
//   - Debug: per-vertex search trace (search.expand, search.visit)
//   - Info: loaded maps, search results
//   - Warn: recoverable input problems (coordinates missing for some vertices)
//   - Error: failed queries
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug enables search traces.
	LevelDebug Level = iota
	// LevelInfo is the default.
	LevelInfo
	// LevelWarn reports recoverable input problems.
	LevelWarn
	// LevelError reports failed operations.
	LevelError
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel converts l to slog.Level; unknown values map to Info.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a case-insensitive name ("debug", "info", "warn",
// "warning", "error") to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Config configures New. A zero Config writes Info+ text records to stderr.
type Config struct {
	// Level sets the minimum log level.
	Level Level

	// JSON selects slog's JSON handler instead of the text handler.
	JSON bool

	// Output receives the records. Default: os.Stderr.
	Output io.Writer

	// Service, when set, is attached to every record as "service".
	Service string
}

// New creates a *slog.Logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	if cfg.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
