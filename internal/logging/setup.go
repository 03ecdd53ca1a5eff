// Package logging builds the slog handlers used by the launcher and its admin CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Format names accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultLevel keeps the launcher quiet unless something goes wrong, since
// stdout and stderr normally belong to the companion program.
const DefaultLevel = "warn"

// Options selects the handler built by New.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// parseLevel maps a level name onto the charm log level, reporting whether
// timestamps and callers should be printed.
func parseLevel(logLevel string) (lvl log.Level, timestamp bool, caller bool) {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "trace":
		return log.DebugLevel, true, true
	case "debug":
		return log.DebugLevel, true, false
	case "info":
		return log.InfoLevel, false, false
	case "warn", "warning":
		return log.WarnLevel, false, false
	case "error":
		return log.ErrorLevel, false, false
	}
	return log.InfoLevel, false, false
}

// SetupHandlerText configures a charm text handler with the provided writer and log level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	lvl, reportTimestamp, reportCaller := parseLevel(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
		Prefix:          "cr-launcher",
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	lvl, _, reportCaller := parseLevel(logLevel)
	var level slog.Level
	switch lvl {
	case log.DebugLevel:
		level = slog.LevelDebug
	case log.WarnLevel:
		level = slog.LevelWarn
	case log.ErrorLevel:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: reportCaller,
	})
}

// New returns a handler for the given options. Unknown formats fall back to text.
func New(opts Options) slog.Handler {
	if strings.EqualFold(opts.Format, FormatJSON) {
		return SetupHandlerJSON(opts.Level, opts.Output)
	}
	return SetupHandlerText(opts.Level, opts.Output)
}

// SetupLogger installs a handler built from opts as the slog default and returns the logger.
func SetupLogger(opts Options) *slog.Logger {
	logger := slog.New(New(opts))
	slog.SetDefault(logger)
	return logger
}
