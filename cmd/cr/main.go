// Command cr is the code review launcher. It exports the CR_* configuration
// and hands every argument to the companion program installed next to it.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/robbyt/go-loglater"

	"github.com/atlanticdynamic/crlauncher/internal/config"
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
	"github.com/atlanticdynamic/crlauncher/internal/launcher"
	"github.com/atlanticdynamic/crlauncher/internal/logging"
	"github.com/atlanticdynamic/crlauncher/internal/selfpath"
)

// exitConfigFailure is returned when the configuration cannot be loaded.
const exitConfigFailure = 1

type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Environ(), stdio{os.Stdin, os.Stdout, os.Stderr}))
}

func run(ctx context.Context, argv []string, environ []string, streams stdio) int {
	var args0 string
	var args []string
	if len(argv) > 0 {
		args0, args = argv[0], argv[1:]
	}

	env := config.EnvironMap(environ)

	// Records made before the configuration is known are held back and
	// replayed into the handler that ends up in charge.
	boot := loglater.NewLogCollector(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	self := selfpath.NewResolver(args0, slog.New(boot)).Resolve()
	searchDir := ""
	if self != "" {
		searchDir = filepath.Dir(self)
	}

	cfg, err := config.Load(config.LoadOptions{SearchDir: searchDir, Environ: environ})
	if err != nil {
		logger := newLogger(env[keys.LauncherLogLevel], env[keys.LauncherLogFormat], "", streams.err)
		replay(ctx, boot, logger.Handler())
		logger.Error("Failed to load launcher configuration", "error", err)
		return exitConfigFailure
	}

	logger := newLogger(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, streams.err)
	replay(ctx, boot, logger.Handler())

	l := launcher.New(cfg,
		launcher.WithLogger(logger.WithGroup("launcher")),
		launcher.WithSelfPath(self),
		launcher.WithEnviron(environ),
		launcher.WithStdio(streams.in, streams.out, streams.err),
	)
	code, err := l.Run(ctx, args)
	if err != nil {
		logger.Error("Companion did not run",
			"launch_id", l.LaunchID().String(),
			"companion", l.CompanionPath(),
			"error", err,
		)
	}
	return code
}

// newLogger builds the launcher logger. An unusable output falls back to
// fallback so that launching never fails on logging.
func newLogger(level, format, output string, fallback io.Writer) *slog.Logger {
	if level == "" {
		level = logging.DefaultLevel
	}
	w := fallback
	var openErr error
	if output != "" {
		var opened io.Writer
		if opened, openErr = logging.OpenOutput(output); openErr == nil {
			w = opened
		}
	}

	logger := slog.New(logging.New(logging.Options{Level: level, Format: format, Output: w}))
	if openErr != nil {
		logger.Warn("Log output unusable, logging to stderr instead", "output", output, "error", openErr)
	}
	return logger
}

// replay hands the collected boot records to h, honouring its level.
func replay(ctx context.Context, boot *loglater.LogCollector, h slog.Handler) {
	for _, rec := range boot.GetLogs() {
		if !h.Enabled(ctx, rec.Level) {
			continue
		}
		r := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
		r.AddAttrs(rec.Attrs...)
		if err := h.Handle(ctx, r); err != nil {
			return
		}
	}
}
