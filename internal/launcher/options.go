package launcher

import (
	"io"
	"log/slog"
)

// Option represents a functional option for configuring a Launcher.
type Option func(*Launcher)

// WithLogHandler sets a custom slog handler for the Launcher instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(l *Launcher) {
		if handler != nil {
			l.logger = slog.New(handler).WithGroup("launcher")
		}
	}
}

// WithLogger sets a logger for the Launcher instance.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSelfPath sets the launcher's resolved path, used to locate the
// companion when no directory is configured.
func WithSelfPath(path string) Option {
	return func(l *Launcher) {
		l.selfPath = path
	}
}

// WithEnviron replaces the inherited environment (KEY=VALUE pairs).
func WithEnviron(environ []string) Option {
	return func(l *Launcher) {
		if environ != nil {
			l.environ = environ
		}
	}
}

// WithStdio sets the child's standard streams. Nil keeps the current value.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		if stdin != nil {
			l.stdin = stdin
		}
		if stdout != nil {
			l.stdout = stdout
		}
		if stderr != nil {
			l.stderr = stderr
		}
	}
}

// WithDebug sets DEBUG=1 in the child environment.
func WithDebug(debug bool) Option {
	return func(l *Launcher) {
		l.debug = debug
	}
}
