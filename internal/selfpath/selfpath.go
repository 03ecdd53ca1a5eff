// Package selfpath finds the launcher's own location on disk.
package selfpath

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Resolver resolves the running executable's real path. Its functions can be
// replaced for tests.
type Resolver struct {
	// Executable reports the path of the running binary.
	Executable func() (string, error)
	// EvalSymlinks follows symbolic links.
	EvalSymlinks func(string) (string, error)
	// Args0 is the invocation path as given by the caller.
	Args0 string

	logger *slog.Logger
}

// NewResolver returns a Resolver backed by the os package. args0 is used
// when nothing better is available.
func NewResolver(args0 string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		Executable:   os.Executable,
		EvalSymlinks: filepath.EvalSymlinks,
		Args0:        args0,
		logger:       logger.WithGroup("selfpath"),
	}
}

// Resolve returns the launcher's path with symbolic links followed where
// possible. It never fails: when a step does not work the best path known
// so far is returned.
func (r *Resolver) Resolve() string {
	path := r.Args0
	if r.Executable != nil {
		exe, err := r.Executable()
		if err != nil {
			r.logger.Debug("Executable path unavailable, using invocation path", "args0", r.Args0, "error", err)
		} else if exe != "" {
			path = exe
		}
	}

	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if r.EvalSymlinks == nil {
		return path
	}
	resolved, err := r.EvalSymlinks(path)
	if err != nil {
		r.logger.Debug("Could not follow symlinks, using path as given", "path", path, "error", err)
		return path
	}
	r.logger.Debug("Resolved launcher path", "path", resolved, "invoked_as", r.Args0)
	return resolved
}

// Resolve is a shorthand for NewResolver(args0, nil).Resolve().
func Resolve(args0 string) string {
	return NewResolver(args0, nil).Resolve()
}
