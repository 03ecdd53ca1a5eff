// Package launcher runs the companion program with the configured
// environment and forwards the invocation arguments to it.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/atlanticdynamic/crlauncher/internal/config"
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
)

// ExitStartFailure is the exit code used when the companion cannot start.
const ExitStartFailure = 127

// Launcher starts the companion program once.
type Launcher struct {
	cfg      config.Config
	selfPath string
	environ  []string
	debug    bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	launchID uuid.UUID
	logger   *slog.Logger
}

// New returns a Launcher for cfg.
func New(cfg config.Config, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:      cfg,
		environ:  os.Environ(),
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		launchID: uuid.Must(uuid.NewV4()),
		logger:   slog.Default().WithGroup("launcher"),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("launch_id", l.launchID.String())
	return l
}

// LaunchID identifies this launch in log records.
func (l *Launcher) LaunchID() uuid.UUID {
	return l.launchID
}

// Invocation is a fully built companion command.
type Invocation struct {
	// Path is the program to execute: the interpreter, or the companion
	// itself when no interpreter is configured.
	Path string
	// Argv is the complete argument vector, Argv[0] included.
	Argv []string
	// Env is the child environment.
	Env []string
	// Dropped counts the arguments left out in legacy mode.
	Dropped int
}

// CompanionPath returns the path of the companion program.
func (l *Launcher) CompanionPath() string {
	script := l.cfg.Companion.Script
	if filepath.IsAbs(script) {
		return script
	}
	dir := l.cfg.Companion.Dir
	if dir == "" {
		dir = "."
		if l.selfPath != "" {
			dir = filepath.Dir(l.selfPath)
		}
	}
	return filepath.Join(dir, script)
}

// ForwardedArgs applies the mode's argument policy to args.
func ForwardedArgs(mode config.Mode, args []string) []string {
	if mode == config.ModeLegacy && len(args) > config.LegacyArgLimit {
		return args[:config.LegacyArgLimit]
	}
	return args
}

// Build assembles the invocation for args without running it.
func (l *Launcher) Build(args []string) Invocation {
	forwarded := ForwardedArgs(l.cfg.Companion.Mode, args)
	companion := l.CompanionPath()

	argv := make([]string, 0, len(forwarded)+2)
	path := companion
	if interp := l.cfg.Companion.Interpreter; interp != "" {
		path = interp
		argv = append(argv, interp)
	}
	argv = append(argv, companion)
	argv = append(argv, forwarded...)

	return Invocation{
		Path:    path,
		Argv:    argv,
		Env:     l.childEnv(),
		Dropped: len(args) - len(forwarded),
	}
}

// childEnv is the inherited environment with every exported key set to its
// configured value and the inactive backend's keys removed.
func (l *Launcher) childEnv() []string {
	set := l.cfg.Environment()
	if l.debug {
		set = append(set, config.EnvVar{Key: keys.Debug, Value: "1"})
	}
	return MergeEnv(l.environ, set, l.cfg.InactiveKeys())
}

// MergeEnv returns base without the keys in drop or set, followed by set.
func MergeEnv(base []string, set []config.EnvVar, drop []string) []string {
	skip := make(map[string]bool, len(set)+len(drop))
	for _, k := range drop {
		skip[k] = true
	}
	for _, kv := range set {
		skip[kv.Key] = true
	}

	out := make([]string, 0, len(base)+len(set))
	for _, entry := range base {
		k, _, _ := strings.Cut(entry, "=")
		if skip[k] {
			continue
		}
		out = append(out, entry)
	}
	for _, kv := range set {
		out = append(out, kv.String())
	}
	return out
}

// Run starts the companion with args and waits for it. The returned code is
// the one the launcher should exit with: the child's code in posix mode, 0
// in legacy mode, ExitStartFailure when the child could not start.
func (l *Launcher) Run(ctx context.Context, args []string) (int, error) {
	inv := l.Build(args)
	mode := l.cfg.Companion.Mode

	l.logger.Debug("Launching companion",
		"path", inv.Path,
		"argv", inv.Argv,
		"mode", mode,
		"backend", l.backend(),
	)
	if inv.Dropped > 0 {
		l.logger.Debug("Dropped arguments beyond the legacy limit", "dropped", inv.Dropped, "limit", config.LegacyArgLimit)
	}

	if l.cfg.Companion.ReplaceProcess {
		err := replaceProcess(inv)
		if !errors.Is(err, ErrReplaceUnsupported) {
			return ExitStartFailure, fmt.Errorf("%w: %w", ErrStartCompanion, err)
		}
		l.logger.Warn("Process replacement unavailable, running companion as a child")
	}

	cmd := exec.Command(inv.Path, inv.Argv[1:]...)
	cmd.Env = inv.Env
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, slices.Concat(relayedSignals, terminalSignals)...)
	if err := cmd.Start(); err != nil {
		signal.Stop(sigCh)
		return ExitStartFailure, fmt.Errorf("%w: %w", ErrStartCompanion, err)
	}

	done := make(chan struct{})
	go l.forwardSignals(ctx, cmd.Process, sigCh, done)

	err := cmd.Wait()
	signal.Stop(sigCh)
	close(done)

	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return ExitStartFailure, fmt.Errorf("waiting for companion: %w", err)
		}
		code = exitCode(exitErr)
	}

	l.logger.Debug("Companion exited", "code", code, "mode", mode)
	if mode == config.ModeLegacy {
		return 0, nil
	}
	return code, nil
}

// forwardSignals relays signals to the child until done is closed. Terminal
// signals are swallowed since the child already got them from the terminal.
// A cancelled ctx is relayed as an interrupt.
func (l *Launcher) forwardSignals(ctx context.Context, proc *os.Process, sigCh <-chan os.Signal, done <-chan struct{}) {
	ctxDone := ctx.Done()
	for {
		select {
		case <-done:
			return
		case sig := <-sigCh:
			if !slices.Contains(relayedSignals, sig) {
				l.logger.Debug("Companion receives signal from the terminal", "signal", sig)
				continue
			}
			l.logger.Debug("Forwarding signal", "signal", sig)
			if err := proc.Signal(sig); err != nil {
				l.logger.Debug("Signal not delivered", "signal", sig, "error", err)
			}
		case <-ctxDone:
			ctxDone = nil
			l.logger.Debug("Context cancelled, interrupting companion")
			if err := proc.Signal(os.Interrupt); err != nil {
				l.logger.Debug("Interrupt not delivered", "error", err)
			}
		}
	}
}

func (l *Launcher) backend() string {
	if l.cfg.VCS == nil {
		return ""
	}
	return string(l.cfg.VCS.Kind())
}
