//go:build unix

package launcher

import (
	"os"
	"os/exec"
	"syscall"
)

// relayedSignals are sent on to the companion. terminalSignals reach the
// whole foreground process group, companion included, so the launcher only
// absorbs them.
var (
	relayedSignals  = []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
	terminalSignals = []os.Signal{os.Interrupt, syscall.SIGQUIT}
)

// replaceProcess execs the companion in place of the launcher. It only
// returns on failure.
func replaceProcess(inv Invocation) error {
	path, err := exec.LookPath(inv.Path)
	if err != nil {
		return err
	}
	return syscall.Exec(path, inv.Argv, inv.Env)
}

// exitCode reports the child's exit code, using the shell convention of
// 128 plus the signal number for a child killed by a signal.
func exitCode(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}
