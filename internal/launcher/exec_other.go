//go:build !unix

package launcher

import (
	"os"
	"os/exec"
)

var (
	relayedSignals  []os.Signal
	terminalSignals = []os.Signal{os.Interrupt}
)

func replaceProcess(Invocation) error {
	return ErrReplaceUnsupported
}

func exitCode(err *exec.ExitError) int {
	if code := err.ExitCode(); code >= 0 {
		return code
	}
	return 1
}
