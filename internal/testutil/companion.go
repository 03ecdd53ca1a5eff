package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Environment keys understood by the stand-in companion.
const (
	CompanionEnvKey  = "CRLAUNCHER_TEST_COMPANION"
	CompanionExitKey = "CRLAUNCHER_TEST_EXIT"
)

// CompanionReport is what the stand-in companion prints on stdout.
type CompanionReport struct {
	Args []string          `json:"args"`
	Env  map[string]string `json:"env"`
}

// RunCompanionIfRequested turns the test binary into a stand-in companion
// when CompanionEnvKey is set. Call it first thing in TestMain. The binary
// is started as the interpreter, so os.Args[1] is the companion path.
func RunCompanionIfRequested() {
	if os.Getenv(CompanionEnvKey) != "1" {
		return
	}
	os.Exit(runCompanion(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

func runCompanion(args, environ []string, stdout, stderr io.Writer) int {
	report := CompanionReport{Args: []string{}, Env: make(map[string]string)}
	if len(args) > 1 {
		report.Args = args[1:]
	}

	exitCode := 0
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		switch {
		case k == CompanionExitKey:
			if n, err := strconv.Atoi(v); err == nil {
				exitCode = n
			}
		case k == "DEBUG", strings.HasPrefix(k, "CR"):
			report.Env[k] = v
		}
	}

	if err := json.NewEncoder(stdout).Encode(report); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	return exitCode
}

// CompanionEnviron is a minimal child environment that activates the
// stand-in companion.
func CompanionEnviron(extra ...string) []string {
	env := []string{CompanionEnvKey + "=1", "PATH=" + os.Getenv("PATH")}
	return append(env, extra...)
}

// TestBinary returns the path of the running test binary.
func TestBinary(t *testing.T) string {
	t.Helper()
	exe, err := os.Executable()
	require.NoError(t, err)
	return exe
}

// DecodeReport parses the stand-in companion's output.
func DecodeReport(t *testing.T, stdout string) CompanionReport {
	t.Helper()
	var report CompanionReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report), "stdout: %s", stdout)
	return report
}
