// Package keys names the environment variables read and produced by the launcher.
package keys

// Keys exported to the companion program.
const (
	Program       = "CR"
	SubjectHeader = "CR_SUBJECT_HEADER"
	Server        = "CR_SERVER"
	DefaultCC     = "CR_DEFAULT_CC"
	MaxPerlCols   = "CR_MAX_PERL_COLS"
	MaxPythonCols = "CR_MAX_PYTHON_COLS"
	MaxJavaCols   = "CR_MAX_JAVA_COLS"
	MaxOthersCols = "CR_MAX_OTHERS_COLS"
	AllowTabs     = "CR_ALLOW_TABS"

	SVNRepositoryURL = "CR_SVN_REPOSITORY_URL"

	GitRepoRegex = "CR_GIT_REPO_REGEX"
	GitHTTPURL   = "CR_GIT_HTTP_URL"
	GitBaseURL   = "CR_GIT_BASE_URL"

	// Debug is the companion's own debug switch.
	Debug = "DEBUG"
)

// Launcher settings. These are read by the launcher and never exported.
const (
	LauncherConfig         = "CR_LAUNCHER_CONFIG"
	LauncherEnvFile        = "CR_LAUNCHER_ENV_FILE"
	LauncherVCSBackend     = "CR_LAUNCHER_VCS_BACKEND"
	LauncherInterpreter    = "CR_LAUNCHER_INTERPRETER"
	LauncherScript         = "CR_LAUNCHER_SCRIPT"
	LauncherDir            = "CR_LAUNCHER_DIR"
	LauncherMode           = "CR_LAUNCHER_MODE"
	LauncherReplaceProcess = "CR_LAUNCHER_REPLACE_PROCESS"
	LauncherLogLevel       = "CR_LAUNCHER_LOG_LEVEL"
	LauncherLogFormat      = "CR_LAUNCHER_LOG_FORMAT"
	LauncherLogOutput      = "CR_LAUNCHER_LOG_OUTPUT"
)

// Base lists the backend-independent exported keys in export order.
var Base = []string{
	Program,
	SubjectHeader,
	Server,
	DefaultCC,
	MaxPerlCols,
	MaxPythonCols,
	MaxJavaCols,
	MaxOthersCols,
	AllowTabs,
}

// Subversion lists the keys of the Subversion backend block.
var Subversion = []string{SVNRepositoryURL}

// Git lists the keys of the Git backend block.
var Git = []string{GitRepoRegex, GitHTTPURL, GitBaseURL}

// ColumnKey maps a source language onto its column-limit key. The second
// return value is false for unknown languages.
func ColumnKey(language string) (string, bool) {
	switch language {
	case "perl":
		return MaxPerlCols, true
	case "python":
		return MaxPythonCols, true
	case "java":
		return MaxJavaCols, true
	case "others":
		return MaxOthersCols, true
	}
	return "", false
}
