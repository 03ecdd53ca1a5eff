package config

// Literal defaults for the exported keys.
const (
	DefaultProgram       = "cr"
	DefaultSubjectHeader = "[Code review] "
	DefaultServer        = "codereview.appspot.com"
	DefaultCC            = "code-review@localhost"
	DefaultMaxPerlCols   = "80"
	DefaultMaxPythonCols = "79"
	DefaultMaxJavaCols   = "100"
	DefaultMaxOthersCols = "80"
	DefaultAllowTabs     = "0"

	DefaultSVNRepositoryURL = "https://svn.localhost/viewvc?view=revision&revision=%d"

	DefaultGitRepoRegex = `github\.com[:/]([\w\-]+/[\w\-\.]+?)(?:\.git)?\s`
	DefaultGitHTTPURL   = "https://github.com/%(repo)s/commit/%(hash)s"
	DefaultGitBaseURL   = "https://github.com/%(repo)s"
)

// Defaults for the launcher's own settings.
const (
	DefaultBackend     = BackendGit
	DefaultInterpreter = "python"
	DefaultScript      = "cr.py"
	DefaultMode        = ModePosix
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// Default returns the configuration made only of literal defaults.
func Default() Config {
	return Config{
		Program:       DefaultProgram,
		SubjectHeader: DefaultSubjectHeader,
		Server:        DefaultServer,
		DefaultCC:     DefaultCC,
		Columns: Columns{
			Perl:   DefaultMaxPerlCols,
			Python: DefaultMaxPythonCols,
			Java:   DefaultMaxJavaCols,
			Others: DefaultMaxOthersCols,
		},
		AllowTabs: DefaultAllowTabs,
		VCS:       newBackend(DefaultBackend),
		Companion: Companion{
			Interpreter: DefaultInterpreter,
			Script:      DefaultScript,
			Mode:        DefaultMode,
		},
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		sources: map[string]Source{},
	}
}
