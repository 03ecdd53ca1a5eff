// Package config holds the launcher's configuration record: the values exported
// to the companion program plus the launcher's own settings.
//
// A Config is built once by Load (or Default) and must not be modified
// afterwards; pass it by value.
package config

import (
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
)

// Mode selects how arguments and exit codes are handled.
type Mode string

const (
	// ModePosix forwards every argument and propagates the child's exit code.
	ModePosix Mode = "posix"
	// ModeLegacy forwards at most LegacyArgLimit arguments and does not
	// propagate the exit code.
	ModeLegacy Mode = "legacy"
)

// LegacyArgLimit is the number of positional arguments forwarded in legacy mode.
const LegacyArgLimit = 10

// Source names the layer that supplied a value.
type Source string

const (
	SourceDefault     Source = "default"
	SourceFile        Source = "file"
	SourceDotEnv      Source = "dotenv"
	SourceEnvironment Source = "environment"
)

// EnvVar is one exported key/value pair.
type EnvVar struct {
	Key   string
	Value string
}

// String renders the pair in KEY=VALUE form.
func (e EnvVar) String() string {
	return e.Key + "=" + e.Value
}

// Columns holds the per-language column limits. Values are kept as given;
// the companion parses them.
type Columns struct {
	Perl   string `env:"CR_MAX_PERL_COLS"`
	Python string `env:"CR_MAX_PYTHON_COLS"`
	Java   string `env:"CR_MAX_JAVA_COLS"`
	Others string `env:"CR_MAX_OTHERS_COLS"`
}

// Companion locates and runs the companion program.
type Companion struct {
	// Interpreter runs Script. Empty executes Script directly.
	Interpreter string `env:"CR_LAUNCHER_INTERPRETER"`
	// Script is the companion file name, resolved against Dir unless absolute.
	Script string `env:"CR_LAUNCHER_SCRIPT"`
	// Dir overrides the launcher's own directory.
	Dir            string `env:"CR_LAUNCHER_DIR"`
	Mode           Mode   `env:"CR_LAUNCHER_MODE"`
	ReplaceProcess bool   `env:"CR_LAUNCHER_REPLACE_PROCESS"`
}

// Logging configures the launcher's own log output.
type Logging struct {
	Level  string `env:"CR_LAUNCHER_LOG_LEVEL"`
	Format string `env:"CR_LAUNCHER_LOG_FORMAT"`
	Output string `env:"CR_LAUNCHER_LOG_OUTPUT"`
}

// Config is the launcher configuration record.
type Config struct {
	Program       string `env:"CR"`
	SubjectHeader string `env:"CR_SUBJECT_HEADER"`
	Server        string `env:"CR_SERVER"`
	DefaultCC     string `env:"CR_DEFAULT_CC"`
	Columns       Columns
	AllowTabs     string `env:"CR_ALLOW_TABS"`
	VCS           VCS

	Companion Companion
	Logging   Logging

	// ConfigPath and EnvFilePath record the files that were read, if any.
	ConfigPath  string
	EnvFilePath string

	sources map[string]Source
}

// Source reports which layer supplied key. Keys never set report SourceDefault.
func (c Config) Source(key string) Source {
	if s, ok := c.sources[key]; ok {
		return s
	}
	return SourceDefault
}

// TabsAllowed mirrors the companion's reading of CR_ALLOW_TABS.
func (c Config) TabsAllowed() bool {
	return c.AllowTabs == "1"
}

// Environment returns the exported block: the base keys followed by the
// active backend's keys.
func (c Config) Environment() []EnvVar {
	values := map[string]string{
		keys.Program:       c.Program,
		keys.SubjectHeader: c.SubjectHeader,
		keys.Server:        c.Server,
		keys.DefaultCC:     c.DefaultCC,
		keys.MaxPerlCols:   c.Columns.Perl,
		keys.MaxPythonCols: c.Columns.Python,
		keys.MaxJavaCols:   c.Columns.Java,
		keys.MaxOthersCols: c.Columns.Others,
		keys.AllowTabs:     c.AllowTabs,
	}
	env := make([]EnvVar, 0, len(keys.Base)+len(keys.Git))
	for _, k := range keys.Base {
		env = append(env, EnvVar{Key: k, Value: values[k]})
	}
	if c.VCS != nil {
		env = append(env, c.VCS.EnvVars()...)
	}
	return env
}

// InactiveKeys lists the keys of every backend that is not selected. They
// are removed from the child environment.
func (c Config) InactiveKeys() []string {
	active := DefaultBackend
	if c.VCS != nil {
		active = c.VCS.Kind()
	}
	var inactive []string
	for _, kind := range []BackendKind{BackendSubversion, BackendGit} {
		if kind != active {
			inactive = append(inactive, newBackend(kind).Keys()...)
		}
	}
	return inactive
}

// WithMode returns a copy of c using mode.
func (c Config) WithMode(mode Mode) Config {
	c.Companion.Mode = mode
	return c
}
