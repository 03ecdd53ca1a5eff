package loader

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/atlanticdynamic/crlauncher/internal/config/errz"
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
)

// VersionLatest is the only config file version understood.
const VersionLatest = "v1"

// Document is the on-disk shape of a launcher config file. Scalars are
// decoded as `any` so that `python = 79` and `python = "79"` both work;
// Values turns them into strings.
type Document struct {
	Version       string           `toml:"version"        yaml:"version"`
	Program       any              `toml:"program"        yaml:"program"`
	SubjectHeader any              `toml:"subject_header" yaml:"subject_header"`
	Server        any              `toml:"server"         yaml:"server"`
	DefaultCC     any              `toml:"default_cc"     yaml:"default_cc"`
	AllowTabs     any              `toml:"allow_tabs"     yaml:"allow_tabs"`
	Columns       map[string]any   `toml:"columns"        yaml:"columns"`
	VCS           VCSSection       `toml:"vcs"            yaml:"vcs"`
	Companion     CompanionSection `toml:"companion"      yaml:"companion"`
	Logging       LoggingSection   `toml:"logging"        yaml:"logging"`
}

type VCSSection struct {
	Backend    any               `toml:"backend"    yaml:"backend"`
	Subversion SubversionSection `toml:"subversion" yaml:"subversion"`
	Git        GitSection        `toml:"git"        yaml:"git"`
}

type SubversionSection struct {
	RepositoryURL any `toml:"repository_url" yaml:"repository_url"`
}

type GitSection struct {
	RepoRegex any `toml:"repo_regex" yaml:"repo_regex"`
	HTTPURL   any `toml:"http_url"   yaml:"http_url"`
	BaseURL   any `toml:"base_url"   yaml:"base_url"`
}

type CompanionSection struct {
	Interpreter    any `toml:"interpreter"     yaml:"interpreter"`
	Script         any `toml:"script"          yaml:"script"`
	Dir            any `toml:"dir"             yaml:"dir"`
	Mode           any `toml:"mode"            yaml:"mode"`
	ReplaceProcess any `toml:"replace_process" yaml:"replace_process"`
}

type LoggingSection struct {
	Level  any `toml:"level"  yaml:"level"`
	Format any `toml:"format" yaml:"format"`
	Output any `toml:"output" yaml:"output"`
}

// CheckVersion rejects documents written for another schema version. An
// empty version is treated as the latest.
func (d *Document) CheckVersion() error {
	if d.Version == "" || d.Version == VersionLatest {
		return nil
	}
	return fmt.Errorf("%w: %s", errz.ErrUnsupportedConfigVer, d.Version)
}

// Values flattens the document into a map keyed by environment variable
// name. Unset entries are omitted.
func (d *Document) Values() (map[string]string, error) {
	values := make(map[string]string)
	var errs []error

	set := func(key string, raw any) {
		s, ok, err := scalar(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		if ok {
			values[key] = s
		}
	}

	set(keys.Program, d.Program)
	set(keys.SubjectHeader, d.SubjectHeader)
	set(keys.Server, d.Server)
	set(keys.DefaultCC, d.DefaultCC)
	set(keys.AllowTabs, d.AllowTabs)

	for language, raw := range d.Columns {
		key, ok := keys.ColumnKey(language)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: columns.%s", errz.ErrUnknownKey, language))
			continue
		}
		set(key, raw)
	}

	set(keys.LauncherVCSBackend, d.VCS.Backend)
	set(keys.SVNRepositoryURL, d.VCS.Subversion.RepositoryURL)
	set(keys.GitRepoRegex, d.VCS.Git.RepoRegex)
	set(keys.GitHTTPURL, d.VCS.Git.HTTPURL)
	set(keys.GitBaseURL, d.VCS.Git.BaseURL)

	set(keys.LauncherInterpreter, d.Companion.Interpreter)
	set(keys.LauncherScript, d.Companion.Script)
	set(keys.LauncherDir, d.Companion.Dir)
	set(keys.LauncherMode, d.Companion.Mode)
	set(keys.LauncherReplaceProcess, d.Companion.ReplaceProcess)

	set(keys.LauncherLogLevel, d.Logging.Level)
	set(keys.LauncherLogFormat, d.Logging.Format)
	set(keys.LauncherLogOutput, d.Logging.Output)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}

// scalar renders a decoded TOML/YAML scalar the way a shell would export it.
// Booleans become "1"/"0", matching the companion's CR_ALLOW_TABS check.
func scalar(raw any) (string, bool, error) {
	switch v := raw.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case bool:
		if v {
			return "1", true, nil
		}
		return "0", true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case uint64:
		return strconv.FormatUint(v, 10), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	default:
		return "", false, fmt.Errorf("%w: expected a scalar, got %T", errz.ErrInvalidValue, raw)
	}
}
