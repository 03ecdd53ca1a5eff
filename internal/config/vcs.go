package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/atlanticdynamic/crlauncher/internal/config/errz"
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
)

// BackendKind names a VCS backend.
type BackendKind string

const (
	BackendGit        BackendKind = "git"
	BackendSubversion BackendKind = "subversion"
)

// ParseBackendKind accepts "git", "subversion" and the "svn" shorthand.
func ParseBackendKind(s string) (BackendKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "git":
		return BackendGit, nil
	case "subversion", "svn":
		return BackendSubversion, nil
	}
	return "", fmt.Errorf("%w: %q", errz.ErrInvalidBackend, s)
}

// VCS is the tagged variant of version-control backends. Exactly one is
// active in a Config, and only its keys are exported to the companion.
type VCS interface {
	Kind() BackendKind
	// Keys lists the environment keys owned by the backend, in export order.
	Keys() []string
	// EnvVars returns the backend's block for the child environment.
	EnvVars() []EnvVar
	// Validate reports template problems. Launch never calls it.
	Validate() error
}

// newBackend returns a backend of the given kind carrying the literal defaults.
func newBackend(kind BackendKind) VCS {
	if kind == BackendSubversion {
		return &Subversion{RepositoryURL: DefaultSVNRepositoryURL}
	}
	return &Git{
		RepoRegex: DefaultGitRepoRegex,
		HTTPURL:   DefaultGitHTTPURL,
		BaseURL:   DefaultGitBaseURL,
	}
}

// Subversion links revisions through a single URL where %d is the revision.
type Subversion struct {
	RepositoryURL string `env:"CR_SVN_REPOSITORY_URL"`
}

func (s *Subversion) Kind() BackendKind { return BackendSubversion }

func (s *Subversion) Keys() []string { return keys.Subversion }

func (s *Subversion) EnvVars() []EnvVar {
	return []EnvVar{{Key: keys.SVNRepositoryURL, Value: s.RepositoryURL}}
}

// CommitLink returns the revision URL, or "" when no URL is configured.
func (s *Subversion) CommitLink(revision string) string {
	if s.RepositoryURL == "" {
		return ""
	}
	return strings.ReplaceAll(s.RepositoryURL, "%d", revision)
}

func (s *Subversion) Validate() error {
	if s.RepositoryURL == "" {
		return nil
	}
	if !strings.Contains(s.RepositoryURL, "%d") {
		return fmt.Errorf("%w: %s has no %%d revision placeholder", errz.ErrInvalidTemplate, keys.SVNRepositoryURL)
	}
	return nil
}

// Git derives the repository name from `git remote -vv` output with
// RepoRegex (group 1) and fills it into the URL templates.
// Templates use %(repo)s and %(hash)s placeholders; %% is a literal percent.
type Git struct {
	RepoRegex string `env:"CR_GIT_REPO_REGEX"`
	HTTPURL   string `env:"CR_GIT_HTTP_URL"`
	BaseURL   string `env:"CR_GIT_BASE_URL"`
}

func (g *Git) Kind() BackendKind { return BackendGit }

func (g *Git) Keys() []string { return keys.Git }

func (g *Git) EnvVars() []EnvVar {
	return []EnvVar{
		{Key: keys.GitRepoRegex, Value: g.RepoRegex},
		{Key: keys.GitHTTPURL, Value: g.HTTPURL},
		{Key: keys.GitBaseURL, Value: g.BaseURL},
	}
}

// GitLinks is the result of rendering the Git templates.
type GitLinks struct {
	Repo      string
	BaseURL   string
	CommitURL string
}

// CommitLinks renders the base and commit URLs for hash. remoteOutput is the
// text of `git remote -vv`. When the regex does not match, the zero GitLinks
// is returned without error. For branches under remotes/origin the base URL
// points at the branch tree.
func (g *Git) CommitLinks(remoteOutput, hash, branch string) (GitLinks, error) {
	re, err := g.compile()
	if err != nil {
		return GitLinks{}, err
	}

	m := re.FindStringSubmatch(remoteOutput)
	if m == nil {
		return GitLinks{}, nil
	}

	vars := map[string]string{"repo": m[1], "hash": strings.TrimSpace(hash)}
	base, err := formatTemplate(g.BaseURL, vars)
	if err != nil {
		return GitLinks{}, fmt.Errorf("%s: %w", keys.GitBaseURL, err)
	}
	commit, err := formatTemplate(g.HTTPURL, vars)
	if err != nil {
		return GitLinks{}, fmt.Errorf("%s: %w", keys.GitHTTPURL, err)
	}

	if rest, ok := strings.CutPrefix(branch, "remotes/origin"); ok {
		base += "/tree" + rest
	}

	return GitLinks{Repo: m[1], BaseURL: base, CommitURL: commit}, nil
}

func (g *Git) compile() (*regexp.Regexp, error) {
	re, err := regexp.Compile(g.RepoRegex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrInvalidRegex, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("%w: %s needs a capture group for the repository", errz.ErrInvalidRegex, keys.GitRepoRegex)
	}
	return re, nil
}

func (g *Git) Validate() error {
	var errs []error
	if _, err := g.compile(); err != nil {
		errs = append(errs, err)
	}

	sample := map[string]string{"repo": "owner/repo", "hash": "0000000"}
	if _, err := formatTemplate(g.HTTPURL, sample); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", keys.GitHTTPURL, err))
	}
	if _, err := formatTemplate(g.BaseURL, sample); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", keys.GitBaseURL, err))
	}
	return joinErrors(errs)
}

var templatePattern = regexp.MustCompile(`%(%|\(([A-Za-z_][A-Za-z0-9_]*)\)s)`)

// formatTemplate substitutes %(name)s placeholders from vars and collapses %%.
// Unknown names are an error.
func formatTemplate(tmpl string, vars map[string]string) (string, error) {
	var missing []string
	out := templatePattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		if match == "%%" {
			return "%"
		}
		name := templatePattern.FindStringSubmatch(match)[2]
		v, ok := vars[name]
		if !ok {
			missing = append(missing, name)
			return match
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: unknown placeholder(s) %s", errz.ErrInvalidTemplate, strings.Join(missing, ", "))
	}
	return out, nil
}
