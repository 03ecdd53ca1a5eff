package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/crlauncher/internal/config/errz"
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
)

const sampleRemote = "origin\tgit@github.com:acme/widgets.git (fetch)\n" +
	"origin\tgit@github.com:acme/widgets.git (push)\n"

func TestParseBackendKind(t *testing.T) {
	tests := []struct {
		in      string
		want    BackendKind
		wantErr bool
	}{
		{"git", BackendGit, false},
		{"GIT", BackendGit, false},
		{"subversion", BackendSubversion, false},
		{" svn ", BackendSubversion, false},
		{"hg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackendKind(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errz.ErrInvalidBackend)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewBackend(t *testing.T) {
	svn := newBackend(BackendSubversion)
	assert.Equal(t, BackendSubversion, svn.Kind())
	assert.Equal(t, keys.Subversion, svn.Keys())
	assert.Equal(t, []EnvVar{{Key: keys.SVNRepositoryURL, Value: DefaultSVNRepositoryURL}}, svn.EnvVars())

	git := newBackend(BackendGit)
	assert.Equal(t, BackendGit, git.Kind())
	assert.Equal(t, keys.Git, git.Keys())
	assert.Equal(t, []EnvVar{
		{Key: keys.GitRepoRegex, Value: DefaultGitRepoRegex},
		{Key: keys.GitHTTPURL, Value: DefaultGitHTTPURL},
		{Key: keys.GitBaseURL, Value: DefaultGitBaseURL},
	}, git.EnvVars())
}

func TestSubversion_CommitLink(t *testing.T) {
	s := &Subversion{RepositoryURL: DefaultSVNRepositoryURL}
	assert.Equal(t, "https://svn.localhost/viewvc?view=revision&revision=1234", s.CommitLink("1234"))

	empty := &Subversion{}
	assert.Empty(t, empty.CommitLink("1234"))
}

func TestSubversion_Validate(t *testing.T) {
	assert.NoError(t, (&Subversion{RepositoryURL: DefaultSVNRepositoryURL}).Validate())
	assert.NoError(t, (&Subversion{}).Validate())

	err := (&Subversion{RepositoryURL: "https://svn.example.com/r"}).Validate()
	require.ErrorIs(t, err, errz.ErrInvalidTemplate)
	assert.Contains(t, err.Error(), keys.SVNRepositoryURL)
}

func TestGit_CommitLinks(t *testing.T) {
	g := newBackend(BackendGit).(*Git)

	t.Run("match on master", func(t *testing.T) {
		links, err := g.CommitLinks(sampleRemote, "abc123\n", "master")
		require.NoError(t, err)
		assert.Equal(t, "acme/widgets", links.Repo)
		assert.Equal(t, "https://github.com/acme/widgets", links.BaseURL)
		assert.Equal(t, "https://github.com/acme/widgets/commit/abc123", links.CommitURL)
	})

	t.Run("https remote", func(t *testing.T) {
		remote := "origin\thttps://github.com/acme/widgets (fetch)\n"
		links, err := g.CommitLinks(remote, "abc123", "")
		require.NoError(t, err)
		assert.Equal(t, "acme/widgets", links.Repo)
	})

	t.Run("remote branch", func(t *testing.T) {
		links, err := g.CommitLinks(sampleRemote, "abc123", "remotes/origin/feature/x")
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/widgets/tree/feature/x", links.BaseURL)
	})

	t.Run("no match", func(t *testing.T) {
		links, err := g.CommitLinks("origin\tgit@gitlab.com:acme/widgets.git (fetch)\n", "abc123", "")
		require.NoError(t, err)
		assert.Equal(t, GitLinks{}, links)
	})

	t.Run("bad regex", func(t *testing.T) {
		bad := &Git{RepoRegex: "(", HTTPURL: DefaultGitHTTPURL, BaseURL: DefaultGitBaseURL}
		_, err := bad.CommitLinks(sampleRemote, "abc", "")
		require.ErrorIs(t, err, errz.ErrInvalidRegex)
	})

	t.Run("unknown placeholder", func(t *testing.T) {
		bad := &Git{RepoRegex: DefaultGitRepoRegex, HTTPURL: "https://x/%(sha)s", BaseURL: DefaultGitBaseURL}
		_, err := bad.CommitLinks(sampleRemote, "abc", "")
		require.ErrorIs(t, err, errz.ErrInvalidTemplate)
		assert.Contains(t, err.Error(), keys.GitHTTPURL)
	})
}

func TestGit_Validate(t *testing.T) {
	assert.NoError(t, newBackend(BackendGit).Validate())

	bad := &Git{RepoRegex: `github\.com`, HTTPURL: "https://x/%(sha)s", BaseURL: "https://x/%(owner)s"}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errz.ErrInvalidRegex)
	assert.ErrorIs(t, err, errz.ErrInvalidTemplate)
	assert.Contains(t, err.Error(), keys.GitBaseURL)
}

func TestFormatTemplate(t *testing.T) {
	vars := map[string]string{"repo": "acme/widgets", "hash": "abc"}

	tests := []struct {
		name    string
		tmpl    string
		want    string
		wantErr bool
	}{
		{"both placeholders", "https://h/%(repo)s/commit/%(hash)s", "https://h/acme/widgets/commit/abc", false},
		{"literal percent", "100%% %(repo)s", "100% acme/widgets", false},
		{"no placeholders", "https://h/", "https://h/", false},
		{"stray percent kept", "50%d", "50%d", false},
		{"unknown name", "%(branch)s", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatTemplate(tt.tmpl, vars)
			if tt.wantErr {
				require.ErrorIs(t, err, errz.ErrInvalidTemplate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
