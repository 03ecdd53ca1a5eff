package interpolation_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/crlauncher/internal/config"
	"github.com/atlanticdynamic/crlauncher/internal/config/errz"
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
	"github.com/atlanticdynamic/crlauncher/internal/launcher"
	"github.com/atlanticdynamic/crlauncher/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.RunCompanionIfRequested()
	os.Exit(m.Run())
}

const interpolatedConfig = `
server = "${REVIEW_HOST}"
default_cc = "${REVIEW_CC:reviews@example.org}"
subject_header = "[${TEAM:Code} review] "

[vcs.git]
base_url = "https://${GIT_HOST:github.com}/%(repo)s"
http_url = "https://${GIT_HOST:github.com}/%(repo)s/commit/%(hash)s"
`

func TestEndToEndInterpolation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cr.toml"), []byte(interpolatedConfig), 0o600))

	environ := testutil.CompanionEnviron(
		"REVIEW_HOST=review.example.org",
		"GIT_HOST=git.example.org",
		"TEAM=",
	)

	cfg, err := config.Load(config.LoadOptions{SearchDir: dir, Environ: environ})
	require.NoError(t, err)

	t.Run("values in the record", func(t *testing.T) {
		assert.Equal(t, "review.example.org", cfg.Server)
		assert.Equal(t, "reviews@example.org", cfg.DefaultCC)
		assert.Equal(t, "[ review] ", cfg.SubjectHeader, "a set but empty variable wins over the default")
		assert.Equal(t, config.SourceFile, cfg.Source(keys.Server))
	})

	t.Run("values reach the companion", func(t *testing.T) {
		launchCfg := cfg
		launchCfg.Companion.Interpreter = testutil.TestBinary(t)
		launchCfg.Companion.Dir = dir

		var stdout bytes.Buffer
		code, err := launcher.New(launchCfg,
			launcher.WithEnviron(environ),
			launcher.WithStdio(bytes.NewReader(nil), &stdout, nil),
		).Run(t.Context(), []string{"review"})
		require.NoError(t, err)
		require.Equal(t, 0, code)

		report := testutil.DecodeReport(t, stdout.String())
		assert.Equal(t, []string{"review"}, report.Args)
		assert.Equal(t, "review.example.org", report.Env[keys.Server])
		assert.Equal(t, "https://git.example.org/%(repo)s", report.Env[keys.GitBaseURL])
	})

	t.Run("templates render with interpolated host", func(t *testing.T) {
		git, ok := cfg.VCS.(*config.Git)
		require.True(t, ok)

		links, err := git.CommitLinks("origin\thttps://github.com/acme/widgets.git (fetch)\n", "abc", "")
		require.NoError(t, err)
		assert.Equal(t, "https://git.example.org/acme/widgets/commit/abc", links.CommitURL)
	})
}

func TestInterpolationMissingVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cr.toml")
	require.NoError(t, os.WriteFile(path, []byte(interpolatedConfig), 0o600))

	_, err := config.Load(config.LoadOptions{ConfigPath: path, Environ: []string{}})
	require.ErrorIs(t, err, errz.ErrFailedToLoadConfig)
	assert.Contains(t, err.Error(), "REVIEW_HOST")
}
