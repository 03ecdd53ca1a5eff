package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, "cr.env", strings.Join([]string{
		"# launcher overlay",
		"CR_SERVER=review.internal",
		"export CR_MAX_JAVA_COLS=110",
		`CR_SUBJECT_HEADER="[Review] "`,
		"",
	}, "\n"))

	values, err := LoadDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"CR_SERVER":         "review.internal",
		"CR_MAX_JAVA_COLS":  "110",
		"CR_SUBJECT_HEADER": "[Review] ",
	}, values)
}

func TestLoadDotEnv_Missing(t *testing.T) {
	_, err := LoadDotEnv("/nonexistent/cr.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read env file")
}

func TestLoadDotEnv_DefinedEmpty(t *testing.T) {
	values, err := LoadDotEnv(writeFile(t, "cr.env", "CR_ALLOW_TABS=1\nCR_DEFAULT_CC=\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", values["CR_ALLOW_TABS"])
	v, ok := values["CR_DEFAULT_CC"]
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestLoadDotEnv_QuotedRegex(t *testing.T) {
	const regex = `github\.com[:/]([\w\-]+/[\w\-\.]+?)(?:\.git)?\s`

	t.Run("single quotes keep backslashes", func(t *testing.T) {
		values, err := LoadDotEnv(writeFile(t, "cr.env", "CR_GIT_REPO_REGEX='"+regex+"'\n"))
		require.NoError(t, err)
		assert.Equal(t, regex, values["CR_GIT_REPO_REGEX"])
	})

	t.Run("double quotes drop backslashes", func(t *testing.T) {
		values, err := LoadDotEnv(writeFile(t, "cr.env", `CR_GIT_REPO_REGEX="`+regex+`"`+"\n"))
		require.NoError(t, err)
		assert.NotContains(t, values["CR_GIT_REPO_REGEX"], `\`)
	})
}
