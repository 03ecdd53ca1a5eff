package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
)

func TestValidate_Defaults(t *testing.T) {
	dir := isolate(t)

	r := runApp(t, "", "validate", "--dir", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Configuration is valid")
	assert.Contains(t, r.stdout, "Config Summary")
	assert.Contains(t, r.stdout, "VCS backend: git")
	assert.Contains(t, r.stdout, "Exported keys: 12")
	assert.Contains(t, r.stdout, "Tabs: rejected")
}

func TestValidate_Tree(t *testing.T) {
	dir := isolate(t)

	r := runApp(t, "", "lint", "--dir", dir, "--tree")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Launcher Config")
	assert.NotContains(t, r.stdout, "Config Summary")
}

func TestValidate_Problems(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "cr.yaml", "allow_tabs: maybe\ncolumns:\n  java: wide\n")

	r := runApp(t, "", "validate", "--dir", dir)
	assert.Equal(t, 1, r.exitCode())
	assert.Contains(t, r.stdout, "2 problem(s) found")
	assert.Contains(t, r.stdout, keys.AllowTabs)
	assert.Contains(t, r.stdout, keys.MaxJavaCols)
}

func TestValidate_Stdin(t *testing.T) {
	dir := isolate(t)
	t.Setenv(keys.Server, "ignored.example.org")

	r := runApp(t, "server: stdin.example.org\nvcs:\n  backend: svn\n", "validate", "--dir", dir, "--config", "-", "--stdin-format", "yaml", "--tree")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "stdin.example.org")
	assert.NotContains(t, r.stdout, "ignored.example.org")
	assert.Contains(t, r.stdout, "subversion backend")

	r = runApp(t, "allow_tabs = 3\n", "validate", "--dir", dir, "--config", "-")
	assert.Equal(t, 1, r.exitCode())
	assert.Contains(t, r.stdout, keys.AllowTabs)

	r = runApp(t, "", "validate", "--dir", dir, "--config", "-")
	assert.Equal(t, 1, r.exitCode())
	assert.Contains(t, r.err.Error(), "failed to load config")
}
