package config

import (
	"fmt"

	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
	"github.com/atlanticdynamic/crlauncher/internal/fancy"
)

// String renders the configuration as a tree.
func (c Config) String() string {
	root := fancy.Tree()
	root.Root(fancy.RootStyle.Render("Launcher Config"))

	if c.ConfigPath != "" {
		root.Child("Config file: " + fancy.PathText(c.ConfigPath))
	}
	if c.EnvFilePath != "" {
		root.Child("Env file: " + fancy.PathText(c.EnvFilePath))
	}

	env := c.Environment()
	envNode := fancy.BranchNode("Environment", fmt.Sprintf("(%d)", len(env)))
	for _, kv := range env[:len(keys.Base)] {
		envNode.Child(c.entry(kv.Key, kv.Value))
	}
	if c.VCS != nil {
		backend := fancy.BackendTree(string(c.VCS.Kind()) + " backend")
		for _, kv := range c.VCS.EnvVars() {
			backend.AddChild(c.entry(kv.Key, kv.Value))
		}
		envNode.Child(backend.Tree())
	}
	root.Child(envNode)

	tabs := fancy.ErrorText("rejected")
	if c.TabsAllowed() {
		tabs = fancy.ValidText("allowed")
	}
	root.Child("Tabs: " + tabs)

	companion := fancy.BranchNode("Companion", "")
	companion.Child(c.entry(keys.LauncherInterpreter, c.Companion.Interpreter))
	companion.Child(c.entry(keys.LauncherScript, c.Companion.Script))
	if c.Companion.Dir != "" {
		companion.Child(c.entry(keys.LauncherDir, c.Companion.Dir))
	}
	companion.Child(c.entry(keys.LauncherMode, string(c.Companion.Mode)))
	companion.Child(c.entry(keys.LauncherReplaceProcess, fmt.Sprintf("%t", c.Companion.ReplaceProcess)))
	root.Child(companion)

	return root.String()
}

func (c Config) entry(key, value string) string {
	return fancy.KeyValue(key, value) + " " + fancy.SourceText(string(c.Source(key)))
}
