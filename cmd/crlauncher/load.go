package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/crlauncher/internal/config"
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
	"github.com/atlanticdynamic/crlauncher/internal/selfpath"
)

// configFlags are shared by every command that loads the configuration.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the launcher config file (TOML or YAML), or - to read one document from stdin",
			Sources: cli.EnvVars(keys.LauncherConfig),
		},
		&cli.StringFlag{
			Name:    "env-file",
			Aliases: []string{"e"},
			Usage:   "Path to a dotenv overlay with CR_* keys",
			Sources: cli.EnvVars(keys.LauncherEnvFile),
		},
		&cli.StringFlag{
			Name:  "stdin-format",
			Usage: "Format of a config read with --config - (toml, yaml)",
			Value: "toml",
		},
		&cli.StringFlag{
			Name:  "dir",
			Usage: "Directory searched for cr.toml, cr.yaml and cr.env (default: next to this program)",
		},
	}
}

// searchDir is the --dir flag or the directory holding this program.
func searchDir(cmd *cli.Command) string {
	if dir := cmd.String("dir"); dir != "" {
		return dir
	}
	if self := selfpath.Resolve(os.Args[0]); self != "" {
		return filepath.Dir(self)
	}
	return ""
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	if cmd.String("config") == "-" {
		return loadStdinConfig(cmd)
	}
	cfg, err := config.Load(config.LoadOptions{
		ConfigPath:  cmd.String("config"),
		EnvFilePath: cmd.String("env-file"),
		SearchDir:   searchDir(cmd),
	})
	if err != nil {
		return config.Config{}, cli.Exit(fmt.Errorf("failed to load config: %w", err), 1)
	}
	return cfg, nil
}

// loadStdinConfig builds the configuration from a single document on stdin,
// without the dotenv and environment layers.
func loadStdinConfig(cmd *cli.Command) (config.Config, error) {
	r := cmd.Root().Reader
	if r == nil {
		r = os.Stdin
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return config.Config{}, cli.Exit(fmt.Errorf("failed to read config from stdin: %w", err), 1)
	}
	cfg, err := config.NewConfigFromBytes(data, "."+cmd.String("stdin-format"))
	if err != nil {
		return config.Config{}, cli.Exit(fmt.Errorf("failed to load config: %w", err), 1)
	}
	return cfg, nil
}
