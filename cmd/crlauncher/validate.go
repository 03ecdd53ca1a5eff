package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/crlauncher/internal/config"
	"github.com/atlanticdynamic/crlauncher/internal/fancy"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"lint"},
		Usage:   "Check the configuration for values the companion program would reject",
		Flags: append(configFlags(),
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of the validated configuration",
			},
		),
		Action: validateAction,
	}
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(cfg config.Config) string {
	var summary strings.Builder

	summary.WriteString("\nConfig Summary:\n")
	if cfg.ConfigPath != "" {
		summary.WriteString(fmt.Sprintf("- Config file: %s\n", cfg.ConfigPath))
	}
	if cfg.EnvFilePath != "" {
		summary.WriteString(fmt.Sprintf("- Env file: %s\n", cfg.EnvFilePath))
	}
	if cfg.VCS != nil {
		summary.WriteString(fmt.Sprintf("- VCS backend: %s\n", cfg.VCS.Kind()))
	}
	summary.WriteString(fmt.Sprintf("- Mode: %s\n", cfg.Companion.Mode))
	if cfg.TabsAllowed() {
		summary.WriteString("- Tabs: allowed\n")
	} else {
		summary.WriteString("- Tabs: rejected\n")
	}
	summary.WriteString(fmt.Sprintf("- Exported keys: %d\n", len(cfg.Environment())))
	summary.WriteString("\n" + fancy.SummaryText("Use --tree for a more detailed view of the config."))

	return summary.String()
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	problems := cfg.Problems()
	if len(problems) > 0 {
		lines := make([]string, 0, len(problems))
		for _, p := range problems {
			lines = append(lines, p.Error())
		}
		title := fmt.Sprintf("%d problem(s) found", len(problems))
		fmt.Fprintln(w, fancy.ProblemTree(title, lines).Tree())
		return cli.Exit("validation failed", 1)
	}

	fmt.Fprintln(w, fancy.ValidText("Configuration is valid"))
	if cmd.Bool("tree") {
		fmt.Fprintln(w, cfg)
		return nil
	}
	fmt.Fprintln(w, renderConfigSummary(cfg))
	return nil
}
