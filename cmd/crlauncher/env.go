package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/crlauncher/internal/config"
	"github.com/atlanticdynamic/crlauncher/internal/fancy"
)

const (
	formatTable = "table"
	formatTree  = "tree"
	formatPlain = "plain"
)

func newEnvCmd() *cli.Command {
	return &cli.Command{
		Name:  "env",
		Usage: "Show the environment exported to the companion program",
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (table, tree, plain)",
				Value:   formatTable,
			},
			&cli.IntFlag{
				Name:    "max-width",
				Aliases: []string{"w"},
				Usage:   "Truncate table values to this many characters (0 keeps them whole)",
			},
		),
		Action: envAction,
	}
}

func envAction(_ context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	switch format {
	case formatTable, formatTree, formatPlain:
	default:
		return cli.Exit(fmt.Sprintf("unknown format %q (use table, tree or plain)", format), 1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	switch format {
	case formatTree:
		fmt.Fprintln(w, cfg)
	case formatPlain:
		renderPlain(w, cfg)
	default:
		renderTable(w, cfg, int(cmd.Int("max-width")))
	}
	return nil
}

func renderPlain(w io.Writer, cfg config.Config) {
	for _, kv := range cfg.Environment() {
		fmt.Fprintln(w, kv.String())
	}
}

func renderTable(w io.Writer, cfg config.Config, maxWidth int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Key", "Value", "Source"})
	for _, kv := range cfg.Environment() {
		tw.AppendRow(table.Row{kv.Key, fancy.TruncateString(kv.Value, maxWidth), cfg.Source(kv.Key)})
	}
	if cfg.VCS != nil {
		tw.AppendFooter(table.Row{"", "backend", cfg.VCS.Kind()})
	}
	tw.Render()
}
