package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/crlauncher/internal/config"
	"github.com/atlanticdynamic/crlauncher/internal/launcher"
	"github.com/atlanticdynamic/crlauncher/internal/selfpath"
)

func newRunCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Launch the companion program with the configured environment",
		ArgsUsage: "-- [companion arguments...]",
		Flags: append(configFlags(),
			&cli.BoolFlag{
				Name:  "legacy",
				Usage: "Forward at most ten arguments and always exit 0",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Set DEBUG=1 for the companion program",
			},
		),
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Bool("legacy") {
		cfg = cfg.WithMode(config.ModeLegacy)
	}

	root := cmd.Root()
	l := launcher.New(cfg,
		launcher.WithLogHandler(slog.Default().Handler()),
		launcher.WithSelfPath(selfpath.Resolve(os.Args[0])),
		launcher.WithDebug(cmd.Bool("debug")),
		launcher.WithStdio(root.Reader, root.Writer, root.ErrWriter),
	)

	code, err := l.Run(ctx, cmd.Args().Slice())
	if err != nil {
		return cli.Exit(err, code)
	}
	if code != 0 {
		return cli.Exit("", code)
	}
	return nil
}
