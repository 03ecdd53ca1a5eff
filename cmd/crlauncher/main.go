// Command crlauncher inspects, validates and runs the code review launcher
// configuration.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
	"github.com/atlanticdynamic/crlauncher/internal/logging"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "crlauncher",
		Version: Version,
		Usage:   "Inspect and run the code review launcher",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   logging.DefaultLevel,
				Sources: cli.EnvVars(keys.LauncherLogLevel),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   logging.FormatText,
				Sources: cli.EnvVars(keys.LauncherLogFormat),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			SetupLogger(cmd.String("log-level"), cmd.String("log-format"), cmd.Root().ErrWriter)
			return ctx, nil
		},
		Commands: []*cli.Command{
			newEnvCmd(),
			newValidateCmd(),
			newLinkCmd(),
			newRunCmd(),
			newVersionCmd(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
