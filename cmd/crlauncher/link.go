package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/crlauncher/internal/config"
)

func newLinkCmd() *cli.Command {
	return &cli.Command{
		Name:  "link",
		Usage: "Render the commit links the companion program would write",
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "revision",
				Aliases: []string{"r"},
				Usage:   "Subversion revision number",
			},
			&cli.StringFlag{
				Name:  "hash",
				Usage: "Git commit hash",
			},
			&cli.StringFlag{
				Name:  "remote",
				Usage: "File with `git remote -vv` output, or - for stdin",
			},
			&cli.StringFlag{
				Name:    "branch",
				Aliases: []string{"b"},
				Usage:   "Branch name as printed by `git branch -a`",
			},
		),
		Action: linkAction,
	}
}

func linkAction(_ context.Context, cmd *cli.Command) error {
	revision := cmd.String("revision")
	hash := cmd.String("hash")
	if (revision == "") == (hash == "") {
		return cli.Exit("exactly one of --revision or --hash is required", 1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	switch backend := cfg.VCS.(type) {
	case *config.Subversion:
		if revision == "" {
			return cli.Exit("the subversion backend links revisions: use --revision", 1)
		}
		link := backend.CommitLink(revision)
		if link == "" {
			return cli.Exit("no repository URL configured", 1)
		}
		fmt.Fprintln(w, link)
		return nil

	case *config.Git:
		if hash == "" {
			return cli.Exit("the git backend links commits: use --hash", 1)
		}
		remote, err := readRemote(cmd)
		if err != nil {
			return cli.Exit(err, 1)
		}
		links, err := backend.CommitLinks(remote, hash, cmd.String("branch"))
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to render links: %w", err), 1)
		}
		if links.Repo == "" {
			return cli.Exit("no repository matched the remote output", 1)
		}
		fmt.Fprintf(w, "Repository: %s\nCommit: %s\n", links.BaseURL, links.CommitURL)
		return nil
	}
	return cli.Exit("no VCS backend configured", 1)
}

func readRemote(cmd *cli.Command) (string, error) {
	src := cmd.String("remote")
	switch src {
	case "":
		return "", fmt.Errorf("--remote is required with --hash")
	case "-":
		r := cmd.Root().Reader
		if r == nil {
			r = os.Stdin
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read remote output: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read remote output: %w", err)
	}
	return string(data), nil
}
