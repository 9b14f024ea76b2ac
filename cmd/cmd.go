// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the interpreter.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/wish"
	"github.com/matt-FFFFFF/wish/internal/ctxlog"
	"github.com/matt-FFFFFF/wish/internal/input"
	"github.com/matt-FFFFFF/wish/internal/interp"
	"github.com/matt-FFFFFF/wish/internal/report"
	"github.com/urfave/cli/v3"
)

const (
	logLevelFlag   = "log-level"
	logLevelEnvVar = "WISH_LOG_LEVEL"
)

var (
	// ErrTooManyArgs is returned when more than one batch file is given.
	ErrTooManyArgs = errors.New("at most one batch file may be given")
	// ErrInvalidLogLevel is returned for an unknown --log-level value.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Stdin and Stdout are the streams used in interactive mode.
var (
	Stdin  = os.Stdin
	Stdout = os.Stdout
)

// NewRootCmd builds the root command. Interpreter errors go to stderr.
// opts are applied to the interpreter after its stderr is set.
func NewRootCmd(stdout, stderr io.Writer, opts ...interp.Option) *cli.Command {
	return &cli.Command{
		Name:      "wish",
		Usage:     "run commands interactively or from a batch file",
		ArgsUsage: "[batch-file]",
		Description: `wish reads command lines from standard input, prompting with "wish> ", or from
the batch file given as its only argument.

Each line is split on '&' into commands that run concurrently. A command may
redirect its standard output and standard error to a file with '> file'.
The builtins exit, cd and path run inside the interpreter. path replaces the
list of directories searched for programs, which starts as /bin.`,
		Version:   fmt.Sprintf("%s (commit: %s)", wish.Version, wish.Commit),
		Writer:    stdout,
		ErrWriter: stderr,
		// A batch file may be called "help".
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    logLevelFlag,
				Usage:   "Diagnostic log level written to stderr: DEBUG, INFO, WARN, ERROR or OFF",
				Sources: cli.EnvVars(logLevelEnvVar),
			},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return errors.Join(report.ErrStartup, err)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, opts)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, opts []interp.Option) error {
	if lvl := cmd.String(logLevelFlag); lvl != "" {
		level, ok := ctxlog.ParseLevel(lvl)
		if !ok {
			return errors.Join(report.ErrStartup, fmt.Errorf("%w: %q", ErrInvalidLogLevel, lvl))
		}

		ctxlog.LevelVar.Set(level)
	}

	var src input.Source

	switch cmd.Args().Len() {
	case 0:
		src = input.Interactive(Stdin, Stdout)
	case 1:
		batch, err := input.OpenBatch(cmd.Args().First())
		if err != nil {
			return err //nolint:wrapcheck
		}

		src = batch
	default:
		return errors.Join(report.ErrStartup, ErrTooManyArgs)
	}

	defer src.Close() //nolint:errcheck

	ctxlog.Debug(ctx, "interpreter starting", "batch", cmd.Args().First())

	opts = append([]interp.Option{interp.WithStderr(cmd.ErrWriter)}, opts...)

	return interp.New(opts...).Run(ctx, src) //nolint:wrapcheck
}

// Execute runs root with args and returns the process exit status: 0 on a
// normal end of input or exit, 1 otherwise. Startup errors are reported with
// the fixed message.
func Execute(ctx context.Context, root *cli.Command, args []string) int {
	err := root.Run(ctx, args)

	switch {
	case err == nil:
		ctxlog.Debug(ctx, "interpreter finished")
		return 0
	case ctx.Err() != nil:
		ctxlog.Debug(ctx, "interpreter terminated due to cancellation", "error", ctx.Err())
		return 1
	default:
		report.New(root.ErrWriter).Report(ctx, err)
		return 1
	}
}
