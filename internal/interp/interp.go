// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interp

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/matt-FFFFFF/wish/internal/builtins"
	"github.com/matt-FFFFFF/wish/internal/commandinpath"
	"github.com/matt-FFFFFF/wish/internal/ctxlog"
	"github.com/matt-FFFFFF/wish/internal/input"
	"github.com/matt-FFFFFF/wish/internal/report"
	"github.com/matt-FFFFFF/wish/internal/runbatch"
	"github.com/matt-FFFFFF/wish/internal/segment"
	"github.com/matt-FFFFFF/wish/internal/tokenize"
)

// Interpreter owns the search path and dispatches lines.
// It is driven by a single goroutine.
type Interpreter struct {
	paths    *commandinpath.Registry
	builtins builtins.Registry
	reporter *report.Reporter
	env      *builtins.Env
	// afterLine runs once each line has finished, never after exit.
	afterLine func()
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithStderr sets where the error message is written. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(i *Interpreter) {
		i.reporter = report.New(w)
	}
}

// WithBuiltins replaces the builtin registry.
func WithBuiltins(r builtins.Registry) Option {
	return func(i *Interpreter) {
		i.builtins = r
	}
}

// WithAfterLine sets fn to run after every processed line.
func WithAfterLine(fn func()) Option {
	return func(i *Interpreter) {
		i.afterLine = fn
	}
}

// New returns an interpreter whose search path holds only the default directory.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		paths:    commandinpath.NewRegistry(),
		builtins: builtins.Default(),
		reporter: report.New(os.Stderr),
	}

	for _, opt := range opts {
		opt(i)
	}

	i.env = &builtins.Env{Paths: i.paths}

	return i
}

// Paths returns the interpreter's search path.
func (i *Interpreter) Paths() *commandinpath.Registry {
	return i.paths
}

// Run processes lines from src until EOF, an exit builtin or cancellation of
// ctx between lines. EOF and exit return nil.
func (i *Interpreter) Run(ctx context.Context, src input.Source) error {
	defer i.paths.Release()

	for {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			ctxlog.Debug(ctx, "end of input")
			return nil
		}

		if err != nil {
			return err //nolint:wrapcheck
		}

		if err := i.ProcessLine(ctx, line); errors.Is(err, builtins.ErrExit) {
			ctxlog.Debug(ctx, "exit requested")
			return nil
		}

		if i.afterLine != nil {
			i.afterLine()
		}
	}
}

// ProcessLine dispatches every segment of raw and waits for the children it
// started. Errors are reported and never stop the line, except exit, which
// returns builtins.ErrExit at once without waiting.
func (i *Interpreter) ProcessLine(ctx context.Context, raw string) error {
	line := strings.TrimRight(raw, "\r\n")
	texts := tokenize.Split(line, tokenize.Parallel)

	ctxlog.Debug(ctx, "line read", "segments", texts)

	batch := &runbatch.ParallelBatch{}

	for _, text := range texts {
		seg, err := segment.Parse(text)
		if errors.Is(err, segment.ErrEmptyCommand) {
			continue
		}

		if err != nil {
			i.reporter.Report(ctx, err)
			continue
		}

		ctxlog.Debug(ctx, "segment parsed", "args", seg.Args, "redirect", seg.Redirect)

		handled, err := i.builtins.Dispatch(ctx, i.env, seg.Args)
		if handled {
			if errors.Is(err, builtins.ErrExit) {
				return err //nolint:wrapcheck
			}

			i.reporter.Report(ctx, err)

			continue
		}

		h, err := i.start(ctx, seg)
		if err != nil {
			i.reporter.Report(ctx, err)
			continue
		}

		batch.Add(h)
	}

	if err := batch.Wait(ctx); err != nil {
		ctxlog.Debug(ctx, "wait failures", "error", err)
	}

	return nil
}

func (i *Interpreter) start(ctx context.Context, seg segment.Segment) (*runbatch.Handle, error) {
	cmd, err := runbatch.New(ctx, i.paths, seg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return cmd.Start(ctx) //nolint:wrapcheck
}
