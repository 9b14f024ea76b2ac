// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/matt-FFFFFF/wish/internal/commandinpath"
	"github.com/matt-FFFFFF/wish/internal/ctxlog"
	"github.com/matt-FFFFFF/wish/internal/report"
	"github.com/matt-FFFFFF/wish/internal/segment"
)

// RedirectPerm is the mode of a newly created redirect target, before umask.
const RedirectPerm os.FileMode = 0o644

var (
	// ErrNoArgs is returned when a command has no program name.
	ErrNoArgs = errors.New("command has no arguments")
	// ErrNotExecutable is returned when an explicit program path is not executable.
	ErrNotExecutable = errors.New("not an executable file")
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrCouldNotOpenRedirect is returned when the redirect target could not be opened.
	ErrCouldNotOpenRedirect = errors.New("could not open redirect target")
)

// OSCommand is an external program ready to be started.
type OSCommand struct {
	Args     []string // Passed verbatim, Args[0] is the name as typed.
	Path     string   // Executable to run.
	Redirect string   // Replaces stdout and stderr when set.

	// Standard streams inherited by the child. Nil means the interpreter's own.
	Stdin, Stdout, Stderr *os.File
}

// New prepares seg for execution. A program name containing '/' is used as an
// explicit path and only checked for being executable, anything else is looked
// up in reg.
//
// Errors wrap report.ErrSpawn.
func New(ctx context.Context, reg *commandinpath.Registry, seg segment.Segment) (*OSCommand, error) {
	if len(seg.Args) == 0 {
		return nil, errors.Join(report.ErrSpawn, ErrNoArgs)
	}

	path, err := executablePath(ctx, reg, seg.Args[0])
	if err != nil {
		return nil, errors.Join(report.ErrSpawn, err)
	}

	return &OSCommand{
		Args:     seg.Args,
		Path:     path,
		Redirect: seg.Redirect,
	}, nil
}

func executablePath(ctx context.Context, reg *commandinpath.Registry, name string) (string, error) {
	if !strings.ContainsRune(name, os.PathSeparator) {
		return commandinpath.Resolve(ctx, reg, name) //nolint:wrapcheck
	}

	if !commandinpath.IsExecutable(commandinpath.FsFactory(), name) {
		return "", fmt.Errorf("%w: %s", ErrNotExecutable, name)
	}

	ctxlog.Debug(ctx, "explicit path", "path", name)

	return name, nil
}

// Start creates the child process and returns without waiting for it.
// A redirect target is created or truncated first and becomes the child's
// stdout and stderr.
//
// Errors wrap report.ErrChildRuntime when the redirect target could not be
// opened and report.ErrSpawn when the process could not be created.
func (c *OSCommand) Start(ctx context.Context) (*Handle, error) {
	logger := ctxlog.Logger(ctx).With("runnableType", "OSCommand")

	if len(c.Args) == 0 {
		return nil, errors.Join(report.ErrSpawn, ErrNoArgs)
	}

	stdin, stdout, stderr := orDefault(c.Stdin, os.Stdin), orDefault(c.Stdout, os.Stdout), orDefault(c.Stderr, os.Stderr)

	if c.Redirect != "" {
		f, err := os.OpenFile(c.Redirect, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, RedirectPerm)
		if err != nil {
			return nil, errors.Join(report.ErrChildRuntime, ErrCouldNotOpenRedirect, err)
		}

		// The child holds its own descriptor once started.
		defer f.Close() //nolint:errcheck

		stdout, stderr = f, f

		logger.Debug("output redirected", "target", c.Redirect)
	}

	logger.Debug("starting process", "path", c.Path, "args", c.Args)

	ps, err := os.StartProcess(c.Path, c.Args, &os.ProcAttr{
		Env:   os.Environ(),
		Files: []*os.File{stdin, stdout, stderr},
	})
	if err != nil {
		return nil, errors.Join(report.ErrSpawn, ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	return newHandle(ps.Pid, c.Args[0], ps.Wait), nil
}

func orDefault(f, def *os.File) *os.File {
	if f == nil {
		return def
	}

	return f
}
