// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtins

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/wish/internal/commandinpath"
	"github.com/matt-FFFFFF/wish/internal/ctxlog"
	"github.com/matt-FFFFFF/wish/internal/report"
)

var (
	// ErrExit is returned by exit to ask the read loop to stop with success.
	// It is not an error condition and is never reported.
	ErrExit = errors.New("exit requested")
	// ErrArgCount is returned when a builtin gets the wrong number of arguments.
	ErrArgCount = errors.New("wrong number of arguments")
	// ErrChdir is returned when the working directory could not be changed.
	ErrChdir = errors.New("could not change directory")
	// ErrNoSearchPath is returned by path when the environment has no registry.
	ErrNoSearchPath = errors.New("no search path registry")
)

// chdir is replaced in tests.
var chdir = os.Chdir

// Env is the interpreter state a builtin may act on.
type Env struct {
	Paths *commandinpath.Registry
}

// Builtin is a directive executed without spawning a process.
type Builtin interface {
	// Run executes the directive. args[0] is the directive name.
	Run(ctx context.Context, env *Env, args []string) error
}

// Func adapts a function to the Builtin interface.
type Func func(ctx context.Context, env *Env, args []string) error

// Run implements Builtin.
func (f Func) Run(ctx context.Context, env *Env, args []string) error {
	return f(ctx, env, args)
}

var _ Builtin = (Func)(nil)

// Registry maps directive names to their implementations.
type Registry map[string]Builtin

// Default returns a new registry holding exit, cd and path.
func Default() Registry {
	return Registry{
		"exit": Func(Exit),
		"cd":   Func(Cd),
		"path": Func(Path),
	}
}

// Register adds or replaces a directive.
func (r Registry) Register(name string, b Builtin) {
	r[name] = b
}

// Dispatch runs the directive named by args[0]. The boolean is true whenever
// the name matched, even if the directive failed.
func (r Registry) Dispatch(ctx context.Context, env *Env, args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	b, ok := r[args[0]]
	if !ok {
		return false, nil
	}

	ctxlog.Debug(ctx, "builtin dispatch", "name", args[0], "args", args[1:])

	return true, b.Run(ctx, env, args)
}

// Exit empties the search path and asks the interpreter to stop.
// It takes no arguments.
func Exit(_ context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return argCount(args, 0)
	}

	if env != nil && env.Paths != nil {
		env.Paths.Release()
	}

	return ErrExit
}

// Cd changes the working directory to its single argument.
func Cd(ctx context.Context, _ *Env, args []string) error {
	if len(args) != 2 {
		return argCount(args, 1)
	}

	if err := chdir(args[1]); err != nil {
		return errors.Join(report.ErrBuiltin, ErrChdir, err)
	}

	ctxlog.Debug(ctx, "working directory changed", "dir", args[1])

	return nil
}

// Path replaces the search path with its arguments. No arguments empties it.
func Path(ctx context.Context, env *Env, args []string) error {
	if env == nil || env.Paths == nil {
		return errors.Join(report.ErrBuiltin, ErrNoSearchPath)
	}

	env.Paths.Replace(args[1:])
	ctxlog.Debug(ctx, "search path replaced", "dirs", args[1:])

	return nil
}

func argCount(args []string, want int) error {
	return errors.Join(report.ErrBuiltin,
		fmt.Errorf("%w: %s wants %d, got %d", ErrArgCount, args[0], want, len(args)-1))
}
