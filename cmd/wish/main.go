// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the wish interpreter.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/wish/cmd"
	"github.com/matt-FFFFFF/wish/internal/ctxlog"
	"github.com/matt-FFFFFF/wish/internal/interp"
	"github.com/matt-FFFFFF/wish/internal/signalbroker"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	watchdog := signalbroker.NewWatchdog()
	go watchdog.Watch(ctx, sigCh, cancel)

	root := cmd.NewRootCmd(os.Stdout, os.Stderr, interp.WithAfterLine(watchdog.Reset))

	return cmd.Execute(ctx, root, os.Args)
}
