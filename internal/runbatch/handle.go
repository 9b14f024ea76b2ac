// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"os"
	"syscall"

	"github.com/matt-FFFFFF/wish/internal/ctxlog"
)

// Handle identifies a started child until it has been waited on.
type Handle struct {
	Pid   int
	Label string

	wait func() (*os.ProcessState, error)
}

func newHandle(pid int, label string, wait func() (*os.ProcessState, error)) *Handle {
	return &Handle{Pid: pid, Label: label, wait: wait}
}

// Wait blocks until the child exits. A wait interrupted by a signal is
// retried, it is neither completion nor failure.
func (h *Handle) Wait(ctx context.Context) (*os.ProcessState, error) {
	for {
		state, err := h.wait()
		if errors.Is(err, syscall.EINTR) {
			ctxlog.Debug(ctx, "wait interrupted, retrying", "pid", h.Pid)
			continue
		}

		return state, err //nolint:wrapcheck
	}
}
