// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/wish/internal/ctxlog"
)

// Watchdog cancels a context when the same signal arrives twice between
// resets.
type Watchdog struct {
	reset chan struct{}
}

// NewWatchdog returns a Watchdog with nothing seen.
func NewWatchdog() *Watchdog {
	return &Watchdog{reset: make(chan struct{}, 1)}
}

// Reset forgets the signals seen so far. It never blocks.
// The interpreter calls it once a line has finished.
func (w *Watchdog) Reset() {
	select {
	case w.reset <- struct{}{}:
	default:
	}
}

// Watch consumes sigCh until it is closed or ctx is done.
// The second signal of the same kind since the last Reset calls cancel.
func (w *Watchdog) Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.reset:
			clear(seen)
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Debug(ctx, "watchdog", "detail", "second signal of type, cancelling", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Debug(ctx, "watchdog", "detail", "first signal of type, no-op", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
