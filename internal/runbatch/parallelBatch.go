// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/wish/internal/ctxlog"
)

// ParallelBatch holds the children started from one line, in start order.
// It grows without bound.
type ParallelBatch struct {
	handles []*Handle
}

// Add records a started child.
func (b *ParallelBatch) Add(h *Handle) {
	if h == nil {
		return
	}

	b.handles = append(b.handles, h)
}

// Len is the number of children not yet waited on.
func (b *ParallelBatch) Len() int {
	return len(b.handles)
}

// Wait blocks until every recorded child has exited, then empties the batch.
// Children are waited on concurrently, so the order they are reaped in is
// unspecified. Exit statuses are not acted on. The returned error aggregates
// wait failures only.
func (b *ParallelBatch) Wait(ctx context.Context) error {
	handles := b.handles
	b.handles = nil

	if len(handles) == 0 {
		return nil
	}

	logger := ctxlog.Logger(ctx).With("runnableType", "ParallelBatch")
	logger.Debug("waiting for children", "count", len(handles))

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result *multierror.Error
	)

	for _, h := range handles {
		wg.Add(1)

		go func(h *Handle) {
			defer wg.Done()

			state, err := h.Wait(ctx)
			if err != nil {
				mu.Lock()
				result = multierror.Append(result, fmt.Errorf("pid %d (%s): %w", h.Pid, h.Label, err))
				mu.Unlock()

				return
			}

			logger.Debug("process finished", "pid", h.Pid, "label", h.Label, "exitCode", state.ExitCode())
		}(h)
	}

	wg.Wait()

	return result.ErrorOrNil()
}
