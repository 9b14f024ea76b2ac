// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/matt-FFFFFF/wish/internal/ctxlog"
)

// Message is the only text ever written to standard error for an error condition.
const Message = "An error has occurred\n"

var (
	// ErrStartup is a bad invocation or an unreadable batch file. It is fatal.
	ErrStartup = errors.New("startup error")
	// ErrParse is a malformed command segment. Only that segment is skipped.
	ErrParse = errors.New("parse error")
	// ErrBuiltin is a builtin called with the wrong arguments or whose effect failed.
	ErrBuiltin = errors.New("builtin error")
	// ErrSpawn means no process was created for a segment.
	ErrSpawn = errors.New("spawn error")
	// ErrChildRuntime is a failure while preparing the child: redirect or image replace.
	ErrChildRuntime = errors.New("child runtime error")
)

// Kind returns the kind sentinel err belongs to, or nil if it is unclassified.
func Kind(err error) error {
	for _, k := range []error{ErrStartup, ErrParse, ErrBuiltin, ErrSpawn, ErrChildRuntime} {
		if errors.Is(err, k) {
			return k
		}
	}

	return nil
}

// Reporter writes Message for every reported error.
type Reporter struct {
	w io.Writer
	m *sync.Mutex
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w, m: &sync.Mutex{}}
}

// Report writes the fixed message and logs the detail of err at debug level.
// A nil error is ignored.
func (r *Reporter) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	kind := "unclassified"
	if k := Kind(err); k != nil {
		kind = k.Error()
	}

	ctxlog.Debug(ctx, "reporting error", "kind", kind, "error", err)

	r.m.Lock()
	defer r.m.Unlock()

	_, _ = io.WriteString(r.w, Message)
}
