// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package segment parses one command segment into its argument vector and an
// optional output redirection target.
package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/wish/internal/report"
	"github.com/matt-FFFFFF/wish/internal/tokenize"
)

var (
	// ErrMultipleRedirects is returned when a segment has more than one '>'.
	ErrMultipleRedirects = errors.New("more than one redirection")
	// ErrBadRedirectTarget is returned when the text after '>' is not exactly one word.
	ErrBadRedirectTarget = errors.New("redirection needs exactly one target")
	// ErrEmptyCommand is returned when no command word precedes the redirect.
	// Callers treat it as nothing to do.
	ErrEmptyCommand = errors.New("empty command")
)

// Segment is a parsed command. Args is never empty for a segment returned
// without error, and Args[0] is the command or builtin name.
type Segment struct {
	Args     []string
	Redirect string // target file, empty when output is not redirected
}

// HasRedirect reports whether output goes to a file.
func (s Segment) HasRedirect() bool {
	return s.Redirect != ""
}

// Name is the first word of the segment.
func (s Segment) Name() string {
	if len(s.Args) == 0 {
		return ""
	}

	return s.Args[0]
}

// Parse splits text at its redirect marker, if any, and tokenizes the command
// part on whitespace. The redirect target is checked before the command words
// so that spacing before '>' never affects the one-target rule.
//
// The errors returned wrap report.ErrParse, except ErrEmptyCommand.
func Parse(text string) (Segment, error) {
	cmdText := text

	var seg Segment

	switch strings.Count(text, tokenize.Redirect) {
	case 0:
	case 1:
		var target string

		cmdText, target, _ = strings.Cut(text, tokenize.Redirect)

		targets := tokenize.Split(target, tokenize.Whitespace)
		if len(targets) != 1 {
			return Segment{}, errors.Join(report.ErrParse,
				fmt.Errorf("%w: got %d", ErrBadRedirectTarget, len(targets)))
		}

		seg.Redirect = targets[0]
	default:
		return Segment{}, errors.Join(report.ErrParse, ErrMultipleRedirects)
	}

	seg.Args = tokenize.Split(cmdText, tokenize.Whitespace)
	if len(seg.Args) == 0 {
		return Segment{}, ErrEmptyCommand
	}

	return seg, nil
}
