// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tokenize splits command text into trimmed, non-empty tokens.
package tokenize

import "strings"

const (
	// Whitespace separates the words of a command.
	Whitespace = " \t"
	// Parallel separates commands that run concurrently on one line.
	Parallel = "&"
	// Redirect introduces an output redirection target.
	Redirect = ">"
)

// Split cuts text at every character in delims. Each piece is trimmed of
// leading and trailing spaces and tabs, and empty pieces are dropped, so runs
// of delimiters act as a single boundary. Text inside a piece is left as is.
func Split(text, delims string) []string {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})

	tokens := make([]string, 0, len(pieces))

	for _, p := range pieces {
		p = strings.Trim(p, Whitespace)
		if p == "" {
			continue
		}

		tokens = append(tokens, p)
	}

	return tokens
}
