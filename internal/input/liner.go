// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"strings"

	"github.com/peterh/liner"
)

// Liner is a terminal line source with editing and history.
type Liner struct {
	state  *liner.State
	prompt string
}

var _ Source = (*Liner)(nil)

// NewLiner takes over the terminal for prompting. Ctrl-C at the prompt
// abandons the current line.
func NewLiner(prompt string) *Liner {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	return &Liner{state: state, prompt: prompt}
}

// ReadLine prompts and returns the line typed. An aborted prompt yields an
// empty line. Ctrl-D on an empty line returns io.EOF.
func (l *Liner) ReadLine() (string, error) {
	line, err := l.state.Prompt(l.prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	}

	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if strings.TrimSpace(line) != "" {
		l.state.AppendHistory(line)
	}

	return line, nil
}

// Close restores the terminal.
func (l *Liner) Close() error {
	return l.state.Close() //nolint:wrapcheck
}
