// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package input provides the line sources the interpreter reads commands from:
// an interactive prompt on standard input or a batch file.
package input

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/matt-FFFFFF/wish/internal/report"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Prompt is written before each interactive read.
const Prompt = "wish> "

// ErrOpenBatch is returned when the batch file cannot be opened.
var ErrOpenBatch = errors.New("could not open batch file")

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Source yields command lines. ReadLine returns io.EOF once input is exhausted.
// A returned line may still carry its line terminator.
type Source interface {
	ReadLine() (string, error)
	Close() error
}

// Reader reads lines from an io.Reader, optionally writing a prompt first.
type Reader struct {
	r      *bufio.Reader
	closer io.Closer
	prompt string
	out    io.Writer
}

var _ Source = (*Reader)(nil)

// NewReader reads lines from r. When prompt is not empty it is written to out
// before every read.
func NewReader(r io.Reader, prompt string, out io.Writer) *Reader {
	return &Reader{r: bufio.NewReader(r), prompt: prompt, out: out}
}

// OpenBatch opens path for reading without a prompt. Failure wraps report.ErrStartup.
func OpenBatch(path string) (*Reader, error) {
	f, err := FsFactory().Open(path)
	if err != nil {
		return nil, errors.Join(report.ErrStartup, ErrOpenBatch, err)
	}

	rd := NewReader(f, "", io.Discard)
	rd.closer = f

	return rd, nil
}

// Interactive returns a prompting source for stdin. On a terminal it uses
// line editing with history, otherwise it writes the prompt to stdout and
// reads plain lines.
func Interactive(stdin, stdout *os.File) Source {
	if term.IsTerminal(int(stdin.Fd())) && term.IsTerminal(int(stdout.Fd())) {
		return NewLiner(Prompt)
	}

	return NewReader(stdin, Prompt, stdout)
}

// ReadLine returns the next line including its newline. A final line without
// a newline is returned with a nil error, the next call returns io.EOF.
func (r *Reader) ReadLine() (string, error) {
	if r.prompt != "" {
		if _, err := io.WriteString(r.out, r.prompt); err != nil {
			return "", err //nolint:wrapcheck
		}
	}

	line, err := r.r.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}

	return line, err //nolint:wrapcheck
}

// Close closes the underlying file, if the reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}

	return r.closer.Close() //nolint:wrapcheck
}
