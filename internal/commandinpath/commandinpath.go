// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandinpath

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/matt-FFFFFF/wish/internal/ctxlog"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// ErrNotFound is returned when no directory in the registry holds an
// executable of the requested name.
var ErrNotFound = errors.New("command not found in path")

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// access checks that the current (real) user may execute path.
var access = func(path string) error {
	return unix.Access(path, unix.X_OK) //nolint:wrapcheck
}

// Resolve returns dir/name for the first directory of reg where that file is
// executable. Earlier directories shadow later ones. The candidate is built by
// plain concatenation, an empty directory entry yields /name.
func Resolve(ctx context.Context, reg *Registry, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrNotFound)
	}

	fs := FsFactory()
	dirs := reg.Snapshot()

	for _, dir := range dirs {
		candidate := dir + string(filepath.Separator) + name
		if IsExecutable(fs, candidate) {
			ctxlog.Debug(ctx, "command resolved", "name", name, "path", candidate)
			return candidate, nil
		}
	}

	ctxlog.Debug(ctx, "command not resolved", "name", name, "dirs", dirs)

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// IsExecutable reports whether path exists, is not a directory and can be
// executed by the current user. Symlinks are followed.
// On the OS filesystem the kernel decides with access(2). Other afero
// filesystems have no owner, so any execute bit counts.
func IsExecutable(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}

	if info.IsDir() {
		return false
	}

	if _, ok := fs.(*afero.OsFs); ok {
		return access(path) == nil
	}

	return info.Mode()&0o111 != 0
}
