// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandinpath

import "slices"

// DefaultDir is the single entry of a freshly initialized Registry.
const DefaultDir = "/bin"

// Registry is the ordered list of directories searched for commands.
// Duplicates are allowed and the list may be empty.
//
// It is owned by one interpreter and accessed only from its read loop, so it
// carries no lock.
type Registry struct {
	dirs []string
}

// NewRegistry returns a Registry containing only DefaultDir.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Initialize()

	return r
}

// Initialize resets the registry to DefaultDir.
func (r *Registry) Initialize() {
	r.dirs = []string{DefaultDir}
}

// Replace discards the current directories and installs dirs.
// An empty dirs makes every bare command unresolvable.
func (r *Registry) Replace(dirs []string) {
	r.dirs = slices.Clone(dirs)
}

// Snapshot returns a copy of the current directories in search order.
func (r *Registry) Snapshot() []string {
	return slices.Clone(r.dirs)
}

// Release empties the registry.
func (r *Registry) Release() {
	r.dirs = nil
}
