// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package builtins implements the directives the interpreter runs in its own
// process: exit, cd and path.
//
// A Registry maps directive names to implementations. Dispatch reports whether
// a name matched independently of whether the directive succeeded, so names
// it does not know fall through to external execution.
package builtins
