// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandinpath holds the interpreter's search path and resolves bare
// command names against it.
//
// The search path starts as a single default directory and is only ever
// replaced wholesale. Resolution walks it in order and the first directory
// holding an executable file of the requested name wins.
package commandinpath
