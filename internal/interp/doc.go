// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package interp is the line orchestrator of the wish interpreter.
//
// Each line is split on '&' into segments. Segments are parsed and dispatched
// left to right: builtins run in-process, everything else is started as a
// child without waiting. Once every segment has been dispatched the
// interpreter waits for all children of the line before it reads the next.
package interp
