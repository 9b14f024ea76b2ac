// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on log/slog.
//
// The default logger is a pretty console handler writing to standard error.
// Its level starts at LevelOff, so nothing is written unless a level is
// selected through the environment variable derived from the executable name
// (for example WISH_LOG_LEVEL) or set explicitly on LevelVar.
package ctxlog
