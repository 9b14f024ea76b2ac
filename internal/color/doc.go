// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decides whether diagnostic output may carry ANSI colour and
// wraps strings in colour codes when it may.
//
// Diagnostics go to standard error, so terminal detection checks that stream.
// NO_COLOR disables colour and FORCE_COLOR enables it regardless of the terminal.
package color
