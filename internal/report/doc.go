// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report holds the interpreter's error taxonomy and the reporter that
// surfaces every error condition to the user as one fixed message.
//
// Errors are classified internally with errors.Is against the kind sentinels
// (ErrStartup, ErrParse, ErrBuiltin, ErrSpawn, ErrChildRuntime). The kind and
// cause are only ever visible in debug logs.
package report
