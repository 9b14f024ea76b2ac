// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch starts external programs for command segments and joins
// the processes started from one line.
//
// Start never waits: it returns a Handle as soon as the child exists. A
// ParallelBatch collects the handles of one line and Wait blocks until every
// child has exited. Exit statuses are recorded for logging only.
package runbatch
