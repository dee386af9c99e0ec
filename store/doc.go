// SPDX-License-Identifier: MIT

// Package store persists core.Trace values.
//
// Three backends share one contract:
//   - NewMemory: process-local map, the default.
//   - store/redis: JSON values under a key prefix plus a sorted-set index.
//   - store/sqlite: a single traces table in an embedded database.
//
// List returns traces newest first. Load of an unknown ID fails with
// ErrTraceNotFound.
package store
