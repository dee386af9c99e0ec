// SPDX-License-Identifier: MIT

// Package server exposes the engines over HTTP.
//
// Routes:
//
//	GET    /healthz
//	GET    /metrics
//	POST   /v1/runs                  {engine, params} → 201 Trace
//	GET    /v1/runs                  → []Trace (events omitted)
//	GET    /v1/runs/{id}             → Trace
//	GET    /v1/runs/{id}/report      → text/markdown summary
//	DELETE /v1/runs/{id}
//	POST   /v1/sessions              → 201 session view
//	GET    /v1/sessions/{id}         → session view
//	POST   /v1/sessions/{id}/ops     {container, op, ...} → OpResponse
//	DELETE /v1/sessions/{id}
//
// Every session owns its own Array, Stack, Queue and HashTable guarded by a
// per-session mutex, so sessions never observe each other.
//
// Failures are JSON {"error", "kind"} with the status chosen by core.ErrorKind:
// InvalidInput → 400, NotFound → 404, capacity and emptiness kinds and
// RunInProgress → 409, anything else → 500.
package server
