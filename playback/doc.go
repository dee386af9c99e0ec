// SPDX-License-Identifier: MIT

// Package playback paces a run for human viewers.
//
// Engines never sleep. A Player pulls events from a core.Cursor, hands each
// one to a Sink and then waits Delay (scaled per kind) before resuming the
// engine. Cancelling the context, or a Sink error, stops the cursor, which
// leaves the engine's working copy as it was after the last delivered event.
//
// The speed slider of the classroom panels maps to a delay with
// DelayFromSlider (1100 - v milliseconds) and back to a label with SpeedLabel.
//
// LogSink narrates a run through a zap logger, one structured entry per event.
package playback
