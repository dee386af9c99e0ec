// SPDX-License-Identifier: MIT

// Package render presents step events to people. Everything here is a
// subscriber or a post-processor of core.Trace; engines never depend on it.
//
//   - Terminal: a core.Sink writing colored narration and ASCII bars.
//   - Bars: the bar chart of one snapshot, highlighted indices marked.
//   - Report: a markdown summary of a trace.
//   - RenderMarkdown: Report (or any markdown) styled for a terminal.
package render
