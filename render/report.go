// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/katalvlaran/stepwise/core"
)

// DefaultWrap is the word-wrap width of RenderMarkdown.
const DefaultWrap = 80

// Report summarises a trace as markdown: header, parameters, outcome, a
// per-kind event tally and the final narration line.
func Report(t *core.Trace) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s run\n\n", t.Engine)
	fmt.Fprintf(&b, "- **ID:** `%s`\n", t.ID)
	fmt.Fprintf(&b, "- **State:** %s\n", t.State)
	if t.Error != "" {
		fmt.Fprintf(&b, "- **Error:** %s (%s)\n", t.Error, t.ErrorKind)
	}
	fmt.Fprintf(&b, "- **Created:** %s\n", t.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- **Events:** %d\n", len(t.Events))

	writeTable(&b, "Parameters", t.Params)
	writeTable(&b, "Summary", t.Summary)

	counts := make(map[core.Kind]int)
	for _, ev := range t.Events {
		counts[ev.Kind]++
	}
	if len(counts) > 0 {
		b.WriteString("\n## Steps\n\n| Kind | Count |\n|---|---:|\n")
		for _, k := range core.Kinds() {
			if n := counts[k]; n > 0 {
				fmt.Fprintf(&b, "| %s | %d |\n", k, n)
			}
		}
	}

	if n := len(t.Events); n > 0 && t.Events[n-1].Message != "" {
		fmt.Fprintf(&b, "\n> %s\n", t.Events[n-1].Message)
	}

	return b.String()
}

func writeTable(b *strings.Builder, title string, m map[string]any) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fmt.Fprintf(b, "\n## %s\n\n| Key | Value |\n|---|---|\n", title)
	for _, k := range keys {
		fmt.Fprintf(b, "| %s | %v |\n", k, m[k])
	}
}

// RenderMarkdown styles md for a terminal. style is a glamour style name
// ("dark", "light", "notty", ...); empty selects the automatic style.
func RenderMarkdown(md, style string, width int) (string, error) {
	if width < 1 {
		width = DefaultWrap
	}
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("render: markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}

	return out, nil
}
