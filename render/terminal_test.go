// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/recursion"
	"github.com/katalvlaran/stepwise/sorting"
)

func TestBars(t *testing.T) {
	assert.Equal(t, []string{
		" 4 ####",
		" 2 ## <",
		" 0 ",
		"10 ##########",
	}, Bars([]int{4, 2, 0, 10}, []int{1}, 10))

	assert.Nil(t, Bars(nil, nil, 10))
	assert.Equal(t, []string{"1 " + strings.Repeat("#", DefaultBarWidth)}, Bars([]int{1}, nil, 0))
	assert.Equal(t, []string{"100 ####", "  1 #"}, Bars([]int{100, 1}, nil, 4), "non-zero values keep one mark")
}

func TestTerminal_SortNarration(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, WithBarWidth(3))
	_, err := sorting.Sort(context.Background(), sorting.Bubble, []int{2, 1}, sorting.WithSink(term))
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"000 compare        Comparing 2 and 1",
		"001 swap           Swapped 2 and 1",
		"    1 # <",
		"    2 ### <",
		"002 highlight      Sorting completed! Final array: [1 2]",
		"    1 # <",
		"    2 ### <",
		"",
	}, "\n"), buf.String())
}

func TestTerminal_IndentsRecursion(t *testing.T) {
	var buf bytes.Buffer
	_, err := recursion.Factorial(context.Background(), 2, recursion.WithSink(NewTerminal(&buf)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "recurse_call   Call 1")
	assert.Contains(t, lines[1], "recurse_call     Call 2", "depth 1 is indented")
}

func TestTerminal_WithoutBars(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, WithBars(false))
	require.NoError(t, term.Emit(core.Event{Kind: core.Swap, Snapshot: []int{1, 2}, Message: "x"}))
	assert.Equal(t, "000 swap           x\n", buf.String())
}

func TestTerminal_ColorProfile(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, WithProfile(termenv.TrueColor))
	require.NoError(t, term.Emit(core.Event{Kind: core.Found, Message: "hit"}))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "hit")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTerminal_WriteErrorAbortsRun(t *testing.T) {
	_, err := sorting.Sort(context.Background(), sorting.Quick, []int{3, 1, 2},
		sorting.WithSink(NewTerminal(failingWriter{})))
	require.Error(t, err)
	assert.Equal(t, "closed", err.Error())
}

func TestWithBarWidth_Panics(t *testing.T) {
	assert.Panics(t, func() { WithBarWidth(0) })
}
