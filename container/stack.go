// SPDX-License-Identifier: MIT

package container

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Stack is a bounded LIFO sequence (DefaultStackDepth unless overridden).
type Stack struct {
	cfg   config
	items []string
}

// NewStack returns an empty Stack.
func NewStack(opts ...Option) *Stack {
	cfg := newConfig(DefaultStackDepth, opts...)

	return &Stack{cfg: cfg, items: make([]string, 0, cfg.capacity)}
}

// Push appends item on top. Returns core.ErrOverflow when the stack is full
// and core.ErrInvalidInput for an empty item.
func (s *Stack) Push(item string) error {
	item, err := requireName("stack: push", "item", item)
	if err != nil {
		return err
	}
	if len(s.items) >= s.cfg.capacity {
		return fmt.Errorf("stack: push %q at height %d: %w", item, len(s.items), core.ErrOverflow)
	}
	s.items = append(s.items, item)

	return s.cfg.emitter().Emit(core.Event{
		Kind:    core.Push,
		Indices: []int{len(s.items) - 1},
		Key:     item,
		Message: fmt.Sprintf("Pushed '%s' to top of stack", item),
	})
}

// Pop removes and returns the top item. Returns core.ErrUnderflow when empty.
func (s *Stack) Pop() (string, error) {
	top := len(s.items) - 1
	if top < 0 {
		return "", fmt.Errorf("stack: pop: %w", core.ErrUnderflow)
	}
	item := s.items[top]
	s.items[top] = ""
	s.items = s.items[:top]

	return item, s.cfg.emitter().Emit(core.Event{
		Kind:    core.Pop,
		Indices: []int{top},
		Key:     item,
		Message: fmt.Sprintf("Popped '%s' from stack", item),
	})
}

// Peek returns the top item without removing it and highlights it.
// Returns core.ErrEmpty when empty.
func (s *Stack) Peek() (string, error) {
	top := len(s.items) - 1
	if top < 0 {
		return "", fmt.Errorf("stack: peek: %w", core.ErrEmpty)
	}
	item := s.items[top]

	return item, s.cfg.emitter().Emit(core.Event{
		Kind:    core.Highlight,
		Indices: []int{top},
		Key:     item,
		Message: fmt.Sprintf("Top item: '%s'", item),
	})
}

// Reset empties the stack.
func (s *Stack) Reset() { s.items = s.items[:0] }

// Items returns the items bottom to top.
func (s *Stack) Items() []string { return append([]string(nil), s.items...) }

// Len returns the current height.
func (s *Stack) Len() int { return len(s.items) }

// Cap returns the maximum height.
func (s *Stack) Cap() int { return s.cfg.capacity }
