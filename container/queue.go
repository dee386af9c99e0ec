// SPDX-License-Identifier: MIT

package container

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Queue is a FIFO over the logical window [front, rear) of a backing buffer.
// Invariants: 0 ≤ front ≤ rear; rear-front ≤ capacity; when the window
// empties on Dequeue both indices return to 0.
type Queue struct {
	cfg   config
	buf   []string
	front int
	rear  int
}

// NewQueue returns an empty Queue (DefaultQueueCapacity unless overridden).
func NewQueue(opts ...Option) *Queue {
	cfg := newConfig(DefaultQueueCapacity, opts...)

	return &Queue{cfg: cfg, buf: make([]string, 0, cfg.capacity)}
}

// Enqueue writes item at rear and advances rear. Returns core.ErrOverflow
// when rear-front reaches capacity.
func (q *Queue) Enqueue(item string) error {
	item, err := requireName("queue: enqueue", "item", item)
	if err != nil {
		return err
	}
	if q.rear-q.front >= q.cfg.capacity {
		return fmt.Errorf("queue: enqueue %q: %w", item, core.ErrOverflow)
	}
	at := q.rear
	if at < len(q.buf) {
		q.buf[at] = item
	} else {
		q.buf = append(q.buf, item)
	}
	q.rear++

	return q.cfg.emitter().Emit(core.Event{
		Kind:    core.Enqueue,
		Indices: []int{at},
		Key:     item,
		Message: fmt.Sprintf("Enqueued '%s' to rear of queue", item),
	})
}

// Dequeue reads front and advances it. Returns core.ErrUnderflow when empty.
func (q *Queue) Dequeue() (string, error) {
	if q.rear <= q.front {
		return "", fmt.Errorf("queue: dequeue: %w", core.ErrUnderflow)
	}
	at := q.front
	item := q.buf[at]
	q.buf[at] = ""
	q.front++
	if q.front == q.rear {
		q.front, q.rear = 0, 0
		q.buf = q.buf[:0]
	}

	return item, q.cfg.emitter().Emit(core.Event{
		Kind:    core.Dequeue,
		Indices: []int{at},
		Key:     item,
		Message: fmt.Sprintf("Dequeued '%s' from front of queue", item),
	})
}

// Peek returns the front item without removing it. Returns core.ErrEmpty
// when empty.
func (q *Queue) Peek() (string, error) {
	if q.rear <= q.front {
		return "", fmt.Errorf("queue: peek: %w", core.ErrEmpty)
	}
	item := q.buf[q.front]

	return item, q.cfg.emitter().Emit(core.Event{
		Kind:    core.Highlight,
		Indices: []int{q.front},
		Key:     item,
		Message: fmt.Sprintf("Next item to process: '%s'", item),
	})
}

// Reset empties the queue and rewinds both indices.
func (q *Queue) Reset() {
	q.buf = q.buf[:0]
	q.front, q.rear = 0, 0
}

// Items returns the waiting items front to rear.
func (q *Queue) Items() []string {
	return append([]string(nil), q.buf[q.front:q.rear]...)
}

// Len returns rear-front.
func (q *Queue) Len() int { return q.rear - q.front }

// Front returns the index of the next item to dequeue.
func (q *Queue) Front() int { return q.front }

// Rear returns the index the next Enqueue will write.
func (q *Queue) Rear() int { return q.rear }

// Cap returns the logical capacity.
func (q *Queue) Cap() int { return q.cfg.capacity }
