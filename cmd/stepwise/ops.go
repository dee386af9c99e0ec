// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/container"
	"github.com/katalvlaran/stepwise/core"
)

func newOpsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops CONTAINER OP...",
		Short: "Script operations on an array, stack, queue or hash table",
		Long: `Applies each OP in order to a fresh container and narrates the events.
A failing operation is reported and the script continues.

  array: add:ITEM[@INDEX] remove:INDEX search:ITEM reset
  stack: push:ITEM pop peek reset
  queue: enqueue:ITEM dequeue peek reset
  hash:  insert:KEY=VALUE search:KEY delete:KEY reset`,
		Example: `  stepwise ops stack push:oxygen push:carbon pop peek
  stepwise ops hash insert:H=Hydrogen insert:Na=Sodium search:Na`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sink := container.WithSink(a.sink(cmd))
			c := a.cfg.Containers

			var apply func(op, arg string) (string, error)
			var state func() string
			switch strings.ToLower(args[0]) {
			case "array":
				arr := container.NewArray(sink, container.WithCapacity(c.ArrayCapacity))
				apply = func(op, arg string) (string, error) { return arrayOp(arr, op, arg) }
				state = func() string { return fmt.Sprintf("%q (%s)", arr.Slots(), arr.Status()) }
			case "stack":
				st := container.NewStack(sink, container.WithCapacity(c.StackDepth))
				apply = func(op, arg string) (string, error) { return stackOp(st, op, arg) }
				state = func() string { return fmt.Sprintf("%q (%d/%d)", st.Items(), st.Len(), st.Cap()) }
			case "queue":
				q := container.NewQueue(sink, container.WithCapacity(c.QueueCapacity))
				apply = func(op, arg string) (string, error) { return queueOp(q, op, arg) }
				state = func() string { return fmt.Sprintf("%q front=%d rear=%d", q.Items(), q.Front(), q.Rear()) }
			case "hash":
				h := container.NewHashTable(sink, container.WithBuckets(c.HashBuckets))
				apply = func(op, arg string) (string, error) { return hashOp(h, op, arg) }
				state = func() string { return formatBuckets(h.Buckets()) }
			default:
				return fmt.Errorf("unknown container %q (want array, stack, queue or hash): %w", args[0], core.ErrInvalidInput)
			}

			failed := 0
			for _, tok := range args[1:] {
				op, arg, _ := strings.Cut(tok, ":")
				result, err := apply(strings.ToLower(op), arg)
				switch {
				case err != nil:
					failed++
					fmt.Fprintf(out, "    ! %s: %s (%s)\n", tok, err, core.ErrorKind(err))
				case result != "":
					fmt.Fprintf(out, "    = %s\n", result)
				}
			}
			fmt.Fprintf(out, "%s: %s\n", args[0], state())
			if failed > 0 {
				fmt.Fprintf(out, "%d of %d operations failed\n", failed, len(args)-1)
			}

			return nil
		},
	}

	return cmd
}

func arrayOp(a *container.Array, op, arg string) (string, error) {
	switch op {
	case "add":
		item, at, hasIndex := strings.Cut(arg, "@")
		index := -1
		if hasIndex {
			n, err := atoi(at)
			if err != nil {
				return "", err
			}
			index = n
		}
		i, err := a.AddAt(item, index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("slot %d", i), nil
	case "remove":
		n, err := atoi(arg)
		if err != nil {
			return "", err
		}
		item, err := a.Remove(n)
		return item, err
	case "search":
		i, found, err := a.Search(arg)
		if err != nil || !found {
			return "", err
		}
		return fmt.Sprintf("slot %d", i), nil
	case "reset":
		a.Reset()
		return "", nil
	}

	return "", unknownOp("array", op)
}

func stackOp(s *container.Stack, op, arg string) (string, error) {
	switch op {
	case "push":
		return "", s.Push(arg)
	case "pop":
		return s.Pop()
	case "peek":
		return s.Peek()
	case "reset":
		s.Reset()
		return "", nil
	}

	return "", unknownOp("stack", op)
}

func queueOp(q *container.Queue, op, arg string) (string, error) {
	switch op {
	case "enqueue":
		return "", q.Enqueue(arg)
	case "dequeue":
		return q.Dequeue()
	case "peek":
		return q.Peek()
	case "reset":
		q.Reset()
		return "", nil
	}

	return "", unknownOp("queue", op)
}

func hashOp(h *container.HashTable, op, arg string) (string, error) {
	switch op {
	case "insert":
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return "", fmt.Errorf("insert wants KEY=VALUE, got %q: %w", arg, core.ErrInvalidInput)
		}
		b, err := h.Insert(key, value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("bucket %d", b), nil
	case "search":
		v, found, err := h.Search(arg)
		if err != nil || !found {
			return "", err
		}
		return v, nil
	case "delete":
		return h.Delete(arg)
	case "reset":
		h.Reset()
		return "", nil
	}

	return "", unknownOp("hash", op)
}

// formatBuckets lists the non-empty buckets: "[2] H=Hydrogen Na=Sodium [5] A=1".
func formatBuckets(buckets []container.Bucket) string {
	var parts []string
	for _, bk := range buckets {
		if len(bk.Entries) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("[%d]", bk.Index))
		for _, e := range bk.Entries {
			parts = append(parts, e.Key+"="+e.Value)
		}
	}

	return strings.Join(parts, " ")
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("index %q is not a number: %w", s, core.ErrInvalidInput)
	}

	return n, nil
}

func unknownOp(c, op string) error {
	return fmt.Errorf("%s has no operation %q: %w", c, op, core.ErrInvalidInput)
}
