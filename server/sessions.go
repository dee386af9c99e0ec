// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/katalvlaran/stepwise/container"
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/internal/config"
)

// Container names accepted by the ops endpoint.
const (
	ContainerArray = "array"
	ContainerStack = "stack"
	ContainerQueue = "queue"
	ContainerHash  = "hash"
)

// unknownLabel stands in for client-supplied names in metric labels when the
// operation is rejected as unknown.
const unknownLabel = "unknown"

// session is one client's isolated set of containers. mu serialises every
// operation so the recorder only ever holds the current operation's events.
type session struct {
	mu      sync.Mutex
	id      string
	created time.Time
	rec     *core.Recorder
	array   *container.Array
	stack   *container.Stack
	queue   *container.Queue
	hash    *container.HashTable
}

func newSession(c config.ContainersConfig) *session {
	rec := &core.Recorder{}
	sink := container.WithSink(rec)

	return &session{
		id:      uuid.NewString(),
		created: time.Now().UTC(),
		rec:     rec,
		array:   container.NewArray(sink, container.WithCapacity(c.ArrayCapacity)),
		stack:   container.NewStack(sink, container.WithCapacity(c.StackDepth)),
		queue:   container.NewQueue(sink, container.WithCapacity(c.QueueCapacity)),
		hash:    container.NewHashTable(sink, container.WithBuckets(c.HashBuckets)),
	}
}

// SessionView is the JSON snapshot of a session's containers.
type SessionView struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Array     []string           `json:"array"`
	Stack     []string           `json:"stack"`
	Queue     QueueView          `json:"queue"`
	Hash      []container.Bucket `json:"hash"`
}

// QueueView shows the logical window of the queue.
type QueueView struct {
	Items []string `json:"items"`
	Front int      `json:"front"`
	Rear  int      `json:"rear"`
}

// view must be called with mu held.
func (s *session) view() SessionView {
	return SessionView{
		ID:        s.id,
		CreatedAt: s.created,
		Array:     s.array.Slots(),
		Stack:     s.stack.Items(),
		Queue:     QueueView{Items: s.queue.Items(), Front: s.queue.Front(), Rear: s.queue.Rear()},
		Hash:      s.hash.Buckets(),
	}
}

// OpRequest is the body of POST /v1/sessions/{id}/ops.
//
//	array: add {item, index?} | remove {index} | search {item} | reset
//	stack: push {item} | pop | peek | reset
//	queue: enqueue {item} | dequeue | peek | reset
//	hash:  insert {key, value} | search {key} | delete {key} | reset
type OpRequest struct {
	Container string `json:"container"`
	Op        string `json:"op"`
	Item      string `json:"item,omitempty"`
	Index     *int   `json:"index,omitempty"`
	Key       string `json:"key,omitempty"`
	Value     string `json:"value,omitempty"`
}

// OpResponse reports one container operation. Events are those emitted by
// the operation, including on failure.
type OpResponse struct {
	Container string       `json:"container"`
	Op        string       `json:"op"`
	Result    any          `json:"result,omitempty"`
	Error     string       `json:"error,omitempty"`
	Kind      string       `json:"kind,omitempty"`
	Events    []core.Event `json:"events"`
	Session   SessionView  `json:"session"`
}

// Apply performs req on the session's containers. The returned error is the
// operation's failure, also reported inside the response.
func (s *session) Apply(req OpRequest) (OpResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rec.Reset()
	c := strings.ToLower(strings.TrimSpace(req.Container))
	op := strings.ToLower(strings.TrimSpace(req.Op))
	result, err := s.dispatch(c, op, req)

	resp := OpResponse{
		Container: c,
		Op:        op,
		Result:    result,
		Events:    s.rec.Events(),
		Session:   s.view(),
	}
	if err != nil {
		resp.Error = err.Error()
		resp.Kind = core.ErrorKind(err)
	}

	return resp, err
}

func (s *session) dispatch(c, op string, req OpRequest) (any, error) {
	index := -1
	if req.Index != nil {
		index = *req.Index
	}

	switch c + "." + op {
	case "array.add":
		i, err := s.array.AddAt(req.Item, index)
		return map[string]any{"index": i}, err
	case "array.remove":
		if req.Index == nil {
			return nil, fmt.Errorf("array: remove: index is required: %w", core.ErrInvalidInput)
		}
		item, err := s.array.Remove(index)
		return map[string]any{"item": item}, err
	case "array.search":
		i, found, err := s.array.Search(req.Item)
		return map[string]any{"index": i, "found": found}, err
	case "array.reset":
		s.array.Reset()
		return nil, nil

	case "stack.push":
		return nil, s.stack.Push(req.Item)
	case "stack.pop":
		item, err := s.stack.Pop()
		return map[string]any{"item": item}, err
	case "stack.peek":
		item, err := s.stack.Peek()
		return map[string]any{"item": item}, err
	case "stack.reset":
		s.stack.Reset()
		return nil, nil

	case "queue.enqueue":
		return nil, s.queue.Enqueue(req.Item)
	case "queue.dequeue":
		item, err := s.queue.Dequeue()
		return map[string]any{"item": item}, err
	case "queue.peek":
		item, err := s.queue.Peek()
		return map[string]any{"item": item}, err
	case "queue.reset":
		s.queue.Reset()
		return nil, nil

	case "hash.insert":
		b, err := s.hash.Insert(req.Key, req.Value)
		return map[string]any{"bucket": b}, err
	case "hash.search":
		v, found, err := s.hash.Search(req.Key)
		return map[string]any{"value": v, "found": found, "bucket": s.hash.Hash(strings.TrimSpace(req.Key))}, err
	case "hash.delete":
		v, err := s.hash.Delete(req.Key)
		return map[string]any{"value": v}, err
	case "hash.reset":
		s.hash.Reset()
		return nil, nil
	}

	return nil, fmt.Errorf("%w %s.%s", ErrUnknownOp, c, op)
}

// registry owns the live sessions.
type registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*session)}
}

func (g *registry) add(s *session) {
	g.mu.Lock()
	g.sessions[s.id] = s
	g.mu.Unlock()
}

func (g *registry) get(id string) (*session, error) {
	g.mu.RLock()
	s, ok := g.sessions[id]
	g.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return s, nil
}

func (g *registry) remove(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(g.sessions, id)

	return nil
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	sess := newSession(s.containers)
	s.sessions.add(sess)
	s.metrics.SessionOpened()

	sess.mu.Lock()
	v := sess.view()
	sess.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, v)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	sess.mu.Lock()
	v := sess.view()
	sess.mu.Unlock()
	s.writeJSON(w, http.StatusOK, v)
}

func (s *Server) applyOp(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req OpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("server: invalid request body: %v: %w", err, core.ErrInvalidInput))
		return
	}

	resp, err := sess.Apply(req)
	if errors.Is(err, ErrUnknownOp) {
		s.metrics.ObserveOp(unknownLabel, unknownLabel, err)
	} else {
		s.metrics.ObserveOp(resp.Container, resp.Op, err)
	}
	status := http.StatusOK
	if err != nil {
		status = StatusFor(err)
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.remove(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.metrics.SessionClosed()
	w.WriteHeader(http.StatusNoContent)
}
