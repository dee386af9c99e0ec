// SPDX-License-Identifier: MIT

// Package redis stores traces in Redis: one JSON value per trace under a key
// prefix, plus a sorted-set index scored by creation time.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/store"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "stepwise"

// Store implements store.Store on a Redis client.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ store.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithTTL expires traces after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New connects to the server at addr.
func New(addr, password string, db int, opts ...Option) *Store {
	return NewFromClient(backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewFromClient wraps an existing client. Close closes the client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{client: client, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) key(id string) string { return s.prefix + ":trace:" + id }

func (s *Store) indexKey() string { return s.prefix + ":traces" }

// Save writes the trace value and indexes it in one pipeline.
func (s *Store) Save(ctx context.Context, t *core.Trace) error {
	if t == nil || t.ID == "" {
		return store.ErrNoID
	}
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(t.ID), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  float64(t.CreatedAt.UnixMilli()),
		Member: t.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Load reads one trace.
func (s *Store) Load(ctx context.Context, id string) (*core.Trace, error) {
	val, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, store.NotFound(id)
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	return decode(val)
}

// List returns every live trace, newest first. Index entries whose value has
// expired are pruned on the way.
func (s *Store) List(ctx context.Context) ([]*core.Trace, error) {
	ids, err := s.client.ZRevRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	if len(ids) == 0 {
		return []*core.Trace{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(id)
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch traces: %w", err)
	}

	out := make([]*core.Trace, 0, len(vals))
	var stale []any
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		t, err := decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if len(stale) > 0 {
		if err := s.client.ZRem(ctx, s.indexKey(), stale...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune expired traces: %w", err)
		}
	}
	store.SortNewestFirst(out)

	return out, nil
}

// Delete removes the value and its index entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, s.key(id))
	pipe.ZRem(ctx, s.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	if del.Val() == 0 {
		return store.NotFound(id)
	}

	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

func decode(data []byte) (*core.Trace, error) {
	var t core.Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trace: %w", err)
	}

	return &t, nil
}
