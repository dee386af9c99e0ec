// SPDX-License-Identifier: MIT

package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/store"
	"github.com/katalvlaran/stepwise/store/redis"
)

func newBackend(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})

	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	store.RunContract(t, func(t *testing.T) store.Store {
		_, client := newBackend(t)
		s := redis.NewFromClient(client)
		t.Cleanup(func() { _ = s.Close() })

		return s
	})
}

func TestRedisStore_PrefixAndTTL(t *testing.T) {
	ctx := context.Background()
	mr, client := newBackend(t)
	s := redis.NewFromClient(client, redis.WithPrefix("lab"), redis.WithTTL(time.Minute))
	defer s.Close()
	require.NoError(t, s.Ping(ctx))

	tr := core.NewTrace("factorial", map[string]any{"n": 5})
	tr.Finish(nil, nil)
	require.NoError(t, s.Save(ctx, tr))

	assert.True(t, mr.Exists("lab:trace:"+tr.ID))
	assert.Equal(t, time.Minute, mr.TTL("lab:trace:"+tr.ID))

	mr.FastForward(2 * time.Minute)

	_, err := s.Load(ctx, tr.ID)
	assert.True(t, errors.Is(err, store.ErrTraceNotFound))

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	members, err := mr.ZMembers("lab:traces")
	if err == nil {
		assert.Empty(t, members, "expired ids are pruned from the index")
	}
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	mr, client := newBackend(t)
	s := redis.NewFromClient(client)
	mr.Close()

	_, err := s.Load(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, store.ErrTraceNotFound))
}
