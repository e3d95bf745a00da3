package sinks_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msprojectmerger/landing/svc/collect"
	"github.com/msprojectmerger/landing/svc/collect/sinks"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisList(t *testing.T) {
	t.Parallel()

	t.Run("pushes newest first", func(t *testing.T) {
		t.Parallel()
		mr, client := setupRedis(t)
		sink := sinks.NewRedisList(client, "")

		ctx := context.Background()
		require.NoError(t, sink.Accept(ctx, collect.Record{Email: "first@example.com", Platform: "mac", Timestamp: "t1"}))
		require.NoError(t, sink.Accept(ctx, collect.Record{Email: "second@example.com", Platform: "windows", Timestamp: "t2"}))

		items, err := mr.List(sinks.DefaultRedisListKey)
		require.NoError(t, err)
		require.Len(t, items, 2)

		var newest collect.Record
		require.NoError(t, json.Unmarshal([]byte(items[0]), &newest))
		assert.Equal(t, collect.Record{Email: "second@example.com", Platform: "windows", Timestamp: "t2"}, newest)
	})

	t.Run("custom key", func(t *testing.T) {
		t.Parallel()
		mr, client := setupRedis(t)
		require.NoError(t, sinks.NewRedisList(client, "leads").Accept(context.Background(), collect.Record{Email: "a@b"}))

		items, err := mr.List("leads")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("server down", func(t *testing.T) {
		t.Parallel()
		mr, client := setupRedis(t)
		mr.Close()

		err := sinks.NewRedisList(client, "").Accept(context.Background(), collect.Record{Email: "a@b"})
		assert.ErrorIs(t, err, sinks.ErrStoreRecord)
	})
}
