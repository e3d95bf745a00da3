package sinks

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/msprojectmerger/landing/svc/collect"
)

// DefaultRedisListKey is the list the landing page has always pushed to.
const DefaultRedisListKey = "email-list"

// RedisList pushes each record as a JSON string onto the head of a list.
type RedisList struct {
	client redis.Cmdable
	key    string
}

func NewRedisList(client redis.Cmdable, key string) *RedisList {
	if key == "" {
		key = DefaultRedisListKey
	}
	return &RedisList{client: client, key: key}
}

func (s *RedisList) Accept(ctx context.Context, rec collect.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return errors.Join(ErrEncodeRecord, err)
	}
	if err := s.client.LPush(ctx, s.key, payload).Err(); err != nil {
		return errors.Join(ErrStoreRecord, err)
	}
	return nil
}
