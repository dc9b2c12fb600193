package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

// OutputSlot holds the most recent chat response for the terminal-output
// endpoint. It is a diagnostic side channel: the slot is process wide, not
// scoped to a request, and concurrent writers race with the last write winning.
type OutputSlot interface {
	Store(ctx context.Context, text string) error
	Load(ctx context.Context) (string, error)
}

// NewOutputSlot returns a Redis-backed slot when r is configured and an
// in-memory one otherwise.
func NewOutputSlot(r *Redis, key string) OutputSlot {
	if r == nil || r.Client == nil {
		return NewMemorySlot()
	}
	return NewRedisSlot(r.Client, key)
}

type memorySlot struct {
	text atomic.Pointer[string]
}

// NewMemorySlot creates an empty in-process slot.
func NewMemorySlot() OutputSlot {
	return &memorySlot{}
}

func (m *memorySlot) Store(_ context.Context, text string) error {
	m.text.Store(&text)
	return nil
}

func (m *memorySlot) Load(context.Context) (string, error) {
	if p := m.text.Load(); p != nil {
		return *p, nil
	}
	return "", nil
}

type redisSlot struct {
	client redis.Cmdable
	key    string
}

// NewRedisSlot stores the text under key with no expiry.
func NewRedisSlot(client redis.Cmdable, key string) OutputSlot {
	return &redisSlot{client: client, key: key}
}

func (r *redisSlot) Store(ctx context.Context, text string) error {
	if err := r.client.Set(ctx, r.key, text, 0).Err(); err != nil {
		return fmt.Errorf("store terminal output: %w", err)
	}
	return nil
}

func (r *redisSlot) Load(ctx context.Context) (string, error) {
	text, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load terminal output: %w", err)
	}
	return text, nil
}
