package history

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by Redis lists. Each conversation is one list of
// JSON-encoded entries trimmed to the configured cap on every append.
type Redis struct {
	client redis.UniversalClient
	opts   *options
}

// NewRedis creates a Redis-backed store. The client is typically obtained
// from Open.
func NewRedis(client redis.UniversalClient, opts ...Option) *Redis {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Redis{client: client, opts: o}
}

func (r *Redis) Append(ctx context.Context, key string, e Entry) error {
	if key == "" {
		return ErrEmptyKey
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}

	k := r.key(key)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, k, data)
		pipe.LTrim(ctx, k, int64(-r.opts.maxEntries), -1)
		if r.opts.ttl > 0 {
			pipe.Expire(ctx, k, r.opts.ttl)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

func (r *Redis) Recent(ctx context.Context, key string, n int) ([]Entry, error) {
	start := int64(0)
	if n > 0 {
		start = int64(-n)
	}

	raw, err := r.client.LRange(ctx, r.key(key), start, -1).Result()
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, errors.Join(ErrUnmarshal, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Ping validates Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r.client == nil {
		return ErrUnavailable
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) key(key string) string {
	if r.opts.prefix == "" {
		return "history:" + key
	}
	return r.opts.prefix + ":history:" + key
}
