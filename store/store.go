package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrStoreUnavailable is returned when the backing Redis instance is
// unreachable or a call fails at the transport level.
var ErrStoreUnavailable = errors.New("session store unavailable")

// ErrCorruptSession is returned when a stored record cannot be decoded back
// into a session mapping. Corrupt records are surfaced, never silently
// treated as empty.
var ErrCorruptSession = errors.New("corrupt session record")

// DefaultIdleTTL is the idle expiration window applied on every write.
// A session with no mutating operation for this long is purged by Redis.
const DefaultIdleTTL = 24 * time.Hour

// Store is the Redis-backed session store client. It owns the connection to
// the sessions dataset, the binary codec, and the TTL-refresh protocol.
//
// The raw session identifier is used directly as the Redis key. Dataset
// selection (the Redis logical DB) happens at client construction time and
// is never parameterized per call.
//
// A single Store is safe for concurrent use; Redis serializes the individual
// load/save calls.
type Store struct {
	redis   redis.UniversalClient
	idleTTL time.Duration
}

// New creates a session [Store] backed by the given Redis client. The client
// must already be selected onto the sessions dataset. idleTTL <= 0 falls
// back to [DefaultIdleTTL].
func New(client redis.UniversalClient, idleTTL time.Duration) *Store {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Store{
		redis:   client,
		idleTTL: idleTTL,
	}
}

// IdleTTL returns the configured idle expiration window.
func (s *Store) IdleTTL() time.Duration {
	return s.idleTTL
}

// Load fetches and decodes the session mapping stored under id. A missing
// record is not an error: Load returns an empty, non-nil mapping so a
// brand-new identifier reads as an empty session. Load never touches the
// record's expiration countdown.
func (s *Store) Load(ctx context.Context, id string) (map[string]any, error) {
	data, err := s.redis.Get(ctx, id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	values, err := decodeValues(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	return values, nil
}

// Save encodes the whole mapping and writes it under id, resetting the idle
// expiration window and discarding any previous countdown. Every mutating
// session operation funnels through Save, so each write refreshes the TTL.
func (s *Store) Save(ctx context.Context, id string, values map[string]any) error {
	data, err := encodeValues(values)
	if err != nil {
		return err
	}

	if err := s.redis.Set(ctx, id, data, s.idleTTL).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Destroy removes the record stored under id. Destroying an identifier with
// no record is a no-op.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, id).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Ping returns a point-in-time Redis availability check and latency.
func (s *Store) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return time.Since(start), fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return time.Since(start), nil
}
