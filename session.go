package goSession

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MrEthical07/goSession/internal"
)

// Session is the per-request session handle. It resolves the client's
// identifier from the carrier (minting one when needed), exposes the value
// mapping, and delegates all persistence to the store client.
//
// One Session serves exactly one in-flight request; never share a handle
// across requests or goroutines. Concurrent requests presenting the same
// identifier each run their own load→mutate→save cycle with no locking or
// compare-and-swap: the later save rewrites the whole mapping and silently
// wins over the earlier one. That last-writer-wins behavior is the
// documented baseline for this store, acceptable under the usual
// single-writer-per-client request pattern.
type Session struct {
	manager *Manager
	carrier Carrier

	id       string
	resolved bool
}

// ID resolves and returns the session identifier. Resolution runs at most
// once per handle: a verified inbound cookie value is reused, otherwise a
// fresh identifier is minted and set as a signed outbound cookie. Minting
// writes nothing to the store — the record appears lazily on the first
// mutating operation.
func (s *Session) ID() string {
	if s.resolved {
		return s.id
	}

	if v, ok := s.carrier.Get(SessionCookieName); ok && internal.ValidIdentifier(v) {
		s.id = v
	} else {
		s.id = internal.NewIdentifier()
		s.carrier.Set(SessionCookieName, s.id)
		s.manager.metrics.Inc(MetricIdentifierMinted)
	}

	s.resolved = true
	return s.id
}

// Set stores value under name, rewriting the whole session record and
// resetting its idle TTL.
func (s *Session) Set(ctx context.Context, name string, value any) error {
	return s.change(ctx, func(values map[string]any) {
		values[name] = value
	})
}

// Get returns the value stored under name, or nil when the key is absent or
// no record exists yet. Reading never creates a record and never refreshes
// the TTL.
func (s *Session) Get(ctx context.Context, name string) (any, error) {
	return s.GetDefault(ctx, name, nil)
}

// GetDefault is [Session.Get] with a caller-supplied default for absent
// keys.
func (s *Session) GetDefault(ctx context.Context, name string, def any) (any, error) {
	values, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	v, ok := values[name]
	if !ok {
		return def, nil
	}
	return v, nil
}

// Require is the strict accessor: it returns [ErrKeyNotFound] when name is
// absent instead of a default. Like Get, it never refreshes the TTL.
func (s *Session) Require(ctx context.Context, name string) (any, error) {
	values, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	v, ok := values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return v, nil
}

// Delete removes the named keys from the session. Absent names are skipped
// without error, but Delete always runs a full write cycle, so it refreshes
// the idle TTL even when nothing matched.
func (s *Session) Delete(ctx context.Context, names ...string) error {
	return s.change(ctx, func(values map[string]any) {
		for _, name := range names {
			delete(values, name)
		}
	})
}

// Contains reports whether name is present. No TTL refresh.
func (s *Session) Contains(ctx context.Context, name string) (bool, error) {
	values, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	_, ok := values[name]
	return ok, nil
}

// Keys returns the currently stored key names, sorted. No TTL refresh.
func (s *Session) Keys(ctx context.Context) ([]string, error) {
	values, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Destroy deletes the session record and clears the identifier cookie. The
// handle is spent afterwards; a follow-up request starts a fresh session.
func (s *Session) Destroy(ctx context.Context) error {
	if err := s.manager.store.Destroy(ctx, s.ID()); err != nil {
		s.manager.metrics.Inc(MetricStoreUnavailable)
		return err
	}
	s.carrier.Clear(SessionCookieName)
	s.manager.metrics.Inc(MetricDestroy)
	return nil
}

func (s *Session) load(ctx context.Context) (map[string]any, error) {
	start := time.Now()
	values, err := s.manager.store.Load(ctx, s.ID())
	s.manager.metrics.Observe(MetricStoreLatency, time.Since(start))
	if err != nil {
		s.countError(err)
		return nil, err
	}
	s.manager.metrics.Inc(MetricLoad)
	return values, nil
}

// change runs one full read-modify-write cycle: load the whole mapping,
// mutate in memory, re-encode and save with a fresh TTL.
func (s *Session) change(ctx context.Context, mutate func(map[string]any)) error {
	values, err := s.load(ctx)
	if err != nil {
		return err
	}

	mutate(values)

	start := time.Now()
	err = s.manager.store.Save(ctx, s.ID(), values)
	s.manager.metrics.Observe(MetricStoreLatency, time.Since(start))
	if err != nil {
		s.countError(err)
		return err
	}
	s.manager.metrics.Inc(MetricSave)
	return nil
}

func (s *Session) countError(err error) {
	switch {
	case errors.Is(err, ErrCorruptSession):
		s.manager.metrics.Inc(MetricCorruptSession)
	case errors.Is(err, ErrStoreUnavailable):
		s.manager.metrics.Inc(MetricStoreUnavailable)
	}
}
