package goSession

import (
	"context"
	"net/http"

	"github.com/MrEthical07/goSession/store"
	"github.com/redis/go-redis/v9"
)

// Manager is the process-wide session manager: it owns the store client,
// the cookie carrier factory, and the metrics registry, and mints
// per-request [Session] handles. Construct one with [New] + [Builder.Build]
// and share it across all requests; the handles it mints are request-scoped.
type Manager struct {
	config  Config
	store   *store.Store
	carrier CarrierFactory
	metrics *Metrics

	redis      redis.UniversalClient
	ownsClient bool
}

// Request returns a [Session] handle bound to the given request/response
// pair via the configured carrier factory.
func (m *Manager) Request(w http.ResponseWriter, r *http.Request) *Session {
	return m.Bind(m.carrier(w, r))
}

// Bind returns a [Session] handle bound to an explicit [Carrier]. Intended
// for non-HTTP transports and for tests with a fake carrier.
func (m *Manager) Bind(c Carrier) *Session {
	return &Session{manager: m, carrier: c}
}

// Store exposes the underlying store client, e.g. for health checks or
// administrative record deletion by identifier.
func (m *Manager) Store() *store.Store {
	return m.store
}

// MetricsSnapshot returns a point-in-time copy of the operation counters.
func (m *Manager) MetricsSnapshot() MetricsSnapshot {
	return m.metrics.Snapshot()
}

// Ping reports whether the backing store is reachable.
func (m *Manager) Ping(ctx context.Context) error {
	_, err := m.store.Ping(ctx)
	return err
}

// Close releases the Redis client if the Manager dialed it itself. Injected
// clients stay open; their lifecycle belongs to the caller.
func (m *Manager) Close() error {
	if !m.ownsClient || m.redis == nil {
		return nil
	}
	return m.redis.Close()
}
