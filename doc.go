// Package goSession is a Redis-backed, cookie-keyed session store for HTTP
// handlers.
//
// # Session lifecycle
//
// Each client is associated with an opaque session identifier delivered in a
// tamper-evident cookie. The identifier maps to a string-keyed value mapping
// persisted in Redis with a sliding 24 hour idle window: every mutating
// operation rewrites the whole mapping and resets the expiration, while
// reads never extend a session's life. Records are created lazily — a
// client that only reads gets an identifier cookie but no Redis record.
//
// # Architecture boundaries
//
// The root package owns the [Manager] (process-wide: configuration, store
// client, cookie signing) and the per-request [Session] handle. Persistence
// lives in the store subpackage, the net/http cookie implementation in the
// cookie subpackage, and the sibling pub/sub subsystem in notification.
//
// # Concurrency
//
// A [Session] handle serves exactly one in-flight request and must not be
// shared. Two concurrent requests presenting the same identifier race their
// read-modify-write cycles: the later save wins and the earlier mutation is
// lost (last-writer-wins over the whole mapping). There is no locking or
// compare-and-swap; see the [Session] docs before relying on concurrent
// writes to one session.
package goSession
