// Package store provides Redis-backed persistence for session mappings.
//
// # Record protocol
//
// A session record is the msgpack encoding of the entire string-keyed
// mapping, stored under the raw session identifier with a fixed idle TTL.
// There are no partial updates: every change re-encodes and rewrites the
// whole mapping and resets the expiration window. Reads never extend a
// record's life.
//
// # Architecture boundaries
//
// This package owns the [Store] (Redis operations) and the record codec. It
// does NOT resolve identifiers, touch cookies, or interpret session values —
// those responsibilities belong to the root package's session handle.
//
// # What this package must NOT do
//
//   - Import goSession or cookie (no upward imports).
//   - Prefix or otherwise rewrite the identifier used as the record key.
//   - Recover from transport errors; they surface as [ErrStoreUnavailable].
package store
