// Package notification is the pub/sub sibling of the session store. It
// shares the Redis instance with sessions but lives on its own reserved
// logical dataset, so notification state and session records can use the
// same identifier scheme without ever colliding.
//
// Payloads use the same msgpack codec as session records, so any value that
// round-trips through a session round-trips through a notification.
//
// # What this package must NOT do
//
//   - Import goSession or store (siblings, not dependents).
//   - Share a Redis client with the session store; dataset selection happens
//     at client construction and this package trusts its client's selection.
package notification
