// Package cookie provides the net/http implementation of the session
// identifier carrier: signed, tamper-evident cookies with configurable
// transport attributes.
//
// # Architecture boundaries
//
// This package owns signing, verification, and cookie attributes. It does
// NOT know what the carried value means — the root package hands it an
// opaque identifier string.
//
// # What this package must NOT do
//
//   - Import goSession or store (no upward imports).
//   - Surface verification failures as errors; a bad signature reads as absent.
//   - Encrypt values; the identifier is authenticated, not confidential.
package cookie
