package goSession

import "net/http"

// Carrier is the request/response collaborator that transports the signed
// session identifier. A Carrier is bound to exactly one request/response
// pair, like the [Session] handle that wraps it.
//
// Implementations own signing and verification: Get must report a forged,
// stale, or otherwise unverifiable inbound value as absent rather than as an
// error, and Set must write a tamper-evident encoding of value. Cookie
// transport attributes (path, domain, secure, expiry) are the
// implementation's business; the session layer never sees them.
//
// The cookie subpackage provides the net/http implementation. Tests and
// non-HTTP callers can supply their own.
type Carrier interface {
	// Get returns the authenticated value of the named cookie, or ok=false
	// when the cookie is absent or fails verification.
	Get(name string) (value string, ok bool)
	// Set writes the named cookie with a signed encoding of value on the
	// outbound response.
	Set(name, value string)
	// Clear instructs the client to drop the named cookie.
	Clear(name string)
}

// CarrierFactory builds a [Carrier] bound to one request/response pair.
// [Manager.Request] uses it; non-HTTP callers can bypass the factory
// entirely with [Manager.Bind].
type CarrierFactory func(w http.ResponseWriter, r *http.Request) Carrier
