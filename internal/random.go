package internal

import (
	"github.com/google/uuid"
)

// NewIdentifier mints an opaque session identifier: a random 128-bit UUID
// rendered as text. The identifier is created once per client and doubles as
// the store record key; nothing about it is guessable or sequential.
func NewIdentifier() string {
	return uuid.NewString()
}

// ValidIdentifier reports whether s parses as an identifier this package
// could have minted. The signed cookie already guarantees integrity; this
// catches values signed under an older scheme or by a co-tenant.
func ValidIdentifier(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
