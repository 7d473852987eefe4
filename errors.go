package goSession

import (
	"errors"

	"github.com/MrEthical07/goSession/store"
)

var (
	// ErrStoreUnavailable is returned when the backing Redis instance is
	// unreachable or a call times out. Store errors are never retried here;
	// they propagate unchanged to the caller.
	ErrStoreUnavailable = store.ErrStoreUnavailable
	// ErrCorruptSession is returned when a stored record cannot be decoded
	// back into a session mapping.
	ErrCorruptSession = store.ErrCorruptSession
	// ErrKeyNotFound is returned by the strict accessor [Session.Require]
	// when the requested key is absent. The permissive accessors return a
	// default instead and never produce this error.
	ErrKeyNotFound = errors.New("key not found in session")
	// ErrBuilderUsed is returned when a [Builder] is built twice.
	ErrBuilderUsed = errors.New("builder already used")
)
