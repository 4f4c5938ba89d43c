// Package roots defines the storage abstraction for the trusted root of a
// client. The store is the single serialization point of the client: the
// root can only be replaced by a root of a greater or equal index, so that a
// concurrent operation that lost the race is superseded without corrupting
// the monotonicity of the trusted state.
//
// The package provides an in-memory implementation and a persistent
// implementation on top of bbolt so that a client can resume from the last
// verified root after a restart.
//
// Documentation Last Review: 13.01.2021
//
package roots

import (
	"context"

	"go.dedis.ch/veristore/core/types"
)

// Fetcher is the function invoked to get the current root of the server when
// the store is empty. The value is accepted without verification as there is
// nothing to verify it against, which makes the bootstrap a
// trust-on-first-use decision.
type Fetcher func(ctx context.Context) (types.Root, error)

// Store is the interface to store and get the trusted root.
type Store interface {
	// Get returns the current trusted root, or false if the store has not
	// been populated yet.
	Get() (types.Root, bool)

	// Bootstrap returns the current trusted root, fetching and storing it
	// beforehand if the store is empty. The fetcher is invoked at most once
	// across concurrent callers.
	Bootstrap(ctx context.Context, fetch Fetcher) (types.Root, error)

	// CompareAndSet atomically replaces the trusted root if the candidate
	// index is greater than or equal to the current one. It returns whether
	// the replacement happened.
	CompareAndSet(root types.Root) bool
}
