// Package client implements the verified client of the store.
//
// A verified operation resolves the trusted root, sends the request with the
// index of that root, then verifies the proof of the response before
// accepting the result and advancing the trusted root. The client composes
// three collaborators defined elsewhere: the root store
// (go.dedis.ch/veristore/core/roots), the proof verifier
// (go.dedis.ch/veristore/core/verify) and a transport implementing the port
// defined in this package.
//
// Plain operations are also provided for callers that do not need tamper
// evidence. They bypass the trust machinery entirely and never advance the
// trusted root.
//
// Documentation Last Review: 13.01.2021
//
package client

import (
	"context"

	"go.dedis.ch/veristore/core/roots"
	"go.dedis.ch/veristore/core/types"
	"go.dedis.ch/veristore/core/verify"
)

// Transport is the port to the RPC channel of the server. The implementation
// owns the connection, the wire encoding and the credential attachment; the
// client core only consumes the abstract operations.
type Transport interface {
	// CurrentRoot returns the current root of the server log, with an
	// optional signature over it. The root is unauthenticated at this layer.
	CurrentRoot(ctx context.Context) (types.Root, []byte, error)

	// Get reads the item for the key without any proof.
	Get(ctx context.Context, key []byte) (types.Item, error)

	// Set writes the key/value pair without any proof.
	Set(ctx context.Context, key, value []byte) error

	// SetBatch writes the ordered set of pairs without any proof.
	SetBatch(ctx context.Context, kvs types.KVSet) error

	// SafeGet reads the item for the key along with the proof anchored at
	// the provided root index.
	SafeGet(ctx context.Context, key []byte, rootIndex uint64) (types.Item, types.Proof, error)

	// SafeSet writes the key/value pair and returns the proof of the write
	// anchored at the provided root index.
	SafeSet(ctx context.Context, key, value []byte, rootIndex uint64) (types.Proof, error)

	// Login authenticates the session. Subsequent calls carry the returned
	// credential transparently.
	Login(ctx context.Context, user, password string) error

	// Logout drops the session credential.
	Logout(ctx context.Context) error

	// Close closes the connection to the server.
	Close() error
}

// Config is the configuration of a client. Only the transport is mandatory.
type Config struct {
	// Transport is the channel to the server.
	Transport Transport

	// Roots is the trusted root storage. It defaults to an in-memory store
	// scoped to the client instance.
	Roots roots.Store

	// Verifier is the proof verification capability. It defaults to the
	// RFC 6962 Merkle verifier.
	Verifier verify.Verifier

	// RootKey is the optional public key of the server. When set, the root
	// fetched during the bootstrap must carry a valid signature.
	RootKey []byte
}
