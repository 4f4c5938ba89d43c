// Package verify defines the proof verification capability of the client.
//
// A verifier recomputes the hash paths of a proof locally, anchored on the
// previously trusted root, and accepts the server's claim only if the
// recomputation matches. A single disagreement is fatal to the operation: the
// verifier never partially trusts a response.
//
// The package implements the verification with the RFC 6962 Merkle tree
// algorithms, and a signature check for the unauthenticated root fetched
// during the bootstrap.
//
// Documentation Last Review: 13.01.2021
//
package verify

import (
	"fmt"

	"go.dedis.ch/veristore/core/types"
)

// Verifier is the capability to verify a proof against the prior trusted
// root.
type Verifier interface {
	// Verify recomputes the digest claimed by the proof for the given item,
	// using the prior trusted root as the anchor of trust. It returns the
	// new trusted root on success, otherwise a VerificationError.
	Verify(proof types.Proof, item types.Item, prior types.Root) (types.Root, error)
}

// VerificationError indicates that a response of the server failed the local
// recomputation. It is distinct from a transport failure so that the caller
// can treat it as a potential tampering event instead of a transient
// condition.
type VerificationError struct {
	reason string
}

// NewVerificationError creates an error for a rejected proof.
func NewVerificationError(format string, args ...interface{}) VerificationError {
	return VerificationError{reason: fmt.Sprintf(format, args...)}
}

// Error implements error. It returns the reason of the rejection.
func (e VerificationError) Error() string {
	return "verification failed: " + e.reason
}
