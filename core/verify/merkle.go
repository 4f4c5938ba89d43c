package verify

import (
	"bytes"

	"github.com/transparency-dev/merkle"
	"github.com/transparency-dev/merkle/proof"
	"github.com/transparency-dev/merkle/rfc6962"
	"go.dedis.ch/veristore/core/types"
)

// merkleVerifier verifies the proofs with the RFC 6962 Merkle tree
// algorithms. The index of a log entry maps to a tree of size index+1, so the
// inclusion path is checked against the tree at the proof index and the
// consistency path against the growth from the prior trusted tree.
//
// - implements verify.Verifier
type merkleVerifier struct {
	hasher merkle.LogHasher
}

// NewMerkleVerifier creates a verifier using the RFC 6962 hashing strategy.
func NewMerkleVerifier() Verifier {
	return merkleVerifier{
		hasher: rfc6962.DefaultHasher,
	}
}

// Verify implements verify.Verifier. It accepts the proof only if (1) the
// item hashes to the leaf claimed by the proof, (2) the inclusion path
// recomputes to the claimed root, (3) the claimed root extends the prior
// trusted root through the consistency path and (4) the claimed index does
// not regress the trusted one.
func (v merkleVerifier) Verify(pr types.Proof, item types.Item, prior types.Root) (types.Root, error) {
	err := pr.Validate()
	if err != nil {
		return types.Root{}, NewVerificationError("malformed proof: %v", err)
	}

	leaf := v.hasher.HashLeaf(item.Digest())
	if !bytes.Equal(leaf, pr.Leaf) {
		return types.Root{}, NewVerificationError("item digest mismatch")
	}

	if prior.IsSet() && pr.At < prior.GetIndex() {
		return types.Root{}, NewVerificationError("root index %d regresses trusted index %d",
			pr.At, prior.GetIndex())
	}

	err = proof.VerifyInclusion(v.hasher, pr.Index, pr.At+1, pr.Leaf, pr.InclusionPath, pr.Root)
	if err != nil {
		return types.Root{}, NewVerificationError("inclusion mismatch: %v", err)
	}

	// An empty prior hash means the client bootstrapped on an empty log, in
	// which case there is no previous tree to be consistent with.
	if prior.IsSet() && len(prior.GetHash()) > 0 {
		err = proof.VerifyConsistency(v.hasher, prior.GetIndex()+1, pr.At+1,
			pr.ConsistencyPath, prior.GetHash(), pr.Root)
		if err != nil {
			return types.Root{}, NewVerificationError("consistency mismatch: %v", err)
		}
	}

	return types.NewRoot(pr.At, pr.Root), nil
}
