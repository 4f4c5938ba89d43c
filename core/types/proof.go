package types

import "golang.org/x/xerrors"

// Proof is the evidence returned by the server that an item exists in the log
// and that the claimed new state is an extension of a previously agreed one.
// The hash paths are opaque to the client logic and are consumed by the
// verifier only.
type Proof struct {
	// Leaf is the digest the server claims for the proven item.
	Leaf []byte

	// Index is the position of the proven item in the log.
	Index uint64

	// At is the index of the candidate new trusted state.
	At uint64

	// Root is the digest of the candidate new trusted state.
	Root []byte

	// InclusionPath is the hash path from the leaf up to the root at the
	// index claimed by the proof.
	InclusionPath [][]byte

	// ConsistencyPath is the hash path that links the previously trusted
	// root to the new one.
	ConsistencyPath [][]byte
}

// Validate returns an error when the proof is structurally malformed, so
// that an invalid message is rejected before any recomputation.
func (p Proof) Validate() error {
	if len(p.Leaf) == 0 {
		return xerrors.New("proof has no leaf digest")
	}

	if len(p.Root) == 0 {
		return xerrors.New("proof has no root digest")
	}

	if p.Index > p.At {
		return xerrors.Errorf("proof index %d is above its root index %d", p.Index, p.At)
	}

	return nil
}
