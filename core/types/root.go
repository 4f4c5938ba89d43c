// Package types implements the data types of the verified client: the trusted
// root, the items returned by the server, the proofs that accompany them and
// the ordered key/value sets used for batched writes.
//
// Documentation Last Review: 13.01.2021
//
package types

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/xerrors"
)

// rootIndexLen is the size in bytes of the index prefix of a serialized root.
const rootIndexLen = 8

// Root is an immutable snapshot of the highest verified position of the
// server's authenticated log. It is the only state the client trusts without
// a per-call proof.
type Root struct {
	index uint64
	hash  []byte
	set   bool
}

// NewRoot creates a root from the index and the hash of a log position. The
// hash is copied so that the caller cannot mutate the snapshot afterwards.
func NewRoot(index uint64, hash []byte) Root {
	return Root{
		index: index,
		hash:  append([]byte{}, hash...),
		set:   true,
	}
}

// GetIndex returns the index of the latest verified entry.
func (r Root) GetIndex() uint64 {
	return r.index
}

// GetHash returns a copy of the digest at the root index.
func (r Root) GetHash() []byte {
	return append([]byte{}, r.hash...)
}

// IsSet returns true if the root has been populated, in other words if it is
// different from the zero value.
func (r Root) IsSet() bool {
	return r.set
}

// Equal returns true when both roots point to the same position with the same
// digest.
func (r Root) Equal(other Root) bool {
	return r.set == other.set &&
		r.index == other.index &&
		bytes.Equal(r.hash, other.hash)
}

// MarshalBinary serializes the root as the 8-byte big endian index followed
// by the digest.
func (r Root) MarshalBinary() ([]byte, error) {
	if !r.set {
		return nil, xerrors.New("root is not set")
	}

	buffer := make([]byte, rootIndexLen+len(r.hash))
	binary.BigEndian.PutUint64(buffer, r.index)
	copy(buffer[rootIndexLen:], r.hash)

	return buffer, nil
}

// UnmarshalRoot deserializes a root previously serialized with
// MarshalBinary.
func UnmarshalRoot(data []byte) (Root, error) {
	if len(data) < rootIndexLen {
		return Root{}, xerrors.Errorf("invalid root length %d", len(data))
	}

	return NewRoot(binary.BigEndian.Uint64(data), data[rootIndexLen:]), nil
}

// String implements fmt.Stringer. It returns a short representation of the
// root.
func (r Root) String() string {
	if !r.set {
		return "root[unset]"
	}

	return fmt.Sprintf("root[%d]{%#x}", r.index, r.hash)
}
