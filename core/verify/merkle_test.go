package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/transparency-dev/merkle/rfc6962"
	"go.dedis.ch/veristore/core/types"
)

// The tests build the first three states of an authenticated log by hand with
// the RFC 6962 primitives:
//
//	size 1: root1 = leaf(item0)
//	size 2: root2 = node(leaf(item0), leaf(item1))
//	size 3: root3 = node(root2, leaf(item2))
type chain struct {
	items  []types.Item
	leaves [][]byte
	root1  []byte
	root2  []byte
	root3  []byte
}

func newChain() chain {
	hasher := rfc6962.DefaultHasher

	items := []types.Item{
		types.NewItem([]byte("genesis"), []byte{}, 0),
		types.NewItem([]byte("a"), []byte("1"), 1),
		types.NewItem([]byte("b"), []byte("2"), 2),
	}

	leaves := make([][]byte, 3)
	for i, item := range items {
		leaves[i] = hasher.HashLeaf(item.Digest())
	}

	root2 := hasher.HashChildren(leaves[0], leaves[1])

	return chain{
		items:  items,
		leaves: leaves,
		root1:  leaves[0],
		root2:  root2,
		root3:  hasher.HashChildren(root2, leaves[2]),
	}
}

func TestMerkleVerifier_Verify(t *testing.T) {
	c := newChain()
	verifier := NewMerkleVerifier()

	prior := types.NewRoot(0, c.root1)

	pr := types.Proof{
		Leaf:            c.leaves[1],
		Index:           1,
		At:              1,
		Root:            c.root2,
		InclusionPath:   [][]byte{c.leaves[0]},
		ConsistencyPath: [][]byte{c.leaves[1]},
	}

	root, err := verifier.Verify(pr, c.items[1], prior)
	require.NoError(t, err)
	require.Equal(t, uint64(1), root.GetIndex())
	require.Equal(t, c.root2, root.GetHash())
}

func TestMerkleVerifier_Verify_Growth(t *testing.T) {
	c := newChain()
	verifier := NewMerkleVerifier()

	prior := types.NewRoot(1, c.root2)

	pr := types.Proof{
		Leaf:            c.leaves[2],
		Index:           2,
		At:              2,
		Root:            c.root3,
		InclusionPath:   [][]byte{c.root2},
		ConsistencyPath: [][]byte{c.leaves[2]},
	}

	root, err := verifier.Verify(pr, c.items[2], prior)
	require.NoError(t, err)
	require.Equal(t, uint64(2), root.GetIndex())
	require.Equal(t, c.root3, root.GetHash())
}

func TestMerkleVerifier_Verify_UnchangedState(t *testing.T) {
	c := newChain()
	verifier := NewMerkleVerifier()

	// Reading an older item at an unchanged server state must verify with an
	// empty consistency path and return the same root.
	prior := types.NewRoot(2, c.root3)

	pr := types.Proof{
		Leaf:          c.leaves[1],
		Index:         1,
		At:            2,
		Root:          c.root3,
		InclusionPath: [][]byte{c.leaves[0], c.leaves[2]},
	}

	root, err := verifier.Verify(pr, c.items[1], prior)
	require.NoError(t, err)
	require.True(t, prior.Equal(root))
}

func TestMerkleVerifier_Verify_EmptyBootstrap(t *testing.T) {
	c := newChain()
	verifier := NewMerkleVerifier()

	// A client bootstrapped on an empty log has no prior tree: only the
	// inclusion path is checked.
	prior := types.NewRoot(0, nil)

	pr := types.Proof{
		Leaf:          c.leaves[0],
		Index:         0,
		At:            0,
		Root:          c.root1,
		InclusionPath: [][]byte{},
	}

	root, err := verifier.Verify(pr, c.items[0], prior)
	require.NoError(t, err)
	require.Equal(t, c.root1, root.GetHash())
}

func TestMerkleVerifier_Verify_Tampered(t *testing.T) {
	c := newChain()
	verifier := NewMerkleVerifier()

	prior := types.NewRoot(0, c.root1)

	pr := types.Proof{
		Leaf:            c.leaves[1],
		Index:           1,
		At:              1,
		Root:            c.root2,
		InclusionPath:   [][]byte{c.leaves[0]},
		ConsistencyPath: [][]byte{c.leaves[1]},
	}

	// Corrupt a single byte of the claimed root.
	tampered := pr
	tampered.Root = append([]byte{}, pr.Root...)
	tampered.Root[0] ^= 1

	_, err := verifier.Verify(tampered, c.items[1], prior)
	require.Error(t, err)
	require.True(t, errors.As(err, &VerificationError{}))

	// Corrupt the value of the item.
	_, err = verifier.Verify(pr, types.NewItem([]byte("a"), []byte("evil"), 1), prior)
	require.EqualError(t, err, "verification failed: item digest mismatch")

	// Corrupt the consistency path so the claimed state is disconnected from
	// the trusted one.
	tampered = pr
	tampered.ConsistencyPath = [][]byte{c.leaves[0]}

	_, err = verifier.Verify(tampered, c.items[1], prior)
	require.Error(t, err)
	require.True(t, errors.As(err, &VerificationError{}))
}

func TestMerkleVerifier_Verify_Regression(t *testing.T) {
	c := newChain()
	verifier := NewMerkleVerifier()

	pr := types.Proof{
		Leaf:          c.leaves[1],
		Index:         1,
		At:            1,
		Root:          c.root2,
		InclusionPath: [][]byte{c.leaves[0]},
	}

	_, err := verifier.Verify(pr, c.items[1], types.NewRoot(5, c.root3))
	require.EqualError(t, err, "verification failed: root index 1 regresses trusted index 5")
}

func TestMerkleVerifier_Verify_Malformed(t *testing.T) {
	verifier := NewMerkleVerifier()

	_, err := verifier.Verify(types.Proof{}, types.Item{}, types.Root{})
	require.EqualError(t, err, "verification failed: malformed proof: proof has no leaf digest")
	require.True(t, errors.As(err, &VerificationError{}))
}
