package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v3/util/key"
	"go.dedis.ch/veristore/core/types"
)

func TestSignRoot(t *testing.T) {
	kp := key.NewKeyPair(suite)

	root := types.NewRoot(4, []byte{0xaa, 0xbb})

	sig, err := SignRoot(root, kp.Private)
	require.NoError(t, err)

	pubkey, err := kp.Public.MarshalBinary()
	require.NoError(t, err)

	err = VerifyRootSignature(root, sig, pubkey)
	require.NoError(t, err)

	_, err = SignRoot(types.Root{}, kp.Private)
	require.EqualError(t, err, "failed to serialize root: root is not set")
}

func TestVerifyRootSignature_Rejections(t *testing.T) {
	kp := key.NewKeyPair(suite)

	root := types.NewRoot(4, []byte{0xaa, 0xbb})

	sig, err := SignRoot(root, kp.Private)
	require.NoError(t, err)

	pubkey, err := kp.Public.MarshalBinary()
	require.NoError(t, err)

	// A signature over a different root must not verify.
	err = VerifyRootSignature(types.NewRoot(5, []byte{0xaa, 0xbb}), sig, pubkey)
	require.Error(t, err)
	require.True(t, errors.As(err, &VerificationError{}))

	err = VerifyRootSignature(root, sig, []byte{0x01})
	require.Error(t, err)
	require.False(t, errors.As(err, &VerificationError{}))

	err = VerifyRootSignature(types.Root{}, sig, pubkey)
	require.EqualError(t, err, "failed to serialize root: root is not set")
}
