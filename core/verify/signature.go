package verify

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/sign/schnorr"
	"go.dedis.ch/kyber/v3/suites"
	"go.dedis.ch/veristore/core/types"
	"golang.org/x/xerrors"
)

var suite = suites.MustFind("Ed25519")

// Suite returns the cryptographic suite used to sign and verify the roots.
func Suite() suites.Suite {
	return suite
}

// SignRoot signs the serialized root with the Schnorr algorithm over the
// Ed25519 curve. It is used by server implementations to authenticate the
// root returned to a bootstrapping client.
func SignRoot(root types.Root, secret kyber.Scalar) ([]byte, error) {
	msg, err := root.MarshalBinary()
	if err != nil {
		return nil, xerrors.Errorf("failed to serialize root: %v", err)
	}

	sig, err := schnorr.Sign(suite, secret, msg)
	if err != nil {
		return nil, xerrors.Errorf("failed to sign: %v", err)
	}

	return sig, nil
}

// VerifyRootSignature checks that the signature of the root has been issued
// with the secret key matching the public key. It hardens the
// trust-on-first-use fetch when the client knows the signing key of the
// server beforehand.
func VerifyRootSignature(root types.Root, sig []byte, pubkey []byte) error {
	point := suite.Point()

	err := point.UnmarshalBinary(pubkey)
	if err != nil {
		return xerrors.Errorf("couldn't unmarshal point: %v", err)
	}

	msg, err := root.MarshalBinary()
	if err != nil {
		return xerrors.Errorf("failed to serialize root: %v", err)
	}

	err = schnorr.Verify(suite, point, msg, sig)
	if err != nil {
		return NewVerificationError("root signature: %v", err)
	}

	return nil
}
