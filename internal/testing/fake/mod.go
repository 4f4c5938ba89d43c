// Package fake provides fake implementations for interfaces commonly used in
// the repository.
// The implementations offer configuration to return errors when it is needed
// by the unit test and it is also possible to record the call of functions of
// an object in some cases.
package fake

import (
	"context"
	"sync"

	"go.dedis.ch/veristore/core/types"
	"go.dedis.ch/veristore/core/verify"
	"golang.org/x/xerrors"
)

var fakeErr = xerrors.New("fake error")

// GetError returns the specific error returned by the fakes of the package.
func GetError() error {
	return fakeErr
}

// Call is a tool to keep track of a function calls.
type Call struct {
	sync.Mutex
	calls [][]interface{}
}

// NewCall returns a new empty call monitor.
func NewCall() *Call {
	return &Call{}
}

// Get returns the nth call ith parameter.
func (c *Call) Get(n, i int) interface{} {
	c.Lock()
	defer c.Unlock()

	return c.calls[n][i]
}

// Len returns the number of calls.
func (c *Call) Len() int {
	c.Lock()
	defer c.Unlock()

	return len(c.calls)
}

// Add adds a call to the list.
func (c *Call) Add(args ...interface{}) {
	c.Lock()
	defer c.Unlock()

	c.calls = append(c.calls, args)
}

// Transport is a fake implementation of the transport port that returns the
// configured responses.
//
// - implements client.Transport
type Transport struct {
	Calls *Call
	Root  types.Root
	Sig   []byte
	Item  types.Item
	Proof types.Proof
	Err   error

	// SafeGetFn and SafeSetFn overwrite the scripted responses of the
	// verified operations when set.
	SafeGetFn func(key []byte, rootIndex uint64) (types.Item, types.Proof, error)
	SafeSetFn func(key, value []byte, rootIndex uint64) (types.Proof, error)
}

// NewTransport returns a new empty fake transport.
func NewTransport() *Transport {
	return &Transport{
		Calls: NewCall(),
	}
}

// NewBadTransport returns a fake transport where every call fails.
func NewBadTransport() *Transport {
	transport := NewTransport()
	transport.Err = fakeErr

	return transport
}

// CurrentRoot implements client.Transport.
func (t *Transport) CurrentRoot(ctx context.Context) (types.Root, []byte, error) {
	t.Calls.Add("currentRoot")

	return t.Root, t.Sig, t.Err
}

// Get implements client.Transport.
func (t *Transport) Get(ctx context.Context, key []byte) (types.Item, error) {
	t.Calls.Add("get", key)

	return t.Item, t.Err
}

// Set implements client.Transport.
func (t *Transport) Set(ctx context.Context, key, value []byte) error {
	t.Calls.Add("set", key, value)

	return t.Err
}

// SetBatch implements client.Transport.
func (t *Transport) SetBatch(ctx context.Context, kvs types.KVSet) error {
	t.Calls.Add("setBatch", kvs)

	return t.Err
}

// SafeGet implements client.Transport.
func (t *Transport) SafeGet(ctx context.Context,
	key []byte, rootIndex uint64) (types.Item, types.Proof, error) {

	t.Calls.Add("safeGet", key, rootIndex)

	if t.SafeGetFn != nil {
		return t.SafeGetFn(key, rootIndex)
	}

	return t.Item, t.Proof, t.Err
}

// SafeSet implements client.Transport.
func (t *Transport) SafeSet(ctx context.Context,
	key, value []byte, rootIndex uint64) (types.Proof, error) {

	t.Calls.Add("safeSet", key, value, rootIndex)

	if t.SafeSetFn != nil {
		return t.SafeSetFn(key, value, rootIndex)
	}

	return t.Proof, t.Err
}

// Login implements client.Transport.
func (t *Transport) Login(ctx context.Context, user, password string) error {
	t.Calls.Add("login", user, password)

	return t.Err
}

// Logout implements client.Transport.
func (t *Transport) Logout(ctx context.Context) error {
	t.Calls.Add("logout")

	return t.Err
}

// Close implements client.Transport.
func (t *Transport) Close() error {
	t.Calls.Add("close")

	return t.Err
}

// Verifier is a fake implementation that accepts any proof, deriving the new
// root from the claims of the proof, unless an error is set.
//
// - implements verify.Verifier
type Verifier struct {
	Calls *Call
	Err   error
}

// NewVerifier returns a fake verifier that accepts everything.
func NewVerifier() *Verifier {
	return &Verifier{
		Calls: NewCall(),
	}
}

// NewBadVerifier returns a fake verifier that rejects everything.
func NewBadVerifier() *Verifier {
	verifier := NewVerifier()
	verifier.Err = verify.NewVerificationError("fake")

	return verifier
}

// Verify implements verify.Verifier.
func (v *Verifier) Verify(proof types.Proof,
	item types.Item, prior types.Root) (types.Root, error) {

	v.Calls.Add("verify", proof, item, prior)

	if v.Err != nil {
		return types.Root{}, v.Err
	}

	return types.NewRoot(proof.At, proof.Root), nil
}
