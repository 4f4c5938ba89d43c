// Package grpcclient implements the transport port of the client on top of a
// grpc connection.
//
// The credential returned by the login operation is attached transparently to
// every subsequent call as a bearer token, so the client core never sees it.
// The package also exposes the server-side registration of the service so
// that server binaries, and the in-process servers of the tests, can mount an
// implementation against the same contract.
//
// Documentation Last Review: 13.01.2021
//
package grpcclient

import (
	"context"
	"sync"

	"go.dedis.ch/veristore/client"
	"go.dedis.ch/veristore/core/types"
	"go.dedis.ch/veristore/internal/tracing"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

const (
	// serviceName is the grpc name of the store service.
	serviceName = "veristore.Store"

	// tokenHeader is the metadata key carrying the session credential.
	tokenHeader = "authorization"

	// tokenPrefix is prepended to the credential in the header.
	tokenPrefix = "Bearer "
)

// Client is the grpc implementation of the transport port of the verified
// client.
//
// - implements client.Transport
type Client struct {
	conn  *grpc.ClientConn
	mutex sync.RWMutex
	token string
}

type template struct {
	dialOpts []grpc.DialOption
	tracing  bool
}

// Option is the type of the options to open a connection.
type Option func(*template)

// WithTracing enables the reporting of the calls to the jaeger tracer of the
// target, configured from the environment.
func WithTracing() Option {
	return func(tmpl *template) {
		tmpl.tracing = true
	}
}

// WithDialOptions appends raw grpc dial options, for instance to provide
// transport credentials or a custom dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(tmpl *template) {
		tmpl.dialOpts = append(tmpl.dialOpts, opts...)
	}
}

// NewClient opens a connection to the server at the given target. The
// connection is not authenticated until a successful login.
func NewClient(target string, opts ...Option) (*Client, error) {
	tmpl := template{
		dialOpts: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
		},
	}

	for _, opt := range opts {
		opt(&tmpl)
	}

	if tmpl.tracing {
		interceptor, err := tracing.UnaryClientInterceptor(target)
		if err != nil {
			return nil, xerrors.Errorf("failed to enable tracing: %v", err)
		}

		tmpl.dialOpts = append(tmpl.dialOpts, grpc.WithUnaryInterceptor(interceptor))
	}

	conn, err := grpc.Dial(target, tmpl.dialOpts...)
	if err != nil {
		return nil, xerrors.Errorf("failed to dial: %v", err)
	}

	return &Client{conn: conn}, nil
}

// CurrentRoot implements client.Transport. It fetches the current root of
// the server log along with its optional signature.
func (c *Client) CurrentRoot(ctx context.Context) (types.Root, []byte, error) {
	resp := RootMsg{}

	err := c.invoke(ctx, "CurrentRoot", &EmptyMsg{}, &resp)
	if err != nil {
		return types.Root{}, nil, xerrors.Errorf("failed to call: %v", err)
	}

	return types.NewRoot(resp.Index, resp.Hash), resp.Signature, nil
}

// Get implements client.Transport. It reads the item of the key without any
// proof.
func (c *Client) Get(ctx context.Context, key []byte) (types.Item, error) {
	resp := ItemMsg{}

	err := c.invoke(ctx, "Get", &KeyMsg{Key: key}, &resp)
	if err != nil {
		return types.Item{}, xerrors.Errorf("failed to call: %v", err)
	}

	return types.NewItem(resp.Key, resp.Value, resp.Index), nil
}

// Set implements client.Transport. It writes the pair without any proof.
func (c *Client) Set(ctx context.Context, key, value []byte) error {
	err := c.invoke(ctx, "Set", &KVMsg{Key: key, Value: value}, &AckMsg{})
	if err != nil {
		return xerrors.Errorf("failed to call: %v", err)
	}

	return nil
}

// SetBatch implements client.Transport. It writes the ordered set of pairs
// in a single request.
func (c *Client) SetBatch(ctx context.Context, kvs types.KVSet) error {
	req := BatchMsg{KVs: make([]KVMsg, kvs.Len())}
	for i := range req.KVs {
		kv := kvs.GetKV(i)
		req.KVs[i] = KVMsg{Key: kv.GetKey(), Value: kv.GetValue()}
	}

	err := c.invoke(ctx, "SetBatch", &req, &AckMsg{})
	if err != nil {
		return xerrors.Errorf("failed to call: %v", err)
	}

	return nil
}

// SafeGet implements client.Transport. It reads the item of the key with the
// proof anchored at the given root index.
func (c *Client) SafeGet(ctx context.Context,
	key []byte, rootIndex uint64) (types.Item, types.Proof, error) {

	resp := SafeItemMsg{}

	err := c.invoke(ctx, "SafeGet", &SafeGetMsg{Key: key, RootIndex: rootIndex}, &resp)
	if err != nil {
		return types.Item{}, types.Proof{}, xerrors.Errorf("failed to call: %v", err)
	}

	item := types.NewItem(resp.Item.Key, resp.Item.Value, resp.Item.Index)

	return item, proofFromMsg(resp.Proof), nil
}

// SafeSet implements client.Transport. It writes the pair and returns the
// proof of the write anchored at the given root index.
func (c *Client) SafeSet(ctx context.Context,
	key, value []byte, rootIndex uint64) (types.Proof, error) {

	resp := ProofMsg{}

	req := SafeSetMsg{Key: key, Value: value, RootIndex: rootIndex}

	err := c.invoke(ctx, "SafeSet", &req, &resp)
	if err != nil {
		return types.Proof{}, xerrors.Errorf("failed to call: %v", err)
	}

	return proofFromMsg(resp), nil
}

// Login implements client.Transport. It authenticates the session and keeps
// the returned credential for the subsequent calls.
func (c *Client) Login(ctx context.Context, user, password string) error {
	resp := TokenMsg{}

	err := c.invoke(ctx, "Login", &LoginMsg{User: user, Password: password}, &resp)
	if err != nil {
		return xerrors.Errorf("failed to call: %v", err)
	}

	c.mutex.Lock()
	c.token = resp.Token
	c.mutex.Unlock()

	return nil
}

// Logout implements client.Transport. It closes the session and drops the
// credential.
func (c *Client) Logout(ctx context.Context) error {
	err := c.invoke(ctx, "Logout", &EmptyMsg{}, &AckMsg{})
	if err != nil {
		return xerrors.Errorf("failed to call: %v", err)
	}

	c.mutex.Lock()
	c.token = ""
	c.mutex.Unlock()

	return nil
}

// Close implements client.Transport. It closes the connection.
func (c *Client) Close() error {
	err := c.conn.Close()
	if err != nil {
		return xerrors.Errorf("failed to close connection: %v", err)
	}

	return nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}) error {
	c.mutex.RLock()
	token := c.token
	c.mutex.RUnlock()

	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, tokenHeader, tokenPrefix+token)
	}

	return c.conn.Invoke(ctx, "/"+serviceName+"/"+method, req, resp)
}

func proofFromMsg(msg ProofMsg) types.Proof {
	return types.Proof{
		Leaf:            msg.Leaf,
		Index:           msg.Index,
		At:              msg.At,
		Root:            msg.Root,
		InclusionPath:   msg.InclusionPath,
		ConsistencyPath: msg.ConsistencyPath,
	}
}

// Client must satisfy the transport port of the verified client.
var _ client.Transport = (*Client)(nil)
