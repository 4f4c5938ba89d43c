package client

import (
	"context"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"go.dedis.ch/veristore"
	"go.dedis.ch/veristore/core/roots"
	"go.dedis.ch/veristore/core/types"
	"go.dedis.ch/veristore/core/verify"
	"golang.org/x/xerrors"
)

// Client is the orchestrator of the verified operations.
type Client struct {
	transport Transport
	roots     roots.Store
	verifier  verify.Verifier
	rootKey   []byte
	logger    zerolog.Logger
}

// NewClient creates a client from the configuration. It returns an error if
// the transport is missing, and fills the optional collaborators with their
// defaults.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Transport == nil {
		return nil, xerrors.New("missing transport")
	}

	store := cfg.Roots
	if store == nil {
		store = roots.NewInMemory()
	}

	verifier := cfg.Verifier
	if verifier == nil {
		verifier = verify.NewMerkleVerifier()
	}

	c := &Client{
		transport: cfg.Transport,
		roots:     store,
		verifier:  verifier,
		rootKey:   append([]byte{}, cfg.RootKey...),
		logger:    veristore.Logger.With().Str("component", "client").Logger(),
	}

	return c, nil
}

// CurrentRoot returns the trusted root of the client, fetching and storing
// the current root of the server beforehand if the client does not hold one
// yet.
func (c *Client) CurrentRoot(ctx context.Context) (types.Root, error) {
	return c.roots.Bootstrap(ctx, c.fetchRoot)
}

// SafeGet reads the value of the key and accepts it only after the proof of
// the response has been verified against the trusted root. The trusted root
// is advanced to the verified state of the response.
func (c *Client) SafeGet(ctx context.Context, key []byte) ([]byte, error) {
	logger := c.logger.With().Stringer("op", xid.New()).Logger()

	root, err := c.CurrentRoot(ctx)
	if err != nil {
		return nil, xerrors.Errorf("failed to resolve root: %w", err)
	}

	item, proof, err := c.transport.SafeGet(ctx, key, root.GetIndex())
	if err != nil {
		return nil, xerrors.Errorf("failed to send request: %w", err)
	}

	err = c.seal(logger, proof, item, root, "safe_get")
	if err != nil {
		return nil, err
	}

	return item.GetValue(), nil
}

// SafeSet writes the key/value pair and returns only after the server has
// proven that the write extends the trusted state. The item is rebuilt
// locally from the index asserted by the proof, so the server cannot prove a
// different pair than the one submitted.
func (c *Client) SafeSet(ctx context.Context, key, value []byte) error {
	logger := c.logger.With().Stringer("op", xid.New()).Logger()

	root, err := c.CurrentRoot(ctx)
	if err != nil {
		return xerrors.Errorf("failed to resolve root: %w", err)
	}

	proof, err := c.transport.SafeSet(ctx, key, value, root.GetIndex())
	if err != nil {
		return xerrors.Errorf("failed to send request: %w", err)
	}

	item := types.NewItem(key, value, proof.Index)

	return c.seal(logger, proof, item, root, "safe_set")
}

// Get reads the value of the key without tamper evidence. The trusted root
// is not involved.
func (c *Client) Get(ctx context.Context, key []byte) ([]byte, error) {
	item, err := c.transport.Get(ctx, key)
	if err != nil {
		return nil, xerrors.Errorf("failed to send request: %w", err)
	}

	return item.GetValue(), nil
}

// Set writes the key/value pair without tamper evidence. The trusted root is
// not involved.
func (c *Client) Set(ctx context.Context, key, value []byte) error {
	err := c.transport.Set(ctx, key, value)
	if err != nil {
		return xerrors.Errorf("failed to send request: %w", err)
	}

	return nil
}

// SetBatch writes the ordered set of key/value pairs in a single request,
// without tamper evidence.
func (c *Client) SetBatch(ctx context.Context, kvs types.KVSet) error {
	err := c.transport.SetBatch(ctx, kvs)
	if err != nil {
		return xerrors.Errorf("failed to send request: %w", err)
	}

	return nil
}

// Login authenticates the session against the server.
func (c *Client) Login(ctx context.Context, user, password string) error {
	err := c.transport.Login(ctx, user, password)
	if err != nil {
		return xerrors.Errorf("failed to login: %w", err)
	}

	return nil
}

// Logout drops the session credential.
func (c *Client) Logout(ctx context.Context) error {
	err := c.transport.Logout(ctx)
	if err != nil {
		return xerrors.Errorf("failed to logout: %w", err)
	}

	return nil
}

// Close closes the transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// seal verifies the proof of a response against the prior trusted root and
// advances the store on success. A rejected proof leaves the store untouched
// and is returned as-is so the caller can recognize the integrity failure.
func (c *Client) seal(logger zerolog.Logger, proof types.Proof, item types.Item,
	prior types.Root, op string) error {

	newRoot, err := c.verifier.Verify(proof, item, prior)
	if err != nil {
		promFailures.Inc()
		logger.Warn().Err(err).Stringer("prior", prior).Msg("proof rejected")

		return err
	}

	if c.roots.CompareAndSet(newRoot) {
		promRootIndex.Set(float64(newRoot.GetIndex()))
	} else {
		// A concurrent operation advanced the root further. The result of
		// this operation is verified nonetheless, only the cached root
		// ordering matters.
		logger.Debug().Stringer("root", newRoot).Msg("root superseded")
	}

	promVerified.WithLabelValues(op).Inc()

	return nil
}

func (c *Client) fetchRoot(ctx context.Context) (types.Root, error) {
	root, sig, err := c.transport.CurrentRoot(ctx)
	if err != nil {
		return types.Root{}, xerrors.Errorf("failed to send request: %w", err)
	}

	if len(c.rootKey) > 0 {
		err = verify.VerifyRootSignature(root, sig, c.rootKey)
		if err != nil {
			return types.Root{}, err
		}
	}

	return root, nil
}
