package roots

import (
	"context"
	"sync"

	"go.dedis.ch/veristore/core/types"
	"golang.org/x/xerrors"
)

// InMemory is a thread-safe store that keeps the trusted root in memory, so
// the trust chain restarts from scratch with every client instance.
//
// - implements roots.Store
type InMemory struct {
	sync.Mutex
	root types.Root
}

// NewInMemory creates a new empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// Get implements roots.Store. It returns the current trusted root if it is
// set.
func (s *InMemory) Get() (types.Root, bool) {
	s.Lock()
	defer s.Unlock()

	return s.root, s.root.IsSet()
}

// Bootstrap implements roots.Store. It returns the trusted root, invoking
// the fetcher beforehand if the store is empty. The lock is held across the
// fetch so that concurrent callers wait for the outcome of a single fetch
// instead of racing their own.
func (s *InMemory) Bootstrap(ctx context.Context, fetch Fetcher) (types.Root, error) {
	s.Lock()
	defer s.Unlock()

	if s.root.IsSet() {
		return s.root, nil
	}

	root, err := fetch(ctx)
	if err != nil {
		return types.Root{}, xerrors.Errorf("failed to fetch root: %w", err)
	}

	s.root = root

	return root, nil
}

// CompareAndSet implements roots.Store. It replaces the trusted root only if
// the candidate does not regress the current index.
func (s *InMemory) CompareAndSet(root types.Root) bool {
	if !root.IsSet() {
		return false
	}

	s.Lock()
	defer s.Unlock()

	if s.root.IsSet() && root.GetIndex() < s.root.GetIndex() {
		return false
	}

	s.root = root

	return true
}
