package roots

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"go.dedis.ch/veristore"
	"go.dedis.ch/veristore/core/types"
	"go.etcd.io/bbolt"
	"golang.org/x/xerrors"
)

var (
	rootBucket = []byte("roots")
	currentKey = []byte("current")
)

// Disk is a store that writes the trusted root through to a bbolt database,
// so that a client restarted on the same host resumes the trust chain from
// its last verified root instead of trusting the server again on first use.
//
// - implements roots.Store
type Disk struct {
	sync.Mutex
	db     *bbolt.DB
	root   types.Root
	logger zerolog.Logger
}

// NewDisk opens the database at the given path and loads the trusted root
// stored by a previous run, if any.
func NewDisk(path string) (*Disk, error) {
	db, err := bbolt.Open(path, 0666, &bbolt.Options{})
	if err != nil {
		return nil, xerrors.Errorf("failed to open db: %v", err)
	}

	store := &Disk{
		db:     db,
		logger: veristore.Logger.With().Str("component", "roots").Logger(),
	}

	err = db.View(func(txn *bbolt.Tx) error {
		bucket := txn.Bucket(rootBucket)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(currentKey)
		if data == nil {
			return nil
		}

		root, err := types.UnmarshalRoot(data)
		if err != nil {
			return xerrors.Errorf("failed to decode root: %v", err)
		}

		store.root = root

		return nil
	})
	if err != nil {
		db.Close()
		return nil, xerrors.Errorf("failed to load root: %v", err)
	}

	return store, nil
}

// Get implements roots.Store. It returns the trusted root currently cached,
// which is the persisted one right after opening the store.
func (s *Disk) Get() (types.Root, bool) {
	s.Lock()
	defer s.Unlock()

	return s.root, s.root.IsSet()
}

// Bootstrap implements roots.Store. It returns the trusted root, fetching
// and persisting it beforehand if the store is empty.
func (s *Disk) Bootstrap(ctx context.Context, fetch Fetcher) (types.Root, error) {
	s.Lock()
	defer s.Unlock()

	if s.root.IsSet() {
		return s.root, nil
	}

	root, err := fetch(ctx)
	if err != nil {
		return types.Root{}, xerrors.Errorf("failed to fetch root: %w", err)
	}

	err = s.persist(root)
	if err != nil {
		return types.Root{}, xerrors.Errorf("failed to persist root: %v", err)
	}

	s.root = root

	return root, nil
}

// CompareAndSet implements roots.Store. It replaces the trusted root only if
// the candidate does not regress the current index. The root is persisted
// before the cache is updated so that the database never holds a root ahead
// of the one returned by Get.
func (s *Disk) CompareAndSet(root types.Root) bool {
	if !root.IsSet() {
		return false
	}

	s.Lock()
	defer s.Unlock()

	if s.root.IsSet() && root.GetIndex() < s.root.GetIndex() {
		return false
	}

	err := s.persist(root)
	if err != nil {
		s.logger.Err(err).Msg("failed to persist root")
		return false
	}

	s.root = root

	return true
}

// Close closes the underlying database. The store must not be used
// afterwards.
func (s *Disk) Close() error {
	return s.db.Close()
}

func (s *Disk) persist(root types.Root) error {
	data, err := root.MarshalBinary()
	if err != nil {
		return xerrors.Errorf("failed to encode root: %v", err)
	}

	return s.db.Update(func(txn *bbolt.Tx) error {
		bucket, err := txn.CreateBucketIfNotExists(rootBucket)
		if err != nil {
			return xerrors.Errorf("failed to create bucket: %v", err)
		}

		return bucket.Put(currentKey, data)
	})
}
