package roots

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/veristore/core/types"
	"golang.org/x/xerrors"
)

func TestInMemory_Get(t *testing.T) {
	store := NewInMemory()

	_, ok := store.Get()
	require.False(t, ok)

	require.True(t, store.CompareAndSet(types.NewRoot(0, []byte{0xaa})))

	root, ok := store.Get()
	require.True(t, ok)
	require.Equal(t, uint64(0), root.GetIndex())
}

func TestInMemory_Bootstrap(t *testing.T) {
	store := NewInMemory()

	calls := int32(0)
	fetch := func(context.Context) (types.Root, error) {
		atomic.AddInt32(&calls, 1)
		return types.NewRoot(2, []byte{0xbb}), nil
	}

	root, err := store.Bootstrap(context.Background(), fetch)
	require.NoError(t, err)
	require.Equal(t, uint64(2), root.GetIndex())

	// A populated store must not fetch again.
	root, err = store.Bootstrap(context.Background(), fetch)
	require.NoError(t, err)
	require.Equal(t, uint64(2), root.GetIndex())
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInMemory_Bootstrap_Failure(t *testing.T) {
	store := NewInMemory()

	fetch := func(context.Context) (types.Root, error) {
		return types.Root{}, xerrors.New("oops")
	}

	_, err := store.Bootstrap(context.Background(), fetch)
	require.EqualError(t, err, "failed to fetch root: oops")

	_, ok := store.Get()
	require.False(t, ok)
}

func TestInMemory_Bootstrap_Once(t *testing.T) {
	store := NewInMemory()

	calls := int32(0)
	fetch := func(context.Context) (types.Root, error) {
		atomic.AddInt32(&calls, 1)
		return types.NewRoot(0, []byte{0xcc}), nil
	}

	wg := sync.WaitGroup{}
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()

			root, err := store.Bootstrap(context.Background(), fetch)
			require.NoError(t, err)
			require.True(t, root.IsSet())
		}()
	}

	wg.Wait()

	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInMemory_CompareAndSet(t *testing.T) {
	store := NewInMemory()

	require.False(t, store.CompareAndSet(types.Root{}))
	require.True(t, store.CompareAndSet(types.NewRoot(5, []byte{0xaa})))

	// Same index is accepted, lower index is rejected.
	require.True(t, store.CompareAndSet(types.NewRoot(5, []byte{0xaa})))
	require.False(t, store.CompareAndSet(types.NewRoot(4, []byte{0xbb})))
	require.True(t, store.CompareAndSet(types.NewRoot(6, []byte{0xcc})))

	root, ok := store.Get()
	require.True(t, ok)
	require.Equal(t, uint64(6), root.GetIndex())
}

func TestInMemory_CompareAndSet_Race(t *testing.T) {
	store := NewInMemory()

	wg := sync.WaitGroup{}
	wg.Add(20)
	for i := 0; i < 20; i++ {
		go func(index uint64) {
			defer wg.Done()

			store.CompareAndSet(types.NewRoot(index, []byte{byte(index)}))
		}(uint64(i))
	}

	wg.Wait()

	root, ok := store.Get()
	require.True(t, ok)
	require.Equal(t, uint64(19), root.GetIndex())
}
