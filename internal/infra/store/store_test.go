//go:build unit

package store_test

import (
	"log/slog"
	"testing"
	"time"

	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/infra/store"
	"bookswap-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newStore() *store.Store {
	return store.New(slog.Default())
}

func TestInsertAndGetSwap(t *testing.T) {
	s := newStore()
	sw, err := builder.NewSwapBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, s.InsertSwap(sw))
	assert.True(t, s.HasSwap(sw.ID()))
	assert.ErrorIs(t, s.InsertSwap(sw), store.ErrExists)

	got, err := s.GetSwap(sw.ID())
	require.NoError(t, err)
	assert.Equal(t, sw.ID(), got.ID)
	assert.Equal(t, swap.StatusRequested, got.Status)

	_, err = s.GetSwap(uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetSwapReturnsDetachedCopy(t *testing.T) {
	s := newStore()
	sw := builder.NewSwapBuilder().WithMessage("original").BuildSnapshotDomain()
	require.NoError(t, s.InsertSwap(sw))

	first, err := s.GetSwap(sw.ID())
	require.NoError(t, err)

	// Mutating the returned snapshot must not leak into the store.
	first.Message = "tampered"
	first.Status = swap.StatusCancelled

	second, err := s.GetSwap(sw.ID())
	require.NoError(t, err)
	assert.Equal(t, "original", second.Message)
	assert.Equal(t, swap.StatusRequested, second.Status)
}

func TestUpdateSwap(t *testing.T) {
	s := newStore()
	sw, err := builder.NewSwapBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, s.InsertSwap(sw))

	sn, err := s.UpdateSwap(sw.ID(), func(cur *swap.Swap) error {
		return cur.Accept(cur.ReceiverID(), now)
	})
	require.NoError(t, err)
	assert.Equal(t, swap.StatusAccepted, sn.Status)

	t.Run("fn error leaves the record untouched", func(t *testing.T) {
		_, uerr := s.UpdateSwap(sw.ID(), func(cur *swap.Swap) error {
			return cur.Accept(cur.ReceiverID(), now)
		})
		assert.ErrorIs(t, uerr, swap.ErrNotRequested)

		got, gerr := s.GetSwap(sw.ID())
		require.NoError(t, gerr)
		assert.Equal(t, swap.StatusAccepted, got.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, uerr := s.UpdateSwap(uuid.New(), func(*swap.Swap) error { return nil })
		assert.ErrorIs(t, uerr, store.ErrNotFound)
	})
}

func TestReplaceSwap(t *testing.T) {
	s := newStore()
	sw := builder.NewSwapBuilder().WithStatus(swap.StatusAccepted).BuildSnapshotDomain()
	require.NoError(t, s.InsertSwap(sw))

	before := sw.Snapshot()
	before.Status = swap.StatusRequested

	sn, err := s.ReplaceSwap(sw.ID(), func(*swap.Swap) (*swap.Swap, error) {
		return swap.FromSnapshot(before), nil
	})
	require.NoError(t, err)
	assert.Equal(t, swap.StatusRequested, sn.Status)

	got, err := s.GetSwap(sw.ID())
	require.NoError(t, err)
	assert.Equal(t, swap.StatusRequested, got.Status)
}

func TestExtensions(t *testing.T) {
	s := newStore()
	swapID := uuid.New()

	first, err := builder.NewExtensionBuilder().WithSwapID(swapID).BuildDomain()
	require.NoError(t, err)
	second, err := builder.NewExtensionBuilder().WithSwapID(swapID).BuildDomain()
	require.NoError(t, err)

	require.NoError(t, s.InsertExtension(first))
	require.NoError(t, s.InsertExtension(second))
	assert.ErrorIs(t, s.InsertExtension(first), store.ErrExists)
	assert.True(t, s.HasExtension(first.ID()))

	t.Run("get by id", func(t *testing.T) {
		sn, gerr := s.GetExtension(first.ID())
		require.NoError(t, gerr)
		assert.Equal(t, first.ID(), sn.ID)

		_, gerr = s.GetExtension(uuid.New())
		assert.ErrorIs(t, gerr, store.ErrNotFound)
	})

	t.Run("listed in arrival order", func(t *testing.T) {
		got := s.ExtensionsOf(swapID)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID(), got[0].ID)
		assert.Equal(t, second.ID(), got[1].ID)
	})

	t.Run("unrelated swap has none", func(t *testing.T) {
		assert.Empty(t, s.ExtensionsOf(uuid.New()))
	})
}

func TestWatch(t *testing.T) {
	s := newStore()
	ch, cancel := s.Watch(4)
	defer cancel()

	sw, err := builder.NewSwapBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, s.InsertSwap(sw))

	select {
	case c := <-ch:
		assert.Equal(t, sw.ID(), c.SwapID)
		assert.Equal(t, swap.StatusRequested, c.Status)
	case <-time.After(time.Second):
		t.Fatal("no change notification for insert")
	}

	_, err = s.UpdateSwap(sw.ID(), func(cur *swap.Swap) error {
		return cur.Accept(cur.ReceiverID(), now)
	})
	require.NoError(t, err)

	select {
	case c := <-ch:
		assert.Equal(t, swap.StatusAccepted, c.Status)
	case <-time.After(time.Second):
		t.Fatal("no change notification for update")
	}

	t.Run("cancel closes the stream", func(t *testing.T) {
		ch2, cancel2 := s.Watch(1)
		cancel2()
		_, open := <-ch2
		assert.False(t, open)
	})
}
