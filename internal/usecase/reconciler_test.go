//go:build unit

package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"bookswap-engine/internal/domain/extension"
	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/infra/store"
	"bookswap-engine/internal/pkg/clock"
	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase"
	"bookswap-engine/internal/usecase/events"
	"bookswap-engine/tests/common/builder"
	usecasemock "bookswap-engine/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerFixture struct {
	reconciler *usecase.Reconciler
	machine    *usecase.StateMachine
	store      *store.Store
	gateway    *usecasemock.MockGateway
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := store.New(slog.Default())
	clk := clock.NewMockClock(now)
	machine := usecase.NewStateMachine(st, clk, slog.Default())
	gateway := usecasemock.NewMockGateway(ctrl)
	return &reconcilerFixture{
		reconciler: usecase.NewReconciler(machine, st, gateway, clk, slog.Default()),
		machine:    machine,
		store:      st,
		gateway:    gateway,
	}
}

func TestApplySwapEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("advances a known record", func(t *testing.T) {
		f := newReconcilerFixture(t)
		b := builder.NewSwapBuilder()
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)

		accepted := b.RemoteSnapshot()
		accepted.Status = swap.StatusAccepted.String()
		require.NoError(t, f.reconciler.Apply(ctx, events.SwapEvent{
			Type: events.TypeSwapAccepted, Swap: accepted,
		}))

		sn, err := f.machine.SnapshotOf(b.Snapshot().ID)
		require.NoError(t, err)
		assert.Equal(t, swap.StatusAccepted, sn.Status)
	})

	t.Run("duplicate delivery is idempotent", func(t *testing.T) {
		f := newReconcilerFixture(t)
		b := builder.NewSwapBuilder()
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)

		ev := events.SwapEvent{Type: events.TypeSwapAccepted, Swap: b.RemoteSnapshot()}
		ev.Swap.Status = swap.StatusAccepted.String()

		require.NoError(t, f.reconciler.Apply(ctx, ev))
		first, err := f.machine.SnapshotOf(b.Snapshot().ID)
		require.NoError(t, err)

		require.NoError(t, f.reconciler.Apply(ctx, ev))
		second, err := f.machine.SnapshotOf(b.Snapshot().ID)
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("out of order events settle on the furthest state", func(t *testing.T) {
		f := newReconcilerFixture(t)
		b := builder.NewSwapBuilder()
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)

		confirmed := b.RemoteSnapshot()
		confirmed.Status = swap.StatusConfirmed.String()
		accepted := b.RemoteSnapshot()
		accepted.Status = swap.StatusAccepted.String()

		require.NoError(t, f.reconciler.Apply(ctx, events.SwapEvent{Type: events.TypeSwapConfirmed, Swap: confirmed}))
		require.NoError(t, f.reconciler.Apply(ctx, events.SwapEvent{Type: events.TypeSwapAccepted, Swap: accepted}))

		sn, err := f.machine.SnapshotOf(b.Snapshot().ID)
		require.NoError(t, err)
		assert.Equal(t, swap.StatusConfirmed, sn.Status)
	})

	t.Run("unknown swap is fetched once and materialized", func(t *testing.T) {
		f := newReconcilerFixture(t)
		b := builder.NewSwapBuilder()
		id := b.Snapshot().ID

		f.gateway.EXPECT().FetchSwap(gomock.Any(), id).Return(b.RemoteSnapshot(), nil).Times(1)

		accepted := b.RemoteSnapshot()
		accepted.Status = swap.StatusAccepted.String()
		require.NoError(t, f.reconciler.Apply(ctx, events.SwapEvent{Type: events.TypeSwapAccepted, Swap: accepted}))

		sn, err := f.machine.SnapshotOf(id)
		require.NoError(t, err)
		assert.Equal(t, swap.StatusAccepted, sn.Status)
	})

	t.Run("fetch failure falls back to the event snapshot", func(t *testing.T) {
		f := newReconcilerFixture(t)
		b := builder.NewSwapBuilder()
		id := b.Snapshot().ID

		f.gateway.EXPECT().FetchSwap(gomock.Any(), id).
			Return(events.SwapSnapshot{}, errs.New("gateway down"))

		accepted := b.RemoteSnapshot()
		accepted.Status = swap.StatusAccepted.String()
		require.NoError(t, f.reconciler.Apply(ctx, events.SwapEvent{Type: events.TypeSwapAccepted, Swap: accepted}))

		sn, err := f.machine.SnapshotOf(id)
		require.NoError(t, err)
		assert.Equal(t, swap.StatusAccepted, sn.Status)
	})
}

func TestApplyExtensionEvent(t *testing.T) {
	ctx := context.Background()
	meetupAt := now.Add(48 * time.Hour)

	// parent returns a fixture holding a confirmed swap with a scheduled
	// meetup, so approval side effects are observable.
	parent := func(t *testing.T) (*reconcilerFixture, *builder.SwapBuilder) {
		f := newReconcilerFixture(t)
		b := builder.NewSwapBuilder().
			WithStatus(swap.StatusConfirmed).
			WithMeetup("Central Library", meetupAt)
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)
		return f, b
	}

	t.Run("requested event stores the extension", func(t *testing.T) {
		f, b := parent(t)
		eb := builder.NewExtensionBuilder().WithSwapID(b.Snapshot().ID)

		ev := events.ExtensionEvent{Type: events.TypeExtensionRequested, Extension: eb.RemoteSnapshot()}
		require.NoError(t, f.reconciler.Apply(ctx, ev))

		sn, err := f.store.GetExtension(eb.Snapshot().ID)
		require.NoError(t, err)
		assert.Equal(t, extension.StatusPending, sn.Status)

		// redelivery is a no-op
		require.NoError(t, f.reconciler.Apply(ctx, ev))
		assert.Len(t, f.store.ExtensionsOf(b.Snapshot().ID), 1)
	})

	t.Run("approval resolves and shifts the meetup", func(t *testing.T) {
		f, b := parent(t)
		eb := builder.NewExtensionBuilder().WithSwapID(b.Snapshot().ID).WithDays(3)

		require.NoError(t, f.reconciler.Apply(ctx, events.ExtensionEvent{
			Type: events.TypeExtensionRequested, Extension: eb.RemoteSnapshot(),
		}))

		notes := "ok"
		resolved := eb.WithResolution(extension.StatusApproved, &notes).RemoteSnapshot()
		require.NoError(t, f.reconciler.Apply(ctx, events.ExtensionEvent{
			Type: events.TypeExtensionResolved, Extension: resolved,
		}))

		esn, err := f.store.GetExtension(eb.Snapshot().ID)
		require.NoError(t, err)
		assert.Equal(t, extension.StatusApproved, esn.Status)

		ssn, err := f.machine.SnapshotOf(b.Snapshot().ID)
		require.NoError(t, err)
		require.NotNil(t, ssn.MeetupTime)
		assert.Equal(t, meetupAt.AddDate(0, 0, 3), *ssn.MeetupTime)
	})

	t.Run("denial resolves without shifting", func(t *testing.T) {
		f, b := parent(t)
		eb := builder.NewExtensionBuilder().WithSwapID(b.Snapshot().ID)

		require.NoError(t, f.reconciler.Apply(ctx, events.ExtensionEvent{
			Type: events.TypeExtensionRequested, Extension: eb.RemoteSnapshot(),
		}))
		require.NoError(t, f.reconciler.Apply(ctx, events.ExtensionEvent{
			Type:      events.TypeExtensionResolved,
			Extension: eb.WithResolution(extension.StatusDenied, nil).RemoteSnapshot(),
		}))

		ssn, err := f.machine.SnapshotOf(b.Snapshot().ID)
		require.NoError(t, err)
		require.NotNil(t, ssn.MeetupTime)
		assert.Equal(t, meetupAt, *ssn.MeetupTime)
	})

	t.Run("resolution before the request still lands", func(t *testing.T) {
		f, b := parent(t)
		eb := builder.NewExtensionBuilder().WithSwapID(b.Snapshot().ID).WithDays(2)
		resolved := eb.WithResolution(extension.StatusApproved, nil).RemoteSnapshot()

		require.NoError(t, f.reconciler.Apply(ctx, events.ExtensionEvent{
			Type: events.TypeExtensionResolved, Extension: resolved,
		}))

		esn, err := f.store.GetExtension(eb.Snapshot().ID)
		require.NoError(t, err)
		assert.Equal(t, extension.StatusApproved, esn.Status)

		ssn, err := f.machine.SnapshotOf(b.Snapshot().ID)
		require.NoError(t, err)
		assert.Equal(t, meetupAt.AddDate(0, 0, 2), *ssn.MeetupTime)
	})

	t.Run("resolved redelivery shifts only once", func(t *testing.T) {
		f, b := parent(t)
		eb := builder.NewExtensionBuilder().WithSwapID(b.Snapshot().ID).WithDays(5)

		require.NoError(t, f.reconciler.Apply(ctx, events.ExtensionEvent{
			Type: events.TypeExtensionRequested, Extension: eb.RemoteSnapshot(),
		}))

		resolved := eb.WithResolution(extension.StatusApproved, nil).RemoteSnapshot()
		ev := events.ExtensionEvent{Type: events.TypeExtensionResolved, Extension: resolved}
		require.NoError(t, f.reconciler.Apply(ctx, ev))
		require.NoError(t, f.reconciler.Apply(ctx, ev))

		ssn, err := f.machine.SnapshotOf(b.Snapshot().ID)
		require.NoError(t, err)
		assert.Equal(t, meetupAt.AddDate(0, 0, 5), *ssn.MeetupTime)
	})
}

type bogusEvent struct{}

func (bogusEvent) EventType() events.Type { return events.Type("bogus") }
func (bogusEvent) AggregateID() uuid.UUID { return uuid.Nil }

func TestApplyUnknownEvent(t *testing.T) {
	f := newReconcilerFixture(t)
	err := f.reconciler.Apply(context.Background(), bogusEvent{})
	assert.ErrorIs(t, err, usecase.ErrUnknownEvent)
}
