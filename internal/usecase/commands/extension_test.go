//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"bookswap-engine/internal/domain/extension"
	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase/commands"
	"bookswap-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (f *commandFixture) extensionCommands() commands.ExtensionCommands {
	return commands.NewExtensionCommands(f.machine, f.store, f.gateway, f.clock, slog.Default())
}

func TestRequestExtension(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the remote request", func(t *testing.T) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder().WithStatus(swap.StatusAccepted)
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)
		sn := b.Snapshot()

		remote := builder.NewExtensionBuilder().
			WithSwapID(sn.ID).
			WithRequester(sn.InitiatorID).
			WithDays(3).
			RemoteSnapshot()
		f.gateway.EXPECT().RequestExtension(gomock.Any(), sn.ID, 3, "running late").Return(remote, nil)

		got, err := f.extensionCommands().Request(ctx, sn.InitiatorID, sn.ID, 3, "running late")
		require.NoError(t, err)
		assert.Equal(t, extension.StatusPending, got.Status)
		assert.True(t, f.store.HasExtension(got.ID))
	})

	t.Run("only participants may request", func(t *testing.T) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder().WithStatus(swap.StatusAccepted)
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)

		_, err = f.extensionCommands().Request(ctx, uuid.New(), b.Snapshot().ID, 3, "running late")
		assert.ErrorIs(t, err, swap.ErrNotParticipant)
	})

	t.Run("closed swap", func(t *testing.T) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder().WithStatus(swap.StatusCancelled)
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)
		sn := b.Snapshot()

		_, err = f.extensionCommands().Request(ctx, sn.InitiatorID, sn.ID, 3, "running late")
		assert.ErrorIs(t, err, commands.ErrSwapClosed)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	})

	t.Run("not yet accepted", func(t *testing.T) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder()
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)
		sn := b.Snapshot()

		_, err = f.extensionCommands().Request(ctx, sn.InitiatorID, sn.ID, 3, "running late")
		assert.ErrorIs(t, err, swap.ErrNotAccepted)
	})

	t.Run("bad input never reaches the gateway", func(t *testing.T) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder().WithStatus(swap.StatusAccepted)
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)
		sn := b.Snapshot()

		_, err = f.extensionCommands().Request(ctx, sn.InitiatorID, sn.ID, 0, "running late")
		assert.ErrorIs(t, err, extension.ErrInvalidDays)

		_, err = f.extensionCommands().Request(ctx, sn.InitiatorID, sn.ID, 3, "   ")
		assert.ErrorIs(t, err, extension.ErrEmptyReason)
	})
}

func TestRespondExtension(t *testing.T) {
	ctx := context.Background()
	meetupAt := now.Add(48 * time.Hour)

	// pending seeds a confirmed swap with a scheduled meetup and a pending
	// extension requested by the initiator.
	pending := func(t *testing.T) (*commandFixture, swap.Snapshot, *builder.ExtensionBuilder) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder().
			WithStatus(swap.StatusConfirmed).
			WithMeetup("Central Library", meetupAt)
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)
		sn := b.Snapshot()

		eb := builder.NewExtensionBuilder().
			WithSwapID(sn.ID).
			WithRequester(sn.InitiatorID).
			WithDays(3)
		require.NoError(t, f.store.InsertExtension(eb.BuildSnapshotDomain()))
		return f, sn, eb
	}

	t.Run("approval resolves and shifts the meetup", func(t *testing.T) {
		f, sn, eb := pending(t)
		ext := eb.Snapshot()
		notes := "fine"

		remote := eb.WithResolution(extension.StatusApproved, &notes).RemoteSnapshot()
		f.gateway.EXPECT().ResolveExtension(gomock.Any(), ext.ID, "approved", &notes).Return(remote, nil)

		got, err := f.extensionCommands().Respond(ctx, sn.ReceiverID, ext.ID, "approved", &notes)
		require.NoError(t, err)
		assert.Equal(t, extension.StatusApproved, got.Status)
		require.NotNil(t, got.AdminNotes)
		assert.Equal(t, notes, *got.AdminNotes)

		parent, err := f.machine.SnapshotOf(sn.ID)
		require.NoError(t, err)
		require.NotNil(t, parent.MeetupTime)
		assert.Equal(t, meetupAt.AddDate(0, 0, 3), *parent.MeetupTime)
	})

	t.Run("denial resolves without shifting", func(t *testing.T) {
		f, sn, eb := pending(t)
		ext := eb.Snapshot()

		remote := eb.WithResolution(extension.StatusDenied, nil).RemoteSnapshot()
		f.gateway.EXPECT().ResolveExtension(gomock.Any(), ext.ID, "denied", nil).Return(remote, nil)

		got, err := f.extensionCommands().Respond(ctx, sn.ReceiverID, ext.ID, "denied", nil)
		require.NoError(t, err)
		assert.Equal(t, extension.StatusDenied, got.Status)

		parent, err := f.machine.SnapshotOf(sn.ID)
		require.NoError(t, err)
		assert.Equal(t, meetupAt, *parent.MeetupTime)
	})

	t.Run("unknown extension", func(t *testing.T) {
		f := newCommandFixture(t)
		_, err := f.extensionCommands().Respond(ctx, uuid.New(), uuid.New(), "approved", nil)
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("invalid decision", func(t *testing.T) {
		f, sn, eb := pending(t)
		_, err := f.extensionCommands().Respond(ctx, sn.ReceiverID, eb.Snapshot().ID, "maybe", nil)
		assert.ErrorIs(t, err, extension.ErrInvalidDecision)
	})

	t.Run("requester cannot resolve own request", func(t *testing.T) {
		f, sn, eb := pending(t)
		_, err := f.extensionCommands().Respond(ctx, sn.InitiatorID, eb.Snapshot().ID, "approved", nil)
		assert.ErrorIs(t, err, extension.ErrOwnRequest)
	})

	t.Run("outsider cannot resolve", func(t *testing.T) {
		f, _, eb := pending(t)
		_, err := f.extensionCommands().Respond(ctx, uuid.New(), eb.Snapshot().ID, "approved", nil)
		assert.ErrorIs(t, err, swap.ErrNotParticipant)
	})

	t.Run("a decision is final", func(t *testing.T) {
		f, sn, eb := pending(t)
		ext := eb.Snapshot()

		remote := eb.WithResolution(extension.StatusDenied, nil).RemoteSnapshot()
		f.gateway.EXPECT().ResolveExtension(gomock.Any(), ext.ID, "denied", nil).Return(remote, nil)

		_, err := f.extensionCommands().Respond(ctx, sn.ReceiverID, ext.ID, "denied", nil)
		require.NoError(t, err)

		_, err = f.extensionCommands().Respond(ctx, sn.ReceiverID, ext.ID, "approved", nil)
		assert.ErrorIs(t, err, extension.ErrAlreadyResolved)
	})
}
