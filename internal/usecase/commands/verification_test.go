//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase"
	"bookswap-engine/internal/usecase/commands"
	"bookswap-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (f *commandFixture) verificationCommands() commands.VerificationCommands {
	return commands.NewVerificationCommands(f.machine, f.gateway, slog.Default())
}

func TestIssueToken(t *testing.T) {
	ctx := context.Background()

	t.Run("mints and attaches a handover code", func(t *testing.T) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder().WithStatus(swap.StatusAccepted)
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)
		sn := b.Snapshot()

		f.gateway.EXPECT().IssueToken(gomock.Any(), sn.ID).
			Return(usecase.TokenGrant{Token: "abc123", IssuedAt: now}, nil)

		view, err := f.verificationCommands().IssueToken(ctx, sn.InitiatorID, sn.ID)
		require.NoError(t, err)
		assert.Equal(t, sn.ID, view.SwapID)
		assert.Equal(t, "abc123", view.Token)
		assert.Equal(t, now, view.IssuedAt)

		got, err := f.machine.SnapshotOf(sn.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Token)
		assert.Equal(t, "abc123", got.Token.Value)
		assert.Equal(t, sn.InitiatorID, got.Token.IssuedBy)
	})

	t.Run("only participants may issue", func(t *testing.T) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder().WithStatus(swap.StatusAccepted)
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)

		_, err = f.verificationCommands().IssueToken(ctx, uuid.New(), b.Snapshot().ID)
		assert.ErrorIs(t, err, swap.ErrNotParticipant)
		assert.True(t, errs.IsKind(err, errs.KindAuthorization))
	})

	t.Run("only accepted swaps carry tokens", func(t *testing.T) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder()
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)
		sn := b.Snapshot()

		_, err = f.verificationCommands().IssueToken(ctx, sn.InitiatorID, sn.ID)
		assert.ErrorIs(t, err, swap.ErrNotAccepted)
		assert.True(t, errs.IsKind(err, errs.KindConflict))
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	issued := func(t *testing.T) (*commandFixture, swap.Snapshot) {
		f := newCommandFixture(t)
		b := builder.NewSwapBuilder().WithStatus(swap.StatusAccepted)
		_, err := f.machine.InsertRemote(b.RemoteSnapshot())
		require.NoError(t, err)
		sn := b.Snapshot()

		_, err = f.machine.AttachToken(sn.ID, sn.InitiatorID, usecase.TokenGrant{Token: "abc123", IssuedAt: now})
		require.NoError(t, err)
		return f, sn
	}

	t.Run("redeems the code and confirms", func(t *testing.T) {
		f, sn := issued(t)

		confirmed := builder.NewSwapBuilder().WithID(sn.ID).WithStatus(swap.StatusConfirmed).RemoteSnapshot()
		f.gateway.EXPECT().ConfirmSwap(gomock.Any(), sn.ID, "abc123").Return(confirmed, nil)

		got, err := f.verificationCommands().Verify(ctx, sn.ReceiverID, sn.ID, "abc123")
		require.NoError(t, err)
		assert.Equal(t, swap.StatusConfirmed, got.Status)
	})

	t.Run("used code cannot be redeemed twice", func(t *testing.T) {
		f, sn := issued(t)

		confirmed := builder.NewSwapBuilder().WithID(sn.ID).WithStatus(swap.StatusConfirmed).RemoteSnapshot()
		f.gateway.EXPECT().ConfirmSwap(gomock.Any(), sn.ID, "abc123").Return(confirmed, nil)

		_, err := f.verificationCommands().Verify(ctx, sn.ReceiverID, sn.ID, "abc123")
		require.NoError(t, err)

		// the swap is confirmed now, but re-presenting the consumed code is
		// still a verification failure rather than a state conflict
		_, err = f.verificationCommands().Verify(ctx, sn.ReceiverID, sn.ID, "abc123")
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindVerification))
	})

	t.Run("wrong code never reaches the gateway", func(t *testing.T) {
		f, sn := issued(t)
		_, err := f.verificationCommands().Verify(ctx, sn.ReceiverID, sn.ID, "wrong")
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindVerification))
	})

	t.Run("issuer cannot verify own code", func(t *testing.T) {
		f, sn := issued(t)
		_, err := f.verificationCommands().Verify(ctx, sn.InitiatorID, sn.ID, "abc123")
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindAuthorization))
	})

	t.Run("remote failure restores the unconsumed token", func(t *testing.T) {
		f, sn := issued(t)

		f.gateway.EXPECT().ConfirmSwap(gomock.Any(), sn.ID, "abc123").
			Return(builder.NewSwapBuilder().RemoteSnapshot(), errs.WithKind(errs.New("gateway down"), errs.KindNetwork, "gateway down"))

		_, err := f.verificationCommands().Verify(ctx, sn.ReceiverID, sn.ID, "abc123")
		require.Error(t, err)

		got, gerr := f.machine.SnapshotOf(sn.ID)
		require.NoError(t, gerr)
		assert.Equal(t, swap.StatusAccepted, got.Status)
		require.NotNil(t, got.Token)
		assert.False(t, got.Token.Consumed())

		// the code can be presented again once the cause clears
		confirmed := builder.NewSwapBuilder().WithID(sn.ID).WithStatus(swap.StatusConfirmed).RemoteSnapshot()
		f.gateway.EXPECT().ConfirmSwap(gomock.Any(), sn.ID, "abc123").Return(confirmed, nil)

		retry, rerr := f.verificationCommands().Verify(ctx, sn.ReceiverID, sn.ID, "abc123")
		require.NoError(t, rerr)
		assert.Equal(t, swap.StatusConfirmed, retry.Status)
	})
}
