package commands

import (
	"context"
	"log/slog"

	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/usecase"
	"bookswap-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type VerificationCommands interface {
	// IssueToken asks the remote service to mint a single-use handover code
	// for the swap and attaches it to the local record. Re-issuing replaces
	// any earlier unconsumed code.
	IssueToken(ctx context.Context, actorID, swapID uuid.UUID) (queries.TokenView, error)

	// Verify redeems the code presented by the counterpart at the meetup,
	// moving the swap to confirmed.
	Verify(ctx context.Context, actorID, swapID uuid.UUID, presented string) (swap.Snapshot, error)
}

type verificationCommandsImpl struct {
	machine *usecase.StateMachine
	gateway usecase.Gateway
	logger  *slog.Logger
}

func NewVerificationCommands(
	machine *usecase.StateMachine,
	gateway usecase.Gateway,
	logger *slog.Logger,
) VerificationCommands {
	return &verificationCommandsImpl{machine: machine, gateway: gateway, logger: logger}
}

func (c *verificationCommandsImpl) IssueToken(ctx context.Context, actorID, swapID uuid.UUID) (queries.TokenView, error) {
	sn, err := c.machine.SnapshotOf(swapID)
	if err != nil {
		return queries.TokenView{}, classify(err)
	}
	if actorID != sn.InitiatorID && actorID != sn.ReceiverID {
		return queries.TokenView{}, classify(swap.ErrNotParticipant)
	}
	if sn.Status != swap.StatusAccepted {
		return queries.TokenView{}, classify(swap.ErrNotAccepted)
	}

	grant, err := c.gateway.IssueToken(ctx, swapID)
	if err != nil {
		return queries.TokenView{}, err
	}
	if _, err := c.machine.AttachToken(swapID, actorID, grant); err != nil {
		return queries.TokenView{}, classify(err)
	}

	return queries.TokenView{
		SwapID:   swapID,
		Token:    grant.Token,
		IssuedAt: grant.IssuedAt,
	}, nil
}

// Verify applies the confirm transition locally first, consuming the token
// under the record lock, then reports the redemption to the remote service.
// A remote failure rolls the record back so the token can be presented
// again once the cause clears.
func (c *verificationCommandsImpl) Verify(ctx context.Context, actorID, swapID uuid.UUID, presented string) (swap.Snapshot, error) {
	before, err := c.machine.SnapshotOf(swapID)
	if err != nil {
		return swap.Snapshot{}, classify(err)
	}

	applied, err := c.machine.Verify(swapID, actorID, presented)
	if err != nil {
		return swap.Snapshot{}, classify(err)
	}

	remoteSn, err := c.gateway.ConfirmSwap(ctx, swapID, presented)
	if err != nil {
		if rerr := c.machine.Restore(swapID, before, applied.Status); rerr != nil {
			c.logger.Error("failed to roll back verification",
				"swap_id", swapID, "error", rerr)
		}
		return swap.Snapshot{}, err
	}

	if committed, _, merr := c.machine.ApplyRemote(remoteSn); merr == nil {
		return committed, nil
	}
	return applied, nil
}
