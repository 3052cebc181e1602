package commands

import (
	"context"
	"errors"
	"log/slog"

	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/infra/store"
	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase"
	"bookswap-engine/internal/usecase/events"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type ProposeSwapInput struct {
	InitiatorBookID uuid.UUID
	ReceiverID      uuid.UUID
	ReceiverBookID  *uuid.UUID
	Message         string
}

type SwapCommands interface {
	Propose(ctx context.Context, actorID uuid.UUID, in ProposeSwapInput) (swap.Snapshot, error)
	Accept(ctx context.Context, actorID, swapID uuid.UUID) (swap.Snapshot, error)
	Cancel(ctx context.Context, actorID, swapID uuid.UUID) (swap.Snapshot, error)
	Rate(ctx context.Context, actorID, swapID uuid.UUID, value int) (swap.Snapshot, error)
}

type swapCommandsImpl struct {
	machine *usecase.StateMachine
	gateway usecase.Gateway
	catalog usecase.BookCatalog
	mut     *mutator
	logger  *slog.Logger
}

func NewSwapCommands(
	machine *usecase.StateMachine,
	gateway usecase.Gateway,
	catalog usecase.BookCatalog,
	logger *slog.Logger,
) SwapCommands {
	return &swapCommandsImpl{
		machine: machine,
		gateway: gateway,
		catalog: catalog,
		mut:     &mutator{machine: machine, logger: logger},
		logger:  logger,
	}
}

// Propose registers a new swap with the remote service and mirrors the
// result locally. There is no optimistic record for a propose: the swap id
// is minted remotely, so the record only exists once the call succeeds.
func (c *swapCommandsImpl) Propose(ctx context.Context, actorID uuid.UUID, in ProposeSwapInput) (swap.Snapshot, error) {
	if actorID == in.ReceiverID {
		return swap.Snapshot{}, classify(swap.ErrSelfSwap)
	}
	if in.InitiatorBookID == uuid.Nil {
		return swap.Snapshot{}, classify(swap.ErrMissingBook)
	}
	if _, err := swap.NewMessage(in.Message); err != nil {
		return swap.Snapshot{}, classify(err)
	}

	owns, err := c.catalog.OwnsAvailableBook(ctx, actorID, in.InitiatorBookID)
	if err != nil {
		return swap.Snapshot{}, err
	}
	if !owns {
		return swap.Snapshot{}, classify(errs.Mark(errs.New(in.InitiatorBookID.String()), ErrBookUnavailable))
	}

	remoteSn, err := c.gateway.ProposeSwap(ctx, usecase.ProposeRemote{
		InitiatorBookID: in.InitiatorBookID,
		ReceiverID:      in.ReceiverID,
		ReceiverBookID:  in.ReceiverBookID,
		Message:         in.Message,
		IdempotencyKey:  ulid.Make().String(),
	})
	if err != nil {
		return swap.Snapshot{}, err
	}

	sn, err := c.machine.InsertRemote(remoteSn)
	if errors.Is(err, store.ErrExists) {
		// A push event beat the response; merge instead of insert.
		sn, _, err = c.machine.ApplyRemote(remoteSn)
	}
	if err != nil {
		return swap.Snapshot{}, err
	}
	return sn, nil
}

func (c *swapCommandsImpl) Accept(ctx context.Context, actorID, swapID uuid.UUID) (swap.Snapshot, error) {
	return c.mut.run(ctx, swapID,
		func() (swap.Snapshot, error) { return c.machine.Accept(swapID, actorID) },
		func(ctx context.Context) (events.SwapSnapshot, error) { return c.gateway.AcceptSwap(ctx, swapID) },
	)
}

// Cancel is idempotent: cancelling an already cancelled swap succeeds
// without touching the remote service.
func (c *swapCommandsImpl) Cancel(ctx context.Context, actorID, swapID uuid.UUID) (swap.Snapshot, error) {
	before, err := c.machine.SnapshotOf(swapID)
	if err != nil {
		return swap.Snapshot{}, classify(err)
	}

	applied, changed, err := c.machine.Cancel(swapID, actorID)
	if err != nil {
		return swap.Snapshot{}, classify(err)
	}
	if !changed {
		return applied, nil
	}

	remoteSn, err := c.gateway.CancelSwap(ctx, swapID)
	if err != nil {
		if rerr := c.machine.Restore(swapID, before, applied.Status); rerr != nil {
			c.logger.Error("failed to roll back cancel", "swap_id", swapID, "error", rerr)
		}
		return swap.Snapshot{}, err
	}

	if committed, _, merr := c.machine.ApplyRemote(remoteSn); merr == nil {
		return committed, nil
	}
	return applied, nil
}

func (c *swapCommandsImpl) Rate(ctx context.Context, actorID, swapID uuid.UUID, value int) (swap.Snapshot, error) {
	return c.mut.run(ctx, swapID,
		func() (swap.Snapshot, error) { return c.machine.Rate(swapID, actorID, value) },
		func(ctx context.Context) (events.SwapSnapshot, error) { return c.gateway.RateSwap(ctx, swapID, value) },
	)
}
