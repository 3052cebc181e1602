package commands

import (
	"context"
	"errors"
	"log/slog"

	"bookswap-engine/internal/domain/extension"
	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/infra/store"
	"bookswap-engine/internal/pkg/clock"
	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase"

	"github.com/google/uuid"
)

var ErrSwapClosed = errs.New("swap is closed, no extension possible")

type ExtensionCommands interface {
	Request(ctx context.Context, actorID, swapID uuid.UUID, days int, reason string) (extension.Snapshot, error)
	Respond(ctx context.Context, actorID, extensionID uuid.UUID, decision string, adminNotes *string) (extension.Snapshot, error)
}

type extensionCommandsImpl struct {
	machine *usecase.StateMachine
	store   *store.Store
	gateway usecase.Gateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewExtensionCommands(
	machine *usecase.StateMachine,
	st *store.Store,
	gateway usecase.Gateway,
	clk clock.Clock,
	logger *slog.Logger,
) ExtensionCommands {
	return &extensionCommandsImpl{
		machine: machine,
		store:   st,
		gateway: gateway,
		clock:   clk,
		logger:  logger,
	}
}

// Request asks the remote service to extend the meetup window. Extensions
// are never applied optimistically; the deadline only moves once the
// counterpart approves.
func (c *extensionCommandsImpl) Request(ctx context.Context, actorID, swapID uuid.UUID, days int, reason string) (extension.Snapshot, error) {
	sn, err := c.machine.SnapshotOf(swapID)
	if err != nil {
		return extension.Snapshot{}, classify(err)
	}
	if actorID != sn.InitiatorID && actorID != sn.ReceiverID {
		return extension.Snapshot{}, classify(swap.ErrNotParticipant)
	}
	if sn.Status.IsTerminal() {
		return extension.Snapshot{}, errs.WithKind(
			errs.Mark(errs.New(sn.Status.String()), ErrSwapClosed),
			errs.KindValidation, "swap is closed, no extension possible")
	}
	if sn.Status != swap.StatusAccepted && sn.Status != swap.StatusConfirmed {
		return extension.Snapshot{}, classify(swap.ErrNotAccepted)
	}

	// Run the same validation the remote service applies so obviously bad
	// input never leaves the process.
	if _, err := extension.NewRequest(swapID, actorID, days, reason, c.clock.Now()); err != nil {
		return extension.Snapshot{}, classify(err)
	}

	remoteSn, err := c.gateway.RequestExtension(ctx, swapID, days, reason)
	if err != nil {
		return extension.Snapshot{}, err
	}

	req, err := usecase.ExtensionFromRemote(remoteSn)
	if err != nil {
		return extension.Snapshot{}, err
	}
	if err := c.store.InsertExtension(req); err != nil && !errors.Is(err, store.ErrExists) {
		return extension.Snapshot{}, err
	}
	return req.Snapshot(), nil
}

// Respond resolves a pending extension request. Only the counterpart of the
// requester may decide, and a decision is final.
func (c *extensionCommandsImpl) Respond(ctx context.Context, actorID, extensionID uuid.UUID, decision string, adminNotes *string) (extension.Snapshot, error) {
	ext, err := c.store.GetExtension(extensionID)
	if err != nil {
		return extension.Snapshot{}, errs.WithKind(err, errs.KindNotFound, "extension request not found")
	}

	target := extension.Status(decision)
	if !target.IsResolution() {
		return extension.Snapshot{}, classify(extension.ErrInvalidDecision)
	}

	parent, err := c.machine.SnapshotOf(ext.SwapID)
	if err != nil {
		return extension.Snapshot{}, classify(err)
	}
	if actorID != parent.InitiatorID && actorID != parent.ReceiverID {
		return extension.Snapshot{}, classify(swap.ErrNotParticipant)
	}
	if actorID == ext.RequesterID {
		return extension.Snapshot{}, classify(extension.ErrOwnRequest)
	}
	if ext.Status.IsResolution() {
		return extension.Snapshot{}, classify(extension.ErrAlreadyResolved)
	}

	remoteSn, err := c.gateway.ResolveExtension(ctx, extensionID, decision, adminNotes)
	if err != nil {
		return extension.Snapshot{}, err
	}

	// Commit the remote outcome with the same merge the reconciler uses, so
	// a push event landing first makes this a harmless duplicate.
	resolvedAt := remoteSn.ResolvedAt
	if resolvedAt == nil {
		now := c.clock.Now()
		resolvedAt = &now
	}
	var committed bool
	resolved, err := c.store.UpdateExtension(extensionID, func(req *extension.Request) error {
		var serr error
		committed, serr = req.SyncResolution(target, remoteSn.AdminNotes, resolvedAt)
		return serr
	})
	if err != nil {
		return extension.Snapshot{}, classify(err)
	}

	if committed && target == extension.StatusApproved {
		if _, _, serr := c.machine.ShiftMeetup(ext.SwapID, ext.Days); serr != nil && !errors.Is(serr, store.ErrNotFound) {
			c.logger.Warn("could not shift meetup after approval",
				"swap_id", ext.SwapID, "extension_id", extensionID, "error", serr)
		}
	}
	return resolved, nil
}
