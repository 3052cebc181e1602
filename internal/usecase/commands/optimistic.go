package commands

import (
	"context"
	"log/slog"

	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/usecase"
	"bookswap-engine/internal/usecase/events"

	"github.com/google/uuid"
)

// mutator runs a swap mutation optimistically: the local transition is
// applied first so the UI sees the new state immediately, then the remote
// call either commits the authoritative snapshot or triggers a rollback to
// the captured pre-mutation state. Rollback defers to the reconciler; if a
// confirmed event already advanced the record past the optimistic status,
// the restore is a no-op.
type mutator struct {
	machine *usecase.StateMachine
	logger  *slog.Logger
}

func (m *mutator) run(
	ctx context.Context,
	swapID uuid.UUID,
	apply func() (swap.Snapshot, error),
	remote func(context.Context) (events.SwapSnapshot, error),
) (swap.Snapshot, error) {
	before, err := m.machine.SnapshotOf(swapID)
	if err != nil {
		return swap.Snapshot{}, classify(err)
	}

	applied, err := apply()
	if err != nil {
		return swap.Snapshot{}, classify(err)
	}

	remoteSn, err := remote(ctx)
	if err != nil {
		if rerr := m.machine.Restore(swapID, before, applied.Status); rerr != nil {
			m.logger.Error("failed to roll back optimistic mutation",
				"swap_id", swapID, "error", rerr)
		}
		return swap.Snapshot{}, err
	}

	committed, _, err := m.machine.ApplyRemote(remoteSn)
	if err != nil {
		// The mutation succeeded remotely; a bad response snapshot only
		// delays convergence until the next event or fetch.
		m.logger.Warn("could not merge mutation response, keeping optimistic state",
			"swap_id", swapID, "error", err)
		return applied, nil
	}
	return committed, nil
}
