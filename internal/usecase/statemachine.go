package usecase

import (
	"log/slog"

	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/domain/verification"
	"bookswap-engine/internal/infra/store"
	"bookswap-engine/internal/pkg/clock"
	"bookswap-engine/internal/usecase/events"

	"github.com/google/uuid"
)

// StateMachine is the sole writer of swap status. Both ingestion paths go
// through it: user commands apply tentative transitions here, and the
// reconciler commits server-confirmed ones with the same transition
// functions, so the two paths can never diverge in shape.
type StateMachine struct {
	swaps  *store.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewStateMachine(swaps *store.Store, clk clock.Clock, logger *slog.Logger) *StateMachine {
	return &StateMachine{swaps: swaps, clock: clk, logger: logger}
}

func (m *StateMachine) SnapshotOf(id uuid.UUID) (swap.Snapshot, error) {
	return m.swaps.GetSwap(id)
}

func (m *StateMachine) Has(id uuid.UUID) bool {
	return m.swaps.HasSwap(id)
}

// InsertRemote registers a swap the remote service told us about, either as
// a propose result or as an event for a record we did not hold yet.
func (m *StateMachine) InsertRemote(sn events.SwapSnapshot) (swap.Snapshot, error) {
	sw, err := swapFromRemote(sn)
	if err != nil {
		return swap.Snapshot{}, err
	}
	if err := m.swaps.InsertSwap(sw); err != nil {
		return swap.Snapshot{}, err
	}
	return sw.Snapshot(), nil
}

func (m *StateMachine) Accept(id, actorID uuid.UUID) (swap.Snapshot, error) {
	return m.swaps.UpdateSwap(id, func(s *swap.Swap) error {
		return s.Accept(actorID, m.clock.Now())
	})
}

// Cancel reports whether the record actually changed; cancelling an already
// cancelled swap succeeds without a change.
func (m *StateMachine) Cancel(id, actorID uuid.UUID) (swap.Snapshot, bool, error) {
	var changed bool
	sn, err := m.swaps.UpdateSwap(id, func(s *swap.Swap) error {
		var cerr error
		changed, cerr = s.Cancel(actorID, m.clock.Now())
		return cerr
	})
	return sn, changed, err
}

// Verify consumes the presented token and confirms the swap in one step
// under the record lock, so a racing duplicate verify sees the token as
// consumed rather than a half-applied state.
func (m *StateMachine) Verify(id, verifierID uuid.UUID, presented string) (swap.Snapshot, error) {
	return m.swaps.UpdateSwap(id, func(s *swap.Swap) error {
		return s.ConsumeToken(presented, verifierID, m.clock.Now())
	})
}

func (m *StateMachine) Complete(id uuid.UUID) (swap.Snapshot, error) {
	return m.swaps.UpdateSwap(id, func(s *swap.Swap) error {
		return s.Complete(m.clock.Now())
	})
}

func (m *StateMachine) Rate(id, actorID uuid.UUID, value int) (swap.Snapshot, error) {
	return m.swaps.UpdateSwap(id, func(s *swap.Swap) error {
		return s.Rate(actorID, value, m.clock.Now())
	})
}

// AttachToken wraps a remote token grant and records it as the swap's
// current token, invalidating any earlier unconsumed one.
func (m *StateMachine) AttachToken(id, issuerID uuid.UUID, grant TokenGrant) (swap.Snapshot, error) {
	token, err := verification.FromValue(id, issuerID, grant.Token, grant.IssuedAt)
	if err != nil {
		return swap.Snapshot{}, err
	}
	return m.swaps.UpdateSwap(id, func(s *swap.Swap) error {
		return s.AttachToken(token, m.clock.Now())
	})
}

func (m *StateMachine) ShiftMeetup(id uuid.UUID, days int) (swap.Snapshot, bool, error) {
	var shifted bool
	sn, err := m.swaps.UpdateSwap(id, func(s *swap.Swap) error {
		shifted = s.ShiftMeetup(days, m.clock.Now())
		return nil
	})
	return sn, shifted, err
}

// ApplyRemote merges a server snapshot into the local record: advance the
// status if the snapshot is later in the graph, then sync server-owned
// fields. Stale or duplicate snapshots report changed=false.
func (m *StateMachine) ApplyRemote(sn events.SwapSnapshot) (swap.Snapshot, bool, error) {
	target, err := remoteSwapStatus(sn.Status)
	if err != nil {
		return swap.Snapshot{}, false, err
	}

	var changed bool
	out, err := m.swaps.UpdateSwap(sn.ID, func(s *swap.Swap) error {
		var aerr error
		changed, aerr = s.AdvanceTo(target, m.clock.Now())
		if aerr != nil {
			return aerr
		}
		if changed || sn.MeetupLocation != nil || sn.MeetupTime != nil {
			s.SyncMeetup(sn.MeetupLocation, sn.MeetupTime, m.clock.Now())
		}
		s.SyncRating(sn.Rating, sn.RatedBy, m.clock.Now())
		return nil
	})
	return out, changed, err
}

// Restore rolls a swap back to a pre-mutation snapshot, but only while the
// record still shows the optimistic status. If the reconciler has already
// moved the record further along the graph, the rollback is skipped: the
// confirmed state wins over the failed mutation.
func (m *StateMachine) Restore(id uuid.UUID, before swap.Snapshot, optimistic swap.Status) error {
	_, err := m.swaps.ReplaceSwap(id, func(current *swap.Swap) (*swap.Swap, error) {
		if current.Status() != optimistic {
			m.logger.Debug("skipping optimistic rollback, record moved on",
				"swap_id", id, "status", current.Status().String())
			return current, nil
		}
		return swap.FromSnapshot(before), nil
	})
	return err
}
