package usecase

import (
	"context"
	"errors"
	"log/slog"

	"bookswap-engine/internal/domain/extension"
	"bookswap-engine/internal/infra/store"
	"bookswap-engine/internal/pkg/clock"
	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase/events"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var ErrUnknownEvent = errs.New("unknown event type")

// Reconciler merges push-channel events into the local store. It is
// idempotent over duplicate delivery and discards stale events by graph
// position, never by wall-clock timestamps. It runs independently of the
// command path and never waits on an in-flight mutation for another swap.
type Reconciler struct {
	machine    *StateMachine
	extensions *store.Store
	gateway    Gateway
	clock      clock.Clock
	logger     *slog.Logger
	fetches    singleflight.Group
}

func NewReconciler(machine *StateMachine, st *store.Store, gateway Gateway, clk clock.Clock, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		machine:    machine,
		extensions: st,
		gateway:    gateway,
		clock:      clk,
		logger:     logger,
	}
}

// Run consumes events until the channel closes or ctx is cancelled. A
// failed event is logged and dropped; the stream keeps flowing so one bad
// payload cannot wedge every other transaction.
func (r *Reconciler) Run(ctx context.Context, ch <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if err := r.Apply(ctx, ev); err != nil {
				r.logger.Error("failed to reconcile event",
					"type", string(ev.EventType()), "swap_id", ev.AggregateID(), "error", err)
			}
		}
	}
}

func (r *Reconciler) Apply(ctx context.Context, ev events.Event) error {
	switch e := ev.(type) {
	case events.SwapEvent:
		return r.applySwap(ctx, e)
	case events.ExtensionEvent:
		return r.applyExtension(ctx, e)
	default:
		return errs.Mark(errs.New(string(ev.EventType())), ErrUnknownEvent)
	}
}

func (r *Reconciler) applySwap(ctx context.Context, e events.SwapEvent) error {
	if err := r.ensureSwap(ctx, e.Swap.ID, &e.Swap); err != nil {
		return err
	}

	_, changed, err := r.machine.ApplyRemote(e.Swap)
	if err != nil {
		return err
	}
	if !changed {
		r.logger.Debug("discarded duplicate or stale swap event",
			"type", string(e.Type), "swap_id", e.Swap.ID, "status", e.Swap.Status)
	}
	return nil
}

func (r *Reconciler) applyExtension(ctx context.Context, e events.ExtensionEvent) error {
	// Best effort: an extension event can land before its parent swap.
	// The extension record stands alone, so a failed parent fetch only
	// degrades the view, it never drops the event.
	if err := r.ensureSwap(ctx, e.Extension.SwapID, nil); err != nil {
		r.logger.Warn("could not materialize parent swap for extension event",
			"swap_id", e.Extension.SwapID, "error", err)
	}

	switch e.Type {
	case events.TypeExtensionRequested:
		if r.extensions.HasExtension(e.Extension.ID) {
			return nil
		}
		req, err := ExtensionFromRemote(e.Extension)
		if err != nil {
			return err
		}
		if err := r.extensions.InsertExtension(req); err != nil && !errors.Is(err, store.ErrExists) {
			return err
		}
		return nil

	case events.TypeExtensionResolved:
		return r.applyResolution(e.Extension)

	default:
		return errs.Mark(errs.New(string(e.Type)), ErrUnknownEvent)
	}
}

func (r *Reconciler) applyResolution(sn events.ExtensionSnapshot) error {
	decision, err := remoteExtensionStatus(sn.Status)
	if err != nil {
		return err
	}

	if !r.extensions.HasExtension(sn.ID) {
		// Resolved before we ever saw the request: store it as-is.
		req, cerr := ExtensionFromRemote(sn)
		if cerr != nil {
			return cerr
		}
		if ierr := r.extensions.InsertExtension(req); ierr != nil && !errors.Is(ierr, store.ErrExists) {
			return ierr
		}
		if decision == extension.StatusApproved {
			return r.shiftMeetup(sn.SwapID, sn.Days)
		}
		return nil
	}

	var resolved bool
	_, err = r.extensions.UpdateExtension(sn.ID, func(req *extension.Request) error {
		var serr error
		resolved, serr = req.SyncResolution(decision, sn.AdminNotes, sn.ResolvedAt)
		return serr
	})
	if err != nil {
		return err
	}
	if resolved && decision == extension.StatusApproved {
		return r.shiftMeetup(sn.SwapID, sn.Days)
	}
	return nil
}

func (r *Reconciler) shiftMeetup(swapID uuid.UUID, days int) error {
	_, _, err := r.machine.ShiftMeetup(swapID, days)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// ensureSwap materializes a local record for an unknown swap id, collapsing
// concurrent lookups for the same id into one fetch. When the fetch fails
// and the event carries a snapshot, a minimal record is synthesized from it
// rather than dropping the event.
func (r *Reconciler) ensureSwap(ctx context.Context, id uuid.UUID, fallback *events.SwapSnapshot) error {
	if r.machine.Has(id) {
		return nil
	}

	_, err, _ := r.fetches.Do(id.String(), func() (any, error) {
		if r.machine.Has(id) {
			return nil, nil
		}

		sn, ferr := r.gateway.FetchSwap(ctx, id)
		if ferr != nil {
			if fallback == nil {
				return nil, ferr
			}
			r.logger.Warn("fetch for unknown swap failed, synthesizing from event",
				"swap_id", id, "error", ferr)
			sn = *fallback
		}

		if _, ierr := r.machine.InsertRemote(sn); ierr != nil && !errors.Is(ierr, store.ErrExists) {
			return nil, ierr
		}
		return nil, nil
	})
	return err
}
