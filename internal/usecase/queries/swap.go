package queries

import (
	"context"
	"sort"

	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/infra/store"
	"bookswap-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSwapNotFound = errs.New("swap not found")
	ErrNotViewer    = errs.New("viewer is not a party to this swap")
)

type SwapQueries interface {
	GetByID(ctx context.Context, viewerID, id uuid.UUID) (*SwapView, error)
	List(ctx context.Context, viewerID uuid.UUID, f SwapFilters, cursor *Cursor, limit int) ([]*SwapListItem, *Cursor, error)
	History(ctx context.Context, viewerID uuid.UUID, cursor *Cursor, limit int) ([]*SwapListItem, *Cursor, error)
}

type swapQueriesImpl struct {
	store *store.Store
}

func NewSwapQueries(st *store.Store) SwapQueries {
	return &swapQueriesImpl{store: st}
}

func (q *swapQueriesImpl) GetByID(_ context.Context, viewerID, id uuid.UUID) (*SwapView, error) {
	sn, err := q.store.GetSwap(id)
	if err != nil {
		return nil, errs.Mark(err, ErrSwapNotFound)
	}
	if viewerID != sn.InitiatorID && viewerID != sn.ReceiverID {
		return nil, ErrNotViewer
	}

	view := fromSnapshot(sn)
	for _, ext := range q.store.ExtensionsOf(id) {
		view.Extensions = append(view.Extensions, ExtensionView{
			ID:          ext.ID,
			SwapID:      ext.SwapID,
			RequesterID: ext.RequesterID,
			Days:        ext.Days,
			Reason:      ext.Reason,
			Status:      ext.Status.String(),
			AdminNotes:  ext.AdminNotes,
			CreatedAt:   ext.CreatedAt,
			ResolvedAt:  ext.ResolvedAt,
		})
	}
	return view, nil
}

func (q *swapQueriesImpl) List(_ context.Context, viewerID uuid.UUID, f SwapFilters, cursor *Cursor, limit int) ([]*SwapListItem, *Cursor, error) {
	return q.page(viewerID, cursor, limit, func(sn swap.Snapshot) bool {
		if f.Status != "" && sn.Status.String() != f.Status {
			return false
		}
		switch f.Direction {
		case DirectionIncoming:
			return sn.ReceiverID == viewerID
		case DirectionOutgoing:
			return sn.InitiatorID == viewerID
		default:
			return true
		}
	})
}

// History lists the viewer's closed swaps, newest first.
func (q *swapQueriesImpl) History(_ context.Context, viewerID uuid.UUID, cursor *Cursor, limit int) ([]*SwapListItem, *Cursor, error) {
	return q.page(viewerID, cursor, limit, func(sn swap.Snapshot) bool {
		return sn.Status.IsTerminal()
	})
}

func (q *swapQueriesImpl) page(viewerID uuid.UUID, cursor *Cursor, limit int, keep func(swap.Snapshot) bool) ([]*SwapListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	all := q.store.ListSwaps()
	filtered := make([]swap.Snapshot, 0, len(all))
	for _, sn := range all {
		if sn.InitiatorID != viewerID && sn.ReceiverID != viewerID {
			continue
		}
		if keep(sn) {
			filtered = append(filtered, sn)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].UpdatedAt.Equal(filtered[j].UpdatedAt) {
			return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
		}
		return filtered[i].ID.String() > filtered[j].ID.String()
	})

	start := 0
	if cursor != nil && cursor.After != "" {
		afterTime, afterID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Wrap(err, "invalid cursor")
		}
		for i, sn := range filtered {
			if sn.UpdatedAt.Before(afterTime) ||
				(sn.UpdatedAt.Equal(afterTime) && sn.ID.String() < afterID.String()) {
				start = i
				break
			}
			start = len(filtered)
		}
	}

	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]*SwapListItem, 0, end-start)
	for _, sn := range filtered[start:end] {
		items = append(items, &SwapListItem{
			ID:             sn.ID,
			InitiatorID:    sn.InitiatorID,
			ReceiverID:     sn.ReceiverID,
			Status:         sn.Status.String(),
			MeetupLocation: sn.MeetupLocation,
			MeetupTime:     sn.MeetupTime,
			UpdatedAt:      sn.UpdatedAt,
		})
	}

	var next *Cursor
	if end < len(filtered) && len(items) > 0 {
		last := filtered[end-1]
		next = &Cursor{After: EncodeAfterCursor(last.UpdatedAt, last.ID)}
	}
	return items, next, nil
}

func fromSnapshot(sn swap.Snapshot) *SwapView {
	return &SwapView{
		ID:              sn.ID,
		InitiatorID:     sn.InitiatorID,
		ReceiverID:      sn.ReceiverID,
		InitiatorBookID: sn.InitiatorBookID,
		ReceiverBookID:  sn.ReceiverBookID,
		Message:         sn.Message,
		Status:          sn.Status.String(),
		MeetupLocation:  sn.MeetupLocation,
		MeetupTime:      sn.MeetupTime,
		HasActiveToken:  sn.Token != nil && !sn.Token.Consumed(),
		Rating:          sn.Rating,
		RatedBy:         sn.RatedBy,
		CreatedAt:       sn.CreatedAt,
		UpdatedAt:       sn.UpdatedAt,
	}
}
