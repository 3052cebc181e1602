package extension

import (
	"strings"
	"time"

	"bookswap-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxReasonLength = 500

var (
	ErrInvalidDays     = errs.New("days must be a positive integer")
	ErrEmptyReason     = errs.New("reason must not be empty")
	ErrReasonTooLong   = errs.New("reason is too long")
	ErrInvalidDecision = errs.New("decision must be approved or denied")
	ErrAlreadyResolved = errs.New("extension request already resolved")
	ErrOwnRequest      = errs.New("requester cannot resolve own request")
)

// Request is a sub-negotiation to extend the time window of an in-flight
// swap. It is resolved exactly once and never deleted; the decision is
// recorded on the request itself.
type Request struct {
	id          uuid.UUID
	swapID      uuid.UUID
	requesterID uuid.UUID
	days        int
	reason      string
	status      Status
	adminNotes  *string
	createdAt   time.Time
	resolvedAt  *time.Time
}

type Snapshot struct {
	ID          uuid.UUID
	SwapID      uuid.UUID
	RequesterID uuid.UUID
	Days        int
	Reason      string
	Status      Status
	AdminNotes  *string
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// NewRequest validates and creates a pending request. The UI offers discrete
// day choices but any positive integer is accepted here.
func NewRequest(swapID, requesterID uuid.UUID, days int, reason string, now time.Time) (*Request, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return nil, ErrEmptyReason
	}
	if len(trimmed) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}

	return &Request{
		id:          uuid.New(),
		swapID:      swapID,
		requesterID: requesterID,
		days:        days,
		reason:      trimmed,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func FromSnapshot(sn Snapshot) *Request {
	return &Request{
		id:          sn.ID,
		swapID:      sn.SwapID,
		requesterID: sn.RequesterID,
		days:        sn.Days,
		reason:      sn.Reason,
		status:      sn.Status,
		adminNotes:  sn.AdminNotes,
		createdAt:   sn.CreatedAt,
		resolvedAt:  sn.ResolvedAt,
	}
}

func (r *Request) Snapshot() Snapshot {
	return Snapshot{
		ID:          r.id,
		SwapID:      r.swapID,
		RequesterID: r.requesterID,
		Days:        r.days,
		Reason:      r.reason,
		Status:      r.status,
		AdminNotes:  r.adminNotes,
		CreatedAt:   r.createdAt,
		ResolvedAt:  r.resolvedAt,
	}
}

func (r *Request) ID() uuid.UUID { return r.id }
func (r *Request) SwapID() uuid.UUID { return r.swapID }
func (r *Request) RequesterID() uuid.UUID { return r.requesterID }
func (r *Request) Days() int { return r.days }
func (r *Request) Status() Status { return r.status }
func (r *Request) Resolved() bool { return r.status != StatusPending }

// Resolve records the counterpart's decision. A second resolution conflicts;
// the requester may never resolve their own request.
func (r *Request) Resolve(responderID uuid.UUID, decision Status, adminNotes *string, now time.Time) error {
	if !decision.IsResolution() {
		return ErrInvalidDecision
	}
	if responderID == r.requesterID {
		return ErrOwnRequest
	}
	if r.Resolved() {
		return ErrAlreadyResolved
	}
	r.status = decision
	r.adminNotes = adminNotes
	at := now
	r.resolvedAt = &at
	return nil
}

// SyncResolution merges a server-confirmed resolution without responder
// checks; push events are already validated upstream. Returns false when
// the request was resolved already, making duplicate events no-ops.
func (r *Request) SyncResolution(decision Status, adminNotes *string, resolvedAt *time.Time) (bool, error) {
	if !decision.IsResolution() {
		return false, ErrInvalidDecision
	}
	if r.Resolved() {
		return false, nil
	}
	r.status = decision
	r.adminNotes = adminNotes
	r.resolvedAt = resolvedAt
	return true, nil
}
