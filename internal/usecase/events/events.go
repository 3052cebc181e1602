// Package events defines the typed push-channel events the reconciler
// consumes. Wire payloads are validated and parsed into these at the
// transport boundary; nothing duck-typed crosses into the usecase layer.
package events

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSwapProposed       Type = "swap_proposed"
	TypeSwapAccepted       Type = "swap_accepted"
	TypeSwapConfirmed      Type = "swap_confirmed"
	TypeSwapCompleted      Type = "swap_completed"
	TypeSwapCancelled      Type = "swap_cancelled"
	TypeExtensionRequested Type = "extension_requested"
	TypeExtensionResolved  Type = "extension_resolved"
)

// SwapSnapshot is the swap state carried by a push event or returned by the
// remote service. It is the transport-level shape, kept apart from the
// domain aggregate on purpose.
type SwapSnapshot struct {
	ID              uuid.UUID  `json:"id"`
	InitiatorID     uuid.UUID  `json:"initiator"`
	ReceiverID      uuid.UUID  `json:"receiver"`
	InitiatorBookID uuid.UUID  `json:"initiator_book"`
	ReceiverBookID  *uuid.UUID `json:"receiver_book,omitempty"`
	Message         string     `json:"message,omitempty"`
	Status          string     `json:"status"`
	MeetupLocation  *string    `json:"meetup_location,omitempty"`
	MeetupTime      *time.Time `json:"meetup_time,omitempty"`
	Rating          *int       `json:"rating,omitempty"`
	RatedBy         *uuid.UUID `json:"rated_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ExtensionSnapshot struct {
	ID          uuid.UUID  `json:"id"`
	SwapID      uuid.UUID  `json:"swap_id"`
	RequesterID uuid.UUID  `json:"requester"`
	Days        int        `json:"days"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	AdminNotes  *string    `json:"admin_notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// Event is one member of the push taxonomy. AggregateID is the swap the
// event belongs to; delivery is ordered per aggregate, at-least-once.
type Event interface {
	EventType() Type
	AggregateID() uuid.UUID
}

type SwapEvent struct {
	Type Type
	Swap SwapSnapshot
}

func (e SwapEvent) EventType() Type { return e.Type }
func (e SwapEvent) AggregateID() uuid.UUID { return e.Swap.ID }

type ExtensionEvent struct {
	Type      Type
	Extension ExtensionSnapshot
}

func (e ExtensionEvent) EventType() Type { return e.Type }
func (e ExtensionEvent) AggregateID() uuid.UUID { return e.Extension.SwapID }

// IsSwapEvent reports whether t carries a swap snapshot payload.
func (t Type) IsSwapEvent() bool {
	switch t {
	case TypeSwapProposed, TypeSwapAccepted, TypeSwapConfirmed, TypeSwapCompleted, TypeSwapCancelled:
		return true
	default:
		return false
	}
}

func (t Type) IsValid() bool {
	return t.IsSwapEvent() || t == TypeExtensionRequested || t == TypeExtensionResolved
}
