package queries

import (
	"time"

	"bookswap-engine/internal/domain/geo"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SwapView struct {
	ID              uuid.UUID       `json:"id"`
	InitiatorID     uuid.UUID       `json:"initiator"`
	ReceiverID      uuid.UUID       `json:"receiver"`
	InitiatorBookID uuid.UUID       `json:"initiator_book"`
	ReceiverBookID  *uuid.UUID      `json:"receiver_book,omitempty"`
	Message         string          `json:"message,omitempty"`
	Status          string          `json:"status"`
	MeetupLocation  *string         `json:"meetup_location,omitempty"`
	MeetupTime      *time.Time      `json:"meetup_time,omitempty"`
	HasActiveToken  bool            `json:"has_active_token"`
	Rating          *int            `json:"rating,omitempty"`
	RatedBy         *uuid.UUID      `json:"rated_by,omitempty"`
	Extensions      []ExtensionView `json:"extensions,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type SwapListItem struct {
	ID             uuid.UUID  `json:"id"`
	InitiatorID    uuid.UUID  `json:"initiator"`
	ReceiverID     uuid.UUID  `json:"receiver"`
	Status         string     `json:"status"`
	MeetupLocation *string    `json:"meetup_location,omitempty"`
	MeetupTime     *time.Time `json:"meetup_time,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ExtensionView struct {
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

type TokenView struct {
	SwapID   uuid.UUID `json:"swap_id"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}

// SwapDirection filters a listing relative to the viewer.
type SwapDirection string

const (
	DirectionAny      SwapDirection = ""
	DirectionIncoming SwapDirection = "incoming"
	DirectionOutgoing SwapDirection = "outgoing"
)

type SwapFilters struct {
	Status    string
	Direction SwapDirection
}

type MeetingSpotsView struct {
	Midpoint   geo.Coordinates `json:"midpoint"`
	Candidates []geo.Candidate `json:"candidates"`
}
