package builder

import (
	"time"

	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/usecase/events"

	"github.com/google/uuid"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// SwapBuilder assembles swap aggregates and transport snapshots for tests.
// Defaults describe a fresh proposal between two fixed parties.
type SwapBuilder struct {
	id              uuid.UUID
	initiatorID     uuid.UUID
	receiverID      uuid.UUID
	initiatorBookID uuid.UUID
	receiverBookID  *uuid.UUID
	message         string
	status          swap.Status
	meetupLocation  *string
	meetupTime      *time.Time
	now             time.Time
}

func NewSwapBuilder() *SwapBuilder {
	return &SwapBuilder{
		id:              uuid.New(),
		initiatorID:     uuid.New(),
		receiverID:      uuid.New(),
		initiatorBookID: uuid.New(),
		message:         "Interested in trading?",
		status:          swap.StatusRequested,
		now:             baseTime,
	}
}

func (b *SwapBuilder) WithID(id uuid.UUID) *SwapBuilder           { b.id = id; return b }
func (b *SwapBuilder) WithInitiator(id uuid.UUID) *SwapBuilder    { b.initiatorID = id; return b }
func (b *SwapBuilder) WithReceiver(id uuid.UUID) *SwapBuilder     { b.receiverID = id; return b }
func (b *SwapBuilder) WithInitiatorBook(id uuid.UUID) *SwapBuilder {
	b.initiatorBookID = id
	return b
}
func (b *SwapBuilder) WithReceiverBook(id uuid.UUID) *SwapBuilder { b.receiverBookID = &id; return b }
func (b *SwapBuilder) WithMessage(m string) *SwapBuilder          { b.message = m; return b }
func (b *SwapBuilder) WithStatus(s swap.Status) *SwapBuilder      { b.status = s; return b }
func (b *SwapBuilder) WithNow(t time.Time) *SwapBuilder           { b.now = t; return b }

func (b *SwapBuilder) WithMeetup(location string, at time.Time) *SwapBuilder {
	b.meetupLocation = &location
	b.meetupTime = &at
	return b
}

// BuildDomain runs the real constructor, so builder defaults go through
// validation. Status defaults to Requested; use BuildSnapshotDomain for an
// arbitrary starting status.
func (b *SwapBuilder) BuildDomain() (*swap.Swap, error) {
	return swap.NewSwap(b.initiatorID, b.receiverID, b.initiatorBookID, b.receiverBookID, b.message, b.now)
}

// BuildSnapshotDomain rebuilds an aggregate at any graph position without
// walking it there transition by transition.
func (b *SwapBuilder) BuildSnapshotDomain() *swap.Swap {
	return swap.FromSnapshot(b.Snapshot())
}

func (b *SwapBuilder) Snapshot() swap.Snapshot {
	return swap.Snapshot{
		ID:              b.id,
		InitiatorID:     b.initiatorID,
		ReceiverID:      b.receiverID,
		InitiatorBookID: b.initiatorBookID,
		ReceiverBookID:  b.receiverBookID,
		Message:         b.message,
		Status:          b.status,
		MeetupLocation:  b.meetupLocation,
		MeetupTime:      b.meetupTime,
		CreatedAt:       b.now,
		UpdatedAt:       b.now,
	}
}

// RemoteSnapshot is the same record as the transport shape the gateway and
// feed deliver.
func (b *SwapBuilder) RemoteSnapshot() events.SwapSnapshot {
	return events.SwapSnapshot{
		ID:              b.id,
		InitiatorID:     b.initiatorID,
		ReceiverID:      b.receiverID,
		InitiatorBookID: b.initiatorBookID,
		ReceiverBookID:  b.receiverBookID,
		Message:         b.message,
		Status:          b.status.String(),
		MeetupLocation:  b.meetupLocation,
		MeetupTime:      b.meetupTime,
		CreatedAt:       b.now,
		UpdatedAt:       b.now,
	}
}
