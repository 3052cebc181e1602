package builder

import (
	"time"

	"bookswap-engine/internal/domain/extension"
	"bookswap-engine/internal/usecase/events"

	"github.com/google/uuid"
)

type ExtensionBuilder struct {
	id          uuid.UUID
	swapID      uuid.UUID
	requesterID uuid.UUID
	days        int
	reason      string
	status      extension.Status
	adminNotes  *string
	resolvedAt  *time.Time
	now         time.Time
}

func NewExtensionBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{
		id:          uuid.New(),
		swapID:      uuid.New(),
		requesterID: uuid.New(),
		days:        3,
		reason:      "Need a few more days to finish the book",
		status:      extension.StatusPending,
		now:         baseTime,
	}
}

func (b *ExtensionBuilder) WithID(id uuid.UUID) *ExtensionBuilder        { b.id = id; return b }
func (b *ExtensionBuilder) WithSwapID(id uuid.UUID) *ExtensionBuilder    { b.swapID = id; return b }
func (b *ExtensionBuilder) WithRequester(id uuid.UUID) *ExtensionBuilder { b.requesterID = id; return b }
func (b *ExtensionBuilder) WithDays(d int) *ExtensionBuilder             { b.days = d; return b }
func (b *ExtensionBuilder) WithReason(r string) *ExtensionBuilder        { b.reason = r; return b }

func (b *ExtensionBuilder) WithResolution(s extension.Status, notes *string) *ExtensionBuilder {
	b.status = s
	b.adminNotes = notes
	at := b.now.Add(time.Hour)
	b.resolvedAt = &at
	return b
}

func (b *ExtensionBuilder) BuildDomain() (*extension.Request, error) {
	return extension.NewRequest(b.swapID, b.requesterID, b.days, b.reason, b.now)
}

func (b *ExtensionBuilder) BuildSnapshotDomain() *extension.Request {
	return extension.FromSnapshot(b.Snapshot())
}

func (b *ExtensionBuilder) Snapshot() extension.Snapshot {
	return extension.Snapshot{
		ID:          b.id,
		SwapID:      b.swapID,
		RequesterID: b.requesterID,
		Days:        b.days,
		Reason:      b.reason,
		Status:      b.status,
		AdminNotes:  b.adminNotes,
		CreatedAt:   b.now,
		ResolvedAt:  b.resolvedAt,
	}
}

func (b *ExtensionBuilder) RemoteSnapshot() events.ExtensionSnapshot {
	return events.ExtensionSnapshot{
		ID:          b.id,
		SwapID:      b.swapID,
		RequesterID: b.requesterID,
		Days:        b.days,
		Reason:      b.reason,
		Status:      b.status.String(),
		AdminNotes:  b.adminNotes,
		CreatedAt:   b.now,
		ResolvedAt:  b.resolvedAt,
	}
}
