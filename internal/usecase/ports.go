package usecase

import (
	"context"
	"time"

	"bookswap-engine/internal/domain/geo"
	"bookswap-engine/internal/usecase/events"

	"github.com/google/uuid"
)

// ProposeRemote is the propose payload sent to the remote swap service.
// IdempotencyKey lets a retried propose deduplicate server-side.
type ProposeRemote struct {
	InitiatorBookID uuid.UUID
	ReceiverID      uuid.UUID
	ReceiverBookID  *uuid.UUID
	Message         string
	IdempotencyKey  string
}

// TokenGrant is a verification token minted by the remote service for the
// requesting party.
type TokenGrant struct {
	Token    string
	IssuedAt time.Time
}

// Gateway is the remote REST contract the engine consumes. Implementations
// classify failures with errs kinds; a timeout is a network failure, never
// success-by-default.
type Gateway interface {
	ProposeSwap(ctx context.Context, req ProposeRemote) (events.SwapSnapshot, error)
	AcceptSwap(ctx context.Context, swapID uuid.UUID) (events.SwapSnapshot, error)
	ConfirmSwap(ctx context.Context, swapID uuid.UUID, token string) (events.SwapSnapshot, error)
	CancelSwap(ctx context.Context, swapID uuid.UUID) (events.SwapSnapshot, error)
	RateSwap(ctx context.Context, swapID uuid.UUID, value int) (events.SwapSnapshot, error)
	FetchSwap(ctx context.Context, swapID uuid.UUID) (events.SwapSnapshot, error)
	IssueToken(ctx context.Context, swapID uuid.UUID) (TokenGrant, error)
	RequestExtension(ctx context.Context, swapID uuid.UUID, days int, reason string) (events.ExtensionSnapshot, error)
	ResolveExtension(ctx context.Context, extensionID uuid.UUID, decision string, adminNotes *string) (events.ExtensionSnapshot, error)
	SearchPlaces(ctx context.Context, partyA, partyB geo.Coordinates, transportMode string, placeTypes []string) ([]geo.Candidate, error)
}

// BookCatalog answers whether a book is owned by a user and still available
// for swapping. Backed by the remote book catalog.
type BookCatalog interface {
	OwnsAvailableBook(ctx context.Context, ownerID, bookID uuid.UUID) (bool, error)
}
