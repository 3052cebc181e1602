package verification

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTokenConsumed = errors.New("verification token already consumed")
	ErrTokenMismatch = errors.New("verification token mismatch")
	ErrSameParty     = errors.New("verifier must be the other party")
	ErrEmptyToken    = errors.New("verification token value is empty")
)

// Token is a single-use proof value exchanged at a physical meetup. The
// first successful Consume wins; everything after that fails.
type Token struct {
	SwapID     uuid.UUID  `json:"swap_id"`
	Value      string     `json:"value"`
	IssuedBy   uuid.UUID  `json:"issued_by"`
	IssuedAt   time.Time  `json:"issued_at"`
	ConsumedBy *uuid.UUID `json:"consumed_by,omitempty"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
}

// FromValue wraps a token value minted by the remote service so the engine
// can enforce single-use locally. The value carries no meaning beyond
// equality.
func FromValue(swapID, issuerID uuid.UUID, value string, issuedAt time.Time) (*Token, error) {
	if value == "" {
		return nil, ErrEmptyToken
	}
	return &Token{
		SwapID:   swapID,
		Value:    value,
		IssuedBy: issuerID,
		IssuedAt: issuedAt,
	}, nil
}

func (t *Token) Consumed() bool {
	return t.ConsumedBy != nil
}

// Consume marks the token used by verifierID if presented matches and the
// verifier is not the issuer. A failed Consume leaves the token untouched,
// so the caller may retry with a corrected value.
func (t *Token) Consume(presented string, verifierID uuid.UUID, now time.Time) error {
	if t.Consumed() {
		return ErrTokenConsumed
	}
	if verifierID == t.IssuedBy {
		return ErrSameParty
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(t.Value)) != 1 {
		return ErrTokenMismatch
	}
	by := verifierID
	at := now
	t.ConsumedBy = &by
	t.ConsumedAt = &at
	return nil
}
