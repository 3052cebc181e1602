//go:build unit

package verification_test

import (
	"testing"
	"time"

	"bookswap-engine/internal/domain/verification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFromValue(t *testing.T) {
	swapID, issuer := uuid.New(), uuid.New()

	tok, err := verification.FromValue(swapID, issuer, "abc123", now)
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok.Value)
	assert.Equal(t, swapID, tok.SwapID)
	assert.Equal(t, issuer, tok.IssuedBy)
	assert.False(t, tok.Consumed())

	_, err = verification.FromValue(swapID, issuer, "", now)
	assert.ErrorIs(t, err, verification.ErrEmptyToken)
}

func TestConsume(t *testing.T) {
	issuer, verifier := uuid.New(), uuid.New()

	mint := func() *verification.Token {
		tok, err := verification.FromValue(uuid.New(), issuer, "abc123", now)
		require.NoError(t, err)
		return tok
	}

	t.Run("success marks the token used", func(t *testing.T) {
		tok := mint()
		require.NoError(t, tok.Consume("abc123", verifier, now))
		assert.True(t, tok.Consumed())
		assert.Equal(t, verifier, *tok.ConsumedBy)
		assert.Equal(t, now, *tok.ConsumedAt)
	})

	t.Run("second consume fails", func(t *testing.T) {
		tok := mint()
		require.NoError(t, tok.Consume("abc123", verifier, now))
		assert.ErrorIs(t, tok.Consume("abc123", verifier, now), verification.ErrTokenConsumed)
	})

	t.Run("issuer cannot self verify", func(t *testing.T) {
		tok := mint()
		assert.ErrorIs(t, tok.Consume("abc123", issuer, now), verification.ErrSameParty)
	})

	t.Run("wrong value leaves the token intact", func(t *testing.T) {
		tok := mint()
		assert.ErrorIs(t, tok.Consume("wrong", verifier, now), verification.ErrTokenMismatch)
		assert.False(t, tok.Consumed())

		// retry with the corrected value still works
		require.NoError(t, tok.Consume("abc123", verifier, now))
	})
}
