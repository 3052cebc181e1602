package commands

import (
	"errors"

	"bookswap-engine/internal/domain/extension"
	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/domain/verification"
	"bookswap-engine/internal/infra/store"
	"bookswap-engine/internal/pkg/errs"
)

var ErrBookUnavailable = errs.New("book is not owned by the actor or not available")

// classify tags a domain error with the failure kind the caller should
// surface. Gateway errors arrive already tagged and pass through untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if _, tagged := errs.KindOf(err); tagged {
		return err
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return errs.WithKind(err, errs.KindNotFound, "swap not found")

	case errors.Is(err, swap.ErrNotParticipant),
		errors.Is(err, swap.ErrNotReceiver),
		errors.Is(err, extension.ErrOwnRequest),
		errors.Is(err, verification.ErrSameParty):
		return errs.WithKind(err, errs.KindAuthorization, "actor is not allowed to perform this action")

	case errors.Is(err, swap.ErrNotRequested),
		errors.Is(err, swap.ErrNotAccepted),
		errors.Is(err, swap.ErrNotConfirmed),
		errors.Is(err, swap.ErrNotCompleted),
		errors.Is(err, swap.ErrAlreadyCompleted),
		errors.Is(err, swap.ErrAlreadyRated),
		errors.Is(err, swap.ErrInvalidStatus),
		errors.Is(err, extension.ErrAlreadyResolved):
		return errs.WithKind(err, errs.KindConflict, "swap state does not allow this action")

	case errors.Is(err, swap.ErrNoToken),
		errors.Is(err, verification.ErrTokenMismatch),
		errors.Is(err, verification.ErrTokenConsumed),
		errors.Is(err, verification.ErrEmptyToken):
		return errs.WithKind(err, errs.KindVerification, "verification token rejected")

	case errors.Is(err, swap.ErrSelfSwap),
		errors.Is(err, swap.ErrMissingBook),
		errors.Is(err, swap.ErrInvalidRating),
		errors.Is(err, swap.ErrMessageTooLong),
		errors.Is(err, ErrBookUnavailable),
		errors.Is(err, extension.ErrInvalidDays),
		errors.Is(err, extension.ErrEmptyReason),
		errors.Is(err, extension.ErrReasonTooLong),
		errors.Is(err, extension.ErrInvalidDecision):
		return errs.WithKind(err, errs.KindValidation, "request failed validation")
	}

	return err
}
