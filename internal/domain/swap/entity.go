package swap

import (
	"time"

	"bookswap-engine/internal/domain/verification"
	"bookswap-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSelfSwap         = errs.New("cannot propose a swap with yourself")
	ErrMissingBook      = errs.New("initiator book is required")
	ErrNotParticipant   = errs.New("actor is not a party to this swap")
	ErrNotReceiver      = errs.New("only the receiver may accept")
	ErrNotRequested     = errs.New("swap is not in requested state")
	ErrNotAccepted      = errs.New("swap is not in accepted state")
	ErrNotConfirmed     = errs.New("swap is not in confirmed state")
	ErrNotCompleted     = errs.New("swap is not completed yet")
	ErrAlreadyCompleted = errs.New("swap is already completed")
	ErrAlreadyRated     = errs.New("swap is already rated")
	ErrInvalidRating    = errs.New("rating must be between 1 and 5")
	ErrMessageTooLong   = errs.New("message is too long")
	ErrInvalidStatus    = errs.New("invalid swap status")
	ErrNoToken          = errs.New("no verification token issued")
)

// Swap is the authoritative per-transaction record. Status only moves along
// the graph in types.go; Cancelled and Completed are immutable thereafter.
type Swap struct {
	id              uuid.UUID
	initiatorID     uuid.UUID
	receiverID      uuid.UUID
	initiatorBookID uuid.UUID
	receiverBookID  *uuid.UUID
	message         Message
	status          Status
	meetupLocation  *string
	meetupTime      *time.Time
	token           *verification.Token
	rating          *Rating
	ratedBy         *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

// Snapshot is the exported, copyable form of a Swap. The store hands out
// deep copies of snapshots; the optimistic path captures one before applying
// a tentative transition.
type Snapshot struct {
	ID              uuid.UUID
	InitiatorID     uuid.UUID
	ReceiverID      uuid.UUID
	InitiatorBookID uuid.UUID
	ReceiverBookID  *uuid.UUID
	Message         string
	Status          Status
	MeetupLocation  *string
	MeetupTime      *time.Time
	Token           *verification.Token
	Rating          *int
	RatedBy         *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewSwap(initiatorID, receiverID, initiatorBookID uuid.UUID, receiverBookID *uuid.UUID, message string, now time.Time) (*Swap, error) {
	if initiatorID == receiverID {
		return nil, ErrSelfSwap
	}
	if initiatorBookID == uuid.Nil {
		return nil, ErrMissingBook
	}
	msg, err := NewMessage(message)
	if err != nil {
		return nil, err
	}

	return &Swap{
		id:              uuid.New(),
		initiatorID:     initiatorID,
		receiverID:      receiverID,
		initiatorBookID: initiatorBookID,
		receiverBookID:  receiverBookID,
		message:         msg,
		status:          StatusRequested,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func FromSnapshot(sn Snapshot) *Swap {
	msg, _ := NewMessage(sn.Message)
	s := &Swap{
		id:              sn.ID,
		initiatorID:     sn.InitiatorID,
		receiverID:      sn.ReceiverID,
		initiatorBookID: sn.InitiatorBookID,
		receiverBookID:  sn.ReceiverBookID,
		message:         msg,
		status:          sn.Status,
		meetupLocation:  sn.MeetupLocation,
		meetupTime:      sn.MeetupTime,
		token:           sn.Token,
		ratedBy:         sn.RatedBy,
		createdAt:       sn.CreatedAt,
		updatedAt:       sn.UpdatedAt,
	}
	if sn.Rating != nil {
		if r, err := NewRating(*sn.Rating); err == nil {
			s.rating = &r
		}
	}
	return s
}

func (s *Swap) Snapshot() Snapshot {
	sn := Snapshot{
		ID:              s.id,
		InitiatorID:     s.initiatorID,
		ReceiverID:      s.receiverID,
		InitiatorBookID: s.initiatorBookID,
		ReceiverBookID:  s.receiverBookID,
		Message:         s.message.String(),
		Status:          s.status,
		MeetupLocation:  s.meetupLocation,
		MeetupTime:      s.meetupTime,
		Token:           s.token,
		RatedBy:         s.ratedBy,
		CreatedAt:       s.createdAt,
		UpdatedAt:       s.updatedAt,
	}
	if s.rating != nil {
		v := s.rating.Value()
		sn.Rating = &v
	}
	return sn
}

func (s *Swap) ID() uuid.UUID { return s.id }
func (s *Swap) InitiatorID() uuid.UUID { return s.initiatorID }
func (s *Swap) ReceiverID() uuid.UUID { return s.receiverID }
func (s *Swap) Status() Status { return s.status }
func (s *Swap) Token() *verification.Token { return s.token }
func (s *Swap) MeetupTime() *time.Time { return s.meetupTime }
func (s *Swap) UpdatedAt() time.Time { return s.updatedAt }

func (s *Swap) Participant(actorID uuid.UUID) bool {
	return actorID == s.initiatorID || actorID == s.receiverID
}

// CounterpartOf returns the other party of the swap.
func (s *Swap) CounterpartOf(actorID uuid.UUID) (uuid.UUID, bool) {
	switch actorID {
	case s.initiatorID:
		return s.receiverID, true
	case s.receiverID:
		return s.initiatorID, true
	default:
		return uuid.Nil, false
	}
}

// Accept moves Requested -> Accepted. Only the receiver may accept.
func (s *Swap) Accept(actorID uuid.UUID, now time.Time) error {
	if !s.Participant(actorID) {
		return ErrNotParticipant
	}
	if actorID != s.receiverID {
		return ErrNotReceiver
	}
	if s.status != StatusRequested {
		return ErrNotRequested
	}
	s.status = StatusAccepted
	s.touch(now)
	return nil
}

// Cancel moves any non-terminal state to Cancelled. Cancelling an already
// cancelled swap is a no-op success so two racing cancel clicks both win.
// The returned bool reports whether anything changed.
func (s *Swap) Cancel(actorID uuid.UUID, now time.Time) (bool, error) {
	if !s.Participant(actorID) {
		return false, ErrNotParticipant
	}
	if s.status == StatusCancelled {
		return false, nil
	}
	if s.status == StatusCompleted {
		return false, ErrAlreadyCompleted
	}
	s.status = StatusCancelled
	s.touch(now)
	return true, nil
}

// Confirm moves Accepted -> Confirmed. Token verification happens before
// this is called; the swap itself only enforces the graph.
func (s *Swap) Confirm(now time.Time) error {
	if s.status != StatusAccepted {
		return ErrNotAccepted
	}
	s.status = StatusConfirmed
	s.touch(now)
	return nil
}

// Complete moves Confirmed -> Completed (server-side closure).
func (s *Swap) Complete(now time.Time) error {
	if s.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	s.status = StatusCompleted
	s.touch(now)
	return nil
}

// Rate records a single 1..5 rating by one of the parties, once the swap is
// completed. The first rating wins; a second attempt conflicts.
func (s *Swap) Rate(actorID uuid.UUID, value int, now time.Time) error {
	if !s.Participant(actorID) {
		return ErrNotParticipant
	}
	if s.status != StatusCompleted {
		return ErrNotCompleted
	}
	if s.rating != nil {
		return ErrAlreadyRated
	}
	r, err := NewRating(value)
	if err != nil {
		return err
	}
	by := actorID
	s.rating = &r
	s.ratedBy = &by
	s.touch(now)
	return nil
}

// AttachToken records a freshly issued verification token, invalidating any
// prior unconsumed token so only the newest displayed code verifies.
func (s *Swap) AttachToken(t *verification.Token, now time.Time) error {
	if s.status != StatusAccepted {
		return ErrNotAccepted
	}
	if !s.Participant(t.IssuedBy) {
		return ErrNotParticipant
	}
	s.token = t
	s.touch(now)
	return nil
}

// ConsumeToken verifies the presented value against the current token and
// confirms the swap in the same step. The consumed check runs before the
// status gate: re-presenting a used code on a now-confirmed swap is a
// verification failure, not a state conflict.
func (s *Swap) ConsumeToken(presented string, verifierID uuid.UUID, now time.Time) error {
	if !s.Participant(verifierID) {
		return ErrNotParticipant
	}
	if s.token != nil && s.token.Consumed() {
		return verification.ErrTokenConsumed
	}
	if s.status != StatusAccepted {
		return ErrNotAccepted
	}
	if s.token == nil {
		return ErrNoToken
	}
	if err := s.token.Consume(presented, verifierID, now); err != nil {
		return err
	}
	return s.Confirm(now)
}

// SetMeetup fixes the meetup plan. Allowed before or during Accepted.
func (s *Swap) SetMeetup(actorID uuid.UUID, location *string, at *time.Time, now time.Time) error {
	if !s.Participant(actorID) {
		return ErrNotParticipant
	}
	if s.status != StatusRequested && s.status != StatusAccepted {
		return ErrInvalidStatus
	}
	s.meetupLocation = location
	s.meetupTime = at
	s.touch(now)
	return nil
}

// SyncMeetup merges server-confirmed meetup fields without actor checks.
// Used by the reconciler, which trusts validated push events.
func (s *Swap) SyncMeetup(location *string, at *time.Time, now time.Time) {
	if location != nil {
		s.meetupLocation = location
	}
	if at != nil {
		s.meetupTime = at
	}
	s.touch(now)
}

// SyncRating merges a rating recorded on the server. A rating already held
// locally stays; the first recorded rating is authoritative.
func (s *Swap) SyncRating(value *int, by *uuid.UUID, now time.Time) {
	if value == nil || s.rating != nil {
		return
	}
	r, err := NewRating(*value)
	if err != nil {
		return
	}
	s.rating = &r
	if by != nil {
		v := *by
		s.ratedBy = &v
	}
	s.touch(now)
}

// ShiftMeetup pushes the meetup time out by days after an approved
// extension. A swap with no meetup time yet has nothing to shift.
func (s *Swap) ShiftMeetup(days int, now time.Time) bool {
	if s.meetupTime == nil || days <= 0 {
		return false
	}
	shifted := s.meetupTime.AddDate(0, 0, days)
	s.meetupTime = &shifted
	s.touch(now)
	return true
}

// AdvanceTo walks the swap to target if target is strictly later in the
// graph. Returns false without error when the local state already reflects
// the target or is ahead of it, which is how duplicate and out-of-order
// events become no-ops.
func (s *Swap) AdvanceTo(target Status, now time.Time) (bool, error) {
	if !target.IsValid() {
		return false, ErrInvalidStatus
	}
	if !CanAdvance(s.status, target) {
		return false, nil
	}
	s.status = target
	s.touch(now)
	return true, nil
}

// touch keeps updatedAt monotonically non-decreasing even if the local
// clock steps backwards.
func (s *Swap) touch(now time.Time) {
	if now.After(s.updatedAt) {
		s.updatedAt = now
	}
}
