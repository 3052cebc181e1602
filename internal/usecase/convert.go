package usecase

import (
	"bookswap-engine/internal/domain/extension"
	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase/events"
)

var (
	ErrUnknownSwapStatus      = errs.New("unknown swap status from transport")
	ErrUnknownExtensionStatus = errs.New("unknown extension status from transport")
)

func remoteSwapStatus(s string) (swap.Status, error) {
	st := swap.Status(s)
	if !st.IsValid() {
		return "", errs.Mark(errs.New("status "+s), ErrUnknownSwapStatus)
	}
	return st, nil
}

func remoteExtensionStatus(s string) (extension.Status, error) {
	st := extension.Status(s)
	if !st.IsValid() {
		return "", errs.Mark(errs.New("status "+s), ErrUnknownExtensionStatus)
	}
	return st, nil
}

// swapFromRemote rebuilds a domain record from a transport snapshot, used
// both when a command result comes back and when the reconciler has to
// synthesize a record for an event about an unknown swap.
func swapFromRemote(sn events.SwapSnapshot) (*swap.Swap, error) {
	status, err := remoteSwapStatus(sn.Status)
	if err != nil {
		return nil, err
	}
	return swap.FromSnapshot(swap.Snapshot{
		ID:              sn.ID,
		InitiatorID:     sn.InitiatorID,
		ReceiverID:      sn.ReceiverID,
		InitiatorBookID: sn.InitiatorBookID,
		ReceiverBookID:  sn.ReceiverBookID,
		Message:         sn.Message,
		Status:          status,
		MeetupLocation:  sn.MeetupLocation,
		MeetupTime:      sn.MeetupTime,
		Rating:          sn.Rating,
		RatedBy:         sn.RatedBy,
		CreatedAt:       sn.CreatedAt,
		UpdatedAt:       sn.UpdatedAt,
	}), nil
}

func ExtensionFromRemote(sn events.ExtensionSnapshot) (*extension.Request, error) {
	status, err := remoteExtensionStatus(sn.Status)
	if err != nil {
		return nil, err
	}
	return extension.FromSnapshot(extension.Snapshot{
		ID:          sn.ID,
		SwapID:      sn.SwapID,
		RequesterID: sn.RequesterID,
		Days:        sn.Days,
		Reason:      sn.Reason,
		Status:      status,
		AdminNotes:  sn.AdminNotes,
		CreatedAt:   sn.CreatedAt,
		ResolvedAt:  sn.ResolvedAt,
	}), nil
}
