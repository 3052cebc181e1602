package response

import (
	"time"

	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type SwapResponse struct {
	ID              uuid.UUID           `json:"id"`
	InitiatorID     uuid.UUID           `json:"initiator"`
	ReceiverID      uuid.UUID           `json:"receiver"`
	InitiatorBookID uuid.UUID           `json:"initiatorBook"`
	ReceiverBookID  *uuid.UUID          `json:"receiverBook,omitempty"`
	Message         string              `json:"message,omitempty"`
	Status          string              `json:"status"`
	MeetupLocation  *string             `json:"meetupLocation,omitempty"`
	MeetupTime      *time.Time          `json:"meetupTime,omitempty"`
	HasActiveToken  bool                `json:"hasActiveToken"`
	Rating          *int                `json:"rating,omitempty"`
	RatedBy         *uuid.UUID          `json:"ratedBy,omitempty"`
	Extensions      []ExtensionResponse `json:"extensions,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type SwapListItemResponse struct {
	ID             uuid.UUID  `json:"id"`
	InitiatorID    uuid.UUID  `json:"initiator"`
	ReceiverID     uuid.UUID  `json:"receiver"`
	Status         string     `json:"status"`
	MeetupLocation *string    `json:"meetupLocation,omitempty"`
	MeetupTime     *time.Time `json:"meetupTime,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type SwapListResponse struct {
	Items      []SwapListItemResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

type TokenResponse struct {
	SwapID   uuid.UUID `json:"swapId"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issuedAt"`
}

func FromSwapView(v *queries.SwapView) *SwapResponse {
	resp := &SwapResponse{
		ID:              v.ID,
		InitiatorID:     v.InitiatorID,
		ReceiverID:      v.ReceiverID,
		InitiatorBookID: v.InitiatorBookID,
		ReceiverBookID:  v.ReceiverBookID,
		Message:         v.Message,
		Status:          v.Status,
		MeetupLocation:  v.MeetupLocation,
		MeetupTime:      v.MeetupTime,
		HasActiveToken:  v.HasActiveToken,
		Rating:          v.Rating,
		RatedBy:         v.RatedBy,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	for _, ext := range v.Extensions {
		resp.Extensions = append(resp.Extensions, fromExtensionView(ext))
	}
	return resp
}

// FromSwapSnapshot builds a mutation response straight from the command
// result, without a second read.
func FromSwapSnapshot(sn swap.Snapshot) *SwapResponse {
	return &SwapResponse{
		ID:              sn.ID,
		InitiatorID:     sn.InitiatorID,
		ReceiverID:      sn.ReceiverID,
		InitiatorBookID: sn.InitiatorBookID,
		ReceiverBookID:  sn.ReceiverBookID,
		Message:         sn.Message,
		Status:          sn.Status.String(),
		MeetupLocation:  sn.MeetupLocation,
		MeetupTime:      sn.MeetupTime,
		HasActiveToken:  sn.Token != nil && !sn.Token.Consumed(),
		Rating:          sn.Rating,
		RatedBy:         sn.RatedBy,
		CreatedAt:       sn.CreatedAt,
		UpdatedAt:       sn.UpdatedAt,
	}
}

func FromSwapList(items []*queries.SwapListItem, next *queries.Cursor) *SwapListResponse {
	resp := &SwapListResponse{Items: make([]SwapListItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, SwapListItemResponse{
			ID:             item.ID,
			InitiatorID:    item.InitiatorID,
			ReceiverID:     item.ReceiverID,
			Status:         item.Status,
			MeetupLocation: item.MeetupLocation,
			MeetupTime:     item.MeetupTime,
			UpdatedAt:      item.UpdatedAt,
		})
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

func FromTokenView(v queries.TokenView) *TokenResponse {
	return &TokenResponse{
		SwapID:   v.SwapID,
		Token:    v.Token,
		IssuedAt: v.IssuedAt,
	}
}
