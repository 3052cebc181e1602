package request

import (
	"strings"

	"github.com/google/uuid"
)

type ProposeSwapRequest struct {
	InitiatorBookID uuid.UUID  `json:"initiator_book" binding:"required"`
	ReceiverID      uuid.UUID  `json:"receiver" binding:"required"`
	ReceiverBookID  *uuid.UUID `json:"receiver_book,omitempty"`
	Message         *string    `json:"message,omitempty"`
}

func (r ProposeSwapRequest) GetMessage() string {
	if r.Message == nil {
		return ""
	}
	return strings.TrimSpace(*r.Message)
}

type ConfirmSwapRequest struct {
	Token string `json:"token" binding:"required"`
}

type RateSwapRequest struct {
	Value int `json:"value" binding:"required,min=1,max=5"`
}

type ListSwapsQuery struct {
	Status    string `form:"status"`
	Direction string `form:"direction" binding:"omitempty,oneof=incoming outgoing"`
	Cursor    string `form:"cursor"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
}
