package response

import (
	"time"

	"bookswap-engine/internal/domain/extension"
	"bookswap-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExtensionResponse struct {
	ID          uuid.UUID  `json:"id"`
	SwapID      uuid.UUID  `json:"swapId"`
	RequesterID uuid.UUID  `json:"requester"`
	Days        int        `json:"days"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	AdminNotes  *string    `json:"adminNotes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

func fromExtensionView(v queries.ExtensionView) ExtensionResponse {
	return ExtensionResponse{
		ID:          v.ID,
		SwapID:      v.SwapID,
		RequesterID: v.RequesterID,
		Days:        v.Days,
		Reason:      v.Reason,
		Status:      v.Status,
		AdminNotes:  v.AdminNotes,
		CreatedAt:   v.CreatedAt,
		ResolvedAt:  v.ResolvedAt,
	}
}

func FromExtensionSnapshot(sn extension.Snapshot) *ExtensionResponse {
	return &ExtensionResponse{
		ID:          sn.ID,
		SwapID:      sn.SwapID,
		RequesterID: sn.RequesterID,
		Days:        sn.Days,
		Reason:      sn.Reason,
		Status:      sn.Status.String(),
		AdminNotes:  sn.AdminNotes,
		CreatedAt:   sn.CreatedAt,
		ResolvedAt:  sn.ResolvedAt,
	}
}
