package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type InventoryResultResponse struct {
	AssetID       string `json:"asset_id"`
	NewCostCenter string `json:"new_cost_center,omitempty"`
	Verified      bool   `json:"verified"`
}

type InventoryScheduleResponse struct {
	ID          string                    `json:"id"`
	RequesterID string                    `json:"requester_id"`
	AssetIDs    []string                  `json:"asset_ids"`
	UserIDs     []string                  `json:"user_ids"`
	Date        time.Time                 `json:"date"`
	Notes       string                    `json:"notes"`
	Status      string                    `json:"status"`
	Results     []InventoryResultResponse `json:"results"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

func FromInventorySchedule(s entities.InventorySchedule) InventoryScheduleResponse {
	results := make([]InventoryResultResponse, 0, len(s.Results))
	for _, r := range s.Results {
		results = append(results, InventoryResultResponse{AssetID: r.AssetID, NewCostCenter: r.NewCostCenter, Verified: r.Verified})
	}
	return InventoryScheduleResponse{
		ID:          s.ID,
		RequesterID: s.RequesterID,
		AssetIDs:    s.AssetIDs,
		UserIDs:     s.UserIDs,
		Date:        s.Date,
		Notes:       s.Notes,
		Status:      string(s.Status),
		Results:     results,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromInventorySchedules(ss []entities.InventorySchedule) []InventoryScheduleResponse {
	out := make([]InventoryScheduleResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromInventorySchedule(s))
	}
	return out
}
