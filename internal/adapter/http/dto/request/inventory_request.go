package request

import (
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"
)

type InventoryScheduleRequest struct {
	AssetIDs []string `json:"asset_ids" validate:"required,min=1,dive,required"`
	UserIDs  []string `json:"user_ids" validate:"required,min=1,dive,required"`
	Date     Date     `json:"date" validate:"required"`
	Notes    string   `json:"notes"`
}

func (r InventoryScheduleRequest) ToInput() usecase.InventoryInput {
	return usecase.InventoryInput{
		AssetIDs: r.AssetIDs,
		UserIDs:  r.UserIDs,
		Date:     r.Date.Time,
		Notes:    r.Notes,
	}
}

type InventoryResultRequest struct {
	AssetID       string `json:"asset_id" validate:"required"`
	NewCostCenter string `json:"new_cost_center"`
	Verified      bool   `json:"verified"`
}

type InventoryResultsRequest struct {
	Results []InventoryResultRequest `json:"results" validate:"dive"`
}

func (r InventoryResultsRequest) ToEntities() []entities.InventoryResult {
	out := make([]entities.InventoryResult, 0, len(r.Results))
	for _, res := range r.Results {
		out = append(out, entities.InventoryResult{
			AssetID:       res.AssetID,
			NewCostCenter: res.NewCostCenter,
			Verified:      res.Verified,
		})
	}
	return out
}
