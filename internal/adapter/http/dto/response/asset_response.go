package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type AssetResponse struct {
	ID                  string     `json:"id"`
	ProjectID           string     `json:"project_id"`
	AssetNumber         string     `json:"asset_number"`
	TagNumber           string     `json:"tag_number"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Value               float64    `json:"value"`
	Quantity            int        `json:"quantity"`
	Status              string     `json:"status"`
	Activated           bool       `json:"activated"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	AvailabilityDate    *time.Time `json:"availability_date,omitempty"`
	ResidualValue       float64    `json:"residual_value"`
	UsefulLife          int        `json:"useful_life"`
	CorporateUsefulLife int        `json:"corporate_useful_life"`
	AssetClass          string     `json:"asset_class"`
	Notes               string     `json:"notes"`
	CostCenter          string     `json:"cost_center"`

	AssetAccountCode               string `json:"asset_account_code"`
	AssetAccountDescription        string `json:"asset_account_description"`
	DepreciationAccountCode        string `json:"depreciation_account_code"`
	DepreciationAccountDescription string `json:"depreciation_account_description"`
	AmortizationAccountCode        string `json:"amortization_account_code"`
	AmortizationAccountDescription string `json:"amortization_account_description"`
	ResultAccountCode              string `json:"result_account_code"`
	ResultAccountDescription       string `json:"result_account_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAsset(a entities.Asset) AssetResponse {
	return AssetResponse{
		ID:                             a.ID,
		ProjectID:                      a.ProjectID,
		AssetNumber:                    a.AssetNumber,
		TagNumber:                      a.TagNumber,
		Name:                           a.Name,
		Description:                    a.Description,
		Value:                          a.Value,
		Quantity:                       a.Quantity,
		Status:                         string(a.Status),
		Activated:                      a.IsActivated(),
		StartDate:                      a.StartDate,
		EndDate:                        a.EndDate,
		AvailabilityDate:               a.AvailabilityDate,
		ResidualValue:                  a.ResidualValue,
		UsefulLife:                     a.UsefulLife,
		CorporateUsefulLife:            a.CorporateUsefulLife,
		AssetClass:                     a.AssetClass,
		Notes:                          a.Notes,
		CostCenter:                     a.CostCenter,
		AssetAccountCode:               a.AssetAccountCode,
		AssetAccountDescription:        a.AssetAccountDescription,
		DepreciationAccountCode:        a.DepreciationAccountCode,
		DepreciationAccountDescription: a.DepreciationAccountDescription,
		AmortizationAccountCode:        a.AmortizationAccountCode,
		AmortizationAccountDescription: a.AmortizationAccountDescription,
		ResultAccountCode:              a.ResultAccountCode,
		ResultAccountDescription:       a.ResultAccountDescription,
		CreatedAt:                      a.CreatedAt,
		UpdatedAt:                      a.UpdatedAt,
	}
}

func FromAssets(as []entities.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAsset(a))
	}
	return out
}

type NextAssetNumberResponse struct {
	AssetNumber string `json:"asset_number"`
}
