package request

import (
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"
)

type AssetRequest struct {
	ProjectID           string `json:"project_id" validate:"required"`
	AssetNumber         string `json:"asset_number"`
	TagNumber           string `json:"tag_number"`
	Name                string `json:"name" validate:"required,max=200"`
	Description         string `json:"description"`
	Value               Amount `json:"value" validate:"gte=0"`
	Quantity            int    `json:"quantity" validate:"gte=0"`
	Status              string `json:"status" validate:"omitempty,oneof=planejamento em_desenvolvimento concluido parado"`
	StartDate           *Date  `json:"start_date"`
	EndDate             *Date  `json:"end_date"`
	UsefulLife          int    `json:"useful_life" validate:"gte=0"`
	CorporateUsefulLife int    `json:"corporate_useful_life" validate:"gte=0"`
	AssetClass          string `json:"asset_class"`
	Notes               string `json:"notes"`
	CostCenter          string `json:"cost_center"`

	AssetAccountCode               string `json:"asset_account_code"`
	AssetAccountDescription        string `json:"asset_account_description"`
	DepreciationAccountCode        string `json:"depreciation_account_code"`
	DepreciationAccountDescription string `json:"depreciation_account_description"`
	AmortizationAccountCode        string `json:"amortization_account_code"`
	AmortizationAccountDescription string `json:"amortization_account_description"`
	ResultAccountCode              string `json:"result_account_code"`
	ResultAccountDescription       string `json:"result_account_description"`
}

func (r AssetRequest) ToInput() usecase.AssetInput {
	return usecase.AssetInput{
		ProjectID:                      r.ProjectID,
		AssetNumber:                    r.AssetNumber,
		TagNumber:                      r.TagNumber,
		Name:                           r.Name,
		Description:                    r.Description,
		Value:                          float64(r.Value),
		Quantity:                       r.Quantity,
		Status:                         entities.AssetStatus(r.Status),
		StartDate:                      r.StartDate.Ptr(),
		EndDate:                        r.EndDate.Ptr(),
		UsefulLife:                     r.UsefulLife,
		CorporateUsefulLife:            r.CorporateUsefulLife,
		AssetClass:                     r.AssetClass,
		Notes:                          r.Notes,
		CostCenter:                     r.CostCenter,
		AssetAccountCode:               r.AssetAccountCode,
		AssetAccountDescription:        r.AssetAccountDescription,
		DepreciationAccountCode:        r.DepreciationAccountCode,
		DepreciationAccountDescription: r.DepreciationAccountDescription,
		AmortizationAccountCode:        r.AmortizationAccountCode,
		AmortizationAccountDescription: r.AmortizationAccountDescription,
		ResultAccountCode:              r.ResultAccountCode,
		ResultAccountDescription:       r.ResultAccountDescription,
	}
}

// ActivateAssetRequest carries the CPC-27 activation data.
type ActivateAssetRequest struct {
	AvailabilityDate Date   `json:"availability_date" validate:"required"`
	ResidualValue    Amount `json:"residual_value" validate:"gte=0"`
}

func (r ActivateAssetRequest) ToInput() usecase.ActivationInput {
	return usecase.ActivationInput{
		AvailabilityDate: r.AvailabilityDate.Time,
		ResidualValue:    float64(r.ResidualValue),
	}
}
