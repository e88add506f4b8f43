package request

import "gestao_obras/internal/domain/entities"

type AccountingAccountRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
}

func (r AccountingAccountRequest) ToEntity() entities.AccountingAccount {
	return entities.AccountingAccount{Code: r.Code, Name: r.Name, Type: r.Type}
}

type AssetClassRequest struct {
	Code                           string `json:"code" validate:"required"`
	Name                           string `json:"name" validate:"required"`
	UsefulLife                     int    `json:"useful_life" validate:"gte=0"`
	CorporateUsefulLife            int    `json:"corporate_useful_life" validate:"gte=0"`
	AssetAccountCode               string `json:"asset_account_code"`
	AssetAccountDescription        string `json:"asset_account_description"`
	DepreciationAccountCode        string `json:"depreciation_account_code"`
	DepreciationAccountDescription string `json:"depreciation_account_description"`
	AmortizationAccountCode        string `json:"amortization_account_code"`
	AmortizationAccountDescription string `json:"amortization_account_description"`
	ResultAccountCode              string `json:"result_account_code"`
	ResultAccountDescription       string `json:"result_account_description"`
}

func (r AssetClassRequest) ToEntity() entities.AssetClass {
	return entities.AssetClass{
		Code:                           r.Code,
		Name:                           r.Name,
		UsefulLife:                     r.UsefulLife,
		CorporateUsefulLife:            r.CorporateUsefulLife,
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

type CostCenterRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (r CostCenterRequest) ToEntity() entities.CostCenter {
	return entities.CostCenter{Code: r.Code, Name: r.Name, Description: r.Description}
}

// Bulk payloads are validated item by item.
type BulkAccountingAccountsRequest struct {
	Items []AccountingAccountRequest `json:"items" validate:"required,min=1,dive"`
}

type BulkAssetClassesRequest struct {
	Items []AssetClassRequest `json:"items" validate:"required,min=1,dive"`
}

type BulkCostCentersRequest struct {
	Items []CostCenterRequest `json:"items" validate:"required,min=1,dive"`
}
