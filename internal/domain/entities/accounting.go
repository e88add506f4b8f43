package entities

import "time"

// AccountingAccount is an entry of the chart of accounts. Code is the PK.
type AccountingAccount struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssetClass groups assets and supplies their default lives and accounts.
type AssetClass struct {
	Code                           string    `json:"code"`
	Name                           string    `json:"name"`
	UsefulLife                     int       `json:"useful_life"`
	CorporateUsefulLife            int       `json:"corporate_useful_life"`
	AssetAccountCode               string    `json:"asset_account_code"`
	AssetAccountDescription        string    `json:"asset_account_description"`
	DepreciationAccountCode        string    `json:"depreciation_account_code"`
	DepreciationAccountDescription string    `json:"depreciation_account_description"`
	AmortizationAccountCode        string    `json:"amortization_account_code"`
	AmortizationAccountDescription string    `json:"amortization_account_description"`
	ResultAccountCode              string    `json:"result_account_code"`
	ResultAccountDescription       string    `json:"result_account_description"`
	CreatedAt                      time.Time `json:"created_at"`
	UpdatedAt                      time.Time `json:"updated_at"`
}

// CostCenter is an organizational code costs are attributed to.
type CostCenter struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
