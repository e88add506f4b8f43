package entities

import "time"

// AssetStatus is the construction lifecycle of an asset in progress.
//
// The move to AssetStatusConcluido is the CPC-27 activation: it fixes the
// availability date and residual value, and depreciation starts from there.

type AssetStatus string

const (
	AssetStatusPlanejamento      AssetStatus = "planejamento"
	AssetStatusEmDesenvolvimento AssetStatus = "em_desenvolvimento"
	AssetStatusConcluido         AssetStatus = "concluido"
	AssetStatusParado            AssetStatus = "parado"
)

// Asset is a fixed asset built by a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Value is the declared base cost only; the capitalized cost basis adds the
// linked capex expenses and is computed on read.
type Asset struct {
	ID                  string      `json:"id"`
	ProjectID           string      `json:"project_id"`
	AssetNumber         string      `json:"asset_number"`
	TagNumber           string      `json:"tag_number"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	Value               float64     `json:"value"`
	Quantity            int         `json:"quantity"`
	Status              AssetStatus `json:"status"`
	StartDate           *time.Time  `json:"start_date,omitempty"`
	EndDate             *time.Time  `json:"end_date,omitempty"`
	AvailabilityDate    *time.Time  `json:"availability_date,omitempty"`
	ResidualValue       float64     `json:"residual_value"`
	UsefulLife          int         `json:"useful_life"`
	CorporateUsefulLife int         `json:"corporate_useful_life"`
	AssetClass          string      `json:"asset_class"`
	Notes               string      `json:"notes"`
	CostCenter          string      `json:"cost_center"`

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

// DepreciationStart returns the availability date, falling back to the start date.
func (a Asset) DepreciationStart() (time.Time, bool) {
	if a.AvailabilityDate != nil && !a.AvailabilityDate.IsZero() {
		return *a.AvailabilityDate, true
	}
	if a.StartDate != nil && !a.StartDate.IsZero() {
		return *a.StartDate, true
	}
	return time.Time{}, false
}

// IsActivated reports whether the CPC-27 activation already happened.
func (a Asset) IsActivated() bool {
	return a.Status == AssetStatusConcluido && a.AvailabilityDate != nil
}
