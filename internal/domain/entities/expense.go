package entities

import "time"

type ExpenseType string

const (
	ExpenseTypeCapex ExpenseType = "capex"
	ExpenseTypeOpex  ExpenseType = "opex"
)

// Expense is a cost recorded against a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//   - GSI2 (asset_id-index): asset_id
//   - GSI3 (budget_id-index): budget_id
//
// Capex carries AssetID and never AccountingAccount; opex is the opposite.
type Expense struct {
	ID                string      `json:"id"`
	ProjectID         string      `json:"project_id"`
	BudgetID          *string     `json:"budget_id"`
	AssetID           *string     `json:"asset_id"`
	Description       string      `json:"description"`
	Amount            float64     `json:"amount"`
	Type              ExpenseType `json:"type"`
	Category          string      `json:"category"`
	Date              time.Time   `json:"date"`
	Notes             string      `json:"notes"`
	AccountingAccount *string     `json:"accounting_account"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// NFeData is what a fiscal document (NF-e) lookup returns to prefill an expense.
type NFeData struct {
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	Date           string  `json:"date"`
	Notes          string  `json:"notes,omitempty"`
	IsHomologation bool    `json:"is_homologation"`
}
