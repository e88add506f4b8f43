package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type ExpenseResponse struct {
	ID                string    `json:"id"`
	ProjectID         string    `json:"project_id"`
	BudgetID          *string   `json:"budget_id"`
	AssetID           *string   `json:"asset_id"`
	Description       string    `json:"description"`
	Amount            float64   `json:"amount"`
	Type              string    `json:"type"`
	Category          string    `json:"category"`
	Date              time.Time `json:"date"`
	Notes             string    `json:"notes"`
	AccountingAccount *string   `json:"accounting_account"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:                e.ID,
		ProjectID:         e.ProjectID,
		BudgetID:          e.BudgetID,
		AssetID:           e.AssetID,
		Description:       e.Description,
		Amount:            e.Amount,
		Type:              string(e.Type),
		Category:          e.Category,
		Date:              e.Date,
		Notes:             e.Notes,
		AccountingAccount: e.AccountingAccount,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromExpenses(es []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromExpense(e))
	}
	return out
}

type BudgetResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PlannedAmount  float64   `json:"planned_amount"`
	RealizedAmount float64   `json:"realized_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:             b.ID,
		ProjectID:      b.ProjectID,
		Name:           b.Name,
		Description:    b.Description,
		PlannedAmount:  b.PlannedAmount,
		RealizedAmount: b.RealizedAmount,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func FromBudgets(bs []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBudget(b))
	}
	return out
}

type BulkCreateResponse struct {
	Count int `json:"count"`
}
