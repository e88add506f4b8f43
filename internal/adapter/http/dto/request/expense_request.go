package request

import (
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"
)

type ExpenseRequest struct {
	ProjectID         string  `json:"project_id" validate:"required"`
	BudgetID          *string `json:"budget_id"`
	AssetID           *string `json:"asset_id"`
	Description       string  `json:"description" validate:"required"`
	Amount            Amount  `json:"amount" validate:"gt=0"`
	Type              string  `json:"type" validate:"required,oneof=capex opex"`
	Category          string  `json:"category"`
	Date              Date    `json:"date" validate:"required"`
	Notes             string  `json:"notes"`
	AccountingAccount *string `json:"accounting_account"`
}

func (r ExpenseRequest) ToInput() usecase.ExpenseInput {
	return usecase.ExpenseInput{
		ProjectID:         r.ProjectID,
		BudgetID:          r.BudgetID,
		AssetID:           r.AssetID,
		Description:       r.Description,
		Amount:            float64(r.Amount),
		Type:              entities.ExpenseType(r.Type),
		Category:          r.Category,
		Date:              r.Date.Time,
		Notes:             r.Notes,
		AccountingAccount: r.AccountingAccount,
	}
}

type LinkExpenseToAssetRequest struct {
	AssetID string `json:"asset_id" validate:"required"`
}

type LinkExpensesToBudgetRequest struct {
	ExpenseIDs []string `json:"expense_ids" validate:"required,min=1,dive,required"`
}

type NFeLookupRequest struct {
	AccessKey string `json:"access_key" validate:"required"`
}
