package request

import "gestao_obras/internal/usecase"

type BudgetRequest struct {
	ProjectID     string `json:"project_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	PlannedAmount Amount `json:"planned_amount" validate:"gte=0"`
}

func (r BudgetRequest) ToInput() usecase.BudgetInput {
	return usecase.BudgetInput{
		ProjectID:     r.ProjectID,
		Name:          r.Name,
		Description:   r.Description,
		PlannedAmount: float64(r.PlannedAmount),
	}
}
