package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for Expense.
//
// The secondary lookups back the rollups: project totals, asset cost basis
// and budget realized amounts are all summed from these lists.

type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Expense, error)
	ListByAssetID(ctx context.Context, assetID string) ([]entities.Expense, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) (bool, error)
}
