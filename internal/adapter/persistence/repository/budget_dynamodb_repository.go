package repository

import (
	"context"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetsProjectIDIndex   = "project_id-index"
)

// realized_amount is not stored; it is summed from expenses on read.
type budgetItem struct {
	ID            string `dynamodbav:"id"`
	ProjectID     string `dynamodbav:"project_id"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description"`
	PlannedAmount string `dynamodbav:"planned_amount"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type BudgetDynamoRepository struct {
	t table
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoAPI, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{t: newTable(ddb, tableName, defaultBudgetsTableName, "id")}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	ok, err := r.t.put(ctx, toBudgetItem(b), false)
	if err != nil {
		return entities.Budget{}, err
	}
	if !ok {
		return entities.Budget{}, errDuplicateKey(r.t, b.ID)
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	var it budgetItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	items, err := scanAll[budgetItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromBudgetItem), nil
}

func (r *BudgetDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Budget, error) {
	items, err := queryIndex[budgetItem](ctx, r.t, budgetsProjectIDIndex, "project_id", projectID)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromBudgetItem), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:            b.ID,
		ProjectID:     b.ProjectID,
		Name:          b.Name,
		Description:   b.Description,
		PlannedAmount: floatToString(b.PlannedAmount),
		CreatedAt:     formatTime(b.CreatedAt),
		UpdatedAt:     formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:            it.ID,
		ProjectID:     it.ProjectID,
		Name:          it.Name,
		Description:   it.Description,
		PlannedAmount: parseFloat(it.PlannedAmount),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
