package repository

import (
	"context"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
)

const (
	defaultExpensesTableName = "expenses"
	expensesProjectIDIndex   = "project_id-index"
	expensesAssetIDIndex     = "asset_id-index"
	expensesBudgetIDIndex    = "budget_id-index"
)

// asset_id and budget_id are omitted when unset: GSI key attributes cannot
// hold empty strings, and the indexes stay sparse.
type expenseItem struct {
	ID                string `dynamodbav:"id"`
	ProjectID         string `dynamodbav:"project_id"`
	BudgetID          string `dynamodbav:"budget_id,omitempty"`
	AssetID           string `dynamodbav:"asset_id,omitempty"`
	Description       string `dynamodbav:"description"`
	Amount            string `dynamodbav:"amount"`
	Type              string `dynamodbav:"type"`
	Category          string `dynamodbav:"category"`
	Date              string `dynamodbav:"date"`
	Notes             string `dynamodbav:"notes"`
	AccountingAccount string `dynamodbav:"accounting_account,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//   - GSI: asset_id-index (PK: asset_id)
//   - GSI: budget_id-index (PK: budget_id)
type ExpenseDynamoRepository struct {
	t table
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb DynamoAPI, tableName string) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{t: newTable(ddb, tableName, defaultExpensesTableName, "id")}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	ok, err := r.t.put(ctx, toExpenseItem(e), false)
	if err != nil {
		return entities.Expense{}, err
	}
	if !ok {
		return entities.Expense{}, errDuplicateKey(r.t, e.ID)
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	var it expenseItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	items, err := scanAll[expenseItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromExpenseItem), nil
}

func (r *ExpenseDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Expense, error) {
	return r.listBy(ctx, expensesProjectIDIndex, "project_id", projectID)
}

func (r *ExpenseDynamoRepository) ListByAssetID(ctx context.Context, assetID string) ([]entities.Expense, error) {
	return r.listBy(ctx, expensesAssetIDIndex, "asset_id", assetID)
}

func (r *ExpenseDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Expense, error) {
	return r.listBy(ctx, expensesBudgetIDIndex, "budget_id", budgetID)
}

func (r *ExpenseDynamoRepository) listBy(ctx context.Context, index, attr, value string) ([]entities.Expense, error) {
	items, err := queryIndex[expenseItem](ctx, r.t, index, attr, value)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromExpenseItem), nil
}

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	ok, err := r.t.put(ctx, toExpenseItem(e), true)
	if err != nil || !ok {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.delete(ctx, id)
}

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:                e.ID,
		ProjectID:         e.ProjectID,
		BudgetID:          derefString(e.BudgetID),
		AssetID:           derefString(e.AssetID),
		Description:       e.Description,
		Amount:            floatToString(e.Amount),
		Type:              string(e.Type),
		Category:          e.Category,
		Date:              formatTime(e.Date),
		Notes:             e.Notes,
		AccountingAccount: derefString(e.AccountingAccount),
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	return entities.Expense{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		BudgetID:          strPtrOrNil(it.BudgetID),
		AssetID:           strPtrOrNil(it.AssetID),
		Description:       it.Description,
		Amount:            parseFloat(it.Amount),
		Type:              entities.ExpenseType(it.Type),
		Category:          it.Category,
		Date:              parseTime(it.Date),
		Notes:             it.Notes,
		AccountingAccount: strPtrOrNil(it.AccountingAccount),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
