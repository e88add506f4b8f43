package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps one table in memory, keyed by the "id" or "code" attribute.
type fakeDynamo struct {
	items      map[string]map[string]types.AttributeValue
	pageSize   int
	batchCalls []int
	putErr     error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyValue(item map[string]types.AttributeValue) string {
	for _, k := range []string{"id", "code"} {
		if v, ok := item[k].(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	k := keyValue(in.Item)
	_, exists := f.items[k]
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(#pk)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	case "attribute_exists(#pk)":
		if !exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[keyValue(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	k := keyValue(in.Key)
	item, ok := f.items[k]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	item["cost_center"] = in.ExpressionAttributeValues[":cost_center"]
	item["updated_at"] = in.ExpressionAttributeValues[":updated_at"]
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	k := keyValue(in.Key)
	old := f.items[k]
	delete(f.items, k)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	attr := in.ExpressionAttributeNames["#k"]
	want := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, item := range f.items {
		if v, ok := item[attr].(*types.AttributeValueMemberS); ok && v.Value == want {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

// Scan pages by pageSize in key order, using the next offset as the continuation key.
func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	keys := make([]string, 0, len(f.items))
	for k := range f.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	all := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		all = append(all, f.items[k])
	}

	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN).Value)
	}
	if f.pageSize == 0 || start+f.pageSize >= len(all) {
		return &dynamodb.ScanOutput{Items: all[start:]}, nil
	}
	end := start + f.pageSize
	return &dynamodb.ScanOutput{
		Items: all[start:end],
		LastEvaluatedKey: map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		},
	}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	for _, reqs := range in.RequestItems {
		f.batchCalls = append(f.batchCalls, len(reqs))
		for _, r := range reqs {
			f.items[keyValue(r.PutRequest.Item)] = r.PutRequest.Item
		}
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func TestProjectRepository_RoundTrip(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewProjectDynamoRepository(ddb, "")
	ctx := context.Background()

	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	p := entities.Project{
		ID:               "p-1",
		Code:             "OBRA-001",
		Name:             "Galpão",
		Status:           entities.ProjectStatusAguardandoEngenharia,
		StartDate:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EstimatedEndDate: &end,
		PlannedCapex:     70000.5,
		PlannedOpex:      30000,
		PlannedValue:     100000.5,
		ApprovalHistory: []entities.ApprovalEntry{
			{Status: entities.ProjectStatusAguardandoEngenharia, Date: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), User: "ana", Role: entities.RoleClassificacao},
		},
	}

	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	_, err = repo.Create(ctx, p)
	assert.ErrorIs(t, err, entities.ErrInvalidState)

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, p.PlannedValue, got.PlannedValue)
	assert.Equal(t, end, *got.EstimatedEndDate)
	require.Len(t, got.ApprovalHistory, 1)
	assert.Equal(t, entities.RoleClassificacao, got.ApprovalHistory[0].Role)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestProjectRepository_UpdateMissingReturnsZero(t *testing.T) {
	repo := NewProjectDynamoRepository(newFakeDynamo(), "projects")

	got, err := repo.Update(context.Background(), entities.Project{ID: "ghost"})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestProjectRepository_ListFollowsPages(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.pageSize = 2
	repo := NewProjectDynamoRepository(ddb, "")
	for _, id := range []string{"p-1", "p-2", "p-3", "p-4", "p-5"} {
		_, err := repo.Create(context.Background(), entities.Project{ID: id})
		require.NoError(t, err)
	}

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestProjectRepository_Delete(t *testing.T) {
	repo := NewProjectDynamoRepository(newFakeDynamo(), "")
	_, err := repo.Create(context.Background(), entities.Project{ID: "p-1"})
	require.NoError(t, err)

	deleted, err := repo.Delete(context.Background(), "p-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), "p-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestExpenseRepository_SparseIndexes(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewExpenseDynamoRepository(ddb, "")
	ctx := context.Background()
	asset := "a-1"
	account := "3.1.01"

	_, err := repo.Create(ctx, entities.Expense{ID: "e-1", ProjectID: "p-1", Type: entities.ExpenseTypeCapex, AssetID: &asset, Amount: 1500.25})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Expense{ID: "e-2", ProjectID: "p-1", Type: entities.ExpenseTypeOpex, AccountingAccount: &account})
	require.NoError(t, err)

	_, hasAsset := ddb.items["e-2"]["asset_id"]
	assert.False(t, hasAsset, "empty asset_id must not be written")
	_, hasBudget := ddb.items["e-1"]["budget_id"]
	assert.False(t, hasBudget, "empty budget_id must not be written")

	byAsset, err := repo.ListByAssetID(ctx, "a-1")
	require.NoError(t, err)
	require.Len(t, byAsset, 1)
	assert.Equal(t, 1500.25, byAsset[0].Amount)
	assert.Nil(t, byAsset[0].BudgetID)

	byProject, err := repo.ListByProjectID(ctx, "p-1")
	require.NoError(t, err)
	assert.Len(t, byProject, 2)
}

func TestAssetRepository_UpdateCostCenter(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewAssetDynamoRepository(ddb, "")
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.Asset{ID: "a-1", CostCenter: "CC-1", Value: 10})
	require.NoError(t, err)

	got, err := repo.UpdateCostCenter(ctx, "a-1", "CC-9")
	require.NoError(t, err)
	assert.Equal(t, "CC-9", got.CostCenter)
	assert.Equal(t, 10.0, got.Value)

	missing, err := repo.UpdateCostCenter(ctx, "a-2", "CC-9")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestAccountingRepository_PutBatchChunks(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewAccountingAccountDynamoRepository(ddb, "")

	accounts := make([]entities.AccountingAccount, 0, 30)
	for i := 0; i < 30; i++ {
		accounts = append(accounts, entities.AccountingAccount{Code: string(rune('A' + i)), Name: "conta"})
	}

	require.NoError(t, repo.PutBatch(context.Background(), accounts))
	assert.Equal(t, []int{25, 5}, ddb.batchCalls)
	assert.Len(t, ddb.items, 30)

	got, err := repo.GetByCode(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "conta", got.Name)
}

func TestCostCenterRepository_PutIsUpsert(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewCostCenterDynamoRepository(ddb, "")
	ctx := context.Background()

	_, err := repo.Put(ctx, entities.CostCenter{Code: "CC-1", Name: "Obras"})
	require.NoError(t, err)
	_, err = repo.Put(ctx, entities.CostCenter{Code: "CC-1", Name: "Obras civis"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Obras civis", list[0].Name)
}

func TestInventoryRepository_RoundTrip(t *testing.T) {
	repo := NewInventoryDynamoRepository(newFakeDynamo(), "")
	ctx := context.Background()

	s := entities.InventorySchedule{
		ID:       "s-1",
		AssetIDs: []string{"a-1"},
		UserIDs:  []string{"u-1"},
		Status:   entities.InventoryStatusWaitingApproval,
		Results:  []entities.InventoryResult{{AssetID: "a-1", NewCostCenter: "CC-2", Verified: true}},
	}
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, s.Results, got.Results)
	assert.Equal(t, s.Status, got.Status)
}

func TestRepository_PropagatesStoreErrors(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.putErr = errors.New("throttled")
	repo := NewBudgetDynamoRepository(ddb, "")

	_, err := repo.Create(context.Background(), entities.Budget{ID: "b-1"})
	assert.EqualError(t, err, "throttled")
}

func TestItemsUseStringNumbers(t *testing.T) {
	av, err := attributevalue.MarshalMap(toBudgetItem(entities.Budget{ID: "b-1", PlannedAmount: 0.1}))
	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "0.1"}, av["planned_amount"])
}
