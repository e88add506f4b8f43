package repository

import (
	"context"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
)

const defaultInventoryTableName = "inventory_schedules"

type inventoryResultItem struct {
	AssetID       string `dynamodbav:"asset_id"`
	NewCostCenter string `dynamodbav:"new_cost_center,omitempty"`
	Verified      bool   `dynamodbav:"verified"`
}

type inventoryItem struct {
	ID          string                `dynamodbav:"id"`
	RequesterID string                `dynamodbav:"requester_id"`
	AssetIDs    []string              `dynamodbav:"asset_ids"`
	UserIDs     []string              `dynamodbav:"user_ids"`
	Date        string                `dynamodbav:"date"`
	Notes       string                `dynamodbav:"notes"`
	Status      string                `dynamodbav:"status"`
	Results     []inventoryResultItem `dynamodbav:"results"`
	CreatedAt   string                `dynamodbav:"created_at"`
	UpdatedAt   string                `dynamodbav:"updated_at"`
}

// InventoryDynamoRepository persists InventorySchedule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type InventoryDynamoRepository struct {
	t table
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb DynamoAPI, tableName string) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{t: newTable(ddb, tableName, defaultInventoryTableName, "id")}
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, s entities.InventorySchedule) (entities.InventorySchedule, error) {
	ok, err := r.t.put(ctx, toInventoryItem(s), false)
	if err != nil {
		return entities.InventorySchedule{}, err
	}
	if !ok {
		return entities.InventorySchedule{}, errDuplicateKey(r.t, s.ID)
	}
	return s, nil
}

func (r *InventoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.InventorySchedule, error) {
	var it inventoryItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.InventorySchedule{}, err
	}
	return fromInventoryItem(it), nil
}

func (r *InventoryDynamoRepository) List(ctx context.Context) ([]entities.InventorySchedule, error) {
	items, err := scanAll[inventoryItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromInventoryItem), nil
}

func (r *InventoryDynamoRepository) Update(ctx context.Context, s entities.InventorySchedule) (entities.InventorySchedule, error) {
	ok, err := r.t.put(ctx, toInventoryItem(s), true)
	if err != nil || !ok {
		return entities.InventorySchedule{}, err
	}
	return s, nil
}

func toInventoryItem(s entities.InventorySchedule) inventoryItem {
	return inventoryItem{
		ID:          s.ID,
		RequesterID: s.RequesterID,
		AssetIDs:    s.AssetIDs,
		UserIDs:     s.UserIDs,
		Date:        formatTime(s.Date),
		Notes:       s.Notes,
		Status:      string(s.Status),
		Results: mapSlice(s.Results, func(r entities.InventoryResult) inventoryResultItem {
			return inventoryResultItem{AssetID: r.AssetID, NewCostCenter: r.NewCostCenter, Verified: r.Verified}
		}),
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

func fromInventoryItem(it inventoryItem) entities.InventorySchedule {
	return entities.InventorySchedule{
		ID:          it.ID,
		RequesterID: it.RequesterID,
		AssetIDs:    it.AssetIDs,
		UserIDs:     it.UserIDs,
		Date:        parseTime(it.Date),
		Notes:       it.Notes,
		Status:      entities.InventoryStatus(it.Status),
		Results: mapSlice(it.Results, func(r inventoryResultItem) entities.InventoryResult {
			return entities.InventoryResult{AssetID: r.AssetID, NewCostCenter: r.NewCostCenter, Verified: r.Verified}
		}),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
