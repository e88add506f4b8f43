package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// IInventoryRepository abstracts DynamoDB persistence for InventorySchedule.

type IInventoryRepository interface {
	Create(ctx context.Context, s entities.InventorySchedule) (entities.InventorySchedule, error)
	GetByID(ctx context.Context, id string) (entities.InventorySchedule, error)
	List(ctx context.Context) ([]entities.InventorySchedule, error)
	Update(ctx context.Context, s entities.InventorySchedule) (entities.InventorySchedule, error)
}
