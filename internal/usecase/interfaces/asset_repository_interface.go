package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// IAssetRepository abstracts DynamoDB persistence for Asset.

type IAssetRepository interface {
	Create(ctx context.Context, a entities.Asset) (entities.Asset, error)
	GetByID(ctx context.Context, id string) (entities.Asset, error)
	List(ctx context.Context) ([]entities.Asset, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Asset, error)
	Update(ctx context.Context, a entities.Asset) (entities.Asset, error)
	UpdateCostCenter(ctx context.Context, id, costCenter string) (entities.Asset, error)
	Delete(ctx context.Context, id string) (bool, error)
}
