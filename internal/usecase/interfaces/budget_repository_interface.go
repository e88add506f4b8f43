package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for the legacy Budget records.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Budget, error)
}
