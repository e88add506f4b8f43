package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Lookups that miss return a zero Project and a nil error; the usecase layer
// turns that into a not-found error.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}
