package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// INFeProvider looks up a fiscal document (NF-e) by its 44-digit access key.
//
// Implementations return errors wrapping entities.ErrIntegration when the
// provider cannot be reached.
type INFeProvider interface {
	Lookup(ctx context.Context, accessKey string) (entities.NFeData, error)
}
