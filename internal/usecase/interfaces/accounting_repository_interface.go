package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// Reference data is keyed by its business code, so Put is an upsert and
// PutBatch loads a whole chart in one call.

type IAccountingAccountRepository interface {
	Put(ctx context.Context, a entities.AccountingAccount) (entities.AccountingAccount, error)
	PutBatch(ctx context.Context, accounts []entities.AccountingAccount) error
	GetByCode(ctx context.Context, code string) (entities.AccountingAccount, error)
	List(ctx context.Context) ([]entities.AccountingAccount, error)
	Delete(ctx context.Context, code string) (bool, error)
}

type IAssetClassRepository interface {
	Put(ctx context.Context, c entities.AssetClass) (entities.AssetClass, error)
	PutBatch(ctx context.Context, classes []entities.AssetClass) error
	GetByCode(ctx context.Context, code string) (entities.AssetClass, error)
	List(ctx context.Context) ([]entities.AssetClass, error)
	Delete(ctx context.Context, code string) (bool, error)
}

type ICostCenterRepository interface {
	Put(ctx context.Context, c entities.CostCenter) (entities.CostCenter, error)
	PutBatch(ctx context.Context, centers []entities.CostCenter) error
	GetByCode(ctx context.Context, code string) (entities.CostCenter, error)
	List(ctx context.Context) ([]entities.CostCenter, error)
	Delete(ctx context.Context, code string) (bool, error)
}
