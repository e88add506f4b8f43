package usecase

import (
	"context"
	"fmt"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidReferenceCode   = fmt.Errorf("%w: code is required", entities.ErrValidation)
	ErrInvalidReferenceName   = fmt.Errorf("%w: name is required", entities.ErrValidation)
	ErrInvalidClassLife       = fmt.Errorf("%w: useful life must be zero or more years", entities.ErrValidation)
	ErrEmptyBatch             = fmt.Errorf("%w: batch is empty", entities.ErrValidation)
	ErrReferenceAlreadyExists = fmt.Errorf("%w: code already registered", entities.ErrInvalidState)
	ErrAccountNotFound        = fmt.Errorf("%w: accounting account not found", entities.ErrNotFound)
	ErrCostCenterNotFound     = fmt.Errorf("%w: cost center not found", entities.ErrNotFound)
)

// IAccountingUseCase maintains the chart of accounts, asset classes and cost
// centers. Every record is keyed by its code.
type IAccountingUseCase interface {
	ListAccounts(ctx context.Context) ([]entities.AccountingAccount, error)
	CreateAccount(ctx context.Context, a entities.AccountingAccount) (entities.AccountingAccount, error)
	UpdateAccount(ctx context.Context, code string, a entities.AccountingAccount) (entities.AccountingAccount, error)
	DeleteAccount(ctx context.Context, code string) error
	BulkCreateAccounts(ctx context.Context, accounts []entities.AccountingAccount) (int, error)

	ListAssetClasses(ctx context.Context) ([]entities.AssetClass, error)
	CreateAssetClass(ctx context.Context, c entities.AssetClass) (entities.AssetClass, error)
	UpdateAssetClass(ctx context.Context, code string, c entities.AssetClass) (entities.AssetClass, error)
	DeleteAssetClass(ctx context.Context, code string) error
	BulkCreateAssetClasses(ctx context.Context, classes []entities.AssetClass) (int, error)

	ListCostCenters(ctx context.Context) ([]entities.CostCenter, error)
	CreateCostCenter(ctx context.Context, c entities.CostCenter) (entities.CostCenter, error)
	UpdateCostCenter(ctx context.Context, code string, c entities.CostCenter) (entities.CostCenter, error)
	DeleteCostCenter(ctx context.Context, code string) error
	BulkCreateCostCenters(ctx context.Context, centers []entities.CostCenter) (int, error)
}

type AccountingUseCase struct {
	accounts interfaces.IAccountingAccountRepository
	classes  interfaces.IAssetClassRepository
	centers  interfaces.ICostCenterRepository
}

var _ IAccountingUseCase = (*AccountingUseCase)(nil)

func NewAccountingUseCase(
	accounts interfaces.IAccountingAccountRepository,
	classes interfaces.IAssetClassRepository,
	centers interfaces.ICostCenterRepository,
) *AccountingUseCase {
	return &AccountingUseCase{accounts: accounts, classes: classes, centers: centers}
}

// Accounting accounts

func (u *AccountingUseCase) ListAccounts(ctx context.Context) ([]entities.AccountingAccount, error) {
	return u.accounts.List(ctx)
}

func (u *AccountingUseCase) CreateAccount(ctx context.Context, a entities.AccountingAccount) (entities.AccountingAccount, error) {
	a, err := normalizeAccount(a)
	if err != nil {
		return entities.AccountingAccount{}, err
	}
	existing, err := u.accounts.GetByCode(ctx, a.Code)
	if err != nil {
		return entities.AccountingAccount{}, err
	}
	if existing.Code != "" {
		return entities.AccountingAccount{}, ErrReferenceAlreadyExists
	}
	now := time.Now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now
	return u.accounts.Put(ctx, a)
}

func (u *AccountingUseCase) UpdateAccount(ctx context.Context, code string, a entities.AccountingAccount) (entities.AccountingAccount, error) {
	a.Code = code
	a, err := normalizeAccount(a)
	if err != nil {
		return entities.AccountingAccount{}, err
	}
	existing, err := u.accounts.GetByCode(ctx, a.Code)
	if err != nil {
		return entities.AccountingAccount{}, err
	}
	if existing.Code == "" {
		return entities.AccountingAccount{}, ErrAccountNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	return u.accounts.Put(ctx, a)
}

func (u *AccountingUseCase) DeleteAccount(ctx context.Context, code string) error {
	return deleteByCode(ctx, code, u.accounts.Delete, ErrAccountNotFound)
}

func (u *AccountingUseCase) BulkCreateAccounts(ctx context.Context, accounts []entities.AccountingAccount) (int, error) {
	if len(accounts) == 0 {
		return 0, ErrEmptyBatch
	}
	now := time.Now().UTC()
	batch := make([]entities.AccountingAccount, 0, len(accounts))
	for _, a := range accounts {
		a, err := normalizeAccount(a)
		if err != nil {
			return 0, err
		}
		a.CreatedAt, a.UpdatedAt = now, now
		batch = append(batch, a)
	}
	if err := u.accounts.PutBatch(ctx, batch); err != nil {
		return 0, err
	}
	log.Info().Str("component", "accounting").Int("count", len(batch)).Msg("accounts imported")
	return len(batch), nil
}

// Asset classes

func (u *AccountingUseCase) ListAssetClasses(ctx context.Context) ([]entities.AssetClass, error) {
	return u.classes.List(ctx)
}

func (u *AccountingUseCase) CreateAssetClass(ctx context.Context, c entities.AssetClass) (entities.AssetClass, error) {
	c, err := normalizeAssetClass(c)
	if err != nil {
		return entities.AssetClass{}, err
	}
	existing, err := u.classes.GetByCode(ctx, c.Code)
	if err != nil {
		return entities.AssetClass{}, err
	}
	if existing.Code != "" {
		return entities.AssetClass{}, ErrReferenceAlreadyExists
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	return u.classes.Put(ctx, c)
}

// UpdateAssetClass replaces the class stored under code. When c carries a
// different code the class is renamed: it is written under the new code and
// the old record is removed.
func (u *AccountingUseCase) UpdateAssetClass(ctx context.Context, code string, c entities.AssetClass) (entities.AssetClass, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.AssetClass{}, ErrInvalidReferenceCode
	}
	if strings.TrimSpace(c.Code) == "" {
		c.Code = code
	}
	c, err := normalizeAssetClass(c)
	if err != nil {
		return entities.AssetClass{}, err
	}

	existing, err := u.classes.GetByCode(ctx, code)
	if err != nil {
		return entities.AssetClass{}, err
	}
	if existing.Code == "" {
		return entities.AssetClass{}, ErrAssetClassNotFound
	}
	if c.Code != code {
		clash, err := u.classes.GetByCode(ctx, c.Code)
		if err != nil {
			return entities.AssetClass{}, err
		}
		if clash.Code != "" {
			return entities.AssetClass{}, ErrReferenceAlreadyExists
		}
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	saved, err := u.classes.Put(ctx, c)
	if err != nil {
		return entities.AssetClass{}, err
	}
	if c.Code != code {
		if _, err := u.classes.Delete(ctx, code); err != nil {
			return entities.AssetClass{}, err
		}
		log.Info().Str("component", "accounting").Str("from", code).Str("to", c.Code).Msg("asset class renamed")
	}
	return saved, nil
}

func (u *AccountingUseCase) DeleteAssetClass(ctx context.Context, code string) error {
	return deleteByCode(ctx, code, u.classes.Delete, ErrAssetClassNotFound)
}

func (u *AccountingUseCase) BulkCreateAssetClasses(ctx context.Context, classes []entities.AssetClass) (int, error) {
	if len(classes) == 0 {
		return 0, ErrEmptyBatch
	}
	now := time.Now().UTC()
	batch := make([]entities.AssetClass, 0, len(classes))
	for _, c := range classes {
		c, err := normalizeAssetClass(c)
		if err != nil {
			return 0, err
		}
		c.CreatedAt, c.UpdatedAt = now, now
		batch = append(batch, c)
	}
	if err := u.classes.PutBatch(ctx, batch); err != nil {
		return 0, err
	}
	log.Info().Str("component", "accounting").Int("count", len(batch)).Msg("asset classes imported")
	return len(batch), nil
}

// Cost centers

func (u *AccountingUseCase) ListCostCenters(ctx context.Context) ([]entities.CostCenter, error) {
	return u.centers.List(ctx)
}

func (u *AccountingUseCase) CreateCostCenter(ctx context.Context, c entities.CostCenter) (entities.CostCenter, error) {
	c, err := normalizeCostCenter(c)
	if err != nil {
		return entities.CostCenter{}, err
	}
	existing, err := u.centers.GetByCode(ctx, c.Code)
	if err != nil {
		return entities.CostCenter{}, err
	}
	if existing.Code != "" {
		return entities.CostCenter{}, ErrReferenceAlreadyExists
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	return u.centers.Put(ctx, c)
}

func (u *AccountingUseCase) UpdateCostCenter(ctx context.Context, code string, c entities.CostCenter) (entities.CostCenter, error) {
	c.Code = code
	c, err := normalizeCostCenter(c)
	if err != nil {
		return entities.CostCenter{}, err
	}
	existing, err := u.centers.GetByCode(ctx, c.Code)
	if err != nil {
		return entities.CostCenter{}, err
	}
	if existing.Code == "" {
		return entities.CostCenter{}, ErrCostCenterNotFound
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.centers.Put(ctx, c)
}

func (u *AccountingUseCase) DeleteCostCenter(ctx context.Context, code string) error {
	return deleteByCode(ctx, code, u.centers.Delete, ErrCostCenterNotFound)
}

func (u *AccountingUseCase) BulkCreateCostCenters(ctx context.Context, centers []entities.CostCenter) (int, error) {
	if len(centers) == 0 {
		return 0, ErrEmptyBatch
	}
	now := time.Now().UTC()
	batch := make([]entities.CostCenter, 0, len(centers))
	for _, c := range centers {
		c, err := normalizeCostCenter(c)
		if err != nil {
			return 0, err
		}
		c.CreatedAt, c.UpdatedAt = now, now
		batch = append(batch, c)
	}
	if err := u.centers.PutBatch(ctx, batch); err != nil {
		return 0, err
	}
	log.Info().Str("component", "accounting").Int("count", len(batch)).Msg("cost centers imported")
	return len(batch), nil
}

func deleteByCode(ctx context.Context, code string, del func(context.Context, string) (bool, error), notFound error) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrInvalidReferenceCode
	}
	deleted, err := del(ctx, code)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound
	}
	return nil
}

func normalizeAccount(a entities.AccountingAccount) (entities.AccountingAccount, error) {
	a.Code = strings.TrimSpace(a.Code)
	a.Name = strings.TrimSpace(a.Name)
	a.Type = strings.TrimSpace(a.Type)
	if a.Code == "" {
		return a, ErrInvalidReferenceCode
	}
	if a.Name == "" {
		return a, ErrInvalidReferenceName
	}
	return a, nil
}

func normalizeAssetClass(c entities.AssetClass) (entities.AssetClass, error) {
	c.Code = strings.TrimSpace(c.Code)
	c.Name = strings.TrimSpace(c.Name)
	if c.Code == "" {
		return c, ErrInvalidReferenceCode
	}
	if c.Name == "" {
		return c, ErrInvalidReferenceName
	}
	if c.UsefulLife < 0 || c.CorporateUsefulLife < 0 {
		return c, ErrInvalidClassLife
	}
	return c, nil
}

func normalizeCostCenter(c entities.CostCenter) (entities.CostCenter, error) {
	c.Code = strings.TrimSpace(c.Code)
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	if c.Code == "" {
		return c, ErrInvalidReferenceCode
	}
	if c.Name == "" {
		return c, ErrInvalidReferenceName
	}
	return c, nil
}
