package repository

import (
	"context"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
)

const (
	defaultAccountsTableName     = "accounting_accounts"
	defaultAssetClassesTableName = "asset_classes"
	defaultCostCentersTableName  = "cost_centers"
)

// Reference tables are keyed by their business code:
//   - PK: code (string)

type accountItem struct {
	Code      string `dynamodbav:"code"`
	Name      string `dynamodbav:"name"`
	Type      string `dynamodbav:"type"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type assetClassItem struct {
	Code                           string `dynamodbav:"code"`
	Name                           string `dynamodbav:"name"`
	UsefulLife                     int    `dynamodbav:"useful_life"`
	CorporateUsefulLife            int    `dynamodbav:"corporate_useful_life"`
	AssetAccountCode               string `dynamodbav:"asset_account_code"`
	AssetAccountDescription        string `dynamodbav:"asset_account_description"`
	DepreciationAccountCode        string `dynamodbav:"depreciation_account_code"`
	DepreciationAccountDescription string `dynamodbav:"depreciation_account_description"`
	AmortizationAccountCode        string `dynamodbav:"amortization_account_code"`
	AmortizationAccountDescription string `dynamodbav:"amortization_account_description"`
	ResultAccountCode              string `dynamodbav:"result_account_code"`
	ResultAccountDescription       string `dynamodbav:"result_account_description"`
	CreatedAt                      string `dynamodbav:"created_at"`
	UpdatedAt                      string `dynamodbav:"updated_at"`
}

type costCenterItem struct {
	Code        string `dynamodbav:"code"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// AccountingAccountDynamoRepository persists the chart of accounts.
type AccountingAccountDynamoRepository struct {
	t table
}

var _ interfaces.IAccountingAccountRepository = (*AccountingAccountDynamoRepository)(nil)

func NewAccountingAccountDynamoRepository(ddb DynamoAPI, tableName string) *AccountingAccountDynamoRepository {
	return &AccountingAccountDynamoRepository{t: newTable(ddb, tableName, defaultAccountsTableName, "code")}
}

func (r *AccountingAccountDynamoRepository) Put(ctx context.Context, a entities.AccountingAccount) (entities.AccountingAccount, error) {
	if err := r.t.upsert(ctx, toAccountItem(a)); err != nil {
		return entities.AccountingAccount{}, err
	}
	return a, nil
}

func (r *AccountingAccountDynamoRepository) PutBatch(ctx context.Context, accounts []entities.AccountingAccount) error {
	return r.t.batchPut(ctx, mapSlice(accounts, func(a entities.AccountingAccount) any { return toAccountItem(a) }))
}

func (r *AccountingAccountDynamoRepository) GetByCode(ctx context.Context, code string) (entities.AccountingAccount, error) {
	var it accountItem
	found, err := r.t.get(ctx, code, &it)
	if err != nil || !found {
		return entities.AccountingAccount{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountingAccountDynamoRepository) List(ctx context.Context) ([]entities.AccountingAccount, error) {
	items, err := scanAll[accountItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromAccountItem), nil
}

func (r *AccountingAccountDynamoRepository) Delete(ctx context.Context, code string) (bool, error) {
	return r.t.delete(ctx, code)
}

// AssetClassDynamoRepository persists asset classes.
type AssetClassDynamoRepository struct {
	t table
}

var _ interfaces.IAssetClassRepository = (*AssetClassDynamoRepository)(nil)

func NewAssetClassDynamoRepository(ddb DynamoAPI, tableName string) *AssetClassDynamoRepository {
	return &AssetClassDynamoRepository{t: newTable(ddb, tableName, defaultAssetClassesTableName, "code")}
}

func (r *AssetClassDynamoRepository) Put(ctx context.Context, c entities.AssetClass) (entities.AssetClass, error) {
	if err := r.t.upsert(ctx, toAssetClassItem(c)); err != nil {
		return entities.AssetClass{}, err
	}
	return c, nil
}

func (r *AssetClassDynamoRepository) PutBatch(ctx context.Context, classes []entities.AssetClass) error {
	return r.t.batchPut(ctx, mapSlice(classes, func(c entities.AssetClass) any { return toAssetClassItem(c) }))
}

func (r *AssetClassDynamoRepository) GetByCode(ctx context.Context, code string) (entities.AssetClass, error) {
	var it assetClassItem
	found, err := r.t.get(ctx, code, &it)
	if err != nil || !found {
		return entities.AssetClass{}, err
	}
	return fromAssetClassItem(it), nil
}

func (r *AssetClassDynamoRepository) List(ctx context.Context) ([]entities.AssetClass, error) {
	items, err := scanAll[assetClassItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromAssetClassItem), nil
}

func (r *AssetClassDynamoRepository) Delete(ctx context.Context, code string) (bool, error) {
	return r.t.delete(ctx, code)
}

// CostCenterDynamoRepository persists cost centers.
type CostCenterDynamoRepository struct {
	t table
}

var _ interfaces.ICostCenterRepository = (*CostCenterDynamoRepository)(nil)

func NewCostCenterDynamoRepository(ddb DynamoAPI, tableName string) *CostCenterDynamoRepository {
	return &CostCenterDynamoRepository{t: newTable(ddb, tableName, defaultCostCentersTableName, "code")}
}

func (r *CostCenterDynamoRepository) Put(ctx context.Context, c entities.CostCenter) (entities.CostCenter, error) {
	if err := r.t.upsert(ctx, toCostCenterItem(c)); err != nil {
		return entities.CostCenter{}, err
	}
	return c, nil
}

func (r *CostCenterDynamoRepository) PutBatch(ctx context.Context, centers []entities.CostCenter) error {
	return r.t.batchPut(ctx, mapSlice(centers, func(c entities.CostCenter) any { return toCostCenterItem(c) }))
}

func (r *CostCenterDynamoRepository) GetByCode(ctx context.Context, code string) (entities.CostCenter, error) {
	var it costCenterItem
	found, err := r.t.get(ctx, code, &it)
	if err != nil || !found {
		return entities.CostCenter{}, err
	}
	return fromCostCenterItem(it), nil
}

func (r *CostCenterDynamoRepository) List(ctx context.Context) ([]entities.CostCenter, error) {
	items, err := scanAll[costCenterItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromCostCenterItem), nil
}

func (r *CostCenterDynamoRepository) Delete(ctx context.Context, code string) (bool, error) {
	return r.t.delete(ctx, code)
}

func toAccountItem(a entities.AccountingAccount) accountItem {
	return accountItem{
		Code:      a.Code,
		Name:      a.Name,
		Type:      a.Type,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
}

func fromAccountItem(it accountItem) entities.AccountingAccount {
	return entities.AccountingAccount{
		Code:      it.Code,
		Name:      it.Name,
		Type:      it.Type,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func toAssetClassItem(c entities.AssetClass) assetClassItem {
	return assetClassItem{
		Code:                           c.Code,
		Name:                           c.Name,
		UsefulLife:                     c.UsefulLife,
		CorporateUsefulLife:            c.CorporateUsefulLife,
		AssetAccountCode:               c.AssetAccountCode,
		AssetAccountDescription:        c.AssetAccountDescription,
		DepreciationAccountCode:        c.DepreciationAccountCode,
		DepreciationAccountDescription: c.DepreciationAccountDescription,
		AmortizationAccountCode:        c.AmortizationAccountCode,
		AmortizationAccountDescription: c.AmortizationAccountDescription,
		ResultAccountCode:              c.ResultAccountCode,
		ResultAccountDescription:       c.ResultAccountDescription,
		CreatedAt:                      formatTime(c.CreatedAt),
		UpdatedAt:                      formatTime(c.UpdatedAt),
	}
}

func fromAssetClassItem(it assetClassItem) entities.AssetClass {
	return entities.AssetClass{
		Code:                           it.Code,
		Name:                           it.Name,
		UsefulLife:                     it.UsefulLife,
		CorporateUsefulLife:            it.CorporateUsefulLife,
		AssetAccountCode:               it.AssetAccountCode,
		AssetAccountDescription:        it.AssetAccountDescription,
		DepreciationAccountCode:        it.DepreciationAccountCode,
		DepreciationAccountDescription: it.DepreciationAccountDescription,
		AmortizationAccountCode:        it.AmortizationAccountCode,
		AmortizationAccountDescription: it.AmortizationAccountDescription,
		ResultAccountCode:              it.ResultAccountCode,
		ResultAccountDescription:       it.ResultAccountDescription,
		CreatedAt:                      parseTime(it.CreatedAt),
		UpdatedAt:                      parseTime(it.UpdatedAt),
	}
}

func toCostCenterItem(c entities.CostCenter) costCenterItem {
	return costCenterItem{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func fromCostCenterItem(it costCenterItem) entities.CostCenter {
	return entities.CostCenter{
		Code:        it.Code,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
