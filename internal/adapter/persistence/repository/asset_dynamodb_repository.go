package repository

import (
	"context"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAssetsTableName = "assets"
	assetsProjectIDIndex   = "project_id-index"
)

type assetItem struct {
	ID                  string `dynamodbav:"id"`
	ProjectID           string `dynamodbav:"project_id"`
	AssetNumber         string `dynamodbav:"asset_number"`
	TagNumber           string `dynamodbav:"tag_number"`
	Name                string `dynamodbav:"name"`
	Description         string `dynamodbav:"description"`
	Value               string `dynamodbav:"value"`
	Quantity            int    `dynamodbav:"quantity"`
	Status              string `dynamodbav:"status"`
	StartDate           string `dynamodbav:"start_date,omitempty"`
	EndDate             string `dynamodbav:"end_date,omitempty"`
	AvailabilityDate    string `dynamodbav:"availability_date,omitempty"`
	ResidualValue       string `dynamodbav:"residual_value"`
	UsefulLife          int    `dynamodbav:"useful_life"`
	CorporateUsefulLife int    `dynamodbav:"corporate_useful_life"`
	AssetClass          string `dynamodbav:"asset_class"`
	Notes               string `dynamodbav:"notes"`
	CostCenter          string `dynamodbav:"cost_center"`

	AssetAccountCode               string `dynamodbav:"asset_account_code"`
	AssetAccountDescription        string `dynamodbav:"asset_account_description"`
	DepreciationAccountCode        string `dynamodbav:"depreciation_account_code"`
	DepreciationAccountDescription string `dynamodbav:"depreciation_account_description"`
	AmortizationAccountCode        string `dynamodbav:"amortization_account_code"`
	AmortizationAccountDescription string `dynamodbav:"amortization_account_description"`
	ResultAccountCode              string `dynamodbav:"result_account_code"`
	ResultAccountDescription       string `dynamodbav:"result_account_description"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AssetDynamoRepository persists Asset entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type AssetDynamoRepository struct {
	t table
}

var _ interfaces.IAssetRepository = (*AssetDynamoRepository)(nil)

func NewAssetDynamoRepository(ddb DynamoAPI, tableName string) *AssetDynamoRepository {
	return &AssetDynamoRepository{t: newTable(ddb, tableName, defaultAssetsTableName, "id")}
}

func (r *AssetDynamoRepository) Create(ctx context.Context, a entities.Asset) (entities.Asset, error) {
	ok, err := r.t.put(ctx, toAssetItem(a), false)
	if err != nil {
		return entities.Asset{}, err
	}
	if !ok {
		return entities.Asset{}, errDuplicateKey(r.t, a.ID)
	}
	return a, nil
}

func (r *AssetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Asset, error) {
	var it assetItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Asset{}, err
	}
	return fromAssetItem(it), nil
}

func (r *AssetDynamoRepository) List(ctx context.Context) ([]entities.Asset, error) {
	items, err := scanAll[assetItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromAssetItem), nil
}

func (r *AssetDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Asset, error) {
	items, err := queryIndex[assetItem](ctx, r.t, assetsProjectIDIndex, "project_id", projectID)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromAssetItem), nil
}

func (r *AssetDynamoRepository) Update(ctx context.Context, a entities.Asset) (entities.Asset, error) {
	ok, err := r.t.put(ctx, toAssetItem(a), true)
	if err != nil || !ok {
		return entities.Asset{}, err
	}
	return a, nil
}

// UpdateCostCenter moves an asset to another cost center in place. A missing
// asset yields a zero value.
func (r *AssetDynamoRepository) UpdateCostCenter(ctx context.Context, id, costCenter string) (entities.Asset, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.t.name),
		Key:                 r.t.keyOf(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #cost_center = :cost_center, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cost_center": &types.AttributeValueMemberS{Value: costCenter},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#cost_center": "cost_center",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Asset{}, nil
		}
		return entities.Asset{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Asset{}, nil
	}
	var it assetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Asset{}, err
	}
	return fromAssetItem(it), nil
}

func (r *AssetDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.delete(ctx, id)
}

func toAssetItem(a entities.Asset) assetItem {
	return assetItem{
		ID:                             a.ID,
		ProjectID:                      a.ProjectID,
		AssetNumber:                    a.AssetNumber,
		TagNumber:                      a.TagNumber,
		Name:                           a.Name,
		Description:                    a.Description,
		Value:                          floatToString(a.Value),
		Quantity:                       a.Quantity,
		Status:                         string(a.Status),
		StartDate:                      formatTimePtr(a.StartDate),
		EndDate:                        formatTimePtr(a.EndDate),
		AvailabilityDate:               formatTimePtr(a.AvailabilityDate),
		ResidualValue:                  floatToString(a.ResidualValue),
		UsefulLife:                     a.UsefulLife,
		CorporateUsefulLife:            a.CorporateUsefulLife,
		AssetClass:                     a.AssetClass,
		Notes:                          a.Notes,
		CostCenter:                     a.CostCenter,
		AssetAccountCode:               a.AssetAccountCode,
		AssetAccountDescription:        a.AssetAccountDescription,
		DepreciationAccountCode:        a.DepreciationAccountCode,
		DepreciationAccountDescription: a.DepreciationAccountDescription,
		AmortizationAccountCode:        a.AmortizationAccountCode,
		AmortizationAccountDescription: a.AmortizationAccountDescription,
		ResultAccountCode:              a.ResultAccountCode,
		ResultAccountDescription:       a.ResultAccountDescription,
		CreatedAt:                      formatTime(a.CreatedAt),
		UpdatedAt:                      formatTime(a.UpdatedAt),
	}
}

func fromAssetItem(it assetItem) entities.Asset {
	return entities.Asset{
		ID:                             it.ID,
		ProjectID:                      it.ProjectID,
		AssetNumber:                    it.AssetNumber,
		TagNumber:                      it.TagNumber,
		Name:                           it.Name,
		Description:                    it.Description,
		Value:                          parseFloat(it.Value),
		Quantity:                       it.Quantity,
		Status:                         entities.AssetStatus(it.Status),
		StartDate:                      parseTimePtr(it.StartDate),
		EndDate:                        parseTimePtr(it.EndDate),
		AvailabilityDate:               parseTimePtr(it.AvailabilityDate),
		ResidualValue:                  parseFloat(it.ResidualValue),
		UsefulLife:                     it.UsefulLife,
		CorporateUsefulLife:            it.CorporateUsefulLife,
		AssetClass:                     it.AssetClass,
		Notes:                          it.Notes,
		CostCenter:                     it.CostCenter,
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

