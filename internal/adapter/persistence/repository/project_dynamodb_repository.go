package repository

import (
	"context"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
)

const defaultProjectsTableName = "projects"

type approvalEntryItem struct {
	Status string `dynamodbav:"status"`
	Date   string `dynamodbav:"date"`
	User   string `dynamodbav:"user"`
	Role   string `dynamodbav:"role"`
	Notes  string `dynamodbav:"notes,omitempty"`
}

type projectItem struct {
	ID               string              `dynamodbav:"id"`
	Code             string              `dynamodbav:"code"`
	Name             string              `dynamodbav:"name"`
	Description      string              `dynamodbav:"description"`
	Status           string              `dynamodbav:"status"`
	StartDate        string              `dynamodbav:"start_date"`
	EstimatedEndDate string              `dynamodbav:"estimated_end_date,omitempty"`
	Location         string              `dynamodbav:"location"`
	CostCenter       string              `dynamodbav:"cost_center"`
	PlannedCapex     string              `dynamodbav:"planned_capex"`
	PlannedOpex      string              `dynamodbav:"planned_opex"`
	PlannedValue     string              `dynamodbav:"planned_value"`
	ApprovalHistory  []approvalEntryItem `dynamodbav:"approval_history"`
	CreatedAt        string              `dynamodbav:"created_at"`
	UpdatedAt        string              `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The approval history is kept inline, so a transition is a single PutItem.
type ProjectDynamoRepository struct {
	t table
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoAPI, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{t: newTable(ddb, tableName, defaultProjectsTableName, "id")}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	ok, err := r.t.put(ctx, toProjectItem(p), false)
	if err != nil {
		return entities.Project{}, err
	}
	if !ok {
		return entities.Project{}, errDuplicateKey(r.t, p.ID)
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var it projectItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	items, err := scanAll[projectItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	return mapSlice(items, fromProjectItem), nil
}

// Update replaces the stored project. A missing project yields a zero value.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	ok, err := r.t.put(ctx, toProjectItem(p), true)
	if err != nil || !ok {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.delete(ctx, id)
}

func toProjectItem(p entities.Project) projectItem {
	history := make([]approvalEntryItem, 0, len(p.ApprovalHistory))
	for _, h := range p.ApprovalHistory {
		history = append(history, approvalEntryItem{
			Status: string(h.Status),
			Date:   formatTime(h.Date),
			User:   h.User,
			Role:   string(h.Role),
			Notes:  h.Notes,
		})
	}
	return projectItem{
		ID:               p.ID,
		Code:             p.Code,
		Name:             p.Name,
		Description:      p.Description,
		Status:           string(p.Status),
		StartDate:        formatTime(p.StartDate),
		EstimatedEndDate: formatTimePtr(p.EstimatedEndDate),
		Location:         p.Location,
		CostCenter:       p.CostCenter,
		PlannedCapex:     floatToString(p.PlannedCapex),
		PlannedOpex:      floatToString(p.PlannedOpex),
		PlannedValue:     floatToString(p.PlannedValue),
		ApprovalHistory:  history,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	history := make([]entities.ApprovalEntry, 0, len(it.ApprovalHistory))
	for _, h := range it.ApprovalHistory {
		history = append(history, entities.ApprovalEntry{
			Status: entities.ProjectStatus(h.Status),
			Date:   parseTime(h.Date),
			User:   h.User,
			Role:   entities.Role(h.Role),
			Notes:  h.Notes,
		})
	}
	return entities.Project{
		ID:               it.ID,
		Code:             it.Code,
		Name:             it.Name,
		Description:      it.Description,
		Status:           entities.ProjectStatus(it.Status),
		StartDate:        parseTime(it.StartDate),
		EstimatedEndDate: parseTimePtr(it.EstimatedEndDate),
		Location:         it.Location,
		CostCenter:       it.CostCenter,
		PlannedCapex:     parseFloat(it.PlannedCapex),
		PlannedOpex:      parseFloat(it.PlannedOpex),
		PlannedValue:     parseFloat(it.PlannedValue),
		ApprovalHistory:  history,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
