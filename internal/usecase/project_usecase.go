package usecase

import (
	"context"
	"fmt"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/ledger"
	"gestao_obras/internal/domain/workflow"
	"gestao_obras/internal/usecase/interfaces"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const projectCodePrefix = "OBRA-"

var projectCodePattern = regexp.MustCompile(`^OBRA-(\d+)$`)

var (
	ErrProjectNotFound     = fmt.Errorf("%w: project not found", entities.ErrNotFound)
	ErrInvalidProjectID    = fmt.Errorf("%w: invalid project id", entities.ErrValidation)
	ErrInvalidProjectName  = fmt.Errorf("%w: project name is required", entities.ErrValidation)
	ErrInvalidPlannedValue = fmt.Errorf("%w: planned capex and opex must be finite and non-negative", entities.ErrValidation)
	ErrInvalidProjectDates = fmt.Errorf("%w: estimated end date is before the start date", entities.ErrValidation)
)

// ProjectInput carries the editable fields of a project. Status and history
// are owned by the approval workflow and cannot be set here.
type ProjectInput struct {
	Name             string
	Description      string
	StartDate        time.Time
	EstimatedEndDate *time.Time
	Location         string
	CostCenter       string
	PlannedCapex     float64
	PlannedOpex      float64
}

// IProjectUseCase exposes project intake, approval and rollups.
type IProjectUseCase interface {
	Create(ctx context.Context, in ProjectInput) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error)
	Delete(ctx context.Context, id string) error
	Advance(ctx context.Context, id string, actor entities.Actor) (entities.Project, error)
	Reject(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Project, error)
	Totals(ctx context.Context, id string) (ledger.Totals, error)
	Timeline(ctx context.Context, id string) ([]workflow.TimelineStep, error)
}

type ProjectUseCase struct {
	repo     interfaces.IProjectRepository
	expenses interfaces.IExpenseRepository
	budgets  interfaces.IBudgetRepository
	cache    interfaces.IReportCache
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	repo interfaces.IProjectRepository,
	expenses interfaces.IExpenseRepository,
	budgets interfaces.IBudgetRepository,
	cache interfaces.IReportCache,
) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, expenses: expenses, budgets: budgets, cache: cache}
}

func (u *ProjectUseCase) Create(ctx context.Context, in ProjectInput) (entities.Project, error) {
	in, err := normalizeProjectInput(in)
	if err != nil {
		return entities.Project{}, err
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:              uuid.NewString(),
		Code:            NextProjectCode(existing),
		Status:          entities.ProjectStatusAguardandoClassificacao,
		ApprovalHistory: []entities.ApprovalEntry{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	applyProjectInput(&p, in)

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Info().Str("component", "project").Str("project_id", created.ID).Str("code", created.Code).Msg("project created")
	invalidateReports(ctx, u.cache)
	return created, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error) {
	in, err := normalizeProjectInput(in)
	if err != nil {
		return entities.Project{}, err
	}
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	applyProjectInput(&p, in)
	p.UpdatedAt = time.Now().UTC()
	return u.save(ctx, p)
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProjectNotFound
	}
	log.Info().Str("component", "project").Str("project_id", id).Msg("project deleted")
	invalidateReports(ctx, u.cache)
	return nil
}

func (u *ProjectUseCase) Advance(ctx context.Context, id string, actor entities.Actor) (entities.Project, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	next, err := workflow.Advance(p, actor, time.Now().UTC())
	if err != nil {
		return entities.Project{}, err
	}
	log.Info().Str("component", "project").Str("project_id", p.ID).
		Str("from", string(p.Status)).Str("to", string(next.Status)).Str("role", string(actor.Role)).
		Msg("project advanced")
	return u.save(ctx, next)
}

func (u *ProjectUseCase) Reject(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Project, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	next, err := workflow.Reject(p, actor, reason, time.Now().UTC())
	if err != nil {
		return entities.Project{}, err
	}
	log.Info().Str("component", "project").Str("project_id", p.ID).
		Str("from", string(p.Status)).Str("role", string(actor.Role)).
		Msg("project rejected")
	return u.save(ctx, next)
}

func (u *ProjectUseCase) Totals(ctx context.Context, id string) (ledger.Totals, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return ledger.Totals{}, err
	}
	expenses, err := u.expenses.ListByProjectID(ctx, p.ID)
	if err != nil {
		return ledger.Totals{}, err
	}

	var budgets []entities.Budget
	if p.PlannedCapex+p.PlannedOpex == 0 {
		if budgets, err = u.budgets.ListByProjectID(ctx, p.ID); err != nil {
			return ledger.Totals{}, err
		}
	}
	return ledger.ProjectTotals(p, expenses, budgets), nil
}

func (u *ProjectUseCase) Timeline(ctx context.Context, id string) ([]workflow.TimelineStep, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return workflow.Timeline(p), nil
}

func (u *ProjectUseCase) save(ctx context.Context, p entities.Project) (entities.Project, error) {
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	invalidateReports(ctx, u.cache)
	return updated, nil
}

// NextProjectCode returns OBRA-NNN one above the highest existing code.
func NextProjectCode(projects []entities.Project) string {
	highest := 0
	for _, p := range projects {
		m := projectCodePattern.FindStringSubmatch(p.Code)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", projectCodePrefix, highest+1)
}

func normalizeProjectInput(in ProjectInput) (ProjectInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.CostCenter = strings.TrimSpace(in.CostCenter)
	if in.Name == "" {
		return in, ErrInvalidProjectName
	}
	if !validAmount(in.PlannedCapex) || !validAmount(in.PlannedOpex) {
		return in, ErrInvalidPlannedValue
	}
	if in.EstimatedEndDate != nil && !in.StartDate.IsZero() && in.EstimatedEndDate.Before(in.StartDate) {
		return in, ErrInvalidProjectDates
	}
	return in, nil
}

func applyProjectInput(p *entities.Project, in ProjectInput) {
	p.Name = in.Name
	p.Description = in.Description
	p.StartDate = in.StartDate
	p.EstimatedEndDate = in.EstimatedEndDate
	p.Location = in.Location
	p.CostCenter = in.CostCenter
	p.PlannedCapex = in.PlannedCapex
	p.PlannedOpex = in.PlannedOpex
	p.PlannedValue = ledger.Sum(in.PlannedCapex, in.PlannedOpex)
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
