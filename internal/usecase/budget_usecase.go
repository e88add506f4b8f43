package usecase

import (
	"context"
	"fmt"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/ledger"
	"gestao_obras/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidBudgetID     = fmt.Errorf("%w: invalid budget id", entities.ErrValidation)
	ErrInvalidBudgetName   = fmt.Errorf("%w: budget name is required", entities.ErrValidation)
	ErrInvalidBudgetAmount = fmt.Errorf("%w: planned amount must be finite and non-negative", entities.ErrValidation)
)

type BudgetInput struct {
	ProjectID     string
	Name          string
	Description   string
	PlannedAmount float64
}

// IBudgetUseCase serves the legacy budgets. Realized amounts are always
// summed from the linked expenses at read time.
type IBudgetUseCase interface {
	Create(ctx context.Context, in BudgetInput) (entities.Budget, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo     interfaces.IBudgetRepository
	projects interfaces.IProjectRepository
	expenses interfaces.IExpenseRepository
	cache    interfaces.IReportCache
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	projects interfaces.IProjectRepository,
	expenses interfaces.IExpenseRepository,
	cache interfaces.IReportCache,
) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, projects: projects, expenses: expenses, cache: cache}
}

func (u *BudgetUseCase) Create(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.Name = strings.TrimSpace(in.Name)
	if in.ProjectID == "" {
		return entities.Budget{}, ErrInvalidProjectID
	}
	if in.Name == "" {
		return entities.Budget{}, ErrInvalidBudgetName
	}
	if !validAmount(in.PlannedAmount) {
		return entities.Budget{}, ErrInvalidBudgetAmount
	}

	p, err := u.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return entities.Budget{}, err
	}
	if p.ID == "" {
		return entities.Budget{}, ErrProjectNotFound
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:            uuid.NewString(),
		ProjectID:     p.ID,
		Name:          in.Name,
		Description:   strings.TrimSpace(in.Description),
		PlannedAmount: in.PlannedAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	log.Info().Str("component", "budget").Str("budget_id", created.ID).Str("project_id", p.ID).Msg("budget created")
	invalidateReports(ctx, u.cache)
	return created, nil
}

// ListByProject lists the budgets of a project, or all budgets when
// projectID is empty, each with its realized amount.
func (u *BudgetUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.Budget, error) {
	projectID = strings.TrimSpace(projectID)

	var (
		budgets  []entities.Budget
		expenses []entities.Expense
		err      error
	)
	if projectID == "" {
		if budgets, err = u.repo.List(ctx); err != nil {
			return nil, err
		}
		expenses, err = u.expenses.List(ctx)
	} else {
		if budgets, err = u.repo.ListByProjectID(ctx, projectID); err != nil {
			return nil, err
		}
		expenses, err = u.expenses.ListByProjectID(ctx, projectID)
	}
	if err != nil {
		return nil, err
	}

	for i := range budgets {
		budgets[i].RealizedAmount = ledger.BudgetRealized(budgets[i].ID, expenses)
	}
	return budgets, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	expenses, err := u.expenses.ListByBudgetID(ctx, b.ID)
	if err != nil {
		return entities.Budget{}, err
	}
	b.RealizedAmount = ledger.BudgetRealized(b.ID, expenses)
	return b, nil
}
