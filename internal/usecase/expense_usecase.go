package usecase

import (
	"context"
	"fmt"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/ledger"
	"gestao_obras/internal/usecase/interfaces"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var accessKeyPattern = regexp.MustCompile(`^\d{44}$`)

var (
	ErrExpenseNotFound        = fmt.Errorf("%w: expense not found", entities.ErrNotFound)
	ErrBudgetNotFound         = fmt.Errorf("%w: budget not found", entities.ErrNotFound)
	ErrInvalidExpenseID       = fmt.Errorf("%w: invalid expense id", entities.ErrValidation)
	ErrInvalidExpenseAmount   = fmt.Errorf("%w: expense amount must be greater than zero", entities.ErrValidation)
	ErrInvalidExpenseDesc     = fmt.Errorf("%w: expense description is required", entities.ErrValidation)
	ErrInvalidExpenseDate     = fmt.Errorf("%w: expense date is required", entities.ErrValidation)
	ErrAssetProjectMismatch   = fmt.Errorf("%w: asset belongs to another project", entities.ErrValidation)
	ErrBudgetProjectMismatch  = fmt.Errorf("%w: budget belongs to another project", entities.ErrValidation)
	ErrInvalidAccessKey       = fmt.Errorf("%w: access key must have 44 digits", entities.ErrValidation)
	ErrNoExpensesToLink       = fmt.Errorf("%w: at least one expense is required", entities.ErrValidation)
	ErrOnlyCapexLinksToAssets = fmt.Errorf("%w: only capex expenses can be linked to an asset", entities.ErrValidation)
)

// ExpenseInput carries the writable fields of an expense.
type ExpenseInput struct {
	ProjectID         string
	BudgetID          *string
	AssetID           *string
	Description       string
	Amount            float64
	Type              entities.ExpenseType
	Category          string
	Date              time.Time
	Notes             string
	AccountingAccount *string
}

// IExpenseUseCase records project costs and routes them to assets or accounts.
type IExpenseUseCase interface {
	Create(ctx context.Context, in ExpenseInput) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Expense, error)
	ListByBudget(ctx context.Context, budgetID string) ([]entities.Expense, error)
	Update(ctx context.Context, id string, in ExpenseInput) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
	LinkToAsset(ctx context.Context, id, assetID string) (entities.Expense, error)
	UnlinkFromAsset(ctx context.Context, id string) (entities.Expense, error)
	LinkToBudget(ctx context.Context, budgetID string, expenseIDs []string) ([]entities.Expense, error)
	LookupNFe(ctx context.Context, accessKey string) (entities.NFeData, error)
}

type ExpenseUseCase struct {
	repo     interfaces.IExpenseRepository
	projects interfaces.IProjectRepository
	assets   interfaces.IAssetRepository
	budgets  interfaces.IBudgetRepository
	nfe      interfaces.INFeProvider
	cache    interfaces.IReportCache
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(
	repo interfaces.IExpenseRepository,
	projects interfaces.IProjectRepository,
	assets interfaces.IAssetRepository,
	budgets interfaces.IBudgetRepository,
	nfe interfaces.INFeProvider,
	cache interfaces.IReportCache,
) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, projects: projects, assets: assets, budgets: budgets, nfe: nfe, cache: cache}
}

func (u *ExpenseUseCase) Create(ctx context.Context, in ExpenseInput) (entities.Expense, error) {
	now := time.Now().UTC()
	e := entities.Expense{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	applyExpenseInput(&e, in)

	e, err := u.validate(ctx, e)
	if err != nil {
		return entities.Expense{}, err
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Expense{}, err
	}
	log.Info().Str("component", "expense").Str("expense_id", created.ID).
		Str("project_id", created.ProjectID).Str("type", string(created.Type)).Float64("amount", created.Amount).
		Msg("expense created")
	invalidateReports(ctx, u.cache)
	return created, nil
}

func (u *ExpenseUseCase) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}

// ListByProject lists the expenses of a project, or every expense when
// projectID is empty.
func (u *ExpenseUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.Expense, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return u.repo.List(ctx)
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *ExpenseUseCase) ListByBudget(ctx context.Context, budgetID string) ([]entities.Expense, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidBudgetID
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}

// Update replaces the writable fields. The project of an expense never
// changes; the rest is re-classified as if it were new.
func (u *ExpenseUseCase) Update(ctx context.Context, id string, in ExpenseInput) (entities.Expense, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}

	e := current
	in.ProjectID = current.ProjectID
	applyExpenseInput(&e, in)
	e.UpdatedAt = time.Now().UTC()

	if e, err = u.validate(ctx, e); err != nil {
		return entities.Expense{}, err
	}
	return u.save(ctx, e)
}

func (u *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidExpenseID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	log.Info().Str("component", "expense").Str("expense_id", id).Msg("expense deleted")
	invalidateReports(ctx, u.cache)
	return nil
}

func (u *ExpenseUseCase) LinkToAsset(ctx context.Context, id, assetID string) (entities.Expense, error) {
	e, p, err := u.writableExpense(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.Type != entities.ExpenseTypeCapex {
		return entities.Expense{}, ErrOnlyCapexLinksToAssets
	}
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return entities.Expense{}, ErrInvalidAssetID
	}
	if err := u.checkAsset(ctx, p.ID, assetID); err != nil {
		return entities.Expense{}, err
	}

	e.AssetID = &assetID
	e.UpdatedAt = time.Now().UTC()
	return u.save(ctx, e)
}

// UnlinkFromAsset removes the asset link of a capex expense. The expense
// stays capex and must be linked again before any other edit.
func (u *ExpenseUseCase) UnlinkFromAsset(ctx context.Context, id string) (entities.Expense, error) {
	e, _, err := u.writableExpense(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.AssetID == nil {
		return e, nil
	}
	e.AssetID = nil
	e.UpdatedAt = time.Now().UTC()
	return u.save(ctx, e)
}

// LinkToBudget points every listed expense at budgetID. All expenses are
// checked before any is written.
func (u *ExpenseUseCase) LinkToBudget(ctx context.Context, budgetID string, expenseIDs []string) ([]entities.Expense, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidBudgetID
	}
	if len(expenseIDs) == 0 {
		return nil, ErrNoExpensesToLink
	}
	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if b.ID == "" {
		return nil, ErrBudgetNotFound
	}

	pending := make([]entities.Expense, 0, len(expenseIDs))
	for _, id := range expenseIDs {
		e, _, err := u.writableExpense(ctx, id)
		if err != nil {
			return nil, err
		}
		if e.ProjectID != b.ProjectID {
			return nil, ErrBudgetProjectMismatch
		}
		pending = append(pending, e)
	}

	now := time.Now().UTC()
	out := make([]entities.Expense, 0, len(pending))
	for _, e := range pending {
		id := b.ID
		e.BudgetID = &id
		e.UpdatedAt = now
		updated, err := u.save(ctx, e)
		if err != nil {
			return nil, err
		}
		out = append(out, updated)
	}
	log.Info().Str("component", "expense").Str("budget_id", b.ID).Int("count", len(out)).Msg("expenses linked to budget")
	return out, nil
}

func (u *ExpenseUseCase) LookupNFe(ctx context.Context, accessKey string) (entities.NFeData, error) {
	accessKey = strings.Join(strings.Fields(accessKey), "")
	if !accessKeyPattern.MatchString(accessKey) {
		return entities.NFeData{}, ErrInvalidAccessKey
	}
	data, err := u.nfe.Lookup(ctx, accessKey)
	if err != nil {
		log.Warn().Err(err).Str("component", "expense").Msg("nfe lookup failed")
		return entities.NFeData{}, err
	}
	return data, nil
}

// validate classifies e and checks every reference it carries.
func (u *ExpenseUseCase) validate(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	if strings.TrimSpace(e.ProjectID) == "" {
		return entities.Expense{}, ErrInvalidProjectID
	}
	if e.Description == "" {
		return entities.Expense{}, ErrInvalidExpenseDesc
	}
	if !validAmount(e.Amount) || e.Amount == 0 {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}
	if e.Date.IsZero() {
		return entities.Expense{}, ErrInvalidExpenseDate
	}

	e, err := ledger.Classify(e)
	if err != nil {
		return entities.Expense{}, err
	}

	p, err := u.project(ctx, e.ProjectID)
	if err != nil {
		return entities.Expense{}, err
	}
	if err := ledger.CheckWritable(p); err != nil {
		return entities.Expense{}, err
	}

	if e.AssetID != nil {
		if err := u.checkAsset(ctx, p.ID, *e.AssetID); err != nil {
			return entities.Expense{}, err
		}
	}
	if e.BudgetID != nil {
		b, err := u.budgets.GetByID(ctx, *e.BudgetID)
		if err != nil {
			return entities.Expense{}, err
		}
		if b.ID == "" {
			return entities.Expense{}, ErrBudgetNotFound
		}
		if b.ProjectID != p.ID {
			return entities.Expense{}, ErrBudgetProjectMismatch
		}
	}
	return e, nil
}

func (u *ExpenseUseCase) writableExpense(ctx context.Context, id string) (entities.Expense, entities.Project, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, entities.Project{}, err
	}
	p, err := u.project(ctx, e.ProjectID)
	if err != nil {
		return entities.Expense{}, entities.Project{}, err
	}
	if err := ledger.CheckWritable(p); err != nil {
		return entities.Expense{}, entities.Project{}, err
	}
	return e, p, nil
}

func (u *ExpenseUseCase) project(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ExpenseUseCase) checkAsset(ctx context.Context, projectID, assetID string) error {
	a, err := u.assets.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if a.ID == "" {
		return ErrAssetNotFound
	}
	if a.ProjectID != projectID {
		return ErrAssetProjectMismatch
	}
	return nil
}

func (u *ExpenseUseCase) save(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Expense{}, err
	}
	if updated.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	invalidateReports(ctx, u.cache)
	return updated, nil
}

func applyExpenseInput(e *entities.Expense, in ExpenseInput) {
	e.ProjectID = strings.TrimSpace(in.ProjectID)
	e.BudgetID = in.BudgetID
	e.AssetID = in.AssetID
	e.Description = in.Description
	e.Amount = in.Amount
	e.Type = in.Type
	e.Category = in.Category
	e.Date = in.Date
	e.Notes = in.Notes
	e.AccountingAccount = in.AccountingAccount
}
