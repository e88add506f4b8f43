package usecase

import (
	"context"
	"fmt"
	"gestao_obras/internal/domain/depreciation"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/ledger"
	"gestao_obras/internal/usecase/interfaces"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const assetNumberPrefix = "ATV-"

var (
	assetNumberPattern       = regexp.MustCompile(`^ATV-(\d+)$`)
	legacyAssetNumberPattern = regexp.MustCompile(`^\d+$`)
)

var (
	ErrAssetNotFound            = fmt.Errorf("%w: asset not found", entities.ErrNotFound)
	ErrInvalidAssetID           = fmt.Errorf("%w: invalid asset id", entities.ErrValidation)
	ErrInvalidAssetName         = fmt.Errorf("%w: asset name is required", entities.ErrValidation)
	ErrInvalidAssetValue        = fmt.Errorf("%w: asset value must be finite and non-negative", entities.ErrValidation)
	ErrInvalidAssetLife         = fmt.Errorf("%w: useful life must be zero or more years", entities.ErrValidation)
	ErrInvalidAssetStatus       = fmt.Errorf("%w: unknown asset status", entities.ErrValidation)
	ErrActivationRequired       = fmt.Errorf("%w: an asset is concluded only through activation", entities.ErrValidation)
	ErrInvalidAvailabilityDate  = fmt.Errorf("%w: availability date is required", entities.ErrValidation)
	ErrInvalidResidualValue     = fmt.Errorf("%w: residual value must be finite and non-negative", entities.ErrValidation)
	ErrAssetAlreadyActivated    = fmt.Errorf("%w: asset was already activated", entities.ErrInvalidState)
	ErrAssetClassNotFound       = fmt.Errorf("%w: asset class not found", entities.ErrNotFound)
	ErrAssetNumberAlreadyExists = fmt.Errorf("%w: asset number already in use", entities.ErrInvalidState)
)

// AssetInput carries the editable fields of an asset. Activation data
// (availability date and residual value) is set only by Activate.
type AssetInput struct {
	ProjectID           string
	AssetNumber         string
	TagNumber           string
	Name                string
	Description         string
	Value               float64
	Quantity            int
	Status              entities.AssetStatus
	StartDate           *time.Time
	EndDate             *time.Time
	UsefulLife          int
	CorporateUsefulLife int
	AssetClass          string
	Notes               string
	CostCenter          string

	AssetAccountCode               string
	AssetAccountDescription        string
	DepreciationAccountCode        string
	DepreciationAccountDescription string
	AmortizationAccountCode        string
	AmortizationAccountDescription string
	ResultAccountCode              string
	ResultAccountDescription       string
}

// ActivationInput is the CPC-27 activation of a finished asset.
type ActivationInput struct {
	AvailabilityDate time.Time
	ResidualValue    float64
}

// AssetCost is the capitalized cost of an asset.
type AssetCost struct {
	AssetID        string  `json:"asset_id"`
	Value          float64 `json:"value"`
	LinkedExpenses float64 `json:"linked_expenses"`
	CostBasis      float64 `json:"cost_basis"`
}

// AssetDepreciation holds the fiscal and corporate schedules of an asset.
type AssetDepreciation struct {
	AssetID   string                `json:"asset_id"`
	CostBasis float64               `json:"cost_basis"`
	Fiscal    depreciation.Schedule `json:"fiscal"`
	Corporate depreciation.Schedule `json:"corporate"`
}

// IAssetUseCase exposes the asset lifecycle, cost basis and depreciation.
type IAssetUseCase interface {
	Create(ctx context.Context, in AssetInput) (entities.Asset, error)
	List(ctx context.Context, projectID string) ([]entities.Asset, error)
	GetByID(ctx context.Context, id string) (entities.Asset, error)
	NextAssetNumber(ctx context.Context) (string, error)
	Update(ctx context.Context, id string, in AssetInput) (entities.Asset, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string, in ActivationInput) (entities.Asset, error)
	CostBasis(ctx context.Context, id string) (AssetCost, error)
	Depreciation(ctx context.Context, id string, at time.Time) (AssetDepreciation, error)
}

type AssetUseCase struct {
	repo     interfaces.IAssetRepository
	projects interfaces.IProjectRepository
	expenses interfaces.IExpenseRepository
	classes  interfaces.IAssetClassRepository
	cache    interfaces.IReportCache
}

var _ IAssetUseCase = (*AssetUseCase)(nil)

func NewAssetUseCase(
	repo interfaces.IAssetRepository,
	projects interfaces.IProjectRepository,
	expenses interfaces.IExpenseRepository,
	classes interfaces.IAssetClassRepository,
	cache interfaces.IReportCache,
) *AssetUseCase {
	return &AssetUseCase{repo: repo, projects: projects, expenses: expenses, classes: classes, cache: cache}
}

func (u *AssetUseCase) Create(ctx context.Context, in AssetInput) (entities.Asset, error) {
	in, err := normalizeAssetInput(in)
	if err != nil {
		return entities.Asset{}, err
	}
	if in.Status == entities.AssetStatusConcluido {
		return entities.Asset{}, ErrActivationRequired
	}
	if in.Status == "" {
		in.Status = entities.AssetStatusPlanejamento
	}
	if err := u.ensureProject(ctx, in.ProjectID); err != nil {
		return entities.Asset{}, err
	}
	if in, err = u.applyClassDefaults(ctx, in); err != nil {
		return entities.Asset{}, err
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Asset{}, err
	}
	if in.AssetNumber == "" {
		in.AssetNumber = NextAssetNumber(existing)
	} else {
		for _, a := range existing {
			if a.AssetNumber == in.AssetNumber {
				return entities.Asset{}, ErrAssetNumberAlreadyExists
			}
		}
	}

	now := time.Now().UTC()
	a := entities.Asset{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	applyAssetInput(&a, in)

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Asset{}, err
	}
	log.Info().Str("component", "asset").Str("asset_id", created.ID).Str("asset_number", created.AssetNumber).Msg("asset created")
	invalidateReports(ctx, u.cache)
	return created, nil
}

func (u *AssetUseCase) List(ctx context.Context, projectID string) ([]entities.Asset, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return u.repo.List(ctx)
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *AssetUseCase) GetByID(ctx context.Context, id string) (entities.Asset, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Asset{}, ErrInvalidAssetID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Asset{}, err
	}
	if a.ID == "" {
		return entities.Asset{}, ErrAssetNotFound
	}
	return a, nil
}

func (u *AssetUseCase) NextAssetNumber(ctx context.Context) (string, error) {
	existing, err := u.repo.List(ctx)
	if err != nil {
		return "", err
	}
	return NextAssetNumber(existing), nil
}

func (u *AssetUseCase) Update(ctx context.Context, id string, in AssetInput) (entities.Asset, error) {
	in, err := normalizeAssetInput(in)
	if err != nil {
		return entities.Asset{}, err
	}
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Asset{}, err
	}

	if in.Status == "" {
		in.Status = a.Status
	}
	if in.Status == entities.AssetStatusConcluido && a.Status != entities.AssetStatusConcluido {
		return entities.Asset{}, ErrActivationRequired
	}
	if in.ProjectID != a.ProjectID {
		if err := u.ensureProject(ctx, in.ProjectID); err != nil {
			return entities.Asset{}, err
		}
	}
	if in.AssetNumber == "" {
		in.AssetNumber = a.AssetNumber
	}

	applyAssetInput(&a, in)
	a.UpdatedAt = time.Now().UTC()
	return u.save(ctx, a)
}

func (u *AssetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAssetID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAssetNotFound
	}
	log.Info().Str("component", "asset").Str("asset_id", id).Msg("asset deleted")
	invalidateReports(ctx, u.cache)
	return nil
}

// Activate concludes the asset and fixes its availability date and residual
// value. It happens once.
func (u *AssetUseCase) Activate(ctx context.Context, id string, in ActivationInput) (entities.Asset, error) {
	if in.AvailabilityDate.IsZero() {
		return entities.Asset{}, ErrInvalidAvailabilityDate
	}
	if !validAmount(in.ResidualValue) {
		return entities.Asset{}, ErrInvalidResidualValue
	}
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Asset{}, err
	}
	if a.AvailabilityDate != nil || a.Status == entities.AssetStatusConcluido {
		return entities.Asset{}, ErrAssetAlreadyActivated
	}

	availability := in.AvailabilityDate.UTC()
	a.Status = entities.AssetStatusConcluido
	a.AvailabilityDate = &availability
	a.ResidualValue = in.ResidualValue
	a.UpdatedAt = time.Now().UTC()

	log.Info().Str("component", "asset").Str("asset_id", a.ID).Time("availability_date", availability).Msg("asset activated")
	return u.save(ctx, a)
}

func (u *AssetUseCase) CostBasis(ctx context.Context, id string) (AssetCost, error) {
	a, expenses, err := u.assetWithExpenses(ctx, id)
	if err != nil {
		return AssetCost{}, err
	}
	cost := ledger.AssetCostBasis(a, expenses)
	return AssetCost{
		AssetID:        a.ID,
		Value:          a.Value,
		LinkedExpenses: ledger.Sum(cost, -a.Value),
		CostBasis:      cost,
	}, nil
}

// Depreciation computes both schedules as of at, or now when at is zero.
func (u *AssetUseCase) Depreciation(ctx context.Context, id string, at time.Time) (AssetDepreciation, error) {
	a, expenses, err := u.assetWithExpenses(ctx, id)
	if err != nil {
		return AssetDepreciation{}, err
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	start, _ := a.DepreciationStart()
	cost := ledger.AssetCostBasis(a, expenses)
	fiscal, err := depreciation.Compute(depreciation.Input{
		CostBasis:       cost,
		ResidualValue:   a.ResidualValue,
		UsefulLifeYears: a.UsefulLife,
		StartDate:       start,
	}, at)
	if err != nil {
		return AssetDepreciation{}, err
	}
	corporate, err := depreciation.Compute(depreciation.Input{
		CostBasis:       cost,
		ResidualValue:   a.ResidualValue,
		UsefulLifeYears: a.CorporateUsefulLife,
		StartDate:       start,
	}, at)
	if err != nil {
		return AssetDepreciation{}, err
	}
	return AssetDepreciation{AssetID: a.ID, CostBasis: cost, Fiscal: fiscal, Corporate: corporate}, nil
}

func (u *AssetUseCase) assetWithExpenses(ctx context.Context, id string) (entities.Asset, []entities.Expense, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Asset{}, nil, err
	}
	expenses, err := u.expenses.ListByAssetID(ctx, a.ID)
	if err != nil {
		return entities.Asset{}, nil, err
	}
	return a, expenses, nil
}

func (u *AssetUseCase) ensureProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProjectNotFound
	}
	return nil
}

// applyClassDefaults fills lives and accounts left empty from the asset class.
func (u *AssetUseCase) applyClassDefaults(ctx context.Context, in AssetInput) (AssetInput, error) {
	if in.AssetClass == "" || u.classes == nil {
		return in, nil
	}
	class, err := u.classes.GetByCode(ctx, in.AssetClass)
	if err != nil {
		return in, err
	}
	if class.Code == "" {
		return in, ErrAssetClassNotFound
	}

	if in.UsefulLife == 0 {
		in.UsefulLife = class.UsefulLife
	}
	if in.CorporateUsefulLife == 0 {
		in.CorporateUsefulLife = class.CorporateUsefulLife
	}
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&in.AssetAccountCode, class.AssetAccountCode)
	fill(&in.AssetAccountDescription, class.AssetAccountDescription)
	fill(&in.DepreciationAccountCode, class.DepreciationAccountCode)
	fill(&in.DepreciationAccountDescription, class.DepreciationAccountDescription)
	fill(&in.AmortizationAccountCode, class.AmortizationAccountCode)
	fill(&in.AmortizationAccountDescription, class.AmortizationAccountDescription)
	fill(&in.ResultAccountCode, class.ResultAccountCode)
	fill(&in.ResultAccountDescription, class.ResultAccountDescription)
	return in, nil
}

func (u *AssetUseCase) save(ctx context.Context, a entities.Asset) (entities.Asset, error) {
	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.Asset{}, err
	}
	if updated.ID == "" {
		return entities.Asset{}, ErrAssetNotFound
	}
	invalidateReports(ctx, u.cache)
	return updated, nil
}

// NextAssetNumber returns ATV-NNNNNN one above the highest ATV number, or
// above the highest legacy purely numeric number when there is none.
func NextAssetNumber(assets []entities.Asset) string {
	highest, legacy := 0, 0
	for _, a := range assets {
		if m := assetNumberPattern.FindStringSubmatch(a.AssetNumber); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
				highest = n
			}
			continue
		}
		if legacyAssetNumberPattern.MatchString(a.AssetNumber) {
			if n, err := strconv.Atoi(a.AssetNumber); err == nil && n > legacy {
				legacy = n
			}
		}
	}
	if highest == 0 {
		highest = legacy
	}
	return fmt.Sprintf("%s%06d", assetNumberPrefix, highest+1)
}

func normalizeAssetInput(in AssetInput) (AssetInput, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.AssetNumber = strings.TrimSpace(in.AssetNumber)
	in.Name = strings.TrimSpace(in.Name)
	in.AssetClass = strings.TrimSpace(in.AssetClass)
	in.CostCenter = strings.TrimSpace(in.CostCenter)
	if in.ProjectID == "" {
		return in, ErrInvalidProjectID
	}
	if in.Name == "" {
		return in, ErrInvalidAssetName
	}
	if !validAmount(in.Value) {
		return in, ErrInvalidAssetValue
	}
	if in.UsefulLife < 0 || in.CorporateUsefulLife < 0 {
		return in, ErrInvalidAssetLife
	}
	switch in.Status {
	case "", entities.AssetStatusPlanejamento, entities.AssetStatusEmDesenvolvimento,
		entities.AssetStatusConcluido, entities.AssetStatusParado:
	default:
		return in, ErrInvalidAssetStatus
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	return in, nil
}

func applyAssetInput(a *entities.Asset, in AssetInput) {
	a.ProjectID = in.ProjectID
	a.AssetNumber = in.AssetNumber
	a.TagNumber = in.TagNumber
	a.Name = in.Name
	a.Description = in.Description
	a.Value = in.Value
	a.Quantity = in.Quantity
	a.Status = in.Status
	a.StartDate = in.StartDate
	a.EndDate = in.EndDate
	a.UsefulLife = in.UsefulLife
	a.CorporateUsefulLife = in.CorporateUsefulLife
	a.AssetClass = in.AssetClass
	a.Notes = in.Notes
	a.CostCenter = in.CostCenter
	a.AssetAccountCode = in.AssetAccountCode
	a.AssetAccountDescription = in.AssetAccountDescription
	a.DepreciationAccountCode = in.DepreciationAccountCode
	a.DepreciationAccountDescription = in.DepreciationAccountDescription
	a.AmortizationAccountCode = in.AmortizationAccountCode
	a.AmortizationAccountDescription = in.AmortizationAccountDescription
	a.ResultAccountCode = in.ResultAccountCode
	a.ResultAccountDescription = in.ResultAccountDescription
}
