package usecase

import (
	"context"
	"fmt"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInventoryNotFound       = fmt.Errorf("%w: inventory schedule not found", entities.ErrNotFound)
	ErrInvalidInventoryID      = fmt.Errorf("%w: invalid inventory schedule id", entities.ErrValidation)
	ErrInventoryNoAssets       = fmt.Errorf("%w: at least one asset is required", entities.ErrValidation)
	ErrInventoryNoUsers        = fmt.Errorf("%w: at least one user is required", entities.ErrValidation)
	ErrInventoryDateRequired   = fmt.Errorf("%w: inventory date is required", entities.ErrValidation)
	ErrInventoryUnknownAsset   = fmt.Errorf("%w: result references an asset outside the schedule", entities.ErrValidation)
	ErrInventoryAssetScheduled = fmt.Errorf("%w: asset already belongs to an active inventory", entities.ErrInvalidState)
	ErrInventoryWrongStatus    = fmt.Errorf("%w: inventory schedule is not in the expected status", entities.ErrInvalidState)
	ErrInventoryNotAssigned    = fmt.Errorf("%w: user is not assigned to this inventory", entities.ErrPermission)
	ErrInventoryNotRequester   = fmt.Errorf("%w: only the requester can approve this inventory", entities.ErrPermission)
)

type InventoryInput struct {
	AssetIDs []string
	UserIDs  []string
	Date     time.Time
	Notes    string
}

// IInventoryUseCase drives physical asset counts:
// pending -> waiting_approval (assigned user submits) -> completed (requester approves).
type IInventoryUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in InventoryInput) (entities.InventorySchedule, error)
	List(ctx context.Context) ([]entities.InventorySchedule, error)
	GetByID(ctx context.Context, id string) (entities.InventorySchedule, error)
	SubmitResults(ctx context.Context, id string, actor entities.Actor, results []entities.InventoryResult) (entities.InventorySchedule, error)
	Approve(ctx context.Context, id string, actor entities.Actor) (entities.InventorySchedule, error)
}

type InventoryUseCase struct {
	repo   interfaces.IInventoryRepository
	assets interfaces.IAssetRepository
	cache  interfaces.IReportCache
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository, assets interfaces.IAssetRepository, cache interfaces.IReportCache) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, assets: assets, cache: cache}
}

func (u *InventoryUseCase) Create(ctx context.Context, actor entities.Actor, in InventoryInput) (entities.InventorySchedule, error) {
	assetIDs := uniqueTrimmed(in.AssetIDs)
	userIDs := uniqueTrimmed(in.UserIDs)
	if len(assetIDs) == 0 {
		return entities.InventorySchedule{}, ErrInventoryNoAssets
	}
	if len(userIDs) == 0 {
		return entities.InventorySchedule{}, ErrInventoryNoUsers
	}
	if in.Date.IsZero() {
		return entities.InventorySchedule{}, ErrInventoryDateRequired
	}

	for _, id := range assetIDs {
		a, err := u.assets.GetByID(ctx, id)
		if err != nil {
			return entities.InventorySchedule{}, err
		}
		if a.ID == "" {
			return entities.InventorySchedule{}, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
		}
	}

	schedules, err := u.repo.List(ctx)
	if err != nil {
		return entities.InventorySchedule{}, err
	}
	busy := map[string]struct{}{}
	for _, s := range schedules {
		if !s.IsActive() {
			continue
		}
		for _, id := range s.AssetIDs {
			busy[id] = struct{}{}
		}
	}
	for _, id := range assetIDs {
		if _, ok := busy[id]; ok {
			return entities.InventorySchedule{}, fmt.Errorf("%w: %s", ErrInventoryAssetScheduled, id)
		}
	}

	now := time.Now().UTC()
	s := entities.InventorySchedule{
		ID:          uuid.NewString(),
		RequesterID: actor.ID,
		AssetIDs:    assetIDs,
		UserIDs:     userIDs,
		Date:        in.Date.UTC(),
		Notes:       strings.TrimSpace(in.Notes),
		Status:      entities.InventoryStatusPending,
		Results:     []entities.InventoryResult{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.InventorySchedule{}, err
	}
	log.Info().Str("component", "inventory").Str("schedule_id", created.ID).Int("assets", len(assetIDs)).Msg("inventory scheduled")
	return created, nil
}

func (u *InventoryUseCase) List(ctx context.Context) ([]entities.InventorySchedule, error) {
	return u.repo.List(ctx)
}

func (u *InventoryUseCase) GetByID(ctx context.Context, id string) (entities.InventorySchedule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventorySchedule{}, ErrInvalidInventoryID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventorySchedule{}, err
	}
	if s.ID == "" {
		return entities.InventorySchedule{}, ErrInventoryNotFound
	}
	return s, nil
}

// SubmitResults records the count of an assigned user. Assets of the
// schedule missing from results are recorded as not verified.
func (u *InventoryUseCase) SubmitResults(ctx context.Context, id string, actor entities.Actor, results []entities.InventoryResult) (entities.InventorySchedule, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InventorySchedule{}, err
	}
	if s.Status != entities.InventoryStatusPending {
		return entities.InventorySchedule{}, ErrInventoryWrongStatus
	}
	if !contains(s.UserIDs, actor.ID) {
		return entities.InventorySchedule{}, ErrInventoryNotAssigned
	}

	byAsset := make(map[string]entities.InventoryResult, len(results))
	for _, r := range results {
		r.AssetID = strings.TrimSpace(r.AssetID)
		r.NewCostCenter = strings.TrimSpace(r.NewCostCenter)
		if !contains(s.AssetIDs, r.AssetID) {
			return entities.InventorySchedule{}, fmt.Errorf("%w: %s", ErrInventoryUnknownAsset, r.AssetID)
		}
		byAsset[r.AssetID] = r
	}

	s.Results = make([]entities.InventoryResult, 0, len(s.AssetIDs))
	for _, assetID := range s.AssetIDs {
		r, ok := byAsset[assetID]
		if !ok {
			r = entities.InventoryResult{AssetID: assetID}
		}
		s.Results = append(s.Results, r)
	}
	s.Status = entities.InventoryStatusWaitingApproval
	s.UpdatedAt = time.Now().UTC()

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.InventorySchedule{}, err
	}
	log.Info().Str("component", "inventory").Str("schedule_id", s.ID).Str("user_id", actor.ID).Msg("inventory results submitted")
	return updated, nil
}

// Approve completes the schedule and moves every verified asset that got a
// new cost center. Schedules without a requester can be approved by anyone.
func (u *InventoryUseCase) Approve(ctx context.Context, id string, actor entities.Actor) (entities.InventorySchedule, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InventorySchedule{}, err
	}
	if s.Status != entities.InventoryStatusWaitingApproval {
		return entities.InventorySchedule{}, ErrInventoryWrongStatus
	}
	if s.RequesterID != "" && s.RequesterID != actor.ID {
		return entities.InventorySchedule{}, ErrInventoryNotRequester
	}

	for _, r := range s.Results {
		if !r.Verified || r.NewCostCenter == "" {
			continue
		}
		updated, err := u.assets.UpdateCostCenter(ctx, r.AssetID, r.NewCostCenter)
		if err != nil {
			return entities.InventorySchedule{}, err
		}
		if updated.ID == "" {
			log.Warn().Str("component", "inventory").Str("schedule_id", s.ID).Str("asset_id", r.AssetID).Msg("counted asset no longer exists")
		}
	}

	s.Status = entities.InventoryStatusCompleted
	s.UpdatedAt = time.Now().UTC()
	completed, err := u.save(ctx, s)
	if err != nil {
		return entities.InventorySchedule{}, err
	}
	log.Info().Str("component", "inventory").Str("schedule_id", s.ID).Msg("inventory approved")
	invalidateReports(ctx, u.cache)
	return completed, nil
}

func (u *InventoryUseCase) save(ctx context.Context, s entities.InventorySchedule) (entities.InventorySchedule, error) {
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.InventorySchedule{}, err
	}
	if updated.ID == "" {
		return entities.InventorySchedule{}, ErrInventoryNotFound
	}
	return updated, nil
}

func uniqueTrimmed(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
