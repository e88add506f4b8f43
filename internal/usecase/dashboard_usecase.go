package usecase

import (
	"context"
	"fmt"
	"gestao_obras/internal/domain/report"
	"gestao_obras/internal/usecase/interfaces"
	"time"

	"github.com/rs/zerolog/log"
)

const dashboardCacheKey = "dashboard"

// IDashboardUseCase builds the portfolio dashboard.
type IDashboardUseCase interface {
	Get(ctx context.Context) (report.Dashboard, error)
}

type DashboardUseCase struct {
	projects interfaces.IProjectRepository
	assets   interfaces.IAssetRepository
	expenses interfaces.IExpenseRepository
	budgets  interfaces.IBudgetRepository
	cache    interfaces.IReportCache
	now      func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	projects interfaces.IProjectRepository,
	assets interfaces.IAssetRepository,
	expenses interfaces.IExpenseRepository,
	budgets interfaces.IBudgetRepository,
	cache interfaces.IReportCache,
) *DashboardUseCase {
	return &DashboardUseCase{
		projects: projects,
		assets:   assets,
		expenses: expenses,
		budgets:  budgets,
		cache:    cache,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Get serves the cached dashboard of the current year or rebuilds it from a
// fresh snapshot. Cache failures only cost a rebuild.
func (u *DashboardUseCase) Get(ctx context.Context) (report.Dashboard, error) {
	now := u.now()
	key := fmt.Sprintf("%s:%d", dashboardCacheKey, now.Year())

	if u.cache != nil {
		var cached report.Dashboard
		found, err := u.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("component", "dashboard").Msg("cache read failed")
		} else if found {
			return cached, nil
		}
	}

	var (
		snap report.Snapshot
		err  error
	)
	if snap.Projects, err = u.projects.List(ctx); err != nil {
		return report.Dashboard{}, err
	}
	if snap.Assets, err = u.assets.List(ctx); err != nil {
		return report.Dashboard{}, err
	}
	if snap.Expenses, err = u.expenses.List(ctx); err != nil {
		return report.Dashboard{}, err
	}
	if snap.Budgets, err = u.budgets.List(ctx); err != nil {
		return report.Dashboard{}, err
	}

	d := report.Build(snap, now)
	if u.cache != nil {
		if err := u.cache.Set(ctx, key, d); err != nil {
			log.Warn().Err(err).Str("component", "dashboard").Msg("cache write failed")
		}
	}
	return d, nil
}

// invalidateReports drops cached dashboards after a write. A failure is
// logged; the entry expires on its own.
func invalidateReports(ctx context.Context, cache interfaces.IReportCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Str("component", "cache").Msg("report cache invalidation failed")
	}
}
