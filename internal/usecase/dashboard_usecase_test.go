package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/report"
	mock_interfaces "gestao_obras/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	projects *mock_interfaces.MockIProjectRepository
	assets   *mock_interfaces.MockIAssetRepository
	expenses *mock_interfaces.MockIExpenseRepository
	budgets  *mock_interfaces.MockIBudgetRepository
	cache    *mock_interfaces.MockIReportCache
}

func newDashboardUseCase(t *testing.T, now time.Time) (*DashboardUseCase, dashboardMocks) {
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		assets:   mock_interfaces.NewMockIAssetRepository(ctrl),
		expenses: mock_interfaces.NewMockIExpenseRepository(ctrl),
		budgets:  mock_interfaces.NewMockIBudgetRepository(ctrl),
		cache:    mock_interfaces.NewMockIReportCache(ctrl),
	}
	uc := NewDashboardUseCase(m.projects, m.assets, m.expenses, m.budgets, m.cache)
	uc.now = func() time.Time { return now }
	return uc, m
}

func (m dashboardMocks) expectSnapshot() {
	m.projects.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "p-1", PlannedCapex: 1000}}, nil)
	m.assets.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.expenses.EXPECT().List(gomock.Any()).Return([]entities.Expense{
		{ID: "e-1", ProjectID: "p-1", Type: entities.ExpenseTypeCapex, Amount: 400},
		{ID: "e-2", ProjectID: "p-1", Type: entities.ExpenseTypeOpex, Amount: 100},
	}, nil)
	m.budgets.EXPECT().List(gomock.Any()).Return(nil, nil)
}

func TestDashboardUseCase_Get(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("cache hit skips the snapshot", func(t *testing.T) {
		uc, m := newDashboardUseCase(t, now)

		m.cache.EXPECT().Get(gomock.Any(), "dashboard:2025", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, dest any) (bool, error) {
				*dest.(*report.Dashboard) = report.Dashboard{Year: 2025, Overview: report.Overview{TotalExpenses: 42}}
				return true, nil
			},
		)

		d, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if d.Overview.TotalExpenses != 42 {
			t.Fatalf("expected cached dashboard, got %+v", d.Overview)
		}
	})

	t.Run("cache miss builds and stores", func(t *testing.T) {
		uc, m := newDashboardUseCase(t, now)

		m.cache.EXPECT().Get(gomock.Any(), "dashboard:2025", gomock.Any()).Return(false, nil)
		m.expectSnapshot()
		m.cache.EXPECT().Set(gomock.Any(), "dashboard:2025", gomock.Any()).Return(nil)

		d, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if d.Year != 2025 || d.Overview.TotalExpenses != 500 || d.Overview.TotalCapex != 400 {
			t.Fatalf("unexpected dashboard: %+v", d.Overview)
		}
	})

	t.Run("cache failures fall back to a rebuild", func(t *testing.T) {
		uc, m := newDashboardUseCase(t, now)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
		m.expectSnapshot()
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Get(context.Background()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := newDashboardUseCase(t, now)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.projects.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

		if _, err := uc.Get(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
