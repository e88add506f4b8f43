package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
	mock_interfaces "gestao_obras/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestNextAssetNumber(t *testing.T) {
	tests := []struct {
		name   string
		assets []entities.Asset
		want   string
	}{
		{name: "empty", want: "ATV-000001"},
		{name: "highest ATV", assets: []entities.Asset{{AssetNumber: "ATV-000009"}, {AssetNumber: "ATV-000041"}, {AssetNumber: "900"}}, want: "ATV-000042"},
		{name: "legacy numeric fallback", assets: []entities.Asset{{AssetNumber: "17"}, {AssetNumber: "0120"}, {AssetNumber: "X-1"}}, want: "ATV-000121"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextAssetNumber(tt.assets); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAssetUseCase_Create(t *testing.T) {
	t.Run("cannot create concluded", func(t *testing.T) {
		uc := NewAssetUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), AssetInput{ProjectID: "p-1", Name: "Ponte", Status: entities.AssetStatusConcluido})
		if !errors.Is(err, ErrActivationRequired) {
			t.Fatalf("expected ErrActivationRequired, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewAssetUseCase(nil, projects, nil, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.Create(context.Background(), AssetInput{ProjectID: "p-1", Name: "Ponte"})
		if !errors.Is(err, ErrProjectNotFound) || !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("class defaults and generated number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAssetRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		classes := mock_interfaces.NewMockIAssetClassRepository(ctrl)
		uc := NewAssetUseCase(repo, projects, nil, classes, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
		classes.EXPECT().GetByCode(gomock.Any(), "MAQ").Return(entities.AssetClass{
			Code: "MAQ", UsefulLife: 10, CorporateUsefulLife: 8,
			AssetAccountCode: "1.2.3.01", DepreciationAccountCode: "1.2.3.91",
		}, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Asset{{AssetNumber: "ATV-000003"}}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Asset) (entities.Asset, error) {
				if a.AssetNumber != "ATV-000004" || a.Status != entities.AssetStatusPlanejamento {
					t.Fatalf("unexpected asset: %+v", a)
				}
				if a.UsefulLife != 10 || a.CorporateUsefulLife != 5 {
					t.Fatalf("unexpected lives: %d/%d", a.UsefulLife, a.CorporateUsefulLife)
				}
				if a.AssetAccountCode != "1.2.3.01" || a.DepreciationAccountCode != "1.2.3.91" || a.Quantity != 1 {
					t.Fatalf("defaults not applied: %+v", a)
				}
				return a, nil
			},
		)

		_, err := uc.Create(context.Background(), AssetInput{ProjectID: "p-1", Name: "Escavadeira", AssetClass: "MAQ", CorporateUsefulLife: 5})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestAssetUseCase_Update(t *testing.T) {
	t.Run("cannot conclude through update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAssetRepository(ctrl)
		uc := NewAssetUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Asset{ID: "a-1", ProjectID: "p-1", Status: entities.AssetStatusEmDesenvolvimento}, nil)

		_, err := uc.Update(context.Background(), "a-1", AssetInput{ProjectID: "p-1", Name: "Ponte", Status: entities.AssetStatusConcluido})
		if !errors.Is(err, ErrActivationRequired) {
			t.Fatalf("expected ErrActivationRequired, got %v", err)
		}
	})

	t.Run("keeps activation data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAssetRepository(ctrl)
		uc := NewAssetUseCase(repo, nil, nil, nil, nil)

		available := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Asset{
			ID: "a-1", ProjectID: "p-1", AssetNumber: "ATV-000001", Status: entities.AssetStatusConcluido,
			AvailabilityDate: &available, ResidualValue: 300,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Asset) (entities.Asset, error) {
				if a.AvailabilityDate == nil || !a.AvailabilityDate.Equal(available) || a.ResidualValue != 300 {
					t.Fatalf("activation data changed: %+v", a)
				}
				if a.Status != entities.AssetStatusConcluido || a.AssetNumber != "ATV-000001" || a.Name != "Ponte 2" {
					t.Fatalf("unexpected asset: %+v", a)
				}
				return a, nil
			},
		)

		_, err := uc.Update(context.Background(), "a-1", AssetInput{ProjectID: "p-1", Name: "Ponte 2"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestAssetUseCase_Activate(t *testing.T) {
	available := time.Date(2026, time.April, 18, 0, 0, 0, 0, time.UTC)

	t.Run("requires availability date", func(t *testing.T) {
		uc := NewAssetUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Activate(context.Background(), "a-1", ActivationInput{})
		if !errors.Is(err, ErrInvalidAvailabilityDate) {
			t.Fatalf("expected ErrInvalidAvailabilityDate, got %v", err)
		}
	})

	t.Run("activates once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAssetRepository(ctrl)
		cache := mock_interfaces.NewMockIReportCache(ctrl)
		uc := NewAssetUseCase(repo, nil, nil, nil, cache)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Asset{ID: "a-1", Status: entities.AssetStatusEmDesenvolvimento}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Asset) (entities.Asset, error) {
				return a, nil
			},
		)
		cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

		activated, err := uc.Activate(context.Background(), "a-1", ActivationInput{AvailabilityDate: available, ResidualValue: 1000})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !activated.IsActivated() || activated.ResidualValue != 1000 {
			t.Fatalf("unexpected asset: %+v", activated)
		}

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(activated, nil)
		_, err = uc.Activate(context.Background(), "a-1", ActivationInput{AvailabilityDate: available, ResidualValue: 0})
		if !errors.Is(err, ErrAssetAlreadyActivated) || !errors.Is(err, entities.ErrInvalidState) {
			t.Fatalf("expected ErrAssetAlreadyActivated, got %v", err)
		}
	})
}

func TestAssetUseCase_CostBasisAndDepreciation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIAssetRepository(ctrl)
	expenses := mock_interfaces.NewMockIExpenseRepository(ctrl)
	uc := NewAssetUseCase(repo, nil, expenses, nil, nil)

	asset := entities.Asset{
		ID: "a-1", Value: 6000, UsefulLife: 1, CorporateUsefulLife: 2,
		Status:           entities.AssetStatusConcluido,
		AvailabilityDate: timePtr(time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)),
	}
	linked := []entities.Expense{
		{ID: "e-1", AssetID: strPtr("a-1"), Amount: 4000, Type: entities.ExpenseTypeCapex},
		{ID: "e-2", AssetID: strPtr("a-1"), Amount: 2000, Type: entities.ExpenseTypeCapex},
	}
	repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(asset, nil).Times(2)
	expenses.EXPECT().ListByAssetID(gomock.Any(), "a-1").Return(linked, nil).Times(2)

	cost, err := uc.CostBasis(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cost.CostBasis != 12000 || cost.LinkedExpenses != 6000 {
		t.Fatalf("unexpected cost: %+v", cost)
	}

	dep, err := uc.Depreciation(context.Background(), "a-1", time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dep.Fiscal.MonthlyDepreciation != 1000 || dep.Fiscal.AccumulatedDepreciation != 6000 || dep.Fiscal.BookValue != 6000 {
		t.Fatalf("unexpected fiscal schedule: %+v", dep.Fiscal)
	}
	if dep.Corporate.MonthlyDepreciation != 500 || dep.Corporate.AccumulatedDepreciation != 3000 {
		t.Fatalf("unexpected corporate schedule: %+v", dep.Corporate)
	}
}
