package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/ledger"
	mock_interfaces "gestao_obras/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type expenseMocks struct {
	repo     *mock_interfaces.MockIExpenseRepository
	projects *mock_interfaces.MockIProjectRepository
	assets   *mock_interfaces.MockIAssetRepository
	budgets  *mock_interfaces.MockIBudgetRepository
	nfe      *mock_interfaces.MockINFeProvider
}

func newExpenseUseCase(t *testing.T) (*ExpenseUseCase, expenseMocks) {
	ctrl := gomock.NewController(t)
	m := expenseMocks{
		repo:     mock_interfaces.NewMockIExpenseRepository(ctrl),
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		assets:   mock_interfaces.NewMockIAssetRepository(ctrl),
		budgets:  mock_interfaces.NewMockIBudgetRepository(ctrl),
		nfe:      mock_interfaces.NewMockINFeProvider(ctrl),
	}
	return NewExpenseUseCase(m.repo, m.projects, m.assets, m.budgets, m.nfe, nil), m
}

var expenseDate = time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC)

func TestExpenseUseCase_Create(t *testing.T) {
	t.Run("amount required", func(t *testing.T) {
		uc, _ := newExpenseUseCase(t)
		_, err := uc.Create(context.Background(), ExpenseInput{ProjectID: "p-1", Description: "Cimento", Type: entities.ExpenseTypeOpex, Date: expenseDate})
		if !errors.Is(err, ErrInvalidExpenseAmount) {
			t.Fatalf("expected ErrInvalidExpenseAmount, got %v", err)
		}
	})

	t.Run("capex without asset", func(t *testing.T) {
		uc, _ := newExpenseUseCase(t)
		_, err := uc.Create(context.Background(), ExpenseInput{ProjectID: "p-1", Description: "Cimento", Amount: 10, Type: entities.ExpenseTypeCapex, Date: expenseDate})
		if !errors.Is(err, ledger.ErrCapexRequiresAsset) {
			t.Fatalf("expected ErrCapexRequiresAsset, got %v", err)
		}
	})

	t.Run("locked project", func(t *testing.T) {
		for _, status := range []entities.ProjectStatus{
			entities.ProjectStatusAprovado, entities.ProjectStatusEmAndamento,
			entities.ProjectStatusConcluido, entities.ProjectStatusRejeitado,
		} {
			uc, m := newExpenseUseCase(t)
			m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: status}, nil)

			_, err := uc.Create(context.Background(), ExpenseInput{ProjectID: "p-1", Description: "Cimento", Amount: 10, Type: entities.ExpenseTypeOpex, Date: expenseDate})
			if !errors.Is(err, ledger.ErrProjectLocked) || !errors.Is(err, entities.ErrPermission) {
				t.Fatalf("%s: expected ErrProjectLocked, got %v", status, err)
			}
		}
	})

	t.Run("asset from another project", func(t *testing.T) {
		uc, m := newExpenseUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusAguardandoClassificacao}, nil)
		m.assets.EXPECT().GetByID(gomock.Any(), "a-9").Return(entities.Asset{ID: "a-9", ProjectID: "p-2"}, nil)

		_, err := uc.Create(context.Background(), ExpenseInput{ProjectID: "p-1", Description: "Aço", Amount: 10, Type: entities.ExpenseTypeCapex, AssetID: strPtr("a-9"), Date: expenseDate})
		if !errors.Is(err, ErrAssetProjectMismatch) {
			t.Fatalf("expected ErrAssetProjectMismatch, got %v", err)
		}
	})

	t.Run("capex success clears account", func(t *testing.T) {
		uc, m := newExpenseUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusAguardandoEngenharia}, nil)
		m.assets.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Asset{ID: "a-1", ProjectID: "p-1"}, nil)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", ProjectID: "p-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.ID == "" || e.AccountingAccount != nil || e.AssetID == nil || *e.AssetID != "a-1" {
					t.Fatalf("unexpected expense: %+v", e)
				}
				if e.BudgetID == nil || *e.BudgetID != "b-1" || e.Amount != 1750.5 {
					t.Fatalf("unexpected expense: %+v", e)
				}
				return e, nil
			},
		)

		_, err := uc.Create(context.Background(), ExpenseInput{
			ProjectID: "p-1", Description: "Aço", Amount: 1750.5, Type: entities.ExpenseTypeCapex,
			AssetID: strPtr("a-1"), BudgetID: strPtr("b-1"), AccountingAccount: strPtr("3.1"), Date: expenseDate,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestExpenseUseCase_UpdateChangesType(t *testing.T) {
	uc, m := newExpenseUseCase(t)
	m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Expense{
		ID: "e-1", ProjectID: "p-1", Type: entities.ExpenseTypeCapex, AssetID: strPtr("a-1"), Amount: 10, Description: "x", Date: expenseDate,
	}, nil)
	m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusAguardandoDiretoria}, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Expense) (entities.Expense, error) {
			if e.AssetID != nil || e.AccountingAccount == nil || *e.AccountingAccount != "4.1.02" || e.ProjectID != "p-1" {
				t.Fatalf("unexpected expense: %+v", e)
			}
			return e, nil
		},
	)

	_, err := uc.Update(context.Background(), "e-1", ExpenseInput{
		ProjectID: "p-other", Description: "Frete", Amount: 10, Type: entities.ExpenseTypeOpex,
		AssetID: strPtr("a-1"), AccountingAccount: strPtr("4.1.02"), Date: expenseDate,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestExpenseUseCase_LinkAndUnlink(t *testing.T) {
	stored := entities.Expense{ID: "e-1", ProjectID: "p-1", Type: entities.ExpenseTypeCapex, AssetID: strPtr("a-1"), Amount: 250}
	open := entities.Project{ID: "p-1", Status: entities.ProjectStatusAguardandoClassificacao}

	t.Run("unlink", func(t *testing.T) {
		uc, m := newExpenseUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(stored, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(open, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.AssetID != nil {
					t.Fatalf("expected asset to be cleared")
				}
				return e, nil
			},
		)
		if _, err := uc.UnlinkFromAsset(context.Background(), "e-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("link opex rejected", func(t *testing.T) {
		uc, m := newExpenseUseCase(t)
		opex := entities.Expense{ID: "e-2", ProjectID: "p-1", Type: entities.ExpenseTypeOpex}
		m.repo.EXPECT().GetByID(gomock.Any(), "e-2").Return(opex, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(open, nil)

		_, err := uc.LinkToAsset(context.Background(), "e-2", "a-1")
		if !errors.Is(err, ErrOnlyCapexLinksToAssets) {
			t.Fatalf("expected ErrOnlyCapexLinksToAssets, got %v", err)
		}
	})

	t.Run("link to budget checks all first", func(t *testing.T) {
		uc, m := newExpenseUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", ProjectID: "p-1"}, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(stored, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-3").Return(entities.Expense{ID: "e-3", ProjectID: "p-2"}, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(open, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.Project{ID: "p-2", Status: entities.ProjectStatusAprovado}, nil)

		_, err := uc.LinkToBudget(context.Background(), "b-1", []string{"e-1", "e-3"})
		if !errors.Is(err, ledger.ErrProjectLocked) {
			t.Fatalf("expected ErrProjectLocked, got %v", err)
		}
	})
}

func TestExpenseUseCase_LookupNFe(t *testing.T) {
	key := "35240612345678000190550010000012341000012345"

	t.Run("invalid key", func(t *testing.T) {
		uc, _ := newExpenseUseCase(t)
		_, err := uc.LookupNFe(context.Background(), "123")
		if !errors.Is(err, ErrInvalidAccessKey) {
			t.Fatalf("expected ErrInvalidAccessKey, got %v", err)
		}
	})

	t.Run("provider unavailable", func(t *testing.T) {
		uc, m := newExpenseUseCase(t)
		m.nfe.EXPECT().Lookup(gomock.Any(), key).Return(entities.NFeData{}, entities.ErrIntegration)

		_, err := uc.LookupNFe(context.Background(), key[:20]+" "+key[20:])
		if !errors.Is(err, entities.ErrIntegration) {
			t.Fatalf("expected integration error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newExpenseUseCase(t)
		m.nfe.EXPECT().Lookup(gomock.Any(), key).Return(entities.NFeData{Description: "Materiais", Amount: 3450}, nil)

		data, err := uc.LookupNFe(context.Background(), key)
		if err != nil || data.Amount != 3450 {
			t.Fatalf("unexpected result: %+v, %v", data, err)
		}
	})
}
