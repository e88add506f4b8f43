package ledger

import (
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "R$ 1.000,50", want: "1000.5"},
		{in: "1,000.50", want: "1000.5"},
		{in: "100,00", want: "100"},
		{in: "1.000", want: "1000"},
		{in: "1.000.000", want: "1000000"},
		{in: "10.50", want: "10.5"},
		{in: "R$ 32,50", want: "32.5"},
		{in: "", want: "0"},
		{in: "  ", want: "0"},
		{in: "-15,75", want: "-15.75"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	_, err := ParseAmount("doze reais")
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 0.0, Sum())
}

func TestClassify(t *testing.T) {
	t.Run("capex requires asset", func(t *testing.T) {
		_, err := Classify(entities.Expense{Type: entities.ExpenseTypeCapex, AssetID: strPtr("  ")})
		require.ErrorIs(t, err, ErrCapexRequiresAsset)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("capex clears accounting account", func(t *testing.T) {
		got, err := Classify(entities.Expense{
			Type:              entities.ExpenseTypeCapex,
			AssetID:           strPtr("a-1"),
			AccountingAccount: strPtr("3.1.01"),
		})
		require.NoError(t, err)
		assert.Nil(t, got.AccountingAccount)
		require.NotNil(t, got.AssetID)
		assert.Equal(t, "a-1", *got.AssetID)
	})

	t.Run("switching to opex drops the asset link", func(t *testing.T) {
		got, err := Classify(entities.Expense{
			Type:              entities.ExpenseTypeOpex,
			AssetID:           strPtr("a-1"),
			AccountingAccount: strPtr(" 3.1.01 "),
		})
		require.NoError(t, err)
		assert.Nil(t, got.AssetID)
		require.NotNil(t, got.AccountingAccount)
		assert.Equal(t, "3.1.01", *got.AccountingAccount)
	})

	t.Run("opex account is optional", func(t *testing.T) {
		got, err := Classify(entities.Expense{Type: entities.ExpenseTypeOpex, BudgetID: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, got.AccountingAccount)
		assert.Nil(t, got.BudgetID)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := Classify(entities.Expense{Type: "misc"})
		require.ErrorIs(t, err, ErrInvalidExpenseType)
	})
}

func TestIsLocked(t *testing.T) {
	for _, s := range []entities.ProjectStatus{
		entities.ProjectStatusAprovado,
		entities.ProjectStatusEmAndamento,
		entities.ProjectStatusConcluido,
		entities.ProjectStatusRejeitado,
	} {
		assert.True(t, IsLocked(s), s)
		err := CheckWritable(entities.Project{Code: "OBRA-001", Status: s})
		assert.ErrorIs(t, err, ErrProjectLocked)
		assert.ErrorIs(t, err, entities.ErrPermission)
	}
	for _, s := range []entities.ProjectStatus{
		entities.ProjectStatusAguardandoClassificacao,
		entities.ProjectStatusAguardandoEngenharia,
		entities.ProjectStatusAguardandoDiretoria,
		entities.ProjectStatusPlanejamento,
		entities.ProjectStatusPausado,
	} {
		assert.False(t, IsLocked(s), s)
		assert.NoError(t, CheckWritable(entities.Project{Status: s}))
	}
}

func TestAssetCostBasis(t *testing.T) {
	asset := entities.Asset{ID: "a-1", Value: 1000}
	expenses := []entities.Expense{
		{ID: "e-1", AssetID: strPtr("a-1"), Amount: 500, Type: entities.ExpenseTypeCapex},
		{ID: "e-2", AssetID: strPtr("a-1"), Amount: 250, Type: entities.ExpenseTypeCapex},
		{ID: "e-3", AssetID: strPtr("a-2"), Amount: 999, Type: entities.ExpenseTypeCapex},
		{ID: "e-4", Amount: 80, Type: entities.ExpenseTypeOpex},
	}

	assert.Equal(t, 1750.0, AssetCostBasis(asset, expenses))

	expenses[1].AssetID = nil
	assert.Equal(t, 1500.0, AssetCostBasis(asset, expenses))

	assert.Equal(t, 1000.0, AssetCostBasis(asset, nil))
}

func TestProjectTotals(t *testing.T) {
	p := entities.Project{ID: "p-1", PlannedCapex: 80000, PlannedOpex: 20000}
	expenses := []entities.Expense{
		{ProjectID: "p-1", Amount: 25000, Type: entities.ExpenseTypeCapex, Date: time.Now()},
		{ProjectID: "p-1", Amount: 5000, Type: entities.ExpenseTypeOpex},
		{ProjectID: "p-2", Amount: 7000, Type: entities.ExpenseTypeOpex},
	}

	got := ProjectTotals(p, expenses, nil)
	assert.Equal(t, 100000.0, got.Planned)
	assert.Equal(t, 30000.0, got.Realized)
	assert.Equal(t, 25000.0, got.Capex)
	assert.Equal(t, 5000.0, got.Opex)
	assert.Equal(t, 70000.0, got.Deviation)
	assert.Equal(t, 30.0, got.ConsumptionPct)

	t.Run("falls back to legacy budgets", func(t *testing.T) {
		legacy := entities.Project{ID: "p-1"}
		budgets := []entities.Budget{
			{ProjectID: "p-1", PlannedAmount: 40000},
			{ProjectID: "p-1", PlannedAmount: 20000},
			{ProjectID: "p-9", PlannedAmount: 1},
		}
		got := ProjectTotals(legacy, expenses, budgets)
		assert.Equal(t, 60000.0, got.Planned)
		assert.Equal(t, 30000.0, got.Deviation)
		assert.Equal(t, 50.0, got.ConsumptionPct)
	})

	t.Run("nothing planned", func(t *testing.T) {
		got := ProjectTotals(entities.Project{ID: "p-1"}, expenses, nil)
		assert.Zero(t, got.Planned)
		assert.Zero(t, got.ConsumptionPct)
		assert.Equal(t, -30000.0, got.Deviation)
	})
}

func TestBudgetRealized(t *testing.T) {
	expenses := []entities.Expense{
		{BudgetID: strPtr("b-1"), Amount: 10.10},
		{BudgetID: strPtr("b-1"), Amount: 20.20},
		{BudgetID: strPtr("b-2"), Amount: 5},
		{Amount: 3},
	}
	assert.Equal(t, 30.3, BudgetRealized("b-1", expenses))
	assert.Zero(t, BudgetRealized("b-3", expenses))
}
