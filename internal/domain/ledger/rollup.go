// Package ledger classifies project expenses and rolls them up into asset
// cost bases and project totals.
//
// Rollups are always recomputed from the expense list; no running total is
// stored anywhere.
package ledger

import (
	"gestao_obras/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AssetCostBasis is the asset's declared value plus every expense linked to it.
func AssetCostBasis(asset entities.Asset, expenses []entities.Expense) float64 {
	total := decimal.NewFromFloat(asset.Value)
	for _, e := range expenses {
		if e.AssetID != nil && *e.AssetID == asset.ID {
			total = total.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	return round2(total)
}

// BudgetRealized sums the expenses that reference budgetID.
func BudgetRealized(budgetID string, expenses []entities.Expense) float64 {
	total := decimal.Zero
	for _, e := range expenses {
		if e.BudgetID != nil && *e.BudgetID == budgetID {
			total = total.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	return round2(total)
}

// Totals is the planned versus realized picture of one project.
type Totals struct {
	Planned        float64 `json:"planned"`
	PlannedCapex   float64 `json:"planned_capex"`
	PlannedOpex    float64 `json:"planned_opex"`
	Realized       float64 `json:"realized"`
	Capex          float64 `json:"capex"`
	Opex           float64 `json:"opex"`
	Deviation      float64 `json:"deviation"`
	ConsumptionPct float64 `json:"consumption_pct"`
}

// PlannedTotal is plannedCapex + plannedOpex, falling back to the sum of the
// legacy budgets when the project has no planned split.
func PlannedTotal(p entities.Project, budgets []entities.Budget) decimal.Decimal {
	planned := decimal.NewFromFloat(p.PlannedCapex).Add(decimal.NewFromFloat(p.PlannedOpex))
	if !planned.IsZero() {
		return planned
	}
	for _, b := range budgets {
		if b.ProjectID == p.ID {
			planned = planned.Add(decimal.NewFromFloat(b.PlannedAmount))
		}
	}
	return planned
}

// ProjectTotals rolls up the expenses of p. Expenses and budgets of other
// projects are ignored.
func ProjectTotals(p entities.Project, expenses []entities.Expense, budgets []entities.Budget) Totals {
	capex, opex := decimal.Zero, decimal.Zero
	for _, e := range expenses {
		if e.ProjectID != p.ID {
			continue
		}
		amount := decimal.NewFromFloat(e.Amount)
		if e.Type == entities.ExpenseTypeCapex {
			capex = capex.Add(amount)
		} else {
			opex = opex.Add(amount)
		}
	}

	planned := PlannedTotal(p, budgets)
	realized := capex.Add(opex)
	t := Totals{
		Planned:      round2(planned),
		PlannedCapex: p.PlannedCapex,
		PlannedOpex:  p.PlannedOpex,
		Realized:     round2(realized),
		Capex:        round2(capex),
		Opex:         round2(opex),
		Deviation:    round2(planned.Sub(realized)),
	}
	if planned.IsPositive() {
		t.ConsumptionPct = round2(realized.Div(planned).Mul(decimal.NewFromInt(100)))
	}
	return t
}
