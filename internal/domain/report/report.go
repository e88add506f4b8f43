// Package report builds the portfolio dashboard from point-in-time snapshots
// of projects, assets, expenses and budgets.
package report

import (
	"gestao_obras/internal/domain/depreciation"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/ledger"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	UnclassifiedLabel  = "Não Classificado"
	NoCostCenterLabel  = "Sem CC"
	warningConsumption = 80
	dangerConsumption  = 95
)

// Traffic-light status of a cost center's consumption.
const (
	StatusGreen  = "verde"
	StatusYellow = "amarelo"
	StatusRed    = "vermelho"
)

// Snapshot is everything the dashboard is computed from.
type Snapshot struct {
	Projects []entities.Project
	Assets   []entities.Asset
	Expenses []entities.Expense
	Budgets  []entities.Budget
}

type Overview struct {
	TotalExpenses    float64 `json:"total_expenses"`
	TotalCapex       float64 `json:"total_capex"`
	TotalOpex        float64 `json:"total_opex"`
	CapexPct         float64 `json:"capex_pct"`
	TotalAssetsValue float64 `json:"total_assets_value"`
	AssetsTotal      int     `json:"assets_total"`
	AssetsInProgress int     `json:"assets_in_progress"`
	AssetsCompleted  int     `json:"assets_completed"`
}

type CostCenterMetrics struct {
	Name           string  `json:"name"`
	Budget         float64 `json:"budget"`
	Realized       float64 `json:"realized"`
	Deviation      float64 `json:"deviation"`
	ConsumptionPct float64 `json:"consumption_pct"`
	Status         string  `json:"status"`
}

type MonthlyEvolution struct {
	Month    string  `json:"month"`
	Budget   float64 `json:"budget"`
	Realized float64 `json:"realized"`
}

type BudgetMetrics struct {
	TotalBudget      float64             `json:"total_budget"`
	TotalRealized    float64             `json:"total_realized"`
	Deviation        float64             `json:"deviation"`
	ConsumptionPct   float64             `json:"consumption_pct"`
	BurnRate         float64             `json:"burn_rate"`
	RunRate          float64             `json:"run_rate"`
	CostCenters      []CostCenterMetrics `json:"cost_centers"`
	MonthlyEvolution []MonthlyEvolution  `json:"monthly_evolution"`
}

type AssetClassSummary struct {
	Name         string  `json:"name"`
	Cost         float64 `json:"cost"`
	Depreciation float64 `json:"depreciation"`
	Residual     float64 `json:"residual"`
	Count        int     `json:"count"`
}

type MonthlyDepreciation struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type AssetMovement struct {
	Name                string  `json:"name"`
	InitialCost         float64 `json:"initial_cost"`
	Additions           float64 `json:"additions"`
	FinalCost           float64 `json:"final_cost"`
	InitialDepreciation float64 `json:"initial_depreciation"`
	PeriodDepreciation  float64 `json:"period_depreciation"`
	FinalDepreciation   float64 `json:"final_depreciation"`
	NetValue            float64 `json:"net_value"`
}

type Dashboard struct {
	Year                int                   `json:"year"`
	GeneratedAt         time.Time             `json:"generated_at"`
	Overview            Overview              `json:"overview"`
	Budget              BudgetMetrics         `json:"budget"`
	AssetClasses        []AssetClassSummary   `json:"asset_classes"`
	MonthlyDepreciation []MonthlyDepreciation `json:"monthly_depreciation"`
	AssetMovement       []AssetMovement       `json:"asset_movement"`
}

// Build computes the dashboard as of now. The reporting year is now's year.
func Build(s Snapshot, now time.Time) Dashboard {
	now = now.UTC()
	costs := assetCosts(s.Assets, s.Expenses)
	return Dashboard{
		Year:                now.Year(),
		GeneratedAt:         now,
		Overview:            overview(s, costs),
		Budget:              budgetMetrics(s, now),
		AssetClasses:        assetClassSummary(s.Assets, costs, now),
		MonthlyDepreciation: monthlyDepreciation(s.Assets, costs, now.Year()),
		AssetMovement:       assetMovement(s.Assets, costs, now),
	}
}

func assetCosts(assets []entities.Asset, expenses []entities.Expense) map[string]float64 {
	out := make(map[string]float64, len(assets))
	for _, a := range assets {
		out[a.ID] = ledger.AssetCostBasis(a, expenses)
	}
	return out
}

// fiscalInput returns the fiscal depreciation input of a, or false when the
// asset has no useful life or no start date.
func fiscalInput(a entities.Asset, cost float64) (depreciation.Input, bool) {
	start, ok := a.DepreciationStart()
	if !ok || a.UsefulLife <= 0 {
		return depreciation.Input{}, false
	}
	in := depreciation.Input{
		CostBasis:       cost,
		ResidualValue:   a.ResidualValue,
		UsefulLifeYears: a.UsefulLife,
		StartDate:       start,
	}
	if in.Validate() != nil {
		return depreciation.Input{}, false
	}
	return in, true
}

func className(a entities.Asset) string {
	if a.AssetClass == "" {
		return UnclassifiedLabel
	}
	return a.AssetClass
}

func overview(s Snapshot, costs map[string]float64) Overview {
	capex, opex := decimal.Zero, decimal.Zero
	for _, e := range s.Expenses {
		if e.Type == entities.ExpenseTypeCapex {
			capex = capex.Add(decimal.NewFromFloat(e.Amount))
		} else {
			opex = opex.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	total := capex.Add(opex)

	o := Overview{
		TotalExpenses: round(total),
		TotalCapex:    round(capex),
		TotalOpex:     round(opex),
		AssetsTotal:   len(s.Assets),
	}
	if total.IsPositive() {
		o.CapexPct = round(capex.Div(total).Mul(decimal.NewFromInt(100)))
	}

	value := decimal.Zero
	for _, a := range s.Assets {
		value = value.Add(decimal.NewFromFloat(costs[a.ID]))
		if a.Status == entities.AssetStatusConcluido {
			o.AssetsCompleted++
		} else {
			o.AssetsInProgress++
		}
	}
	o.TotalAssetsValue = round(value)
	return o
}

func budgetMetrics(s Snapshot, now time.Time) BudgetMetrics {
	projects := make(map[string]entities.Project, len(s.Projects))
	for _, p := range s.Projects {
		projects[p.ID] = p
	}

	type ccTotals struct{ budget, realized decimal.Decimal }
	centers := map[string]*ccTotals{}
	center := func(name string) *ccTotals {
		if name == "" {
			name = NoCostCenterLabel
		}
		c, ok := centers[name]
		if !ok {
			c = &ccTotals{budget: decimal.Zero, realized: decimal.Zero}
			centers[name] = c
		}
		return c
	}

	totalBudget := decimal.Zero
	plannedByProject := make(map[string]decimal.Decimal, len(s.Projects))
	for _, p := range s.Projects {
		planned := ledger.PlannedTotal(p, s.Budgets)
		plannedByProject[p.ID] = planned
		totalBudget = totalBudget.Add(planned)
		c := center(p.CostCenter)
		c.budget = c.budget.Add(planned)
	}

	realized, yearRealized := decimal.Zero, decimal.Zero
	monthRealized := make([]decimal.Decimal, 12)
	for i := range monthRealized {
		monthRealized[i] = decimal.Zero
	}
	for _, e := range s.Expenses {
		p, ok := projects[e.ProjectID]
		if !ok {
			continue
		}
		amount := decimal.NewFromFloat(e.Amount)
		realized = realized.Add(amount)
		c := center(p.CostCenter)
		c.realized = c.realized.Add(amount)

		if d := e.Date.UTC(); d.Year() == now.Year() {
			yearRealized = yearRealized.Add(amount)
			monthRealized[d.Month()-1] = monthRealized[d.Month()-1].Add(amount)
		}
	}

	m := BudgetMetrics{
		TotalBudget:   round(totalBudget),
		TotalRealized: round(realized),
		Deviation:     round(totalBudget.Sub(realized)),
	}
	m.ConsumptionPct = pct(realized, totalBudget)
	burn := yearRealized.Div(decimal.NewFromInt(int64(now.Month())))
	m.BurnRate = round(burn)
	m.RunRate = round(burn.Mul(decimal.NewFromInt(12)))

	m.CostCenters = make([]CostCenterMetrics, 0, len(centers))
	for name, c := range centers {
		consumption := pct(c.realized, c.budget)
		m.CostCenters = append(m.CostCenters, CostCenterMetrics{
			Name:           name,
			Budget:         round(c.budget),
			Realized:       round(c.realized),
			Deviation:      round(c.budget.Sub(c.realized)),
			ConsumptionPct: consumption,
			Status:         consumptionStatus(consumption),
		})
	}
	sort.SliceStable(m.CostCenters, func(i, j int) bool {
		if m.CostCenters[i].Realized != m.CostCenters[j].Realized {
			return m.CostCenters[i].Realized > m.CostCenters[j].Realized
		}
		return m.CostCenters[i].Name < m.CostCenters[j].Name
	})

	monthBudget := spreadBudget(s.Projects, plannedByProject, now.Year())
	m.MonthlyEvolution = make([]MonthlyEvolution, 12)
	for i := range m.MonthlyEvolution {
		m.MonthlyEvolution[i] = MonthlyEvolution{
			Month:    time.Date(now.Year(), time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
			Budget:   round(monthBudget[i]),
			Realized: round(monthRealized[i]),
		}
	}
	return m
}

// spreadBudget distributes each project's planned total linearly over its
// duration and returns the share falling in each month of year. A project
// without an estimated end date is assumed to run for twelve months.
func spreadBudget(projects []entities.Project, planned map[string]decimal.Decimal, year int) []decimal.Decimal {
	out := make([]decimal.Decimal, 12)
	for i := range out {
		out[i] = decimal.Zero
	}
	for _, p := range projects {
		total := planned[p.ID]
		if !total.IsPositive() || p.StartDate.IsZero() {
			continue
		}
		start := p.StartDate.UTC()
		end := time.Date(start.Year()+1, start.Month(), 0, 0, 0, 0, 0, time.UTC)
		if p.EstimatedEndDate != nil && !p.EstimatedEndDate.IsZero() {
			end = p.EstimatedEndDate.UTC()
		}
		if end.Before(start) {
			continue
		}

		duration := depreciation.MonthsBetween(start, end) + 1
		monthly := total.Div(decimal.NewFromInt(int64(duration)))

		first, last := 0, 11
		if start.Year() > year || end.Year() < year {
			continue
		}
		if start.Year() == year {
			first = int(start.Month()) - 1
		}
		if end.Year() == year {
			last = int(end.Month()) - 1
		}
		for i := first; i <= last; i++ {
			out[i] = out[i].Add(monthly)
		}
	}
	return out
}

func assetClassSummary(assets []entities.Asset, costs map[string]float64, now time.Time) []AssetClassSummary {
	type acc struct {
		cost, dep decimal.Decimal
		count     int
	}
	classes := map[string]*acc{}
	for _, a := range assets {
		name := className(a)
		c, ok := classes[name]
		if !ok {
			c = &acc{cost: decimal.Zero, dep: decimal.Zero}
			classes[name] = c
		}
		cost := costs[a.ID]
		c.cost = c.cost.Add(decimal.NewFromFloat(cost))
		c.count++
		if in, ok := fiscalInput(a, cost); ok {
			dep, _ := depreciation.AccumulatedAt(in, now)
			c.dep = c.dep.Add(decimal.NewFromFloat(dep))
		}
	}

	out := make([]AssetClassSummary, 0, len(classes))
	for name, c := range classes {
		out = append(out, AssetClassSummary{
			Name:         name,
			Cost:         round(c.cost),
			Depreciation: round(c.dep),
			Residual:     round(c.cost.Sub(c.dep)),
			Count:        c.count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost > out[j].Cost
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func monthlyDepreciation(assets []entities.Asset, costs map[string]float64, year int) []MonthlyDepreciation {
	totals := make([]decimal.Decimal, 12)
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for _, a := range assets {
		in, ok := fiscalInput(a, costs[a.ID])
		if !ok {
			continue
		}
		for m := 0; m < 12; m++ {
			amount, _ := depreciation.AmountForMonth(in, year, time.Month(m+1))
			totals[m] = totals[m].Add(decimal.NewFromFloat(amount))
		}
	}

	out := make([]MonthlyDepreciation, 12)
	for m := range out {
		out[m] = MonthlyDepreciation{
			Month: time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
			Value: round(totals[m]),
		}
	}
	return out
}

// assetMovement is the roll-forward of cost and accumulated depreciation per
// class from January 1st of now's year up to now. Assets started before the
// year are opening balance; the rest are additions.
func assetMovement(assets []entities.Asset, costs map[string]float64, now time.Time) []AssetMovement {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	type acc struct{ initialCost, additions, initialDep, periodDep decimal.Decimal }
	classes := map[string]*acc{}
	for _, a := range assets {
		name := className(a)
		c, ok := classes[name]
		if !ok {
			c = &acc{decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero}
			classes[name] = c
		}

		cost := decimal.NewFromFloat(costs[a.ID])
		if a.StartDate != nil && a.StartDate.Before(yearStart) {
			c.initialCost = c.initialCost.Add(cost)
		} else {
			c.additions = c.additions.Add(cost)
		}

		in, ok := fiscalInput(a, costs[a.ID])
		if !ok {
			continue
		}
		opening, _ := depreciation.AccumulatedAt(in, yearStart)
		closing, _ := depreciation.AccumulatedAt(in, now)
		c.initialDep = c.initialDep.Add(decimal.NewFromFloat(opening))
		c.periodDep = c.periodDep.Add(decimal.NewFromFloat(closing - opening))
	}

	out := make([]AssetMovement, 0, len(classes))
	for name, c := range classes {
		finalCost := c.initialCost.Add(c.additions)
		finalDep := c.initialDep.Add(c.periodDep)
		out = append(out, AssetMovement{
			Name:                name,
			InitialCost:         round(c.initialCost),
			Additions:           round(c.additions),
			FinalCost:           round(finalCost),
			InitialDepreciation: round(c.initialDep),
			PeriodDepreciation:  round(c.periodDep),
			FinalDepreciation:   round(finalDep),
			NetValue:            round(finalCost.Sub(finalDep)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FinalCost != out[j].FinalCost {
			return out[i].FinalCost > out[j].FinalCost
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func consumptionStatus(pct float64) string {
	switch {
	case pct > dangerConsumption:
		return StatusRed
	case pct > warningConsumption:
		return StatusYellow
	default:
		return StatusGreen
	}
}

func pct(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return round(part.Div(whole).Mul(decimal.NewFromInt(100)))
}

func round(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
