// Package depreciation computes straight-line depreciation schedules.
//
// Everything here is a pure function of the asset's cost basis, residual
// value, useful life and start date plus the evaluation instant. Nothing is
// stored, so a schedule re-derived later reproduces the same past months.
package depreciation

import (
	"fmt"
	"math"
	"time"

	"gestao_obras/internal/domain/entities"
)

const monthLabelLayout = "2006-01"

var (
	ErrInvalidCostBasis     = fmt.Errorf("%w: cost basis must be a finite, non-negative number", entities.ErrValidation)
	ErrInvalidResidualValue = fmt.Errorf("%w: residual value must be a finite, non-negative number", entities.ErrValidation)
	ErrInvalidUsefulLife    = fmt.Errorf("%w: useful life must be zero or more years", entities.ErrValidation)
	ErrMissingStartDate     = fmt.Errorf("%w: depreciation start date is required", entities.ErrValidation)
)

// Input holds the four values a schedule is derived from.
type Input struct {
	CostBasis       float64
	ResidualValue   float64
	UsefulLifeYears int
	StartDate       time.Time
}

// Entry is one month of the schedule.
type Entry struct {
	Month       int     `json:"month"`
	Label       string  `json:"label"`
	Amount      float64 `json:"amount"`
	Accumulated float64 `json:"accumulated"`
	BookValue   float64 `json:"book_value"`
}

// Schedule is the full monthly schedule plus the position at the evaluation instant.
type Schedule struct {
	CostBasis               float64   `json:"cost_basis"`
	ResidualValue           float64   `json:"residual_value"`
	UsefulLifeYears         int       `json:"useful_life_years"`
	StartDate               time.Time `json:"start_date"`
	EndDate                 time.Time `json:"end_date"`
	EvaluatedAt             time.Time `json:"evaluated_at"`
	DepreciableAmount       float64   `json:"depreciable_amount"`
	MonthlyDepreciation     float64   `json:"monthly_depreciation"`
	TotalMonths             int       `json:"total_months"`
	ElapsedMonths           int       `json:"elapsed_months"`
	AccumulatedDepreciation float64   `json:"accumulated_depreciation"`
	BookValue               float64   `json:"book_value"`
	Entries                 []Entry   `json:"entries"`
}

func (in Input) Validate() error {
	if !isFiniteNonNegative(in.CostBasis) {
		return ErrInvalidCostBasis
	}
	if !isFiniteNonNegative(in.ResidualValue) {
		return ErrInvalidResidualValue
	}
	if in.UsefulLifeYears < 0 {
		return ErrInvalidUsefulLife
	}
	if in.StartDate.IsZero() {
		return ErrMissingStartDate
	}
	return nil
}

// DepreciableAmount is max(0, cost basis - residual value).
func (in Input) DepreciableAmount() float64 {
	return math.Max(0, in.CostBasis-in.ResidualValue)
}

func (in Input) TotalMonths() int {
	return in.UsefulLifeYears * 12
}

// MonthlyDepreciation is the constant straight-line rate. It is zero when no
// useful life is defined; the division never runs in that case.
func (in Input) MonthlyDepreciation() float64 {
	total := in.TotalMonths()
	if total <= 0 {
		return 0
	}
	return in.DepreciableAmount() / float64(total)
}

// Compute derives the schedule and the accumulated/book values as of at.
func Compute(in Input, at time.Time) (Schedule, error) {
	if err := in.Validate(); err != nil {
		return Schedule{}, err
	}

	total := in.TotalMonths()
	s := Schedule{
		CostBasis:         in.CostBasis,
		ResidualValue:     in.ResidualValue,
		UsefulLifeYears:   in.UsefulLifeYears,
		StartDate:         in.StartDate,
		EndDate:           addMonths(in.StartDate, total),
		EvaluatedAt:       at,
		DepreciableAmount: in.DepreciableAmount(),
		TotalMonths:       total,
		Entries:           []Entry{},
	}
	if total <= 0 {
		s.TotalMonths = 0
		s.EndDate = in.StartDate
		s.BookValue = in.CostBasis
		return s, nil
	}

	s.MonthlyDepreciation = in.MonthlyDepreciation()
	s.ElapsedMonths = ElapsedMonths(in, at)
	s.AccumulatedDepreciation = in.accumulatedAfter(s.ElapsedMonths)
	s.BookValue = in.CostBasis - s.AccumulatedDepreciation

	s.Entries = make([]Entry, 0, total)
	first := monthStart(in.StartDate)
	for i := 1; i <= total; i++ {
		acc := in.accumulatedAfter(i)
		s.Entries = append(s.Entries, Entry{
			Month:       i,
			Label:       first.AddDate(0, i-1, 0).Format(monthLabelLayout),
			Amount:      acc - in.accumulatedAfter(i-1),
			Accumulated: acc,
			BookValue:   in.CostBasis - acc,
		})
	}
	return s, nil
}

// AccumulatedAt returns the accumulated depreciation as of at.
func AccumulatedAt(in Input, at time.Time) (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	if in.TotalMonths() <= 0 {
		return 0, nil
	}
	return in.accumulatedAfter(ElapsedMonths(in, at)), nil
}

// AmountForMonth returns the depreciation booked in the calendar month of
// year/month. The month of the start date is the first month of the schedule.
func AmountForMonth(in Input, year int, month time.Month) (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	total := in.TotalMonths()
	if total <= 0 {
		return 0, nil
	}
	k := MonthsBetween(in.StartDate, time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)) + 1
	if k < 1 || k > total {
		return 0, nil
	}
	return in.accumulatedAfter(k) - in.accumulatedAfter(k-1), nil
}

// ElapsedMonths is the whole calendar months from the start date to at,
// clamped to [0, total months].
func ElapsedMonths(in Input, at time.Time) int {
	elapsed := MonthsBetween(in.StartDate, at)
	if elapsed < 0 {
		return 0
	}
	if total := in.TotalMonths(); elapsed > total {
		return total
	}
	return elapsed
}

// MonthsBetween is the calendar year/month difference between two instants.
// Days are ignored: the 28th to the 1st of the next month is one month.
func MonthsBetween(from, to time.Time) int {
	from, to = from.UTC(), to.UTC()
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// accumulatedAfter caps at the depreciable amount; the last month absorbs
// any floating point remainder so the schedule sums exactly.
func (in Input) accumulatedAfter(months int) float64 {
	depreciable := in.DepreciableAmount()
	if months <= 0 {
		return 0
	}
	if months >= in.TotalMonths() {
		return depreciable
	}
	return math.Min(float64(months)*in.MonthlyDepreciation(), depreciable)
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func addMonths(t time.Time, months int) time.Time {
	return monthStart(t).AddDate(0, months, 0)
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
