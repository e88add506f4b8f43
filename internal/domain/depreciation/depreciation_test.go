package depreciation

import (
	"errors"
	"math"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCompute_SixMonthsIntoOneYearLife(t *testing.T) {
	in := Input{CostBasis: 12000, ResidualValue: 0, UsefulLifeYears: 1, StartDate: date(2026, time.April, 18)}

	s, err := Compute(in, date(2026, time.October, 18))
	require.NoError(t, err)

	assert.Equal(t, 12, s.TotalMonths)
	assert.Equal(t, 6, s.ElapsedMonths)
	assert.InDelta(t, 1000, s.MonthlyDepreciation, 1e-9)
	assert.InDelta(t, 6000, s.AccumulatedDepreciation, 1e-9)
	assert.InDelta(t, 6000, s.BookValue, 1e-9)
	require.Len(t, s.Entries, 12)
	assert.Equal(t, "2026-04", s.Entries[0].Label)
	assert.Equal(t, "2027-03", s.Entries[11].Label)
	assert.Equal(t, date(2027, time.April, 1).Truncate(24*time.Hour), s.EndDate.Truncate(24*time.Hour))
}

func TestCompute_FullScheduleSumsToDepreciableAmount(t *testing.T) {
	cases := []Input{
		{CostBasis: 1000, ResidualValue: 0, UsefulLifeYears: 3},
		{CostBasis: 98765.43, ResidualValue: 1234.56, UsefulLifeYears: 7},
		{CostBasis: 0.01, ResidualValue: 0, UsefulLifeYears: 25},
		{CostBasis: 500, ResidualValue: 500, UsefulLifeYears: 5},
		{CostBasis: 100000, ResidualValue: 33333.33, UsefulLifeYears: 10},
	}

	for _, in := range cases {
		in.StartDate = date(2020, time.January, 31)
		s, err := Compute(in, date(2050, time.January, 1))
		require.NoError(t, err)

		sum := 0.0
		for _, e := range s.Entries {
			sum += e.Amount
		}
		assert.InDelta(t, in.CostBasis-in.ResidualValue, sum, 1e-6, "input %+v", in)

		last := s.Entries[len(s.Entries)-1]
		assert.InDelta(t, in.ResidualValue, last.BookValue, 1e-6, "input %+v", in)
		assert.InDelta(t, in.ResidualValue, s.BookValue, 1e-6, "input %+v", in)
		assert.Equal(t, s.TotalMonths, s.ElapsedMonths)
	}
}

func TestCompute_ZeroUsefulLife(t *testing.T) {
	in := Input{CostBasis: 5000, ResidualValue: 100, UsefulLifeYears: 0, StartDate: date(2024, time.March, 1)}

	for _, at := range []time.Time{date(2023, time.January, 1), date(2024, time.March, 1), date(2040, time.June, 1)} {
		s, err := Compute(in, at)
		require.NoError(t, err)
		assert.Empty(t, s.Entries)
		assert.Zero(t, s.MonthlyDepreciation)
		assert.Zero(t, s.AccumulatedDepreciation)
		assert.Equal(t, 5000.0, s.BookValue)
		assert.False(t, math.IsNaN(s.BookValue))
	}

	acc, err := AccumulatedAt(in, date(2030, time.January, 1))
	require.NoError(t, err)
	assert.Zero(t, acc)
}

func TestCompute_IsIdempotent(t *testing.T) {
	in := Input{CostBasis: 7300.5, ResidualValue: 300, UsefulLifeYears: 4, StartDate: date(2025, time.February, 10)}
	at := date(2026, time.October, 18)

	a, err := Compute(in, at)
	require.NoError(t, err)
	b, err := Compute(in, at)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompute_AccumulatedIsMonotonic(t *testing.T) {
	in := Input{CostBasis: 36000, ResidualValue: 6000, UsefulLifeYears: 2, StartDate: date(2025, time.June, 28)}

	prev := -1.0
	for at := date(2025, time.January, 1); at.Before(date(2028, time.January, 1)); at = at.AddDate(0, 0, 9) {
		s, err := Compute(in, at)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.AccumulatedDepreciation, prev)
		assert.LessOrEqual(t, s.AccumulatedDepreciation, s.DepreciableAmount)
		prev = s.AccumulatedDepreciation
	}
	assert.InDelta(t, 30000, prev, 1e-9)
}

func TestCompute_CalendarMonthsIgnoreDays(t *testing.T) {
	in := Input{CostBasis: 1200, UsefulLifeYears: 1, StartDate: date(2026, time.January, 28)}

	s, err := Compute(in, date(2026, time.February, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, s.ElapsedMonths)
	assert.InDelta(t, 100, s.AccumulatedDepreciation, 1e-9)
}

func TestCompute_FutureStartClampsToZero(t *testing.T) {
	in := Input{CostBasis: 1200, UsefulLifeYears: 1, StartDate: date(2027, time.January, 1)}

	s, err := Compute(in, date(2026, time.October, 18))
	require.NoError(t, err)
	assert.Equal(t, 0, s.ElapsedMonths)
	assert.Zero(t, s.AccumulatedDepreciation)
	assert.Equal(t, 1200.0, s.BookValue)
}

func TestCompute_ResidualAboveCostBasis(t *testing.T) {
	in := Input{CostBasis: 100, ResidualValue: 250, UsefulLifeYears: 1, StartDate: date(2025, time.January, 1)}

	s, err := Compute(in, date(2026, time.January, 1))
	require.NoError(t, err)
	assert.Zero(t, s.DepreciableAmount)
	assert.Zero(t, s.AccumulatedDepreciation)
	assert.Equal(t, 100.0, s.BookValue)
}

func TestInput_Validate(t *testing.T) {
	start := date(2025, time.January, 1)
	cases := []struct {
		name string
		in   Input
		want error
	}{
		{name: "negative cost", in: Input{CostBasis: -1, StartDate: start}, want: ErrInvalidCostBasis},
		{name: "nan cost", in: Input{CostBasis: math.NaN(), StartDate: start}, want: ErrInvalidCostBasis},
		{name: "inf cost", in: Input{CostBasis: math.Inf(1), StartDate: start}, want: ErrInvalidCostBasis},
		{name: "negative residual", in: Input{CostBasis: 10, ResidualValue: -5, StartDate: start}, want: ErrInvalidResidualValue},
		{name: "negative life", in: Input{CostBasis: 10, UsefulLifeYears: -1, StartDate: start}, want: ErrInvalidUsefulLife},
		{name: "missing start", in: Input{CostBasis: 10, UsefulLifeYears: 1}, want: ErrMissingStartDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.in, start)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, errors.Is(err, entities.ErrValidation))
		})
	}
}

func TestAmountForMonth(t *testing.T) {
	in := Input{CostBasis: 2400, UsefulLifeYears: 1, StartDate: date(2026, time.March, 15)}

	before, err := AmountForMonth(in, 2026, time.February)
	require.NoError(t, err)
	assert.Zero(t, before)

	first, err := AmountForMonth(in, 2026, time.March)
	require.NoError(t, err)
	assert.InDelta(t, 200, first, 1e-9)

	last, err := AmountForMonth(in, 2027, time.February)
	require.NoError(t, err)
	assert.InDelta(t, 200, last, 1e-9)

	after, err := AmountForMonth(in, 2027, time.March)
	require.NoError(t, err)
	assert.Zero(t, after)
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, MonthsBetween(date(2026, time.May, 1), date(2026, time.May, 31)))
	assert.Equal(t, 13, MonthsBetween(date(2025, time.December, 31), date(2027, time.January, 1)))
	assert.Equal(t, -2, MonthsBetween(date(2026, time.May, 1), date(2026, time.March, 1)))
}
