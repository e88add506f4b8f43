package ledger

import (
	"fmt"
	"gestao_obras/internal/domain/entities"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = fmt.Errorf("%w: amount is not a valid number", entities.ErrValidation)

// ParseAmount reads a monetary amount typed either in Brazilian
// ("R$ 1.234,56") or US ("1,234.56") notation.
//
// When both separators appear the last one is the decimal mark. A lone comma
// is a decimal mark. A lone dot is a thousands separator when it repeats or
// when exactly three digits follow it ("1.000"), and a decimal mark otherwise.
// Blank input is zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.Map(func(r rune) rune {
		switch r {
		case 'R', '$', ' ', '\t', '\n', '\u00a0':
			return -1
		}
		return r
	}, raw)
	if s == "" {
		return decimal.Zero, nil
	}

	lastDot, lastComma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	case lastDot >= 0:
		parts := strings.Split(s, ".")
		if len(parts) > 2 || len(parts[1]) == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}

// Sum adds amounts as decimals and rounds the result to cents.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.Round(2).InexactFloat64()
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
