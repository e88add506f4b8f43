package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gestao_obras/internal/domain/ledger"
)

// Amount accepts a JSON number or a formatted string such as
// "R$ 1.000,50" or "1,000.50".
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		d, err := ledger.ParseAmount(raw)
		if err != nil {
			return err
		}
		f, _ := d.Float64()
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(f)
	return nil
}

func (a *Amount) Float() float64 {
	if a == nil {
		return 0
	}
	return float64(*a)
}

// Date accepts "2006-01-02" or an RFC 3339 timestamp. Empty strings and
// null leave it zero.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("date: expected a string: %w", err)
	}
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("date: unsupported format %q", raw)
}

// Ptr returns nil for a zero date.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

