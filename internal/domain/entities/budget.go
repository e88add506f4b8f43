package entities

import "time"

// Budget is the legacy per-project budget record.
//
// It predates the plannedCapex/plannedOpex split on Project and is only read
// as a fallback for the planned total. RealizedAmount is never persisted: it
// is summed from the expenses that reference the budget.
type Budget struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PlannedAmount  float64   `json:"planned_amount"`
	RealizedAmount float64   `json:"realized_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
