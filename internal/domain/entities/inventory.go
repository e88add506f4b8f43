package entities

import "time"

type InventoryStatus string

const (
	InventoryStatusPending         InventoryStatus = "pending"
	InventoryStatusWaitingApproval InventoryStatus = "waiting_approval"
	InventoryStatusCompleted       InventoryStatus = "completed"
)

// InventoryResult is the outcome of counting one asset.
type InventoryResult struct {
	AssetID       string `json:"asset_id"`
	NewCostCenter string `json:"new_cost_center"`
	Verified      bool   `json:"verified"`
}

// InventorySchedule is a physical count of assets assigned to one or more users.
//
// Storage model (DynamoDB):
//   - PK: id
type InventorySchedule struct {
	ID          string            `json:"id"`
	RequesterID string            `json:"requester_id"`
	AssetIDs    []string          `json:"asset_ids"`
	UserIDs     []string          `json:"user_ids"`
	Date        time.Time         `json:"date"`
	Notes       string            `json:"notes"`
	Status      InventoryStatus   `json:"status"`
	Results     []InventoryResult `json:"results"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsActive reports whether the schedule still holds its assets.
func (s InventorySchedule) IsActive() bool {
	return s.Status == InventoryStatusPending || s.Status == InventoryStatusWaitingApproval
}
