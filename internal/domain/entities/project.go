package entities

import "time"

// ProjectStatus represents where a project (obra) sits in the approval flow.
//
// The first five values are driven by the approval workflow. The remaining
// ones are legacy statuses written before the workflow existed; they are
// still readable and some of them freeze the project financially.

type ProjectStatus string

const (
	ProjectStatusAguardandoClassificacao ProjectStatus = "aguardando_classificacao"
	ProjectStatusAguardandoEngenharia    ProjectStatus = "aguardando_engenharia"
	ProjectStatusAguardandoDiretoria     ProjectStatus = "aguardando_diretoria"
	ProjectStatusAprovado                ProjectStatus = "aprovado"
	ProjectStatusRejeitado               ProjectStatus = "rejeitado"

	ProjectStatusPlanejamento ProjectStatus = "planejamento"
	ProjectStatusEmAndamento  ProjectStatus = "em_andamento"
	ProjectStatusConcluido    ProjectStatus = "concluido"
	ProjectStatusPausado      ProjectStatus = "pausado"
)

// ApprovalEntry is one append-only record of a workflow transition.
type ApprovalEntry struct {
	Status ProjectStatus `json:"status"`
	Date   time.Time     `json:"date"`
	User   string        `json:"user"`
	Role   Role          `json:"role"`
	Notes  string        `json:"notes,omitempty"`
}

// Project is a construction project persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - approval_history is stored inline as a list
//
// PlannedValue is always PlannedCapex + PlannedOpex at write time.
type Project struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Status           ProjectStatus   `json:"status"`
	StartDate        time.Time       `json:"start_date"`
	EstimatedEndDate *time.Time      `json:"estimated_end_date,omitempty"`
	Location         string          `json:"location"`
	CostCenter       string          `json:"cost_center"`
	PlannedCapex     float64         `json:"planned_capex"`
	PlannedOpex      float64         `json:"planned_opex"`
	PlannedValue     float64         `json:"planned_value"`
	ApprovalHistory  []ApprovalEntry `json:"approval_history"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
