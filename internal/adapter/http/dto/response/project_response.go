package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/workflow"
)

type ApprovalEntryResponse struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
	User   string    `json:"user"`
	Role   string    `json:"role"`
	Notes  string    `json:"notes,omitempty"`
}

type ProjectResponse struct {
	ID               string                  `json:"id"`
	Code             string                  `json:"code"`
	Name             string                  `json:"name"`
	Description      string                  `json:"description"`
	Status           string                  `json:"status"`
	StatusLabel      string                  `json:"status_label"`
	StartDate        time.Time               `json:"start_date"`
	EstimatedEndDate *time.Time              `json:"estimated_end_date,omitempty"`
	Location         string                  `json:"location"`
	CostCenter       string                  `json:"cost_center"`
	PlannedCapex     float64                 `json:"planned_capex"`
	PlannedOpex      float64                 `json:"planned_opex"`
	PlannedValue     float64                 `json:"planned_value"`
	ApprovalHistory  []ApprovalEntryResponse `json:"approval_history"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	history := make([]ApprovalEntryResponse, 0, len(p.ApprovalHistory))
	for _, h := range p.ApprovalHistory {
		history = append(history, ApprovalEntryResponse{
			Status: string(h.Status),
			Date:   h.Date,
			User:   h.User,
			Role:   string(h.Role),
			Notes:  h.Notes,
		})
	}
	return ProjectResponse{
		ID:               p.ID,
		Code:             p.Code,
		Name:             p.Name,
		Description:      p.Description,
		Status:           string(p.Status),
		StatusLabel:      statusLabel(p.Status),
		StartDate:        p.StartDate,
		EstimatedEndDate: p.EstimatedEndDate,
		Location:         p.Location,
		CostCenter:       p.CostCenter,
		PlannedCapex:     p.PlannedCapex,
		PlannedOpex:      p.PlannedOpex,
		PlannedValue:     p.PlannedValue,
		ApprovalHistory:  history,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

// statusLabel names workflow stages by their stage label; other statuses
// are returned as stored.
func statusLabel(s entities.ProjectStatus) string {
	if stage, ok := workflow.StageFor(s); ok {
		return "Aguardando " + stage.Label
	}
	switch s {
	case entities.ProjectStatusAprovado:
		return "Aprovado"
	case entities.ProjectStatusRejeitado:
		return "Rejeitado"
	}
	return string(s)
}
