package request

import "gestao_obras/internal/usecase"

type ProjectRequest struct {
	Name             string `json:"name" validate:"required,max=200"`
	Description      string `json:"description" validate:"max=2000"`
	StartDate        Date   `json:"start_date" validate:"required"`
	EstimatedEndDate *Date  `json:"estimated_end_date"`
	Location         string `json:"location"`
	CostCenter       string `json:"cost_center"`
	PlannedCapex     Amount `json:"planned_capex" validate:"gte=0"`
	PlannedOpex      Amount `json:"planned_opex" validate:"gte=0"`
}

func (r ProjectRequest) ToInput() usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:             r.Name,
		Description:      r.Description,
		StartDate:        r.StartDate.Time,
		EstimatedEndDate: r.EstimatedEndDate.Ptr(),
		Location:         r.Location,
		CostCenter:       r.CostCenter,
		PlannedCapex:     float64(r.PlannedCapex),
		PlannedOpex:      float64(r.PlannedOpex),
	}
}

type RejectProjectRequest struct {
	Reason string `json:"reason" validate:"required"`
}
