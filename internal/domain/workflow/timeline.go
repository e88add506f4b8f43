package workflow

import "gestao_obras/internal/domain/entities"

// TimelineStep is one row of the approval timeline shown for a project.
type TimelineStep struct {
	Status     entities.ProjectStatus  `json:"status"`
	Label      string                  `json:"label"`
	Completed  bool                    `json:"completed"`
	Current    bool                    `json:"current"`
	Rejected   bool                    `json:"rejected"`
	ApprovedBy *entities.ApprovalEntry `json:"approved_by,omitempty"`
}

// Timeline lays the project history out over the three review stages plus
// the final approval.
//
// A step is attributed to whoever moved the project into the following
// status, so the attribution of step i is the latest entry recorded with
// the status of step i+1. Legacy statuses sit before the first stage.
func Timeline(p entities.Project) []TimelineStep {
	display := append(Stages(), Stage{Status: entities.ProjectStatusAprovado, Label: "Aprovado"})

	current := -1
	for i, s := range display {
		if s.Status == p.Status {
			current = i
		}
	}
	rejectedAt := -1
	if p.Status == entities.ProjectStatusRejeitado {
		if entry, ok := LatestEntry(p.ApprovalHistory, entities.ProjectStatusRejeitado); ok {
			rejectedAt = rejectedStage(p.ApprovalHistory, entry)
		}
	}

	steps := make([]TimelineStep, 0, len(display))
	for i, s := range display {
		step := TimelineStep{Status: s.Status, Label: s.Label}
		switch {
		case p.Status == entities.ProjectStatusAprovado:
			step.Completed = true
		case current >= 0:
			step.Completed = i < current
			step.Current = i == current
		case rejectedAt >= 0:
			step.Completed = i < rejectedAt
			step.Rejected = i == rejectedAt
		}

		if step.Completed && s.Next != "" {
			if entry, ok := LatestEntry(p.ApprovalHistory, s.Next); ok {
				e := entry
				step.ApprovedBy = &e
			}
		}
		if step.Rejected {
			if entry, ok := LatestEntry(p.ApprovalHistory, entities.ProjectStatusRejeitado); ok {
				e := entry
				step.ApprovedBy = &e
			}
		}
		steps = append(steps, step)
	}
	return steps
}

// rejectedStage finds the stage the project was in when it was rejected: the
// status of the entry recorded just before the rejection, or the first stage.
func rejectedStage(history []entities.ApprovalEntry, rejection entities.ApprovalEntry) int {
	prev := entities.ProjectStatusAguardandoClassificacao
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Status == entities.ProjectStatusRejeitado && history[i].Date.Equal(rejection.Date) {
			if i > 0 {
				prev = history[i-1].Status
			}
			break
		}
	}
	for i, s := range stages {
		if s.Status == prev {
			return i
		}
	}
	return 0
}
