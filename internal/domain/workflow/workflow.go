// Package workflow implements the project approval state machine.
//
// aguardando_classificacao -> aguardando_engenharia -> aguardando_diretoria -> aprovado,
// with rejeitado reachable from any non-terminal stage. Each stage is gated by
// a role; diretoria may act on every stage.
package workflow

import (
	"fmt"
	"gestao_obras/internal/domain/entities"
	"strings"
	"time"
)

// OverrideRole may perform any transition.
const OverrideRole = entities.RoleDiretoria

var (
	ErrInsufficientRole        = fmt.Errorf("%w: role cannot act on this stage", entities.ErrPermission)
	ErrTerminal                = fmt.Errorf("%w: project already reached a final status", entities.ErrInvalidState)
	ErrUnknownStage            = fmt.Errorf("%w: project status is not part of the approval flow", entities.ErrInvalidState)
	ErrRejectionReasonRequired = fmt.Errorf("%w: rejection reason is required", entities.ErrValidation)
)

// Stage is one pending step of the flow.
type Stage struct {
	Status       entities.ProjectStatus
	Label        string
	RequiredRole entities.Role
	Next         entities.ProjectStatus
}

var stages = []Stage{
	{
		Status:       entities.ProjectStatusAguardandoClassificacao,
		Label:        "Classificação",
		RequiredRole: entities.RoleClassificacao,
		Next:         entities.ProjectStatusAguardandoEngenharia,
	},
	{
		Status:       entities.ProjectStatusAguardandoEngenharia,
		Label:        "Engenharia",
		RequiredRole: entities.RoleEngenharia,
		Next:         entities.ProjectStatusAguardandoDiretoria,
	},
	{
		Status:       entities.ProjectStatusAguardandoDiretoria,
		Label:        "Diretoria",
		RequiredRole: entities.RoleDiretoria,
		Next:         entities.ProjectStatusAprovado,
	},
}

// Stages returns the pending stages in order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// StageFor returns the pending stage for status.
func StageFor(status entities.ProjectStatus) (Stage, bool) {
	for _, s := range stages {
		if s.Status == status {
			return s, true
		}
	}
	return Stage{}, false
}

// IsTerminal reports whether no further transition is allowed from status.
func IsTerminal(status entities.ProjectStatus) bool {
	return status == entities.ProjectStatusAprovado || status == entities.ProjectStatusRejeitado
}

// CanTransition reports whether actor may act on stage.
func CanTransition(actor entities.Actor, stage Stage) bool {
	return actor.Role == stage.RequiredRole || actor.Role == OverrideRole
}

// Advance moves p to the next stage and appends a history entry.
// p is never modified; the returned project carries the new state.
func Advance(p entities.Project, actor entities.Actor, now time.Time) (entities.Project, error) {
	stage, err := currentStage(p, actor)
	if err != nil {
		return entities.Project{}, err
	}
	return transition(p, stage.Next, actor, "", now), nil
}

// Reject moves p to rejeitado with reason recorded in the history entry.
func Reject(p entities.Project, actor entities.Actor, reason string, now time.Time) (entities.Project, error) {
	if _, err := currentStage(p, actor); err != nil {
		return entities.Project{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Project{}, ErrRejectionReasonRequired
	}
	return transition(p, entities.ProjectStatusRejeitado, actor, reason, now), nil
}

func currentStage(p entities.Project, actor entities.Actor) (Stage, error) {
	if IsTerminal(p.Status) {
		return Stage{}, ErrTerminal
	}
	stage, ok := StageFor(p.Status)
	if !ok {
		return Stage{}, fmt.Errorf("%w: %q", ErrUnknownStage, p.Status)
	}
	if !CanTransition(actor, stage) {
		return Stage{}, fmt.Errorf("%w: %s requires %s", ErrInsufficientRole, stage.Label, stage.RequiredRole)
	}
	return stage, nil
}

func transition(p entities.Project, to entities.ProjectStatus, actor entities.Actor, notes string, now time.Time) entities.Project {
	history := make([]entities.ApprovalEntry, len(p.ApprovalHistory), len(p.ApprovalHistory)+1)
	copy(history, p.ApprovalHistory)
	history = append(history, entities.ApprovalEntry{
		Status: to,
		Date:   now,
		User:   actor.Name,
		Role:   actor.Role,
		Notes:  notes,
	})

	p.Status = to
	p.ApprovalHistory = history
	p.UpdatedAt = now
	return p
}

// LatestEntry returns the most recent entry recorded with status.
func LatestEntry(history []entities.ApprovalEntry, status entities.ProjectStatus) (entities.ApprovalEntry, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Status == status {
			return history[i], true
		}
	}
	return entities.ApprovalEntry{}, false
}
