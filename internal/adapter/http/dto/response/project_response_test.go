package response

import (
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
)

func TestFromProject(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Project{
		ID:     "p-1",
		Code:   "OBRA-001",
		Status: entities.ProjectStatusAguardandoEngenharia,
		ApprovalHistory: []entities.ApprovalEntry{
			{Status: entities.ProjectStatusAguardandoEngenharia, Date: now, User: "ana", Role: entities.RoleClassificacao},
		},
	}

	got := FromProject(p)
	if got.StatusLabel != "Aguardando Engenharia" {
		t.Fatalf("unexpected label: %q", got.StatusLabel)
	}
	if len(got.ApprovalHistory) != 1 || got.ApprovalHistory[0].Role != "classificacao" {
		t.Fatalf("unexpected history: %+v", got.ApprovalHistory)
	}

	p.Status = entities.ProjectStatusEmAndamento
	if got := FromProject(p).StatusLabel; got != "em_andamento" {
		t.Fatalf("legacy status should pass through, got %q", got)
	}
	p.Status = entities.ProjectStatusAprovado
	if got := FromProject(p).StatusLabel; got != "Aprovado" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestFromAsset_Activated(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got := FromAsset(entities.Asset{ID: "a-1", Status: entities.AssetStatusConcluido, AvailabilityDate: &at})
	if !got.Activated {
		t.Fatalf("expected activated asset")
	}
	if FromAsset(entities.Asset{ID: "a-2", Status: entities.AssetStatusConcluido}).Activated {
		t.Fatalf("asset without availability date is not activated")
	}
}
