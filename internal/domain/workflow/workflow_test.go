package workflow

import (
	"errors"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

func actor(name string, role entities.Role) entities.Actor {
	return entities.Actor{ID: name + "-id", Name: name, Role: role}
}

func newProject(status entities.ProjectStatus) entities.Project {
	return entities.Project{ID: "p-1", Code: "OBRA-001", Status: status}
}

func TestAdvance_FullFlow(t *testing.T) {
	p := newProject(entities.ProjectStatusAguardandoClassificacao)

	p, err := Advance(p, actor("ana", entities.RoleClassificacao), now)
	require.NoError(t, err)
	assert.Equal(t, entities.ProjectStatusAguardandoEngenharia, p.Status)

	p, err = Advance(p, actor("bruno", entities.RoleEngenharia), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entities.ProjectStatusAguardandoDiretoria, p.Status)

	p, err = Advance(p, actor("carla", entities.RoleDiretoria), now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entities.ProjectStatusAprovado, p.Status)

	require.Len(t, p.ApprovalHistory, 3)
	last := p.ApprovalHistory[2]
	assert.Equal(t, entities.ProjectStatusAprovado, last.Status)
	assert.Equal(t, "carla", last.User)
	assert.Equal(t, entities.RoleDiretoria, last.Role)
	assert.Empty(t, last.Notes)
	assert.Equal(t, now.Add(2*time.Hour), p.UpdatedAt)
}

func TestAdvance_RoleGate(t *testing.T) {
	p := newProject(entities.ProjectStatusAguardandoEngenharia)
	p.ApprovalHistory = []entities.ApprovalEntry{{Status: entities.ProjectStatusAguardandoEngenharia, User: "ana"}}

	got, err := Advance(p, actor("ana", entities.RoleClassificacao), now)
	require.ErrorIs(t, err, ErrInsufficientRole)
	assert.True(t, errors.Is(err, entities.ErrPermission))
	assert.Empty(t, got.ID)

	assert.Equal(t, entities.ProjectStatusAguardandoEngenharia, p.Status)
	assert.Len(t, p.ApprovalHistory, 1)

	for _, role := range []entities.Role{entities.RoleAdmin, entities.RoleUser, ""} {
		_, err := Advance(p, actor("x", role), now)
		assert.ErrorIs(t, err, ErrInsufficientRole, "role %q", role)
	}
}

func TestAdvance_OverrideRoleActsOnEveryStage(t *testing.T) {
	director := actor("dora", entities.RoleDiretoria)
	p := newProject(entities.ProjectStatusAguardandoClassificacao)

	for _, want := range []entities.ProjectStatus{
		entities.ProjectStatusAguardandoEngenharia,
		entities.ProjectStatusAguardandoDiretoria,
		entities.ProjectStatusAprovado,
	} {
		var err error
		p, err = Advance(p, director, now)
		require.NoError(t, err)
		assert.Equal(t, want, p.Status)
	}
}

func TestAdvance_DoesNotMutateInput(t *testing.T) {
	history := make([]entities.ApprovalEntry, 1, 4)
	history[0] = entities.ApprovalEntry{Status: entities.ProjectStatusAguardandoEngenharia, User: "ana"}
	p := newProject(entities.ProjectStatusAguardandoEngenharia)
	p.ApprovalHistory = history

	next, err := Advance(p, actor("bruno", entities.RoleEngenharia), now)
	require.NoError(t, err)
	require.Len(t, next.ApprovalHistory, 2)

	assert.Equal(t, entities.ProjectStatusAguardandoEngenharia, p.Status)
	assert.Len(t, p.ApprovalHistory, 1)
	assert.Empty(t, history[:2][1].User)
}

func TestAdvance_TerminalAndUnknown(t *testing.T) {
	director := actor("dora", entities.RoleDiretoria)

	for _, status := range []entities.ProjectStatus{entities.ProjectStatusAprovado, entities.ProjectStatusRejeitado} {
		_, err := Advance(newProject(status), director, now)
		assert.ErrorIs(t, err, ErrTerminal)
		assert.ErrorIs(t, err, entities.ErrInvalidState)
	}

	for _, status := range []entities.ProjectStatus{entities.ProjectStatusPlanejamento, entities.ProjectStatusEmAndamento, "whatever"} {
		_, err := Advance(newProject(status), director, now)
		assert.ErrorIs(t, err, ErrUnknownStage)
		assert.ErrorIs(t, err, entities.ErrInvalidState)
	}
}

func TestReject(t *testing.T) {
	p := newProject(entities.ProjectStatusAguardandoEngenharia)

	t.Run("reason required", func(t *testing.T) {
		_, err := Reject(p, actor("bruno", entities.RoleEngenharia), "   ", now)
		require.ErrorIs(t, err, ErrRejectionReasonRequired)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("wrong role", func(t *testing.T) {
		_, err := Reject(p, actor("ana", entities.RoleClassificacao), "sem verba", now)
		require.ErrorIs(t, err, entities.ErrPermission)
	})

	t.Run("records reason and is terminal", func(t *testing.T) {
		got, err := Reject(p, actor("bruno", entities.RoleEngenharia), " sem verba ", now)
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectStatusRejeitado, got.Status)
		require.Len(t, got.ApprovalHistory, 1)
		assert.Equal(t, "sem verba", got.ApprovalHistory[0].Notes)
		assert.Equal(t, "bruno", got.ApprovalHistory[0].User)

		_, err = Advance(got, actor("dora", entities.RoleDiretoria), now)
		assert.ErrorIs(t, err, ErrTerminal)
		_, err = Reject(got, actor("dora", entities.RoleDiretoria), "again", now)
		assert.ErrorIs(t, err, ErrTerminal)
	})
}

func TestLatestEntry(t *testing.T) {
	history := []entities.ApprovalEntry{
		{Status: entities.ProjectStatusAguardandoEngenharia, User: "first"},
		{Status: entities.ProjectStatusAguardandoDiretoria, User: "other"},
		{Status: entities.ProjectStatusAguardandoEngenharia, User: "second"},
	}

	e, ok := LatestEntry(history, entities.ProjectStatusAguardandoEngenharia)
	require.True(t, ok)
	assert.Equal(t, "second", e.User)

	_, ok = LatestEntry(history, entities.ProjectStatusAprovado)
	assert.False(t, ok)

	_, ok = LatestEntry(nil, entities.ProjectStatusAprovado)
	assert.False(t, ok)
}

func TestTimeline(t *testing.T) {
	t.Run("attribution comes from the following status", func(t *testing.T) {
		p := newProject(entities.ProjectStatusAguardandoDiretoria)
		p.ApprovalHistory = []entities.ApprovalEntry{
			{Status: entities.ProjectStatusAguardandoEngenharia, User: "ana", Role: entities.RoleClassificacao},
			{Status: entities.ProjectStatusAguardandoDiretoria, User: "bruno", Role: entities.RoleEngenharia},
		}

		steps := Timeline(p)
		require.Len(t, steps, 4)

		assert.True(t, steps[0].Completed)
		require.NotNil(t, steps[0].ApprovedBy)
		assert.Equal(t, "ana", steps[0].ApprovedBy.User)

		assert.True(t, steps[1].Completed)
		require.NotNil(t, steps[1].ApprovedBy)
		assert.Equal(t, "bruno", steps[1].ApprovedBy.User)

		assert.True(t, steps[2].Current)
		assert.False(t, steps[2].Completed)
		assert.Nil(t, steps[2].ApprovedBy)

		assert.False(t, steps[3].Completed)
		assert.False(t, steps[3].Current)
	})

	t.Run("approved project", func(t *testing.T) {
		p := newProject(entities.ProjectStatusAguardandoClassificacao)
		director := actor("dora", entities.RoleDiretoria)
		for i := 0; i < 3; i++ {
			var err error
			p, err = Advance(p, director, now)
			require.NoError(t, err)
		}

		steps := Timeline(p)
		for _, s := range steps {
			assert.True(t, s.Completed, s.Label)
		}
		require.NotNil(t, steps[2].ApprovedBy)
		assert.Equal(t, entities.ProjectStatusAprovado, steps[2].ApprovedBy.Status)
	})

	t.Run("rejected at engineering", func(t *testing.T) {
		p := newProject(entities.ProjectStatusAguardandoClassificacao)
		p, err := Advance(p, actor("ana", entities.RoleClassificacao), now)
		require.NoError(t, err)
		p, err = Reject(p, actor("bruno", entities.RoleEngenharia), "fora do escopo", now.Add(time.Hour))
		require.NoError(t, err)

		steps := Timeline(p)
		assert.True(t, steps[0].Completed)
		assert.True(t, steps[1].Rejected)
		require.NotNil(t, steps[1].ApprovedBy)
		assert.Equal(t, "fora do escopo", steps[1].ApprovedBy.Notes)
		assert.False(t, steps[2].Completed)
	})

	t.Run("legacy status sits before the first stage", func(t *testing.T) {
		steps := Timeline(newProject(entities.ProjectStatusPlanejamento))
		for _, s := range steps {
			assert.False(t, s.Completed)
			assert.False(t, s.Current)
		}
	})
}
