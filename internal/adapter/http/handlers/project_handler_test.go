package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_obras/internal/adapter/http/handlers/mocks"
	"gestao_obras/internal/adapter/http/middleware"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/ledger"
	"gestao_obras/internal/domain/workflow"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var engineer = entities.Actor{ID: "u-eng", Name: "Eng", Role: entities.RoleEngenharia}

func withActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	}
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

func newProjectRouter(t *testing.T, actor *entities.Actor) (*gin.Engine, *mocks.MockIProjectUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	if actor != nil {
		r.Use(withActor(*actor))
	}
	r.POST("/v1/projects", h.CreateProject)
	r.GET("/v1/projects", h.ListProjects)
	r.GET("/v1/projects/:id", h.GetProject)
	r.PUT("/v1/projects/:id", h.UpdateProject)
	r.DELETE("/v1/projects/:id", h.DeleteProject)
	r.POST("/v1/projects/:id/advance", h.AdvanceProject)
	r.POST("/v1/projects/:id/reject", h.RejectProject)
	r.GET("/v1/projects/:id/totals", h.GetProjectTotals)
	r.GET("/v1/projects/:id/timeline", h.GetProjectTimeline)
	return r, uc
}

func TestProjectHandler_CreateProject(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newProjectRouter(t, nil)
		w := doRequest(r, http.MethodPost, "/v1/projects", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "INVALID_PAYLOAD" {
			t.Fatalf("expected INVALID_PAYLOAD, got %s", body.Code)
		}
	})

	t.Run("missing fields are reported by json name", func(t *testing.T) {
		r, _ := newProjectRouter(t, nil)
		w := doRequest(r, http.MethodPost, "/v1/projects", `{"planned_capex":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeHTTPError(t, w)
		if body.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %s", body.Code)
		}
		for _, field := range []string{"name", "start_date", "planned_capex"} {
			if _, ok := body.Fields[field]; !ok {
				t.Fatalf("expected field %q in %v", field, body.Fields)
			}
		}
	})

	t.Run("success accepts formatted amounts", func(t *testing.T) {
		r, uc := newProjectRouter(t, nil)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.ProjectInput) (entities.Project, error) {
			if in.PlannedCapex != 1000.5 || in.Name != "Galpão" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.StartDate.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected start date: %v", in.StartDate)
			}
			return entities.Project{ID: "p-1", Code: "OBRA-001", Name: in.Name, Status: entities.ProjectStatusAguardandoClassificacao}, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/projects", `{"name":"Galpão","start_date":"2025-01-10","planned_capex":"R$ 1.000,50"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "OBRA-001" || body["status_label"] != "Aguardando Classificação" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newProjectRouter(t, nil)
		uc.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Project{}, usecase.ErrProjectNotFound)

		w := doRequest(r, http.MethodGet, "/v1/projects/p-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "PROJECT_NOT_FOUND" {
			t.Fatalf("expected PROJECT_NOT_FOUND, got %s", body.Code)
		}
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		r, uc := newProjectRouter(t, nil)
		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, errors.New("dynamo down"))

		w := doRequest(r, http.MethodGet, "/v1/projects/p-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	r, uc := newProjectRouter(t, nil)
	uc.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

	w := doRequest(r, http.MethodDelete, "/v1/projects/p-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestProjectHandler_AdvanceProject(t *testing.T) {
	t.Run("requires an authenticated actor", func(t *testing.T) {
		r, _ := newProjectRouter(t, nil)
		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/advance", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		actor := engineer
		r, uc := newProjectRouter(t, &actor)
		uc.EXPECT().Advance(gomock.Any(), "p-1", engineer).
			Return(entities.Project{}, fmt.Errorf("%w: Classificação requires classificacao", workflow.ErrInsufficientRole))

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/advance", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "INSUFFICIENT_ROLE" {
			t.Fatalf("expected INSUFFICIENT_ROLE, got %s", body.Code)
		}
	})

	t.Run("final status conflicts", func(t *testing.T) {
		actor := engineer
		r, uc := newProjectRouter(t, &actor)
		uc.EXPECT().Advance(gomock.Any(), "p-1", engineer).Return(entities.Project{}, workflow.ErrTerminal)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/advance", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		actor := engineer
		r, uc := newProjectRouter(t, &actor)
		uc.EXPECT().Advance(gomock.Any(), "p-1", engineer).
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusAguardandoDiretoria}, nil)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/advance", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_RejectProject(t *testing.T) {
	t.Run("reason is required before calling the usecase", func(t *testing.T) {
		actor := engineer
		r, _ := newProjectRouter(t, &actor)
		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/reject", `{"reason":""}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		actor := engineer
		r, uc := newProjectRouter(t, &actor)
		uc.EXPECT().Reject(gomock.Any(), "p-1", engineer, "sem verba").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusRejeitado}, nil)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/reject", `{"reason":"sem verba"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_Rollups(t *testing.T) {
	r, uc := newProjectRouter(t, nil)
	uc.EXPECT().Totals(gomock.Any(), "p-1").Return(ledger.Totals{Planned: 100, Realized: 40, Deviation: -60, ConsumptionPct: 40}, nil)
	uc.EXPECT().Timeline(gomock.Any(), "p-1").Return([]workflow.TimelineStep{
		{Status: entities.ProjectStatusAguardandoClassificacao, Label: "Classificação", Current: true},
	}, nil)

	w := doRequest(r, http.MethodGet, "/v1/projects/p-1/totals", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var totals ledger.Totals
	_ = json.Unmarshal(w.Body.Bytes(), &totals)
	if totals.ConsumptionPct != 40 {
		t.Fatalf("unexpected totals: %+v", totals)
	}

	w = doRequest(r, http.MethodGet, "/v1/projects/p-1/timeline", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var steps []workflow.TimelineStep
	_ = json.Unmarshal(w.Body.Bytes(), &steps)
	if len(steps) != 1 || !steps[0].Current {
		t.Fatalf("unexpected timeline: %+v", steps)
	}
}
