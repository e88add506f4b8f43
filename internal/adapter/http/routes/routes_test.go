package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_obras/internal/adapter/http/handlers"
	"gestao_obras/internal/adapter/http/handlers/mocks"
	"gestao_obras/internal/adapter/http/middleware"
	"gestao_obras/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const secret = "routes-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIProjectUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	projects := mocks.NewMockIProjectUseCase(ctrl)

	h := Handlers{
		Project:    handlers.NewProjectHandler(projects),
		Asset:      handlers.NewAssetHandler(mocks.NewMockIAssetUseCase(ctrl)),
		Expense:    handlers.NewExpenseHandler(mocks.NewMockIExpenseUseCase(ctrl)),
		Budget:     handlers.NewBudgetHandler(mocks.NewMockIBudgetUseCase(ctrl)),
		Accounting: handlers.NewAccountingHandler(mocks.NewMockIAccountingUseCase(ctrl)),
		Inventory:  handlers.NewInventoryHandler(mocks.NewMockIInventoryUseCase(ctrl)),
		Dashboard:  handlers.NewDashboardHandler(mocks.NewMockIDashboardUseCase(ctrl)),
	}
	return NewRouter(h, secret), projects
}

func TestNewRouter(t *testing.T) {
	t.Run("ping is public", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Fatalf("expected a request id header")
		}
	})

	t.Run("protected routes need a token", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		r, projects := newTestRouter(t)
		projects.EXPECT().List(gomock.Any()).Return([]entities.Project{}, nil)

		token, err := middleware.SignToken(secret, entities.Actor{ID: "u-1", Role: entities.RoleAdmin}, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
