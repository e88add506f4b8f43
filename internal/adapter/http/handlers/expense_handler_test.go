package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"gestao_obras/internal/adapter/http/handlers/mocks"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/ledger"
	"gestao_obras/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newExpenseRouter(t *testing.T) (*gin.Engine, *mocks.MockIExpenseUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIExpenseUseCase(ctrl)
	h := NewExpenseHandler(uc)

	r := gin.New()
	r.POST("/v1/expenses", h.CreateExpense)
	r.GET("/v1/expenses", h.ListExpenses)
	r.PUT("/v1/expenses/:id", h.UpdateExpense)
	r.POST("/v1/expenses/:id/asset", h.LinkExpenseToAsset)
	r.DELETE("/v1/expenses/:id/asset", h.UnlinkExpenseFromAsset)
	r.POST("/v1/expenses/nfe-lookup", h.LookupNFe)
	r.POST("/v1/budgets/:id/expenses", h.LinkExpensesToBudget)
	return r, uc
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	const body = `{"project_id":"p-1","asset_id":"a-1","description":"Cimento","amount":"1.234,56","type":"capex","date":"2025-03-01"}`

	t.Run("type must be capex or opex", func(t *testing.T) {
		r, _ := newExpenseRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/expenses", `{"project_id":"p-1","description":"x","amount":10,"type":"outro","date":"2025-03-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if fields := decodeHTTPError(t, w).Fields; fields["type"] == "" {
			t.Fatalf("expected type field error, got %v", fields)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		r, _ := newExpenseRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/expenses", `{"project_id":"p-1","description":"x","amount":0,"type":"opex","date":"2025-03-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("locked project is forbidden, not a bad request", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Expense{}, fmt.Errorf("%w: OBRA-001 is aprovado", ledger.ErrProjectLocked))

		w := doRequest(r, http.MethodPost, "/v1/expenses", body)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if code := decodeHTTPError(t, w).Code; code != "PROJECT_LOCKED" {
			t.Fatalf("expected PROJECT_LOCKED, got %s", code)
		}
	})

	t.Run("capex without asset", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Expense{}, ledger.ErrCapexRequiresAsset)

		w := doRequest(r, http.MethodPost, "/v1/expenses", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeHTTPError(t, w).Code; code != "CAPEX_REQUIRES_ASSET" {
			t.Fatalf("expected CAPEX_REQUIRES_ASSET, got %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.ExpenseInput) (entities.Expense, error) {
			if in.Amount != 1234.56 || in.Type != entities.ExpenseTypeCapex || in.AssetID == nil || *in.AssetID != "a-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Expense{ID: "e-1", ProjectID: in.ProjectID, Amount: in.Amount, Type: in.Type, AssetID: in.AssetID}, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/expenses", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})
}

func TestExpenseHandler_ListExpenses(t *testing.T) {
	t.Run("requires a filter", func(t *testing.T) {
		r, _ := newExpenseRouter(t)
		w := doRequest(r, http.MethodGet, "/v1/expenses", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by project", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().ListByProject(gomock.Any(), "p-1").Return([]entities.Expense{{ID: "e-1"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/expenses?project_id=p-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by budget", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().ListByBudget(gomock.Any(), "b-1").Return(nil, usecase.ErrBudgetNotFound)

		w := doRequest(r, http.MethodGet, "/v1/expenses?budget_id=b-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestExpenseHandler_Links(t *testing.T) {
	t.Run("link to asset of another project", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().LinkToAsset(gomock.Any(), "e-1", "a-9").Return(entities.Expense{}, usecase.ErrAssetProjectMismatch)

		w := doRequest(r, http.MethodPost, "/v1/expenses/e-1/asset", `{"asset_id":"a-9"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeHTTPError(t, w).Code; code != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %s", code)
		}
	})

	t.Run("unlink", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().UnlinkFromAsset(gomock.Any(), "e-1").Return(entities.Expense{ID: "e-1"}, nil)

		w := doRequest(r, http.MethodDelete, "/v1/expenses/e-1/asset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("link to budget needs ids", func(t *testing.T) {
		r, _ := newExpenseRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/budgets/b-1/expenses", `{"expense_ids":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("link to budget", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().LinkToBudget(gomock.Any(), "b-1", []string{"e-1", "e-2"}).
			Return([]entities.Expense{{ID: "e-1"}, {ID: "e-2"}}, nil)

		w := doRequest(r, http.MethodPost, "/v1/budgets/b-1/expenses", `{"expense_ids":["e-1","e-2"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestExpenseHandler_LookupNFe(t *testing.T) {
	key := "35250112345678000190550010000012341000012345"

	t.Run("provider unavailable", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().LookupNFe(gomock.Any(), key).Return(entities.NFeData{}, fmt.Errorf("%w: nfe provider: timeout", entities.ErrIntegration))

		w := doRequest(r, http.MethodPost, "/v1/expenses/nfe-lookup", `{"access_key":"`+key+`"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if code := decodeHTTPError(t, w).Code; code != "INTEGRATION_UNAVAILABLE" {
			t.Fatalf("expected INTEGRATION_UNAVAILABLE, got %s", code)
		}
	})

	t.Run("malformed key", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().LookupNFe(gomock.Any(), "123").Return(entities.NFeData{}, usecase.ErrInvalidAccessKey)

		w := doRequest(r, http.MethodPost, "/v1/expenses/nfe-lookup", `{"access_key":"123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().LookupNFe(gomock.Any(), key).Return(entities.NFeData{Description: "Materiais", Amount: 3350}, nil)

		w := doRequest(r, http.MethodPost, "/v1/expenses/nfe-lookup", `{"access_key":"`+key+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
