package handlers

import (
	"gestao_obras/internal/adapter/http/dto/request"
	"gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errMissingProjectFilter = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter project_id is required", http.StatusBadRequest)

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		writeError(c, errMissingProjectFilter)
		return
	}

	budgets, err := h.usecase.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}
