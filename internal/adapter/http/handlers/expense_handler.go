package handlers

import (
	"errors"
	"gestao_obras/internal/adapter/http/dto/request"
	"gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/domain/ledger"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errMissingExpenseFilter = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter project_id or budget_id is required", http.StatusBadRequest)

// ExpenseHandler records project costs and their links to assets and budgets.
type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

// CreateExpense godoc
// @Summary      Record an expense
// @Description  Capex expenses must reference an asset of the same project. Locked projects reject writes.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        expense  body      request.ExpenseRequest  true  "Expense"
// @Success      201      {object}  response.ExpenseResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	expense, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusCreated, response.FromExpense(expense))
}

// ListExpenses godoc
// @Summary  List expenses of a project or a budget
// @Tags     expenses
// @Produce  json
// @Param    project_id  query  string  false  "Project ID"
// @Param    budget_id   query  string  false  "Budget ID"
// @Success  200  {array}  response.ExpenseResponse
// @Security Bearer
// @Router   /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	ctx := c.Request.Context()
	switch {
	case c.Query("budget_id") != "":
		expenses, err := h.usecase.ListByBudget(ctx, c.Query("budget_id"))
		if err != nil {
			respondError(c, err, mapExpenseError)
			return
		}
		c.JSON(http.StatusOK, response.FromExpenses(expenses))
	case c.Query("project_id") != "":
		expenses, err := h.usecase.ListByProject(ctx, c.Query("project_id"))
		if err != nil {
			respondError(c, err, mapExpenseError)
			return
		}
		c.JSON(http.StatusOK, response.FromExpenses(expenses))
	default:
		writeError(c, errMissingExpenseFilter)
	}
}

func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpense(expense))
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	expense, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpense(expense))
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) LinkExpenseToAsset(c *gin.Context) {
	var payload request.LinkExpenseToAssetRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	expense, err := h.usecase.LinkToAsset(c.Request.Context(), c.Param("id"), payload.AssetID)
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpense(expense))
}

func (h *ExpenseHandler) UnlinkExpenseFromAsset(c *gin.Context) {
	expense, err := h.usecase.UnlinkFromAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpense(expense))
}

// LinkExpensesToBudget attaches existing expenses to the budget in :id.
func (h *ExpenseHandler) LinkExpensesToBudget(c *gin.Context) {
	var payload request.LinkExpensesToBudgetRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	expenses, err := h.usecase.LinkToBudget(c.Request.Context(), c.Param("id"), payload.ExpenseIDs)
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func (h *ExpenseHandler) ListBudgetExpenses(c *gin.Context) {
	expenses, err := h.usecase.ListByBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

// LookupNFe godoc
// @Summary      Look up an NF-e by access key
// @Description  Returns description, amount and date to prefill an expense. Keys starting with 999 are homologation documents.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        lookup  body      request.NFeLookupRequest  true  "44-digit access key"
// @Success      200     {object}  entities.NFeData
// @Failure      404     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /expenses/nfe-lookup [post]
func (h *ExpenseHandler) LookupNFe(c *gin.Context) {
	var payload request.NFeLookupRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	data, err := h.usecase.LookupNFe(c.Request.Context(), payload.AccessKey)
	if err != nil {
		respondError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, data)
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssetNotFound):
		return pkg.NewDomainErrorSimple("ASSET_NOT_FOUND", "Asset not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrCapexRequiresAsset):
		return pkg.NewDomainError("CAPEX_REQUIRES_ASSET", "Capex expenses must be linked to an asset", err, http.StatusBadRequest)
	default:
		return nil
	}
}
