package handlers

import (
	"errors"
	"gestao_obras/internal/adapter/http/dto/request"
	"gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AccountingHandler maintains the reference data keyed by code: accounting
// accounts, asset classes and cost centers.
type AccountingHandler struct {
	usecase usecase.IAccountingUseCase
}

func NewAccountingHandler(uc usecase.IAccountingUseCase) *AccountingHandler {
	return &AccountingHandler{usecase: uc}
}

// Accounting accounts

func (h *AccountingHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.usecase.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountingHandler) CreateAccount(c *gin.Context) {
	var payload request.AccountingAccountRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	account, err := h.usecase.CreateAccount(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *AccountingHandler) UpdateAccount(c *gin.Context) {
	var payload request.AccountingAccountRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	account, err := h.usecase.UpdateAccount(c.Request.Context(), c.Param("code"), payload.ToEntity())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountingHandler) DeleteAccount(c *gin.Context) {
	if err := h.usecase.DeleteAccount(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkCreateAccounts godoc
// @Summary      Import accounting accounts
// @Description  Upserts every item by code. The whole batch is rejected when any item is invalid.
// @Tags         accounting
// @Accept       json
// @Produce      json
// @Param        accounts  body      request.BulkAccountingAccountsRequest  true  "Accounts"
// @Success      201       {object}  response.BulkCreateResponse
// @Failure      400       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /accounting/accounts/bulk [post]
func (h *AccountingHandler) BulkCreateAccounts(c *gin.Context) {
	var payload request.BulkAccountingAccountsRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	accounts := make([]entities.AccountingAccount, 0, len(payload.Items))
	for _, item := range payload.Items {
		accounts = append(accounts, item.ToEntity())
	}
	n, err := h.usecase.BulkCreateAccounts(c.Request.Context(), accounts)
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, response.BulkCreateResponse{Count: n})
}

// Asset classes

func (h *AccountingHandler) ListAssetClasses(c *gin.Context) {
	classes, err := h.usecase.ListAssetClasses(c.Request.Context())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *AccountingHandler) CreateAssetClass(c *gin.Context) {
	var payload request.AssetClassRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	class, err := h.usecase.CreateAssetClass(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, class)
}

// UpdateAssetClass renames the class when the body carries a new code.
func (h *AccountingHandler) UpdateAssetClass(c *gin.Context) {
	var payload request.AssetClassRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	class, err := h.usecase.UpdateAssetClass(c.Request.Context(), c.Param("code"), payload.ToEntity())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *AccountingHandler) DeleteAssetClass(c *gin.Context) {
	if err := h.usecase.DeleteAssetClass(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountingHandler) BulkCreateAssetClasses(c *gin.Context) {
	var payload request.BulkAssetClassesRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	classes := make([]entities.AssetClass, 0, len(payload.Items))
	for _, item := range payload.Items {
		classes = append(classes, item.ToEntity())
	}
	n, err := h.usecase.BulkCreateAssetClasses(c.Request.Context(), classes)
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, response.BulkCreateResponse{Count: n})
}

// Cost centers

func (h *AccountingHandler) ListCostCenters(c *gin.Context) {
	centers, err := h.usecase.ListCostCenters(c.Request.Context())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, centers)
}

func (h *AccountingHandler) CreateCostCenter(c *gin.Context) {
	var payload request.CostCenterRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	center, err := h.usecase.CreateCostCenter(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, center)
}

func (h *AccountingHandler) UpdateCostCenter(c *gin.Context) {
	var payload request.CostCenterRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	center, err := h.usecase.UpdateCostCenter(c.Request.Context(), c.Param("code"), payload.ToEntity())
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusOK, center)
}

func (h *AccountingHandler) DeleteCostCenter(c *gin.Context) {
	if err := h.usecase.DeleteCostCenter(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountingHandler) BulkCreateCostCenters(c *gin.Context) {
	var payload request.BulkCostCentersRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	centers := make([]entities.CostCenter, 0, len(payload.Items))
	for _, item := range payload.Items {
		centers = append(centers, item.ToEntity())
	}
	n, err := h.usecase.BulkCreateCostCenters(c.Request.Context(), centers)
	if err != nil {
		respondError(c, err, mapAccountingError)
		return
	}
	c.JSON(http.StatusCreated, response.BulkCreateResponse{Count: n})
}

func mapAccountingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrReferenceAlreadyExists):
		return pkg.NewDomainErrorSimple("CODE_ALREADY_EXISTS", "Code already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Accounting account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssetClassNotFound):
		return pkg.NewDomainErrorSimple("ASSET_CLASS_NOT_FOUND", "Asset class not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCostCenterNotFound):
		return pkg.NewDomainErrorSimple("COST_CENTER_NOT_FOUND", "Cost center not found", http.StatusNotFound)
	default:
		return nil
	}
}
