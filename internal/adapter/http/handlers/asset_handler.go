package handlers

import (
	"errors"
	"gestao_obras/internal/adapter/http/dto/request"
	"gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var errInvalidAtDate = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter at must be YYYY-MM-DD", http.StatusBadRequest)

type AssetHandler struct {
	usecase usecase.IAssetUseCase
}

func NewAssetHandler(uc usecase.IAssetUseCase) *AssetHandler {
	return &AssetHandler{usecase: uc}
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var payload request.AssetRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	asset, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err, mapAssetError)
		return
	}
	c.JSON(http.StatusCreated, response.FromAsset(asset))
}

// ListAssets lists every asset, or only those of ?project_id=.
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.usecase.List(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		respondError(c, err, mapAssetError)
		return
	}
	c.JSON(http.StatusOK, response.FromAssets(assets))
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapAssetError)
		return
	}
	c.JSON(http.StatusOK, response.FromAsset(asset))
}

func (h *AssetHandler) NextAssetNumber(c *gin.Context) {
	number, err := h.usecase.NextAssetNumber(c.Request.Context())
	if err != nil {
		respondError(c, err, mapAssetError)
		return
	}
	c.JSON(http.StatusOK, response.NextAssetNumberResponse{AssetNumber: number})
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	var payload request.AssetRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	asset, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err, mapAssetError)
		return
	}
	c.JSON(http.StatusOK, response.FromAsset(asset))
}

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapAssetError)
		return
	}
	c.Status(http.StatusNoContent)
}

// ActivateAsset godoc
// @Summary      Activate a finished asset
// @Description  Records the availability date and residual value and concludes the asset. Allowed once.
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id          path      string                        true  "Asset ID"
// @Param        activation  body      request.ActivateAssetRequest  true  "Activation"
// @Success      200         {object}  response.AssetResponse
// @Failure      409         {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /assets/{id}/activate [post]
func (h *AssetHandler) ActivateAsset(c *gin.Context) {
	var payload request.ActivateAssetRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	asset, err := h.usecase.Activate(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err, mapAssetError)
		return
	}
	c.JSON(http.StatusOK, response.FromAsset(asset))
}

func (h *AssetHandler) GetAssetCost(c *gin.Context) {
	cost, err := h.usecase.CostBasis(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapAssetError)
		return
	}
	c.JSON(http.StatusOK, cost)
}

// GetAssetDepreciation godoc
// @Summary  Fiscal and corporate depreciation schedules
// @Tags     assets
// @Produce  json
// @Param    id  path   string  true   "Asset ID"
// @Param    at  query  string  false  "Evaluation date (YYYY-MM-DD), defaults to today"
// @Success  200  {object}  usecase.AssetDepreciation
// @Security Bearer
// @Router   /assets/{id}/depreciation [get]
func (h *AssetHandler) GetAssetDepreciation(c *gin.Context) {
	at := time.Now().UTC()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(c, errInvalidAtDate)
			return
		}
		at = parsed
	}

	dep, err := h.usecase.Depreciation(c.Request.Context(), c.Param("id"), at)
	if err != nil {
		respondError(c, err, mapAssetError)
		return
	}
	c.JSON(http.StatusOK, dep)
}

func mapAssetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAssetNotFound):
		return pkg.NewDomainErrorSimple("ASSET_NOT_FOUND", "Asset not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssetClassNotFound):
		return pkg.NewDomainErrorSimple("ASSET_CLASS_NOT_FOUND", "Asset class not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssetAlreadyActivated):
		return pkg.NewDomainErrorSimple("ASSET_ALREADY_ACTIVATED", "Asset was already activated", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssetNumberAlreadyExists):
		return pkg.NewDomainErrorSimple("ASSET_NUMBER_ALREADY_EXISTS", "Asset number already in use", http.StatusConflict)
	default:
		return nil
	}
}
