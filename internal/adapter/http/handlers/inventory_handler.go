package handlers

import (
	"errors"
	"gestao_obras/internal/adapter/http/dto/request"
	"gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InventoryHandler drives physical asset counts. Every route needs the
// authenticated actor: the requester approves, assigned users submit.
type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) CreateSchedule(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.InventoryScheduleRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	schedule, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		respondError(c, err, mapInventoryError)
		return
	}
	c.JSON(http.StatusCreated, response.FromInventorySchedule(schedule))
}

func (h *InventoryHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err, mapInventoryError)
		return
	}
	c.JSON(http.StatusOK, response.FromInventorySchedules(schedules))
}

func (h *InventoryHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapInventoryError)
		return
	}
	c.JSON(http.StatusOK, response.FromInventorySchedule(schedule))
}

func (h *InventoryHandler) SubmitResults(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.InventoryResultsRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	schedule, err := h.usecase.SubmitResults(c.Request.Context(), c.Param("id"), actor, payload.ToEntities())
	if err != nil {
		respondError(c, err, mapInventoryError)
		return
	}
	c.JSON(http.StatusOK, response.FromInventorySchedule(schedule))
}

func (h *InventoryHandler) ApproveSchedule(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	schedule, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, mapInventoryError)
		return
	}
	c.JSON(http.StatusOK, response.FromInventorySchedule(schedule))
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInventoryNotFound):
		return pkg.NewDomainErrorSimple("INVENTORY_NOT_FOUND", "Inventory schedule not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssetNotFound):
		return pkg.NewDomainErrorSimple("ASSET_NOT_FOUND", "Asset not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInventoryNotAssigned):
		return pkg.NewDomainErrorSimple("INVENTORY_NOT_ASSIGNED", "User is not assigned to this inventory", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInventoryNotRequester):
		return pkg.NewDomainErrorSimple("INVENTORY_NOT_REQUESTER", "Only the requester can approve this inventory", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInventoryAssetScheduled):
		return pkg.NewDomainErrorSimple("ASSET_ALREADY_SCHEDULED", "Asset already belongs to an active inventory", http.StatusConflict)
	default:
		return nil
	}
}
