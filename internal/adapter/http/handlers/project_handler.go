package handlers

import (
	"errors"
	"gestao_obras/internal/adapter/http/dto/request"
	"gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/domain/workflow"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves project intake, approval and rollups.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Registers a project with the next OBRA-### code in status aguardando_classificacao.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      request.ProjectRequest  true  "Project"
// @Success      201      {object}  response.ProjectResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err, mapProjectError)
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

// ListProjects godoc
// @Summary  List projects
// @Tags     projects
// @Produce  json
// @Success  200  {array}  response.ProjectResponse
// @Security Bearer
// @Router   /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err, mapProjectError)
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapProjectError)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	project, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err, mapProjectError)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, mapProjectError)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdvanceProject godoc
// @Summary      Approve the current stage
// @Description  Moves the project to the next approval stage. The caller's role must match the stage.
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.ProjectResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/advance [post]
func (h *ProjectHandler) AdvanceProject(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	project, err := h.usecase.Advance(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, mapProjectError)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// RejectProject godoc
// @Summary  Reject the project at its current stage
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    id      path      string                        true  "Project ID"
// @Param    reason  body      request.RejectProjectRequest  true  "Rejection reason"
// @Success  200     {object}  response.ProjectResponse
// @Failure  403     {object}  pkg.HTTPError
// @Security Bearer
// @Router   /projects/{id}/reject [post]
func (h *ProjectHandler) RejectProject(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.RejectProjectRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	project, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), actor, payload.Reason)
	if err != nil {
		respondError(c, err, mapProjectError)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) GetProjectTotals(c *gin.Context) {
	totals, err := h.usecase.Totals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapProjectError)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *ProjectHandler) GetProjectTimeline(c *gin.Context) {
	steps, err := h.usecase.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, mapProjectError)
		return
	}
	c.JSON(http.StatusOK, steps)
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, workflow.ErrTerminal):
		return pkg.NewDomainError("PROJECT_FINALIZED", "Project already reached a final status", err, http.StatusConflict)
	case errors.Is(err, workflow.ErrUnknownStage):
		return pkg.NewDomainError("UNKNOWN_APPROVAL_STAGE", "Project status is not part of the approval flow", err, http.StatusConflict)
	default:
		return nil
	}
}
