package handlers

import (
	"gestao_obras/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary      Portfolio dashboard
// @Description  Overview, FP&A budget metrics, asset classes, monthly depreciation and asset movement for the current year.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  report.Dashboard
// @Security     Bearer
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
