package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathAssets    = "/assets"
	PathDashboard = "/dashboard"
)

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.CreateProject)
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.GetProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)

		// Approval workflow
		projects.POST("/:id/advance", h.AdvanceProject)
		projects.POST("/:id/reject", h.RejectProject)
		projects.GET("/:id/timeline", h.GetProjectTimeline)

		projects.GET("/:id/totals", h.GetProjectTotals)
	}
}

func addAssetRoutes(rg *gin.RouterGroup, h *handlers.AssetHandler) {
	assets := rg.Group(PathAssets)
	{
		assets.POST("", h.CreateAsset)
		assets.GET("", h.ListAssets)
		assets.GET("/next-number", h.NextAssetNumber)
		assets.GET("/:id", h.GetAsset)
		assets.PUT("/:id", h.UpdateAsset)
		assets.DELETE("/:id", h.DeleteAsset)
		assets.POST("/:id/activate", h.ActivateAsset)
		assets.GET("/:id/cost", h.GetAssetCost)
		assets.GET("/:id/depreciation", h.GetAssetDepreciation)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard, h.GetDashboard)
}
