package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathExpenses           = "/expenses"
	PathBudgets            = "/budgets"
	PathAccounting         = "/accounting"
	PathInventorySchedules = "/inventory-schedules"
)

func addExpenseRoutes(rg *gin.RouterGroup, h *handlers.ExpenseHandler, bh *handlers.BudgetHandler) {
	expenses := rg.Group(PathExpenses)
	{
		expenses.POST("", h.CreateExpense)
		expenses.GET("", h.ListExpenses)
		expenses.POST("/nfe-lookup", h.LookupNFe)
		expenses.GET("/:id", h.GetExpense)
		expenses.PUT("/:id", h.UpdateExpense)
		expenses.DELETE("/:id", h.DeleteExpense)
		expenses.POST("/:id/asset", h.LinkExpenseToAsset)
		expenses.DELETE("/:id/asset", h.UnlinkExpenseFromAsset)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", bh.CreateBudget)
		budgets.GET("", bh.ListBudgets)
		budgets.GET("/:id", bh.GetBudget)
		budgets.GET("/:id/expenses", h.ListBudgetExpenses)
		budgets.POST("/:id/expenses", h.LinkExpensesToBudget)
	}
}

func addAccountingRoutes(rg *gin.RouterGroup, h *handlers.AccountingHandler) {
	accounting := rg.Group(PathAccounting)

	accounts := accounting.Group("/accounts")
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("", h.CreateAccount)
		accounts.POST("/bulk", h.BulkCreateAccounts)
		accounts.PUT("/:code", h.UpdateAccount)
		accounts.DELETE("/:code", h.DeleteAccount)
	}

	classes := accounting.Group("/asset-classes")
	{
		classes.GET("", h.ListAssetClasses)
		classes.POST("", h.CreateAssetClass)
		classes.POST("/bulk", h.BulkCreateAssetClasses)
		classes.PUT("/:code", h.UpdateAssetClass)
		classes.DELETE("/:code", h.DeleteAssetClass)
	}

	centers := accounting.Group("/cost-centers")
	{
		centers.GET("", h.ListCostCenters)
		centers.POST("", h.CreateCostCenter)
		centers.POST("/bulk", h.BulkCreateCostCenters)
		centers.PUT("/:code", h.UpdateCostCenter)
		centers.DELETE("/:code", h.DeleteCostCenter)
	}
}

func addInventoryRoutes(rg *gin.RouterGroup, h *handlers.InventoryHandler) {
	schedules := rg.Group(PathInventorySchedules)
	{
		schedules.POST("", h.CreateSchedule)
		schedules.GET("", h.ListSchedules)
		schedules.GET("/:id", h.GetSchedule)
		schedules.POST("/:id/results", h.SubmitResults)
		schedules.POST("/:id/approve", h.ApproveSchedule)
	}
}
