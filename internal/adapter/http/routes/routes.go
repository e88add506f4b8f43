package routes

import (
	"context"
	"errors"
	"gestao_obras/internal/adapter/http/handlers"
	"gestao_obras/internal/adapter/http/middleware"
	"gestao_obras/internal/adapter/persistence/repository"
	"gestao_obras/internal/infrastructure/cache"
	"gestao_obras/internal/infrastructure/config"
	"gestao_obras/internal/infrastructure/database"
	"gestao_obras/internal/infrastructure/fiscal"
	"gestao_obras/internal/usecase"
	"gestao_obras/internal/usecase/interfaces"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler served under /v1.
type Handlers struct {
	Project    *handlers.ProjectHandler
	Asset      *handlers.AssetHandler
	Expense    *handlers.ExpenseHandler
	Budget     *handlers.BudgetHandler
	Accounting *handlers.AccountingHandler
	Inventory  *handlers.InventoryHandler
	Dashboard  *handlers.DashboardHandler
}

// Run wires the application and serves HTTP until ctx is cancelled, then
// drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	h, cleanup, err := getHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h, cfg.JWTSecret)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter registers middlewares and every route. Everything under /v1 but
// the ping route requires a Bearer token.
func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtSecret))
	addProjectRoutes(protected, h.Project)
	addAssetRoutes(protected, h.Asset)
	addExpenseRoutes(protected, h.Expense, h.Budget)
	addAccountingRoutes(protected, h.Accounting)
	addInventoryRoutes(protected, h.Inventory)
	addDashboardRoutes(protected, h.Dashboard)
	return router
}

func getHandlers(ctx context.Context, cfg *config.Config) (Handlers, func(), error) {
	ddb, err := database.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, err
	}

	projectRepo := repository.NewProjectDynamoRepository(ddb, cfg.ProjectsTable)
	assetRepo := repository.NewAssetDynamoRepository(ddb, cfg.AssetsTable)
	expenseRepo := repository.NewExpenseDynamoRepository(ddb, cfg.ExpensesTable)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.BudgetsTable)
	accountRepo := repository.NewAccountingAccountDynamoRepository(ddb, cfg.AccountsTable)
	classRepo := repository.NewAssetClassDynamoRepository(ddb, cfg.AssetClassesTable)
	centerRepo := repository.NewCostCenterDynamoRepository(ddb, cfg.CostCentersTable)
	inventoryRepo := repository.NewInventoryDynamoRepository(ddb, cfg.InventoryTable)

	cleanup := func() {}
	var reportCache interfaces.IReportCache = cache.NoopReportCache{}
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			// Reports are rebuilt on every read without the cache.
			log.Warn().Err(err).Msg("redis unavailable, report cache disabled")
		} else {
			reportCache = cache.NewRedisReportCache(rdb, cfg.ReportCacheTTL)
			cleanup = func() { _ = rdb.Close() }
		}
	}

	var nfe interfaces.INFeProvider
	if cfg.NFeMock || cfg.NFeProviderURL == "" {
		log.Info().Msg("nf-e lookups served by the mock provider")
		nfe = fiscal.NewMockNFeProvider()
	} else {
		breaker := fiscal.NewCircuitBreaker(fiscal.DefaultBreakerConfig())
		nfe = fiscal.NewNFeClient(cfg.NFeProviderURL, cfg.NFeProviderKey, cfg.NFeTimeout, breaker)
	}

	projectUseCase := usecase.NewProjectUseCase(projectRepo, expenseRepo, budgetRepo, reportCache)
	assetUseCase := usecase.NewAssetUseCase(assetRepo, projectRepo, expenseRepo, classRepo, reportCache)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo, projectRepo, assetRepo, budgetRepo, nfe, reportCache)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, projectRepo, expenseRepo, reportCache)
	accountingUseCase := usecase.NewAccountingUseCase(accountRepo, classRepo, centerRepo)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo, assetRepo, reportCache)
	dashboardUseCase := usecase.NewDashboardUseCase(projectRepo, assetRepo, expenseRepo, budgetRepo, reportCache)

	return Handlers{
		Project:    handlers.NewProjectHandler(projectUseCase),
		Asset:      handlers.NewAssetHandler(assetUseCase),
		Expense:    handlers.NewExpenseHandler(expenseUseCase),
		Budget:     handlers.NewBudgetHandler(budgetUseCase),
		Accounting: handlers.NewAccountingHandler(accountingUseCase),
		Inventory:  handlers.NewInventoryHandler(inventoryUseCase),
		Dashboard:  handlers.NewDashboardHandler(dashboardUseCase),
	}, cleanup, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
