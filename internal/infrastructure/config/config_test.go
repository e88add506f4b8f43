package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "projects", cfg.ProjectsTable)
	assert.Equal(t, "inventory_schedules", cfg.InventoryTable)
	assert.Equal(t, 5*time.Minute, cfg.ReportCacheTTL)
	assert.True(t, cfg.NFeMock)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, developmentJWTSecret, cfg.JWTSecret)
}

func TestLoad_ProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("EXPENSES_TABLE", "obras-expenses")
	t.Setenv("REPORT_CACHE_TTL", "30s")
	t.Setenv("NFE_PROVIDER_MOCK", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "obras-expenses", cfg.ExpensesTable)
	assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
	assert.False(t, cfg.NFeMock)
}
