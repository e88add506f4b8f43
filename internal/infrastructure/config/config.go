package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration. Every field maps to an env var.
type Config struct {
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	JWTSecret string `mapstructure:"JWT_SECRET"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	ProjectsTable     string `mapstructure:"PROJECTS_TABLE"`
	AssetsTable       string `mapstructure:"ASSETS_TABLE"`
	ExpensesTable     string `mapstructure:"EXPENSES_TABLE"`
	BudgetsTable      string `mapstructure:"BUDGETS_TABLE"`
	AccountsTable     string `mapstructure:"ACCOUNTING_ACCOUNTS_TABLE"`
	AssetClassesTable string `mapstructure:"ASSET_CLASSES_TABLE"`
	CostCentersTable  string `mapstructure:"COST_CENTERS_TABLE"`
	InventoryTable    string `mapstructure:"INVENTORY_SCHEDULES_TABLE"`

	// Empty disables the report cache.
	RedisURL       string        `mapstructure:"REDIS_URL"`
	ReportCacheTTL time.Duration `mapstructure:"REPORT_CACHE_TTL"`

	NFeProviderURL string        `mapstructure:"NFE_PROVIDER_URL"`
	NFeProviderKey string        `mapstructure:"NFE_PROVIDER_API_KEY"`
	NFeMock        bool          `mapstructure:"NFE_PROVIDER_MOCK"`
	NFeTimeout     time.Duration `mapstructure:"NFE_PROVIDER_TIMEOUT"`
}

// developmentJWTSecret signs local tokens when JWT_SECRET is unset.
const developmentJWTSecret = "obras-development-secret"

// IsDevelopment reports whether the service runs with development settings.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("PROJECTS_TABLE", "projects")
	v.SetDefault("ASSETS_TABLE", "assets")
	v.SetDefault("EXPENSES_TABLE", "expenses")
	v.SetDefault("BUDGETS_TABLE", "budgets")
	v.SetDefault("ACCOUNTING_ACCOUNTS_TABLE", "accounting_accounts")
	v.SetDefault("ASSET_CLASSES_TABLE", "asset_classes")
	v.SetDefault("COST_CENTERS_TABLE", "cost_centers")
	v.SetDefault("INVENTORY_SCHEDULES_TABLE", "inventory_schedules")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REPORT_CACHE_TTL", "5m")
	v.SetDefault("NFE_PROVIDER_URL", "")
	v.SetDefault("NFE_PROVIDER_API_KEY", "")
	v.SetDefault("NFE_PROVIDER_MOCK", true)
	v.SetDefault("NFE_PROVIDER_TIMEOUT", "10s")

	// Optional .env file for local development.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("config: JWT_SECRET is required outside development")
		}
		cfg.JWTSecret = developmentJWTSecret
	}
	return cfg, nil
}
