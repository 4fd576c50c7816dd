package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// LockTimeout bounds how long an atomic ledger operation waits for its
	// row locks before failing as retryable.
	LockTimeout time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// Distribution destinations: the three roster accounts every client
	// payment is split into.
	CostAccountID    string
	FreightAccountID string
	ProfitAccountID  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOCK_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("COST_ACCOUNT_ID", "vault_stock")
	viper.SetDefault("FREIGHT_ACCOUNT_ID", "freight_south")
	viper.SetDefault("PROFIT_ACCOUNT_ID", "profit_fund")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	lockTimeoutStr := viper.GetString("LOCK_TIMEOUT")
	lockTimeout, err := time.ParseDuration(lockTimeoutStr)
	if err != nil {
		lockTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for LOCK_TIMEOUT ('%s'). Defaulting to %s.\n", lockTimeoutStr, lockTimeout)
	}
	cfg.LockTimeout = lockTimeout

	cfg.CostAccountID = viper.GetString("COST_ACCOUNT_ID")
	cfg.FreightAccountID = viper.GetString("FREIGHT_ACCOUNT_ID")
	cfg.ProfitAccountID = viper.GetString("PROFIT_ACCOUNT_ID")
	if cfg.CostAccountID == "" || cfg.FreightAccountID == "" || cfg.ProfitAccountID == "" {
		return nil, fmt.Errorf("distribution accounts must be configured: COST_ACCOUNT_ID, FREIGHT_ACCOUNT_ID, PROFIT_ACCOUNT_ID")
	}
	if cfg.CostAccountID == cfg.FreightAccountID || cfg.CostAccountID == cfg.ProfitAccountID || cfg.FreightAccountID == cfg.ProfitAccountID {
		return nil, fmt.Errorf("distribution accounts must be three distinct accounts")
	}

	return cfg, nil
}
