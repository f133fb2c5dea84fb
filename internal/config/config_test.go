package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", config.Database.Provider)
	}

	if config.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", config.Database.URLEnv)
	}

	assert.Equal(t, 18000, config.Seed.Transactions)
	assert.Equal(t, 1000, config.Seed.TransactionBatch)
	assert.Equal(t, 2000, config.Seed.Batch)
	assert.Equal(t, "refresh_analytical_views", config.Seed.RefreshProcedure)
	assert.Equal(t, 5000, config.Mock.Count)
	assert.Equal(t, "data/mockTransactions.json", config.Mock.Output)
	assert.NoError(t, config.Validate())
}

func TestLoadFromEmptyViperUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scout.config.json")
	content := `{
  "database": {"provider": "sqlite", "url_env": "SCOUT_DB"},
  "seed": {"brands": 0, "transactions": 10, "walk_in_rate": 0.5},
  "mock": {"count": 3, "start": "2024-02-01", "end": "2024-02-03", "discount_max": 0.1, "max_basket": 4}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Provider)
	assert.Equal(t, "SCOUT_DB", cfg.Database.URLEnv)
	assert.Equal(t, 0, cfg.Seed.Brands)
	assert.Equal(t, 10, cfg.Seed.Transactions)
	assert.Equal(t, 500, cfg.Seed.Products)
	assert.Equal(t, 0.5, cfg.Seed.WalkInRate)
	assert.Equal(t, 3, cfg.Mock.Count)
	assert.Equal(t, "data/mockTransactions.json", cfg.Mock.Output)
	assert.Equal(t, 0.1, cfg.Mock.DiscountMax)
	assert.Equal(t, 0.05, cfg.Mock.DiscountMin)
	assert.Equal(t, 4, cfg.Mock.MaxBasket)
	assert.Equal(t, 5, cfg.Mock.MaxQuantity)
	assert.NoError(t, cfg.Validate())
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.URLEnv = "SCOUT_TEST_DATABASE_URL"

	_, err := cfg.GetDatabaseURL()
	assert.Error(t, err)

	t.Setenv("SCOUT_TEST_DATABASE_URL", "postgres://localhost/scout")
	url, err := cfg.GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/scout", url)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"unknown provider", func(c *Config) { c.Database.Provider = "oracle" }, "unsupported database provider"},
		{"negative count", func(c *Config) { c.Seed.Stores = -1 }, "seed.stores cannot be negative"},
		{"rate above one", func(c *Config) { c.Seed.WalkInRate = 1.5 }, "seed.walk_in_rate"},
		{"bad start date", func(c *Config) { c.Mock.Start = "01/01/2024" }, "invalid mock.start"},
		{"end before start", func(c *Config) { c.Mock.End = "2023-12-31" }, "is before"},
		{"negative mock count", func(c *Config) { c.Mock.Count = -5 }, "mock.count"},
		{"repeat rate", func(c *Config) { c.Mock.RepeatCustomerRate = -0.1 }, "mock.repeat_customer_rate"},
		{"discount range", func(c *Config) { c.Mock.DiscountMax = 0.01 }, "mock.discount_max"},
		{"basket range", func(c *Config) { c.Mock.MaxBasket = 0 }, "basket size"},
		{"quantity range", func(c *Config) { c.Mock.MinQuantity = 0 }, "quantity range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
