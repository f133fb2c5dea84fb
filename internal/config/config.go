package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const DateLayout = "2006-01-02"

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
	Mock     Mock     `json:"mock" mapstructure:"mock"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// Seed controls the seed-loader. Rates are fractions in [0, 1].
type Seed struct {
	Brands       int `json:"brands" mapstructure:"brands"`
	Products     int `json:"products" mapstructure:"products"`
	Customers    int `json:"customers" mapstructure:"customers"`
	Stores       int `json:"stores" mapstructure:"stores"`
	Transactions int `json:"transactions" mapstructure:"transactions"`

	Batch            int `json:"batch" mapstructure:"batch"`
	TransactionBatch int `json:"transaction_batch" mapstructure:"transaction_batch"`

	HealthPerDevice int `json:"health_per_device" mapstructure:"health_per_device"`
	LogsPerDevice   int `json:"logs_per_device" mapstructure:"logs_per_device"`
	MaxItems        int `json:"max_items" mapstructure:"max_items"`

	WalkInRate          float64 `json:"walk_in_rate" mapstructure:"walk_in_rate"`
	SubstitutionRate    float64 `json:"substitution_rate" mapstructure:"substitution_rate"`
	RequestBehaviorRate float64 `json:"request_behavior_rate" mapstructure:"request_behavior_rate"`
	CustomerRequestRate float64 `json:"customer_request_rate" mapstructure:"customer_request_rate"`

	WindowDays       int    `json:"window_days" mapstructure:"window_days"`
	RefreshProcedure string `json:"refresh_procedure" mapstructure:"refresh_procedure"`
	NoRefresh        bool   `json:"no_refresh" mapstructure:"no_refresh"`
	RandomSeed       int64  `json:"random_seed" mapstructure:"random_seed"`
}

// Mock controls the JSON mock generator.
type Mock struct {
	Count   int    `json:"count" mapstructure:"count"`
	Start   string `json:"start" mapstructure:"start"`
	End     string `json:"end" mapstructure:"end"`
	Output  string `json:"output" mapstructure:"output"`
	Catalog string `json:"catalog" mapstructure:"catalog"`

	RepeatCustomerRate float64 `json:"repeat_customer_rate" mapstructure:"repeat_customer_rate"`
	DiscountChance     float64 `json:"discount_chance" mapstructure:"discount_chance"`
	DiscountMin        float64 `json:"discount_min" mapstructure:"discount_min"`
	DiscountMax        float64 `json:"discount_max" mapstructure:"discount_max"`
	ClientBrandShare   float64 `json:"client_brand_share" mapstructure:"client_brand_share"`
	RandomSeed         int64   `json:"random_seed" mapstructure:"random_seed"`

	MinBasket   int `json:"min_basket" mapstructure:"min_basket"`
	MaxBasket   int `json:"max_basket" mapstructure:"max_basket"`
	MinQuantity int `json:"min_quantity" mapstructure:"min_quantity"`
	MaxQuantity int `json:"max_quantity" mapstructure:"max_quantity"`
}

// DefaultConfig mirrors the volumes of the production seed run.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Database: Database{
			Provider: "postgresql",
			URLEnv:   "DATABASE_URL",
		},
		Seed: Seed{
			Brands:              50,
			Products:            500,
			Customers:           2000,
			Stores:              100,
			Transactions:        18000,
			Batch:               2000,
			TransactionBatch:    1000,
			HealthPerDevice:     100,
			LogsPerDevice:       50,
			MaxItems:            10,
			WalkInRate:          0.1,
			SubstitutionRate:    0.05,
			RequestBehaviorRate: 0.3,
			CustomerRequestRate: 0.1,
			WindowDays:          365,
			RefreshProcedure:    "refresh_analytical_views",
		},
		Mock: Mock{
			Count:              5000,
			Start:              "2024-01-01",
			End:                "2024-12-20",
			Output:             "data/mockTransactions.json",
			RepeatCustomerRate: 0.3,
			DiscountChance:     0.2,
			DiscountMin:        0.05,
			DiscountMax:        0.25,
			ClientBrandShare:   0.6,
			MinBasket:          1,
			MaxBasket:          8,
			MinQuantity:        1,
			MaxQuantity:        5,
		},
	}
}

// SetDefaults registers every default with viper so unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("database.provider", d.Database.Provider)
	v.SetDefault("database.url_env", d.Database.URLEnv)

	v.SetDefault("seed.brands", d.Seed.Brands)
	v.SetDefault("seed.products", d.Seed.Products)
	v.SetDefault("seed.customers", d.Seed.Customers)
	v.SetDefault("seed.stores", d.Seed.Stores)
	v.SetDefault("seed.transactions", d.Seed.Transactions)
	v.SetDefault("seed.batch", d.Seed.Batch)
	v.SetDefault("seed.transaction_batch", d.Seed.TransactionBatch)
	v.SetDefault("seed.health_per_device", d.Seed.HealthPerDevice)
	v.SetDefault("seed.logs_per_device", d.Seed.LogsPerDevice)
	v.SetDefault("seed.max_items", d.Seed.MaxItems)
	v.SetDefault("seed.walk_in_rate", d.Seed.WalkInRate)
	v.SetDefault("seed.substitution_rate", d.Seed.SubstitutionRate)
	v.SetDefault("seed.request_behavior_rate", d.Seed.RequestBehaviorRate)
	v.SetDefault("seed.customer_request_rate", d.Seed.CustomerRequestRate)
	v.SetDefault("seed.window_days", d.Seed.WindowDays)
	v.SetDefault("seed.refresh_procedure", d.Seed.RefreshProcedure)

	v.SetDefault("mock.count", d.Mock.Count)
	v.SetDefault("mock.start", d.Mock.Start)
	v.SetDefault("mock.end", d.Mock.End)
	v.SetDefault("mock.output", d.Mock.Output)
	v.SetDefault("mock.repeat_customer_rate", d.Mock.RepeatCustomerRate)
	v.SetDefault("mock.discount_chance", d.Mock.DiscountChance)
	v.SetDefault("mock.discount_min", d.Mock.DiscountMin)
	v.SetDefault("mock.discount_max", d.Mock.DiscountMax)
	v.SetDefault("mock.client_brand_share", d.Mock.ClientBrandShare)
	v.SetDefault("mock.min_basket", d.Mock.MinBasket)
	v.SetDefault("mock.max_basket", d.Mock.MaxBasket)
	v.SetDefault("mock.min_quantity", d.Mock.MinQuantity)
	v.SetDefault("mock.max_quantity", d.Mock.MaxQuantity)
}

// Load reads the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Seed.Batch <= 0 {
		cfg.Seed.Batch = DefaultConfig().Seed.Batch
	}
	if cfg.Seed.TransactionBatch <= 0 {
		cfg.Seed.TransactionBatch = DefaultConfig().Seed.TransactionBatch
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "supabase", "mysql", "sqlite", "sqlite3", "memory"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if err := c.Seed.Validate(); err != nil {
		return err
	}
	return c.Mock.Validate()
}

func (s Seed) Validate() error {
	counts := map[string]int{
		"brands":            s.Brands,
		"products":          s.Products,
		"customers":         s.Customers,
		"stores":            s.Stores,
		"transactions":      s.Transactions,
		"health_per_device": s.HealthPerDevice,
		"logs_per_device":   s.LogsPerDevice,
		"max_items":         s.MaxItems,
		"window_days":       s.WindowDays,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("seed.%s cannot be negative", name)
		}
	}

	rates := map[string]float64{
		"walk_in_rate":          s.WalkInRate,
		"substitution_rate":     s.SubstitutionRate,
		"request_behavior_rate": s.RequestBehaviorRate,
		"customer_request_rate": s.CustomerRequestRate,
	}
	for name, r := range rates {
		if r < 0 || r > 1 {
			return fmt.Errorf("seed.%s must be between 0 and 1, got %v", name, r)
		}
	}
	return nil
}

func (m Mock) Validate() error {
	if m.Count < 0 {
		return fmt.Errorf("mock.count cannot be negative")
	}
	if m.Output == "" {
		return fmt.Errorf("mock.output cannot be empty")
	}
	start, end, err := m.DateRange()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("mock.end %s is before mock.start %s", m.End, m.Start)
	}

	rates := map[string]float64{
		"repeat_customer_rate": m.RepeatCustomerRate,
		"discount_chance":      m.DiscountChance,
		"discount_min":         m.DiscountMin,
		"discount_max":         m.DiscountMax,
		"client_brand_share":   m.ClientBrandShare,
	}
	for name, r := range rates {
		if r < 0 || r > 1 {
			return fmt.Errorf("mock.%s must be between 0 and 1, got %v", name, r)
		}
	}
	if m.DiscountMax < m.DiscountMin {
		return fmt.Errorf("mock.discount_max %v is below mock.discount_min %v", m.DiscountMax, m.DiscountMin)
	}
	if m.MinBasket < 0 || m.MaxBasket < m.MinBasket {
		return fmt.Errorf("invalid mock basket size range %d-%d", m.MinBasket, m.MaxBasket)
	}
	if m.MinQuantity < 1 || m.MaxQuantity < m.MinQuantity {
		return fmt.Errorf("invalid mock quantity range %d-%d", m.MinQuantity, m.MaxQuantity)
	}
	return nil
}

// DateRange parses Start and End as calendar dates in UTC.
func (m Mock) DateRange() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, m.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid mock.start %q: %w", m.Start, err)
	}
	end, err := time.Parse(DateLayout, m.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid mock.end %q: %w", m.End, err)
	}
	return start, end, nil
}
