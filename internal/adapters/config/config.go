package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config represents application configuration
type Config struct {
	Server     ServerConfig     `envconfig:"SERVER"`
	Logging    LoggingConfig    `envconfig:"LOG"`
	Redis      RedisConfig      `envconfig:"REDIS"`
	Database   DatabaseConfig   `envconfig:"DB"`
	ClickHouse ClickHouseConfig `envconfig:"CLICKHOUSE"`
	Upstream   UpstreamConfig   `envconfig:"UPSTREAM"`
	News       NewsConfig       `envconfig:"NEWS"`
	Economic   EconomicConfig   `envconfig:"ECONOMIC"`
	Currency   CurrencyConfig   `envconfig:"CURRENCY"`
	AI         AIConfig         `envconfig:"AI"`
	Cache      CacheConfig      `envconfig:"CACHE"`
	Warmup     WarmupConfig     `envconfig:"WARMUP"`
}

// ServerConfig represents HTTP API configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	Mode            string        `envconfig:"MODE" default:"release"` // gin mode: debug or release
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"25s"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
	File  string `envconfig:"FILE" default:""`
}

// RedisConfig represents Redis cache connection parameters
type RedisConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"true"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

// Addr returns host:port
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig represents PostgreSQL reference-data store parameters
type DatabaseConfig struct {
	Enabled        bool   `envconfig:"ENABLED" default:"false"`
	Host           string `envconfig:"HOST" default:"localhost"`
	Port           int    `envconfig:"PORT" default:"5432"`
	Name           string `envconfig:"NAME" default:"worldmap"`
	User           string `envconfig:"USER" default:"worldmap"`
	Password       string `envconfig:"PASSWORD" default:""`
	SSLMode        string `envconfig:"SSLMODE" default:"disable"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"./migrations"`
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// ClickHouseConfig represents usage analytics sink parameters
type ClickHouseConfig struct {
	Enabled       bool          `envconfig:"ENABLED" default:"false"`
	Host          string        `envconfig:"HOST" default:"localhost"`
	Port          int           `envconfig:"PORT" default:"9000"`
	Database      string        `envconfig:"DATABASE" default:"worldmap"`
	User          string        `envconfig:"USER" default:"default"`
	Password      string        `envconfig:"PASSWORD" default:""`
	BatchSize     int           `envconfig:"BATCH_SIZE" default:"100"`
	FlushInterval time.Duration `envconfig:"FLUSH_INTERVAL" default:"10s"`
}

// GetDSN returns ClickHouse connection string
func (c *ClickHouseConfig) GetDSN() string {
	return fmt.Sprintf("clickhouse://%s:%s@%s:%d/%s", c.User, c.Password, c.Host, c.Port, c.Database)
}

// UpstreamConfig holds settings shared by every upstream connector
type UpstreamConfig struct {
	Timeout time.Duration `envconfig:"TIMEOUT" default:"20s"`
}

// NewsConfig represents news connector configuration
type NewsConfig struct {
	APIKey      string        `envconfig:"API_KEY" default:""`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://newsapi.org/v2"`
	RSSURL      string        `envconfig:"RSS_URL" default:"http://feeds.bbci.co.uk/news/rss.xml"`
	RSSEnabled  bool          `envconfig:"RSS_ENABLED" default:"true"`
	PageSize    int           `envconfig:"PAGE_SIZE" default:"20"`
	TargetCount int           `envconfig:"TARGET_COUNT" default:"3"`
	MinLength   int           `envconfig:"MIN_LENGTH" default:"100"`
	Lookback    time.Duration `envconfig:"LOOKBACK" default:"168h"`
}

// EconomicConfig represents World Bank connector configuration
type EconomicConfig struct {
	BaseURL       string `envconfig:"BASE_URL" default:"https://api.worldbank.org/v2"`
	LookbackYears int    `envconfig:"LOOKBACK_YEARS" default:"5"`
}

// CurrencyConfig represents exchange-rate connector configuration
type CurrencyConfig struct {
	BaseURL string `envconfig:"BASE_URL" default:"https://api.exchangerate-api.com/v4"`
}

// AIConfig represents premium analysis and budget configuration
type AIConfig struct {
	OpenAI    AIProviderConfig `envconfig:"OPENAI"`
	Anthropic AIProviderConfig `envconfig:"ANTHROPIC"`
	// Provider picks the premium backend when both are configured: openai or anthropic
	Provider             string   `envconfig:"PROVIDER" default:"openai"`
	MonthlyBudget        string   `envconfig:"MONTHLY_BUDGET" default:"50"`
	CostPerCall          string   `envconfig:"COST_PER_CALL" default:"0.002"`
	PremiumCountries     []string `envconfig:"PREMIUM_COUNTRIES" default:"USA,CHN,GBR,DEU,JPN"`
	BiasAnalysisPremium  bool     `envconfig:"BIAS_ANALYSIS_PREMIUM" default:"false"`
	PremiumSampleRate    float64  `envconfig:"PREMIUM_SAMPLE_RATE" default:"0.1"`
	EnablePremiumFeature bool     `envconfig:"ENABLE_PREMIUM" default:"true"`
}

// AIProviderConfig represents single premium provider configuration
type AIProviderConfig struct {
	APIKey      string        `envconfig:"API_KEY" default:""`
	Model       string        `envconfig:"MODEL" default:""`
	MaxTokens   int           `envconfig:"MAX_TOKENS" default:"400"`
	Temperature float64       `envconfig:"TEMPERATURE" default:"0.2"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Enabled reports whether the provider has credentials
func (c *AIProviderConfig) Enabled() bool {
	return c.APIKey != ""
}

// MonthlyBudgetDecimal parses the monthly budget
func (c *AIConfig) MonthlyBudgetDecimal() decimal.Decimal {
	return decimal.RequireFromString(c.MonthlyBudget)
}

// CostPerCallDecimal parses the fixed premium cost per call
func (c *AIConfig) CostPerCallDecimal() decimal.Decimal {
	return decimal.RequireFromString(c.CostPerCall)
}

// PremiumAllowlist returns the normalized premium countries
func (c *AIConfig) PremiumAllowlist() []string {
	out := make([]string, 0, len(c.PremiumCountries))
	for _, code := range c.PremiumCountries {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			out = append(out, code)
		}
	}
	return out
}

// CacheConfig represents per-category freshness windows
type CacheConfig struct {
	NewsTTL      time.Duration `envconfig:"NEWS_TTL" default:"45m"`
	EconomicTTL  time.Duration `envconfig:"ECONOMIC_TTL" default:"12h"`
	CurrencyTTL  time.Duration `envconfig:"CURRENCY_TTL" default:"1h"`
	CompositeTTL time.Duration `envconfig:"COMPOSITE_TTL" default:"30m"`
	DegradedTTL  time.Duration `envconfig:"DEGRADED_TTL" default:"5m"`
}

// WarmupConfig represents the background cache warmer
type WarmupConfig struct {
	Enabled   bool          `envconfig:"ENABLED" default:"false"`
	Interval  time.Duration `envconfig:"INTERVAL" default:"30m"`
	Countries []string      `envconfig:"COUNTRIES" default:"USA,CHN,GBR,DEU,JPN"`
}

// Load reads configuration from .env (if present) and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Upstream call timeout bounds
const (
	MinUpstreamTimeout = 15 * time.Second
	MaxUpstreamTimeout = 30 * time.Second
)

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Upstream.Timeout < MinUpstreamTimeout || c.Upstream.Timeout > MaxUpstreamTimeout {
		return fmt.Errorf("upstream timeout must be between %s and %s, got %s",
			MinUpstreamTimeout, MaxUpstreamTimeout, c.Upstream.Timeout)
	}

	if c.News.TargetCount < 1 {
		return fmt.Errorf("news target count must be at least 1")
	}
	if c.News.PageSize < c.News.TargetCount {
		return fmt.Errorf("news page size must be >= target count")
	}

	if c.Economic.LookbackYears < 1 {
		return fmt.Errorf("economic lookback years must be at least 1")
	}

	budget, err := decimal.NewFromString(c.AI.MonthlyBudget)
	if err != nil {
		return fmt.Errorf("invalid monthly budget: %w", err)
	}
	if budget.IsNegative() {
		return fmt.Errorf("monthly budget must not be negative")
	}

	cost, err := decimal.NewFromString(c.AI.CostPerCall)
	if err != nil {
		return fmt.Errorf("invalid cost per call: %w", err)
	}
	if !cost.IsPositive() {
		return fmt.Errorf("cost per call must be positive")
	}

	if c.AI.PremiumSampleRate < 0 || c.AI.PremiumSampleRate > 1 {
		return fmt.Errorf("premium sample rate must be between 0 and 1")
	}

	switch c.AI.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown AI provider %q", c.AI.Provider)
	}

	for name, ttl := range map[string]time.Duration{
		"news":      c.Cache.NewsTTL,
		"economic":  c.Cache.EconomicTTL,
		"currency":  c.Cache.CurrencyTTL,
		"composite": c.Cache.CompositeTTL,
		"degraded":  c.Cache.DegradedTTL,
	} {
		if ttl <= 0 {
			return fmt.Errorf("%s cache ttl must be positive", name)
		}
	}

	if c.Warmup.Enabled && c.Warmup.Interval <= 0 {
		return fmt.Errorf("warmup interval must be positive")
	}

	return nil
}
