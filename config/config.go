package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Scraper  ScraperConfig
	Cache    CacheConfig
	Analysis AnalysisConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScraperConfig holds retailer scraping configuration
type ScraperConfig struct {
	UserAgent string   `mapstructure:"user_agent"`
	Sources   []string `mapstructure:"sources"`
}

// CacheConfig holds search-result cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// AnalysisConfig holds image-analysis backend configuration. An empty base
// URL disables the analysis endpoint.
type AnalysisConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// knownSources are the retailer adapters that can be enabled.
var knownSources = map[string]bool{
	"amazon":  true,
	"walmart": true,
	"ebay":    true,
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ecocart/")

	// Environment variable settings
	v.SetEnvPrefix("ECOCART")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8888")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"chrome-extension://*",
	})

	// Scraper defaults
	v.SetDefault("scraper.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("scraper.sources", []string{"amazon", "walmart", "ebay"})

	// Cache defaults
	v.SetDefault("cache.ttl", "5m")

	// Analysis backend defaults
	v.SetDefault("analysis.base_url", "http://localhost:5000")
	v.SetDefault("analysis.timeout", "30s")
}

// validate validates the configuration
func validate(config *Config) error {
	for _, source := range config.Scraper.Sources {
		if !knownSources[source] {
			return fmt.Errorf("unknown scraper source %q (known: amazon, walmart, ebay)", source)
		}
	}

	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", config.Cache.TTL)
	}

	return nil
}
