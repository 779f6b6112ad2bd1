package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("ECOCART_SERVER_PORT")
		os.Unsetenv("ECOCART_SERVER_ENVIRONMENT")
		os.Unsetenv("ECOCART_SCRAPER_USER_AGENT")
		os.Unsetenv("ECOCART_CACHE_TTL")
		os.Unsetenv("ECOCART_ANALYSIS_BASE_URL")
		os.Unsetenv("ECOCART_ANALYSIS_TIMEOUT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8888" {
			t.Errorf("Server.Port = %s, want 8888", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if len(cfg.Server.AllowedOrigins) != 3 {
			t.Errorf("len(AllowedOrigins) = %d, want 3", len(cfg.Server.AllowedOrigins))
		}
		if len(cfg.Scraper.Sources) != 3 {
			t.Errorf("len(Scraper.Sources) = %d, want 3", len(cfg.Scraper.Sources))
		}
		if cfg.Scraper.UserAgent == "" {
			t.Error("Scraper.UserAgent should default to a browser user agent")
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
		if cfg.Analysis.BaseURL != "http://localhost:5000" {
			t.Errorf("Analysis.BaseURL = %s, want http://localhost:5000", cfg.Analysis.BaseURL)
		}
		if cfg.Analysis.Timeout != 30*time.Second {
			t.Errorf("Analysis.Timeout = %v, want 30s", cfg.Analysis.Timeout)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("ECOCART_SERVER_PORT", "9090")
		os.Setenv("ECOCART_SERVER_ENVIRONMENT", "production")
		os.Setenv("ECOCART_CACHE_TTL", "1h")
		os.Setenv("ECOCART_ANALYSIS_BASE_URL", "https://analysis.internal")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Analysis.BaseURL != "https://analysis.internal" {
			t.Errorf("Analysis.BaseURL = %s, want https://analysis.internal", cfg.Analysis.BaseURL)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects unknown scraper source", func(t *testing.T) {
		cfg := &Config{
			Scraper: ScraperConfig{Sources: []string{"amazon", "aliexpress"}},
		}
		if err := validate(cfg); err == nil {
			t.Error("validate() = nil, want error for unknown source")
		}
	})

	t.Run("rejects negative cache TTL", func(t *testing.T) {
		cfg := &Config{
			Cache: CacheConfig{TTL: -time.Minute},
		}
		if err := validate(cfg); err == nil {
			t.Error("validate() = nil, want error for negative TTL")
		}
	})

	t.Run("accepts known sources", func(t *testing.T) {
		cfg := &Config{
			Scraper: ScraperConfig{Sources: []string{"amazon", "walmart", "ebay"}},
		}
		if err := validate(cfg); err != nil {
			t.Errorf("validate() = %v, want nil", err)
		}
	})
}
