package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ecocart/backend/config"
	httpDelivery "github.com/ecocart/backend/internal/delivery/http"
	"github.com/ecocart/backend/internal/domain"
	"github.com/ecocart/backend/internal/infrastructure/analysis"
	"github.com/ecocart/backend/internal/infrastructure/cache"
	"github.com/ecocart/backend/internal/infrastructure/catalog"
	"github.com/ecocart/backend/internal/infrastructure/scraper"
	"github.com/ecocart/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting EcoCart Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Infrastructure: retailer adapters, fallback catalog, result cache
	sources := buildSources(cfg)
	log.Printf("Retailer sources enabled: %v", cfg.Scraper.Sources)

	fallback := catalog.NewProvider()
	resultCache := cache.NewSearchResultCache()
	log.Printf("Search cache TTL: %s", cfg.Cache.TTL)

	var analyzer domain.ImageAnalyzer
	if cfg.Analysis.BaseURL != "" {
		analyzer = analysis.NewClient(cfg.Analysis.BaseURL, cfg.Analysis.Timeout)
		log.Printf("Image analysis backend: %s", cfg.Analysis.BaseURL)
	} else {
		log.Printf("WARNING: image analysis backend not configured - /api/analyze disabled")
	}

	// Usecase layer
	aggregator := usecase.NewAggregator(sources, fallback, resultCache, usecase.AggregatorConfig{
		CacheTTL: cfg.Cache.TTL,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(aggregator, analyzer)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildSources instantiates the configured retailer adapters in config order,
// which is also the dispatch (and therefore display) order.
func buildSources(cfg *config.Config) []domain.ProductSource {
	var sources []domain.ProductSource
	for _, name := range cfg.Scraper.Sources {
		switch name {
		case "amazon":
			sources = append(sources, scraper.New(scraper.AmazonConfig(), cfg.Scraper.UserAgent))
		case "walmart":
			sources = append(sources, scraper.New(scraper.WalmartConfig(), cfg.Scraper.UserAgent))
		case "ebay":
			sources = append(sources, scraper.New(scraper.EbayConfig(), cfg.Scraper.UserAgent))
		}
	}
	return sources
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
