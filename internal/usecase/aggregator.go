package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ecocart/backend/internal/domain"
)

// Package-level compiled regex for cache key normalization.
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// AggregatorConfig holds configuration for the aggregator.
type AggregatorConfig struct {
	CacheTTL time.Duration
}

// Aggregator fans a search query out to every configured retailer source
// concurrently, merges whatever settles, and falls back to the mock catalog
// when the real sources yield nothing. Search never fails: the worst case is
// an empty product list plus an explanatory message.
type Aggregator struct {
	sources  []domain.ProductSource
	fallback domain.ProductSource
	cache    domain.SearchCache
	cacheTTL time.Duration
}

// SearchResult is the aggregator's answer: the merged products plus an
// optional user-facing message set when a fallback path produced them.
type SearchResult struct {
	Products []domain.Product
	Message  string
}

// NewAggregator creates an aggregator over the given real sources and the
// fallback provider. cache may be nil to disable result caching.
func NewAggregator(
	sources []domain.ProductSource,
	fallback domain.ProductSource,
	cache domain.SearchCache,
	config AggregatorConfig,
) *Aggregator {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &Aggregator{
		sources:  sources,
		fallback: fallback,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Search runs the fan-out/fan-in pipeline for one query.
//
// Every source is dispatched concurrently and the call waits for all of them
// to settle; a slow or broken retailer contributes an empty slice without
// delaying or corrupting the others. Merged results keep dispatch order.
// An empty merge is replaced wholesale by the fallback catalog's results.
func (a *Aggregator) Search(ctx context.Context, query string) SearchResult {
	if strings.TrimSpace(query) == "" {
		return SearchResult{Products: []domain.Product{}, Message: "search query is required"}
	}

	cacheKey := searchCacheKey(query)
	if a.cache != nil {
		if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
			log.Printf("[aggregator] cache hit for %q (%d products)", query, len(cached))
			return SearchResult{Products: cached}
		}
	}

	merged := a.fanOut(ctx, query)

	if len(merged) == 0 {
		return a.fallbackSearch(ctx, query)
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, cacheKey, merged, a.cacheTTL); err != nil {
			log.Printf("[aggregator] cache set failed for %q: %v", query, err)
		}
	}

	log.Printf("[aggregator] %q: %d products from %d sources", query, len(merged), len(a.sources))
	return SearchResult{Products: merged}
}

// fanOut dispatches the query to every source concurrently and joins all
// contributions in dispatch order, relabeled with public source names.
func (a *Aggregator) fanOut(ctx context.Context, query string) []domain.Product {
	contributions := make([][]domain.Product, len(a.sources))

	var wg sync.WaitGroup
	for i, source := range a.sources {
		wg.Add(1)
		go func(i int, source domain.ProductSource) {
			defer wg.Done()
			// A panicking adapter must not take down the whole request;
			// its contribution simply stays empty.
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[aggregator] source %s panicked: %v", source.Name(), r)
				}
			}()

			products, err := source.Search(ctx, query)
			if err != nil {
				log.Printf("[aggregator] source %s failed: %v", source.Name(), err)
				return
			}
			contributions[i] = products
		}(i, source)
	}
	wg.Wait()

	var merged []domain.Product
	for _, contribution := range contributions {
		for _, product := range contribution {
			product.Source = PublicLabel(domain.Source(product.Source))
			merged = append(merged, product)
		}
	}
	return merged
}

// fallbackSearch serves the mock catalog when no real source produced
// anything. Even a broken fallback resolves to an empty result with a
// message, never an error.
func (a *Aggregator) fallbackSearch(ctx context.Context, query string) SearchResult {
	log.Printf("[aggregator] no real results for %q, using fallback catalog", query)

	products, err := a.fallback.Search(ctx, query)
	if err != nil {
		log.Printf("[aggregator] fallback search failed: %v", err)
		return SearchResult{
			Products: []domain.Product{},
			Message:  "failed to search for products, please try a different search term",
		}
	}

	relabeled := make([]domain.Product, 0, len(products))
	for _, product := range products {
		product.Source = PublicLabel(domain.Source(product.Source))
		relabeled = append(relabeled, product)
	}

	return SearchResult{
		Products: relabeled,
		Message:  "used fallback data, real sources returned no results",
	}
}

// Details resolves a detail lookup: public label to one adapter, then that
// adapter's product page, then the fallback catalog, then not-found.
func (a *Aggregator) Details(ctx context.Context, productID, publicSource string) (*domain.Product, error) {
	if productID == "" || publicSource == "" {
		return nil, domain.ErrInvalidRequest
	}

	sourceID := SourceID(publicSource)
	source := a.sourceByName(sourceID)

	if source != nil {
		product, err := source.Details(ctx, productID)
		if err == nil {
			product.Source = PublicLabel(domain.Source(product.Source))
			return product, nil
		}
		log.Printf("[aggregator] details %s/%s failed: %v, trying fallback", sourceID, productID, err)
	}

	product, err := a.fallback.Details(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrProductNotFound, err)
	}

	product.Source = PublicLabel(domain.Source(product.Source))
	return product, nil
}

func (a *Aggregator) sourceByName(name domain.Source) domain.ProductSource {
	for _, source := range a.sources {
		if source.Name() == name {
			return source
		}
	}
	return nil
}

// searchCacheKey normalizes a query into a stable cache key.
func searchCacheKey(query string) string {
	normalized := strings.ToLower(query)
	normalized = nonAlphanumericRegex.ReplaceAllString(normalized, "")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")
	return "search:" + strings.TrimSpace(normalized)
}
