package domain

import (
	"context"
	"time"
)

// ProductSource is the contract every retailer adapter (and the mock catalog)
// satisfies.
//
// Search must never fail on account of the retailer: fetch, parse, and
// selector errors are swallowed inside the adapter and surface as an empty
// slice. Details is the one operation allowed to propagate failure - callers
// are expected to handle ErrProductNotFound and ErrSourceUnavailable.
type ProductSource interface {
	Name() Source
	Search(ctx context.Context, query string) ([]Product, error)
	Details(ctx context.Context, productID string) (*Product, error)
}

// SearchCache caches merged search results per normalized query.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]Product, error)
	Set(ctx context.Context, key string, products []Product, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ImageAnalyzer is the client-side contract for the external image-analysis
// backend. The service itself is an external collaborator; only its output
// shape is consumed here.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, filename string, image []byte, pageURL, title string) (*AnalysisResult, error)
}
