package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id cannot be resolved on a
	// source, including the mock catalog fallback.
	ErrProductNotFound = errors.New("product not found")

	// ErrSourceUnavailable is returned when a retailer fetch fails (network,
	// timeout, non-success status) or the markup cannot be parsed.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNoExtractableRecords is returned when markup was fetched successfully
	// but no selector chain produced a complete record.
	ErrNoExtractableRecords = errors.New("no extractable records in markup")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrAnalysisFailure is returned when the image-analysis backend request fails.
	ErrAnalysisFailure = errors.New("image analysis request failed")
)
