package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/ecocart/backend/internal/domain"
)

// DefaultUserAgent is a desktop Chrome user agent. Retailer sites serve
// stripped-down or blocked markup to anything that does not look like a
// browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// maxBodySize caps how much of a retailer page is read. Search pages are
// rarely above 2-3 MB; anything bigger is not worth parsing.
const maxBodySize = 8 << 20

// Fetcher retrieves retailer pages with browser-like headers. Each adapter
// owns one Fetcher so timeouts and rate limits are per source.
type Fetcher struct {
	httpClient  *http.Client
	userAgent   string
	referer     string
	rateLimiter *rate.Limiter
}

// NewFetcher creates a fetcher with a fixed request timeout. A zero timeout
// falls back to 10 seconds.
func NewFetcher(timeout time.Duration, userAgent, referer string) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	// One request per second with a small burst keeps scraping polite and
	// below per-IP blocking thresholds.
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent:   userAgent,
		referer:     referer,
		rateLimiter: limiter,
	}
}

// FetchDocument executes a GET against reqURL and parses the body as HTML.
// All failure modes (network, timeout, non-2xx, empty body, unparseable
// markup) surface as ErrSourceUnavailable.
func (f *Fetcher) FetchDocument(ctx context.Context, reqURL string) (*goquery.Document, error) {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrSourceUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrSourceUnavailable, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("DNT", "1")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Cache-Control", "max-age=0")
	if f.referer != "" {
		req.Header.Set("Referer", f.referer)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrSourceUnavailable, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", domain.ErrSourceUnavailable)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", domain.ErrSourceUnavailable, err)
	}

	return doc, nil
}
