// Package scraper implements the retailer adapters: HTTP fetch with
// browser-like headers plus defensive, selector-chain-driven extraction of
// normalized product records from semi-structured retailer markup.
package scraper

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ecocart/backend/internal/domain"
	"github.com/ecocart/backend/internal/scoring"
)

// IDRule describes how to pull the source-local product id out of a result
// container. When Selector is empty the attribute is read off the container
// itself; when Pattern is set its first capture group is the id (used for
// retailers that only expose the id inside the product link URL).
type IDRule struct {
	Selector string
	Attr     string
	Pattern  *regexp.Regexp
}

// ImageRule drives detail-page gallery extraction, including the
// thumbnail-to-full-size URL rewrite and a skip filter for sprite images.
type ImageRule struct {
	Selectors       []string
	SkipSubstring   string
	FullSizePattern *regexp.Regexp
	FullSizeReplace string
}

// SpecRule extracts the attribute table on a detail page.
type SpecRule struct {
	Row   string
	Key   string
	Value string
}

// SourceConfig is the full static description of one retailer: URL templates,
// headers, timeout, and the ordered selector fallback chains for every
// extracted field. Constructed once at process start, never mutated.
type SourceConfig struct {
	Source    domain.Source
	SearchURL string // fmt template, %s = URL-escaped query
	DetailURL string // fmt template, %s = product id
	Referer   string
	Timeout   time.Duration

	Containers []string
	ID         IDRule
	Titles     []string
	Prices     []string
	Images     []string

	DetailTitles       []string
	DetailPrices       []string
	DetailDescriptions []string
	DetailImages       ImageRule
	Specs              SpecRule

	Profile scoring.Profile
}

// Adapter scrapes one retailer. All adapters share this implementation; what
// differs per retailer lives entirely in SourceConfig.
type Adapter struct {
	cfg     SourceConfig
	fetcher *Fetcher
}

// New builds an adapter for the given source configuration.
func New(cfg SourceConfig, userAgent string) *Adapter {
	return &Adapter{
		cfg:     cfg,
		fetcher: NewFetcher(cfg.Timeout, userAgent, cfg.Referer),
	}
}

// Name returns the internal source identifier.
func (a *Adapter) Name() domain.Source {
	return a.cfg.Source
}

// Search scrapes the retailer's search results page for the query. It never
// propagates retailer failures: any fetch or parse error is logged and an
// empty slice is returned so one broken source cannot blank out the others.
func (a *Adapter) Search(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := a.search(ctx, query)
	if err != nil {
		log.Printf("[%s] search %q failed: %v", a.cfg.Source, query, err)
		return []domain.Product{}, nil
	}
	log.Printf("[%s] search %q: %d products", a.cfg.Source, query, len(products))
	return products, nil
}

func (a *Adapter) search(ctx context.Context, query string) ([]domain.Product, error) {
	reqURL := fmt.Sprintf(a.cfg.SearchURL, url.QueryEscape(query))
	doc, err := a.fetcher.FetchDocument(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	// Try each container selector in priority order; the first one that
	// yields at least one fully-extractable record wins. A selector that
	// matches nodes but produces no complete records is skipped, which
	// defends against markup drift without per-release code changes.
	for _, container := range a.cfg.Containers {
		nodes := doc.Find(container)
		if nodes.Length() == 0 {
			continue
		}

		var products []domain.Product
		nodes.Each(func(_ int, node *goquery.Selection) {
			if p, ok := a.extractRecord(node); ok {
				products = append(products, p)
			}
		})

		if len(products) > 0 {
			return products, nil
		}
	}

	return nil, domain.ErrNoExtractableRecords
}

// extractRecord pulls one normalized product out of a result container.
// Records lacking an id, a non-empty title, or a parseable non-negative price
// are dropped.
func (a *Adapter) extractRecord(node *goquery.Selection) (domain.Product, bool) {
	id := a.extractID(node)
	if id == "" {
		return domain.Product{}, false
	}

	title := firstText(node, a.cfg.Titles)
	if title == "" {
		return domain.Product{}, false
	}

	price, ok := parsePrice(firstText(node, a.cfg.Prices))
	if !ok {
		return domain.Product{}, false
	}

	product := domain.Product{
		ID:       id,
		Title:    title,
		Price:    price,
		ImageURL: firstImage(node, a.cfg.Images),
		URL:      fmt.Sprintf(a.cfg.DetailURL, id),
		Source:   string(a.cfg.Source),
	}
	product.SustainabilityLevel = scoring.Score(a.cfg.Profile, product.Title, product.Description)

	return product, true
}

func (a *Adapter) extractID(node *goquery.Selection) string {
	sel := node
	if a.cfg.ID.Selector != "" {
		sel = node.Find(a.cfg.ID.Selector).First()
		if sel.Length() == 0 {
			return ""
		}
	}

	val, ok := sel.Attr(a.cfg.ID.Attr)
	if !ok || val == "" {
		return ""
	}

	if a.cfg.ID.Pattern != nil {
		m := a.cfg.ID.Pattern.FindStringSubmatch(val)
		if len(m) < 2 {
			return ""
		}
		return m[1]
	}
	return val
}

// Details scrapes the retailer's product page for one id. Unlike Search this
// propagates failure: the caller decides whether to fall back.
func (a *Adapter) Details(ctx context.Context, productID string) (*domain.Product, error) {
	pageURL := fmt.Sprintf(a.cfg.DetailURL, productID)
	doc, err := a.fetcher.FetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	title := firstText(doc.Selection, a.cfg.DetailTitles)
	if title == "" {
		return nil, fmt.Errorf("%w: %s product %s has no title", domain.ErrProductNotFound, a.cfg.Source, productID)
	}

	price, _ := parsePrice(firstText(doc.Selection, a.cfg.DetailPrices))
	description := firstText(doc.Selection, a.cfg.DetailDescriptions)

	product := &domain.Product{
		ID:          productID,
		Title:       title,
		Price:       price,
		Description: description,
		URL:         pageURL,
		Source:      string(a.cfg.Source),
		Images:      a.extractGallery(doc),
		Specs:       a.extractSpecs(doc),
	}
	if len(product.Images) > 0 {
		product.ImageURL = product.Images[0]
	}
	product.SustainabilityLevel = scoring.Score(a.cfg.Profile, product.Title, product.Description)

	return product, nil
}

// extractGallery collects detail-page images, rewriting thumbnail URLs to
// their full-size variant by pattern substitution on the size-token segment.
func (a *Adapter) extractGallery(doc *goquery.Document) []string {
	rule := a.cfg.DetailImages

	var images []string
	for _, candidate := range rule.Selectors {
		doc.Find(candidate).Each(func(_ int, sel *goquery.Selection) {
			src, ok := sel.Attr("src")
			if !ok || !strings.HasPrefix(src, "http") {
				return
			}
			if rule.SkipSubstring != "" && strings.Contains(src, rule.SkipSubstring) {
				return
			}
			if rule.FullSizePattern != nil {
				src = rule.FullSizePattern.ReplaceAllString(src, rule.FullSizeReplace)
			}
			images = append(images, src)
		})
		if len(images) > 0 {
			break
		}
	}
	return images
}

func (a *Adapter) extractSpecs(doc *goquery.Document) map[string]string {
	specs := make(map[string]string)
	if a.cfg.Specs.Row == "" {
		return specs
	}

	doc.Find(a.cfg.Specs.Row).Each(func(_ int, row *goquery.Selection) {
		key := strings.TrimSpace(row.Find(a.cfg.Specs.Key).Text())
		value := strings.TrimSpace(row.Find(a.cfg.Specs.Value).Text())
		if key != "" && value != "" {
			specs[key] = value
		}
	})
	return specs
}
