package scraper

import (
	"time"

	"github.com/ecocart/backend/internal/domain"
	"github.com/ecocart/backend/internal/scoring"
)

// WalmartConfig returns the static scraping configuration for Walmart search
// and product pages. Walmart gets a shorter timeout - its edge servers hang
// connections they suspect of being bots instead of refusing them.
func WalmartConfig() SourceConfig {
	return SourceConfig{
		Source:    domain.SourceWalmart,
		SearchURL: "https://www.walmart.com/search?q=%s",
		DetailURL: "https://www.walmart.com/ip/%s",
		Referer:   "https://www.walmart.com/",
		Timeout:   8 * time.Second,

		Containers: []string{
			"[data-item-id]",
			`[data-testid="item-stack"] > div`,
		},
		ID: IDRule{Attr: "data-item-id"},
		Titles: []string{
			`[data-automation-id="product-title"]`,
			`span[data-automation-id="product-title"]`,
			"a span.lh-title",
		},
		Prices: []string{
			`[data-automation-id="product-price"]`,
			`div[data-automation-id="product-price"] .f2`,
			".price-main",
		},
		Images: []string{`img[data-testid="productTileImage"]`, "img"},

		DetailTitles: []string{`[data-automation-id="product-title"]`, "h1"},
		DetailPrices: []string{`[data-automation-id="product-price"]`, `[itemprop="price"]`},
		DetailDescriptions: []string{
			`[data-automation-id="product-description"]`,
			".about-desc",
		},
		DetailImages: ImageRule{
			Selectors: []string{`[data-automation-id="image-gallery"] img`, `[data-testid="media-thumbnail"] img`},
		},
		Specs: SpecRule{
			Row:   `[data-automation-id="product-specifications"] tr`,
			Key:   "th",
			Value: "td",
		},

		Profile: scoring.Profile{Base: 2, KeywordBonus: 1},
	}
}
