package scraper

import (
	"regexp"
	"time"

	"github.com/ecocart/backend/internal/domain"
	"github.com/ecocart/backend/internal/scoring"
)

// amazonThumbRegex strips the size-token suffix off a gallery thumbnail URL
// to recover the full-size image.
var amazonThumbRegex = regexp.MustCompile(`\._[A-Z0-9,_]+_\.(\w+)$`)

// AmazonConfig returns the static scraping configuration for Amazon search
// and product pages.
func AmazonConfig() SourceConfig {
	return SourceConfig{
		Source:    domain.SourceAmazon,
		SearchURL: "https://www.amazon.com/s?k=%s",
		DetailURL: "https://www.amazon.com/dp/%s",
		Referer:   "https://www.amazon.com/",
		Timeout:   10 * time.Second,

		Containers: []string{
			".s-result-item[data-asin]",
			`[data-component-type="s-search-result"]`,
			".sg-col-4-of-12.s-result-item",
			".s-asin",
		},
		ID:     IDRule{Attr: "data-asin"},
		Titles: []string{"h2 span", "h2 a span", ".a-text-normal", ".a-size-base-plus"},
		Prices: []string{".a-price .a-offscreen", ".a-price", ".a-color-price"},
		Images: []string{"img.s-image", ".a-section img", "img"},

		DetailTitles:       []string{"#productTitle", "#title span"},
		DetailPrices:       []string{".a-price .a-offscreen", ".a-price", ".a-color-price"},
		DetailDescriptions: []string{"#productDescription p", "#productDescription", "#feature-bullets"},
		DetailImages: ImageRule{
			Selectors:       []string{"#altImages img", "#landingImage"},
			SkipSubstring:   "sprite",
			FullSizePattern: amazonThumbRegex,
			FullSizeReplace: ".$1",
		},
		Specs: SpecRule{
			Row:   "#productDetails_techSpec_section_1 tr",
			Key:   "th",
			Value: "td",
		},

		Profile: scoring.Profile{Base: 3, KeywordBonus: 1},
	}
}
