package scraper

import (
	"regexp"
	"time"

	"github.com/ecocart/backend/internal/domain"
	"github.com/ecocart/backend/internal/scoring"
)

// ebayItemIDRegex pulls the numeric item id out of a listing URL
// (e.g. https://www.ebay.com/itm/234567890123?hash=...).
var ebayItemIDRegex = regexp.MustCompile(`/(\d+)\?`)

// ebayThumbRegex rewrites gallery thumbnails (s-l64, s-l300, ...) to the
// largest size variant eBay serves.
var ebayThumbRegex = regexp.MustCompile(`/s-l\d+\.`)

// EbayConfig returns the static scraping configuration for eBay search and
// listing pages. eBay's secondhand market earns its scoring profile a
// condition-term boost on top of the shared keyword set.
func EbayConfig() SourceConfig {
	return SourceConfig{
		Source:    domain.SourceEbay,
		SearchURL: "https://www.ebay.com/sch/i.html?_nkw=%s",
		DetailURL: "https://www.ebay.com/itm/%s",
		Referer:   "https://www.ebay.com/",
		Timeout:   10 * time.Second,

		Containers: []string{".s-item__wrapper", "li.s-item"},
		ID: IDRule{
			Selector: ".s-item__link",
			Attr:     "href",
			Pattern:  ebayItemIDRegex,
		},
		Titles: []string{".s-item__title span", ".s-item__title"},
		Prices: []string{".s-item__price"},
		Images: []string{".s-item__image-img", ".s-item__image img"},

		DetailTitles: []string{`h1.x-item-title__mainTitle span`, "#itemTitle"},
		DetailPrices: []string{".x-price-primary span", "#prcIsum"},
		DetailDescriptions: []string{
			".x-item-description",
			".item-description",
		},
		DetailImages: ImageRule{
			Selectors:       []string{".ux-image-carousel-item img", "#icImg"},
			FullSizePattern: ebayThumbRegex,
			FullSizeReplace: "/s-l1600.",
		},
		Specs: SpecRule{
			Row:   ".ux-labels-values",
			Key:   ".ux-labels-values__labels",
			Value: ".ux-labels-values__values",
		},

		Profile: scoring.Profile{
			Base:         2,
			KeywordBonus: 1,
			KeywordCap:   1,
			BoostTerms:   []string{"used", "pre-owned", "refurbished", "vintage"},
			BoostBonus:   2,
		},
	}
}
