package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selector fallback helpers. Each takes an ordered candidate list and returns
// the first non-empty result; selector order is a pure priority list, so
// markup drift on a retailer site only costs a config update, not code.

// firstText returns the trimmed text of the first candidate selector whose
// first match has non-empty text.
func firstText(sel *goquery.Selection, candidates []string) string {
	for _, candidate := range candidates {
		text := strings.TrimSpace(sel.Find(candidate).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// firstAttr returns the named attribute from the first candidate selector
// whose first match carries a non-empty value.
func firstAttr(sel *goquery.Selection, candidates []string, attr string) string {
	for _, candidate := range candidates {
		val, ok := sel.Find(candidate).First().Attr(attr)
		if ok && strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

// firstImage returns the src of the first candidate selector yielding an
// absolute (http-prefixed) URL. Relative and data: URLs are skipped so a
// lazy-loading placeholder never wins over a real image further down the
// chain.
func firstImage(sel *goquery.Selection, candidates []string) string {
	for _, candidate := range candidates {
		src, ok := sel.Find(candidate).First().Attr("src")
		if ok && strings.HasPrefix(src, "http") {
			return src
		}
	}
	return ""
}

var priceTokenRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

// parsePrice normalizes free-form currency text ("$1,299.99", "USD 45.99 to
// 52.00") into a float. Thousands separators and currency symbols are
// stripped, then the first numeric token wins. Returns false when no finite
// non-negative price can be extracted.
func parsePrice(text string) (float64, bool) {
	// Drop thousands separators before tokenizing so "$1,299.99" parses as
	// 1299.99 rather than 1.
	cleaned := strings.ReplaceAll(text, ",", "")

	token := priceTokenRegex.FindString(cleaned)
	if token == "" {
		return 0, false
	}

	price, err := strconv.ParseFloat(token, 64)
	if err != nil || price < 0 {
		return 0, false
	}
	return price, true
}
