package domain

// Source identifies a retailer adapter internally. Public-facing brand labels
// are applied by the usecase layer just before a response leaves the API.
type Source string

const (
	SourceAmazon  Source = "amazon"
	SourceWalmart Source = "walmart"
	SourceEbay    Source = "ebay"
	SourceMock    Source = "mock"
)

// Product is the normalized record every source must produce. It lives for a
// single request/response cycle and is never persisted.
//
// Images and Specs are only populated for detail lookups; search results carry
// the flat fields only. Title and Price are mandatory - a scraped node missing
// either is dropped before it reaches the aggregator.
type Product struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Price               float64           `json:"price"`
	ImageURL            string            `json:"imageUrl,omitempty"`
	Description         string            `json:"description,omitempty"`
	URL                 string            `json:"url"`
	Source              string            `json:"source"`
	SustainabilityLevel int               `json:"sustainabilityLevel"`
	Rating              float64           `json:"rating,omitempty"`
	Images              []string          `json:"images,omitempty"`
	Specs               map[string]string `json:"specs,omitempty"`
}

// SearchResponse is the envelope for the search endpoint. Error is set (with a
// still-200 status) whenever a fallback path produced the products.
type SearchResponse struct {
	Products []Product `json:"products"`
	Error    string    `json:"error,omitempty"`
}

// DetailResponse is the envelope for the detail endpoint.
type DetailResponse struct {
	Product *Product `json:"product"`
}

// AnalysisResult mirrors the JSON verdict returned by the external
// image-analysis backend. Sub-scores are on a 0-10 scale.
type AnalysisResult struct {
	MaterialsScore         float64  `json:"materials_score"`
	PackagingScore         float64  `json:"packaging_score"`
	OverallScore           float64  `json:"overall_score"`
	GreenwashingRisk       string   `json:"greenwashing_risk"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}
