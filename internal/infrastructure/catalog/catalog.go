// Package catalog is the adapter of last resort: a static, pre-scored,
// in-memory product catalog used whenever every real retailer source comes
// back empty or broken.
package catalog

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ecocart/backend/internal/domain"
)

// products is the static catalog. Records are already normalized and scored;
// order here is the order they are returned in.
var products = []domain.Product{
	{
		ID:                  "chair1",
		Title:               "Eco-Friendly Office Chair",
		Price:               199.99,
		ImageURL:            "https://placehold.co/400x400?text=Eco+Chair",
		Description:         "Ergonomic office chair made with sustainable materials and recycled components.",
		SustainabilityLevel: 5,
		URL:                 "https://example.com/eco-chair",
		Source:              string(domain.SourceMock),
		Rating:              4.7,
	},
	{
		ID:                  "chair2",
		Title:               "Bamboo Dining Chair",
		Price:               149.99,
		ImageURL:            "https://placehold.co/400x400?text=Bamboo+Chair",
		Description:         "Stylish dining chair made from sustainable bamboo with organic cotton cushion.",
		SustainabilityLevel: 4,
		URL:                 "https://example.com/bamboo-chair",
		Source:              string(domain.SourceMock),
		Rating:              4.5,
	},
	{
		ID:                  "chair3",
		Title:               "Recycled Plastic Adirondack Chair",
		Price:               129.50,
		ImageURL:            "https://placehold.co/400x400?text=Recycled+Chair",
		Description:         "Weather-resistant outdoor chair made from 100% recycled plastic materials.",
		SustainabilityLevel: 5,
		URL:                 "https://example.com/adirondack-chair",
		Source:              string(domain.SourceMock),
		Rating:              4.8,
	},
	{
		ID:                  "pillow1",
		Title:               "Bamboo Memory Foam Pillow",
		Price:               49.99,
		ImageURL:            "https://placehold.co/400x400?text=Bamboo+Pillow",
		Description:         "Memory foam pillow with adjustable fill and a moisture-wicking bamboo viscose cover.",
		SustainabilityLevel: 4,
		URL:                 "https://example.com/bamboo-pillow",
		Source:              string(domain.SourceMock),
		Rating:              4.6,
	},
	{
		ID:                  "b1002",
		Title:               "Electric Commuter Bicycle",
		Price:               1299.99,
		ImageURL:            "https://placehold.co/400x400?text=E-Bike",
		Description:         "Energy-efficient e-bike with recycled aluminum frame and solar charging capability.",
		SustainabilityLevel: 4,
		URL:                 "https://example.com/electric-bicycle",
		Source:              string(domain.SourceMock),
		Rating:              4.9,
	},
	{
		ID:                  "b1003",
		Title:               "Recycled Tire Urban Bike",
		Price:               549.50,
		ImageURL:            "https://placehold.co/400x400?text=Urban+Bike",
		Description:         "City bike featuring tires made from recycled rubber and eco-friendly components.",
		SustainabilityLevel: 5,
		URL:                 "https://example.com/recycled-bicycle",
		Source:              string(domain.SourceMock),
		Rating:              4.5,
	},
	{
		ID:                  "bottle1",
		Title:               "Reusable Stainless Steel Water Bottle",
		Price:               24.99,
		ImageURL:            "https://placehold.co/400x400?text=Water+Bottle",
		Description:         "Double-walled insulated bottle, BPA free, durable and fully recyclable.",
		SustainabilityLevel: 4,
		URL:                 "https://example.com/water-bottle",
		Source:              string(domain.SourceMock),
		Rating:              4.4,
	},
	{
		ID:                  "tshirt1",
		Title:               "Organic Cotton T-Shirt",
		Price:               29.99,
		ImageURL:            "https://placehold.co/400x400?text=Organic+Tee",
		Description:         "Made with 100% GOTS certified organic cotton, low-impact dyes, carbon-neutral shipping.",
		SustainabilityLevel: 5,
		URL:                 "https://example.com/organic-tshirt",
		Source:              string(domain.SourceMock),
		Rating:              4.3,
	},
}

// Provider serves the static catalog through the ProductSource contract.
type Provider struct{}

// NewProvider creates the mock catalog provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the internal source identifier.
func (p *Provider) Name() domain.Source {
	return domain.SourceMock
}

// Search filters the catalog. An empty query returns everything. Otherwise a
// product matches when its title or description contains the whole query
// case-insensitively; if nothing matches the whole query, matching relaxes to
// individual query tokens so multi-word queries like "bamboo pillow" still
// find bamboo products. Catalog order is preserved.
func (p *Provider) Search(_ context.Context, query string) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return copyProducts(products), nil
	}

	lower := strings.ToLower(query)
	matched := filter(func(prod domain.Product) bool {
		return containsFold(prod, lower)
	})

	if len(matched) == 0 {
		tokens := strings.Fields(lower)
		matched = filter(func(prod domain.Product) bool {
			for _, token := range tokens {
				if containsFold(prod, token) {
					return true
				}
			}
			return false
		})
	}

	log.Printf("[mock] search %q: %d products", query, len(matched))
	return matched, nil
}

// Details returns a catalog entry by exact id, augmented with the gallery
// images and spec table the detail view expects.
func (p *Provider) Details(_ context.Context, productID string) (*domain.Product, error) {
	for _, prod := range products {
		if prod.ID != productID {
			continue
		}

		detail := prod
		detail.Images = []string{
			prod.ImageURL,
			"https://placehold.co/400x400?text=Additional+View",
			"https://placehold.co/400x400?text=Another+View",
		}
		material := "Standard materials"
		if prod.SustainabilityLevel >= 4 {
			material = "Eco-friendly materials"
		}
		detail.Specs = map[string]string{
			"Material": material,
			"Warranty": "5 years",
			"Assembly": "Required",
		}
		return &detail, nil
	}

	return nil, fmt.Errorf("%w: mock catalog has no product %q", domain.ErrProductNotFound, productID)
}

func filter(keep func(domain.Product) bool) []domain.Product {
	var out []domain.Product
	for _, prod := range products {
		if keep(prod) {
			out = append(out, prod)
		}
	}
	return out
}

func containsFold(prod domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(prod.Title), needle) ||
		strings.Contains(strings.ToLower(prod.Description), needle)
}

func copyProducts(src []domain.Product) []domain.Product {
	out := make([]domain.Product, len(src))
	copy(out, src)
	return out
}
