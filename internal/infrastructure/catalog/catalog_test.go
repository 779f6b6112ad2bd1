package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/ecocart/backend/internal/domain"
)

func TestSearch(t *testing.T) {
	provider := NewProvider()
	ctx := context.Background()

	t.Run("empty query returns full catalog", func(t *testing.T) {
		results, err := provider.Search(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(products) {
			t.Errorf("len(results) = %d, want %d", len(results), len(products))
		}
	})

	t.Run("whole query substring match", func(t *testing.T) {
		results, err := provider.Search(ctx, "dining chair")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("len(results) = %d, want 1", len(results))
		}
		if results[0].ID != "chair2" {
			t.Errorf("ID = %s, want chair2", results[0].ID)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		results, err := provider.Search(ctx, "BAMBOO DINING")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].ID != "chair2" {
			t.Errorf("results = %v, want single chair2", results)
		}
	})

	t.Run("description matches too", func(t *testing.T) {
		results, err := provider.Search(ctx, "solar charging")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].ID != "b1002" {
			t.Errorf("results = %v, want single b1002", results)
		}
	})

	t.Run("multi-word query relaxes to token matching", func(t *testing.T) {
		results, err := provider.Search(ctx, "bamboo pillow")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("len(results) = %d, want 2", len(results))
		}
		// Catalog order: the bamboo chair precedes the bamboo pillow.
		if results[0].ID != "chair2" || results[1].ID != "pillow1" {
			t.Errorf("ids = %s, %s, want chair2, pillow1", results[0].ID, results[1].ID)
		}
		for _, p := range results {
			if p.SustainabilityLevel < 3 || p.SustainabilityLevel > 5 {
				t.Errorf("%s sustainabilityLevel = %d, want within [3,5]", p.ID, p.SustainabilityLevel)
			}
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		results, err := provider.Search(ctx, "quantum flux capacitor")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("len(results) = %d, want 0", len(results))
		}
	})
}

func TestDetails(t *testing.T) {
	provider := NewProvider()
	ctx := context.Background()

	t.Run("known id returns augmented detail record", func(t *testing.T) {
		product, err := provider.Details(ctx, "pillow1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.Title != "Bamboo Memory Foam Pillow" {
			t.Errorf("Title = %s, want Bamboo Memory Foam Pillow", product.Title)
		}
		if len(product.Images) < 1 {
			t.Error("detail record must carry at least one image")
		}
		if product.Images[0] != product.ImageURL {
			t.Errorf("Images[0] = %s, want %s", product.Images[0], product.ImageURL)
		}
		if product.Specs["Material"] != "Eco-friendly materials" {
			t.Errorf("Specs[Material] = %s, want Eco-friendly materials", product.Specs["Material"])
		}
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, err := provider.Details(ctx, "nope")
		if err == nil {
			t.Fatal("expected error for unknown id")
		}
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("catalog entries stay pristine after detail augmentation", func(t *testing.T) {
		if _, err := provider.Details(ctx, "chair1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		results, err := provider.Search(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, p := range results {
			if len(p.Images) != 0 || len(p.Specs) != 0 {
				t.Errorf("search result %s carries detail-only fields", p.ID)
			}
		}
	})
}
