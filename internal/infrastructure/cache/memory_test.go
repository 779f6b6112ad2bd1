package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecocart/backend/internal/domain"
)

func TestSearchResultCache(t *testing.T) {
	ctx := context.Background()
	sample := []domain.Product{
		{ID: "chair2", Title: "Bamboo Dining Chair", Price: 149.99, Source: "mock", SustainabilityLevel: 4},
	}

	t.Run("set then get returns stored products", func(t *testing.T) {
		c := NewSearchResultCache()
		if err := c.Set(ctx, "search:bamboo", sample, time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		got, err := c.Get(ctx, "search:bamboo")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "chair2" {
			t.Errorf("Get() = %v, want the stored product", got)
		}
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := NewSearchResultCache()
		_, err := c.Get(ctx, "search:nothing")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("expired entry misses", func(t *testing.T) {
		c := NewSearchResultCache()
		c.Set(ctx, "search:bamboo", sample, time.Millisecond)
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "search:bamboo")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("delete removes entry", func(t *testing.T) {
		c := NewSearchResultCache()
		c.Set(ctx, "search:bamboo", sample, time.Minute)
		c.Delete(ctx, "search:bamboo")

		if _, err := c.Get(ctx, "search:bamboo"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss after delete", err)
		}
		if c.Size() != 0 {
			t.Errorf("Size() = %d, want 0", c.Size())
		}
	})

	t.Run("callers cannot mutate cached slice", func(t *testing.T) {
		c := NewSearchResultCache()
		c.Set(ctx, "search:bamboo", sample, time.Minute)

		got, _ := c.Get(ctx, "search:bamboo")
		got[0].Source = "GreenEarth"

		again, _ := c.Get(ctx, "search:bamboo")
		if again[0].Source != "mock" {
			t.Errorf("cached Source = %s, want mock (copy-on-read)", again[0].Source)
		}
	})
}
