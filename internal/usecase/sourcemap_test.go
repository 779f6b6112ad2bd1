package usecase

import (
	"testing"

	"github.com/ecocart/backend/internal/domain"
)

func TestSourceMappingRoundTrip(t *testing.T) {
	for source, label := range sourceLabels {
		if got := SourceID(PublicLabel(source)); got != source {
			t.Errorf("SourceID(PublicLabel(%s)) = %s, want %s", source, got, source)
		}
		if got := PublicLabel(SourceID(label)); got != label {
			t.Errorf("PublicLabel(SourceID(%s)) = %s, want %s", label, got, label)
		}
	}
}

func TestSourceMappingDefaults(t *testing.T) {
	t.Run("unknown label resolves to mock", func(t *testing.T) {
		if got := SourceID("TotallyMadeUp"); got != domain.SourceMock {
			t.Errorf("SourceID = %s, want %s", got, domain.SourceMock)
		}
	})

	t.Run("unknown source resolves to mock label", func(t *testing.T) {
		if got := PublicLabel(domain.Source("aliexpress")); got != "EcoFinds" {
			t.Errorf("PublicLabel = %s, want EcoFinds", got)
		}
	})
}

func TestPublicLabels(t *testing.T) {
	tests := []struct {
		source domain.Source
		label  string
	}{
		{domain.SourceAmazon, "GreenEarth"},
		{domain.SourceWalmart, "EcoLiving"},
		{domain.SourceEbay, "EcoTech"},
		{domain.SourceMock, "EcoFinds"},
	}
	for _, tt := range tests {
		if got := PublicLabel(tt.source); got != tt.label {
			t.Errorf("PublicLabel(%s) = %s, want %s", tt.source, got, tt.label)
		}
	}
}
