package usecase

import "github.com/ecocart/backend/internal/domain"

// The frontend never sees internal adapter identifiers; it sees fixed brand
// labels. The two tables below are mutually consistent and static.

// sourceLabels maps internal adapter identifiers to public brand labels.
var sourceLabels = map[domain.Source]string{
	domain.SourceAmazon:  "GreenEarth",
	domain.SourceWalmart: "EcoLiving",
	domain.SourceEbay:    "EcoTech",
	domain.SourceMock:    "EcoFinds",
}

// sourceIDs is the reverse table, public label back to adapter identifier.
var sourceIDs = map[string]domain.Source{
	"GreenEarth": domain.SourceAmazon,
	"EcoLiving":  domain.SourceWalmart,
	"EcoTech":    domain.SourceEbay,
	"EcoFinds":   domain.SourceMock,
}

// PublicLabel returns the brand label for an adapter identifier. Unknown
// identifiers resolve to the mock provider's label; there is no failure mode.
func PublicLabel(source domain.Source) string {
	if label, ok := sourceLabels[source]; ok {
		return label
	}
	return sourceLabels[domain.SourceMock]
}

// SourceID returns the adapter identifier for a public brand label. Unknown
// labels resolve to the mock provider.
func SourceID(label string) domain.Source {
	if id, ok := sourceIDs[label]; ok {
		return id
	}
	return domain.SourceMock
}
