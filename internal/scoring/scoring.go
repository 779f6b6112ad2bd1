// Package scoring computes the heuristic 1-5 sustainability rating attached
// to every normalized product. It is a keyword heuristic, not a certified
// sustainability metric.
package scoring

import "strings"

// sustainabilityKeywords is the fixed keyword set scanned in title and
// description text.
var sustainabilityKeywords = []string{"eco", "sustainable", "organic", "recycled", "green"}

// Profile holds the per-source scoring constants. Sources with a secondhand
// market start from a different prior and reward condition terms like "used"
// or "refurbished" via BoostTerms.
type Profile struct {
	// Base is the prior score for the source before any keyword bonus.
	Base int
	// KeywordBonus is added per matched sustainability keyword.
	KeywordBonus int
	// KeywordCap limits the total bonus from sustainability keywords.
	// Zero means uncapped (the final clamp still applies).
	KeywordCap int
	// BoostTerms are source-specific terms (e.g. "used", "refurbished")
	// that grant BoostBonus once if any of them appears in the title.
	BoostTerms []string
	// BoostBonus is added once when any BoostTerm matches.
	BoostBonus int
}

// Score rates a product's title and description. It is deterministic, total,
// and clamps the result to [1,5] for every source.
func Score(p Profile, title, description string) int {
	text := strings.ToLower(title)
	if description != "" {
		text += " " + strings.ToLower(description)
	}

	score := p.Base

	if p.BoostBonus > 0 {
		lowerTitle := strings.ToLower(title)
		for _, term := range p.BoostTerms {
			if strings.Contains(lowerTitle, term) {
				score += p.BoostBonus
				break
			}
		}
	}

	bonus := 0
	for _, keyword := range sustainabilityKeywords {
		if strings.Contains(text, keyword) {
			bonus += p.KeywordBonus
			if p.KeywordCap > 0 && bonus >= p.KeywordCap {
				bonus = p.KeywordCap
				break
			}
		}
	}
	score += bonus

	return clamp(score)
}

func clamp(score int) int {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}
