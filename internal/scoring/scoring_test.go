package scoring

import (
	"math/rand"
	"testing"
)

func TestScore(t *testing.T) {
	massRetail := Profile{Base: 2, KeywordBonus: 1}
	secondhand := Profile{
		Base:         2,
		KeywordBonus: 1,
		KeywordCap:   1,
		BoostTerms:   []string{"used", "pre-owned", "refurbished", "vintage"},
		BoostBonus:   2,
	}

	tests := []struct {
		name        string
		profile     Profile
		title       string
		description string
		want        int
	}{
		{
			name:    "base score with no keywords",
			profile: massRetail,
			title:   "Plastic Desk Lamp",
			want:    2,
		},
		{
			name:    "one keyword in title",
			profile: massRetail,
			title:   "Organic Cotton Shirt",
			want:    3,
		},
		{
			name:        "keyword in description counts",
			profile:     massRetail,
			title:       "Desk Lamp",
			description: "Made from recycled aluminum",
			want:        3,
		},
		{
			name:    "multiple keywords stack when uncapped",
			profile: massRetail,
			title:   "Eco Sustainable Organic Recycled Green Everything",
			want:    5, // 2 + 5, clamped
		},
		{
			name:    "keyword matching is case-insensitive",
			profile: massRetail,
			title:   "ECO-Friendly Bottle",
			want:    3,
		},
		{
			name:    "secondhand boost applies once",
			profile: secondhand,
			title:   "Used Vintage Record Player",
			want:    4, // 2 + 2, boost not stacked per term
		},
		{
			name:        "keyword cap limits bonus for secondhand profile",
			profile:     secondhand,
			title:       "Refurbished Eco Green Sustainable Phone",
			description: "recycled packaging",
			want:        5, // 2 + 2 boost + capped 1
		},
		{
			name:    "empty title and description yields base",
			profile: massRetail,
			title:   "",
			want:    2,
		},
		{
			name:    "score never drops below one",
			profile: Profile{Base: 0},
			title:   "Anything",
			want:    1,
		},
		{
			name:    "score never exceeds five",
			profile: Profile{Base: 9},
			title:   "Anything",
			want:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.profile, tt.title, tt.description)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestScoreBounds feeds randomized text through every profile shape and checks
// the result always lands in [1,5] and repeated calls agree.
func TestScoreBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{
		"eco", "sustainable", "organic", "recycled", "green", "used",
		"refurbished", "vintage", "plastic", "chair", "pillow", "lamp",
		"BAMBOO", "Gundam", "bicycle", "", "x", "écologique",
	}

	randomText := func() string {
		n := rng.Intn(8)
		out := ""
		for i := 0; i < n; i++ {
			out += words[rng.Intn(len(words))] + " "
		}
		return out
	}

	profiles := []Profile{
		{Base: 3, KeywordBonus: 1},
		{Base: 2, KeywordBonus: 1},
		{Base: 2, KeywordBonus: 1, KeywordCap: 1, BoostTerms: []string{"used", "vintage"}, BoostBonus: 2},
		{Base: 0, KeywordBonus: 2},
		{Base: 7, KeywordBonus: 3},
	}

	for i := 0; i < 500; i++ {
		profile := profiles[rng.Intn(len(profiles))]
		title, desc := randomText(), randomText()

		got := Score(profile, title, desc)
		if got < 1 || got > 5 {
			t.Fatalf("Score(%+v, %q, %q) = %d, out of [1,5]", profile, title, desc, got)
		}
		if again := Score(profile, title, desc); again != got {
			t.Fatalf("Score not deterministic: %d then %d for %q / %q", got, again, title, desc)
		}
	}
}
