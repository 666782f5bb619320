package domain

import "testing"

func TestCampaignMatches(t *testing.T) {
	cases := []struct {
		name    string
		keyword string
		text    string
		want    bool
	}{
		{"exact", "promo", "promo", true},
		{"case folded", "promo", "I want the PROMO link", true},
		{"substring inside word", "promo", "promotion please", true},
		{"mixed case keyword", "PrOmO", "send promo", true},
		{"no occurrence", "promo", "nice picture", false},
		{"empty keyword", "", "anything", false},
		{"whitespace keyword", "   ", "anything", false},
		{"keyword with padding", " promo ", "the promo code", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Campaign{Keyword: tc.keyword}
			if got := c.Matches(tc.text); got != tc.want {
				t.Fatalf("Matches(%q, %q) = %v, want %v", tc.keyword, tc.text, got, tc.want)
			}
		})
	}
}
