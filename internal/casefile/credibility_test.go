package casefile

import "testing"

func TestCredibilityScore(t *testing.T) {
	cases := []struct {
		publisher string
		want      int
	}{
		{"SEC.gov", 100},
		{"Crown Court Reporter", 100},
		{"Reuters", 90},
		{"Financial Times", 90}, // tier-1 beats the "times" keyword
		{"The Daily Times", 70},
		{"National Review", 70},
		{"Springfield Gazette", 50},
		{"Chicago Tribune", 50},
		{"crime-blog.net", 30},
		{"medium", 30},
		{"Unknown Outlet", 70},
	}

	for _, tc := range cases {
		if got := CredibilityScore(tc.publisher); got != tc.want {
			t.Errorf("CredibilityScore(%q) = %d, want %d", tc.publisher, got, tc.want)
		}
	}
}

func TestCredibilityTier(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "government/court"},
		{90, "tier-1 outlet"},
		{70, "national outlet"},
		{50, "local outlet"},
		{30, "blog/low credibility"},
	}
	for _, tc := range cases {
		if got := CredibilityTier(tc.score); got != tc.want {
			t.Errorf("CredibilityTier(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
