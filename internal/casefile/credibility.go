package casefile

import "strings"

// Publisher credibility scoring. Scores feed audit notes only, never
// the linkage decision.
const (
	scoreGovernment = 100
	scoreTier1      = 90
	scoreNational   = 70
	scoreLocal      = 50
	scoreBlog       = 30
)

var tier1Publishers = map[string]struct{}{
	"financial times": {}, "wall street journal": {}, "bloomberg": {},
	"reuters": {}, "associated press": {}, "bbc": {}, "cnn": {},
	"new york times": {}, "washington post": {},
}

// CredibilityScore classifies a publisher into a trust score.
func CredibilityScore(publisher string) int {
	p := strings.ToLower(publisher)

	for _, term := range []string{"gov", "court", "tribunal", "regulator"} {
		if strings.Contains(p, term) {
			return scoreGovernment
		}
	}
	if _, ok := tier1Publishers[p]; ok {
		return scoreTier1
	}
	for _, term := range []string{"national", "times", "post", "herald"} {
		if strings.Contains(p, term) {
			return scoreNational
		}
	}
	for _, term := range []string{"local", "gazette", "tribune"} {
		if strings.Contains(p, term) {
			return scoreLocal
		}
	}
	for _, term := range []string{"blog", "wordpress", "medium"} {
		if strings.Contains(p, term) {
			return scoreBlog
		}
	}
	return scoreNational
}

// CredibilityTier renders a score as its tier description.
func CredibilityTier(score int) string {
	switch {
	case score >= scoreGovernment:
		return "government/court"
	case score >= scoreTier1:
		return "tier-1 outlet"
	case score >= scoreNational:
		return "national outlet"
	case score >= scoreLocal:
		return "local outlet"
	default:
		return "blog/low credibility"
	}
}
