package namematch

import (
	"strings"
	"unicode"
)

// honorifics and suffixes stripped before comparison.
var strippedTokens = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sir": {},
	"lord": {}, "lady": {}, "jr": {}, "sr": {}, "ii": {}, "iii": {},
}

// Normalize lowercases a name, strips honorifics/suffixes and
// punctuation, and collapses whitespace.
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			// punctuation dropped; "J.M." becomes "jm"
		}
	}

	var kept []string
	for _, tok := range strings.Fields(b.String()) {
		if _, skip := strippedTokens[tok]; skip {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// Similarity computes Jaccard similarity of the whitespace-token sets
// of two normalized names, in [0,1].
func Similarity(a, b string) float64 {
	tokensA := tokenSet(Normalize(a))
	tokensB := tokenSet(Normalize(b))
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range tokensA {
		if _, ok := tokensB[tok]; ok {
			intersection++
		}
	}
	union := len(tokensA) + len(tokensB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

// Contained reports whether either normalized name contains the other.
func Contained(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
