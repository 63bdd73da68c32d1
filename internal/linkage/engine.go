// Package linkage holds the per-article decision rule. It is a pure
// function of the evidence produced upstream, so identical inputs
// always yield the identical decision and rationale.
package linkage

import (
	"fmt"
	"strings"

	"github.com/avetrov/kyclens/internal/model"
)

// Input is the evidence for one article's decision.
type Input struct {
	HasNameMatch    bool
	Verifications   []model.AnchorVerification
	Contradictions  []string
	RequiredAnchors int
}

// Decide applies the three-way decision rule. The rationale cites up
// to the first 3 matching anchors or first 2 contradictions, in the
// order verifications were produced.
func Decide(in Input) (model.LinkageDecision, string) {
	if !in.HasNameMatch {
		return model.LinkageNo, "Linkage: no - no name match found"
	}

	var nonNameMatches []model.AnchorVerification
	for _, v := range in.Verifications {
		if v.Matches && v.Anchor.AnchorType != model.AnchorName {
			nonNameMatches = append(nonNameMatches, v)
		}
	}
	matchCount := len(nonNameMatches)

	if len(in.Contradictions) > 0 {
		cited := strings.Join(firstN(in.Contradictions, 2), "; ")
		// Enough corroborating anchors can outweigh a conflict.
		if matchCount >= in.RequiredAnchors+1 {
			return model.LinkageMaybe,
				fmt.Sprintf("Linkage: maybe - %d anchors match but conflicts exist: %s", matchCount, cited)
		}
		return model.LinkageNo, fmt.Sprintf("Linkage: no - conflicts detected: %s", cited)
	}

	switch {
	case matchCount >= in.RequiredAnchors:
		return model.LinkageYes,
			fmt.Sprintf("Linkage: yes - name match + %d anchors (%s)", matchCount, citeAnchors(nonNameMatches, 3))
	case matchCount > 0:
		return model.LinkageMaybe,
			fmt.Sprintf("Linkage: maybe - name match + %d anchors (%s) below threshold", matchCount, citeAnchors(nonNameMatches, len(nonNameMatches)))
	default:
		return model.LinkageNo, "Linkage: no - name match only, no supporting anchors"
	}
}

func citeAnchors(vs []model.AnchorVerification, n int) string {
	parts := make([]string, 0, n)
	for i, v := range vs {
		if i >= n {
			break
		}
		parts = append(parts, fmt.Sprintf("%s:%s", v.Anchor.AnchorType, v.Anchor.Value))
	}
	return strings.Join(parts, ", ")
}

func firstN(xs []string, n int) []string {
	if len(xs) <= n {
		return xs
	}
	return xs[:n]
}
