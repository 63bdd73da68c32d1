// Package verify turns an article's identity anchors into verdicts
// against the subject profile. The primary path is one batch oracle
// call; on failure a deterministic per-type rule table takes over.
// Either way the contract holds: exactly one verification per anchor,
// in anchor order, and no verdict is ever both a match and a conflict.
package verify

import (
	"context"

	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/oracle"
)

// Verifier verifies anchors against a profile.
type Verifier struct {
	oracle oracle.Verifier // nil means fallback only
}

// New creates a verifier. A nil oracle is valid.
func New(v oracle.Verifier) *Verifier {
	return &Verifier{oracle: v}
}

// Verify produces one verification per anchor. Anchor count and order
// are preserved exactly; downstream decision logic depends on it.
func (v *Verifier) Verify(ctx context.Context, profile model.UserProfile, anchors []model.IdentityAnchor, articleDate string) []model.AnchorVerification {
	if len(anchors) == 0 {
		return []model.AnchorVerification{}
	}

	if v.oracle != nil {
		if out, ok := v.verifyBatch(ctx, profile, anchors, articleDate); ok {
			return out
		}
	}

	out := make([]model.AnchorVerification, len(anchors))
	for i, anchor := range anchors {
		out[i] = verifyFallback(profile, anchor, articleDate)
	}
	return out
}

// verifyBatch issues the batch oracle call and re-associates verdicts
// by index. Out-of-range indices are dropped silently; anchors the
// oracle skipped get a neutral verdict so the count contract holds.
func (v *Verifier) verifyBatch(ctx context.Context, profile model.UserProfile, anchors []model.IdentityAnchor, articleDate string) ([]model.AnchorVerification, bool) {
	req := oracle.VerifyRequest{
		Profile:     profile,
		ArticleDate: articleDate,
		Anchors:     make([]oracle.VerifyAnchor, len(anchors)),
	}
	for i, a := range anchors {
		req.Anchors[i] = oracle.VerifyAnchor{
			Index:      i,
			Type:       string(a.AnchorType),
			Value:      a.Value,
			Context:    a.SourceText,
			Confidence: a.Confidence,
		}
	}

	resp, err := v.oracle.VerifyAnchors(ctx, req)
	if err != nil || resp == nil {
		return nil, false
	}

	out := make([]model.AnchorVerification, len(anchors))
	seen := make([]bool, len(anchors))
	for i, anchor := range anchors {
		out[i] = model.AnchorVerification{
			Anchor:    anchor,
			Rationale: string(anchor.AnchorType) + ": no verdict returned",
		}
	}
	for _, verdict := range resp.Verifications {
		if verdict.Index < 0 || verdict.Index >= len(anchors) || seen[verdict.Index] {
			continue
		}
		seen[verdict.Index] = true
		out[verdict.Index] = enforceExclusive(model.AnchorVerification{
			Anchor:    anchors[verdict.Index],
			Matches:   verdict.Matches,
			Conflict:  verdict.Conflict,
			Rationale: verdict.Rationale,
		})
	}
	return out, true
}

// enforceExclusive neutralizes any verdict claiming both match and
// conflict. The rest of the pipeline assumes the two are exclusive.
func enforceExclusive(v model.AnchorVerification) model.AnchorVerification {
	if v.Matches && v.Conflict {
		v.Matches = false
		v.Conflict = false
		v.Rationale = v.Rationale + " (verdict claimed both match and conflict; treated as neutral)"
	}
	return v
}

// Contradictions collects the rationales of conflicting verifications,
// in verification order.
func Contradictions(verifications []model.AnchorVerification) []string {
	var out []string
	for _, v := range verifications {
		if v.Conflict {
			out = append(out, v.Rationale)
		}
	}
	return out
}
