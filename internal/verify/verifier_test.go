package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/oracle"
)

// fakeVerifyOracle returns a canned response or error.
type fakeVerifyOracle struct {
	resp *oracle.VerifyResponse
	err  error
}

func (f *fakeVerifyOracle) VerifyAnchors(_ context.Context, _ oracle.VerifyRequest) (*oracle.VerifyResponse, error) {
	return f.resp, f.err
}

func sampleAnchors() []model.IdentityAnchor {
	return []model.IdentityAnchor{
		{AnchorType: model.AnchorName, Value: "John Smith"},
		{AnchorType: model.AnchorEmployer, Value: "ABC Financial"},
		{AnchorType: model.AnchorAge, Value: "39"},
	}
}

func TestVerify_CountPreservation(t *testing.T) {
	v := New(nil)
	profile := testProfile()

	for _, n := range []int{0, 1, 3, 10} {
		anchors := make([]model.IdentityAnchor, n)
		for i := range anchors {
			anchors[i] = model.IdentityAnchor{AnchorType: model.AnchorTitle, Value: "CFO"}
		}
		got := v.Verify(context.Background(), profile, anchors, "2024-11-15")
		if len(got) != n {
			t.Errorf("Verify with %d anchors returned %d verifications", n, len(got))
		}
	}
}

func TestVerify_BatchIndexHandling(t *testing.T) {
	profile := testProfile()
	anchors := sampleAnchors()

	v := New(&fakeVerifyOracle{resp: &oracle.VerifyResponse{
		Verifications: []oracle.VerifyVerdict{
			{Index: 0, Matches: true, Rationale: "name matches"},
			{Index: 2, Matches: true, Rationale: "age matches"},
			{Index: 99, Matches: true, Rationale: "out of range"},  // dropped
			{Index: -1, Conflict: true, Rationale: "out of range"}, // dropped
		},
	}})

	got := v.Verify(context.Background(), profile, anchors, "2024-11-15")
	if len(got) != len(anchors) {
		t.Fatalf("got %d verifications, want %d", len(got), len(anchors))
	}
	if !got[0].Matches || !got[2].Matches {
		t.Error("in-range verdicts must be applied by index")
	}
	// Index 1 got no verdict: neutral placeholder, never dropped.
	if got[1].Matches || got[1].Conflict {
		t.Errorf("skipped anchor must be neutral, got (matches=%v, conflict=%v)", got[1].Matches, got[1].Conflict)
	}
	if got[1].Rationale == "" {
		t.Error("skipped anchor still needs an explanatory rationale")
	}
}

func TestVerify_BatchInvariantEnforced(t *testing.T) {
	profile := testProfile()
	anchors := sampleAnchors()[:1]

	v := New(&fakeVerifyOracle{resp: &oracle.VerifyResponse{
		Verifications: []oracle.VerifyVerdict{
			{Index: 0, Matches: true, Conflict: true, Rationale: "contradictory verdict"},
		},
	}})

	got := v.Verify(context.Background(), profile, anchors, "2024-11-15")
	if got[0].Matches || got[0].Conflict {
		t.Errorf("both-true verdict must be neutralized, got (matches=%v, conflict=%v)", got[0].Matches, got[0].Conflict)
	}
}

func TestVerify_OracleFailureFallsBack(t *testing.T) {
	profile := testProfile()
	anchors := sampleAnchors()

	v := New(&fakeVerifyOracle{err: errors.New("oracle down")})
	got := v.Verify(context.Background(), profile, anchors, "2024-11-15")

	if len(got) != len(anchors) {
		t.Fatalf("got %d verifications, want %d", len(got), len(anchors))
	}
	// Deterministic rules: name and employer contained, age expected 39.
	for i, want := range []bool{true, true, true} {
		if got[i].Matches != want {
			t.Errorf("fallback verdict %d: matches=%v, want %v (%s)", i, got[i].Matches, want, got[i].Rationale)
		}
	}
}

func TestContradictions(t *testing.T) {
	vs := []model.AnchorVerification{
		{Matches: true, Rationale: "employer: matches"},
		{Conflict: true, Rationale: "city: conflict (profile: New York vs article: Boston)"},
		{Rationale: "title: not verifiable"},
		{Conflict: true, Rationale: "age: conflict (article: 45, expected: 39)"},
	}
	got := Contradictions(vs)
	if len(got) != 2 {
		t.Fatalf("got %d contradictions, want 2", len(got))
	}
	if got[0] != vs[1].Rationale || got[1] != vs[3].Rationale {
		t.Error("contradictions must preserve verification order")
	}
}
