package namematch

import (
	"context"
	"errors"
	"testing"

	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/oracle"
)

func defaultThresholds() model.ThresholdConfig {
	return model.ThresholdConfig{NameMatch: 0.70, CommonNameAnchors: 2, RareNameAnchors: 1}
}

func nameAnchor(value string) model.IdentityAnchor {
	return model.IdentityAnchor{AnchorType: model.AnchorName, Value: value, Confidence: 0.9}
}

// fakeNameOracle returns a canned response or error.
type fakeNameOracle struct {
	resp *oracle.NameMatchResponse
	err  error
}

func (f *fakeNameOracle) MatchNames(_ context.Context, _ oracle.NameMatchRequest) (*oracle.NameMatchResponse, error) {
	return f.resp, f.err
}

func TestAnalyze_NoNameAnchors(t *testing.T) {
	m := New(nil, defaultThresholds())
	profile := model.UserProfile{FullName: "John Smith"}

	got := m.Analyze(context.Background(), profile, []model.IdentityAnchor{
		{AnchorType: model.AnchorEmployer, Value: "ABC Corp"},
	})

	if got.HasNameMatch {
		t.Error("expected no name match without name anchors")
	}
	if got.RequiredAnchors != 0 {
		t.Errorf("RequiredAnchors = %d, want 0", got.RequiredAnchors)
	}
}

func TestAnalyze_FallbackSimilarity(t *testing.T) {
	m := New(nil, defaultThresholds())

	cases := []struct {
		name        string
		profile     model.UserProfile
		anchorName  string
		wantMatch   bool
		wantAnchors int
	}{
		{
			name:        "common surname needs two anchors",
			profile:     model.UserProfile{FullName: "John Smith"},
			anchorName:  "John Smith",
			wantMatch:   true,
			wantAnchors: 2,
		},
		{
			name:        "rare surname needs one anchor",
			profile:     model.UserProfile{FullName: "Elena Vasquez-Okafor"},
			anchorName:  "Elena Vasquez-Okafor",
			wantMatch:   true,
			wantAnchors: 1,
		},
		{
			name:       "dissimilar name does not match",
			profile:    model.UserProfile{FullName: "John Smith"},
			anchorName: "Robert Chen",
			wantMatch:  false,
		},
		{
			name:        "alias matches",
			profile:     model.UserProfile{FullName: "Jonathan Albert Smith", Aliases: []string{"John Smith"}},
			anchorName:  "John Smith",
			wantMatch:   true,
			wantAnchors: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Analyze(context.Background(), tc.profile, []model.IdentityAnchor{nameAnchor(tc.anchorName)})
			if got.HasNameMatch != tc.wantMatch {
				t.Errorf("HasNameMatch = %v, want %v (%s)", got.HasNameMatch, tc.wantMatch, got.Analysis)
			}
			if tc.wantMatch && got.RequiredAnchors != tc.wantAnchors {
				t.Errorf("RequiredAnchors = %d, want %d", got.RequiredAnchors, tc.wantAnchors)
			}
		})
	}
}

func TestAnalyze_OracleJudgment(t *testing.T) {
	profile := model.UserProfile{FullName: "Robert Delgado"}
	anchors := []model.IdentityAnchor{nameAnchor("Bob Delgado")}

	// The oracle recognizes the nickname even though token similarity
	// would not.
	m := New(&fakeNameOracle{resp: &oracle.NameMatchResponse{
		IsMatch: true, Confidence: 0.85, MatchedName: "Bob Delgado",
	}}, defaultThresholds())
	if got := m.Analyze(context.Background(), profile, anchors); !got.HasNameMatch {
		t.Errorf("expected oracle match to link: %s", got.Analysis)
	}

	// High confidence alone crosses the threshold even without is_match.
	m = New(&fakeNameOracle{resp: &oracle.NameMatchResponse{
		IsMatch: false, Confidence: 0.72, MatchedName: "Bob Delgado",
	}}, defaultThresholds())
	if got := m.Analyze(context.Background(), profile, anchors); !got.HasNameMatch {
		t.Errorf("expected confidence >= threshold to link: %s", got.Analysis)
	}

	// Oracle failure degrades to the deterministic path, which cannot
	// resolve the nickname.
	m = New(&fakeNameOracle{err: errors.New("oracle down")}, defaultThresholds())
	if got := m.Analyze(context.Background(), profile, anchors); got.HasNameMatch {
		t.Errorf("expected fallback similarity to reject nickname: %s", got.Analysis)
	}
}

func TestIsCommonSurname(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"John Smith", true},
		{"Maria Garcia", true},
		{"JOHN SMITH", true},
		{"Elena Vasquez-Okafor", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsCommonSurname(tc.name); got != tc.want {
			t.Errorf("IsCommonSurname(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
