package casefile

import (
	"strings"
	"testing"

	"github.com/avetrov/kyclens/internal/model"
)

func articleWith(anchors []model.AnchorType, contradictions ...string) model.ArticleAnalysis {
	a := model.ArticleAnalysis{Contradictions: contradictions}
	for _, t := range anchors {
		a.Anchors = append(a.Anchors, model.IdentityAnchor{AnchorType: t, Value: "x"})
	}
	return a
}

func TestTargetedAsk(t *testing.T) {
	cases := []struct {
		name     string
		accepted []model.ArticleAnalysis
		want     string
	}{
		{
			name: "dob contradiction wins",
			accepted: []model.ArticleAnalysis{
				articleWith([]model.AnchorType{model.AnchorDOB}, "dob: conflict (profile: 1985-03-10 vs article: 1987-03-10)"),
			},
			want: "government ID to confirm DOB",
		},
		{
			name: "age contradiction",
			accepted: []model.ArticleAnalysis{
				articleWith([]model.AnchorType{model.AnchorAge}, "age: conflict (expected 39, article says 45)"),
			},
			want: "government ID to confirm age",
		},
		{
			name: "employer contradiction",
			accepted: []model.ArticleAnalysis{
				articleWith([]model.AnchorType{model.AnchorEmployer}, "employer: conflict (profile: Acme Corp vs article: Globex)"),
			},
			want: "employment verification to resolve employer contradiction",
		},
		{
			name: "first contradiction drives the ask",
			accepted: []model.ArticleAnalysis{
				articleWith([]model.AnchorType{model.AnchorAge, model.AnchorEmployer},
					"age: conflict (expected 39, article says 45)",
					"employer: conflict (profile: Acme Corp vs article: Globex)"),
			},
			want: "government ID to confirm age",
		},
		{
			name: "missing dob and age falls back to documentation",
			accepted: []model.ArticleAnalysis{
				articleWith([]model.AnchorType{model.AnchorName, model.AnchorEmployer}),
			},
			want: "additional documentation to verify DOB/age verification",
		},
		{
			name: "missing employer only",
			accepted: []model.ArticleAnalysis{
				articleWith([]model.AnchorType{model.AnchorName, model.AnchorDOB}),
			},
			want: "additional documentation to verify employment verification",
		},
		{
			name: "full coverage, no contradictions",
			accepted: []model.ArticleAnalysis{
				articleWith([]model.AnchorType{model.AnchorName, model.AnchorDOB, model.AnchorEmployer}),
			},
			want: "manual review of linkage assessment",
		},
		{
			name:     "no accepted articles",
			accepted: nil,
			want:     "manual review of linkage assessment",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TargetedAsk(tc.accepted)
			if !strings.Contains(got, tc.want) {
				t.Errorf("TargetedAsk = %q, want substring %q", got, tc.want)
			}
			if !strings.HasPrefix(got, "Request: ") {
				t.Errorf("ask missing Request prefix: %q", got)
			}
		})
	}
}
