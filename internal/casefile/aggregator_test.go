package casefile

import (
	"strings"
	"testing"

	"github.com/avetrov/kyclens/internal/dates"
	"github.com/avetrov/kyclens/internal/model"
)

func acceptedArticle(linkage model.LinkageDecision, outcome model.OutcomeType, recency dates.RecencyBucket) model.ArticleAnalysis {
	return model.ArticleAnalysis{
		Hit:             model.MediaHit{Title: "t", Source: "s", Date: "2024-11-15"},
		LinkageDecision: linkage,
		OutcomeType:     outcome,
		CategoryType:    model.CategoryNone,
		RecencyNote:     "Recency: " + string(recency) + " (2024-11-15)",
	}
}

func TestAggregate_EmptyAccepted(t *testing.T) {
	decision, score, rationale := Aggregate(nil)
	if decision != model.DecisionClear {
		t.Errorf("decision = %s, want clear", decision)
	}
	if score != 10 {
		t.Errorf("score = %d, want 10", score)
	}
	if !strings.Contains(rationale, "no linked adverse media found") {
		t.Errorf("rationale = %q", rationale)
	}
}

func TestAggregate_Scoring(t *testing.T) {
	cases := []struct {
		name      string
		accepted  []model.ArticleAnalysis
		wantScore int
	}{
		{
			name:      "single maybe, stale",
			accepted:  []model.ArticleAnalysis{acceptedArticle(model.LinkageMaybe, model.OutcomeNone, dates.RecencyOver36)},
			wantScore: 20, // base only
		},
		{
			name:      "single yes, recent",
			accepted:  []model.ArticleAnalysis{acceptedArticle(model.LinkageYes, model.OutcomeNone, dates.RecencyWithin12)},
			wantScore: 45, // 20 * 1.5 * 1.5
		},
		{
			name:      "yes, mid recency",
			accepted:  []model.ArticleAnalysis{acceptedArticle(model.LinkageYes, model.OutcomeNone, dates.Recency12To36)},
			wantScore: 36, // 20 * 1.5 * 1.2
		},
		{
			name: "clamped at 100",
			accepted: []model.ArticleAnalysis{
				acceptedArticle(model.LinkageYes, model.OutcomeConvicted, dates.RecencyWithin12),
				acceptedArticle(model.LinkageYes, model.OutcomeConvicted, dates.RecencyWithin12),
			},
			wantScore: 100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, score, _ := Aggregate(tc.accepted)
			if score != tc.wantScore {
				t.Errorf("score = %d, want %d", score, tc.wantScore)
			}
			if score < 0 || score > 100 {
				t.Errorf("score %d outside [0,100]", score)
			}
		})
	}
}

func TestAggregate_DecisionBranches(t *testing.T) {
	cases := []struct {
		name     string
		accepted []model.ArticleAnalysis
		want     model.CaseDecision
		wantText string
	}{
		{
			name:     "severe outcome with yes linkage declines",
			accepted: []model.ArticleAnalysis{acceptedArticle(model.LinkageYes, model.OutcomeConvicted, dates.RecencyWithin12)},
			want:     model.DecisionDecline,
			wantText: "convicted/regulator order",
		},
		{
			name:     "severe outcome with maybe linkage escalates via score",
			accepted: []model.ArticleAnalysis{acceptedArticle(model.LinkageMaybe, model.OutcomeRegulatorOrder, dates.RecencyOver36)},
			want:     model.DecisionEscalate,
			wantText: "multiple adverse findings",
		},
		{
			name:     "charged escalates",
			accepted: []model.ArticleAnalysis{acceptedArticle(model.LinkageMaybe, model.OutcomeCharged, dates.RecencyOver36)},
			want:     model.DecisionEscalate,
			wantText: "charged/investigated",
		},
		{
			name:     "investigation escalates",
			accepted: []model.ArticleAnalysis{acceptedArticle(model.LinkageYes, model.OutcomeInvestigation, dates.RecencyOver36)},
			want:     model.DecisionEscalate,
			wantText: "charged/investigated",
		},
		{
			name: "score threshold escalates without severity",
			accepted: []model.ArticleAnalysis{
				acceptedArticle(model.LinkageYes, model.OutcomeNone, dates.RecencyWithin12),
				acceptedArticle(model.LinkageMaybe, model.OutcomeNone, dates.RecencyWithin12),
			},
			want:     model.DecisionEscalate,
			wantText: "multiple adverse findings",
		},
		{
			name:     "weak findings clear",
			accepted: []model.ArticleAnalysis{acceptedArticle(model.LinkageMaybe, model.OutcomeNone, dates.RecencyOver36)},
			want:     model.DecisionClear,
			wantText: "weak allegations",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision, score, rationale := Aggregate(tc.accepted)
			if decision != tc.want {
				t.Errorf("decision = %s, want %s (score %d, %s)", decision, tc.want, score, rationale)
			}
			if tc.wantText != "" && !strings.Contains(rationale, tc.wantText) {
				t.Errorf("rationale = %q, want substring %q", rationale, tc.wantText)
			}
		})
	}
}
