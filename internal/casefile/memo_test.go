package casefile

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/avetrov/kyclens/internal/model"
)

func TestMemo_Layout(t *testing.T) {
	profile := model.UserProfile{FullName: "Jane Doe", DateOfBirth: "1985-03-10"}
	accepted := []model.ArticleAnalysis{
		{
			Hit:             model.MediaHit{Title: "Fraud probe", Source: "Reuters", Date: "2025-01-05"},
			LinkageDecision: model.LinkageYes,
			OutcomeType:     model.OutcomeInvestigation,
			Contradictions:  []string{"employer: conflict (profile: Acme vs article: Globex)"},
		},
	}
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	memo := Memo(profile, accepted, model.DecisionEscalate, "Request: employment verification to resolve employer contradiction.", now)

	for _, want := range []string{
		"ADVERSE MEDIA REVIEW - Jane Doe",
		"Subject: Jane Doe, DOB: 1985-03-10",
		"Decision: ESCALATE",
		"LINKED ARTICLES:",
		"- Article 1: Fraud probe (Reuters, 2025-01-05)",
		"Linkage: yes, Outcome: investigation",
		"Contradictions: employer: conflict",
		"NEXT STEP: Request: employment verification",
		"Review completed: 2025-06-01 09:30:00",
	} {
		if !strings.Contains(memo, want) {
			t.Errorf("memo missing %q:\n%s", want, memo)
		}
	}
}

func TestMemo_TruncatesToFiveInInputOrder(t *testing.T) {
	profile := model.UserProfile{FullName: "Jane Doe"}
	var accepted []model.ArticleAnalysis
	for i := 0; i < 10; i++ {
		accepted = append(accepted, model.ArticleAnalysis{
			Hit:             model.MediaHit{Title: fmt.Sprintf("Article number %d", i), Source: "s", Date: "2024-01-01"},
			LinkageDecision: model.LinkageYes,
		})
	}

	memo := Memo(profile, accepted, model.DecisionEscalate, "", time.Now())

	for i := 0; i < 5; i++ {
		if !strings.Contains(memo, fmt.Sprintf("Article number %d", i)) {
			t.Errorf("memo missing article %d", i)
		}
	}
	for i := 5; i < 10; i++ {
		if strings.Contains(memo, fmt.Sprintf("Article number %d", i)) {
			t.Errorf("memo should not list article %d", i)
		}
	}
	if !strings.Contains(memo, "- Article 5: Article number 4") {
		t.Errorf("list order wrong:\n%s", memo)
	}
}

func TestMemo_EmptyCase(t *testing.T) {
	profile := model.UserProfile{FullName: "Jane Doe"}
	memo := Memo(profile, nil, model.DecisionClear, "", time.Now())

	if !strings.Contains(memo, "DOB: not provided") {
		t.Errorf("memo missing DOB placeholder:\n%s", memo)
	}
	if !strings.Contains(memo, "- No linked adverse media found") {
		t.Errorf("memo missing empty-case line:\n%s", memo)
	}
	if !strings.Contains(memo, "NEXT STEP: Review complete, no further action required.") {
		t.Errorf("memo missing default next step:\n%s", memo)
	}
}
