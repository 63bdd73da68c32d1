// Package casefile rolls per-article analyses into the case-level
// outcome: a 0-100 score, a clear/escalate/decline decision, the
// targeted ask for a human reviewer, and the final memo.
package casefile

import (
	"fmt"
	"strings"

	"github.com/avetrov/kyclens/internal/dates"
	"github.com/avetrov/kyclens/internal/model"
)

const (
	baseContribution = 20.0
	escalateScore    = 60
	clearEmptyScore  = 10
)

// Aggregate computes the case decision and score from the accepted
// articles (linkage yes or maybe), in input order.
func Aggregate(accepted []model.ArticleAnalysis) (model.CaseDecision, int, string) {
	if len(accepted) == 0 {
		return model.DecisionClear, clearEmptyScore,
			fmt.Sprintf("Decision: clear (score %d/100) because no linked adverse media found.", clearEmptyScore)
	}

	total := 0.0
	severeYes := false
	chargedOrInvestigated := false

	for _, article := range accepted {
		contribution := baseContribution

		severe := article.OutcomeType == model.OutcomeConvicted || article.OutcomeType == model.OutcomeRegulatorOrder
		switch {
		case severe:
			contribution *= 3
		case article.OutcomeType == model.OutcomeCharged:
			contribution *= 2
		case article.OutcomeType == model.OutcomeInvestigation:
			contribution *= 1.5
		}
		if severe && article.LinkageDecision == model.LinkageYes {
			severeYes = true
		}
		if article.OutcomeType == model.OutcomeCharged || article.OutcomeType == model.OutcomeInvestigation {
			chargedOrInvestigated = true
		}

		if article.LinkageDecision == model.LinkageYes {
			contribution *= 1.5
		}

		switch {
		case strings.Contains(article.RecencyNote, string(dates.RecencyWithin12)):
			contribution *= 1.5
		case strings.Contains(article.RecencyNote, string(dates.Recency12To36)):
			contribution *= 1.2
		}

		total += contribution
	}

	score := int(total) // truncate, do not round
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	switch {
	case severeYes:
		return model.DecisionDecline, score,
			fmt.Sprintf("Decision: decline (score %d/100) because convicted/regulator order within lookback with yes linkage.", score)
	case chargedOrInvestigated:
		return model.DecisionEscalate, score,
			fmt.Sprintf("Decision: escalate (score %d/100) because charged/investigated with linkage.", score)
	case score >= escalateScore:
		return model.DecisionEscalate, score,
			fmt.Sprintf("Decision: escalate (score %d/100) because multiple adverse findings with linkage.", score)
	default:
		return model.DecisionClear, score,
			fmt.Sprintf("Decision: clear (score %d/100) because only weak allegations or maybe linkage.", score)
	}
}
