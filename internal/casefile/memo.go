package casefile

import (
	"fmt"
	"strings"
	"time"

	"github.com/avetrov/kyclens/internal/model"
)

// memoMaxArticles caps the linked-article list in the memo.
// Truncation uses input article order, never score order.
const memoMaxArticles = 5

// Memo composes the final compliance memo.
func Memo(profile model.UserProfile, accepted []model.ArticleAnalysis, decision model.CaseDecision, targetedAsk string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ADVERSE MEDIA REVIEW - %s\n", profile.FullName)
	dob := profile.DateOfBirth
	if dob == "" {
		dob = "not provided"
	}
	fmt.Fprintf(&b, "Subject: %s, DOB: %s\n", profile.FullName, dob)
	fmt.Fprintf(&b, "Decision: %s\n\n", strings.ToUpper(string(decision)))

	if len(accepted) > 0 {
		b.WriteString("LINKED ARTICLES:\n")
		for i, article := range accepted {
			if i >= memoMaxArticles {
				break
			}
			fmt.Fprintf(&b, "- Article %d: %s (%s, %s)\n", i+1, article.Hit.Title, article.Hit.Source, article.Hit.Date)
			fmt.Fprintf(&b, "  Linkage: %s, Outcome: %s\n", article.LinkageDecision, article.OutcomeType)
			if len(article.Contradictions) > 0 {
				fmt.Fprintf(&b, "  Contradictions: %s\n", article.Contradictions[0])
			}
		}
	} else {
		b.WriteString("- No linked adverse media found\n")
	}

	b.WriteString("\n")
	if targetedAsk != "" {
		fmt.Fprintf(&b, "NEXT STEP: %s\n", targetedAsk)
	} else {
		b.WriteString("NEXT STEP: Review complete, no further action required.\n")
	}
	fmt.Fprintf(&b, "Review completed: %s", now.Format("2006-01-02 15:04:05"))

	return b.String()
}
