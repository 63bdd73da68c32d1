package casefile

import (
	"fmt"
	"strings"

	"github.com/avetrov/kyclens/internal/model"
)

// TargetedAsk produces exactly one remediation request for the human
// reviewer. Called only when the case escalates. The first recorded
// contradiction drives the ask; missing anchor coverage is the backup;
// a generic manual-review request is the floor.
func TargetedAsk(accepted []model.ArticleAnalysis) string {
	var contradictions []string
	var missing []string

	for _, article := range accepted {
		contradictions = append(contradictions, article.Contradictions...)

		types := make(map[model.AnchorType]struct{})
		for _, a := range article.Anchors {
			types[a.AnchorType] = struct{}{}
		}
		_, hasDOB := types[model.AnchorDOB]
		_, hasAge := types[model.AnchorAge]
		if !hasDOB && !hasAge {
			missing = append(missing, "DOB/age verification")
		}
		if _, ok := types[model.AnchorEmployer]; !ok {
			missing = append(missing, "employment verification")
		}
	}

	if len(contradictions) > 0 {
		primary := strings.ToLower(contradictions[0])
		switch {
		case strings.Contains(primary, "dob"):
			return "Request: government ID to confirm DOB, since article reports conflicting birth date."
		case strings.Contains(primary, "age"):
			return "Request: government ID to confirm age, since article reports conflicting age."
		case strings.Contains(primary, "employer"):
			return "Request: employment verification to resolve employer contradiction."
		}
	}

	if len(missing) > 0 {
		return fmt.Sprintf("Request: additional documentation to verify %s.", missing[0])
	}

	return "Request: manual review of linkage assessment for final confirmation."
}
