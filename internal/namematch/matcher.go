// Package namematch decides whether an article's name mentions could
// refer to the subject, and how much corroborating evidence to require
// afterwards. Common surnames produce many false-positive name hits,
// so they demand more anchors than rare ones.
package namematch

import (
	"context"
	"fmt"
	"strings"

	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/oracle"
)

// commonSurnames is the fixed set of high-frequency surnames that
// trigger the stricter anchor requirement.
var commonSurnames = map[string]struct{}{
	"smith": {}, "johnson": {}, "williams": {}, "brown": {}, "jones": {},
	"garcia": {}, "miller": {}, "davis": {}, "rodriguez": {}, "martinez": {},
	"hernandez": {}, "lopez": {}, "gonzalez": {}, "wilson": {}, "anderson": {},
	"thomas": {}, "taylor": {}, "moore": {}, "jackson": {}, "martin": {},
	"lee": {}, "perez": {}, "thompson": {}, "white": {}, "harris": {},
	"sanchez": {}, "clark": {}, "ramirez": {}, "lewis": {}, "robinson": {},
	"walker": {}, "young": {}, "allen": {}, "king": {}, "wright": {},
	"scott": {}, "torres": {}, "nguyen": {}, "hill": {}, "flores": {},
	"green": {}, "adams": {}, "nelson": {}, "baker": {}, "hall": {},
	"rivera": {}, "campbell": {}, "mitchell": {},
}

// IsCommonSurname reports whether the last whitespace token of fullName
// is in the common-surname set.
func IsCommonSurname(fullName string) bool {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return false
	}
	_, ok := commonSurnames[strings.ToLower(fields[len(fields)-1])]
	return ok
}

// Result is the outcome of name-match analysis for one article.
type Result struct {
	HasNameMatch    bool
	Analysis        string
	RequiredAnchors int
}

// Matcher applies the name-match policy, consulting the oracle when one
// is configured and falling back to deterministic token-set similarity.
type Matcher struct {
	oracle    oracle.NameMatcher // nil means fallback only
	threshold float64
	commonReq int
	rareReq   int
}

// New creates a matcher. A nil oracle is valid.
func New(nm oracle.NameMatcher, thresholds model.ThresholdConfig) *Matcher {
	return &Matcher{
		oracle:    nm,
		threshold: thresholds.NameMatch,
		commonReq: thresholds.CommonNameAnchors,
		rareReq:   thresholds.RareNameAnchors,
	}
}

// Analyze evaluates the article's name anchors against the subject's
// name set. When no name anchors exist the article cannot be linked.
func (m *Matcher) Analyze(ctx context.Context, profile model.UserProfile, anchors []model.IdentityAnchor) Result {
	var articleNames []string
	for _, a := range anchors {
		if a.AnchorType == model.AnchorName {
			articleNames = append(articleNames, a.Value)
		}
	}
	if len(articleNames) == 0 {
		return Result{HasNameMatch: false, Analysis: "no name mentions found in article", RequiredAnchors: 0}
	}

	subjectNames := profile.Names()

	matched, detail := m.judge(ctx, subjectNames, articleNames)
	if !matched {
		return Result{HasNameMatch: false, Analysis: detail, RequiredAnchors: 0}
	}

	required := m.rareReq
	kind := "rare"
	if IsCommonSurname(profile.FullName) {
		required = m.commonReq
		kind = "common"
	}
	return Result{
		HasNameMatch:    true,
		Analysis:        fmt.Sprintf("%s name (%s), needs >=%d anchors", kind, detail, required),
		RequiredAnchors: required,
	}
}

// judge runs the oracle when available and degrades to token-set
// similarity on any oracle failure.
func (m *Matcher) judge(ctx context.Context, subjectNames, articleNames []string) (bool, string) {
	if m.oracle != nil {
		resp, err := m.oracle.MatchNames(ctx, oracle.NameMatchRequest{
			SubjectNames: subjectNames,
			ArticleNames: articleNames,
		})
		if err == nil && resp != nil {
			if resp.IsMatch || resp.Confidence >= m.threshold {
				return true, fmt.Sprintf("matched '%s', confidence %.2f", resp.MatchedName, resp.Confidence)
			}
			return false, fmt.Sprintf("no strong name match (best: %s, confidence %.2f)", resp.MatchedName, resp.Confidence)
		}
		// oracle failure: fall through to the deterministic path
	}

	best := 0.0
	bestName := ""
	for _, article := range articleNames {
		for _, subject := range subjectNames {
			if sim := Similarity(article, subject); sim > best {
				best = sim
				bestName = article
			}
		}
	}
	if best >= m.threshold {
		return true, fmt.Sprintf("token similarity %.2f for '%s'", best, bestName)
	}
	return false, fmt.Sprintf("no strong name match (best: %s, score %.2f)", bestName, best)
}
