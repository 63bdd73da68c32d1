package verify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avetrov/kyclens/internal/dates"
	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/namematch"
)

// ruleFunc is one deterministic verification strategy.
type ruleFunc func(profile model.UserProfile, value, articleDate string) (matches, conflict bool, rationale string)

// rules maps each anchor type to its strategy. The table keeps the
// type set closed; an anchor outside it gets a neutral verdict.
var rules = map[model.AnchorType]ruleFunc{
	model.AnchorName:     verifyName,
	model.AnchorEmployer: verifyEmployer,
	model.AnchorCity:     verifyCity,
	model.AnchorDOB:      verifyDOB,
	model.AnchorAge:      verifyAge,
	model.AnchorTitle:    verifyTitle,
	model.AnchorID:       verifyID,
}

// verifyFallback applies the per-type rule table to a single anchor.
// It always yields a verdict, neutral on anything unexpected.
func verifyFallback(profile model.UserProfile, anchor model.IdentityAnchor, articleDate string) model.AnchorVerification {
	rule, ok := rules[model.AnchorType(strings.ToLower(string(anchor.AnchorType)))]
	if !ok {
		return model.AnchorVerification{
			Anchor:    anchor,
			Rationale: fmt.Sprintf("unknown anchor type: %s", anchor.AnchorType),
		}
	}

	matches, conflict, rationale := rule(profile, strings.TrimSpace(anchor.Value), articleDate)
	return enforceExclusive(model.AnchorVerification{
		Anchor:    anchor,
		Matches:   matches,
		Conflict:  conflict,
		Rationale: rationale,
	})
}

// verifyName matches on substring containment of normalized names.
// Absence of a name is never contradictory.
func verifyName(profile model.UserProfile, value, _ string) (bool, bool, string) {
	for _, name := range profile.Names() {
		if namematch.Contained(value, name) {
			return true, false, fmt.Sprintf("name matches: '%s' found in subject names", value)
		}
	}
	return false, false, fmt.Sprintf("name '%s' not found in subject profile", value)
}

func verifyEmployer(profile model.UserProfile, value, _ string) (bool, bool, string) {
	if profile.Employer == "" {
		return false, false, "employer: not stated in profile"
	}
	if containsFold(profile.Employer, value) {
		return true, false, fmt.Sprintf("employer: matches (%s)", value)
	}
	return false, true, fmt.Sprintf("employer: conflict (profile: %s vs article: %s)", profile.Employer, value)
}

func verifyCity(profile model.UserProfile, value, _ string) (bool, bool, string) {
	if profile.City == "" {
		return false, false, "city: not stated in profile"
	}
	if containsFold(profile.City, value) {
		return true, false, fmt.Sprintf("city: matches (%s)", value)
	}
	return false, true, fmt.Sprintf("city: conflict (profile: %s vs article: %s)", profile.City, value)
}

func verifyDOB(profile model.UserProfile, value, _ string) (bool, bool, string) {
	if profile.DateOfBirth == "" {
		return false, false, "dob: not stated in profile"
	}
	equal, ok := dates.SameDay(profile.DateOfBirth, value)
	if !ok {
		return false, false, fmt.Sprintf("dob: could not parse '%s'", value)
	}
	if equal {
		return true, false, fmt.Sprintf("dob: matches (%s)", value)
	}
	return false, true, fmt.Sprintf("dob: conflict (profile: %s vs article: %s)", profile.DateOfBirth, value)
}

// verifyAge compares the reported age to the age the subject would
// have been on the article date, with one year of tolerance.
func verifyAge(profile model.UserProfile, value, articleDate string) (bool, bool, string) {
	if profile.DateOfBirth == "" {
		return false, false, "age: cannot verify, no DOB in profile"
	}
	reported, err := strconv.Atoi(value)
	if err != nil {
		return false, false, fmt.Sprintf("age: could not parse '%s'", value)
	}
	expected, ok := dates.AgeAt(profile.DateOfBirth, articleDate)
	if !ok {
		return false, false, "age: could not calculate expected age"
	}
	diff := reported - expected
	if diff >= -1 && diff <= 1 {
		return true, false, fmt.Sprintf("age: matches (article: %d, expected: %d)", reported, expected)
	}
	return false, true, fmt.Sprintf("age: conflict (article: %d, expected: %d)", reported, expected)
}

// verifyTitle is always neutral: the profile carries no title field.
func verifyTitle(_ model.UserProfile, value, _ string) (bool, bool, string) {
	return false, false, fmt.Sprintf("title: not verifiable ('%s' mentioned)", value)
}

// verifyID matches against any profile ID value. Most articles omit ID
// numbers, so absence is never a conflict.
func verifyID(profile model.UserProfile, value, _ string) (bool, bool, string) {
	if len(profile.IDData) == 0 {
		return false, false, fmt.Sprintf("id: not verifiable ('%s' mentioned)", value)
	}
	for kind, id := range profile.IDData {
		if containsFold(id, value) {
			return true, false, fmt.Sprintf("id: matches %s", kind)
		}
	}
	return false, false, fmt.Sprintf("id: no match found for '%s'", value)
}

// containsFold reports case-insensitive substring containment in
// either direction.
func containsFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
