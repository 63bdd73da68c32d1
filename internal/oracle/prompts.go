package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avetrov/kyclens/internal/model"
)

// Prompt templates for each oracle operation. Providers share these so
// that switching backends never changes the judgment contract.

const extractSystemPrompt = "You are a compliance expert specializing in identity verification. " +
	"Extract identity anchors precisely and create neutral summaries."

const nameMatchSystemPrompt = `You are an expert at name matching for compliance purposes.
You understand nicknames (Bob=Robert, Jim=James), cultural name variations,
transliterations, maiden names, professional vs legal names, and name order differences.

Analyze if any names from the article could refer to the same person as in the user profile.
Consider:
- Common nicknames and diminutives
- Cultural name variations (Jose vs José)
- Name order (Li Wei vs Wei Li)
- Professional vs legal names (Dr. Smith vs John Smith)
- Maiden/married names
- Middle name variations
- Transliteration differences

Return a JSON object with:
- "is_match": boolean
- "confidence": float (0-1)
- "matched_name": string (the article name that matched)
- "reasoning": string explaining the match logic`

const verifySystemPrompt = `You are an expert at identity verification for compliance purposes.

For each anchor, determine if it matches, contradicts, or is neutral regarding the user profile.
Consider contextual relationships, temporal context, and intelligent matching:

- Name variations, nicknames, cultural differences
- Company acquisitions, subsidiaries, name changes
- Geographic relationships (NYC = New York = Manhattan)
- Career progression (CFO promoted to CEO)
- Temporal context (ages calculated from dates)
- Title hierarchies and equivalents
- Partial matches vs clear conflicts

Return a JSON object with:
- "verifications": array of objects, one per anchor with:
  - "index": anchor index
  - "matches": boolean (true if anchor matches profile)
  - "conflict": boolean (true if anchor contradicts profile)
  - "rationale": string explaining the reasoning`

const classifySystemPrompt = `You are a compliance analyst classifying adverse media articles.

Classify the article's reported outcome and category.

Return a JSON object with:
- "outcome_type": one of [allegation, investigation, charged, convicted, acquitted, settled, regulator_order, none]
- "category_type": one of [corruption, fraud, money_laundering, terrorist_financing, trafficking, sanctions_evasion, violence, regulatory, civil, none]
- "reasoning": string explaining the classification`

func buildExtractPrompt(req ExtractRequest) string {
	return fmt.Sprintf(`Article to analyze:
Title: %s
Date: %s
Content: %s

User profile being checked:
%s

Extract all identity anchors from this article and create a neutral summary.
Return JSON with:
- "brief_summary": A neutral 1-2 sentence summary of what happened
- "anchors": Array of identity anchors with:
  - "anchor_type": one of [name, employer, city, dob, age, title, id]
  - "value": the extracted value
  - "confidence": 0-1 confidence score
  - "source_text": the text where this was found`,
		req.Title, req.Date, req.Content, req.Profile)
}

func buildNameMatchPrompt(req NameMatchRequest) string {
	return fmt.Sprintf(`USER PROFILE NAMES: %s
ARTICLE NAMES: %s

Could any article name refer to the same person as the user profile?`,
		strings.Join(req.SubjectNames, "; "), strings.Join(req.ArticleNames, "; "))
}

func buildVerifyPrompt(req VerifyRequest) string {
	profile, _ := json.Marshal(req.Profile)
	anchors, _ := json.Marshal(req.Anchors)
	return fmt.Sprintf(`USER PROFILE: %s

ANCHORS TO VERIFY: %s
ARTICLE DATE: %s

For each anchor, determine if it matches or conflicts with the user profile.`,
		profile, anchors, req.ArticleDate)
}

func buildClassifyPrompt(req ClassifyRequest) string {
	return fmt.Sprintf(`Article title: %s
Article content: %s

Classify the outcome and category of this adverse media article.`,
		req.Title, req.Content)
}

// ProfileSummary renders the profile line embedded in extraction prompts.
func ProfileSummary(p model.UserProfile) string {
	orNot := func(s string) string {
		if s == "" {
			return "not provided"
		}
		return s
	}
	return fmt.Sprintf("Name: %s, DOB: %s, City: %s, Employer: %s",
		p.FullName, orNot(p.DateOfBirth), orNot(p.City), orNot(p.Employer))
}
