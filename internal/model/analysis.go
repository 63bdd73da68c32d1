package model

import "time"

// LinkageDecision is the per-article three-valued verdict on whether
// the article concerns the subject.
type LinkageDecision string

const (
	LinkageYes   LinkageDecision = "yes"
	LinkageMaybe LinkageDecision = "maybe"
	LinkageNo    LinkageDecision = "no"
)

// OutcomeType is the legal/regulatory outcome reported by an article.
type OutcomeType string

const (
	OutcomeAllegation     OutcomeType = "allegation"
	OutcomeInvestigation  OutcomeType = "investigation"
	OutcomeCharged        OutcomeType = "charged"
	OutcomeConvicted      OutcomeType = "convicted"
	OutcomeAcquitted      OutcomeType = "acquitted"
	OutcomeSettled        OutcomeType = "settled"
	OutcomeRegulatorOrder OutcomeType = "regulator_order"
	OutcomeNone           OutcomeType = "none"
)

// CategoryType is the adverse-media category of an article.
type CategoryType string

const (
	CategoryCorruption         CategoryType = "corruption"
	CategoryFraud              CategoryType = "fraud"
	CategoryMoneyLaundering    CategoryType = "money_laundering"
	CategoryTerroristFinancing CategoryType = "terrorist_financing"
	CategoryTrafficking        CategoryType = "trafficking"
	CategorySanctionsEvasion   CategoryType = "sanctions_evasion"
	CategoryViolence           CategoryType = "violence"
	CategoryRegulatory         CategoryType = "regulatory"
	CategoryCivil              CategoryType = "civil"
	CategoryNone               CategoryType = "none"
)

// AnchorType is the closed set of identity-fact kinds an article can
// yield. Verifier strategies are selected per variant.
type AnchorType string

const (
	AnchorName     AnchorType = "name"
	AnchorEmployer AnchorType = "employer"
	AnchorCity     AnchorType = "city"
	AnchorDOB      AnchorType = "dob"
	AnchorAge      AnchorType = "age"
	AnchorTitle    AnchorType = "title"
	AnchorID       AnchorType = "id"
)

// KnownAnchorType reports whether t is a member of the closed set.
func KnownAnchorType(t AnchorType) bool {
	switch t {
	case AnchorName, AnchorEmployer, AnchorCity, AnchorDOB, AnchorAge, AnchorTitle, AnchorID:
		return true
	}
	return false
}

// IdentityAnchor is a discrete identity fact extracted from one article.
type IdentityAnchor struct {
	AnchorType AnchorType `json:"anchor_type"`
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"` // 0..1
	SourceText string     `json:"source_text,omitempty"`
}

// AnchorVerification is the verdict for one anchor against the profile.
// Matches and Conflict are never both true: a verdict is corroborating,
// contradicting, or neutral.
type AnchorVerification struct {
	Anchor    IdentityAnchor `json:"anchor"`
	Matches   bool           `json:"matches"`
	Conflict  bool           `json:"conflict"`
	Rationale string         `json:"rationale"`
}

// ArticleAnalysis is the complete, immutable analysis of one hit.
type ArticleAnalysis struct {
	Hit             MediaHit             `json:"hit"`
	BriefSummary    string               `json:"brief_summary"`
	Anchors         []IdentityAnchor     `json:"anchors"`
	Verifications   []AnchorVerification `json:"anchor_verifications"`
	Contradictions  []string             `json:"contradictions"`
	LinkageDecision LinkageDecision      `json:"linkage_decision"`
	OutcomeType     OutcomeType          `json:"outcome_type"`
	CategoryType    CategoryType         `json:"category_type"`
	CredibilityNote string               `json:"credibility_note"`
	RecencyNote     string               `json:"recency_note"`
	Rationale       string               `json:"rationale"` // fixed 3-line format
}

// CaseDecision is the case-level outcome.
type CaseDecision string

const (
	DecisionClear    CaseDecision = "clear"
	DecisionEscalate CaseDecision = "escalate"
	DecisionDecline  CaseDecision = "decline"
)

// ComplianceResult is the terminal output of one case review.
type ComplianceResult struct {
	CaseID           string            `json:"case_id"`
	UserProfile      UserProfile       `json:"user_profile"`
	TotalHits        int               `json:"total_hits"`
	AnalyzedArticles []ArticleAnalysis `json:"analyzed_articles"`
	MatchedHits      []ArticleAnalysis `json:"matched_hits"`
	NonMatchedHits   []ArticleAnalysis `json:"non_matched_hits"`
	FinalDecision    CaseDecision      `json:"final_decision"`
	DecisionScore    int               `json:"decision_score"` // 0..100
	OverallRationale string            `json:"overall_rationale"`
	TargetedAsk      string            `json:"targeted_ask,omitempty"`
	FinalMemo        string            `json:"final_memo"`
	Partial          bool              `json:"partial,omitempty"` // case timeout hit before all articles finished
	ProcessedAt      time.Time         `json:"processing_timestamp"`
}
