// Package oracle isolates the external semantic services behind narrow
// request/response contracts. The deterministic pipeline never inspects
// article text itself; it consumes the structured judgments returned
// here, and every caller carries a fallback for when an oracle is
// unavailable or returns garbage.
package oracle

import (
	"context"

	"github.com/avetrov/kyclens/internal/model"
)

// ExtractRequest asks for identity anchors and a neutral summary.
type ExtractRequest struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
	Profile string `json:"profile_summary"`
}

// ExtractResponse is the structured extraction result.
type ExtractResponse struct {
	BriefSummary string                 `json:"brief_summary"`
	Anchors      []model.IdentityAnchor `json:"anchors"`
}

// NameMatchRequest asks whether any article name could refer to the subject.
type NameMatchRequest struct {
	SubjectNames []string `json:"subject_names"`
	ArticleNames []string `json:"article_names"`
}

// NameMatchResponse is the oracle's name-match judgment.
type NameMatchResponse struct {
	IsMatch     bool    `json:"is_match"`
	Confidence  float64 `json:"confidence"`
	MatchedName string  `json:"matched_name"`
	Reasoning   string  `json:"reasoning"`
}

// VerifyAnchor is one index-tagged anchor in a batch verification call.
type VerifyAnchor struct {
	Index      int     `json:"index"`
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Context    string  `json:"context,omitempty"`
	Confidence float64 `json:"confidence"`
}

// VerifyRequest carries the profile and the full anchor list of one article.
type VerifyRequest struct {
	Profile     model.UserProfile `json:"profile"`
	Anchors     []VerifyAnchor    `json:"anchors"`
	ArticleDate string            `json:"article_date"`
}

// VerifyVerdict is the oracle's verdict for one anchor index.
type VerifyVerdict struct {
	Index     int    `json:"index"`
	Matches   bool   `json:"matches"`
	Conflict  bool   `json:"conflict"`
	Rationale string `json:"rationale"`
}

// VerifyResponse is the batch verification result. Indices map back to
// the request's anchor list; unknown indices are dropped by the caller.
type VerifyResponse struct {
	Verifications []VerifyVerdict `json:"verifications"`
}

// ClassifyRequest asks for the outcome and category of one article.
type ClassifyRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ClassifyResponse is the classification result.
type ClassifyResponse struct {
	Outcome   string `json:"outcome_type"`
	Category  string `json:"category_type"`
	Reasoning string `json:"reasoning"`
}

// Extractor produces anchors and a summary from article text.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)
}

// NameMatcher judges whether article names could refer to the subject.
type NameMatcher interface {
	MatchNames(ctx context.Context, req NameMatchRequest) (*NameMatchResponse, error)
}

// Verifier judges a batch of anchors against the profile.
type Verifier interface {
	VerifyAnchors(ctx context.Context, req VerifyRequest) (*VerifyResponse, error)
}

// Classifier judges the outcome severity and category of an article.
type Classifier interface {
	Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error)
}

// Oracle is the full semantic service surface.
type Oracle interface {
	Extractor
	NameMatcher
	Verifier
	Classifier
	Name() string
}
