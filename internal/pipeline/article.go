package pipeline

import (
	"context"
	"fmt"

	"github.com/avetrov/kyclens/internal/casefile"
	"github.com/avetrov/kyclens/internal/dates"
	"github.com/avetrov/kyclens/internal/linkage"
	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/oracle"
	"github.com/avetrov/kyclens/internal/verify"
)

// analyzeArticle runs one hit through extraction, name matching,
// verification, contradiction scan, linkage decision, optional
// classification, and the audit notes.
func (p *Pipeline) analyzeArticle(ctx context.Context, profile model.UserProfile, hit model.MediaHit, log *progressLog) model.ArticleAnalysis {
	log.emit("Analyzing article: '%s'", hit.Title)

	hit = p.enrich(ctx, hit)

	summary, anchors := p.extract(ctx, profile, hit)
	log.emit("Found %d identity anchors in '%s'", len(anchors), hit.Title)

	nameResult := p.matcher.Analyze(ctx, profile, anchors)
	log.emit("Name analysis: %s", nameResult.Analysis)

	verifications := p.verifier.Verify(ctx, profile, anchors, hit.Date)
	contradictions := verify.Contradictions(verifications)

	decision, linkageRationale := linkage.Decide(linkage.Input{
		HasNameMatch:    nameResult.HasNameMatch,
		Verifications:   verifications,
		Contradictions:  contradictions,
		RequiredAnchors: nameResult.RequiredAnchors,
	})
	log.emit("Decision: %s - %s", decision, linkageRationale)

	outcome, category := p.classify(ctx, hit)

	credibility := casefile.CredibilityScore(hit.Source)
	credibilityNote := fmt.Sprintf("Credibility: %s (%s, %s)", casefile.CredibilityTier(credibility), hit.Source, hit.Date)
	recencyNote := fmt.Sprintf("Recency: %s (%s)", dates.Bucket(hit.Date, p.now()), hit.Date)

	rationale := fmt.Sprintf("Outcome: %s, Category: %s. %s\n%s\n%s. %s. URL: %s",
		outcome, category, summary, linkageRationale, credibilityNote, recencyNote, orNotProvided(hit.URL))

	return model.ArticleAnalysis{
		Hit:             hit,
		BriefSummary:    summary,
		Anchors:         anchors,
		Verifications:   verifications,
		Contradictions:  contradictions,
		LinkageDecision: decision,
		OutcomeType:     outcome,
		CategoryType:    category,
		CredibilityNote: credibilityNote,
		RecencyNote:     recencyNote,
		Rationale:       rationale,
	}
}

// enrich pulls article text for hits that carry only a URL, when the
// ad-hoc fetcher is enabled. Fetch failures leave the hit unchanged.
func (p *Pipeline) enrich(ctx context.Context, hit model.MediaHit) model.MediaHit {
	if p.fetcher == nil || hit.FullText != "" || hit.URL == "" {
		return hit
	}
	text, err := p.fetcher.ArticleText(ctx, hit.URL)
	if err != nil {
		p.logger.Debug("article fetch failed", "url", hit.URL, "error", err)
		return hit
	}
	hit.FullText = text
	return hit
}

// extract calls the extraction oracle. Failures and malformed output
// degrade to an empty anchor list, which downstream logic reads as "no
// name mentions".
func (p *Pipeline) extract(ctx context.Context, profile model.UserProfile, hit model.MediaHit) (string, []model.IdentityAnchor) {
	if p.oracle == nil {
		return hit.Title, []model.IdentityAnchor{}
	}

	resp, err := p.oracle.Extract(ctx, oracle.ExtractRequest{
		Title:   hit.Title,
		Date:    hit.Date,
		Content: hit.Content(),
		Profile: oracle.ProfileSummary(profile),
	})
	if err != nil || resp == nil {
		p.logger.Warn("anchor extraction failed", "title", hit.Title, "error", err)
		return fmt.Sprintf("Failed to analyze article: %s", hit.Title), []model.IdentityAnchor{}
	}

	anchors := make([]model.IdentityAnchor, 0, len(resp.Anchors))
	for _, a := range resp.Anchors {
		if a.Confidence < 0 {
			a.Confidence = 0
		}
		if a.Confidence > 1 {
			a.Confidence = 1
		}
		anchors = append(anchors, a)
	}

	summary := resp.BriefSummary
	if summary == "" {
		summary = hit.Title
	}
	return summary, anchors
}

// classify asks the classifier oracle for outcome severity when
// enabled. Otherwise every article defaults to none and the
// aggregator's severity branches stay dormant.
func (p *Pipeline) classify(ctx context.Context, hit model.MediaHit) (model.OutcomeType, model.CategoryType) {
	if !p.config.Classify.Enabled || p.oracle == nil {
		return model.OutcomeNone, model.CategoryNone
	}

	resp, err := p.oracle.Classify(ctx, oracle.ClassifyRequest{
		Title:   hit.Title,
		Content: hit.Content(),
	})
	if err != nil || resp == nil {
		p.logger.Warn("outcome classification failed", "title", hit.Title, "error", err)
		return model.OutcomeNone, model.CategoryNone
	}

	outcome := model.OutcomeType(resp.Outcome)
	category := model.CategoryType(resp.Category)
	if !knownOutcome(outcome) {
		outcome = model.OutcomeNone
	}
	if !knownCategory(category) {
		category = model.CategoryNone
	}
	return outcome, category
}

func knownOutcome(o model.OutcomeType) bool {
	switch o {
	case model.OutcomeAllegation, model.OutcomeInvestigation, model.OutcomeCharged,
		model.OutcomeConvicted, model.OutcomeAcquitted, model.OutcomeSettled,
		model.OutcomeRegulatorOrder, model.OutcomeNone:
		return true
	}
	return false
}

func knownCategory(c model.CategoryType) bool {
	switch c {
	case model.CategoryCorruption, model.CategoryFraud, model.CategoryMoneyLaundering,
		model.CategoryTerroristFinancing, model.CategoryTrafficking, model.CategorySanctionsEvasion,
		model.CategoryViolence, model.CategoryRegulatory, model.CategoryCivil, model.CategoryNone:
		return true
	}
	return false
}
