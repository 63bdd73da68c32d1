// Package pipeline orchestrates a full case review: per-article
// analysis fanned out over a bounded worker set, then an order-stable
// roll-up into the case decision, ask, and memo. Articles are mutually
// independent; everything outside the oracle calls is pure computation,
// and no failure in here is fatal at the case level.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avetrov/kyclens/internal/casefile"
	"github.com/avetrov/kyclens/internal/dates"
	"github.com/avetrov/kyclens/internal/fetch"
	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/namematch"
	"github.com/avetrov/kyclens/internal/oracle"
	"github.com/avetrov/kyclens/internal/verify"
)

// Progress receives per-request progress events. It replaces any
// process-wide log: each invocation gets its own callback and no state
// is shared across concurrent cases. May be nil.
type Progress func(step int, message string)

// Pipeline runs compliance checks. Safe for concurrent use; every
// invocation builds its result from scratch.
type Pipeline struct {
	oracle   oracle.Oracle // nil means deterministic fallbacks only
	matcher  *namematch.Matcher
	verifier *verify.Verifier
	fetcher  *fetch.Fetcher // nil unless ad-hoc fetching is enabled
	logger   *slog.Logger
	config   *model.Config
	now      func() time.Time
}

// New creates a pipeline. The oracle may be nil.
func New(cfg *model.Config, orc oracle.Oracle, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	var fetcher *fetch.Fetcher
	if cfg.Fetch.Enabled {
		fetcher = fetch.New(cfg.Fetch)
	}

	var nm oracle.NameMatcher
	var vr oracle.Verifier
	if orc != nil {
		nm = orc
		vr = orc
	}

	return &Pipeline{
		oracle:   orc,
		matcher:  namematch.New(nm, cfg.Thresholds),
		verifier: verify.New(vr),
		fetcher:  fetcher,
		logger:   logger,
		config:   cfg,
		now:      time.Now,
	}
}

// progressLog numbers events within a single request.
type progressLog struct {
	mu   sync.Mutex
	step int
	fn   Progress
}

func (p *progressLog) emit(format string, args ...any) {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	p.step++
	step := p.step
	p.mu.Unlock()
	p.fn(step, fmt.Sprintf(format, args...))
}

// Check runs the full review for one profile and hit set. The only
// error it returns is an invalid profile; per-article failures degrade
// to the safest decision, and a case timeout yields a partial result.
func (p *Pipeline) Check(ctx context.Context, profile model.UserProfile, hits []model.MediaHit, progress Progress) (*model.ComplianceResult, error) {
	if profile.FullName == "" {
		return nil, fmt.Errorf("profile full_name is required")
	}

	log := &progressLog{fn: progress}
	log.emit("Case intake - Subject: %s, DOB %s, city %s, employer %s. Vendor hits: %d articles.",
		profile.FullName, profile.DateOfBirth, profile.City, profile.Employer, len(hits))

	ctx, cancel := context.WithTimeout(ctx, p.config.Concurrency.CaseTimeout)
	defer cancel()

	analyses, partial := p.analyzeAll(ctx, profile, hits, log)

	// Roll-up is a read-only fold in the original input order, so the
	// memo's first-5 and the ask's first-contradiction selections stay
	// deterministic regardless of completion order above.
	var accepted, rejected []model.ArticleAnalysis
	for _, a := range analyses {
		if a.LinkageDecision == model.LinkageYes || a.LinkageDecision == model.LinkageMaybe {
			accepted = append(accepted, a)
		} else {
			rejected = append(rejected, a)
		}
	}
	log.emit("Case roll-up: %d matched, %d rejected", len(accepted), len(rejected))

	decision, score, rationale := casefile.Aggregate(accepted)
	log.emit("Final decision: %s (score: %d/100)", decision, score)

	targetedAsk := ""
	if decision == model.DecisionEscalate {
		targetedAsk = casefile.TargetedAsk(accepted)
	}

	now := p.now()
	result := &model.ComplianceResult{
		CaseID:           uuid.NewString(),
		UserProfile:      profile,
		TotalHits:        len(hits),
		AnalyzedArticles: analyses,
		MatchedHits:      accepted,
		NonMatchedHits:   rejected,
		FinalDecision:    decision,
		DecisionScore:    score,
		OverallRationale: rationale,
		TargetedAsk:      targetedAsk,
		FinalMemo:        casefile.Memo(profile, accepted, decision, targetedAsk, now),
		Partial:          partial,
		ProcessedAt:      now,
	}
	return result, nil
}

// analyzeAll maps hits to analyses in parallel, bounded by the
// configured worker count. Results land at their input index; if the
// case deadline expires first, unfinished slots degrade to a safe NO
// analysis and the case is flagged partial.
func (p *Pipeline) analyzeAll(ctx context.Context, profile model.UserProfile, hits []model.MediaHit, log *progressLog) ([]model.ArticleAnalysis, bool) {
	analyses := make([]model.ArticleAnalysis, len(hits))
	completed := make([]bool, len(hits))
	sealed := false
	var mu sync.Mutex

	semaphore := make(chan struct{}, p.workerCount())
	var wg sync.WaitGroup

	for i, hit := range hits {
		wg.Add(1)
		go func(idx int, h model.MediaHit) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			analysis := p.analyzeArticle(ctx, profile, h, log)

			// A worker can outlive the case deadline; once the roll-up
			// has sealed the results, late writes are dropped.
			mu.Lock()
			if !sealed {
				analyses[idx] = analysis
				completed[idx] = true
			}
			mu.Unlock()
		}(i, hit)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	partial := false
	select {
	case <-done:
	case <-ctx.Done():
		partial = true
		p.logger.Warn("case deadline reached before all articles completed")
	}

	mu.Lock()
	sealed = true
	for i := range analyses {
		if !completed[i] {
			analyses[i] = p.degradedAnalysis(hits[i], "analysis did not complete before case deadline")
		}
	}
	mu.Unlock()
	return analyses, partial
}

func (p *Pipeline) workerCount() int {
	if n := p.config.Concurrency.ArticleWorkers; n > 0 {
		return n
	}
	return 1
}

// degradedAnalysis is the safest terminal state for an article that
// could not be analyzed: no name match can be established, so linkage
// is no, and the rationale records the failure for audit.
func (p *Pipeline) degradedAnalysis(hit model.MediaHit, reason string) model.ArticleAnalysis {
	credibility := casefile.CredibilityScore(hit.Source)
	return model.ArticleAnalysis{
		Hit:             hit,
		BriefSummary:    "analysis failed",
		Anchors:         []model.IdentityAnchor{},
		Verifications:   []model.AnchorVerification{},
		Contradictions:  nil,
		LinkageDecision: model.LinkageNo,
		OutcomeType:     model.OutcomeNone,
		CategoryType:    model.CategoryNone,
		CredibilityNote: fmt.Sprintf("Credibility: %s (%s, %s)", casefile.CredibilityTier(credibility), hit.Source, hit.Date),
		RecencyNote:     fmt.Sprintf("Recency: %s (%s)", dates.Bucket(hit.Date, p.now()), hit.Date),
		Rationale: fmt.Sprintf("Outcome: none, Category: none. analysis failed\nLinkage: no - %s\n%s", reason,
			fmt.Sprintf("URL: %s", orNotProvided(hit.URL))),
	}
}

func orNotProvided(s string) string {
	if s == "" {
		return "not provided"
	}
	return s
}
