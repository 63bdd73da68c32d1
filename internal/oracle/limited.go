package oracle

import (
	"context"

	"golang.org/x/time/rate"
)

// Limited throttles oracle calls with a token bucket so concurrent
// article workers stay inside external rate and cost limits. A blocked
// wait ends when the caller's context does, which callers treat as an
// oracle failure and absorb via their fallbacks.
type Limited struct {
	inner   Oracle
	limiter *rate.Limiter
}

// NewLimited wraps an oracle with a rate limiter.
func NewLimited(inner Oracle, perSecond float64, burst int) *Limited {
	if burst <= 0 {
		burst = 1
	}
	return &Limited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Name returns the wrapped provider's name.
func (l *Limited) Name() string {
	return l.inner.Name()
}

// Extract implements Extractor.
func (l *Limited) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.inner.Extract(ctx, req)
}

// MatchNames implements NameMatcher.
func (l *Limited) MatchNames(ctx context.Context, req NameMatchRequest) (*NameMatchResponse, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.inner.MatchNames(ctx, req)
}

// VerifyAnchors implements Verifier.
func (l *Limited) VerifyAnchors(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.inner.VerifyAnchors(ctx, req)
}

// Classify implements Classifier.
func (l *Limited) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.inner.Classify(ctx, req)
}
