package oracle

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avetrov/kyclens/internal/cache"
)

// Cached memoizes oracle responses keyed by the serialized request.
// Identical hits within one process (retries, duplicate vendor
// articles) cost one oracle call instead of several.
type Cached struct {
	inner Oracle
	cache cache.Cache
	ttl   time.Duration
}

// NewCached wraps an oracle with a response cache.
func NewCached(inner Oracle, c cache.Cache, ttl time.Duration) *Cached {
	return &Cached{inner: inner, cache: c, ttl: ttl}
}

// Name returns the wrapped provider's name.
func (c *Cached) Name() string {
	return c.inner.Name()
}

// lookup runs fn only on a cache miss, storing its encoded result.
// Errors are never cached.
func cachedCall[Req any, Resp any](ctx context.Context, c *Cached, op string, req Req,
	fn func(context.Context, Req) (*Resp, error)) (*Resp, error) {

	payload, err := json.Marshal(req)
	if err != nil {
		return fn(ctx, req)
	}
	key := cache.Key(op, payload)

	if raw, ok := c.cache.Get(key); ok {
		var out Resp
		if err := json.Unmarshal(raw, &out); err == nil {
			return &out, nil
		}
	}

	out, err := fn(ctx, req)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(out); err == nil {
		c.cache.Set(key, raw, c.ttl)
	}
	return out, nil
}

// Extract implements Extractor.
func (c *Cached) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	return cachedCall(ctx, c, "extract", req, c.inner.Extract)
}

// MatchNames implements NameMatcher.
func (c *Cached) MatchNames(ctx context.Context, req NameMatchRequest) (*NameMatchResponse, error) {
	return cachedCall(ctx, c, "namematch", req, c.inner.MatchNames)
}

// VerifyAnchors implements Verifier.
func (c *Cached) VerifyAnchors(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	return cachedCall(ctx, c, "verify", req, c.inner.VerifyAnchors)
}

// Classify implements Classifier.
func (c *Cached) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
	return cachedCall(ctx, c, "classify", req, c.inner.Classify)
}
