package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

// AnthropicOracle implements Oracle over the Anthropic Messages API.
// Claude has no JSON response mode, so responses are fenced-JSON
// tolerant: a leading/trailing code fence is stripped before decoding.
type AnthropicOracle struct {
	client *anthropic.Client
	model  string
	config Config
}

// NewAnthropicOracle creates a new Anthropic-backed oracle.
func NewAnthropicOracle(config Config) (*AnthropicOracle, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}

	var opts []anthropic.ClientOption
	if config.BaseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(config.BaseURL))
	}

	model := config.Model
	if model == "" {
		model = string(anthropic.ModelClaude3Dot5HaikuLatest)
	}

	return &AnthropicOracle{
		client: anthropic.NewClient(config.APIKey, opts...),
		model:  model,
		config: config,
	}, nil
}

// Name returns the provider name.
func (o *AnthropicOracle) Name() string {
	return "anthropic"
}

func (o *AnthropicOracle) complete(ctx context.Context, system, user string) (string, error) {
	timeout := o.config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	maxTokens := o.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	resp, err := o.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(o.model),
		System:    system,
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(user + "\n\nRespond with a single JSON object only."),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == nil {
		return "", fmt.Errorf("anthropic completion: empty response")
	}
	return stripFences(strings.TrimSpace(*resp.Content[0].Text)), nil
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Extract implements Extractor.
func (o *AnthropicOracle) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	raw, err := o.complete(ctx, extractSystemPrompt, buildExtractPrompt(req))
	if err != nil {
		return nil, err
	}
	var out ExtractResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}
	return &out, nil
}

// MatchNames implements NameMatcher.
func (o *AnthropicOracle) MatchNames(ctx context.Context, req NameMatchRequest) (*NameMatchResponse, error) {
	raw, err := o.complete(ctx, nameMatchSystemPrompt, buildNameMatchPrompt(req))
	if err != nil {
		return nil, err
	}
	var out NameMatchResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode name-match response: %w", err)
	}
	return &out, nil
}

// VerifyAnchors implements Verifier.
func (o *AnthropicOracle) VerifyAnchors(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	raw, err := o.complete(ctx, verifySystemPrompt, buildVerifyPrompt(req))
	if err != nil {
		return nil, err
	}
	var out VerifyResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode verification response: %w", err)
	}
	return &out, nil
}

// Classify implements Classifier.
func (o *AnthropicOracle) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
	raw, err := o.complete(ctx, classifySystemPrompt, buildClassifyPrompt(req))
	if err != nil {
		return nil, err
	}
	var out ClassifyResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode classification response: %w", err)
	}
	return &out, nil
}
