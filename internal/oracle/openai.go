package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIOracle implements Oracle over the OpenAI Chat Completions API
// with JSON response mode.
type OpenAIOracle struct {
	client *openai.Client
	model  string
	config Config
}

// NewOpenAIOracle creates a new OpenAI-backed oracle.
func NewOpenAIOracle(config Config) (*OpenAIOracle, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	model := config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIOracle{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		config: config,
	}, nil
}

// Name returns the provider name.
func (o *OpenAIOracle) Name() string {
	return "openai"
}

// complete runs one JSON-mode chat completion and returns the raw content.
func (o *OpenAIOracle) complete(ctx context.Context, system, user string) (string, error) {
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

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Extract implements Extractor.
func (o *OpenAIOracle) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
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
func (o *OpenAIOracle) MatchNames(ctx context.Context, req NameMatchRequest) (*NameMatchResponse, error) {
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
func (o *OpenAIOracle) VerifyAnchors(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
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
func (o *OpenAIOracle) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
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
