package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// OpenAIProvider implements Provider on the chat completions API in JSON mode
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	enabled     bool
}

// OpenAIOptions configures OpenAIProvider
type OpenAIOptions struct {
	APIKey      string
	BaseURL     string // empty means api.openai.com
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// NewOpenAIProvider creates new OpenAI provider
func NewOpenAIProvider(opts OpenAIOptions) *OpenAIProvider {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	model := opts.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   opts.MaxTokens,
		temperature: float32(opts.Temperature),
		timeout:     timeout,
		enabled:     opts.APIKey != "",
	}
}

func (p *OpenAIProvider) GetName() string {
	return "openai"
}

func (p *OpenAIProvider) IsEnabled() bool {
	return p.enabled
}

// Analyze asks the model for summary, sentiment and bias of one article
func (p *OpenAIProvider) Analyze(ctx context.Context, req Request) (*models.AnalysisResult, error) {
	if !p.enabled {
		return nil, fmt.Errorf("openai provider is disabled")
	}

	system, user, err := buildPrompts(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompts: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openai response")
	}

	result, err := parseAnalysisResponse(resp.Choices[0].Message.Content, p.model)
	if err != nil {
		return nil, fmt.Errorf("failed to parse openai response: %w", err)
	}

	logger.Debug("openai analysis complete",
		zap.String("country", req.CountryCode),
		zap.String("model", p.model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return result, nil
}
