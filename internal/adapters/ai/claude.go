package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// ClaudeProvider implements Provider on the Anthropic messages API
type ClaudeProvider struct {
	client      *anthropic.Client
	model       anthropic.Model
	maxTokens   int64
	temperature float64
	timeout     time.Duration
	enabled     bool
}

// ClaudeOptions configures ClaudeProvider
type ClaudeOptions struct {
	APIKey      string
	BaseURL     string // empty means api.anthropic.com
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
}

// NewClaudeProvider creates new Claude provider
func NewClaudeProvider(opts ClaudeOptions) *ClaudeProvider {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(opts.MaxRetries),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	client := anthropic.NewClient(clientOpts...)

	model := anthropic.Model(opts.Model)
	if opts.Model == "" {
		model = anthropic.ModelClaude3_5Sonnet20241022
	}

	maxTokens := int64(opts.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 400
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ClaudeProvider{
		client:      &client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: opts.Temperature,
		timeout:     timeout,
		enabled:     opts.APIKey != "",
	}
}

func (p *ClaudeProvider) GetName() string {
	return "claude"
}

func (p *ClaudeProvider) IsEnabled() bool {
	return p.enabled
}

// Analyze asks Claude for summary, sentiment and bias of one article
func (p *ClaudeProvider) Analyze(ctx context.Context, req Request) (*models.AnalysisResult, error) {
	if !p.enabled {
		return nil, fmt.Errorf("claude provider is disabled")
	}

	system, user, err := buildPrompts(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompts: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       p.model,
		MaxTokens:   p.maxTokens,
		Temperature: anthropic.Float(p.temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("claude request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("no text content in claude response")
	}

	result, err := parseAnalysisResponse(text.String(), string(p.model))
	if err != nil {
		return nil, fmt.Errorf("failed to parse claude response: %w", err)
	}

	logger.Debug("claude analysis complete",
		zap.String("country", req.CountryCode),
		zap.String("model", string(p.model)),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
	)

	return result, nil
}
