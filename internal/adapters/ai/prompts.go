package ai

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/selivandex/worldmap-intel/pkg/models"
	"github.com/selivandex/worldmap-intel/pkg/templates"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

const (
	systemTemplate  = "system.tmpl"
	analyzeTemplate = "analyze.tmpl"
)

var (
	promptsOnce sync.Once
	promptsMgr  templates.Renderer
	promptsErr  error

	codeFenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")
)

func prompts() (templates.Renderer, error) {
	promptsOnce.Do(func() {
		promptsMgr, promptsErr = templates.NewManager(promptFS, "prompts/*.tmpl")
	})
	return promptsMgr, promptsErr
}

// buildPrompts renders the system and user prompts for req
func buildPrompts(req Request) (system, user string, err error) {
	mgr, err := prompts()
	if err != nil {
		return "", "", err
	}

	system, err = mgr.ExecuteTemplate(systemTemplate, nil)
	if err != nil {
		return "", "", err
	}

	user, err = mgr.ExecuteTemplate(analyzeTemplate, req)
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(system), strings.TrimSpace(user), nil
}

type analysisResponse struct {
	SummaryShort   string   `json:"summary_short"`
	SummaryBullets []string `json:"summary_bullets"`
	SentimentLabel string   `json:"sentiment_label"`
	SentimentScore float64  `json:"sentiment_score"`
	BiasLabel      string   `json:"bias_label"`
	Credibility    float64  `json:"credibility"`
}

// parseAnalysisResponse converts raw model output into an AnalysisResult.
// Labels must be known values; scores are clamped to their ranges.
func parseAnalysisResponse(content, model string) (*models.AnalysisResult, error) {
	jsonStr := extractJSON(content)

	var resp analysisResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w (content: %s)", err, jsonStr)
	}

	if strings.TrimSpace(resp.SummaryShort) == "" {
		return nil, fmt.Errorf("empty summary in response")
	}

	sentiment := strings.ToLower(strings.TrimSpace(resp.SentimentLabel))
	switch sentiment {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		return nil, fmt.Errorf("invalid sentiment label: %s", resp.SentimentLabel)
	}

	bias := strings.ToLower(strings.TrimSpace(resp.BiasLabel))
	switch bias {
	case models.BiasLiberal, models.BiasConservative, models.BiasNeutral:
	default:
		return nil, fmt.Errorf("invalid bias label: %s", resp.BiasLabel)
	}

	bullets := make([]string, 0, len(resp.SummaryBullets))
	for _, b := range resp.SummaryBullets {
		if b = strings.TrimSpace(b); b != "" {
			bullets = append(bullets, b)
		}
	}

	return &models.AnalysisResult{
		Summary: models.Summary{
			Short:   strings.TrimSpace(resp.SummaryShort),
			Bullets: bullets,
		},
		Sentiment: models.Sentiment{
			Label: sentiment,
			Score: models.ClampScore(resp.SentimentScore, -1, 1),
		},
		Bias: models.Bias{
			Label:       bias,
			Credibility: models.ClampScore(resp.Credibility, 0, 1),
		},
		Tier:  models.TierPremium,
		Model: model,
	}, nil
}

// extractJSON pulls a JSON object out of text that may be wrapped in
// markdown code fences or surrounded by prose
func extractJSON(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(text[start : end+1])
	}

	return strings.TrimSpace(text)
}
