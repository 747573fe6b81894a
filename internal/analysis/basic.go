package analysis

import (
	"strings"

	"github.com/selivandex/worldmap-intel/pkg/models"
)

const (
	shortSummaryWords = 10
	bulletCount       = 3
	ellipsis          = "..."

	baseSentimentScore = 0.6
	sentimentStep      = 0.1

	trustedCredibility = 0.9
	defaultCredibility = 0.7
)

// BasicAnalyzer is the free, deterministic analysis strategy
type BasicAnalyzer struct {
	positiveWords     []string
	negativeWords     []string
	trustedSources    []string
	liberalWords      []string
	conservativeWords []string
}

// NewBasicAnalyzer creates new keyword-based analyzer
func NewBasicAnalyzer() *BasicAnalyzer {
	return &BasicAnalyzer{
		positiveWords:     []string{"good", "great", "excellent", "positive", "success", "growth", "up", "rise"},
		negativeWords:     []string{"bad", "terrible", "negative", "crisis", "down", "fall", "decline", "problem"},
		trustedSources:    []string{"reuters", "ap", "bbc", "npr", "pbs", "wall street journal"},
		liberalWords:      []string{"progressive", "reform", "climate", "diversity"},
		conservativeWords: []string{"traditional", "security", "freedom", "defense"},
	}
}

// Analyze runs summary, sentiment and bias for text from source
func (a *BasicAnalyzer) Analyze(text, source string) models.AnalysisResult {
	return models.AnalysisResult{
		Summary:   a.Summarize(text),
		Sentiment: a.AnalyzeSentiment(text),
		Bias:      a.AnalyzeBias(text, source),
		Tier:      models.TierBasic,
	}
}

// Summarize builds the short form (first 10 words) and three contiguous
// word chunks. Leftover words from uneven division go to the last chunk.
func (a *BasicAnalyzer) Summarize(text string) models.Summary {
	words := strings.Fields(text)

	short := strings.Join(words, " ")
	if len(words) > shortSummaryWords {
		short = strings.Join(words[:shortSummaryWords], " ") + ellipsis
	}

	chunk := len(words) / bulletCount
	if chunk == 0 {
		return models.Summary{Short: short, Bullets: []string{strings.TrimSpace(text)}}
	}

	bullets := make([]string, 0, bulletCount)
	for i := 0; i < bulletCount; i++ {
		end := (i + 1) * chunk
		if i == bulletCount-1 {
			end = len(words)
		}
		bullets = append(bullets, strings.Join(words[i*chunk:end], " "))
	}

	return models.Summary{Short: short, Bullets: bullets}
}

// AnalyzeSentiment scores text by counting positive and negative keywords
func (a *BasicAnalyzer) AnalyzeSentiment(text string) models.Sentiment {
	lower := strings.ToLower(text)
	pos := countMatches(lower, a.positiveWords)
	neg := countMatches(lower, a.negativeWords)

	switch {
	case pos > neg:
		return models.Sentiment{
			Label: models.SentimentPositive,
			Score: models.ClampScore(baseSentimentScore+sentimentStep*float64(pos), -1, 1),
		}
	case neg > pos:
		return models.Sentiment{
			Label: models.SentimentNegative,
			Score: models.ClampScore(-(baseSentimentScore + sentimentStep*float64(neg)), -1, 1),
		}
	default:
		return models.Sentiment{Label: models.SentimentNeutral, Score: 0}
	}
}

// AnalyzeBias estimates source credibility and political lean
func (a *BasicAnalyzer) AnalyzeBias(text, source string) models.Bias {
	credibility := defaultCredibility
	if countMatches(strings.ToLower(source), a.trustedSources) > 0 {
		credibility = trustedCredibility
	}

	lower := strings.ToLower(text)
	liberal := countMatches(lower, a.liberalWords)
	conservative := countMatches(lower, a.conservativeWords)

	label := models.BiasNeutral
	switch {
	case liberal > conservative:
		label = models.BiasLiberal
	case conservative > liberal:
		label = models.BiasConservative
	}

	return models.Bias{Label: label, Credibility: credibility}
}

// countMatches returns how many keywords occur in text as substrings
func countMatches(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
