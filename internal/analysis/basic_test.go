package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selivandex/worldmap-intel/pkg/models"
)

func TestSummarize(t *testing.T) {
	a := NewBasicAnalyzer()

	t.Run("long text", func(t *testing.T) {
		s := a.Summarize("one two three four five six seven eight nine ten eleven twelve")
		assert.Equal(t, "one two three four five six seven eight nine ten...", s.Short)
		assert.Equal(t, []string{
			"one two three four",
			"five six seven eight",
			"nine ten eleven twelve",
		}, s.Bullets)
	})

	t.Run("remainder goes to last bullet", func(t *testing.T) {
		s := a.Summarize("a b c d e f g")
		assert.Equal(t, "a b c d e f g", s.Short)
		assert.Equal(t, []string{"a b", "c d", "e f g"}, s.Bullets)
	})

	t.Run("fewer words than bullets", func(t *testing.T) {
		s := a.Summarize("  hello world ")
		assert.Equal(t, "hello world", s.Short)
		assert.Equal(t, []string{"hello world"}, s.Bullets)
	})
}

func TestAnalyzeSentiment(t *testing.T) {
	a := NewBasicAnalyzer()

	tests := []struct {
		name  string
		text  string
		label string
		score float64
	}{
		{"positive", "Growth is great this quarter", models.SentimentPositive, 0.8},
		{"negative", "A crisis and a decline in exports", models.SentimentNegative, -0.8},
		{"tie", "good news and bad news", models.SentimentNeutral, 0},
		{"nothing", "the parliament met on tuesday", models.SentimentNeutral, 0},
		{"clamped", "good great excellent positive success growth up rise", models.SentimentPositive, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := a.AnalyzeSentiment(tt.text)
			assert.Equal(t, tt.label, s.Label)
			assert.InDelta(t, tt.score, s.Score, 1e-9)
		})
	}
}

func TestAnalyzeBias(t *testing.T) {
	a := NewBasicAnalyzer()

	b := a.AnalyzeBias("Climate reform bill passes", "BBC News")
	assert.Equal(t, models.BiasLiberal, b.Label)
	assert.Equal(t, 0.9, b.Credibility)

	b = a.AnalyzeBias("Defense and border security top agenda", "Local Times")
	assert.Equal(t, models.BiasConservative, b.Label)
	assert.Equal(t, 0.7, b.Credibility)

	b = a.AnalyzeBias("Climate and defense spending debated", "Reuters")
	assert.Equal(t, models.BiasNeutral, b.Label)
	assert.Equal(t, 0.9, b.Credibility)
}

func TestBasicAnalyze(t *testing.T) {
	res := NewBasicAnalyzer().Analyze("Markets rise after great earnings", "Reuters")
	require.Equal(t, models.TierBasic, res.Tier)
	assert.Equal(t, models.SentimentPositive, res.Sentiment.Label)
	assert.Empty(t, res.Model)
}
