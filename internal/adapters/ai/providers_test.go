package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selivandex/worldmap-intel/pkg/models"
)

const analysisJSON = `{"summary_short":"Elections held.","summary_bullets":["Turnout high"],"sentiment_label":"negative","sentiment_score":-0.4,"bias_label":"conservative","credibility":0.6}`

func TestOpenAIProvider_Analyze(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotModel, _ = body["model"].(string)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  gotModel,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": analysisJSON},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
		})
	}))
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL + "/v1", MaxTokens: 400})
	require.True(t, p.IsEnabled())

	res, err := p.Analyze(context.Background(), Request{Text: "Elections were held.", Source: "AP", CountryCode: "USA"})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", gotModel)
	assert.Equal(t, models.TierPremium, res.Tier)
	assert.Equal(t, models.SentimentNegative, res.Sentiment.Label)
	assert.Equal(t, models.BiasConservative, res.Bias.Label)
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	_, err := p.Analyze(context.Background(), Request{Text: "x", Source: "y", CountryCode: "USA"})
	assert.Error(t, err)
}

func TestOpenAIProvider_Disabled(t *testing.T) {
	p := NewOpenAIProvider(OpenAIOptions{})
	assert.False(t, p.IsEnabled())
	_, err := p.Analyze(context.Background(), Request{Text: "x"})
	assert.Error(t, err)
}

func TestClaudeProvider_Analyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "ak-test", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "msg_1",
			"type":  "message",
			"role":  "assistant",
			"model": "claude-3-5-sonnet-20241022",
			"content": []map[string]any{
				{"type": "text", "text": "Here is the analysis:\n" + analysisJSON},
			},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 12, "output_tokens": 40},
		})
	}))
	defer srv.Close()

	p := NewClaudeProvider(ClaudeOptions{APIKey: "ak-test", BaseURL: srv.URL})
	require.True(t, p.IsEnabled())

	res, err := p.Analyze(context.Background(), Request{Text: "Elections were held.", Source: "BBC", CountryCode: "GBR"})
	require.NoError(t, err)

	assert.Equal(t, models.TierPremium, res.Tier)
	assert.Equal(t, "claude-3-5-sonnet-20241022", res.Model)
	assert.Equal(t, "Elections held.", res.Summary.Short)
	assert.Equal(t, 0.6, res.Bias.Credibility)
}

func TestClaudeProvider_MalformedOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "msg_2", "type": "message", "role": "assistant",
			"model":       "claude-3-5-sonnet-20241022",
			"content":     []map[string]any{{"type": "text", "text": "I'd rather not."}},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 1, "output_tokens": 1},
		})
	}))
	defer srv.Close()

	p := NewClaudeProvider(ClaudeOptions{APIKey: "ak-test", BaseURL: srv.URL})
	_, err := p.Analyze(context.Background(), Request{Text: "x", Source: "y", CountryCode: "GBR"})
	assert.Error(t, err)
}
