package models

// Tier identifies which analysis path produced a result
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Bias labels
const (
	BiasLiberal      = "liberal"
	BiasConservative = "conservative"
	BiasNeutral      = "neutral"
)

// Summary holds the short and bulleted summaries of an article
type Summary struct {
	Short   string   `json:"summary_tweet"`
	Bullets []string `json:"summary_bullets"`
}

// Sentiment holds label and score in [-1, 1]
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Bias holds label and source credibility in [0, 1]
type Bias struct {
	Label       string  `json:"label"`
	Credibility float64 `json:"credibility"`
}

// AnalysisResult is the output of the analysis dispatcher for one text
type AnalysisResult struct {
	Summary   Summary   `json:"summary"`
	Sentiment Sentiment `json:"sentiment"`
	Bias      Bias      `json:"bias"`
	Tier      Tier      `json:"tier"`
	Model     string    `json:"model,omitempty"`
}

// ClampScore bounds v to [lo, hi]
func ClampScore(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
