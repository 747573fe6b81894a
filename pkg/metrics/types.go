package metrics

import "time"

// AnalysisDispatchMetric records one tier decision of the analysis dispatcher
type AnalysisDispatchMetric struct {
	Timestamp   time.Time
	CountryCode string
	Tier        string // tier that produced the result
	Reason      string // why premium was or wasn't attempted
	Provider    string
	Fallback    bool // premium attempted but failed
	CostUSD     float64
	LatencyMs   int64
}

func (m *AnalysisDispatchMetric) TableName() string {
	return "analysis_dispatch_metrics"
}

func (m *AnalysisDispatchMetric) Values() []interface{} {
	return []interface{}{
		m.Timestamp,
		m.CountryCode,
		m.Tier,
		m.Reason,
		m.Provider,
		m.Fallback,
		m.CostUSD,
		m.LatencyMs,
	}
}

// UpstreamFetchMetric records one category fetch made by the orchestrator
type UpstreamFetchMetric struct {
	Timestamp   time.Time
	CountryCode string
	Category    string
	CacheHit    bool
	Success     bool
	ErrorKind   string
	Items       int
	LatencyMs   int64
}

func (m *UpstreamFetchMetric) TableName() string {
	return "upstream_fetch_metrics"
}

func (m *UpstreamFetchMetric) Values() []interface{} {
	return []interface{}{
		m.Timestamp,
		m.CountryCode,
		m.Category,
		m.CacheHit,
		m.Success,
		m.ErrorKind,
		m.Items,
		m.LatencyMs,
	}
}
