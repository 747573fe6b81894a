package metrics

import "context"

// Metric is a single row destined for an analytics table
type Metric interface {
	// TableName returns ClickHouse table name for this metric
	TableName() string
	// Values returns metric values in the same order as columns
	Values() []interface{}
}

// Writer writes metrics to storage
type Writer interface {
	Write(ctx context.Context, tableName string, metrics []Metric) error
	Close() error
}

// Recorder accepts metrics without blocking the caller.
// Components take a Recorder so they can run with metrics disabled.
type Recorder interface {
	Add(metric Metric) error
}

// Buffer manages batching and auto-flushing of metrics
type Buffer interface {
	Recorder
	Flush(ctx context.Context) error
	Size() int
	Close(ctx context.Context) error
}

// Nop discards every metric
type Nop struct{}

func (Nop) Add(Metric) error { return nil }

// OrNop returns r, or Nop when r is nil
func OrNop(r Recorder) Recorder {
	if r == nil {
		return Nop{}
	}
	return r
}
