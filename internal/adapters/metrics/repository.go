package metrics

import (
	"context"

	"github.com/selivandex/worldmap-intel/pkg/metrics"
)

// Repository stores rows of metric values
type Repository interface {
	InsertBatch(ctx context.Context, tableName string, values [][]interface{}) error
	Close() error
}

// Writer implements metrics.Writer on top of a Repository
type Writer struct {
	repo Repository
}

// NewWriter creates new metrics writer with repository
func NewWriter(repo Repository) *Writer {
	return &Writer{repo: repo}
}

// Write converts metrics to rows and inserts them in one batch
func (w *Writer) Write(ctx context.Context, tableName string, batch []metrics.Metric) error {
	if len(batch) == 0 {
		return nil
	}

	values := make([][]interface{}, len(batch))
	for i, m := range batch {
		values[i] = m.Values()
	}

	return w.repo.InsertBatch(ctx, tableName, values)
}

func (w *Writer) Close() error {
	if w.repo != nil {
		return w.repo.Close()
	}
	return nil
}
