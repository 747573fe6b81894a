package metrics

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
)

// schema holds DDL for every table a metrics.Metric in this module writes to.
// Column order must match the metric's Values().
var schema = []string{
	`CREATE TABLE IF NOT EXISTS analysis_dispatch_metrics (
		timestamp    DateTime64(3),
		country_code LowCardinality(String),
		tier         LowCardinality(String),
		reason       LowCardinality(String),
		provider     LowCardinality(String),
		fallback     Bool,
		cost_usd     Float64,
		latency_ms   Int64
	) ENGINE = MergeTree
	PARTITION BY toYYYYMM(timestamp)
	ORDER BY (country_code, timestamp)
	TTL toDateTime(timestamp) + INTERVAL 180 DAY`,

	`CREATE TABLE IF NOT EXISTS upstream_fetch_metrics (
		timestamp    DateTime64(3),
		country_code LowCardinality(String),
		category     LowCardinality(String),
		cache_hit    Bool,
		success      Bool,
		error_kind   LowCardinality(String),
		items        Int32,
		latency_ms   Int64
	) ENGINE = MergeTree
	PARTITION BY toYYYYMM(timestamp)
	ORDER BY (category, country_code, timestamp)
	TTL toDateTime(timestamp) + INTERVAL 90 DAY`,
}

// ClickHouseRepository implements Repository for ClickHouse
type ClickHouseRepository struct {
	db *sqlx.DB
}

// NewClickHouseRepository creates new ClickHouse repository
func NewClickHouseRepository(db *sqlx.DB) *ClickHouseRepository {
	return &ClickHouseRepository{db: db}
}

// EnsureSchema creates metric tables that don't exist yet
func (r *ClickHouseRepository) EnsureSchema(ctx context.Context) error {
	for _, ddl := range schema {
		if _, err := r.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to apply ClickHouse schema: %w", err)
		}
	}
	logger.Info("ClickHouse metrics schema ready", zap.Int("tables", len(schema)))
	return nil
}

// InsertBatch inserts rows into tableName with a single multi-row INSERT
func (r *ClickHouseRepository) InsertBatch(ctx context.Context, tableName string, values [][]interface{}) error {
	if len(values) == 0 {
		return nil
	}

	query, args, err := buildInsert(tableName, values)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ClickHouse insert failed: %w", err)
	}

	logger.Debug("ClickHouse batch insert successful",
		zap.String("table", tableName),
		zap.Int("rows", len(values)),
	)

	return nil
}

// Close is a no-op: the connection is owned by the caller
func (r *ClickHouseRepository) Close() error {
	return nil
}

func buildInsert(tableName string, values [][]interface{}) (string, []interface{}, error) {
	columns := len(values[0])
	if columns == 0 {
		return "", nil, fmt.Errorf("values have no columns")
	}

	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", columns), ", ") + ")"
	rows := make([]string, len(values))
	args := make([]interface{}, 0, len(values)*columns)

	for i, v := range values {
		if len(v) != columns {
			return "", nil, fmt.Errorf("row %d has wrong column count: expected %d, got %d", i, columns, len(v))
		}
		rows[i] = row
		args = append(args, v...)
	}

	return fmt.Sprintf("INSERT INTO %s VALUES %s", tableName, strings.Join(rows, ", ")), args, nil
}
