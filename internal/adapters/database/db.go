package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/adapters/config"
	"github.com/selivandex/worldmap-intel/pkg/logger"
)

// DB wraps a sqlx connection pool
type DB struct {
	conn *sqlx.DB
	name string
}

// New connects to PostgreSQL (reference data store)
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	conn, err := sqlx.ConnectContext(ctx, "postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	logger.Info("database connection established",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
	)

	return &DB{conn: conn, name: "postgres"}, nil
}

// NewClickHouse connects to ClickHouse (metrics sink) through the same pool wrapper
func NewClickHouse(ctx context.Context, cfg *config.ClickHouseConfig) (*DB, error) {
	conn, err := sqlx.Open("clickhouse", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open ClickHouse: %w", err)
	}

	conn.SetMaxOpenConns(5)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(10 * time.Minute)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ClickHouse ping failed: %w", err)
	}

	logger.Info("ClickHouse connection established",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database),
	)

	return &DB{conn: conn, name: "clickhouse"}, nil
}

// NewFromConn wraps an existing pool
func NewFromConn(conn *sqlx.DB, name string) *DB {
	return &DB{conn: conn, name: name}
}

// Close closes database connection
func (db *DB) Close() error {
	if db.conn != nil {
		logger.Info("closing database connection", zap.String("driver", db.name))
		return db.conn.Close()
	}
	return nil
}

// DB returns the sqlx pool
func (db *DB) DB() *sqlx.DB {
	return db.conn
}

// Health pings the database with a short deadline
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%s health check failed: %w", db.name, err)
	}

	return nil
}
