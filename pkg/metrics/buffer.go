package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
)

// ErrBufferFull is returned by Add when MaxBufferSize rows are already pending
var ErrBufferFull = errors.New("metrics buffer full")

const flushTimeout = 5 * time.Second

// BufferedMetrics batches metrics per table and flushes them to a Writer
// either when a table reaches BatchSize or on every FlushInterval tick.
type BufferedMetrics struct {
	writer  Writer
	maxSize int

	mu     sync.Mutex
	buffer map[string][]Metric
	size   int

	batchSize int
	interval  time.Duration
	flushCh   chan struct{}
	stopCh    chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// BufferConfig configures metrics buffer
type BufferConfig struct {
	Writer        Writer
	BatchSize     int           // flush when a table reaches this size
	FlushInterval time.Duration // periodic flush
	MaxBufferSize int           // rows pending before Add rejects (0 = unlimited)
}

// NewBufferedMetrics creates the buffer and starts its flush loop
func NewBufferedMetrics(cfg BufferConfig) *BufferedMetrics {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 10 * time.Second
	}

	bm := &BufferedMetrics{
		writer:    cfg.Writer,
		maxSize:   cfg.MaxBufferSize,
		buffer:    make(map[string][]Metric),
		batchSize: cfg.BatchSize,
		interval:  cfg.FlushInterval,
		flushCh:   make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}

	bm.wg.Add(1)
	go bm.loop()

	logger.Info("metrics buffer initialized",
		zap.Int("batch_size", cfg.BatchSize),
		zap.Duration("flush_interval", cfg.FlushInterval),
		zap.Int("max_buffer_size", cfg.MaxBufferSize),
	)

	return bm
}

// Add queues metric; it never performs I/O
func (bm *BufferedMetrics) Add(metric Metric) error {
	if metric == nil {
		return fmt.Errorf("metric is nil")
	}

	table := metric.TableName()
	if table == "" {
		return fmt.Errorf("metric table name is empty")
	}

	bm.mu.Lock()
	if bm.maxSize > 0 && bm.size >= bm.maxSize {
		bm.mu.Unlock()
		return ErrBufferFull
	}
	bm.buffer[table] = append(bm.buffer[table], metric)
	bm.size++
	full := len(bm.buffer[table]) >= bm.batchSize
	bm.mu.Unlock()

	if full {
		// coalesce with any flush already requested
		select {
		case bm.flushCh <- struct{}{}:
		default:
		}
	}

	return nil
}

// Flush writes every pending table to the writer
func (bm *BufferedMetrics) Flush(ctx context.Context) error {
	bm.mu.Lock()
	pending := bm.buffer
	bm.buffer = make(map[string][]Metric, len(pending))
	bm.size = 0
	bm.mu.Unlock()

	var errs []error
	for table, rows := range pending {
		if len(rows) == 0 {
			continue
		}
		if err := bm.writer.Write(ctx, table, rows); err != nil {
			logger.Error("failed to flush metrics",
				zap.String("table", table),
				zap.Int("count", len(rows)),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", table, err))
			continue
		}
		logger.Debug("metrics flushed",
			zap.String("table", table),
			zap.Int("count", len(rows)),
		)
	}

	return errors.Join(errs...)
}

// Size returns number of pending rows across all tables
func (bm *BufferedMetrics) Size() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.size
}

// Close stops the flush loop, flushes what is left and closes the writer
func (bm *BufferedMetrics) Close(ctx context.Context) error {
	var err error
	bm.closeOnce.Do(func() {
		logger.Info("closing metrics buffer")

		close(bm.stopCh)
		bm.wg.Wait()

		if ferr := bm.Flush(ctx); ferr != nil {
			err = ferr
		}
		if cerr := bm.writer.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	})
	return err
}

func (bm *BufferedMetrics) loop() {
	defer bm.wg.Done()

	ticker := time.NewTicker(bm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			bm.flushWithTimeout()
		case <-bm.flushCh:
			bm.flushWithTimeout()
		case <-bm.stopCh:
			return
		}
	}
}

func (bm *BufferedMetrics) flushWithTimeout() {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := bm.Flush(ctx); err != nil {
		logger.Warn("periodic flush failed", zap.Error(err))
	}
}
