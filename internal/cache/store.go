package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
)

// Backend is a string key/value store with per-key expiry
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Store caches typed values as JSON on top of a Backend.
// Backend failures degrade to a miss on read and a no-op on write.
type Store struct {
	backend Backend
}

// NewStore creates new cache store
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Get decodes the cached value for key into dest.
// Returns false on miss, expiry, backend failure or undecodable payload.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	raw, found, err := s.backend.Get(ctx, key)
	if err != nil {
		logger.Warn("cache unavailable, treating as miss",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Warn("cached value undecodable, treating as miss",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}

	return true
}

// Set stores value under key for ttl, replacing any previous value and expiry
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error("failed to encode cache value",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}

	if err := s.backend.Set(ctx, key, string(data), ttl); err != nil {
		logger.Warn("cache unavailable, value not stored",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// Delete removes key
func (s *Store) Delete(ctx context.Context, key string) {
	if err := s.backend.Del(ctx, key); err != nil {
		logger.Warn("cache unavailable, value not deleted",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
