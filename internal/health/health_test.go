package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(p *Probes) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	p.RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveness_AlwaysOK(t *testing.T) {
	p := NewProbes()
	p.Register("cache", func(context.Context) error { return errors.New("down") }, true)
	r := newRouter(p)

	for _, path := range []string{"/health", "/healthz"} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := get(r, "/health?verbose=true")
	var status HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "unhealthy: down", status.Checks["cache"])
}

func TestReadiness(t *testing.T) {
	p := NewProbes()
	var cacheErr error
	p.Register("cache", func(context.Context) error { return cacheErr }, true)
	p.Register("clickhouse", func(context.Context) error { return errors.New("refused") }, false)
	r := newRouter(p)

	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/ready").Code, "not ready before startup completes")

	p.SetReady(true)
	w := get(r, "/readyz")
	assert.Equal(t, http.StatusOK, w.Code)

	var status ReadinessStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Ready)
	assert.Equal(t, "healthy", status.Checks["cache"])
	assert.Equal(t, "unhealthy: refused", status.Checks["clickhouse"])

	cacheErr = errors.New("timeout")
	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/ready").Code)
}
