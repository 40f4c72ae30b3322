package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grocery/internal/infrastructure/http/server"
	"grocery/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pingRoutes struct{}

func (pingRoutes) Register(group *gin.RouterGroup) {
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}

func newServer(checks map[string]server.HealthCheck) (*server.Server, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	srv := server.NewServer(map[string]server.Routes{"producers": pingRoutes{}}, reg, checks, zap.NewNop())
	return srv, reg
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, target, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_Routes(t *testing.T) {
	srv, _ := newServer(nil)

	w := get(t, srv.Handler(), "/api/v1/producers")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv, _ := newServer(map[string]server.HealthCheck{
			"postgres": func(context.Context) error { return nil },
		})

		w := get(t, srv.Handler(), "/healthz")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("dependency_down", func(t *testing.T) {
		srv, _ := newServer(map[string]server.HealthCheck{
			"postgres": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("dial tcp: refused") },
		})

		w := get(t, srv.Handler(), "/healthz")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body struct {
			Failed []string `json:"failed"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"redis"}, body.Failed)
	})
}

func TestServer_Metrics(t *testing.T) {
	srv, reg := newServer(nil)
	m := metrics.NewCacheMetrics(reg)
	m.RecordHit("producer")

	w := get(t, srv.Handler(), "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `grocery_cache_hits_total{namespace="producer"} 1`))
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv, _ := newServer(nil)

	assert.NoError(t, srv.Shutdown(context.Background()))
}
