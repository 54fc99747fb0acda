package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/brightpath/care-api/internal/middleware"
)

type stubHandler struct {
	path string
}

func (s stubHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET(s.path, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func newTestRouter(t *testing.T, cfg RouterConfig) *Router {
	t.Helper()
	r := NewRouter(
		stubHandler{path: "/stub"},
		stubHandler{path: "/stub-hospitals"},
		stubHandler{path: "/stub-doctors"},
		stubHandler{path: "/stub-assessments"},
		stubHandler{path: "/stub-appointments"},
		stubHandler{path: "/stub-messages"},
		nil,
		cfg,
	)
	r.Setup()
	return r
}

func TestRouterServesRegisteredRoutes(t *testing.T) {
	r := newTestRouter(t, RouterConfig{
		RateLimit:     rate.Limit(100),
		RateBurst:     100,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "router_routes_test",
	})

	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stub", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1.0", rec.Header().Get("X-API-Version"))
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderXRequestID))
}

func TestRouterRateLimits(t *testing.T) {
	r := newTestRouter(t, RouterConfig{
		RateLimit:     rate.Limit(1),
		RateBurst:     1,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "router_ratelimit_test",
	})

	first := httptest.NewRecorder()
	r.Engine().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/stub", nil))
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := httptest.NewRecorder()
	r.Engine().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/stub", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRouterExposesMetrics(t *testing.T) {
	r := newTestRouter(t, RouterConfig{
		RateLimit:     rate.Limit(100),
		RateBurst:     100,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "router_metrics_test",
	})

	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
