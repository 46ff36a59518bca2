package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstrumentedRouter(t *testing.T, skipPaths ...string) (*gin.Engine, *Provider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("test_app")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app", skipPaths...))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/logs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/api/logs/ask", func(c *gin.Context) { c.Status(http.StatusBadGateway) })
	return router, provider
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	t.Run("Success_LabelsByRoutePattern", func(t *testing.T) {
		router, provider := newInstrumentedRouter(t)

		for _, path := range []string{"/api/logs/one", "/api/logs/two"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, w.Code)
		}

		body := scrape(t, provider)
		assert.Contains(t, body, "test_app_http_requests_total")
		assert.Contains(t, body, `path="/api/logs/:id"`)
		assert.NotContains(t, body, "/api/logs/one")
		assert.Contains(t, body, "test_app_http_request_duration_seconds")
	})

	t.Run("Success_RecordsStatusCode", func(t *testing.T) {
		router, provider := newInstrumentedRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/logs/ask", nil))
		require.Equal(t, http.StatusBadGateway, w.Code)

		assert.Contains(t, scrape(t, provider), `status_code="502"`)
	})

	t.Run("Success_UnmatchedRouteIsUnknown", func(t *testing.T) {
		router, provider := newInstrumentedRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wp-admin/setup.php", nil))
		require.Equal(t, http.StatusNotFound, w.Code)

		body := scrape(t, provider)
		assert.Contains(t, body, `path="unknown"`)
		assert.NotContains(t, body, "wp-admin")
	})

	t.Run("Success_SkipsProbePaths", func(t *testing.T) {
		router, provider := newInstrumentedRouter(t, "/health")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, w.Code)

		assert.NotContains(t, scrape(t, provider), "test_app_http_requests_total")
	})
}
