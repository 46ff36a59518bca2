package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSample matches one exposition line. The exporter adds scope labels,
// so only the given label fragment is checked.
func assertSample(t *testing.T, output, name, labelPattern, value string) {
	t.Helper()
	assert.Regexp(t, name+`\{[^}]*`+labelPattern+`[^}]*\} `+value, output)
}

func TestBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("septer_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "septer_test")
	require.NoError(t, err)

	ctx := context.Background()
	outcomes := []struct {
		domain, operation string
		err               error
		took              time.Duration
	}{
		{DomainAuth, "auth_login", nil, 50 * time.Millisecond},
		{DomainAuth, "auth_login", nil, 60 * time.Millisecond},
		{DomainAuth, "auth_login", errors.New("invalid credentials"), 90 * time.Millisecond},
		{DomainLogs, "log_upload", nil, 10 * time.Millisecond},
		{DomainAnalysis, "log_ask", errors.New("upstream"), 2 * time.Second},
	}
	for _, o := range outcomes {
		status := StatusFor(o.err)
		bm.RecordOperation(ctx, o.domain, o.operation, status)
		bm.RecordDuration(ctx, o.domain, o.operation, o.took, status)
	}

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	output := w.Body.String()

	assertSample(t, output, "septer_test_operations_total",
		`domain="auth".*operation="auth_login".*status="success"`, "2")
	assertSample(t, output, "septer_test_operations_total",
		`domain="auth".*operation="auth_login".*status="error"`, "1")
	assertSample(t, output, "septer_test_operations_total",
		`domain="logs".*operation="log_upload".*status="success"`, "1")
	assertSample(t, output, "septer_test_operations_total",
		`domain="analysis".*operation="log_ask".*status="error"`, "1")
	assertSample(t, output, "septer_test_operation_duration_seconds_count",
		`domain="auth".*operation="auth_login".*status="success"`, "2")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()
	assert.IsType(t, &NoOpBusinessMetrics{}, bm)

	assert.NotPanics(t, func() {
		bm.RecordOperation(context.Background(), DomainUsers, "user_signup", StatusSuccess)
		bm.RecordDuration(context.Background(), DomainUsers, "user_signup", time.Second, StatusError)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusFor(nil))
	assert.Equal(t, StatusError, StatusFor(errors.New("boom")))
}
