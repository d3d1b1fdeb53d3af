package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics("chanv", "api")

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/user/profile", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/user/profile", http.StatusOK, 10*time.Millisecond)
	m.RecordAuthFailure("expired")
	m.RecordHealthReportEvent("health_report.created")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/v1/user/profile", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.authFailures.WithLabelValues("expired")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.healthReportOps.WithLabelValues("health_report.created")))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "chanv_api_auth_failures_total")
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("chanv", "api")
		NewMetrics("chanv", "api")
	})
}
