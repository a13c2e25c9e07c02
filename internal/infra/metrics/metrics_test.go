//go:build unit

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"referral-credits/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.ReferralSent("cus_123")
	m.ReferralSent("cus_123")
	m.ReferralSent("cus_456")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReferralsSentCounter().WithLabelValues("cus_123")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReferralsSentCounter().WithLabelValues("cus_456")))

	m.GraphQLRequest("", "ok")
	m.GraphQLRequest("Summary", "error")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GraphQLRequestsCounter().WithLabelValues("anonymous", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GraphQLRequestsCounter().WithLabelValues("Summary", "error")))

	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/graphql", http.StatusOK, time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsCounter().WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsCounter().WithLabelValues("POST", "/graphql", "200")))
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.ReferralSent("cus_123")
	assert.Zero(t, testutil.ToFloat64(b.ReferralsSentCounter().WithLabelValues("cus_123")))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ReferralSent("cus_123")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `referral_credits_referral_codes_sent_total{customer_id="cus_123"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
