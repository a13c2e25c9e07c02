package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "referral_credits"

type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	referralsSent   *prometheus.CounterVec
	graphqlRequests *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		referralsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "referral_codes_sent_total",
			Help:      "Referral codes sent, by customer.",
		}, []string{"customer_id"}),
		graphqlRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphql_requests_total",
			Help:      "GraphQL requests by operation name and outcome.",
		}, []string{"operation", "outcome"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.referralsSent,
		m.graphqlRequests,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ReferralSent(customerID string) {
	m.referralsSent.WithLabelValues(customerID).Inc()
}

func (m *Metrics) GraphQLRequest(operation, outcome string) {
	if operation == "" {
		operation = "anonymous"
	}
	m.graphqlRequests.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ReferralsSentCounter() *prometheus.CounterVec { return m.referralsSent }

func (m *Metrics) GraphQLRequestsCounter() *prometheus.CounterVec { return m.graphqlRequests }

func (m *Metrics) HTTPRequestsCounter() *prometheus.CounterVec { return m.httpRequests }
