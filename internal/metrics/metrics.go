// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package metrics provides Prometheus instrumentation for the gateway.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for relay and token exchange metrics
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collector defines the metrics recorded by the service and the Zoom
// client.
type Collector interface {
	RecordRelay(resource string, outcome string)
	RecordTokenExchange(outcome string)
	RecordProviderLatency(duration time.Duration)
}

// PrometheusCollector records gateway metrics on a Prometheus registry.
type PrometheusCollector struct {
	relayRequests   *prometheus.CounterVec
	tokenExchanges  *prometheus.CounterVec
	providerLatency prometheus.Histogram
}

// Ensure PrometheusCollector implements Collector
var _ Collector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates a collector and registers its metrics
// with the given registerer.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		relayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zoom_gateway_relay_requests_total",
			Help: "Total number of relay requests by resource and outcome",
		}, []string{"resource", "outcome"}),
		tokenExchanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zoom_gateway_token_exchanges_total",
			Help: "Total number of Zoom OAuth token exchanges by outcome",
		}, []string{"outcome"}),
		providerLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "zoom_gateway_provider_latency_seconds",
			Help:    "Latency of Zoom API resource calls in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.relayRequests,
		c.tokenExchanges,
		c.providerLatency,
	)

	return c
}

// RecordRelay records the outcome of one relay operation.
func (c *PrometheusCollector) RecordRelay(resource string, outcome string) {
	c.relayRequests.WithLabelValues(resource, outcome).Inc()
}

// RecordTokenExchange records the outcome of one token exchange.
func (c *PrometheusCollector) RecordTokenExchange(outcome string) {
	c.tokenExchanges.WithLabelValues(outcome).Inc()
}

// RecordProviderLatency records the round-trip time of one Zoom API
// resource call.
func (c *PrometheusCollector) RecordProviderLatency(duration time.Duration) {
	c.providerLatency.Observe(duration.Seconds())
}
