// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusCollector_RecordRelay(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg)

	c.RecordRelay("user_meetings", OutcomeSuccess)
	c.RecordRelay("user_meetings", OutcomeSuccess)
	c.RecordRelay("meeting_details", OutcomeFailure)

	if got := testutil.ToFloat64(c.relayRequests.WithLabelValues("user_meetings", OutcomeSuccess)); got != 2 {
		t.Errorf("expected 2 successful user_meetings relays, got %v", got)
	}
	if got := testutil.ToFloat64(c.relayRequests.WithLabelValues("meeting_details", OutcomeFailure)); got != 1 {
		t.Errorf("expected 1 failed meeting_details relay, got %v", got)
	}
}

func TestPrometheusCollector_RecordTokenExchange(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg)

	c.RecordTokenExchange(OutcomeSuccess)
	c.RecordTokenExchange(OutcomeFailure)
	c.RecordTokenExchange(OutcomeFailure)

	if got := testutil.ToFloat64(c.tokenExchanges.WithLabelValues(OutcomeSuccess)); got != 1 {
		t.Errorf("expected 1 successful token exchange, got %v", got)
	}
	if got := testutil.ToFloat64(c.tokenExchanges.WithLabelValues(OutcomeFailure)); got != 2 {
		t.Errorf("expected 2 failed token exchanges, got %v", got)
	}
}

func TestPrometheusCollector_RecordProviderLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg)

	c.RecordProviderLatency(150 * time.Millisecond)
	c.RecordProviderLatency(300 * time.Millisecond)

	count := testutil.CollectAndCount(c.providerLatency)
	if count != 1 {
		t.Errorf("expected 1 histogram metric, got %d", count)
	}
}

func TestNoopCollector(t *testing.T) {
	c := NewNoopCollector()

	// Must not panic without a registry
	c.RecordRelay("user_meetings", OutcomeSuccess)
	c.RecordTokenExchange(OutcomeFailure)
	c.RecordProviderLatency(time.Second)
}
