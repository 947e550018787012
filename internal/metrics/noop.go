// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package metrics

import "time"

// NoopCollector is a no-op implementation of Collector for callers
// that run without a metrics registry.
type NoopCollector struct{}

// Ensure NoopCollector implements Collector
var _ Collector = (*NoopCollector)(nil)

// NewNoopCollector creates a new no-op collector.
func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

// RecordRelay does nothing.
func (c *NoopCollector) RecordRelay(resource string, outcome string) {}

// RecordTokenExchange does nothing.
func (c *NoopCollector) RecordTokenExchange(outcome string) {}

// RecordProviderLatency does nothing.
func (c *NoopCollector) RecordProviderLatency(duration time.Duration) {}
