/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package poller

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/carverauto/chargeradar/pkg/poller"

	metricCyclesTotal   = "chargeradar_poll_cycles_total"
	metricStaleTotal    = "chargeradar_poll_stale_results_total"
	metricFailuresTotal = "chargeradar_poll_fetch_failures_total"
	metricCycleLatency  = "chargeradar_poll_cycle_latency_seconds"
)

var (
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	meterOnce sync.Once
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	cycleCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	staleCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	failureCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	latencyHistogram metric.Float64Histogram
)

func initMeter() {
	meter := otel.Meter(meterName)

	cycles, err := meter.Int64Counter(
		metricCyclesTotal,
		metric.WithDescription("Poll cycles started"),
	)
	if err != nil {
		otel.Handle(err)
	}
	cycleCounter = cycles

	stale, err := meter.Int64Counter(
		metricStaleTotal,
		metric.WithDescription("Category results dropped because a newer cycle was already applied"),
	)
	if err != nil {
		otel.Handle(err)
	}
	staleCounter = stale

	failures, err := meter.Int64Counter(
		metricFailuresTotal,
		metric.WithDescription("Category fetches that failed"),
	)
	if err != nil {
		otel.Handle(err)
	}
	failureCounter = failures

	hist, err := meter.Float64Histogram(
		metricCycleLatency,
		metric.WithDescription("Time for all categories of a cycle to resolve"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}
	latencyHistogram = hist
}

func recordCycle(ctx context.Context, trigger string) {
	meterOnce.Do(initMeter)
	if cycleCounter == nil {
		return
	}

	cycleCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("trigger", trigger)))
}

func recordStale(ctx context.Context, c Category) {
	meterOnce.Do(initMeter)
	if staleCounter == nil {
		return
	}

	staleCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("category", c.String())))
}

func recordFetchFailure(ctx context.Context, c Category) {
	meterOnce.Do(initMeter)
	if failureCounter == nil {
		return
	}

	failureCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("category", c.String())))
}

func recordCycleLatency(ctx context.Context, d time.Duration) {
	meterOnce.Do(initMeter)
	if latencyHistogram == nil {
		return
	}

	latencyHistogram.Record(ctx, d.Seconds())
}
