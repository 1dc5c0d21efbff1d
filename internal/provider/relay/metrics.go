// Copyright (c) 2026 The relaybridge Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package relay

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Invocation outcomes recorded on the relay.invocations counter.
const (
	outcomeOK       = "ok"
	outcomeNonZero  = "nonzero_exit"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeLaunch   = "launch_error"
)

type metrics struct {
	invocations metric.Int64Counter
	duration    metric.Float64Histogram
}

// newMetrics registers instruments on the global meter provider. Instrument
// creation errors leave the instrument nil and are logged, never fatal.
func newMetrics(
	logger *slog.Logger,
) *metrics {
	meter := otel.Meter(instrumentationName)
	m := &metrics{}

	var err error
	m.invocations, err = meter.Int64Counter(
		"relay.invocations",
		metric.WithDescription("Relay operations by outcome."),
	)
	if err != nil {
		logger.Warn("creating invocation counter", slog.String("error", err.Error()))
	}

	m.duration, err = meter.Float64Histogram(
		"relay.duration",
		metric.WithDescription("Relay operation wall time."),
		metric.WithUnit("s"),
	)
	if err != nil {
		logger.Warn("creating duration histogram", slog.String("error", err.Error()))
	}

	return m
}

func (m *metrics) record(
	ctx context.Context,
	op Operation,
	outcome string,
	elapsed time.Duration,
) {
	attrs := metric.WithAttributes(
		attribute.String("operation", string(op)),
		attribute.String("outcome", outcome),
	)

	if m.invocations != nil {
		m.invocations.Add(ctx, 1, attrs)
	}
	if m.duration != nil {
		m.duration.Record(ctx, elapsed.Seconds(), attrs)
	}
}

func outcomeOf(
	result *Result,
	err error,
) string {
	switch StageOf(err) {
	case StageValidate:
		return outcomeInvalid
	case StageResolve:
		return outcomeNotFound
	case StageLaunch:
		return outcomeLaunch
	}

	if result != nil && !result.OK {
		return outcomeNonZero
	}

	return outcomeOK
}
