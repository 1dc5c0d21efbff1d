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

package telemetry_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/dstur/relaybridge/internal/telemetry"
)

type SlogPublicTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *SlogPublicTestSuite) SetupTest() {
	s.ctx = context.Background()

	otel.SetTracerProvider(sdktrace.NewTracerProvider())
}

func (s *SlogPublicTestSuite) TestNewTraceHandler() {
	tests := []struct {
		name         string
		setupCtx     func() context.Context
		validateFunc func(output string)
	}{
		{
			name: "when active span adds trace_id and span_id",
			setupCtx: func() context.Context {
				ctx, _ := otel.Tracer("test").Start(s.ctx, "relay.status")

				return ctx
			},
			validateFunc: func(output string) {
				s.Contains(output, "trace_id=")
				s.Contains(output, "span_id=")
			},
		},
		{
			name: "when no active span does not add trace fields",
			setupCtx: func() context.Context {
				return context.Background()
			},
			validateFunc: func(output string) {
				s.NotContains(output, "trace_id=")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			var buf bytes.Buffer
			inner := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			logger := slog.New(telemetry.NewTraceHandler(inner))

			logger.InfoContext(tc.setupCtx(), "invoking controller")

			tc.validateFunc(buf.String())
		})
	}
}

func (s *SlogPublicTestSuite) TestTraceHandlerWithAttrsAndGroup() {
	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler := telemetry.NewTraceHandler(inner).
		WithAttrs([]slog.Attr{slog.String("operation", "relay")}).
		WithGroup("controller")

	ctx, span := otel.Tracer("test").Start(s.ctx, "relay.relay")
	defer span.End()

	slog.New(handler).InfoContext(ctx, "exited", slog.Int("code", 0))

	out := buf.String()
	s.Contains(out, "operation=relay")
	s.Contains(out, "controller.code=0")
	s.Contains(out, trace.SpanContextFromContext(ctx).TraceID().String())
}

func (s *SlogPublicTestSuite) TestTraceHandlerEnabled() {
	inner := slog.NewTextHandler(nil, &slog.HandlerOptions{Level: slog.LevelWarn})
	handler := telemetry.NewTraceHandler(inner)

	s.False(handler.Enabled(s.ctx, slog.LevelDebug))
	s.True(handler.Enabled(s.ctx, slog.LevelWarn))
}

func (s *SlogPublicTestSuite) TestNewLogger() {
	tests := []struct {
		name        string
		opts        telemetry.LogOptions
		logDebug    bool
		contains    []string
		notContains []string
	}{
		{
			name:     "when json is selected writes json",
			opts:     telemetry.LogOptions{JSON: true},
			contains: []string{`"msg":"resolved controller"`},
		},
		{
			name:     "when tint is selected without colour writes text",
			opts:     telemetry.LogOptions{NoColor: true},
			contains: []string{"resolved controller"},
		},
		{
			name:        "when debug is off debug records are dropped",
			opts:        telemetry.LogOptions{NoColor: true},
			logDebug:    true,
			notContains: []string{"probe"},
		},
		{
			name:     "when debug is on debug records are written",
			opts:     telemetry.LogOptions{NoColor: true, Debug: true},
			logDebug: true,
			contains: []string{"probe"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			var buf bytes.Buffer
			logger := telemetry.NewLogger(&buf, tc.opts)

			if tc.logDebug {
				logger.Debug("probe")
			} else {
				logger.Info("resolved controller")
			}

			for _, c := range tc.contains {
				s.Contains(buf.String(), c)
			}
			for _, c := range tc.notContains {
				s.NotContains(buf.String(), c)
			}
		})
	}
}

func TestSlogPublicTestSuite(t *testing.T) {
	suite.Run(t, new(SlogPublicTestSuite))
}
