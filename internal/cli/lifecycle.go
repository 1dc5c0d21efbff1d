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
package cli

import (
	"context"
	"log/slog"
	"time"
)

// ShutdownTimeout bounds the server stop and every cleanup step.
const ShutdownTimeout = 10 * time.Second

// Lifecycle is a server started in the background and stopped on shutdown.
type Lifecycle interface {
	// Start starts the server without blocking.
	Start()
	// Stop gracefully shuts down the server.
	Stop(ctx context.Context)
}

// Cleanup is a named step run after the server stops, such as flushing
// the meter or tracer.
type Cleanup struct {
	Name string
	Fn   func(ctx context.Context) error
}

// RunServer blocks until ctx is cancelled, stops server, then runs the
// cleanups in order. A failing cleanup is logged and the rest still run.
func RunServer(
	ctx context.Context,
	logger *slog.Logger,
	server Lifecycle,
	cleanups ...Cleanup,
) {
	<-ctx.Done()

	logger.Info("shutting down", slog.String("reason", context.Cause(ctx).Error()))

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		ShutdownTimeout,
	)
	defer cancel()

	server.Stop(shutdownCtx)

	failed := 0
	for _, c := range cleanups {
		if err := c.Fn(shutdownCtx); err != nil {
			failed++
			logger.Warn(
				"cleanup failed",
				slog.String("step", c.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		logger.Debug("cleanup done", slog.String("step", c.Name))
	}

	logger.Info("shutdown complete", slog.Int("failed_cleanups", failed))
}
