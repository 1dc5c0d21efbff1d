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

package cmd

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/dstur/relaybridge/internal/api"
	"github.com/dstur/relaybridge/internal/cli"
	"github.com/dstur/relaybridge/internal/locate"
	"github.com/dstur/relaybridge/internal/provider/relay"
	"github.com/dstur/relaybridge/internal/telemetry"
)

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetRelayHandler returns relay operation handlers for registration.
	GetRelayHandler(provider relay.Provider) []func(e *echo.Echo)
	// GetHealthHandler returns health handler for registration.
	GetHealthHandler(
		locator locate.Locator,
		startTime time.Time,
		version string,
	) []func(e *echo.Echo)
	// GetMetricsHandler returns Prometheus metrics handler for registration.
	GetMetricsHandler(metricsHandler http.Handler, path string) []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers []func(e *echo.Echo))
}

// registerAPIHandlers mounts every route on sm.
func registerAPIHandlers(
	sm ServerManager,
	locator locate.Locator,
	meter *telemetry.Meter,
) {
	handlers := make([]func(e *echo.Echo), 0, 3)
	handlers = append(handlers, sm.GetRelayHandler(newProvider(locator))...)
	handlers = append(handlers, sm.GetHealthHandler(locator, time.Now(), buildVersion().GitVersion)...)
	handlers = append(handlers, sm.GetMetricsHandler(meter.Handler, meter.Path)...)

	sm.RegisterHandlers(handlers)
}

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local HTTP API",
	Long: `Serve the relay operations over a local HTTP API for a web or desktop
front end. Every response carries the controller result as JSON.

  GET  /api/v1/ports
  GET  /api/v1/status/:target?port=
  PUT  /api/v1/relays/:relay     {"state": "on", "seconds": 1.5, "port": "COM3"}
  PUT  /api/v1/relays            {"state": "off"}
  GET  /health, /health/detailed, /metrics
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		shutdownTracer, err := telemetry.InitTracer(ctx, appConfig.Telemetry.Tracing)
		if err != nil {
			logFatal("failed to initialize tracer", err)
		}

		meter, err := telemetry.InitMeter(appConfig.Telemetry.Metrics)
		if err != nil {
			logFatal("failed to initialize meter", err)
		}

		log := logger.With("component", "api")
		var sm ServerManager = api.New(appConfig, log)
		registerAPIHandlers(sm, newLocator(), meter)

		sm.Start()
		cli.RunServer(
			ctx,
			log,
			sm,
			cli.Cleanup{Name: "meter", Fn: meter.Shutdown},
			cli.Cleanup{Name: "tracer", Fn: shutdownTracer},
		)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
