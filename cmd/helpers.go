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
	"context"

	"github.com/avfs/avfs/vfs/osfs"

	"github.com/dstur/relaybridge/internal/cli"
	"github.com/dstur/relaybridge/internal/exec"
	"github.com/dstur/relaybridge/internal/locate"
	"github.com/dstur/relaybridge/internal/provider/relay"
	"github.com/dstur/relaybridge/internal/telemetry"
)

// logFatal logs msg with err and exits.
func logFatal(
	msg string,
	err error,
	kvPairs ...any,
) {
	cli.LogFatal(logger, msg, err, kvPairs...)
}

// newLocator builds the controller resolver from config. One resolver is
// built per process so its cached path lives as long as the process.
func newLocator() *locate.Resolver {
	return locate.New(
		logger.With("component", "locate"),
		osfs.New(),
		locate.Options{
			BinaryName:  appConfig.Controller.Binary,
			Path:        appConfig.Controller.Path,
			AppDir:      appConfig.Controller.AppDir,
			InstallRoot: appConfig.Controller.InstallRoot,
		},
	)
}

// newProvider wires the relay operations onto locator.
func newProvider(
	locator locate.Locator,
) relay.Provider {
	return relay.New(
		logger.With("component", "relay"),
		locator,
		exec.New(logger.With("component", "exec")),
	)
}

// initTracer installs the configured tracer and returns its shutdown.
func initTracer(
	ctx context.Context,
) func() {
	shutdown, err := telemetry.InitTracer(ctx, appConfig.Telemetry.Tracing)
	if err != nil {
		logFatal("failed to initialize tracer", err)
	}

	return func() {
		_ = shutdown(context.Background())
	}
}
