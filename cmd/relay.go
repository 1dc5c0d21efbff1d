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
	"os"

	"github.com/spf13/cobra"

	"github.com/dstur/relaybridge/internal/cli"
	"github.com/dstur/relaybridge/internal/provider/relay"
)

// relayCmd represents the relay command.
var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Run relay operations",
	Long: `Run a relay operation through the controller and print its result.

The command exits with the controller's exit code when the controller
reports failure.
`,
}

// relayOperation runs one provider call.
type relayOperation func(
	ctx context.Context,
	provider relay.Provider,
) (*relay.Result, error)

// runRelayOperation runs op, prints its result and mirrors a failed
// controller exit code.
func runRelayOperation(
	cmd *cobra.Command,
	op relayOperation,
	render func(result *relay.Result),
) {
	ctx := cmd.Context()
	shutdown := initTracer(ctx)
	defer shutdown()

	result, err := op(ctx, newProvider(newLocator()))
	if err != nil {
		logFatal("relay operation failed", err, "stage", string(relay.StageOf(err)))
	}

	if jsonOutput {
		if err := cli.PrintJSON(result); err != nil {
			logFatal("failed to print result", err)
		}
	} else {
		render(result)
	}

	if !result.OK {
		shutdown()
		code := 1
		if result.ExitCode != nil && *result.ExitCode != 0 {
			code = *result.ExitCode
		}
		os.Exit(code)
	}
}

// portFlag returns the persistent --port value.
func portFlag(
	cmd *cobra.Command,
) string {
	port, _ := cmd.Flags().GetString("port")

	return port
}

// secondsFlag returns --seconds when it was given.
func secondsFlag(
	cmd *cobra.Command,
) *float64 {
	if !cmd.Flags().Changed("seconds") {
		return nil
	}
	seconds, _ := cmd.Flags().GetFloat64("seconds")

	return &seconds
}

func init() {
	rootCmd.AddCommand(relayCmd)

	relayCmd.PersistentFlags().
		StringP("port", "p", "", "Serial port of the relay board (controller default when empty)")
}
