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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dstur/relaybridge/internal/cli"
	"github.com/dstur/relaybridge/internal/provider/relay"
)

// relaySetCmd represents the relay set command.
var relaySetCmd = &cobra.Command{
	Use:   "set <relay> <state>",
	Short: "Switch one relay",
	Long: `Switch relay 1-8 to a state understood by the controller, optionally
for a number of seconds.
`,
	Example: `  relaybridge relay set 3 on
  relaybridge relay set 3 pulse --seconds 0.5 --port COM3`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			logFatal("invalid relay", fmt.Errorf("relay must be an integer: %q", args[0]))
		}

		params := relay.SetRelayParams{
			Port:    portFlag(cmd),
			Relay:   n,
			State:   args[1],
			Seconds: secondsFlag(cmd),
		}

		runRelayOperation(
			cmd,
			func(ctx context.Context, p relay.Provider) (*relay.Result, error) {
				return p.SetRelay(ctx, params)
			},
			cli.PrintResult,
		)
	},
}

func init() {
	relayCmd.AddCommand(relaySetCmd)

	relaySetCmd.Flags().Float64P("seconds", "s", 0, "Duration of a timed action")
}
