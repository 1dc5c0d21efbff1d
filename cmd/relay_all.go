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

	"github.com/spf13/cobra"

	"github.com/dstur/relaybridge/internal/cli"
	"github.com/dstur/relaybridge/internal/provider/relay"
)

// relayAllCmd represents the relay all command.
var relayAllCmd = &cobra.Command{
	Use:   "all <state>",
	Short: "Switch every relay",
	Long: `Switch every relay to a state understood by the controller, optionally
for a number of seconds.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		params := relay.SetAllParams{
			Port:    portFlag(cmd),
			State:   args[0],
			Seconds: secondsFlag(cmd),
		}

		runRelayOperation(
			cmd,
			func(ctx context.Context, p relay.Provider) (*relay.Result, error) {
				return p.SetAll(ctx, params)
			},
			cli.PrintResult,
		)
	},
}

func init() {
	relayCmd.AddCommand(relayAllCmd)

	relayAllCmd.Flags().Float64P("seconds", "s", 0, "Duration of a timed action")
}
