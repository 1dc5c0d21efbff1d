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

	"github.com/spf13/cobra"

	"github.com/dstur/relaybridge/internal/cli"
	"github.com/dstur/relaybridge/internal/provider/relay"
)

// relayPortsCmd represents the relay ports command.
var relayPortsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports",
	Long: `List the serial ports the controller can see. The controller enumerates
ports itself, so --port is rejected here.
`,
	Args:    cobra.NoArgs,
	PreRunE: rejectPortFlag,
	Run: func(cmd *cobra.Command, _ []string) {
		runRelayOperation(
			cmd,
			func(ctx context.Context, p relay.Provider) (*relay.Result, error) {
				return p.ListPorts(ctx)
			},
			func(result *relay.Result) {
				section, ok := cli.PortsSection(result.Stdout)
				if !result.OK || !ok {
					cli.PrintResult(result)
					return
				}
				cli.PrintCompactTable([]cli.Section{section})
			},
		)
	},
}

// rejectPortFlag fails when --port was given to a command that cannot
// forward it.
func rejectPortFlag(
	cmd *cobra.Command,
	_ []string,
) error {
	if cmd.Flags().Changed("port") {
		return fmt.Errorf("--port is not supported by %q", cmd.CommandPath())
	}

	return nil
}

func init() {
	relayCmd.AddCommand(relayPortsCmd)
}
