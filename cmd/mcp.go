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
	"github.com/spf13/cobra"

	"github.com/dstur/relaybridge/internal/mcpserver"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve relay operations as MCP tools over stdio",
	Long: `Serve list_ports, relay_status, set_relay and set_all as MCP tools on
stdin and stdout. Logs go to stderr.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		shutdown := initTracer(cmd.Context())
		defer shutdown()

		s := mcpserver.New(
			logger.With("component", "mcp"),
			newProvider(newLocator()),
			buildVersion().GitVersion,
		)
		if err := s.Serve(); err != nil {
			logFatal("mcp server failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
