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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dstur/relaybridge/internal/cli"
	"github.com/dstur/relaybridge/internal/locate"
)

// locateCmd represents the locate command.
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the controller path",
	Long: `Resolve the relay controller executable and print its path. When it
cannot be found every checked location is printed with a fix.
`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		locator := newLocator()
		path, err := locator.Resolve()

		var resErr *locate.ResolutionError
		switch {
		case err == nil:
		case errors.As(err, &resErr):
			if jsonOutput {
				_ = cli.PrintJSON(map[string]any{
					"found":   false,
					"binary":  resErr.BinaryName,
					"checked": resErr.Checked,
				})
			} else {
				fmt.Fprintln(os.Stderr, resErr.Error())
			}
			os.Exit(1)
		default:
			logFatal("failed to locate controller", err)
		}

		if jsonOutput {
			if err := cli.PrintJSON(map[string]any{"found": true, "path": path}); err != nil {
				logFatal("failed to print result", err)
			}
			return
		}

		fmt.Println()
		cli.PrintKV("Controller", path)
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
