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

package locate

import (
	"fmt"
	"strings"
)

// ResolutionError reports that no candidate location held the controller.
type ResolutionError struct {
	BinaryName string
	Checked    []string
}

// Error lists every checked path, one per line, followed by a fix hint.
func (e *ResolutionError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s not found. Checked:\n", e.BinaryName)
	for _, path := range e.Checked {
		fmt.Fprintf(&b, "  - %s\n", path)
	}

	fmt.Fprintf(
		&b,
		"\nFix: place %[1]s in <install root>/bin/%[1]s (recommended) and declare bin/%[1]s "+
			"as an external binary in your bundler configuration, or place %[1]s next to "+
			"the running executable.",
		e.BinaryName,
	)

	return b.String()
}
