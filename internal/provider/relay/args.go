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

package relay

import (
	"strconv"
)

// Command is one controller invocation before it is rendered to arguments.
type Command struct {
	Operation Operation
	Port      string
	Target    string
	Relay     int
	State     string
	Seconds   *float64
}

// BuildArgs renders cmd in the controller's CLI grammar:
//
//	[--port <id>] list-ports --json
//	[--port <id>] status <target>
//	[--port <id>] relay <n> <state> [--seconds <s>]
//	[--port <id>] all <state> [--seconds <s>]
func BuildArgs(
	cmd Command,
) []string {
	args := make([]string, 0, 7)
	if cmd.Port != "" {
		args = append(args, "--port", cmd.Port)
	}

	switch cmd.Operation {
	case OpListPorts:
		args = append(args, string(OpListPorts), "--json")
	case OpStatus:
		args = append(args, string(OpStatus), cmd.Target)
	case OpSetRelay:
		args = append(args, string(OpSetRelay), strconv.Itoa(cmd.Relay), cmd.State)
		args = appendSeconds(args, cmd.Seconds)
	case OpSetAll:
		args = append(args, string(OpSetAll), cmd.State)
		args = appendSeconds(args, cmd.Seconds)
	}

	return args
}

func appendSeconds(
	args []string,
	seconds *float64,
) []string {
	if seconds == nil {
		return args
	}

	return append(args, "--seconds", FormatSeconds(*seconds))
}

// FormatSeconds renders s as a plain decimal with no exponent and no
// trailing zeros, independent of the host locale.
func FormatSeconds(
	s float64,
) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
