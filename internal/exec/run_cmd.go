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

package exec

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// replacementChar substitutes every invalid UTF-8 sequence in captured output.
const replacementChar = "\uFFFD"

// RunCmd executes path with args and captures stdout and stderr separately.
// It blocks until the process exits; there is no timeout.
func (e *Exec) RunCmd(
	path string,
	args []string,
) (*CmdResult, error) {
	cmd := exec.Command(path, args...)
	if e.launch != nil {
		e.launch(cmd)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		e.logger.Debug(
			"exec launch failed",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, &LaunchError{Path: path, Err: err}
	}

	code := exitCodeOf(cmd.ProcessState)
	result := &CmdResult{
		OK:         err == nil,
		ExitCode:   code,
		Stdout:     strings.ToValidUTF8(stdout.String(), replacementChar),
		Stderr:     strings.ToValidUTF8(stderr.String(), replacementChar),
		DurationMs: duration.Milliseconds(),
	}

	logCode := -1
	if code != nil {
		logCode = *code
	}

	e.logger.Debug(
		"exec",
		slog.String("command", strings.Join(cmd.Args, " ")),
		slog.Bool("ok", result.OK),
		slog.Int("exit_code", logCode),
		slog.Int64("duration_ms", result.DurationMs),
	)

	return result, nil
}

// exitCodeOf returns nil when the process did not exit normally.
func exitCodeOf(
	state *os.ProcessState,
) *int {
	if state == nil {
		return nil
	}

	code := state.ExitCode()
	if code < 0 {
		return nil
	}

	return &code
}
