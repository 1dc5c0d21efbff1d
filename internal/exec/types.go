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

// Package exec runs the relay controller as a child process.
package exec

import (
	"fmt"
	"log/slog"
)

// Manager runs external commands.
type Manager interface {
	// RunCmd executes the binary at path with args, waits for it to exit and
	// returns its captured output. A non-zero exit status is reported through
	// the result, not as an error.
	RunCmd(
		path string,
		args []string,
	) (*CmdResult, error)
}

// Exec runs commands on the local system.
type Exec struct {
	logger *slog.Logger
	launch LaunchStrategy
}

// Option configures an Exec.
type Option func(*Exec)

// WithLaunchStrategy replaces the platform default launch strategy.
func WithLaunchStrategy(
	launch LaunchStrategy,
) Option {
	return func(e *Exec) {
		e.launch = launch
	}
}

// New factory to create a new Exec instance.
func New(
	logger *slog.Logger,
	opts ...Option,
) *Exec {
	e := &Exec{
		logger: logger,
		launch: DefaultLaunchStrategy(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CmdResult is the outcome of a command that ran to completion.
type CmdResult struct {
	// OK is true iff the process exited with status zero.
	OK bool `json:"ok"`
	// ExitCode is nil when the process ended without a normal exit code
	// (for example, killed by a signal).
	ExitCode *int `json:"code"`
	// Stdout is the full standard output, with invalid UTF-8 replaced.
	Stdout string `json:"stdout"`
	// Stderr is the full standard error, with invalid UTF-8 replaced.
	Stderr string `json:"stderr"`
	// DurationMs is the wall time of the run in milliseconds.
	DurationMs int64 `json:"-"`
}

// LaunchError reports that the binary could not be started at all.
type LaunchError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *LaunchError) Unwrap() error {
	return e.Err
}
