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
	"errors"
	"fmt"
)

// Stage identifies where an operation failed.
type Stage string

// Failure stages, in the order an operation passes through them.
const (
	StageValidate Stage = "validate"
	StageResolve  Stage = "resolve"
	StageLaunch   Stage = "launch"
)

// ValidationError reports caller input outside the operation's contract.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid input: " + e.Message
}

// OperationError tags a failure with the operation and stage it came from.
type OperationError struct {
	Op    Operation
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Stage, e.Err)
}

// Unwrap returns the stage's underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// StageOf returns the stage err was tagged with, or "" for untagged errors.
func StageOf(
	err error,
) Stage {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Stage
	}

	return ""
}
