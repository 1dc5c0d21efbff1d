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

// Package relay translates relay operations into relay controller
// invocations.
package relay

import (
	"context"
)

// Provider implements the relay operations offered to front ends.
//
// Every method blocks until the controller exits. The context carries trace
// and log correlation only; it does not cancel the controller.
type Provider interface {
	// ListPorts lists serial ports as JSON.
	ListPorts(ctx context.Context) (*Result, error)
	// Status queries a relay or "all" relays.
	Status(ctx context.Context, params StatusParams) (*Result, error)
	// SetRelay switches one relay, optionally for a duration.
	SetRelay(ctx context.Context, params SetRelayParams) (*Result, error)
	// SetAll switches every relay, optionally for a duration.
	SetAll(ctx context.Context, params SetAllParams) (*Result, error)
}

// Operation names a controller subcommand.
type Operation string

// Controller subcommands.
const (
	OpListPorts Operation = "list-ports"
	OpStatus    Operation = "status"
	OpSetRelay  Operation = "relay"
	OpSetAll    Operation = "all"
)

// StatusParams contains parameters for a status query.
type StatusParams struct {
	// Port selects the controller; empty lets the controller choose.
	Port string
	// Target is forwarded verbatim, e.g. "3" or "all".
	Target string
}

// SetRelayParams contains parameters for switching one relay.
type SetRelayParams struct {
	// Port selects the controller; empty lets the controller choose.
	Port string
	// Relay is the relay number.
	Relay int `validate:"relay_number"`
	// State is forwarded verbatim, e.g. "on", "off" or "pulse".
	State string
	// Seconds is the optional timed-action duration.
	Seconds *float64 `validate:"omitempty,duration"`
}

// SetAllParams contains parameters for switching every relay.
type SetAllParams struct {
	// Port selects the controller; empty lets the controller choose.
	Port string
	// State is forwarded verbatim.
	State string
	// Seconds is the optional timed-action duration.
	Seconds *float64 `validate:"omitempty,duration"`
}

// Result contains the output of a controller invocation.
type Result struct {
	// OK is true iff the controller exited with status zero.
	OK bool `json:"ok"`
	// ExitCode is absent when the controller ended without an exit code.
	ExitCode *int `json:"code"`
	// Stdout is the controller's standard output, unparsed.
	Stdout string `json:"stdout"`
	// Stderr is the controller's standard error, unparsed.
	Stderr string `json:"stderr"`
}
