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

package controller

import (
	"log/slog"

	"github.com/dstur/relaybridge/internal/provider/relay"
)

// Controller implementation of the relay HTTP operations.
type Controller struct {
	// Provider runs the relay operations.
	Provider relay.Provider
	logger   *slog.Logger
}

// SetRequest is the body of both relay mutation routes.
type SetRequest struct {
	// State is forwarded verbatim to the controller.
	State string `json:"state"`
	// Seconds is the optional timed-action duration.
	Seconds *float64 `json:"seconds,omitempty"`
	// Port selects the controller; empty lets the controller choose.
	Port string `json:"port,omitempty"`
}

// ErrorResponse is the body returned when an operation fails before the
// controller produced a result.
type ErrorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}
