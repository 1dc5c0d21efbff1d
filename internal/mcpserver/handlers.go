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

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dstur/relaybridge/internal/provider/relay"
)

func (s *Server) handleListPorts(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	result, err := s.provider.ListPorts(ctx)

	return s.toolResult(ctx, result, err)
}

func (s *Server) handleStatus(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	target, err := request.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.provider.Status(ctx, relay.StatusParams{
		Port:   request.GetString("port", ""),
		Target: target,
	})

	return s.toolResult(ctx, result, err)
}

func (s *Server) handleSetRelay(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	n, err := relayNumber(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	state, err := request.RequireString("state")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	seconds, err := optionalSeconds(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.provider.SetRelay(ctx, relay.SetRelayParams{
		Port:    request.GetString("port", ""),
		Relay:   n,
		State:   state,
		Seconds: seconds,
	})

	return s.toolResult(ctx, result, err)
}

func (s *Server) handleSetAll(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	state, err := request.RequireString("state")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	seconds, err := optionalSeconds(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.provider.SetAll(ctx, relay.SetAllParams{
		Port:    request.GetString("port", ""),
		State:   state,
		Seconds: seconds,
	})

	return s.toolResult(ctx, result, err)
}

// optionalSeconds returns nil when seconds is absent.
func optionalSeconds(
	request mcp.CallToolRequest,
) (*float64, error) {
	if _, ok := request.GetArguments()["seconds"]; !ok {
		return nil, nil
	}

	v, err := request.RequireFloat("seconds")
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// relayNumber returns the relay argument. Fractional or non-numeric values
// are rejected rather than truncated.
func relayNumber(
	request mcp.CallToolRequest,
) (int, error) {
	raw, ok := request.GetArguments()["relay"]
	if !ok {
		return 0, errors.New(`required argument "relay" not found`)
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("argument \"relay\" must be a whole number, got %v", v)
		}

		return int(v), nil
	default:
		return 0, fmt.Errorf("argument \"relay\" must be a number, got %T", raw)
	}
}
