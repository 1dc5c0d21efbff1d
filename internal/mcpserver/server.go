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

// Package mcpserver serves the relay operations to MCP clients over stdio.
package mcpserver

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dstur/relaybridge/internal/provider/relay"
	"github.com/dstur/relaybridge/internal/telemetry"
)

var (
	portProperty = map[string]any{
		"type":        "string",
		"description": "Serial port of the relay board. Omit to let the controller choose.",
	}
	stateProperty = map[string]any{
		"type":        "string",
		"description": "Relay state understood by the controller, e.g. on, off, pulse.",
	}
	secondsProperty = map[string]any{
		"type":        "number",
		"minimum":     0,
		"description": "Optional duration of the timed action in seconds.",
	}
)

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	provider relay.Provider,
	version string,
) *Server {
	s := &Server{
		logger:   logger,
		provider: provider,
		mcp:      server.NewMCPServer(telemetry.ServiceName, version),
	}

	for _, t := range s.tools() {
		s.mcp.AddTool(t.def, t.handler)
	}

	return s
}

// Tools returns the definitions of every registered tool.
func (s *Server) Tools() []mcp.Tool {
	tools := s.tools()
	defs := make([]mcp.Tool, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, t.def)
	}

	return defs
}

// Serve serves MCP over stdin and stdout until stdin closes.
func (s *Server) Serve() error {
	s.logger.Info("serving mcp over stdio", slog.Int("tools", len(s.tools())))

	return server.ServeStdio(s.mcp)
}

func (s *Server) tools() []tool {
	return []tool{
		{
			def: mcp.Tool{
				Name:        ToolListPorts,
				Description: "List serial ports the relay controller can see.",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			handler: s.handleListPorts,
		},
		{
			def: mcp.Tool{
				Name:        ToolStatus,
				Description: "Query the state of one relay, or of all relays with target \"all\".",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"target": map[string]any{
							"type":        "string",
							"description": "Relay number 1-8, or all.",
						},
						"port": portProperty,
					},
					Required: []string{"target"},
				},
			},
			handler: s.handleStatus,
		},
		{
			def: mcp.Tool{
				Name:        ToolSetRelay,
				Description: "Switch one relay of the 8-channel board.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"relay": map[string]any{
							"type":    "integer",
							"minimum": 1,
							"maximum": 8,
						},
						"state":   stateProperty,
						"seconds": secondsProperty,
						"port":    portProperty,
					},
					Required: []string{"relay", "state"},
				},
			},
			handler: s.handleSetRelay,
		},
		{
			def: mcp.Tool{
				Name:        ToolSetAll,
				Description: "Switch every relay of the board.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"state":   stateProperty,
						"seconds": secondsProperty,
						"port":    portProperty,
					},
					Required: []string{"state"},
				},
			},
			handler: s.handleSetAll,
		},
	}
}

// toolResult turns an operation outcome into a tool result. Operation
// failures are reported to the client as tool errors, not protocol errors.
func (s *Server) toolResult(
	ctx context.Context,
	result *relay.Result,
	err error,
) (*mcp.CallToolResult, error) {
	if err != nil {
		s.logger.WarnContext(
			ctx,
			"tool call failed",
			slog.String("stage", string(relay.StageOf(err))),
			slog.String("error", err.Error()),
		)

		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultStructuredOnly(result), nil
}
