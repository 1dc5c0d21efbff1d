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
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/suite"

	"github.com/dstur/relaybridge/internal/provider/relay"
	"github.com/dstur/relaybridge/internal/provider/relay/mocks"
)

type ServerTestSuite struct {
	suite.Suite

	mockCtrl     *gomock.Controller
	mockProvider *mocks.MockProvider
	server       *Server
	ctx          context.Context
}

func (s *ServerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProvider = mocks.NewMockProvider(s.mockCtrl)
	s.server = New(slog.New(slog.NewTextHandler(io.Discard, nil)), s.mockProvider, "0.1.0")
	s.ctx = context.Background()
}

func (s *ServerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func callRequest(
	name string,
	args map[string]any,
) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func errorText(
	res *mcp.CallToolResult,
) string {
	for _, c := range res.Content {
		if t, ok := c.(mcp.TextContent); ok {
			return t.Text
		}
	}

	return ""
}

func (s *ServerTestSuite) TestTools() {
	names := []string{}
	for _, t := range s.server.Tools() {
		names = append(names, t.Name)
	}

	s.Equal([]string{ToolListPorts, ToolStatus, ToolSetRelay, ToolSetAll}, names)
}

func (s *ServerTestSuite) TestHandleListPorts() {
	want := &relay.Result{OK: true, ExitCode: intPtr(0), Stdout: "[]"}
	s.mockProvider.EXPECT().ListPorts(gomock.Any()).Return(want, nil)

	res, err := s.server.handleListPorts(s.ctx, callRequest(ToolListPorts, nil))

	s.NoError(err)
	s.False(res.IsError)
	s.Equal(want, res.StructuredContent)
}

func (s *ServerTestSuite) TestHandleStatus() {
	tests := []struct {
		name       string
		args       map[string]any
		setupMock  func()
		wantError  bool
		errContain string
	}{
		{
			name: "when target and port given forwards them",
			args: map[string]any{"target": "all", "port": "COM3"},
			setupMock: func() {
				s.mockProvider.EXPECT().
					Status(gomock.Any(), relay.StatusParams{Port: "COM3", Target: "all"}).
					Return(&relay.Result{OK: true, ExitCode: intPtr(0)}, nil)
			},
		},
		{
			name:       "when target missing returns tool error",
			args:       map[string]any{},
			setupMock:  func() {},
			wantError:  true,
			errContain: "target",
		},
		{
			name: "when controller not found returns tool error",
			args: map[string]any{"target": "3"},
			setupMock: func() {
				s.mockProvider.EXPECT().
					Status(gomock.Any(), relay.StatusParams{Target: "3"}).
					Return(nil, &relay.OperationError{
						Op:    relay.OpStatus,
						Stage: relay.StageResolve,
						Err:   errors.New("relay not found"),
					})
			},
			wantError:  true,
			errContain: "status resolve failed",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			res, err := s.server.handleStatus(s.ctx, callRequest(ToolStatus, tc.args))

			s.NoError(err)
			s.Equal(tc.wantError, res.IsError)
			if tc.wantError {
				s.Contains(errorText(res), tc.errContain)
			}
		})
	}
}

func (s *ServerTestSuite) TestHandleSetRelay() {
	tests := []struct {
		name       string
		args       map[string]any
		setupMock  func()
		wantError  bool
		errContain string
	}{
		{
			name: "when seconds given forwards it",
			args: map[string]any{"relay": float64(3), "state": "on", "seconds": 2.5},
			setupMock: func() {
				s.mockProvider.EXPECT().
					SetRelay(gomock.Any(), relay.SetRelayParams{
						Relay:   3,
						State:   "on",
						Seconds: floatPtr(2.5),
					}).
					Return(&relay.Result{OK: true, ExitCode: intPtr(0)}, nil)
			},
		},
		{
			name: "when seconds absent forwards nil",
			args: map[string]any{"relay": float64(8), "state": "off", "port": "/dev/ttyUSB0"},
			setupMock: func() {
				s.mockProvider.EXPECT().
					SetRelay(gomock.Any(), relay.SetRelayParams{
						Port:  "/dev/ttyUSB0",
						Relay: 8,
						State: "off",
					}).
					Return(&relay.Result{OK: true, ExitCode: intPtr(0)}, nil)
			},
		},
		{
			name:      "when relay missing returns tool error",
			args:      map[string]any{"state": "on"},
			setupMock: func() {},
			wantError: true,
		},
		{
			name: "when relay given as int forwards it",
			args: map[string]any{"relay": 5, "state": "pulse"},
			setupMock: func() {
				s.mockProvider.EXPECT().
					SetRelay(gomock.Any(), relay.SetRelayParams{Relay: 5, State: "pulse"}).
					Return(&relay.Result{OK: true, ExitCode: intPtr(0)}, nil)
			},
		},
		{
			name:       "when relay is fractional returns tool error without switching",
			args:       map[string]any{"relay": 2.9, "state": "on"},
			setupMock:  func() {},
			wantError:  true,
			errContain: "whole number",
		},
		{
			name:       "when relay is a string returns tool error without switching",
			args:       map[string]any{"relay": "3", "state": "on"},
			setupMock:  func() {},
			wantError:  true,
			errContain: "must be a number",
		},
		{
			name:       "when relay is out of int range returns tool error",
			args:       map[string]any{"relay": 1e300, "state": "on"},
			setupMock:  func() {},
			wantError:  true,
			errContain: "whole number",
		},
		{
			name:      "when seconds is not a number returns tool error",
			args:      map[string]any{"relay": float64(1), "state": "on", "seconds": "soon"},
			setupMock: func() {},
			wantError: true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			res, err := s.server.handleSetRelay(s.ctx, callRequest(ToolSetRelay, tc.args))

			s.NoError(err)
			s.Equal(tc.wantError, res.IsError)
			if tc.errContain != "" {
				s.Contains(errorText(res), tc.errContain)
			}
		})
	}
}

func (s *ServerTestSuite) TestHandleSetAll() {
	tests := []struct {
		name      string
		args      map[string]any
		setupMock func()
		wantError bool
	}{
		{
			name: "when state given forwards it",
			args: map[string]any{"state": "off"},
			setupMock: func() {
				s.mockProvider.EXPECT().
					SetAll(gomock.Any(), relay.SetAllParams{State: "off"}).
					Return(&relay.Result{OK: false, ExitCode: intPtr(1)}, nil)
			},
		},
		{
			name:      "when state missing returns tool error",
			args:      map[string]any{},
			setupMock: func() {},
			wantError: true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			res, err := s.server.handleSetAll(s.ctx, callRequest(ToolSetAll, tc.args))

			s.NoError(err)
			s.Equal(tc.wantError, res.IsError)
		})
	}
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
