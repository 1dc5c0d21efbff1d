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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dstur/relaybridge/internal/config"
)

type ConfigPublicTestSuite struct {
	suite.Suite
}

func (s *ConfigPublicTestSuite) TestValidate() {
	tests := []struct {
		name        string
		config      config.Config
		expectError bool
		errContains string
	}{
		{
			name: "valid config",
			config: config.Config{
				Controller: config.Controller{InstallRoot: "/opt/relaybridge"},
				API:        config.API{Host: "127.0.0.1", Port: 8787},
			},
			expectError: false,
		},
		{
			name: "valid config with otlp tracing",
			config: config.Config{
				API: config.API{Port: 8787},
				Telemetry: config.Telemetry{
					Tracing: config.TracingConfig{
						Enabled:      true,
						Exporter:     "otlp",
						OTLPEndpoint: "localhost:4317",
					},
				},
			},
			expectError: false,
		},
		{
			name:        "port out of range",
			config:      config.Config{API: config.API{Port: 70000}},
			expectError: true,
			errContains: "Port",
		},
		{
			name:        "missing port",
			config:      config.Config{},
			expectError: true,
			errContains: "Port",
		},
		{
			name: "unsupported exporter",
			config: config.Config{
				API: config.API{Port: 8787},
				Telemetry: config.Telemetry{
					Tracing: config.TracingConfig{Exporter: "jaeger"},
				},
			},
			expectError: true,
			errContains: "Exporter",
		},
		{
			name: "otlp without endpoint",
			config: config.Config{
				API: config.API{Port: 8787},
				Telemetry: config.Telemetry{
					Tracing: config.TracingConfig{Exporter: "otlp"},
				},
			},
			expectError: true,
			errContains: "OTLPEndpoint",
		},
		{
			name: "metrics path without slash",
			config: config.Config{
				API:       config.API{Port: 8787},
				Telemetry: config.Telemetry{Metrics: config.MetricsConfig{Path: "metrics"}},
			},
			expectError: true,
			errContains: "Path",
		},
		{
			name: "negative log backups",
			config: config.Config{
				API: config.API{Port: 8787},
				Log: config.Log{File: "relaybridge.log", MaxBackups: -1},
			},
			expectError: true,
			errContains: "MaxBackups",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := config.Validate(&tc.config)

			if tc.expectError {
				s.Error(err)
				s.Contains(err.Error(), tc.errContains)
			} else {
				s.NoError(err)
			}
		})
	}
}

func TestConfigPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigPublicTestSuite))
}
