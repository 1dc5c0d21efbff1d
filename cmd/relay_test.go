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

package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
)

type RelayTestSuite struct {
	suite.Suite
}

func newFlagCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	c.Flags().StringP("port", "p", "", "")
	c.Flags().Float64P("seconds", "s", 0, "")

	return c
}

func (s *RelayTestSuite) TestSecondsFlag() {
	tests := []struct {
		name string
		args []string
		want *float64
	}{
		{
			name: "when seconds not given returns nil",
			args: []string{},
			want: nil,
		},
		{
			name: "when seconds given as zero returns zero",
			args: []string{"--seconds", "0"},
			want: func() *float64 { v := 0.0; return &v }(),
		},
		{
			name: "when seconds given returns value",
			args: []string{"-s", "2.5"},
			want: func() *float64 { v := 2.5; return &v }(),
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			c := newFlagCmd()
			s.Require().NoError(c.ParseFlags(tc.args))

			s.Equal(tc.want, secondsFlag(c))
		})
	}
}

func (s *RelayTestSuite) TestPortFlag() {
	c := newFlagCmd()
	s.Require().NoError(c.ParseFlags([]string{"--port", "COM3"}))

	s.Equal("COM3", portFlag(c))
}

func (s *RelayTestSuite) TestRejectPortFlag() {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "when port not given passes",
			args: []string{},
		},
		{
			name:    "when port given fails",
			args:    []string{"--port", "COM3"},
			wantErr: true,
		},
		{
			name:    "when port given empty fails",
			args:    []string{"-p", ""},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			c := newFlagCmd()
			s.Require().NoError(c.ParseFlags(tc.args))

			err := rejectPortFlag(c, nil)

			if tc.wantErr {
				s.Require().Error(err)
				s.Contains(err.Error(), "--port")
				return
			}
			s.NoError(err)
		})
	}
}

func (s *RelayTestSuite) TestBuildVersion() {
	original := version
	defer func() { version = original }()

	version = "v1.2.3"

	info := buildVersion()

	s.Equal("v1.2.3", info.GitVersion)
	s.Equal("relaybridge", info.Name)
}

func TestRelayTestSuite(t *testing.T) {
	suite.Run(t, new(RelayTestSuite))
}
