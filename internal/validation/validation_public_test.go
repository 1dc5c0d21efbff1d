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

package validation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dstur/relaybridge/internal/validation"
)

type ValidationPublicTestSuite struct {
	suite.Suite
}

func (s *ValidationPublicTestSuite) TestStruct() {
	type setInput struct {
		Relay   int      `validate:"relay_number"`
		State   string   `validate:"required"`
		Seconds *float64 `validate:"omitempty,duration"`
	}

	seconds := func(f float64) *float64 { return &f }

	tests := []struct {
		name     string
		input    any
		wantOK   bool
		contains []string
	}{
		{
			name:   "when valid struct",
			input:  setInput{Relay: 1, State: "on"},
			wantOK: true,
		},
		{
			name:   "when valid struct with seconds",
			input:  setInput{Relay: 8, State: "pulse", Seconds: seconds(1.5)},
			wantOK: true,
		},
		{
			name:     "when missing required field",
			input:    setInput{Relay: 2},
			wantOK:   false,
			contains: []string{"State", "required"},
		},
		{
			name:     "when relay is zero",
			input:    setInput{Relay: 0, State: "on"},
			wantOK:   false,
			contains: []string{"Relay", "relay number must be 1..8; got 0"},
		},
		{
			name:     "when relay is nine",
			input:    setInput{Relay: 9, State: "on"},
			wantOK:   false,
			contains: []string{"relay number must be 1..8; got 9"},
		},
		{
			name:     "when seconds is negative",
			input:    setInput{Relay: 1, State: "on", Seconds: seconds(-1)},
			wantOK:   false,
			contains: []string{"Seconds", "seconds must be a finite number"},
		},
		{
			name:     "when seconds is NaN",
			input:    setInput{Relay: 1, State: "on", Seconds: seconds(math.NaN())},
			wantOK:   false,
			contains: []string{"Seconds"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			errMsg, ok := validation.Struct(tt.input)
			s.Equal(tt.wantOK, ok)

			if !ok {
				for _, c := range tt.contains {
					s.Contains(errMsg, c)
				}
			}
		})
	}
}

func (s *ValidationPublicTestSuite) TestVar() {
	tests := []struct {
		name     string
		field    any
		tag      string
		wantOK   bool
		contains []string
	}{
		{
			name:   "when valid field",
			field:  "hello",
			tag:    "required",
			wantOK: true,
		},
		{
			name:     "when empty required field",
			field:    "",
			tag:      "required",
			wantOK:   false,
			contains: []string{"required"},
		},
		{
			name:   "when relay number in range",
			field:  uint8(8),
			tag:    "relay_number",
			wantOK: true,
		},
		{
			name:     "when relay number is a large unsigned value",
			field:    uint(300),
			tag:      "relay_number",
			wantOK:   false,
			contains: []string{"relay_number"},
		},
		{
			name:     "when seconds is infinite",
			field:    math.Inf(1),
			tag:      "duration",
			wantOK:   false,
			contains: []string{"duration"},
		},
		{
			name:   "when seconds is zero",
			field:  0.0,
			tag:    "duration",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			errMsg, ok := validation.Var(tt.field, tt.tag)
			s.Equal(tt.wantOK, ok)

			if !ok {
				for _, c := range tt.contains {
					s.Contains(errMsg, c)
				}
			}
		})
	}
}

func (s *ValidationPublicTestSuite) TestInstance() {
	tests := []struct {
		name string
	}{
		{
			name: "when returns shared validator instance",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			v := validation.Instance()
			s.NotNil(v)
		})
	}
}

func TestValidationPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationPublicTestSuite))
}
