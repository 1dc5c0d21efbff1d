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

package validation

import (
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Relay numbers addressable on the board.
const (
	MinRelayNumber = 1
	MaxRelayNumber = 8
)

func init() {
	// Cannot error: tags are non-empty and functions are non-nil.
	_ = instance.RegisterValidation("relay_number", validRelayNumber)
	_ = instance.RegisterValidation("duration", validDuration)
}

// validRelayNumber accepts integers in MinRelayNumber..MaxRelayNumber.
func validRelayNumber(fl validator.FieldLevel) bool {
	field := fl.Field()

	var n int64
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = field.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := field.Uint()
		if u > MaxRelayNumber {
			return false
		}
		n = int64(u)
	default:
		return false
	}

	return n >= MinRelayNumber && n <= MaxRelayNumber
}

// validDuration accepts finite, non-negative seconds.
func validDuration(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
	default:
		return false
	}
}
