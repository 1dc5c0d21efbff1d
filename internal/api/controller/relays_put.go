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
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dstur/relaybridge/internal/provider/relay"
)

// PutRelay switches the relay named in the path.
func (c *Controller) PutRelay(
	ctx echo.Context,
) error {
	n, err := strconv.Atoi(ctx.Param("relay"))
	if err != nil {
		return badRequest(ctx, fmt.Errorf("relay must be an integer: %q", ctx.Param("relay")))
	}

	var req SetRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	result, err := c.Provider.SetRelay(ctx.Request().Context(), relay.SetRelayParams{
		Port:    req.Port,
		Relay:   n,
		State:   req.State,
		Seconds: req.Seconds,
	})

	return c.respond(ctx, result, err)
}

// PutAll switches every relay.
func (c *Controller) PutAll(
	ctx echo.Context,
) error {
	var req SetRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	result, err := c.Provider.SetAll(ctx.Request().Context(), relay.SetAllParams{
		Port:    req.Port,
		State:   req.State,
		Seconds: req.Seconds,
	})

	return c.respond(ctx, result, err)
}
