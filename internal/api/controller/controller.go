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

// Package controller exposes the relay operations as HTTP handlers.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dstur/relaybridge/internal/provider/relay"
)

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	provider relay.Provider,
) *Controller {
	return &Controller{
		Provider: provider,
		logger:   logger,
	}
}

// RegisterHandlers mounts the relay routes under /api/v1.
func (c *Controller) RegisterHandlers(
	e *echo.Echo,
) {
	g := e.Group("/api/v1")
	g.GET("/ports", c.GetPorts)
	g.GET("/status/:target", c.GetStatus)
	g.PUT("/relays/:relay", c.PutRelay)
	g.PUT("/relays", c.PutAll)
}

// statusForStage maps an operation failure to an HTTP status. A controller
// that ran and exited non-zero is not a failure and never reaches here.
func statusForStage(
	stage relay.Stage,
) int {
	switch stage {
	case relay.StageValidate:
		return http.StatusBadRequest
	case relay.StageResolve:
		return http.StatusServiceUnavailable
	case relay.StageLaunch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (c *Controller) respond(
	ctx echo.Context,
	result *relay.Result,
	err error,
) error {
	if err == nil {
		return ctx.JSON(http.StatusOK, result)
	}

	stage := relay.StageOf(err)
	code := statusForStage(stage)
	if code >= http.StatusInternalServerError {
		c.logger.ErrorContext(
			ctx.Request().Context(),
			"relay operation failed",
			slog.String("stage", string(stage)),
			slog.String("error", err.Error()),
		)
	}

	return ctx.JSON(code, ErrorResponse{Error: err.Error(), Stage: string(stage)})
}

func badRequest(
	ctx echo.Context,
	err error,
) error {
	var he *echo.HTTPError
	msg := err.Error()
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}

	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Error: msg,
		Stage: string(relay.StageValidate),
	})
}
