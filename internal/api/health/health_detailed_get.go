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

package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/host"
)

// hostInfoFn reads host facts; tests replace it to simulate errors.
var hostInfoFn = host.InfoWithContext

// GetHealthDetailed reports whether the controller executable resolves,
// together with version, uptime and host facts. A missing controller answers
// 503.
func (h *Health) GetHealthDetailed(
	c echo.Context,
) error {
	ctx := c.Request().Context()

	controller := ComponentHealth{Status: "ok"}
	path, err := h.Locator.Resolve()
	if err != nil {
		errMsg := err.Error()
		controller = ComponentHealth{Status: "error", Error: &errMsg}
	} else {
		controller.Path = path
	}

	resp := DetailedResponse{
		Status:     "ok",
		Version:    h.Version,
		Uptime:     time.Since(h.StartTime).Round(time.Second).String(),
		Components: map[string]ComponentHealth{"controller": controller},
	}

	info, err := hostInfoFn(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "reading host info failed", slog.String("error", err.Error()))
	}
	if info != nil {
		resp.Host = &HostInfo{
			Hostname:        info.Hostname,
			OS:              info.OS,
			Platform:        info.Platform,
			PlatformVersion: info.PlatformVersion,
			KernelArch:      info.KernelArch,
		}
	}

	code := http.StatusOK
	if controller.Status != "ok" {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, resp)
}
