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

package health_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/dstur/relaybridge/internal/api/health"
	"github.com/dstur/relaybridge/internal/locate/mocks"
)

type HealthPublicTestSuite struct {
	suite.Suite

	mockCtrl    *gomock.Controller
	mockLocator *mocks.MockLocator
	logger      *slog.Logger
}

func (s *HealthPublicTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLocator = mocks.NewMockLocator(s.mockCtrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *HealthPublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *HealthPublicTestSuite) serve(
	h *health.Health,
	path string,
) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/health", h.GetHealth)
	e.GET("/health/detailed", h.GetHealthDetailed)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func (s *HealthPublicTestSuite) TestGetHealth() {
	h := health.New(s.logger, s.mockLocator, time.Now(), "0.1.0")

	rec := s.serve(h, "/health")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *HealthPublicTestSuite) TestGetHealthDetailed() {
	tests := []struct {
		name         string
		setupMock    func()
		wantCode     int
		validateFunc func(resp health.DetailedResponse)
	}{
		{
			name: "when controller resolves reports ok with path",
			setupMock: func() {
				s.mockLocator.EXPECT().Resolve().Return("/opt/relaybridge/bin/relay", nil)
			},
			wantCode: http.StatusOK,
			validateFunc: func(resp health.DetailedResponse) {
				s.Equal("ok", resp.Status)
				s.Equal("0.1.0", resp.Version)
				s.Equal("ok", resp.Components["controller"].Status)
				s.Equal("/opt/relaybridge/bin/relay", resp.Components["controller"].Path)
				s.Nil(resp.Components["controller"].Error)
				s.Require().NotNil(resp.Host)
				s.NotEmpty(resp.Host.OS)
			},
		},
		{
			name: "when controller is missing reports degraded",
			setupMock: func() {
				s.mockLocator.EXPECT().Resolve().Return("", errors.New("relay not found"))
			},
			wantCode: http.StatusServiceUnavailable,
			validateFunc: func(resp health.DetailedResponse) {
				s.Equal("degraded", resp.Status)
				s.Equal("error", resp.Components["controller"].Status)
				s.Require().NotNil(resp.Components["controller"].Error)
				s.Contains(*resp.Components["controller"].Error, "relay not found")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()
			h := health.New(s.logger, s.mockLocator, time.Now().Add(-time.Minute), "0.1.0")

			rec := s.serve(h, "/health/detailed")

			s.Equal(tc.wantCode, rec.Code)
			var resp health.DetailedResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			tc.validateFunc(resp)
		})
	}
}

func TestHealthPublicTestSuite(t *testing.T) {
	suite.Run(t, new(HealthPublicTestSuite))
}
