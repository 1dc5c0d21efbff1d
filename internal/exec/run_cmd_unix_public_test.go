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

//go:build unix

package exec_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dstur/relaybridge/internal/exec"
)

type RunCmdSignalPublicTestSuite struct {
	suite.Suite
}

func (suite *RunCmdSignalPublicTestSuite) SetupSuite() {
	suite.Require().NoError(os.Setenv(helperEnv, "1"))
}

func (suite *RunCmdSignalPublicTestSuite) TearDownSuite() {
	_ = os.Unsetenv(helperEnv)
}

func (suite *RunCmdSignalPublicTestSuite) TestRunCmdKilledBySignal() {
	tests := []struct {
		name string
	}{
		{
			name: "when controller is killed there is no exit code",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			em := exec.New(slog.Default())

			result, err := em.RunCmd(os.Args[0], helperArgs("kill"))

			suite.Require().NoError(err)
			suite.False(result.OK)
			suite.Nil(result.ExitCode)
		})
	}
}

func TestRunCmdSignalPublicTestSuite(t *testing.T) {
	suite.Run(t, new(RunCmdSignalPublicTestSuite))
}
