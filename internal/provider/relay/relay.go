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

package relay

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dstur/relaybridge/internal/exec"
	"github.com/dstur/relaybridge/internal/locate"
	"github.com/dstur/relaybridge/internal/validation"
)

const instrumentationName = "github.com/dstur/relaybridge/internal/provider/relay"

// Executor implements Provider by running the relay controller.
type Executor struct {
	logger      *slog.Logger
	locator     locate.Locator
	execManager exec.Manager
	tracer      trace.Tracer
	metrics     *metrics
}

// New factory to create a new Executor instance.
func New(
	logger *slog.Logger,
	locator locate.Locator,
	em exec.Manager,
) *Executor {
	return &Executor{
		logger:      logger,
		locator:     locator,
		execManager: em,
		tracer:      otel.Tracer(instrumentationName),
		metrics:     newMetrics(logger),
	}
}

// ListPorts lists serial ports as JSON.
func (e *Executor) ListPorts(
	ctx context.Context,
) (*Result, error) {
	return e.run(ctx, Command{Operation: OpListPorts}, nil)
}

// Status queries a relay or all relays. Target is not validated.
func (e *Executor) Status(
	ctx context.Context,
	params StatusParams,
) (*Result, error) {
	return e.run(ctx, Command{
		Operation: OpStatus,
		Port:      params.Port,
		Target:    params.Target,
	}, nil)
}

// SetRelay switches one relay. A relay number outside 1..8 is rejected
// before the controller is located or started.
func (e *Executor) SetRelay(
	ctx context.Context,
	params SetRelayParams,
) (*Result, error) {
	return e.run(ctx, Command{
		Operation: OpSetRelay,
		Port:      params.Port,
		Relay:     params.Relay,
		State:     params.State,
		Seconds:   params.Seconds,
	}, params)
}

// SetAll switches every relay. State is not validated.
func (e *Executor) SetAll(
	ctx context.Context,
	params SetAllParams,
) (*Result, error) {
	return e.run(ctx, Command{
		Operation: OpSetAll,
		Port:      params.Port,
		State:     params.State,
		Seconds:   params.Seconds,
	}, params)
}

// run validates params (when given), resolves the controller, builds the
// arguments and invokes it. The first failure is returned tagged with its
// stage.
func (e *Executor) run(
	ctx context.Context,
	cmd Command,
	params any,
) (*Result, error) {
	ctx, span := e.tracer.Start(
		ctx,
		"relay."+string(cmd.Operation),
		trace.WithAttributes(attribute.String("relay.operation", string(cmd.Operation))),
	)
	defer span.End()

	start := time.Now()
	result, err := e.invoke(ctx, cmd, params)
	e.metrics.record(ctx, cmd.Operation, outcomeOf(result, err), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(StageOf(err)))

		return nil, err
	}

	if result.ExitCode != nil {
		span.SetAttributes(attribute.Int("relay.exit_code", *result.ExitCode))
	}

	return result, nil
}

func (e *Executor) invoke(
	ctx context.Context,
	cmd Command,
	params any,
) (*Result, error) {
	if params != nil {
		if errMsg, ok := validation.Struct(params); !ok {
			return nil, &OperationError{
				Op:    cmd.Operation,
				Stage: StageValidate,
				Err:   &ValidationError{Message: errMsg},
			}
		}
	}

	path, err := e.locator.Resolve()
	if err != nil {
		return nil, &OperationError{Op: cmd.Operation, Stage: StageResolve, Err: err}
	}

	args := BuildArgs(cmd)
	invocationID := uuid.NewString()

	e.logger.DebugContext(ctx, "invoking controller",
		slog.String("invocation_id", invocationID),
		slog.String("operation", string(cmd.Operation)),
		slog.String("path", path),
		slog.Any("args", args),
	)

	cmdResult, err := e.execManager.RunCmd(path, args)
	if err != nil {
		return nil, &OperationError{Op: cmd.Operation, Stage: StageLaunch, Err: err}
	}

	e.logger.DebugContext(ctx, "controller exited",
		slog.String("invocation_id", invocationID),
		slog.Bool("ok", cmdResult.OK),
		slog.Int64("duration_ms", cmdResult.DurationMs),
	)

	return &Result{
		OK:       cmdResult.OK,
		ExitCode: cmdResult.ExitCode,
		Stdout:   cmdResult.Stdout,
		Stderr:   cmdResult.Stderr,
	}, nil
}
