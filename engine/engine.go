// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/solve"
)

// Defaults applied by New.
const (
	DefaultCallTimeout  = 10 * time.Second
	DefaultMaxDimension = 512
)

// unknownLabel replaces unregistered operation names in metrics.
const unknownLabel = "unknown"

// HandlerFunc evaluates one request against the engine's numeric policy and
// returns the success payload.
type HandlerFunc func(e *Engine, req *Request) (any, error)

// Operation is one named entry of the catalogue.
type Operation struct {
	Name    string
	Summary string
	Run     HandlerFunc
}

// Engine dispatches requests to registered operations. Build it with New;
// it is immutable and safe for concurrent use afterwards.
type Engine struct {
	log         logr.Logger
	metrics     *Metrics
	matrixOpts  []matrix.Option
	residualTol float64
	maxDim      int
	timeout     time.Duration
	extra       []Operation
	ops         map[string]Operation
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger; evaluations are logged at V(1).
func WithLogger(l logr.Logger) Option { return func(e *Engine) { e.log = l } }

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option { return func(e *Engine) { e.metrics = m } }

// WithMatrixOptions sets the numeric policy (symmetry and singularity tolerances).
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(e *Engine) { e.matrixOpts = append(e.matrixOpts, opts...) }
}

// WithResidualTolerance sets the squared residual above which a least-squares
// solution counts as inconsistent.
func WithResidualTolerance(tol float64) Option { return func(e *Engine) { e.residualTol = tol } }

// WithMaxDimension bounds operand rows, columns and vector length.
// 0 disables the bound.
func WithMaxDimension(n int) Option { return func(e *Engine) { e.maxDim = n } }

// WithCallTimeout bounds the wall time of one Do call. 0 disables it.
func WithCallTimeout(d time.Duration) Option { return func(e *Engine) { e.timeout = d } }

// WithOperations registers additional operations after the built-ins.
func WithOperations(ops ...Operation) Option {
	return func(e *Engine) { e.extra = append(e.extra, ops...) }
}

// New builds an Engine with every built-in operation registered.
//
// Errors:
//   - ErrDuplicateOperation when an extra operation reuses a name.
//   - a validation error for negative limits or tolerances.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		log:         logr.Discard(),
		residualTol: solve.DefaultResidualTolerance,
		maxDim:      DefaultMaxDimension,
		timeout:     DefaultCallTimeout,
		ops:         make(map[string]Operation),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(e)
		}
	}
	switch {
	case e.maxDim < 0:
		return nil, fmt.Errorf("engine: max dimension must be >= 0, got %d", e.maxDim)
	case e.timeout < 0:
		return nil, fmt.Errorf("engine: call timeout must be >= 0, got %s", e.timeout)
	case e.residualTol < 0 || !isFinite(e.residualTol):
		return nil, fmt.Errorf("engine: residual tolerance must be finite and >= 0, got %g", e.residualTol)
	}

	for _, op := range append(builtins(), e.extra...) {
		if err := e.register(op); err != nil {
			return nil, err
		}
	}
	e.extra = nil

	return e, nil
}

func (e *Engine) register(op Operation) error {
	if op.Name == "" || op.Run == nil {
		return fmt.Errorf("engine: operation needs a name and a handler")
	}
	if _, dup := e.ops[op.Name]; dup {
		return fmt.Errorf("%q: %w", op.Name, ErrDuplicateOperation)
	}
	e.ops[op.Name] = op

	return nil
}

// Operations lists the catalogue sorted by name.
func (e *Engine) Operations() []Operation {
	out := make([]Operation, 0, len(e.ops))
	for _, op := range e.ops {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Do evaluates req and always returns a well-formed envelope.
//
// Behavior:
//   - unknown operation → failure (ParseError kind);
//   - the handler runs in its own goroutine so the per-call deadline and ctx
//     cancellation are honoured; the numeric kernels themselves are not
//     interruptible, so an abandoned evaluation finishes in the background
//     and its result is discarded;
//   - panics inside the handler are recovered into ErrPanic (ComputeError).
func (e *Engine) Do(ctx context.Context, req Request) Result {
	start := time.Now()

	op, ok := e.ops[req.Op]
	if !ok {
		res := Failed(req.Op, fmt.Errorf("%q: %w", req.Op, ErrUnknownOperation))
		e.record(unknownLabel, res, time.Since(start))
		return res
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		res := Failed(op.Name, fmt.Errorf("%s: %w", op.Name, err))
		e.record(op.Name, res, time.Since(start))
		return res
	}

	done := make(chan Result, 1) // buffered: an abandoned goroutine must not block
	go func() { done <- e.run(op, &req) }()

	var res Result
	select {
	case res = <-done:
	case <-ctx.Done():
		res = Failed(op.Name, fmt.Errorf("%s: %w", op.Name, ctx.Err()))
	}
	e.record(op.Name, res, time.Since(start))

	return res
}

// run invokes the handler and converts a panic into a failure.
func (e *Engine) run(op Operation, req *Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s: %v: %w", op.Name, r, ErrPanic)
			e.log.Error(err, "recovered panic", "operation", op.Name)
			res = Failed(op.Name, err)
		}
	}()

	payload, err := op.Run(e, req)
	if err != nil {
		return Failed(op.Name, err)
	}

	return Result{Operation: op.Name, Payload: payload}
}

func (e *Engine) record(name string, res Result, d time.Duration) {
	kind := res.Kind()
	e.metrics.observe(name, kind, d)
	if kind == "" {
		e.log.V(1).Info("operation evaluated", "operation", name, "duration", d)
		return
	}
	e.log.V(1).Info("operation failed", "operation", name, "duration", d, "kind", kind, "error", res.Err.Error())
}
