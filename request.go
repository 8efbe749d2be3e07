package contractgen

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ustchcl/contractgen/log"
)

// Request is what every generated contract method returns: a bound method
// and whether it changes state. Nothing is sent until Exec or ExecWithError
// is called.
type Request struct {
	session *Session
	method  Method
	isSend  bool
}

// NewRequest wraps method. Transaction requests (isSend) are simulated with
// Call before they are submitted with Send; other requests are only called.
func NewRequest(session *Session, method Method, isSend bool) *Request {
	if session == nil {
		session = &Session{}
	}
	return &Request{
		session: session,
		method:  method,
		isSend:  isSend,
	}
}

func (r *Request) IsSend() bool {
	return r.isSend
}

// Exec runs the request. Failures are reported to the session's registry
// and returned in the result.
func (r *Request) Exec(ctx context.Context) Result {
	ctx, span := otel.Tracer("").Start(ctx, "contractgen.Request.Exec",
		trace.WithAttributes(attribute.Bool("send", r.isSend)))
	defer span.End()

	res := r.run(ctx)
	if res.Error != nil {
		span.RecordError(res.Error)
		span.SetStatus(codes.Error, "request failed")
		log.Logger().Debug().Err(res.Error).Bool("send", r.isSend).Msg("request failed")
		r.session.Registry.Dispatch(res.Error)
	}
	return res
}

// ExecWithError is Exec for callers that prefer a plain error.
func (r *Request) ExecWithError(ctx context.Context) (Result, error) {
	res := r.Exec(ctx)
	return res, res.Error
}

func (r *Request) run(ctx context.Context) Result {
	if r.method == nil {
		return Result{Error: errors.New("request without method")}
	}

	if !r.isSend {
		values, err := r.method.Call(ctx, r.session.From)
		if err != nil {
			return Result{Error: errors.Wrap(err, "call")}
		}
		return Result{Values: values}
	}

	opts, err := r.session.transactOpts(ctx)
	if err != nil {
		return Result{Error: err}
	}

	_, err = r.method.Call(ctx, opts.From)
	if err != nil {
		return Result{Error: errors.Wrap(err, "simulate transaction")}
	}

	tx, err := r.method.Send(ctx, opts)
	if err != nil {
		return Result{Error: errors.Wrap(err, "send transaction")}
	}
	return Result{Transaction: tx}
}
