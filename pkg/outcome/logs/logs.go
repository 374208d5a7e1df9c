// Package logs adapts structured loggers to outcome hooks.
//
//	o.OnFailure(logs.Failure[error](nil, "fetch title"))
package logs

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/tiny"
)

var log = logging.Logger("outcome")

// Logger is the subset of the go-log / zap sugared logger used here.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

var _ Logger = log

func orDefault(l Logger) Logger {
	if l == nil {
		return log
	}
	return l
}

// Success returns an OnSuccess handler logging the value at debug level.
func Success[T any](l Logger, msg string) func(T) {
	l = orDefault(l)
	return func(v T) {
		l.Debugw(msg, "branch", "ok", "value", v)
	}
}

// Failure returns an OnFailure handler logging the error at warn level.
func Failure[E error](l Logger, msg string) func(E) {
	l = orDefault(l)
	return func(e E) {
		l.Warnw(msg, "branch", "err", "error", e)
	}
}

func Report[T any, E error](l Logger, msg string, o outcome.Inspector[T, E], keysAndValues ...interface{}) {
	l = orDefault(l)
	if v, ok := o.SuccessValue(); ok {
		l.Debugw(msg, append([]interface{}{"branch", "ok", "value", v}, keysAndValues...)...)
		return
	}
	e, _ := o.FailureValue()
	l.Warnw(msg, append([]interface{}{"branch", "err", "error", e}, keysAndValues...)...)
}

// Chain reports the chain result together with its run id and elapsed time.
func Chain[T any](l Logger, msg string, c tiny.Chain[T]) {
	Report[T, error](l, msg, c.Result(),
		"run", c.ID().String(),
		"elapsed", c.Elapsed())
}
