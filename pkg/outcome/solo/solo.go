package solo

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T any](input T) outcome.Outcome[T, error] {
	return outcome.Ok[T, error](input)
}

func Fail[T any](err error) outcome.Outcome[T, error] {
	return outcome.Err[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) outcome.Outcome[T, error] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input outcome.Outcome[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Outcome[T, error] {

	v, ok := input.SuccessValue()
	if !ok {
		return input
	}

	if isValid, errMsg := validate(ctx, v); !isValid {
		return outcome.Err[T](errors.New(errMsg))
	}
	return input
}

func Switch[In, Out any, E error](ctx context.Context,
	input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) outcome.Outcome[Out, E]) outcome.Outcome[Out, E] {

	return outcome.FlatMap(input, func(r In) outcome.Outcome[Out, E] {
		return onSuccess(ctx, r)
	})
}

func Map[In, Out any, E error](ctx context.Context,
	input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out) outcome.Outcome[Out, E] {

	return outcome.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Try[In, Out any](ctx context.Context, input outcome.Outcome[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Outcome[Out, error] {

	return outcome.FlatMap(input, func(r In) outcome.Outcome[Out, error] {
		out, err := onTryExecute(ctx, r)
		return outcome.FromPair(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input outcome.Outcome[T, error],
	maybeErr func(ctx context.Context, in T) error) outcome.Outcome[T, error] {

	v, ok := input.SuccessValue()
	if !ok {
		return input
	}
	if err := maybeErr(ctx, v); err != nil {
		return outcome.Err[T](err)
	}
	return input
}

// Recover replaces a failure with the Outcome computed from it.
func Recover[T any, E, F error](ctx context.Context, input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, err E) outcome.Outcome[T, F]) outcome.Outcome[T, F] {

	if e, failed := input.FailureValue(); failed {
		return onFailure(ctx, e)
	}
	v, _ := input.SuccessValue()
	return outcome.Ok[T, F](v)
}

func Tee[T any, E error](ctx context.Context,
	input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, r T)) outcome.Outcome[T, E] {

	return input.OnSuccess(func(r T) {
		onSuccess(ctx, r)
	})
}

func TeeIf[T any, E error](ctx context.Context,
	input outcome.Outcome[T, E],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) outcome.Outcome[T, E] {

	return input.OnSuccess(func(r T) {
		if condition(ctx, r) {
			onSuccessAndCondition(ctx, r)
		}
	})
}

// DoubleTee runs onSuccess or onError. Nil callbacks are skipped.
func DoubleTee[T any, E error](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) outcome.Outcome[T, E] {

	if onSuccess != nil {
		input = input.OnSuccess(func(r T) { onSuccess(ctx, r) })
	}
	if onError != nil {
		input = input.OnFailure(func(err E) { onError(ctx, err) })
	}
	return input
}

func Finally[In any, E error, Out any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	return outcome.MapOrElse(input,
		func(r In) Out { return onSuccess(ctx, r) },
		func(err E) Out { return onError(ctx, err) })
}
