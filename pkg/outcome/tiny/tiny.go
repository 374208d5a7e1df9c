package tiny

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

type Chain[T any] struct {
	ctx       context.Context
	id        uuid.UUID
	startedAt time.Time
	res       outcome.Outcome[T, error]
}

func Start[T any](ctx context.Context, r outcome.Outcome[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, id: uuid.New(), startedAt: time.Now().UTC(), res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, solo.Succeed(v))
}

func (c Chain[T]) Result() outcome.Outcome[T, error] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// ID identifies the run this chain belongs to
func (c Chain[T]) ID() uuid.UUID {
	return c.id
}

// StartedAt time the run started (UTC)
func (c Chain[T]) StartedAt() time.Time {
	return c.startedAt
}

func (c Chain[T]) with(r outcome.Outcome[T, error]) Chain[T] {
	c.res = r
	return c
}

// Then composes functions that already return an outcome
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, error]) Chain[T] {
	return c.with(solo.Switch(c.ctx, c.res, onSuccess))
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.with(solo.Try(c.ctx, c.res, try))
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.with(solo.Map(c.ctx, c.res, onSuccess))
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	return c.with(solo.DoubleTee(c.ctx, c.res, onSuccess, onFailure))
}

// Or returns the first successful chain among c and alternatives.
// When none succeeds, c is returned.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeed.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// While applies onSuccess as long as the chain succeeds and while holds.
// A done context ends the loop with ctx.Err() as the failure.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, error],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for {
		v, ok := c.res.SuccessValue()
		if !ok || !while(c.ctx, v) {
			return c
		}
		if err := c.ctx.Err(); err != nil {
			return c.with(solo.Fail[T](err))
		}
		c = c.Then(onSuccess)
	}
}

// RepeatUntil applies onSuccess at least once and repeats while until holds.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, error],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		if err := c.ctx.Err(); err != nil {
			return c.with(solo.Fail[T](err))
		}
		c = c.Then(onSuccess)

		v, ok := c.res.SuccessValue()
		if !ok || !until(c.ctx, v) {
			return c
		}
	}
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// Elapsed since the run started
func (c Chain[T]) Elapsed() time.Duration {
	return time.Since(c.startedAt)
}

// IsCancellation reports whether err comes from a cancelled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
