package outcome

import (
	"fmt"
	"reflect"
)

// Outcome is either Ok with a value of type T or Err with a failure of type E.
// The zero value is an Err holding a nil failure.
type Outcome[T any, E error] struct {
	value T
	err   E
	ok    bool
}

func Ok[T any, E error](v T) Outcome[T, E] {
	return Outcome[T, E]{value: v, ok: true}
}

func Err[T any, E error](e E) Outcome[T, E] {
	return Outcome[T, E]{err: e}
}

// FromPair converts the (value, error) convention: a non-nil err gives Err.
func FromPair[T any](v T, err error) Outcome[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.ok
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.ok
}

// SuccessValue returns the value and true for Ok, the zero T and false for Err.
func (o Outcome[T, E]) SuccessValue() (T, bool) {
	if !o.ok {
		var zero T
		return zero, false
	}
	return o.value, true
}

// FailureValue returns the failure and true for Err, the zero E and false for Ok.
func (o Outcome[T, E]) FailureValue() (E, bool) {
	if o.ok {
		var zero E
		return zero, false
	}
	return o.err, true
}

// Get returns the active payload with the zero value on the other side.
func (o Outcome[T, E]) Get() (T, E) {
	return o.value, o.err
}

// MustValue returns the value of an Ok and panics with the failure of an Err.
func (o Outcome[T, E]) MustValue() T {
	if !o.ok {
		panic(o.err)
	}
	return o.value
}

func (o Outcome[T, E]) ValueOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// GetOrElse returns the value of an Ok or computes one from the failure.
func (o Outcome[T, E]) GetOrElse(fallback func(E) T) T {
	if o.ok {
		return o.value
	}
	return fallback(o.err)
}

// Or returns o when it is Ok and other otherwise.
// Use the package-level Or to switch the failure type.
func (o Outcome[T, E]) Or(other Outcome[T, E]) Outcome[T, E] {
	if o.ok {
		return o
	}
	return other
}

// OnSuccess calls handler with the value of an Ok. A nil handler is ignored.
func (o Outcome[T, E]) OnSuccess(handler func(T)) Outcome[T, E] {
	if o.ok && handler != nil {
		handler(o.value)
	}
	return o
}

// OnFailure calls handler with the failure of an Err. A nil handler is ignored.
func (o Outcome[T, E]) OnFailure(handler func(E)) Outcome[T, E] {
	if !o.ok && handler != nil {
		handler(o.err)
	}
	return o
}

// Equal reports whether both sides hold the same variant with deeply equal
// payloads. Ok and Err are never equal.
func (o Outcome[T, E]) Equal(other Outcome[T, E]) bool {
	if o.ok != other.ok {
		return false
	}
	if o.ok {
		return reflect.DeepEqual(o.value, other.value)
	}
	return reflect.DeepEqual(o.err, other.err)
}

func (o Outcome[T, E]) String() string {
	if o.ok {
		return fmt.Sprintf("Ok(%v)", o.value)
	}
	return fmt.Sprintf("Err(%v)", o.err)
}

// Or returns o re-typed to the failure type F when it is Ok, and other when
// it is Err.
func Or[T any, E, F error](o Outcome[T, E], other Outcome[T, F]) Outcome[T, F] {
	if o.ok {
		return Ok[T, F](o.value)
	}
	return other
}

func Map[T, R any, E error](o Outcome[T, E], fn func(T) R) Outcome[R, E] {
	if o.ok {
		return Ok[R, E](fn(o.value))
	}
	return Err[R](o.err)
}

func MapError[T any, E, F error](o Outcome[T, E], fn func(E) F) Outcome[T, F] {
	if o.ok {
		return Ok[T, F](o.value)
	}
	return Err[T](fn(o.err))
}

// MapOrElse reduces o with onSuccess or onFailure, whichever matches.
func MapOrElse[T any, E error, R any](o Outcome[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if o.ok {
		return onSuccess(o.value)
	}
	return onFailure(o.err)
}

// FlatMap chains a step that itself returns an Outcome.
func FlatMap[T, R any, E error](o Outcome[T, E], fn func(T) Outcome[R, E]) Outcome[R, E] {
	if o.ok {
		return fn(o.value)
	}
	return Err[R](o.err)
}

// Flatten removes one level of nesting.
func Flatten[T any, E error](o Outcome[Outcome[T, E], E]) Outcome[T, E] {
	if o.ok {
		return o.value
	}
	return Err[T](o.err)
}
