// Package outcome defines Outcome[T, E], an immutable value that is either a
// success carrying T or a failure carrying E.
//
// Failures travel through a pipeline as ordinary values:
// - Ok/Err/FromPair: construct an Outcome
// - IsSuccess/IsFailure/SuccessValue/FailureValue: inspect it
// - Map/MapError/FlatMap/Flatten/Or: derive a new Outcome
// - MapOrElse/GetOrElse/ValueOr/Get: reduce it to a plain value
// - OnSuccess/OnFailure: run side effects and keep the Outcome
//
// MustValue is the only operation that panics. Use it where a pipeline has no
// further recovery and a failure should end the goroutine.
package outcome
