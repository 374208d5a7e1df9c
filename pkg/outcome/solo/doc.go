// Package solo contains single-value, synchronous railway steps over
// outcome.Outcome. Every step takes a context and forwards it to the callback
// it wraps; none of them block or start goroutines.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T, error]
// - Validate/AndValidate: turn a (valid, message) check into a failure
// - Switch/Map: move from Outcome[In, E] to Outcome[Out, E]
// - Try/FailOnError: adapt functions that return error
// - Recover: compute a fallback from the failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value
package solo
