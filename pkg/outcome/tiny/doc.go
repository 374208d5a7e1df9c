// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of outcome.Outcome[T, error] values.
//
// - Start/FromValue: create a Chain with a fresh run id
// - Then/ThenTry: compose outcome-returning or error-returning functions
// - Map: transform the value
// - Or/And: pick among alternative chains
// - While/RepeatUntil: loop a step while the chain stays successful
// - Ensure: trigger side effects
// - Finally: reduce to a concrete value via handlers
//
// Every chain derived from Start shares its run id and start time, so a
// whole run can be correlated in logs.
package tiny
