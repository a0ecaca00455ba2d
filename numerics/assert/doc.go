// Package assert reports configuration invariants that must hold before any
// arithmetic runs.
//
// A failed assertion is logged, recorded as an event on the active span and
// returned as an *AssertionError wrapping ErrAssertionFailed. Assertions never
// panic; callers decide whether a failure is fatal.
package assert
