// Package policy decides how operations between safe integers behave.
//
// A Set pairs a Promotion policy, which picks the result kind of an operation
// from its operand kinds, with an Exception policy, which decides what a
// detected overflow, underflow or division by zero turns into. Sets are
// immutable values compared with Equal.
//
// Resolve is the single place where the sets of two operands are reconciled:
// a plain operand defers to the safe one, and two safe operands must carry
// equal sets. A mismatch is a configuration error (ErrPolicyConflict), never
// an arithmetic one. Registry runs Resolve over declared operand pairs at
// startup so a conflicting configuration fails before any arithmetic runs.
package policy
