// Package numerics provides range-checked integers whose arithmetic never
// wraps silently.
//
// A safe integer is an Int[P]: an exact value, the kind it is stored as, and a
// policy provider P fixed at the type level. Every operator resolves the
// policy set of its operands, asks the set's promotion policy for the result
// kind, runs the checked primitive and hands any overflow, underflow or
// division by zero to the set's exception policy.
//
//	x := numerics.New[numerics.Default](int8(127))
//	_, err := numerics.Add(x, int8(1)) // errors.Is(err, checked.ErrOverflow)
//
// Operators with a safe left operand accept either another Int[P] or a plain
// Go integer on the right. The Plain* functions take a plain integer on the
// left and a safe integer on the right.
//
// Two safe operands must share P, so combining integers with different
// providers does not compile. Rebind moves a value between providers whose
// policy sets are equal.
package numerics
