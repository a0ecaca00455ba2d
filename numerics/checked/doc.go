// Package checked implements integer primitives that report overflow,
// underflow and division by zero instead of wrapping.
//
// Every primitive takes the result kind and two exact operand values. The
// mathematically exact result is computed first and then range-tested against
// the result kind, so operands never need to fit the result kind themselves.
// Failures come back as a *Condition inside the Result; deciding what happens
// next belongs to an exception policy.
package checked
