package checked

import (
	"math/bits"

	"github.com/pratik-a/safe-numerics/numerics/numeric"
)

// Do runs the primitive for op with result kind r.
func Do(op Op, r numeric.Kind, a, b numeric.Value) Result {
	switch op {
	case OpAdd:
		return Add(r, a, b)
	case OpSub:
		return Subtract(r, a, b)
	case OpMul:
		return Multiply(r, a, b)
	case OpDiv:
		return Divide(r, a, b)
	case OpMod:
		return Modulus(r, a, b)
	case OpOr:
		return Or(r, a, b)
	case OpAnd:
		return And(r, a, b)
	case OpXor:
		return Xor(r, a, b)
	default:
		return fail(Domain, op, r, a, b)
	}
}

// Add returns a + b as a value of r.
func Add(r numeric.Kind, a, b numeric.Value) Result {
	return sum(OpAdd, r, a, b, b)
}

// Subtract returns a - b as a value of r.
func Subtract(r numeric.Kind, a, b numeric.Value) Result {
	return sum(OpSub, r, a, b, b.Neg())
}

// sum adds a and addend; b is the operand as the caller wrote it.
func sum(op Op, r numeric.Kind, a, b, addend numeric.Value) Result {
	if a.IsNegative() == addend.IsNegative() {
		mag, carry := bits.Add64(a.Magnitude(), addend.Magnitude(), 0)
		if carry != 0 {
			return outOfRange(op, r, a, b, a.IsNegative())
		}

		return fit(op, r, a, b, numeric.FromMagnitude(a.IsNegative(), mag))
	}

	if a.Magnitude() >= addend.Magnitude() {
		return fit(op, r, a, b, numeric.FromMagnitude(a.IsNegative(), a.Magnitude()-addend.Magnitude()))
	}

	return fit(op, r, a, b, numeric.FromMagnitude(addend.IsNegative(), addend.Magnitude()-a.Magnitude()))
}

// Multiply returns a * b as a value of r.
func Multiply(r numeric.Kind, a, b numeric.Value) Result {
	negative := a.IsNegative() != b.IsNegative()

	hi, lo := bits.Mul64(a.Magnitude(), b.Magnitude())
	if hi != 0 {
		return outOfRange(OpMul, r, a, b, negative)
	}

	return fit(OpMul, r, a, b, numeric.FromMagnitude(negative, lo))
}

// Divide returns a / b truncated toward zero as a value of r. A zero divisor is
// reported before any division is attempted.
func Divide(r numeric.Kind, a, b numeric.Value) Result {
	if b.IsZero() {
		return fail(DivideByZero, OpDiv, r, a, b)
	}

	q := a.Magnitude() / b.Magnitude()

	return fit(OpDiv, r, a, b, numeric.FromMagnitude(a.IsNegative() != b.IsNegative(), q))
}

// Modulus returns a % b as a value of r. The result takes the sign of a, as Go's
// % operator does. A zero divisor is reported before any division is attempted.
func Modulus(r numeric.Kind, a, b numeric.Value) Result {
	if b.IsZero() {
		return fail(DivideByZero, OpMod, r, a, b)
	}

	m := a.Magnitude() % b.Magnitude()

	return fit(OpMod, r, a, b, numeric.FromMagnitude(a.IsNegative(), m))
}

// Or returns the bitwise or of the two's complement encodings of a and b,
// truncated to r.
func Or(r numeric.Kind, a, b numeric.Value) Result {
	return ok(r.FromBits(a.TwosComplement() | b.TwosComplement()))
}

// And returns the bitwise and of the two's complement encodings of a and b,
// truncated to r.
func And(r numeric.Kind, a, b numeric.Value) Result {
	return ok(r.FromBits(a.TwosComplement() & b.TwosComplement()))
}

// Xor returns the bitwise xor of the two's complement encodings of a and b,
// truncated to r.
func Xor(r numeric.Kind, a, b numeric.Value) Result {
	return ok(r.FromBits(a.TwosComplement() ^ b.TwosComplement()))
}

// Convert returns v as a value of r.
func Convert(r numeric.Kind, v numeric.Value) Result {
	return fit(OpConvert, r, v, numeric.Value{}, v)
}

func fit(op Op, r numeric.Kind, a, b, v numeric.Value) Result {
	if r.Contains(v) {
		return ok(v)
	}

	return outOfRange(op, r, a, b, v.IsNegative())
}

func outOfRange(op Op, r numeric.Kind, a, b numeric.Value, negative bool) Result {
	if negative {
		return fail(Underflow, op, r, a, b)
	}

	return fail(Overflow, op, r, a, b)
}
