package numerics

import (
	"github.com/pratik-a/safe-numerics/numerics/checked"
	"github.com/pratik-a/safe-numerics/numerics/numeric"
	"github.com/pratik-a/safe-numerics/numerics/policy"
)

// The Plain* functions take a plain integer on the left and a safe integer on
// the right. Comparisons and commutative operators swap their operands and use
// the safe-left form.

// PlainLess reports t < u.
func PlainLess[P policy.Provider, T Plain](t T, u Int[P]) bool {
	return Greater(u, t)
}

// PlainGreater reports t > u.
func PlainGreater[P policy.Provider, T Plain](t T, u Int[P]) bool {
	return Less(u, t)
}

// PlainLessEqual reports t <= u.
func PlainLessEqual[P policy.Provider, T Plain](t T, u Int[P]) bool {
	return GreaterEqual(u, t)
}

// PlainGreaterEqual reports t >= u.
func PlainGreaterEqual[P policy.Provider, T Plain](t T, u Int[P]) bool {
	return LessEqual(u, t)
}

// PlainEqual reports t == u.
func PlainEqual[P policy.Provider, T Plain](t T, u Int[P]) bool {
	return Equal(u, t)
}

// PlainNotEqual reports t != u.
func PlainNotEqual[P policy.Provider, T Plain](t T, u Int[P]) bool {
	return NotEqual(u, t)
}

// PlainAdd returns t + u.
func PlainAdd[P policy.Provider, T Plain](t T, u Int[P]) (Int[P], error) {
	return Add(u, t)
}

// PlainMul returns t * u.
func PlainMul[P policy.Provider, T Plain](t T, u Int[P]) (Int[P], error) {
	return Mul(u, t)
}

// PlainOr returns t | u.
func PlainOr[P policy.Provider, T Plain](t T, u Int[P]) (Int[P], error) {
	return Or(u, t)
}

// PlainAnd returns t & u.
func PlainAnd[P policy.Provider, T Plain](t T, u Int[P]) (Int[P], error) {
	return And(u, t)
}

// PlainXor returns t ^ u.
func PlainXor[P policy.Provider, T Plain](t T, u Int[P]) (Int[P], error) {
	return Xor(u, t)
}

// PlainSub returns t - u. Subtraction does not commute, so the operands keep
// their order.
func PlainSub[P policy.Provider, T Plain](t T, u Int[P]) (Int[P], error) {
	return execute[P](checked.OpSub, policy.PlainOf[T](), numeric.Of(t), u.Type(), u.val)
}

// PlainDiv returns t / u. The safe operand u is the divisor and is checked
// for zero before dividing.
func PlainDiv[P policy.Provider, T Plain](t T, u Int[P]) (Int[P], error) {
	return plainQuotient(checked.OpDiv, t, u)
}

// PlainMod returns the remainder of t / u. The safe operand u is the divisor
// and is checked for zero before dividing.
func PlainMod[P policy.Provider, T Plain](t T, u Int[P]) (Int[P], error) {
	return plainQuotient(checked.OpMod, t, u)
}

func plainQuotient[P policy.Provider, T Plain](op checked.Op, t T, u Int[P]) (Int[P], error) {
	left, lv := policy.PlainOf[T](), numeric.Of(t)

	if !u.IsZero() {
		return execute[P](op, left, lv, u.Type(), u.val)
	}

	rt, err := policy.ResultType(op, left, u.Type())
	if err != nil {
		return Int[P]{}, misconfigured[P](op, left, u.Type(), err)
	}

	return handle[P](rt, &checked.Condition{
		Kind:   checked.DivideByZero,
		Op:     op,
		Result: rt.Kind,
		Left:   lv,
		Right:  u.val,
	})
}
