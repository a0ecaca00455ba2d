package numerics

import (
	"github.com/pratik-a/safe-numerics/numerics/checked"
	"github.com/pratik-a/safe-numerics/numerics/policy"
)

// Each operator takes a safe left operand and either a safe or a plain right
// operand. The result kind comes from the promotion policy of P; an untyped
// constant on the right is an int.

// Add returns t + u.
func Add[P policy.Provider, U Operand[P]](t Int[P], u U) (Int[P], error) {
	return binary(checked.OpAdd, t, u)
}

// Sub returns t - u.
func Sub[P policy.Provider, U Operand[P]](t Int[P], u U) (Int[P], error) {
	return binary(checked.OpSub, t, u)
}

// Mul returns t * u.
func Mul[P policy.Provider, U Operand[P]](t Int[P], u U) (Int[P], error) {
	return binary(checked.OpMul, t, u)
}

// Div returns t / u truncated toward zero. A zero divisor is a domain error
// handled by the exception policy.
func Div[P policy.Provider, U Operand[P]](t Int[P], u U) (Int[P], error) {
	return binary(checked.OpDiv, t, u)
}

// Mod returns the remainder of t / u, with the sign of t.
func Mod[P policy.Provider, U Operand[P]](t Int[P], u U) (Int[P], error) {
	return binary(checked.OpMod, t, u)
}

// Or returns t | u.
func Or[P policy.Provider, U Operand[P]](t Int[P], u U) (Int[P], error) {
	return binary(checked.OpOr, t, u)
}

// And returns t & u.
func And[P policy.Provider, U Operand[P]](t Int[P], u U) (Int[P], error) {
	return binary(checked.OpAnd, t, u)
}

// Xor returns t ^ u.
func Xor[P policy.Provider, U Operand[P]](t Int[P], u U) (Int[P], error) {
	return binary(checked.OpXor, t, u)
}

func binary[P policy.Provider, U Operand[P]](op checked.Op, t Int[P], u U) (Int[P], error) {
	ut, uv := operandOf[P](u)

	return execute[P](op, t.Type(), t.val, ut, uv)
}
