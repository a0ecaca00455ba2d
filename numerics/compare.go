package numerics

import "github.com/pratik-a/safe-numerics/numerics/policy"

// Comparisons are exact: they compare mathematical values, never converted
// representations, so int8(-1) is less than uint64(1). They cannot fail.

// Cmp returns -1, 0 or +1 as t is less than, equal to or greater than u.
func Cmp[P policy.Provider, U Operand[P]](t Int[P], u U) int {
	_, uv := operandOf[P](u)

	return t.val.Cmp(uv)
}

// Less reports t < u.
func Less[P policy.Provider, U Operand[P]](t Int[P], u U) bool {
	return Cmp(t, u) < 0
}

// Greater reports t > u.
func Greater[P policy.Provider, U Operand[P]](t Int[P], u U) bool {
	return Cmp(t, u) > 0
}

// LessEqual reports t <= u.
func LessEqual[P policy.Provider, U Operand[P]](t Int[P], u U) bool {
	return !Greater(t, u)
}

// GreaterEqual reports t >= u.
func GreaterEqual[P policy.Provider, U Operand[P]](t Int[P], u U) bool {
	return !Less(t, u)
}

// Equal reports t == u.
func Equal[P policy.Provider, U Operand[P]](t Int[P], u U) bool {
	return Cmp(t, u) == 0
}

// NotEqual reports t != u.
func NotEqual[P policy.Provider, U Operand[P]](t Int[P], u U) bool {
	return !Equal(t, u)
}
