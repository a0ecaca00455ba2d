package numerics

import (
	"github.com/pratik-a/safe-numerics/numerics/numeric"
	"github.com/pratik-a/safe-numerics/numerics/policy"
)

// Int is a safe integer governed by the policy set of P.
//
// The zero Int is an int64 zero. Values are immutable.
type Int[P policy.Provider] struct {
	kind numeric.Kind
	val  numeric.Value
}

// New returns v as a safe integer stored with the kind of T.
func New[P policy.Provider, T numeric.Integer](v T) Int[P] {
	return Int[P]{kind: numeric.KindOf[T](), val: numeric.Of(v)}
}

// Kind returns the representation kind of x.
func (x Int[P]) Kind() numeric.Kind {
	if x.kind == numeric.Invalid {
		return numeric.Int64
	}

	return x.kind
}

// Value returns the exact value of x.
func (x Int[P]) Value() numeric.Value {
	return x.val
}

// Policies returns the policy set x carries.
func (x Int[P]) Policies() policy.Set {
	var p P

	return p.Policies()
}

// Type describes x as an operand type.
func (x Int[P]) Type() policy.Type {
	return policy.Safe(x.Kind(), x.Policies())
}

// IsZero reports whether x is 0.
func (x Int[P]) IsZero() bool {
	return x.val.IsZero()
}

// Sign returns -1, 0 or +1.
func (x Int[P]) Sign() int {
	return x.val.Sign()
}

// Int64 returns x as an int64 and whether it fits.
func (x Int[P]) Int64() (int64, bool) {
	return x.val.Int64()
}

// Uint64 returns x as a uint64 and whether it fits.
func (x Int[P]) Uint64() (uint64, bool) {
	return x.val.Uint64()
}

// String returns x in base 10.
func (x Int[P]) String() string {
	return x.val.String()
}
