package policy

import (
	"github.com/pratik-a/safe-numerics/numerics/numeric"
)

// Type describes an operand type: its representation kind and, for safe
// types, the policy set it carries.
type Type struct {
	Kind numeric.Kind
	set  Set
	safe bool
}

// Plain describes a plain integer type of kind k.
func Plain(k numeric.Kind) Type {
	return Type{Kind: k}
}

// Safe describes a safe integer type of kind k carrying set.
func Safe(k numeric.Kind, set Set) Type {
	return Type{Kind: k, set: set, safe: true}
}

// PlainOf describes the plain Go integer type T.
func PlainOf[T numeric.Integer]() Type {
	return Plain(numeric.KindOf[T]())
}

// SafeOf describes a safe integer stored as T under provider P.
func SafeOf[P Provider, T numeric.Integer]() Type {
	var p P

	return Safe(numeric.KindOf[T](), p.Policies())
}

// IsSafe reports whether t carries a policy set.
func (t Type) IsSafe() bool {
	return t.safe
}

// PolicySet returns the set carried by t; ok is false for plain types.
func (t Type) PolicySet() (set Set, ok bool) {
	return t.set, t.safe
}

// String renders plain types as their kind and safe types as safe[kind, set].
func (t Type) String() string {
	if !t.safe {
		return t.Kind.String()
	}

	return "safe[" + t.Kind.String() + ", " + t.set.String() + "]"
}
