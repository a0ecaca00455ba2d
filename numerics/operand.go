package numerics

import (
	"github.com/pratik-a/safe-numerics/numerics/numeric"
	"github.com/pratik-a/safe-numerics/numerics/policy"
)

// Plain is the set of plain integer operand types.
type Plain interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Operand is the set of types that may appear next to an Int[P]: another
// Int[P] or a plain integer.
type Operand[P policy.Provider] interface {
	Int[P] | int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// operandOf describes u and returns its exact value.
func operandOf[P policy.Provider, U Operand[P]](u U) (policy.Type, numeric.Value) {
	switch v := any(u).(type) {
	case Int[P]:
		return v.Type(), v.val
	case int:
		return plainOf(v)
	case int8:
		return plainOf(v)
	case int16:
		return plainOf(v)
	case int32:
		return plainOf(v)
	case int64:
		return plainOf(v)
	case uint:
		return plainOf(v)
	case uint8:
		return plainOf(v)
	case uint16:
		return plainOf(v)
	case uint32:
		return plainOf(v)
	case uint64:
		return plainOf(v)
	case uintptr:
		return plainOf(v)
	default:
		return policy.Type{}, numeric.Value{}
	}
}

func plainOf[T numeric.Integer](v T) (policy.Type, numeric.Value) {
	return policy.PlainOf[T](), numeric.Of(v)
}
