package checked

// Op identifies a binary operation handled by the checked primitives.
type Op uint8

// Operations. OpConvert is the unary range-checked conversion.
const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpMod
	OpOr
	OpAnd
	OpXor
	OpConvert
)

// Ops lists every binary operation.
var Ops = []Op{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpOr, OpAnd, OpXor}

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpMod:
		return "modulus"
	case OpOr:
		return "or"
	case OpAnd:
		return "and"
	case OpXor:
		return "xor"
	case OpConvert:
		return "convert"
	default:
		return "unknown"
	}
}

// Symbol returns the Go operator for op.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpOr:
		return "|"
	case OpAnd:
		return "&"
	case OpXor:
		return "^"
	default:
		return "?"
	}
}

// Bitwise reports whether op works on representations rather than values.
func (op Op) Bitwise() bool {
	return op == OpOr || op == OpAnd || op == OpXor
}

// Commutative reports whether a op b == b op a for every a and b.
func (op Op) Commutative() bool {
	switch op {
	case OpAdd, OpMul, OpOr, OpAnd, OpXor:
		return true
	default:
		return false
	}
}
