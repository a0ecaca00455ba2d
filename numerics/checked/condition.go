package checked

import (
	"errors"
	"fmt"

	"github.com/pratik-a/safe-numerics/numerics/numeric"
)

var (
	// ErrOverflow is returned when an exact result is above the result kind's maximum.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrUnderflow is returned when an exact result is below the result kind's minimum.
	ErrUnderflow = errors.New("arithmetic underflow")
	// ErrDomain is returned when an operation is undefined for its operands.
	ErrDomain = errors.New("arithmetic domain error")
	// ErrDivisionByZero is the domain error raised by division or modulus by zero.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrDomain)
)

// ErrorKind classifies a detected arithmetic error.
type ErrorKind uint8

// Error kinds.
const (
	Overflow ErrorKind = iota + 1
	Underflow
	DivideByZero
	Domain
)

// String returns the lowercase name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case DivideByZero:
		return "divide by zero"
	case Domain:
		return "domain error"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case Overflow:
		return ErrOverflow
	case Underflow:
		return ErrUnderflow
	case DivideByZero:
		return ErrDivisionByZero
	default:
		return ErrDomain
	}
}

// Condition is a captured arithmetic error. It carries the operation and the
// offending operands so exception policies and logs can report them.
//
// Right is unused for unary operations such as Convert.
type Condition struct {
	Kind   ErrorKind
	Op     Op
	Result numeric.Kind
	Left   numeric.Value
	Right  numeric.Value
}

// Error implements error.
func (c *Condition) Error() string {
	if c == nil {
		return ErrDomain.Error()
	}

	if c.Op == OpConvert {
		return fmt.Sprintf("%s %s: %s(%s)", c.Result, c.Kind, c.Result, c.Left)
	}

	return fmt.Sprintf("%s %s: %s %s %s", c.Result, c.Kind, c.Left, c.Op.Symbol(), c.Right)
}

// Unwrap returns the sentinel matching the condition kind, so callers can use
// errors.Is(err, checked.ErrOverflow).
func (c *Condition) Unwrap() error {
	if c == nil {
		return ErrDomain
	}

	return c.Kind.sentinel()
}

// Result is the outcome of a checked primitive: either a Value of the result
// kind or a captured Condition.
type Result struct {
	Value     numeric.Value
	Condition *Condition
}

// Ok reports whether the primitive produced a value.
func (r Result) Ok() bool {
	return r.Condition == nil
}

func ok(v numeric.Value) Result {
	return Result{Value: v}
}

func fail(kind ErrorKind, op Op, result numeric.Kind, a, b numeric.Value) Result {
	return Result{Condition: &Condition{
		Kind:   kind,
		Op:     op,
		Result: result,
		Left:   a,
		Right:  b,
	}}
}
