package policy

import (
	"fmt"

	"github.com/pratik-a/safe-numerics/numerics/checked"
)

// ConflictError reports two safe operand types whose policy sets differ.
type ConflictError struct {
	Left  Type
	Right Type
}

// Error names both conflicting policy sets.
func (e *ConflictError) Error() string {
	if e == nil {
		return ErrPolicyConflict.Error()
	}

	return fmt.Sprintf("%s: %s vs %s", ErrPolicyConflict, e.Left, e.Right)
}

// Unwrap returns ErrPolicyConflict.
func (e *ConflictError) Unwrap() error {
	return ErrPolicyConflict
}

// Resolve returns the policy set governing an operation between a and b.
//
// Exactly one safe operand yields its set. Two safe operands must carry equal
// sets, otherwise a *ConflictError is returned. Two plain operands yield
// ErrNoPolicy. The resolved set is validated before it is returned.
func Resolve(a, b Type) (Set, error) {
	var set Set

	switch {
	case a.safe && b.safe:
		if !a.set.Equal(b.set) {
			return Set{}, &ConflictError{Left: a, Right: b}
		}

		set = a.set
	case a.safe:
		set = a.set
	case b.safe:
		set = b.set
	default:
		return Set{}, fmt.Errorf("%w: %s and %s", ErrNoPolicy, a, b)
	}

	if err := set.Validate(); err != nil {
		return Set{}, err
	}

	return set, nil
}

// ResultType returns the safe type holding the result of a op b: the kind the
// resolved promotion policy picks, carrying the resolved set. It depends on the
// operand types only.
func ResultType(op checked.Op, a, b Type) (Type, error) {
	set, err := Resolve(a, b)
	if err != nil {
		return Type{}, err
	}

	kind := set.Promotion.Result(op, a.Kind, b.Kind)
	if !kind.Valid() {
		return Type{}, fmt.Errorf("%w: promotion %s has no result for %s %s %s",
			ErrInvalidPolicySet, set.Promotion.Name(), a.Kind, op.Symbol(), b.Kind)
	}

	return Safe(kind, set), nil
}
