package policy

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/pratik-a/safe-numerics/numerics/checked"
	"github.com/pratik-a/safe-numerics/numerics/numeric"
)

var (
	// ErrConfiguration is the root of every policy configuration error.
	ErrConfiguration = errors.New("policy configuration error")
	// ErrNoPolicy is returned when neither operand carries a policy set.
	ErrNoPolicy = fmt.Errorf("%w: neither operand carries a policy set", ErrConfiguration)
	// ErrPolicyConflict is returned when two safe operands carry different sets.
	ErrPolicyConflict = fmt.Errorf("%w: policy sets differ", ErrConfiguration)
	// ErrInvalidPolicySet is returned for sets with missing or non-comparable members.
	ErrInvalidPolicySet = fmt.Errorf("%w: invalid policy set", ErrConfiguration)
)

// Promotion chooses the kind that holds the result of op applied to operands
// of kinds a and b. Implementations must be pure and return a valid kind for
// every pair of valid kinds and every operation in checked.Ops.
type Promotion interface {
	Name() string
	Result(op checked.Op, a, b numeric.Kind) numeric.Kind
}

// Exception decides the outcome of a detected arithmetic error: a non-nil
// error, a substitute value, or a panic.
type Exception interface {
	Name() string
	OnError(c *checked.Condition) (numeric.Value, error)
}

// Set is an immutable pairing of promotion and exception policies. Members
// must be comparable (zero-size structs or pointers) so sets compare by value.
// A member implementing Equivalent decides its own equality instead.
type Set struct {
	Promotion Promotion
	Exception Exception
}

// Provider names a policy set at the type level. Providers are zero-size types
// whose zero value answers Policies.
type Provider interface {
	Policies() Set
}

// Equivalent is implemented by policies whose identity is not their Go value,
// such as policies that hold a logger. Equivalent must be symmetric.
type Equivalent interface {
	Equivalent(other any) bool
}

// NewSet builds a set from its two policies.
func NewSet(promotion Promotion, exception Exception) Set {
	return Set{Promotion: promotion, Exception: exception}
}

// Validate reports ErrInvalidPolicySet when a member is nil or not comparable.
func (s Set) Validate() error {
	if s.Promotion == nil || s.Exception == nil {
		return fmt.Errorf("%w: %s has a nil member", ErrInvalidPolicySet, s)
	}

	if !reflect.TypeOf(s.Promotion).Comparable() || !reflect.TypeOf(s.Exception).Comparable() {
		return fmt.Errorf("%w: %s has a non-comparable member", ErrInvalidPolicySet, s)
	}

	return nil
}

// Equal reports whether s and o name the same policies.
func (s Set) Equal(o Set) bool {
	return sameMember(s.Promotion, o.Promotion) && sameMember(s.Exception, o.Exception)
}

func sameMember(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if e, ok := a.(Equivalent); ok {
		return e.Equivalent(b)
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}

// String renders the set as "promotion/exception".
func (s Set) String() string {
	return memberName(s.Promotion) + "/" + memberName(s.Exception)
}

func memberName(m interface{ Name() string }) string {
	if m == nil || reflect.ValueOf(m).Kind() == reflect.Pointer && reflect.ValueOf(m).IsNil() {
		return "<nil>"
	}

	return m.Name()
}
