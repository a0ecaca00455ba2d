package numerics

import (
	"fmt"

	"github.com/pratik-a/safe-numerics/numerics/checked"
	"github.com/pratik-a/safe-numerics/numerics/numeric"
	"github.com/pratik-a/safe-numerics/numerics/policy"
)

// Convert returns x stored as the kind of T. A value outside T's range is
// handled by the exception policy of P.
//
//	narrow, err := numerics.Convert[int8](wide)
func Convert[T numeric.Integer, P policy.Provider](x Int[P]) (Int[P], error) {
	k := numeric.KindOf[T]()

	res := checked.Convert(k, x.val)
	if res.Ok() {
		return Int[P]{kind: k, val: res.Value}, nil
	}

	return handle[P](policy.Safe(k, x.Policies()), res.Condition)
}

// Get returns x as a T. A value outside T's range is handled by the exception
// policy of P.
func Get[T numeric.Integer, P policy.Provider](x Int[P]) (T, error) {
	c, err := Convert[T](x)
	if err != nil {
		return 0, err
	}

	v, _ := numeric.Get[T](c.val)

	return v, nil
}

// Rebind moves x to provider Q. The policy sets of P and Q must be equal.
func Rebind[Q, P policy.Provider](x Int[P]) (Int[Q], error) {
	var q Q

	if _, err := policy.Resolve(x.Type(), policy.Safe(x.Kind(), q.Policies())); err != nil {
		return Int[Q]{}, fmt.Errorf("rebind %s: %w", x.Type(), err)
	}

	return Int[Q]{kind: x.Kind(), val: x.val}, nil
}
