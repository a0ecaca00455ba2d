package numerics

import (
	"context"

	"github.com/pratik-a/safe-numerics/numerics/assert"
	"github.com/pratik-a/safe-numerics/numerics/checked"
	"github.com/pratik-a/safe-numerics/numerics/log"
	"github.com/pratik-a/safe-numerics/numerics/numeric"
	"github.com/pratik-a/safe-numerics/numerics/policy"
)

// Observed is implemented by providers that want configuration failures found
// while executing an operator reported to their own logger. Failures for other
// providers are written to stderr.
//
//	func (ledger) Logger() log.Logger { return ledgerLogger }
type Observed interface {
	Logger() log.Logger
}

func loggerOf[P policy.Provider]() log.Logger {
	var p P

	if o, ok := any(p).(Observed); ok {
		return o.Logger()
	}

	return nil
}

// execute runs op on two described operands and routes any condition through
// the exception policy of the resolved set.
func execute[P policy.Provider](op checked.Op, a policy.Type, av numeric.Value, b policy.Type, bv numeric.Value) (Int[P], error) {
	rt, err := policy.ResultType(op, a, b)
	if err != nil {
		return Int[P]{}, misconfigured[P](op, a, b, err)
	}

	res := checked.Do(op, rt.Kind, av, bv)
	if res.Ok() {
		return Int[P]{kind: rt.Kind, val: res.Value}, nil
	}

	return handle[P](rt, res.Condition)
}

// handle passes c to the exception policy of rt. A substituted value must be
// representable in the result kind.
func handle[P policy.Provider](rt policy.Type, c *checked.Condition) (Int[P], error) {
	set, _ := rt.PolicySet()

	v, err := set.Exception.OnError(c)
	if err != nil {
		return Int[P]{}, err
	}

	if !rt.Kind.Contains(v) {
		asserter := assert.New(context.Background(), loggerOf[P](), "numerics", c.Op.String())

		return Int[P]{}, asserter.Never(context.Background(), "exception policy substituted an unrepresentable value",
			"policy", set, "result_kind", rt.Kind, "value", v)
	}

	return Int[P]{kind: rt.Kind, val: v}, nil
}

// misconfigured reports a resolution failure. Operators take no context, so
// only the logger sees it here; Registry.Validate is the traced path.
func misconfigured[P policy.Provider](op checked.Op, a, b policy.Type, err error) error {
	asserter := assert.New(context.Background(), loggerOf[P](), "numerics", op.String())

	return asserter.NoError(context.Background(), err, "operand types have no usable policy set",
		"left", a, "right", b)
}
