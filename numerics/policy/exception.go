package policy

import (
	"context"

	"github.com/pratik-a/safe-numerics/numerics/checked"
	"github.com/pratik-a/safe-numerics/numerics/log"
	"github.com/pratik-a/safe-numerics/numerics/numeric"
)

// Throw returns the condition to the caller as an error.
type Throw struct{}

// Name implements Exception.
func (Throw) Name() string { return "throw" }

// OnError implements Exception.
func (Throw) OnError(c *checked.Condition) (numeric.Value, error) {
	return numeric.Value{}, c
}

// Trap panics with the condition. Use it where an arithmetic error means the
// program is already wrong.
type Trap struct{}

// Name implements Exception.
func (Trap) Name() string { return "trap" }

// OnError implements Exception. It never returns.
func (Trap) OnError(c *checked.Condition) (numeric.Value, error) {
	panic(c)
}

// Saturate substitutes the nearest representable bound: the result kind's
// maximum on overflow, its minimum on underflow, and zero on a domain error.
type Saturate struct{}

// Name implements Exception.
func (Saturate) Name() string { return "saturate" }

// OnError implements Exception.
func (Saturate) OnError(c *checked.Condition) (numeric.Value, error) {
	switch c.Kind {
	case checked.Overflow:
		return c.Result.Max(), nil
	case checked.Underflow:
		return c.Result.Min(), nil
	default:
		return numeric.Value{}, nil
	}
}

// Reporter logs every condition at error level and then defers to another
// exception policy. Two Reporters are the same policy when their next policies
// are; the logger is not part of a Reporter's identity.
type Reporter struct {
	logger log.Logger
	next   Exception
}

// NewReporter returns a Reporter logging to logger and delegating to next.
// A nil logger drops entries; a nil next behaves as Throw.
func NewReporter(logger log.Logger, next Exception) *Reporter {
	if logger == nil {
		logger = log.NewNop()
	}

	if next == nil {
		next = Throw{}
	}

	return &Reporter{logger: logger, next: next}
}

// Name implements Exception.
func (r *Reporter) Name() string {
	return "report(" + r.next.Name() + ")"
}

// Equivalent implements policy equality for sets holding a Reporter.
func (r *Reporter) Equivalent(other any) bool {
	o, ok := other.(*Reporter)
	if !ok {
		return false
	}

	if r == nil || o == nil {
		return r == o
	}

	return sameMember(r.next, o.next)
}

// OnError implements Exception.
func (r *Reporter) OnError(c *checked.Condition) (numeric.Value, error) {
	r.logger.Log(context.Background(), log.LevelError, "arithmetic error",
		log.Stringer("condition", c.Kind),
		log.Stringer("op", c.Op),
		log.Stringer("result_kind", c.Result),
		log.Stringer("left", c.Left),
		log.Stringer("right", c.Right),
		log.String("policy", r.next.Name()),
	)

	return r.next.OnError(c)
}
