package policy

import (
	"github.com/shopspring/decimal"

	"github.com/pratik-a/safe-numerics/numerics/checked"
	"github.com/pratik-a/safe-numerics/numerics/numeric"
)

// Native promotes like the usual arithmetic conversions without integer
// promotion: equal kinds keep their kind, otherwise the wider kind wins, and
// at equal width the unsigned kind wins. Every operation uses the same rule.
type Native struct{}

// Name implements Promotion.
func (Native) Name() string { return "native" }

// Result implements Promotion.
func (Native) Result(_ checked.Op, a, b numeric.Kind) numeric.Kind {
	return nativeResult(a, b)
}

func nativeResult(a, b numeric.Kind) numeric.Kind {
	switch {
	case !a.Valid() || !b.Valid():
		return numeric.Invalid
	case a == b:
		return a
	case a.Bits() > b.Bits():
		return a
	case b.Bits() > a.Bits():
		return b
	case a.Signed():
		return b
	default:
		return a
	}
}

// Automatic picks the narrowest kind that holds every possible result of the
// operation given the operand kind ranges. Unsigned kinds are only chosen when
// both operands are unsigned and the result cannot be negative. When no kind
// is wide enough the widest kind of that signedness is used and the checked
// primitive catches out-of-range results. Bitwise operations use the Native
// rule.
type Automatic struct{}

// Name implements Promotion.
func (Automatic) Name() string { return "automatic" }

// Result implements Promotion.
func (Automatic) Result(op checked.Op, a, b numeric.Kind) numeric.Kind {
	if !a.Valid() || !b.Valid() {
		return numeric.Invalid
	}

	if k, ok := automaticTable[automaticKey{op: op, a: a, b: b}]; ok {
		return k
	}

	return nativeResult(a, b)
}

type automaticKey struct {
	op   checked.Op
	a, b numeric.Kind
}

// automaticTable holds every Automatic result, computed once at startup.
var automaticTable = buildAutomaticTable()

func buildAutomaticTable() map[automaticKey]numeric.Kind {
	kinds := append(append([]numeric.Kind{}, numeric.SignedKinds...), numeric.UnsignedKinds...)
	table := make(map[automaticKey]numeric.Kind, len(kinds)*len(kinds)*len(checked.Ops))

	for _, op := range checked.Ops {
		for _, a := range kinds {
			for _, b := range kinds {
				key := automaticKey{op: op, a: a, b: b}

				if op.Bitwise() {
					table[key] = nativeResult(a, b)
					continue
				}

				lo, hi := resultInterval(op, a, b)
				table[key] = narrowest(lo, hi, !a.Signed() && !b.Signed())
			}
		}
	}

	return table
}

// resultInterval returns the exact bounds of a op b over the ranges of a and b.
func resultInterval(op checked.Op, a, b numeric.Kind) (lo, hi decimal.Decimal) {
	aLo, aHi := a.Range()
	bLo, bHi := b.Range()

	switch op {
	case checked.OpAdd:
		return aLo.Add(bLo), aHi.Add(bHi)
	case checked.OpSub:
		return aLo.Sub(bHi), aHi.Sub(bLo)
	case checked.OpMul:
		return decimal.Min(aLo.Mul(bLo), aLo.Mul(bHi), aHi.Mul(bLo), aHi.Mul(bHi)),
			decimal.Max(aLo.Mul(bLo), aLo.Mul(bHi), aHi.Mul(bLo), aHi.Mul(bHi))
	case checked.OpDiv:
		if !b.Signed() {
			return aLo, aHi
		}

		return decimal.Min(aLo, aHi.Neg()), decimal.Max(aHi, aLo.Neg())
	case checked.OpMod:
		bound := decimal.Max(bLo.Abs(), bHi).Sub(decimal.NewFromInt(1))
		lo = decimal.Max(aLo, bound.Neg())
		hi = decimal.Min(aHi, bound)

		return decimal.Min(lo, decimal.Zero), decimal.Max(hi, decimal.Zero)
	default:
		return aLo, aHi
	}
}

func narrowest(lo, hi decimal.Decimal, unsigned bool) numeric.Kind {
	candidates := numeric.SignedKinds
	if unsigned && !lo.IsNegative() {
		candidates = numeric.UnsignedKinds
	}

	for _, k := range candidates {
		kLo, kHi := k.Range()
		if kLo.LessThanOrEqual(lo) && hi.LessThanOrEqual(kHi) {
			return k
		}
	}

	return candidates[len(candidates)-1]
}
