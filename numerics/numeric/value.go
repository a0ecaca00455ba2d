package numeric

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value is an exact integer in the closed range [-2^63, 2^64-1].
//
// The zero Value is 0. A negative Value always has a non-zero magnitude, so
// two Values are equal exactly when == reports them equal.
type Value struct {
	neg bool
	mag uint64
}

// Of returns the exact Value of v.
func Of[T Integer](v T) Value {
	if v < 0 {
		return Value{neg: true, mag: -uint64(int64(v))}
	}

	return Value{mag: uint64(v)}
}

// FromInt64 returns the Value of v.
func FromInt64(v int64) Value {
	return Of(v)
}

// FromUint64 returns the Value of v.
func FromUint64(v uint64) Value {
	return Value{mag: v}
}

// FromMagnitude builds a Value from a sign and a magnitude. A zero magnitude is
// always non-negative.
func FromMagnitude(negative bool, magnitude uint64) Value {
	return Value{neg: negative && magnitude != 0, mag: magnitude}
}

// IsZero reports whether v is 0.
func (v Value) IsZero() bool {
	return v.mag == 0
}

// IsNegative reports whether v < 0.
func (v Value) IsNegative() bool {
	return v.neg
}

// Magnitude returns |v|.
func (v Value) Magnitude() uint64 {
	return v.mag
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	switch {
	case v.neg:
		return -1
	case v.mag == 0:
		return 0
	default:
		return 1
	}
}

// Neg returns -v.
func (v Value) Neg() Value {
	return FromMagnitude(!v.neg, v.mag)
}

// Cmp compares v and o and returns -1, 0 or +1.
func (v Value) Cmp(o Value) int {
	switch {
	case v.neg && !o.neg:
		return -1
	case !v.neg && o.neg:
		return 1
	}

	c := 0

	switch {
	case v.mag < o.mag:
		c = -1
	case v.mag > o.mag:
		c = 1
	}

	if v.neg {
		return -c
	}

	return c
}

// Int64 returns v as an int64 and whether it fits.
func (v Value) Int64() (int64, bool) {
	if v.neg {
		if v.mag > 1<<63 {
			return 0, false
		}

		return int64(-v.mag), true
	}

	if v.mag > math.MaxInt64 {
		return 0, false
	}

	return int64(v.mag), true
}

// Uint64 returns v as a uint64 and whether it fits.
func (v Value) Uint64() (uint64, bool) {
	if v.neg {
		return 0, false
	}

	return v.mag, true
}

// TwosComplement returns the 64-bit two's complement encoding of v.
func (v Value) TwosComplement() uint64 {
	if v.neg {
		return -v.mag
	}

	return v.mag
}

// Decimal returns v as an exact decimal.
func (v Value) Decimal() decimal.Decimal {
	d := decimal.NewFromBigInt(bigFromUint64(v.mag), 0)
	if v.neg {
		return d.Neg()
	}

	return d
}

// String returns the base 10 representation of v.
func (v Value) String() string {
	s := strconv.FormatUint(v.mag, 10)
	if v.neg {
		return "-" + s
	}

	return s
}

// Get converts v to T, reporting false when v is outside T's range.
func Get[T Integer](v Value) (T, bool) {
	if !KindOf[T]().Contains(v) {
		return 0, false
	}

	return T(v.TwosComplement()), true
}
