package numeric

import (
	"math/big"
	"unsafe"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Integer is satisfied by every Go integer type, named ones included.
type Integer interface {
	constraints.Integer
}

// Kind identifies a fixed-width integer representation.
type Kind uint8

// Supported kinds. Invalid is the zero value and never the kind of a real type.
const (
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
}

// SignedKinds lists the signed kinds from narrowest to widest.
var SignedKinds = []Kind{Int8, Int16, Int32, Int64}

// UnsignedKinds lists the unsigned kinds from narrowest to widest.
var UnsignedKinds = []Kind{Uint8, Uint16, Uint32, Uint64}

// KindOf returns the kind that represents T. int, uint and uintptr map to the
// kind of the same width on the build platform.
func KindOf[T Integer]() Kind {
	var zero T

	return KindFor(int(unsafe.Sizeof(zero))*8, ^zero < 0)
}

// KindFor returns the kind with the given bit width and signedness, or Invalid.
func KindFor(bits int, signed bool) Kind {
	var k Kind

	switch bits {
	case 8:
		k = Int8
	case 16:
		k = Int16
	case 32:
		k = Int32
	case 64:
		k = Int64
	default:
		return Invalid
	}

	if !signed {
		k += Uint8 - Int8
	}

	return k
}

// String returns the Go spelling of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[Invalid]
}

// Valid reports whether k names a supported representation.
func (k Kind) Valid() bool {
	return k >= Int8 && k <= Uint64
}

// Signed reports whether k is a two's complement signed representation.
func (k Kind) Signed() bool {
	return k >= Int8 && k <= Int64
}

// Bits returns the width of k, or 0 for Invalid.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	default:
		return 0
	}
}

// maxMagnitude is the magnitude of the largest value of k.
func (k Kind) maxMagnitude() uint64 {
	bits := k.Bits()
	if bits == 0 {
		return 0
	}

	if k.Signed() {
		return 1<<(bits-1) - 1
	}

	return ^uint64(0) >> (64 - bits)
}

// minMagnitude is the magnitude of the smallest (most negative) value of k.
func (k Kind) minMagnitude() uint64 {
	if !k.Signed() {
		return 0
	}

	return 1 << (k.Bits() - 1)
}

// Min returns the smallest value representable by k.
func (k Kind) Min() Value {
	return Value{neg: k.minMagnitude() != 0, mag: k.minMagnitude()}
}

// Max returns the largest value representable by k.
func (k Kind) Max() Value {
	return Value{mag: k.maxMagnitude()}
}

// Contains reports whether v is representable by k without loss.
func (k Kind) Contains(v Value) bool {
	if !k.Valid() {
		return false
	}

	if v.neg {
		return v.mag <= k.minMagnitude()
	}

	return v.mag <= k.maxMagnitude()
}

// Range returns the closed interval [min, max] of k as exact decimals.
func (k Kind) Range() (lo, hi decimal.Decimal) {
	return k.Min().Decimal(), k.Max().Decimal()
}

// FromBits interprets the low Bits() bits of b as a value of k, sign-extending
// for signed kinds.
func (k Kind) FromBits(b uint64) Value {
	bits := k.Bits()
	if bits == 0 {
		return Value{}
	}

	shift := uint(64 - bits)

	if k.Signed() {
		return FromInt64(int64(b<<shift) >> shift)
	}

	return FromUint64(b << shift >> shift)
}

func bigFromUint64(u uint64) *big.Int {
	return new(big.Int).SetUint64(u)
}
