// Package decimal implements arbitrary-precision unsigned (BigUInt), signed
// (BigInt), and decimal floating (BigDecimal) arithmetic.
//
// The three types work similarly to math/big's Int and Float: all binary
// operations take their operands by value or pointer and return a freshly
// computed result, except the explicit in-place operators (AddAssign,
// SubAssign, MulAssign, QuoAssign, RemAssign) which mutate the receiver.
// There is no hidden global state: rounding mode and working precision are
// always explicit parameters, never ambient context.
package decimal

import (
	"github.com/arbprec/decimal/bigerr"
	"github.com/arbprec/decimal/internal/bigword"
	"github.com/arbprec/decimal/internal/limbs"

	"golang.org/x/exp/slices"
)

// BigUInt is an arbitrary-precision unsigned integer, stored as a
// little-endian vector of base-10^9 limbs. The canonical zero is a
// single zero limb; the top limb is always non-zero otherwise.
type BigUInt struct {
	limb []bigword.Word
}

// NewBigUInt returns the BigUInt value zero.
func NewBigUInt() *BigUInt {
	return &BigUInt{limb: []bigword.Word{0}}
}

// BigUIntFromUint64 converts a uint64 to a BigUInt.
func BigUIntFromUint64(v uint64) *BigUInt {
	z := &BigUInt{}
	return z.setUint64(v)
}

func (z *BigUInt) setUint64(v uint64) *BigUInt {
	if v == 0 {
		z.limb = []bigword.Word{0}
		return z
	}
	var out []bigword.Word
	for v > 0 {
		out = append(out, bigword.Word(v%bigword.Base))
		v /= bigword.Base
	}
	z.limb = out
	return z
}

// BigUIntFromString parses a decimal string into a BigUInt.
// Malformed text fails with a ValueError. A negative value, or one with a
// non-zero fractional part after any exponent is applied, fails with a
// ConversionError; an exponent that leaves an integer value is accepted.
func BigUIntFromString(s string) (*BigUInt, error) {
	const op = "BigUIntFromString"
	r, err := limbs.Parse(op, s)
	if err != nil {
		return nil, err
	}
	if r.Neg {
		return nil, bigerr.New(op, bigerr.Conversion, "negative value has no BigUInt representation")
	}
	if r.Scale > 0 {
		return nil, bigerr.New(op, bigerr.Conversion, "fractional value has no BigUInt representation")
	}
	z := &BigUInt{limb: r.Coeff}
	if r.Scale < 0 {
		z.ScaleUpByPowerOf10InPlace(uint64(-r.Scale))
	}
	return z, nil
}

// Clone returns an independent deep copy of x.
func (x *BigUInt) Clone() *BigUInt {
	return &BigUInt{limb: slices.Clone(x.limb)}
}

// IsZero reports whether x is zero.
func (x *BigUInt) IsZero() bool {
	return bigword.IsZero(x.limb)
}

// Sign returns 0 if x is zero, 1 otherwise (BigUInt has no negative
// values).
func (x *BigUInt) Sign() int {
	if x.IsZero() {
		return 0
	}
	return 1
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x *BigUInt) Cmp(y *BigUInt) int {
	return bigword.Cmp(bigword.Norm(x.limb), bigword.Norm(y.limb))
}

// Equal reports whether x == y.
func (x *BigUInt) Equal(y *BigUInt) bool { return x.Cmp(y) == 0 }

func (z *BigUInt) normalize() *BigUInt {
	z.limb = bigword.Norm(z.limb)
	return z
}

// limbsCopy returns a defensive copy of x's limbs, used whenever an
// operation must not let its result alias an operand's storage.
func limbsCopy(x []bigword.Word) []bigword.Word {
	return slices.Clone(x)
}
