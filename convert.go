package decimal

import (
	"math"
	"strconv"

	"github.com/arbprec/decimal/bigerr"

	"golang.org/x/exp/constraints"
)

// BigIntFromInt converts any native signed or unsigned integer to a BigInt.
func BigIntFromInt[T constraints.Integer](v T) *BigInt {
	if v < 0 {
		return BigIntFromInt64(int64(v))
	}
	return &BigInt{mag: BigUIntFromUint64(uint64(v))}
}

// BigDecimalFromInt converts any native signed or unsigned integer to a
// BigDecimal of scale 0.
func BigDecimalFromInt[T constraints.Integer](v T) *BigDecimal {
	return BigDecimalFromBigInt(BigIntFromInt(v))
}

// Int64 converts x to an int64, failing with an OverflowError if x is out
// of range.
func (x *BigInt) Int64() (int64, error) {
	const op = "BigInt.Int64"
	v, err := x.mag.Uint64()
	if err != nil {
		return 0, bigerr.Wrap(op, bigerr.Overflow, err, "value overflows int64")
	}
	if x.neg {
		if v > uint64(math.MaxInt64)+1 {
			return 0, bigerr.New(op, bigerr.Overflow, "value overflows int64")
		}
		return -int64(v), nil
	}
	if v > uint64(math.MaxInt64) {
		return 0, bigerr.New(op, bigerr.Overflow, "value overflows int64")
	}
	return int64(v), nil
}

// Int64 converts x to an int64, truncating any fractional part toward
// zero, and fails with an OverflowError if the integer part is out of
// range.
func (x *BigDecimal) Int64() (int64, error) {
	whole := x.Round(0, RoundDown)
	i := (&BigInt{neg: whole.neg, mag: whole.coeff}).normalize()
	return i.Int64()
}

// Float64 converts x to the nearest representable float64, rounding
// half-even, with out-of-range magnitudes saturating to an infinity. The
// decimal-text round trip through strconv gives the correctly rounded
// binary value without a separate binary conversion path.
func (x *BigDecimal) Float64() float64 {
	// ParseFloat only fails on syntax (impossible for String output) or
	// range, and the range case already yields the signed infinity.
	f, _ := strconv.ParseFloat(x.String(), 64)
	return f
}
