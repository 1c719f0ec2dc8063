package decimal

import (
	"github.com/arbprec/decimal/bigerr"
	"github.com/arbprec/decimal/internal/limbs"
)

// DivisionMode selects the sign convention used by BigInt's division
// operators: Truncate rounds the quotient toward zero (Go's native
// integer semantics), Floor rounds toward negative infinity, and
// Euclidean always produces a non-negative remainder.
type DivisionMode int

const (
	Truncate DivisionMode = iota
	Floor
	Euclidean
)

// BigInt is an arbitrary-precision signed integer: a sign bit plus a
// BigUInt magnitude. The zero value has neg == false and a zero
// magnitude; there is no distinct negative zero.
type BigInt struct {
	neg bool
	mag *BigUInt
}

// NewBigInt returns the BigInt value zero.
func NewBigInt() *BigInt {
	return &BigInt{mag: NewBigUInt()}
}

// BigIntFromInt64 converts an int64 to a BigInt.
func BigIntFromInt64(v int64) *BigInt {
	if v < 0 {
		// v's magnitude as uint64 via two's-complement negation, avoiding
		// overflow on math.MinInt64.
		return &BigInt{neg: true, mag: BigUIntFromUint64(uint64(-v))}
	}
	return &BigInt{mag: BigUIntFromUint64(uint64(v))}
}

// BigIntFromBigUInt converts a BigUInt to a non-negative BigInt.
func BigIntFromBigUInt(x *BigUInt) *BigInt {
	return &BigInt{mag: x.Clone()}
}

// BigIntFromBigDecimal converts a BigDecimal with no fractional part to a
// BigInt, failing with a ConversionError when the value has no exact
// integer representation.
func BigIntFromBigDecimal(x *BigDecimal) (*BigInt, error) {
	const op = "BigIntFromBigDecimal"
	if !x.IsInteger() {
		return nil, bigerr.New(op, bigerr.Conversion, "non-integer value has no BigInt representation")
	}
	whole := x.Round(0, RoundDown)
	return (&BigInt{neg: whole.neg, mag: whole.coeff.Clone()}).normalize(), nil
}

// BigIntFromString parses a signed decimal integer literal.
func BigIntFromString(s string) (*BigInt, error) {
	const op = "BigIntFromString"
	r, err := limbs.Parse(op, s)
	if err != nil {
		return nil, err
	}
	if r.Scale > 0 {
		return nil, bigerr.New(op, bigerr.Conversion, "fractional value has no BigInt representation")
	}
	mag := &BigUInt{limb: r.Coeff}
	if r.Scale < 0 {
		mag.ScaleUpByPowerOf10InPlace(uint64(-r.Scale))
	}
	z := &BigInt{neg: r.Neg, mag: mag}
	return z.normalize(), nil
}

func (z *BigInt) normalize() *BigInt {
	if z.mag.IsZero() {
		z.neg = false
	}
	return z
}

// Clone returns an independent deep copy of x.
func (x *BigInt) Clone() *BigInt {
	return &BigInt{neg: x.neg, mag: x.mag.Clone()}
}

// Magnitude returns |x| as a BigUInt (the caller must not mutate the
// returned value in place; clone it first).
func (x *BigInt) Magnitude() *BigUInt { return x.mag }

// IsZero reports whether x is zero.
func (x *BigInt) IsZero() bool { return x.mag.IsZero() }

// IsNegative reports whether x < 0.
func (x *BigInt) IsNegative() bool { return x.neg }

// Sign returns -1, 0, or +1.
func (x *BigInt) Sign() int {
	if x.mag.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg returns -x.
func (x *BigInt) Neg() *BigInt {
	if x.mag.IsZero() {
		return x.Clone()
	}
	return &BigInt{neg: !x.neg, mag: x.mag.Clone()}
}

// Abs returns |x|.
func (x *BigInt) Abs() *BigInt {
	return &BigInt{neg: false, mag: x.mag.Clone()}
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x *BigInt) Cmp(y *BigInt) int {
	switch {
	case x.Sign() != y.Sign():
		if x.Sign() < y.Sign() {
			return -1
		}
		return 1
	case x.Sign() == 0:
		return 0
	case x.neg:
		return -x.mag.Cmp(y.mag)
	default:
		return x.mag.Cmp(y.mag)
	}
}

// Equal reports whether x == y.
func (x *BigInt) Equal(y *BigInt) bool { return x.Cmp(y) == 0 }

// Add returns x + y, dispatching to BigUInt add/sub depending on operand
// signs.
func (x *BigInt) Add(y *BigInt) *BigInt {
	if x.neg == y.neg {
		return (&BigInt{neg: x.neg, mag: x.mag.Add(y.mag)}).normalize()
	}
	if x.mag.Cmp(y.mag) >= 0 {
		mag, _ := x.mag.Sub(y.mag)
		return (&BigInt{neg: x.neg, mag: mag}).normalize()
	}
	mag, _ := y.mag.Sub(x.mag)
	return (&BigInt{neg: y.neg, mag: mag}).normalize()
}

// Sub returns x - y.
func (x *BigInt) Sub(y *BigInt) *BigInt {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x *BigInt) Mul(y *BigInt) *BigInt {
	return (&BigInt{neg: x.neg != y.neg, mag: x.mag.Mul(y.mag)}).normalize()
}

// QuoRem returns the quotient and remainder of x / y under the given
// DivisionMode. Division by zero fails with a ZeroDivisionError.
func (x *BigInt) QuoRem(y *BigInt, mode DivisionMode) (q, r *BigInt, err error) {
	const op = "BigInt.QuoRem"
	if y.IsZero() {
		return nil, nil, bigerr.New(op, bigerr.ZeroDivision, "division by zero")
	}
	uq, ur, err := x.mag.QuoRem(y.mag)
	if err != nil {
		return nil, nil, err
	}
	qNeg := x.neg != y.neg
	rNeg := x.neg

	q = (&BigInt{neg: qNeg, mag: uq}).normalize()
	r = (&BigInt{neg: rNeg, mag: ur}).normalize()

	switch mode {
	case Truncate:
		return q, r, nil
	case Floor:
		if !r.IsZero() && qNeg {
			q = q.Sub(BigIntFromInt64(1))
			r = r.Add(y)
		}
		return q, r, nil
	case Euclidean:
		if r.IsNegative() {
			if y.IsNegative() {
				q = q.Add(BigIntFromInt64(1))
				r = r.Sub(y)
			} else {
				q = q.Sub(BigIntFromInt64(1))
				r = r.Add(y)
			}
		}
		return q, r, nil
	default:
		return nil, nil, bigerr.New(op, bigerr.Value, "unknown division mode")
	}
}

// Pow returns x**k: the magnitude is raised by square-and-multiply, and
// the result is negative exactly when x is negative and k is odd.
func (x *BigInt) Pow(k uint64) *BigInt {
	return (&BigInt{neg: x.neg && k%2 == 1, mag: x.mag.Pow(k)}).normalize()
}

// Quo returns the truncated-toward-zero quotient x / y.
func (x *BigInt) Quo(y *BigInt) (*BigInt, error) {
	q, _, err := x.QuoRem(y, Truncate)
	return q, err
}

// Rem returns the truncated-toward-zero remainder x % y.
func (x *BigInt) Rem(y *BigInt) (*BigInt, error) {
	_, r, err := x.QuoRem(y, Truncate)
	return r, err
}

// AddAssign sets x = x + y, mutating and returning x.
func (x *BigInt) AddAssign(y *BigInt) *BigInt {
	*x = *x.Add(y)
	return x
}

// SubAssign sets x = x - y, mutating and returning x.
func (x *BigInt) SubAssign(y *BigInt) *BigInt {
	*x = *x.Sub(y)
	return x
}

// MulAssign sets x = x * y, mutating and returning x.
func (x *BigInt) MulAssign(y *BigInt) *BigInt {
	*x = *x.Mul(y)
	return x
}

// QuoAssign sets x = x / y (truncated), or returns a ZeroDivisionError
// leaving x unchanged.
func (x *BigInt) QuoAssign(y *BigInt) error {
	q, err := x.Quo(y)
	if err != nil {
		return err
	}
	*x = *q
	return nil
}

// RemAssign sets x = x % y, or returns a ZeroDivisionError leaving x
// unchanged.
func (x *BigInt) RemAssign(y *BigInt) error {
	r, err := x.Rem(y)
	if err != nil {
		return err
	}
	*x = *r
	return nil
}

// String renders x in base 10 with a leading '-' for negative values.
func (x *BigInt) String() string {
	s := limbs.Format(x.mag.limb)
	if x.neg {
		return "-" + s
	}
	return s
}
