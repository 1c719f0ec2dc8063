package decimal

import (
	"github.com/arbprec/decimal/bigerr"
	"github.com/arbprec/decimal/internal/bigword"
	"github.com/arbprec/decimal/internal/limbs"
)

// BigDecimal is an arbitrary-precision decimal floating-point value:
// sign, a BigUInt coefficient, and a scale such that the represented
// value is (-1)^neg * coefficient * 10^-scale. Scale may be negative (a
// coefficient followed by trailing zeros).
type BigDecimal struct {
	neg   bool
	coeff *BigUInt
	scale int32
}

// NewBigDecimal returns the BigDecimal value zero.
func NewBigDecimal() *BigDecimal {
	return &BigDecimal{coeff: NewBigUInt()}
}

// BigDecimalFromString parses a decimal literal, including scientific
// notation.
func BigDecimalFromString(s string) (*BigDecimal, error) {
	const op = "BigDecimalFromString"
	r, err := limbs.Parse(op, s)
	if err != nil {
		return nil, err
	}
	z := &BigDecimal{neg: r.Neg, coeff: &BigUInt{limb: r.Coeff}, scale: r.Scale}
	return z.normalize(), nil
}

// BigDecimalFromParts builds a BigDecimal directly from a sign, an
// unscaled coefficient, and a scale.
func BigDecimalFromParts(neg bool, coeff *BigUInt, scale int32) *BigDecimal {
	z := &BigDecimal{neg: neg, coeff: coeff.Clone(), scale: scale}
	return z.normalize()
}

// BigDecimalFromBigInt converts a BigInt to a BigDecimal of scale 0.
func BigDecimalFromBigInt(x *BigInt) *BigDecimal {
	return &BigDecimal{neg: x.neg, coeff: x.mag.Clone(), scale: 0}
}

func (z *BigDecimal) normalize() *BigDecimal {
	if z.coeff.IsZero() {
		z.neg = false
	}
	return z
}

// Clone returns an independent deep copy of x.
func (x *BigDecimal) Clone() *BigDecimal {
	return &BigDecimal{neg: x.neg, coeff: x.coeff.Clone(), scale: x.scale}
}

// Coefficient returns x's unscaled coefficient.
func (x *BigDecimal) Coefficient() *BigUInt { return x.coeff }

// Scale returns x's scale (digits to the right of the decimal point).
func (x *BigDecimal) Scale() int32 { return x.scale }

// IsZero reports whether x is zero.
func (x *BigDecimal) IsZero() bool { return x.coeff.IsZero() }

// IsNegative reports whether x < 0.
func (x *BigDecimal) IsNegative() bool { return x.neg }

// Sign returns -1, 0, or +1.
func (x *BigDecimal) Sign() int {
	if x.coeff.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsInteger reports whether x has no fractional part at its current
// scale: scale <= 0, or the low |scale| digits of the coefficient are
// all zero.
func (x *BigDecimal) IsInteger() bool {
	if x.scale <= 0 {
		return true
	}
	_, rem := x.coeff.ScaleDownByPowerOf10(uint64(x.scale))
	return rem.IsZero()
}

// NumberOfSignificantDigits returns the number of decimal digits in x's
// coefficient (treating zero as having one digit).
func (x *BigDecimal) NumberOfSignificantDigits() int {
	limb := bigword.Norm(x.coeff.limb)
	return (len(limb)-1)*bigword.DigitsPerWord + bigword.DigitCount(limb[len(limb)-1])
}

// align brings x and y to a common scale, returning their aligned
// coefficients and that common scale. Every add/sub/compare performs
// this step first.
func align(x, y *BigDecimal) (xc, yc *BigUInt, scale int32) {
	switch {
	case x.scale == y.scale:
		return x.coeff.Clone(), y.coeff.Clone(), x.scale
	case x.scale > y.scale:
		yc = y.coeff.ScaleUpByPowerOf10(uint64(x.scale - y.scale))
		return x.coeff.Clone(), yc, x.scale
	default:
		xc = x.coeff.ScaleUpByPowerOf10(uint64(y.scale - x.scale))
		return xc, y.coeff.Clone(), y.scale
	}
}

// Cmp compares x and y numerically, returning -1, 0, or +1.
func (x *BigDecimal) Cmp(y *BigDecimal) int {
	if x.Sign() != y.Sign() {
		if x.Sign() < y.Sign() {
			return -1
		}
		return 1
	}
	if x.Sign() == 0 {
		return 0
	}
	xc, yc, _ := align(x, y)
	c := xc.Cmp(yc)
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x == y.
func (x *BigDecimal) Equal(y *BigDecimal) bool { return x.Cmp(y) == 0 }

// Add returns x + y: align scales, then add or subtract magnitudes
// depending on sign.
func (x *BigDecimal) Add(y *BigDecimal) *BigDecimal {
	xc, yc, scale := align(x, y)
	if x.neg == y.neg {
		return (&BigDecimal{neg: x.neg, coeff: xc.Add(yc), scale: scale}).normalize()
	}
	if xc.Cmp(yc) >= 0 {
		mag, _ := xc.Sub(yc)
		return (&BigDecimal{neg: x.neg, coeff: mag, scale: scale}).normalize()
	}
	mag, _ := yc.Sub(xc)
	return (&BigDecimal{neg: y.neg, coeff: mag, scale: scale}).normalize()
}

// Sub returns x - y.
func (x *BigDecimal) Sub(y *BigDecimal) *BigDecimal {
	neg := y.neg
	flipped := &BigDecimal{neg: !neg, coeff: y.coeff, scale: y.scale}
	if y.IsZero() {
		flipped.neg = false
	}
	return x.Add(flipped)
}

// Mul returns x * y: coefficients multiply, scales add.
func (x *BigDecimal) Mul(y *BigDecimal) *BigDecimal {
	return (&BigDecimal{
		neg:   x.neg != y.neg,
		coeff: x.coeff.Mul(y.coeff),
		scale: x.scale + y.scale,
	}).normalize()
}

// QuoContext is the explicit target scale and rounding mode the division
// operator needs, since unlike +, -, and *, decimal division does not in
// general terminate at a derivable scale.
type QuoContext struct {
	Scale int32
	Mode  RoundingMode
}

// Quo returns x / y rounded to ctx.Scale digits after the point using
// ctx.Mode. Division by zero fails with a ZeroDivisionError.
func (x *BigDecimal) Quo(y *BigDecimal, ctx QuoContext) (*BigDecimal, error) {
	const op = "BigDecimal.Quo"
	if y.IsZero() {
		return nil, bigerr.New(op, bigerr.ZeroDivision, "division by zero")
	}
	if x.IsZero() {
		return NewBigDecimal(), nil
	}

	// Compute a few extra digits of working precision beyond ctx.Scale so
	// the final Round sees real digits to decide on, not truncation noise.
	const guard = 10
	workScale := ctx.Scale + guard
	shift := workScale - (x.scale - y.scale)
	if shift < 0 {
		shift = 0
	}
	scaledX := x.coeff.ScaleUpByPowerOf10(uint64(shift))
	q, _, err := scaledX.QuoRem(y.coeff)
	if err != nil {
		return nil, err
	}
	resultScale := x.scale - y.scale + shift
	z := (&BigDecimal{neg: x.neg != y.neg, coeff: q, scale: resultScale}).normalize()
	return z.Round(ctx.Scale, ctx.Mode), nil
}

// AddAssign sets x = x + y, mutating and returning x.
func (x *BigDecimal) AddAssign(y *BigDecimal) *BigDecimal {
	*x = *x.Add(y)
	return x
}

// SubAssign sets x = x - y, mutating and returning x.
func (x *BigDecimal) SubAssign(y *BigDecimal) *BigDecimal {
	*x = *x.Sub(y)
	return x
}

// MulAssign sets x = x * y, mutating and returning x.
func (x *BigDecimal) MulAssign(y *BigDecimal) *BigDecimal {
	*x = *x.Mul(y)
	return x
}

// QuoAssign sets x = x / y under ctx, or returns a ZeroDivisionError
// leaving x unchanged.
func (x *BigDecimal) QuoAssign(y *BigDecimal, ctx QuoContext) error {
	q, err := x.Quo(y, ctx)
	if err != nil {
		return err
	}
	*x = *q
	return nil
}

// RemAssign sets x = x % y, or returns a ZeroDivisionError leaving x
// unchanged.
func (x *BigDecimal) RemAssign(y *BigDecimal) error {
	r, err := x.Rem(y)
	if err != nil {
		return err
	}
	*x = *r
	return nil
}

// Rem returns x % y: the remainder left after removing the truncated
// integer quotient, so the result has the sign of x and magnitude < |y|.
func (x *BigDecimal) Rem(y *BigDecimal) (*BigDecimal, error) {
	const op = "BigDecimal.Rem"
	if y.IsZero() {
		return nil, bigerr.New(op, bigerr.ZeroDivision, "division by zero")
	}
	q, err := x.Quo(y, QuoContext{Scale: 0, Mode: RoundDown})
	if err != nil {
		return nil, err
	}
	return x.Sub(q.Mul(y)), nil
}

// String renders x in plain decimal notation.
func (x *BigDecimal) String() string {
	digits := limbs.Format(x.coeff.limb)
	sign := ""
	if x.neg {
		sign = "-"
	}
	if x.scale <= 0 {
		if x.scale < 0 {
			digits += zeros(int(-x.scale))
		}
		return sign + digits
	}
	if int(x.scale) >= len(digits) {
		return sign + "0." + zeros(int(x.scale)-len(digits)) + digits
	}
	cut := len(digits) - int(x.scale)
	return sign + digits[:cut] + "." + digits[cut:]
}

func zeros(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
