package decimal

import "github.com/arbprec/decimal/bigerr"

// guardDigits is the extra working precision every transcendental adds to
// its requested precision before rounding the final result.
const guardDigits = 12

// roundToSignificantDigits rounds x so its coefficient carries exactly
// digits significant figures. Transcendental precision is expressed as a
// count of significant digits, not a fixed post-point scale.
func roundToSignificantDigits(x *BigDecimal, digits int, mode RoundingMode) *BigDecimal {
	if x.IsZero() {
		return x.Clone()
	}
	current := x.NumberOfSignificantDigits()
	drop := current - digits
	targetScale := x.scale - int32(drop)
	return x.Round(targetScale, mode)
}

// Sqrt returns the square root of x rounded to precision significant
// digits via coefficient-level Newton/integer-sqrt, operating on a scale
// forced even so the coefficient's integer sqrt can be taken directly.
func (x *BigDecimal) Sqrt(precision int) (*BigDecimal, error) {
	const op = "BigDecimal.Sqrt"
	if x.IsNegative() {
		return nil, bigerr.New(op, bigerr.Value, "sqrt of negative value")
	}
	if x.IsZero() {
		return NewBigDecimal(), nil
	}

	w := int32(precision + guardDigits)
	// Target scale 2*w so the coefficient sqrt carries w correct digits.
	targetScale := 2 * w
	lifted := x.Clone()
	if lifted.scale%2 != 0 {
		lifted.coeff = lifted.coeff.ScaleUpByPowerOf10(1)
		lifted.scale++
	}
	extra := targetScale - lifted.scale
	if extra < 0 {
		lifted.coeff, _ = lifted.coeff.ScaleDownByPowerOf10(uint64(-extra))
		lifted.scale = targetScale
	} else if extra > 0 {
		lifted.coeff = lifted.coeff.ScaleUpByPowerOf10(uint64(extra))
		lifted.scale = targetScale
	}

	root := lifted.coeff.Sqrt()
	result := &BigDecimal{neg: false, coeff: root, scale: targetScale / 2}
	return roundToSignificantDigits(result, precision, RoundHalfEven), nil
}

// Exp returns e^x at the given precision: range-reduce by ln2 so the
// Taylor series argument is small, evaluate the series, then rescale by
// the extracted power of two.
func (x *BigDecimal) Exp(precision int) (*BigDecimal, error) {
	w := precision + guardDigits
	ln2, err := lnTwo(w)
	if err != nil {
		return nil, err
	}

	k, r, err := reduceByLn2(x, ln2, w)
	if err != nil {
		return nil, err
	}

	series := taylorExp(r, w)
	result := powTwoInt(series, k, w)
	return roundToSignificantDigits(result, precision, RoundHalfEven), nil
}

// reduceByLn2 computes k = round(x/ln2) and r = x - k*ln2 so |r| <= ln2/2.
func reduceByLn2(x *BigDecimal, ln2 *BigDecimal, w int) (k int64, r *BigDecimal, err error) {
	q, err := x.Quo(ln2, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
	if err != nil {
		return 0, nil, err
	}
	kDec := q.Round(0, RoundHalfEven)
	kCoeff, convErr := kDec.coeff.Uint64()
	if convErr != nil {
		return 0, nil, convErr
	}
	ki := int64(kCoeff)
	if kDec.neg {
		ki = -ki
	}
	r = x.Sub(ln2.Mul(BigDecimalFromParts(kDec.neg, BigUIntFromUint64(kCoeff), 0)))
	return ki, r, nil
}

// taylorExp evaluates Σ r^n/n! until a term falls below 10^-w.
func taylorExp(r *BigDecimal, w int) *BigDecimal {
	sum := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
	term := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
	threshold := BigDecimalFromParts(false, BigUIntFromUint64(1), int32(w))

	for n := int64(1); n < int64(w)*4+20; n++ {
		term = term.Mul(r)
		term, _ = term.Quo(BigDecimalFromParts(false, BigUIntFromUint64(uint64(n)), 0), QuoContext{Scale: int32(w) + 4, Mode: RoundHalfEven})
		sum = sum.Add(term)
		if termBelowThreshold(term, threshold) {
			break
		}
	}
	return sum.Round(int32(w), RoundHalfEven)
}

func termBelowThreshold(term, threshold *BigDecimal) bool {
	return term.Abs().Cmp(threshold) < 0
}

// Abs returns |x|.
func (x *BigDecimal) Abs() *BigDecimal {
	return &BigDecimal{neg: false, coeff: x.coeff.Clone(), scale: x.scale}
}

// powTwoInt returns base * 2^k via square-and-multiply, k possibly
// negative.
func powTwoInt(base *BigDecimal, k int64, w int) *BigDecimal {
	if k == 0 {
		return base
	}
	neg := k < 0
	if neg {
		k = -k
	}
	two := BigDecimalFromParts(false, BigUIntFromUint64(2), 0)
	acc := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
	p := two
	for k > 0 {
		if k&1 == 1 {
			acc = capScale(acc.Mul(p), int32(w)+4)
		}
		k >>= 1
		if k > 0 {
			p = capScale(p.Mul(p), int32(w)+4)
		}
	}
	if neg {
		res, _ := base.Quo(acc, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
		return res
	}
	return base.Mul(acc)
}

// lnTwo computes ln(2) to w fractional digits by evaluating the
// ln((1+y)/(1-y)) series at y = 1/3 directly, rather than going through
// Ln's power-of-two reduction (which itself needs ln(2)).
func lnTwo(w int) (*BigDecimal, error) {
	one := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
	three := BigDecimalFromParts(false, BigUIntFromUint64(3), 0)
	y, err := one.Quo(three, QuoContext{Scale: int32(w) + 4, Mode: RoundHalfEven})
	if err != nil {
		return nil, err
	}
	return lnSeries(y, w), nil
}

// Ln returns the natural log of x at the given precision: scale x into
// [1,2) by dividing out a power of two, then evaluate the geometric
// Taylor series for ln((1+y)/(1-y)) with y = (x-1)/(x+1).
func (x *BigDecimal) Ln(precision int) (*BigDecimal, error) {
	const op = "BigDecimal.Ln"
	if x.IsZero() {
		return nil, bigerr.New(op, bigerr.ZeroDivision, "ln(0)")
	}
	if x.IsNegative() {
		return nil, bigerr.New(op, bigerr.Value, "ln of negative value")
	}

	w := precision + guardDigits
	one := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
	two := BigDecimalFromParts(false, BigUIntFromUint64(2), 0)

	m := x.Clone()
	k := 0
	for m.Cmp(two) >= 0 {
		var err error
		m, err = m.Quo(two, QuoContext{Scale: int32(w) + 4, Mode: RoundHalfEven})
		if err != nil {
			return nil, err
		}
		k++
	}
	for m.Cmp(one) < 0 {
		m = m.Mul(two)
		k--
	}

	y, err := m.Sub(one).Quo(m.Add(one), QuoContext{Scale: int32(w) + 4, Mode: RoundHalfEven})
	if err != nil {
		return nil, err
	}
	series := lnSeries(y, w)

	if k == 0 {
		return roundToSignificantDigits(series, precision, RoundHalfEven), nil
	}
	ln2, err := lnTwo(w)
	if err != nil {
		return nil, err
	}
	result := series.Add(ln2.Mul(BigDecimalFromParts(k < 0, BigUIntFromUint64(uint64(absInt(k))), 0)))
	return roundToSignificantDigits(result, precision, RoundHalfEven), nil
}

// lnSeries evaluates 2*(y + y^3/3 + y^5/5 + ...) until a term is below
// 10^-w, the geometric series for ln((1+y)/(1-y)).
func lnSeries(y *BigDecimal, w int) *BigDecimal {
	ySq := y.Mul(y).Round(int32(w)+4, RoundHalfEven)
	term := y.Clone()
	sum := y.Clone()
	threshold := BigDecimalFromParts(false, BigUIntFromUint64(1), int32(w))

	for n := int64(3); n < int64(w)*4+20; n += 2 {
		term = term.Mul(ySq).Round(int32(w)+4, RoundHalfEven)
		part, _ := term.Quo(BigDecimalFromParts(false, BigUIntFromUint64(uint64(n)), 0), QuoContext{Scale: int32(w) + 4, Mode: RoundHalfEven})
		sum = sum.Add(part)
		if termBelowThreshold(part, threshold) {
			break
		}
	}
	return sum.Add(sum).Round(int32(w), RoundHalfEven)
}

// Log10 returns the base-10 logarithm of x: ln(x)/ln(10).
func (x *BigDecimal) Log10(precision int) (*BigDecimal, error) {
	w := precision + guardDigits
	lnX, err := x.Ln(w)
	if err != nil {
		return nil, err
	}
	ten := BigDecimalFromParts(false, BigUIntFromUint64(10), 0)
	ln10, err := ten.Ln(w)
	if err != nil {
		return nil, err
	}
	result, err := lnX.Quo(ln10, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
	if err != nil {
		return nil, err
	}
	return roundToSignificantDigits(result, precision, RoundHalfEven), nil
}

// Log returns the logarithm of x in the given base: ln(x)/ln(base).
func (x *BigDecimal) Log(base *BigDecimal, precision int) (*BigDecimal, error) {
	w := precision + guardDigits
	lnX, err := x.Ln(w)
	if err != nil {
		return nil, err
	}
	lnBase, err := base.Ln(w)
	if err != nil {
		return nil, err
	}
	result, err := lnX.Quo(lnBase, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
	if err != nil {
		return nil, err
	}
	return roundToSignificantDigits(result, precision, RoundHalfEven), nil
}

// Power returns x^y at the given precision: integer
// exponents use square-and-multiply directly; otherwise exp(y*ln(x)).
func (x *BigDecimal) Power(y *BigDecimal, precision int) (*BigDecimal, error) {
	if y.IsInteger() {
		return x.powInteger(y, precision)
	}
	w := precision + guardDigits
	lnX, err := x.Ln(w)
	if err != nil {
		return nil, err
	}
	exponent := y.Mul(lnX).Round(int32(w), RoundHalfEven)
	return exponent.Exp(precision)
}

func (x *BigDecimal) powInteger(y *BigDecimal, precision int) (*BigDecimal, error) {
	const op = "BigDecimal.Power"
	yInt, err := y.Round(0, RoundDown).coeff.Uint64()
	if err != nil {
		return nil, bigerr.Wrap(op, bigerr.Overflow, err, "integer exponent too large")
	}
	neg := y.IsNegative()
	w := precision + guardDigits

	acc := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
	base := x.Clone()
	n := yInt
	for n > 0 {
		if n&1 == 1 {
			acc = capScale(acc.Mul(base), int32(w)+4)
		}
		n >>= 1
		if n > 0 {
			base = capScale(base.Mul(base), int32(w)+4)
		}
	}
	if neg {
		one := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
		w := precision + guardDigits
		inv, err := one.Quo(acc, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
		if err != nil {
			return nil, err
		}
		return roundToSignificantDigits(inv, precision, RoundHalfEven), nil
	}
	return roundToSignificantDigits(acc, precision, RoundHalfEven), nil
}

// capScale rounds x down to maxScale fractional digits when it carries
// more, and leaves it untouched otherwise, so repeated multiplications
// cannot let the fraction grow without bound while exact short values stay
// exact.
func capScale(x *BigDecimal, maxScale int32) *BigDecimal {
	if x.scale <= maxScale {
		return x
	}
	return x.Round(maxScale, RoundHalfEven)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
