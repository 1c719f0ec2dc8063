package decimal

import "github.com/arbprec/decimal/bigerr"

// Sin returns sin(x) at the given precision: range-reduce modulo 2*pi,
// then further reduce into [-pi/4, pi/4] before evaluating the Taylor
// series, so the series always converges fast.
func (x *BigDecimal) Sin(precision int) (*BigDecimal, error) {
	w := precision + guardDigits
	r, quadrant, err := reduceAngle(x, w)
	if err != nil {
		return nil, err
	}
	s, c := sinCosSeries(r, w)
	return roundToSignificantDigits(quadrantSinCos(s, c, quadrant, true), precision, RoundHalfEven), nil
}

// Cos returns cos(x) at the given precision.
func (x *BigDecimal) Cos(precision int) (*BigDecimal, error) {
	w := precision + guardDigits
	r, quadrant, err := reduceAngle(x, w)
	if err != nil {
		return nil, err
	}
	s, c := sinCosSeries(r, w)
	return roundToSignificantDigits(quadrantSinCos(s, c, quadrant, false), precision, RoundHalfEven), nil
}

// Tan returns sin(x)/cos(x), failing with a ZeroDivisionError if cos(x)
// underflows to zero at the working precision.
func (x *BigDecimal) Tan(precision int) (*BigDecimal, error) {
	const op = "BigDecimal.Tan"
	w := precision + guardDigits
	s, err := x.Sin(w)
	if err != nil {
		return nil, err
	}
	c, err := x.Cos(w)
	if err != nil {
		return nil, err
	}
	if c.IsZero() {
		return nil, bigerr.New(op, bigerr.ZeroDivision, "tan undefined: cos(x) underflowed to zero")
	}
	result, err := s.Quo(c, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
	if err != nil {
		return nil, err
	}
	return roundToSignificantDigits(result, precision, RoundHalfEven), nil
}

// Cot returns cos(x)/sin(x).
func (x *BigDecimal) Cot(precision int) (*BigDecimal, error) {
	const op = "BigDecimal.Cot"
	w := precision + guardDigits
	s, err := x.Sin(w)
	if err != nil {
		return nil, err
	}
	c, err := x.Cos(w)
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		return nil, bigerr.New(op, bigerr.ZeroDivision, "cot undefined: sin(x) underflowed to zero")
	}
	result, err := c.Quo(s, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
	if err != nil {
		return nil, err
	}
	return roundToSignificantDigits(result, precision, RoundHalfEven), nil
}

// Csc returns 1/sin(x).
func (x *BigDecimal) Csc(precision int) (*BigDecimal, error) {
	const op = "BigDecimal.Csc"
	w := precision + guardDigits
	s, err := x.Sin(w)
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		return nil, bigerr.New(op, bigerr.ZeroDivision, "csc undefined: sin(x) underflowed to zero")
	}
	one := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
	result, err := one.Quo(s, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
	if err != nil {
		return nil, err
	}
	return roundToSignificantDigits(result, precision, RoundHalfEven), nil
}

// Sec returns 1/cos(x).
func (x *BigDecimal) Sec(precision int) (*BigDecimal, error) {
	const op = "BigDecimal.Sec"
	w := precision + guardDigits
	c, err := x.Cos(w)
	if err != nil {
		return nil, err
	}
	if c.IsZero() {
		return nil, bigerr.New(op, bigerr.ZeroDivision, "sec undefined: cos(x) underflowed to zero")
	}
	one := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
	result, err := one.Quo(c, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
	if err != nil {
		return nil, err
	}
	return roundToSignificantDigits(result, precision, RoundHalfEven), nil
}

// reduceAngle reduces x to r = x - k*(pi/2) with k = round(x / (pi/2)), so
// |r| <= pi/4 and x sits k quarter-turns past r. The quarter-turn count mod
// 4 tells the caller which sin/cos swap and sign flip to apply. Pi is
// computed with extra guard digits here so the residual of the reduction
// stays accurate even for arguments close to a multiple of pi.
func reduceAngle(x *BigDecimal, w int) (r *BigDecimal, quadrant int, err error) {
	pi := Pi(w + 15)
	halfPi, qerr := pi.Quo(BigDecimalFromParts(false, BigUIntFromUint64(2), 0), QuoContext{Scale: int32(w) + 15, Mode: RoundHalfEven})
	if qerr != nil {
		return nil, 0, qerr
	}

	q, qerr := x.Quo(halfPi, QuoContext{Scale: 4, Mode: RoundHalfEven})
	if qerr != nil {
		return nil, 0, qerr
	}
	kDec := q.Round(0, RoundHalfEven)
	kVal, convErr := kDec.coeff.Uint64()
	if convErr != nil {
		return nil, 0, convErr
	}
	k := int64(kVal)
	if kDec.neg {
		k = -k
	}

	remainder := x.Sub(halfPi.Mul(kDec))
	quadrant = int(((k % 4) + 4) % 4)
	return remainder.Round(int32(w)+4, RoundHalfEven), quadrant, nil
}

// sinCosSeries evaluates the odd/even Taylor series for sin and cos of a
// small argument r (|r| <= pi/4), term cutoff < 10^-w.
func sinCosSeries(r *BigDecimal, w int) (sin, cos *BigDecimal) {
	threshold := BigDecimalFromParts(false, BigUIntFromUint64(1), int32(w))
	rSq := r.Mul(r).Round(int32(w)+4, RoundHalfEven)

	sinSum := r.Clone()
	sinTerm := r.Clone()
	cosSum := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)
	cosTerm := BigDecimalFromParts(false, BigUIntFromUint64(1), 0)

	for n := int64(2); n < int64(w)*4+40; n += 2 {
		cosTerm = cosTerm.Mul(rSq).Round(int32(w)+4, RoundHalfEven)
		cosTerm, _ = cosTerm.Quo(BigDecimalFromParts(false, BigUIntFromUint64(uint64(n*(n-1))), 0), QuoContext{Scale: int32(w) + 4, Mode: RoundHalfEven})
		cosTerm = cosTerm.Neg()
		cosSum = cosSum.Add(cosTerm)

		sinTerm = sinTerm.Mul(rSq).Round(int32(w)+4, RoundHalfEven)
		sinTerm, _ = sinTerm.Quo(BigDecimalFromParts(false, BigUIntFromUint64(uint64((n+1)*n)), 0), QuoContext{Scale: int32(w) + 4, Mode: RoundHalfEven})
		sinTerm = sinTerm.Neg()
		sinSum = sinSum.Add(sinTerm)

		if termBelowThreshold(cosTerm, threshold) && termBelowThreshold(sinTerm, threshold) {
			break
		}
	}
	return sinSum.Round(int32(w), RoundHalfEven), cosSum.Round(int32(w), RoundHalfEven)
}

// Neg returns -x.
func (x *BigDecimal) Neg() *BigDecimal {
	if x.IsZero() {
		return x.Clone()
	}
	return &BigDecimal{neg: !x.neg, coeff: x.coeff.Clone(), scale: x.scale}
}

// quadrantSinCos recombines the base-angle pair (s, c) = (sin r, cos r)
// with the quarter-turn count: sin(r + q*pi/2) cycles through
// sin, cos, -sin, -cos and cos(r + q*pi/2) through cos, -sin, -cos, sin.
func quadrantSinCos(s, c *BigDecimal, quadrant int, wantSin bool) *BigDecimal {
	if wantSin {
		switch quadrant {
		case 0:
			return s
		case 1:
			return c
		case 2:
			return s.Neg()
		default:
			return c.Neg()
		}
	}
	switch quadrant {
	case 0:
		return c
	case 1:
		return s.Neg()
	case 2:
		return c.Neg()
	default:
		return s
	}
}
