package decimal

// Pi computes pi to the given number of significant digits using the
// Chudnovsky series evaluated by binary splitting: binary splitting
// computes three integer sequences P, Q, T over an interval so the
// series sum is obtained with O(M(p) log p) multiplications instead of
// O(p) independent high-precision term evaluations.
//
// 1/pi = 12 * sum_{k=0}^N (-1)^k (6k)! (545140134k+13591409) / ((3k)! (k!)^3 640320^(3k+3/2))
const chudnovskyC = 640320

// Pi returns pi rounded to precision significant digits.
func Pi(precision int) *BigDecimal {
	w := precision + guardDigits
	// Each Chudnovsky term contributes ~14.18 digits of precision.
	n := int64(w)/14 + 2

	_, q, t := chudnovskyBinarySplit(0, n)

	sqrt10005, _ := BigDecimalFromParts(false, BigUIntFromUint64(10005), 0).Sqrt(w + 10)
	qDec := BigDecimalFromBigInt(q)
	tDec := BigDecimalFromBigInt(t)
	factor := BigDecimalFromParts(false, BigUIntFromUint64(426880), 0)

	numerator := qDec.Mul(factor).Mul(sqrt10005)
	result, err := numerator.Quo(tDec, QuoContext{Scale: int32(w), Mode: RoundHalfEven})
	if err != nil {
		// T(0,n) is a sum of Chudnovsky terms that is non-zero for any
		// n >= 1, which n := w/14+2 always satisfies.
		panic("decimal: internal invariant violated: Chudnovsky denominator was zero")
	}
	return roundToSignificantDigits(result, precision, RoundHalfEven)
}

// chudnovskyC3Over24 is C^3/24, the constant factor in each leaf's Q term.
var chudnovskyC3Over24 = func() *BigInt {
	c := BigIntFromInt64(chudnovskyC)
	c3 := c.Mul(c).Mul(c)
	q, _ := c3.Quo(BigIntFromInt64(24))
	return q
}()

// chudnovskyBinarySplit computes P(a,b), Q(a,b), T(a,b) over [a,b): a
// leaf (b == a+1) evaluates the closed-form per-term values directly; an
// internal node splits at m and combines the halves as P = P_L*P_R,
// Q = Q_L*Q_R, T = T_L*Q_R + P_L*T_R.
func chudnovskyBinarySplit(a, b int64) (p, q, t *BigInt) {
	if b-a == 1 {
		if a == 0 {
			p = BigIntFromInt64(1)
			q = BigIntFromInt64(1)
		} else {
			p = BigIntFromInt64((6*a - 5) * (2*a - 1) * (6*a - 1))
			q = BigIntFromInt64(a * a * a).Mul(chudnovskyC3Over24)
		}
		t = p.Mul(BigIntFromInt64(13591409 + 545140134*a))
		if a%2 == 1 {
			t = t.Neg()
		}
		return p, q, t
	}
	m := (a + b) / 2
	pl, ql, tl := chudnovskyBinarySplit(a, m)
	pr, qr, tr := chudnovskyBinarySplit(m, b)

	p = pl.Mul(pr)
	q = ql.Mul(qr)
	t = tl.Mul(qr).Add(pl.Mul(tr))
	return p, q, t
}
