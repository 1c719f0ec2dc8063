package decimal

import "github.com/arbprec/decimal/internal/bigword"

// Sqrt returns floor(sqrt(x)) via Newton's method: x0 is seeded from the
// digit length of x, then x_{n+1} = (x_n + x/x_n) / 2 until the value
// stops decreasing.
func (x *BigUInt) Sqrt() *BigUInt {
	limb := bigword.Norm(x.limb)
	if bigword.IsZero(limb) {
		return NewBigUInt()
	}
	if len(limb) == 1 && limb[0] < 4 {
		if limb[0] == 0 {
			return NewBigUInt()
		}
		return BigUIntFromUint64(1)
	}

	guess := initialSqrtGuess(limb)
	two := BigUIntFromUint64(2)

	cur := guess
	for {
		q, _ := quoRemWords(bigword.Norm(limb), bigword.Norm(cur.limb))
		sum := &BigUInt{limb: make([]bigword.Word, max(len(cur.limb), len(q))+1)}
		sum.addInto(cur.limb, q)
		sum = sum.normalize()
		next, _, _ := sum.QuoRem(two)
		if next.Cmp(cur) >= 0 {
			return cur
		}
		cur = next
	}
}

// initialSqrtGuess seeds Newton's method at roughly 10^(ceil(digits(x)/2)),
// a cheap overestimate that converges in a handful of iterations.
func initialSqrtGuess(limb []bigword.Word) *BigUInt {
	totalDigits := (len(limb)-1)*bigword.DigitsPerWord + bigword.DigitCount(limb[len(limb)-1])
	halfDigits := (totalDigits + 1) / 2
	if halfDigits < 1 {
		halfDigits = 1
	}
	guess := BigUIntFromUint64(1)
	guess.ScaleUpByPowerOf10InPlace(uint64(halfDigits))
	return guess
}
