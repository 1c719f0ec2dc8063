package decimal

import "github.com/arbprec/decimal/internal/bigword"

// ScaleUpByPowerOf10 returns x * 10^k, decomposed into a whole-limb shift
// for the 9-digit blocks of k and a sub-limb multiply for the remainder.
func (x *BigUInt) ScaleUpByPowerOf10(k uint64) *BigUInt {
	return x.Clone().ScaleUpByPowerOf10InPlace(k)
}

// ScaleUpByPowerOf10InPlace scales x up in place and returns x.
func (x *BigUInt) ScaleUpByPowerOf10InPlace(k uint64) *BigUInt {
	if k == 0 || x.IsZero() {
		return x
	}
	q := int(k / bigword.DigitsPerWord)
	r := uint(k % bigword.DigitsPerWord)

	limb := bigword.Norm(x.limb)
	out := make([]bigword.Word, len(limb)+q+1)
	copy(out[q:], limb)

	if r > 0 {
		window := out[q : q+len(limb)]
		c := bigword.ShlDigits(window, window, r)
		out[q+len(limb)] = c
	}
	x.limb = bigword.Norm(out)
	return x
}

// ScaleDownByPowerOf10 returns the quotient and the digit-remainder of x /
// 10^k: x == quotient*10^k + remainder, 0 <= remainder < 10^k.
func (x *BigUInt) ScaleDownByPowerOf10(k uint64) (quotient *BigUInt, remainder *BigUInt) {
	q := x.Clone()
	rem := q.ScaleDownByPowerOf10InPlace(k)
	return q, rem
}

// ScaleDownByPowerOf10InPlace divides x by 10^k in place, returning the
// discarded remainder as its own BigUInt.
func (x *BigUInt) ScaleDownByPowerOf10InPlace(k uint64) *BigUInt {
	limb := bigword.Norm(x.limb)
	q := int(k / bigword.DigitsPerWord)
	r := uint(k % bigword.DigitsPerWord)

	if len(limb) <= q {
		rem := x.Clone()
		x.limb = []bigword.Word{0}
		return rem
	}

	low := limbsCopy(limb[:q])
	high := limbsCopy(limb[q:])

	var subRem bigword.Word
	if r > 0 {
		subRem = bigword.ShrDigits(high, high, r)
	}

	x.limb = bigword.Norm(high)

	remLimb := append(low, subRem)
	return &BigUInt{limb: bigword.Norm(remLimb)}
}
