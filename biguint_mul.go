package decimal

import "github.com/arbprec/decimal/internal/bigword"

// karatsubaThreshold is the limb count below which the smaller operand
// uses schoolbook multiplication instead of a Karatsuba split.
const karatsubaThreshold = 64

// Mul returns x * y.
func (x *BigUInt) Mul(y *BigUInt) *BigUInt {
	return &BigUInt{limb: mulWords(x.limb, y.limb)}
}

// MulAssign sets x = x * y, mutating and returning x.
func (x *BigUInt) MulAssign(y *BigUInt) *BigUInt {
	x.limb = mulWords(x.limb, y.limb)
	return x
}

// Pow returns x**k by square-and-multiply. 0**0 is 1.
func (x *BigUInt) Pow(k uint64) *BigUInt {
	acc := BigUIntFromUint64(1)
	base := x.Clone()
	for k > 0 {
		if k&1 == 1 {
			acc = acc.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}
	return acc
}

func mulWords(a, b []bigword.Word) []bigword.Word {
	a = bigword.Norm(a)
	b = bigword.Norm(b)
	if bigword.IsZero(a) || bigword.IsZero(b) {
		return []bigword.Word{0}
	}
	if len(a) < len(b) {
		a, b = b, a
	}
	// m >= n
	m, n := len(a), len(b)

	if n == 1 {
		return mulScalar(a, b[0])
	}
	if n < karatsubaThreshold {
		z := make([]bigword.Word, m+n)
		schoolbookMulInto(z, a, b)
		return bigword.Norm(z)
	}
	return karatsubaMul(a, b)
}

// mulScalar is the linear O(n) limb-by-scalar routine used when either
// operand is a single limb.
func mulScalar(a []bigword.Word, y bigword.Word) []bigword.Word {
	z := make([]bigword.Word, len(a)+1)
	c := bigword.MulAddVWW(z[:len(a)], a, y, 0)
	z[len(a)] = c
	return bigword.Norm(z)
}

// schoolbookMulInto accumulates a*b into z (len(z) == len(a)+len(b)),
// zeroing z itself first. The inner loop is skipped when a multiplier
// limb is zero, but since z starts cleared a skipped column already holds
// the correct zero carry, so skipping never breaks the carry chain.
func schoolbookMulInto(z, a, b []bigword.Word) {
	for i := range z {
		z[i] = 0
	}
	for i, d := range b {
		if d != 0 {
			z[i+len(a)] = bigword.AddMulVVW(z[i:i+len(a)], a, d)
		}
	}
}

// karatsubaMul implements the Karatsuba split for len(a) >= len(b) >=
// karatsubaThreshold > 1.
func karatsubaMul(a, b []bigword.Word) []bigword.Word {
	m := len(a)
	half := (m + 1) / 2 // m = ceil(max(|a|,|b|)/2)

	aLo, aHi := splitAt(a, half)
	bLo, bHi := splitAt(b, half)

	z0 := mulWords(aLo, bLo)
	z2 := mulWords(aHi, bHi)

	aSum := addWords(aLo, aHi)
	bSum := addWords(bLo, bHi)
	z1cross := mulWords(aSum, bSum)

	// z1 = z1cross - z0 - z2; non-negative because
	// (aLo+aHi)(bLo+bHi) >= aLo*bLo + aHi*bHi.
	z1 := subWordsChecked(z1cross, z0)
	z1 = subWordsChecked(z1, z2)

	out := make([]bigword.Word, len(a)+len(b)+1)
	addWordsAt(out, z0, 0)
	addWordsAt(out, z1, half)
	addWordsAt(out, z2, 2*half)
	return bigword.Norm(out)
}

func splitAt(x []bigword.Word, k int) (lo, hi []bigword.Word) {
	if k >= len(x) {
		return x, []bigword.Word{0}
	}
	return x[:k], x[k:]
}

func addWords(a, b []bigword.Word) []bigword.Word {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]bigword.Word, len(a)+1)
	c := bigword.AddVV(z[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = bigword.AddVW(z[len(b):len(a)], a[len(b):], c)
	}
	z[len(a)] = c
	return bigword.Norm(z)
}

// subWordsChecked computes a - b, panicking on underflow: callers only use
// it where the result is provably non-negative.
func subWordsChecked(a, b []bigword.Word) []bigword.Word {
	if bigword.Cmp(a, b) < 0 {
		panic("decimal: internal invariant violated: Karatsuba cross term went negative")
	}
	z := make([]bigword.Word, len(a))
	c := bigword.SubVV(z[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = bigword.SubVW(z[len(b):], a[len(b):], c)
	}
	if c != 0 {
		panic("decimal: internal invariant violated: subWordsChecked borrow escaped")
	}
	return bigword.Norm(z)
}

// addWordsAt adds x into z starting at digit offset i (z += x * 10^(9*i)),
// propagating carry upward. z must be long enough.
func addWordsAt(z, x []bigword.Word, i int) {
	x = bigword.Norm(x)
	if bigword.IsZero(x) {
		return
	}
	n := len(x)
	c := bigword.AddVV(z[i:i+n], z[i:i+n], x)
	j := i + n
	for c != 0 && j < len(z) {
		s := z[j] + c
		if s >= bigword.Base {
			s -= bigword.Base
			c = 1
		} else {
			c = 0
		}
		z[j] = s
		j++
	}
}
