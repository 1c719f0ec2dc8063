package decimal

import (
	"github.com/arbprec/decimal/bigerr"
	"github.com/arbprec/decimal/internal/bigword"
)

// divRecursiveThreshold is the divisor limb count below which QuoRem uses
// the Knuth Algorithm D schoolbook base case instead of the recursive
// block division.
const divRecursiveThreshold = 32

// QuoRem returns the truncated quotient and remainder of x / y: 0 <= r < y,
// and q*y + r == x. Division by zero fails with a ZeroDivisionError.
func (x *BigUInt) QuoRem(y *BigUInt) (q, r *BigUInt, err error) {
	const op = "BigUInt.QuoRem"
	if y.IsZero() {
		return nil, nil, bigerr.New(op, bigerr.ZeroDivision, "division by zero")
	}
	qw, rw := quoRemWords(bigword.Norm(x.limb), bigword.Norm(y.limb))
	return &BigUInt{limb: qw}, &BigUInt{limb: rw}, nil
}

// Quo returns the truncated quotient x / y.
func (x *BigUInt) Quo(y *BigUInt) (*BigUInt, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns x % y (truncated-division remainder).
func (x *BigUInt) Rem(y *BigUInt) (*BigUInt, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// QuoAssign sets x = x / y (truncated), or returns a ZeroDivisionError
// leaving x unchanged.
func (x *BigUInt) QuoAssign(y *BigUInt) error {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return err
	}
	x.limb = q.limb
	return nil
}

// RemAssign sets x = x % y, or returns a ZeroDivisionError leaving x
// unchanged.
func (x *BigUInt) RemAssign(y *BigUInt) error {
	_, r, err := x.QuoRem(y)
	if err != nil {
		return err
	}
	x.limb = r.limb
	return nil
}

// quoRemWords divides u by v (both normalized, v non-zero). It scales both
// operands so the divisor's top limb is at least Base/2, dispatches on the
// divisor size (scalar, schoolbook Algorithm D, or the recursive block
// division), and unscales the remainder at the end.
func quoRemWords(u, v []bigword.Word) (q, r []bigword.Word) {
	u = bigword.Norm(u)
	v = bigword.Norm(v)

	if bigword.Cmp(u, v) < 0 {
		return []bigword.Word{0}, limbsCopy(u)
	}
	if len(v) == 1 {
		qw, rw := scalarDivWords(u, v[0])
		return qw, []bigword.Word{rw}
	}

	// D1: normalize so the divisor's top limb is >= Base/2.
	d := bigword.Word(uint64(bigword.Base) / (uint64(v[len(v)-1]) + 1))
	if d == 0 {
		d = 1
	}
	vn := make([]bigword.Word, len(v))
	bigword.MulAddVWW(vn, v, d, 0)

	un := make([]bigword.Word, len(u)+1)
	un[len(u)] = bigword.MulAddVWW(un[:len(u)], u, d, 0)

	var qw, rw []bigword.Word
	if len(vn) < divRecursiveThreshold {
		qw, rw = divSchoolbook(un, vn)
	} else {
		qw, rw = divRecursiveWords(bigword.Norm(un), vn)
	}

	// D8: unscale the remainder by d.
	rw, _ = scalarDivWords(rw, d)
	return bigword.Norm(qw), bigword.Norm(rw)
}

// scalarDivWords is the linear O(n) single-limb division.
func scalarDivWords(u []bigword.Word, y bigword.Word) (q []bigword.Word, r bigword.Word) {
	u = bigword.Norm(u)
	z := make([]bigword.Word, len(u))
	r = bigword.DivVWW(z, u, y, 0)
	return bigword.Norm(z), r
}

// divSchoolbook divides u by v via Algorithm D, for v normalized (top limb
// >= Base/2, len(v) >= 2). It copies u so callers keep their slices intact.
func divSchoolbook(u, v []bigword.Word) (q, r []bigword.Word) {
	u = bigword.Norm(u)
	if bigword.Cmp(u, v) < 0 {
		return []bigword.Word{0}, limbsCopy(u)
	}
	un := make([]bigword.Word, len(u)+1)
	copy(un, u)
	qw := make([]bigword.Word, len(un)-len(v))
	divBasicKnuthD(qw, un, v)
	return bigword.Norm(qw), bigword.Norm(un)
}

// divBasicKnuthD is Knuth's Algorithm D (TAOCP vol. 2, §4.3.1), the
// schoolbook division base case. Precondition: len(v) >= 2, v's top limb
// >= Base/2 (normalized), len(q) == len(u)-len(v), and u/v < Base^len(q).
// The quotient is written to q; the remainder overwrites u in place.
func divBasicKnuthD(q, u, v []bigword.Word) {
	n := len(v)
	m := len(u) - n
	qhatv := make([]bigword.Word, n+1)
	vn1 := v[n-1]

	for j := m; j >= 0; j-- {
		// D3: estimate the quotient digit from the top two dividend limbs
		// and the top divisor limb, then walk it down using the second
		// divisor limb until the 3-limb comparison holds.
		qhat := bigword.Word(bigword.Max)
		var ujn bigword.Word
		if j+n < len(u) {
			ujn = u[j+n]
		}
		if ujn != vn1 {
			var rhat bigword.Word
			qhat, rhat = bigword.DivWW(ujn, u[j+n-1], vn1)
			vn2 := v[n-2]
			x1, x2 := bigword.MulWW(qhat, vn2)
			for greaterThanPair(x1, x2, rhat, u[j+n-2]) {
				qhat--
				rhat += vn1
				if rhat >= bigword.Base {
					break
				}
				x1, x2 = bigword.MulWW(qhat, vn2)
			}
		}

		// D4: subtract qhat*v from the window.
		qhatv[n] = bigword.MulAddVWW(qhatv[0:n], v, qhat, 0)
		qhl := len(qhatv)
		if j+qhl > len(u) && qhatv[n] == 0 {
			qhl--
		}
		c := bigword.SubVV(u[j:j+qhl], u[j:j+qhl], qhatv[:qhl])
		if c != 0 {
			// D6: the estimate was one too large; add back.
			c2 := bigword.AddVV(u[j:j+n], u[j:j+n], v)
			if n < qhl {
				u[j+n] += c2
			}
			qhat--
		}

		if j == m && m == len(q) && qhat == 0 {
			continue
		}
		q[j] = qhat
	}
}

// greaterThanPair reports whether the two-limb value (x1,x2) is strictly
// greater than (y1,y2), both interpreted as x1*Base+x2 and y1*Base+y2.
func greaterThanPair(x1, x2, y1, y2 bigword.Word) bool {
	return x1 > y1 || (x1 == y1 && x2 > y2)
}

// divRecursiveWords divides u by v for len(v) >= divRecursiveThreshold, v
// normalized so its top limb is >= Base/2. It walks the dividend from the
// most significant end in blocks of len(v) limbs, carrying the running
// remainder into the next block, so each step is a 2n-by-n division handled
// by divTwoDigitsByOne. The running remainder is always < v, which bounds
// every block quotient below Base^n.
func divRecursiveWords(u, v []bigword.Word) (q, r []bigword.Word) {
	n := len(v)
	blocks := (len(u) + n - 1) / n
	q = make([]bigword.Word, blocks*n)
	r = []bigword.Word{0}

	for i := blocks - 1; i >= 0; i-- {
		lo := i * n
		hi := lo + n
		if hi > len(u) {
			hi = len(u)
		}
		// a = r*Base^n + block, which is < v*Base^n.
		a := make([]bigword.Word, 2*n)
		copy(a, u[lo:hi])
		copy(a[n:], r)

		qb, rb := divTwoDigitsByOne(a, v)
		copy(q[lo:lo+n], qb)
		r = rb
	}
	return bigword.Norm(q), r
}

// divTwoDigitsByOne divides the 2n-limb value a by the n-limb divisor v
// (normalized, a/v < Base^n). For odd or small n it falls back to Algorithm
// D; otherwise it splits a into four half-blocks and resolves each half of
// the quotient with divThreeHalvesByTwo.
func divTwoDigitsByOne(a, v []bigword.Word) (q, r []bigword.Word) {
	n := len(v)
	if n%2 != 0 || n < divRecursiveThreshold {
		return divSchoolbook(a, v)
	}
	k := n / 2

	// a = [a4 a3 a2 a1] in k-limb blocks, least significant first.
	a4, a3 := a[:k], a[k:2*k]
	a2, a1 := a[2*k:3*k], a[3*k:]

	q1, r12 := divThreeHalvesByTwo(a1, a2, a3, v)
	r1, r2 := splitLowHigh(r12, k)
	q2, rem := divThreeHalvesByTwo(r2, r1, a4, v)

	// q = q1*Base^k + q2.
	qw := make([]bigword.Word, 2*k+1)
	copy(qw, q2)
	addWordsAt(qw, q1, k)
	return bigword.Norm(qw), rem
}

// divThreeHalvesByTwo divides the 3k-limb value a1*Base^2k + a2*Base^k + a3
// by v = b1*Base^k + b2 (len(v) == 2k, b1 normalized), assuming the
// quotient fits in k limbs. It estimates the quotient from the high halves,
// then corrects downward (at most twice) while the estimate's product
// exceeds the window.
func divThreeHalvesByTwo(a1, a2, a3, v []bigword.Word) (q, r []bigword.Word) {
	k := len(v) / 2
	b1, b2 := v[k:], v[:k]

	var qhat, r1 []bigword.Word
	if bigword.Cmp(bigword.Norm(a1), bigword.Norm(b1)) < 0 {
		// a12 = a1*Base^k + a2.
		a12 := make([]bigword.Word, 2*k)
		copy(a12, a2)
		copy(a12[k:], a1)
		qhat, r1 = divTwoDigitsByOne(a12, b1)
	} else {
		// Quotient estimate saturates at Base^k - 1; the corresponding
		// r1 = a12 - (Base^k - 1)*b1 = a12 - b1*Base^k + b1.
		qhat = make([]bigword.Word, k)
		for i := range qhat {
			qhat[i] = bigword.Max
		}
		a12 := make([]bigword.Word, 2*k)
		copy(a12, a2)
		copy(a12[k:], a1)
		t := addWords(bigword.Norm(a12), bigword.Norm(b1))
		r1 = subWordsChecked(t, shiftUpWords(bigword.Norm(b1), k))
	}

	d := mulWords(qhat, b2)
	// t = r1*Base^k + a3.
	t := addWords(shiftUpWords(r1, k), bigword.Norm(a3))
	for bigword.Cmp(t, d) < 0 {
		qhat = decrementWords(qhat)
		t = addWords(t, bigword.Norm(v))
	}
	return bigword.Norm(qhat), subWordsChecked(t, d)
}

// splitLowHigh splits x (normalized, value < Base^2k) into its low k limbs
// and high limbs, zero-padding each side to exactly k limbs.
func splitLowHigh(x []bigword.Word, k int) (lo, hi []bigword.Word) {
	lo = make([]bigword.Word, k)
	hi = make([]bigword.Word, k)
	copy(lo, x)
	if len(x) > k {
		copy(hi, x[k:])
	}
	return lo, hi
}

// shiftUpWords returns x * Base^k as a freshly allocated slice.
func shiftUpWords(x []bigword.Word, k int) []bigword.Word {
	x = bigword.Norm(x)
	if bigword.IsZero(x) {
		return []bigword.Word{0}
	}
	z := make([]bigword.Word, len(x)+k)
	copy(z[k:], x)
	return z
}

// decrementWords returns x - 1 as a freshly allocated, normalized slice.
func decrementWords(x []bigword.Word) []bigword.Word {
	z := limbsCopy(x)
	bigword.SubVW(z, z, 1)
	return bigword.Norm(z)
}
