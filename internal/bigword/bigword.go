// Package bigword implements the base-10^9 limb primitives the public
// BigUInt type is built on: the public type stays small and documents
// aliasing and ownership rules, and all of the carry/borrow arithmetic
// lives here, in slices of Word.
//
// A Word holds one base-10^9 decimal digit, in [0, Base). Limb vectors are
// little-endian: index 0 is the least significant digit.
package bigword

// Word is a single base-10^9 limb.
type Word uint32

const (
	// DigitsPerWord is the number of decimal digits packed into one Word.
	DigitsPerWord = 9
	// Base is 10^DigitsPerWord, the radix of one limb.
	Base = 1_000_000_000
	// Max is the largest value a Word may hold.
	Max = Base - 1
)

var pow10Tab = [...]uint64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// Pow10 returns 10^n as a Word for 0 <= n <= DigitsPerWord.
func Pow10(n uint) Word {
	return Word(pow10Tab[n])
}

// DigitCount returns the number of decimal digits in x, treating x == 0 as
// having 1 digit (so callers computing total digit length can add
// (len(limbs)-1)*DigitsPerWord + DigitCount(topLimb) uniformly).
func DigitCount(x Word) int {
	if x == 0 {
		return 1
	}
	n := 0
	for x != 0 {
		n++
		x /= 10
	}
	return n
}

// TrailingZeroDigits returns the number of trailing decimal zero digits of
// x (base-10 analogue of bits.TrailingZeros).
func TrailingZeroDigits(x Word) int {
	if x == 0 {
		return DigitsPerWord
	}
	n := 0
	for x%10 == 0 {
		x /= 10
		n++
	}
	return n
}

// Norm trims leading (most-significant) zero limbs from x, always leaving
// at least one limb so the canonical zero is []Word{0}.
func Norm(x []Word) []Word {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// IsZero reports whether the normalized view of x is the zero value.
func IsZero(x []Word) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// Cmp compares x and y as unsigned integers, both assumed normalized
// (no leading zero limbs beyond the canonical single zero limb).
func Cmp(x, y []Word) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// MulWW returns the full 64-bit product of two Words split back into a
// (high, low) pair of Words in base 10^9: x*y == hi*Base + lo.
func MulWW(x, y Word) (hi, lo Word) {
	p := uint64(x) * uint64(y)
	return Word(p / Base), Word(p % Base)
}

// DivWW divides the 2-word value (hi, lo) = hi*Base+lo by y, returning the
// quotient and remainder. Requires hi < y (so the quotient fits in a Word).
func DivWW(hi, lo, y Word) (q, r Word) {
	n := uint64(hi)*Base + uint64(lo)
	return Word(n / uint64(y)), Word(n % uint64(y))
}
