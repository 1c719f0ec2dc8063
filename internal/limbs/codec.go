// Package limbs implements the decimal-string <-> base-10^9 limb codec:
// parsing a decimal literal into a sign, a coefficient limb vector, and a
// scale, and formatting a limb vector back to decimal or scientific
// notation. BigUInt and BigDecimal both build on this.
package limbs

import (
	"strings"

	"github.com/arbprec/decimal/bigerr"
	"github.com/arbprec/decimal/internal/bigword"
)

// ParseResult is the output of Parse: a base-10^9 limb vector (little
// endian, normalized), a scale (digits to the right of the decimal point,
// possibly negative after exponent adjustment), and a sign (true = negative).
type ParseResult struct {
	Coeff []bigword.Word
	Scale int32
	Neg   bool
}

// Parse accepts an optional leading sign, digits, an optional single
// decimal point, an optional single e/E exponent with its own optional
// sign, and separators (space, comma, underscore) ignored between digits.
func Parse(op string, s string) (ParseResult, error) {
	if s == "" {
		return ParseResult{}, bigerr.New(op, bigerr.Value, "empty string")
	}

	i := 0
	neg := false
	if s[i] == '+' || s[i] == '-' {
		neg = s[i] == '-'
		i++
	}

	var digits []byte
	sawDigit := false
	sawPoint := false
	scale := int32(0)
	lastWasSep := true // a separator may not open the mantissa

	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
			sawDigit = true
			if sawPoint {
				scale++
			}
			lastWasSep = false
			i++
		case c == '.':
			if sawPoint {
				return ParseResult{}, bigerr.New(op, bigerr.Value, "duplicate decimal point")
			}
			sawPoint = true
			lastWasSep = false
			i++
		case c == ' ' || c == ',' || c == '_':
			if lastWasSep || !sawDigit {
				return ParseResult{}, bigerr.New(op, bigerr.Value, "stray separator")
			}
			lastWasSep = true
			i++
		case c == 'e' || c == 'E':
			if !sawDigit {
				return ParseResult{}, bigerr.New(op, bigerr.Value, "exponent without preceding digits")
			}
			exp, consumed, err := parseExponent(op, s[i+1:])
			if err != nil {
				return ParseResult{}, err
			}
			scale -= exp
			i += 1 + consumed
			if i != len(s) {
				return ParseResult{}, bigerr.New(op, bigerr.Value, "trailing characters after exponent")
			}
		default:
			return ParseResult{}, bigerr.New(op, bigerr.Value, "unrecognized character '"+string(c)+"'")
		}
	}

	if !sawDigit {
		return ParseResult{}, bigerr.New(op, bigerr.Value, "no digits")
	}
	if lastWasSep {
		return ParseResult{}, bigerr.New(op, bigerr.Value, "stray separator")
	}

	coeff := Pack(digits)
	if bigword.IsZero(coeff) {
		neg = false
	}
	return ParseResult{Coeff: coeff, Scale: scale, Neg: neg}, nil
}

// parseExponent parses a signed decimal integer exponent from s (the text
// immediately after 'e'/'E') and returns its value, the number of bytes of
// s it consumed, and an error.
func parseExponent(op string, s string) (int32, int, error) {
	if s == "" {
		return 0, 0, bigerr.New(op, bigerr.Value, "exponent without digits")
	}
	i := 0
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, 0, bigerr.New(op, bigerr.Value, "exponent without digits")
	}
	var v int64
	for _, c := range s[start:i] {
		v = v*10 + int64(c-'0')
		if v > 1<<30 {
			return 0, 0, bigerr.New(op, bigerr.Value, "exponent out of range")
		}
	}
	if neg {
		v = -v
	}
	return int32(v), i, nil
}

// Pack walks digits (most-significant first, decimal order) from the
// least-significant end nine at a time, producing a normalized
// little-endian base-10^9 limb vector.
func Pack(digits []byte) []bigword.Word {
	if len(digits) == 0 {
		return []bigword.Word{0}
	}
	n := (len(digits) + bigword.DigitsPerWord - 1) / bigword.DigitsPerWord
	out := make([]bigword.Word, n)
	end := len(digits)
	for i := 0; i < n; i++ {
		start := end - bigword.DigitsPerWord
		if start < 0 {
			start = 0
		}
		var w bigword.Word
		for _, c := range digits[start:end] {
			w = w*10 + bigword.Word(c-'0')
		}
		out[i] = w
		end = start
	}
	return bigword.Norm(out)
}

// Format renders limbs as a plain decimal string (no sign, no point): the
// top limb without leading zeros, each lower limb zero-padded to 9 digits.
func Format(x []bigword.Word) string {
	x = bigword.Norm(x)
	if len(x) == 1 && x[0] == 0 {
		return "0"
	}
	var b strings.Builder
	top := x[len(x)-1]
	b.WriteString(uitoa(uint64(top)))
	for i := len(x) - 2; i >= 0; i-- {
		s := uitoa(uint64(x[i]))
		for j := len(s); j < bigword.DigitsPerWord; j++ {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}
	return b.String()
}

func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
