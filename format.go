package decimal

import (
	"fmt"
	"strings"

	"github.com/arbprec/decimal/internal/limbs"
)

// String renders x in plain decimal notation.
func (x *BigUInt) String() string {
	return limbs.Format(x.limb)
}

// Format implements fmt.Formatter so %v, %s, and %d all render the plain
// decimal text and %q quotes it, matching the convention math/big.Int
// uses for its own verbs.
func (x *BigUInt) Format(f fmt.State, verb rune) {
	formatVerb(f, verb, x.String())
}

// Format implements fmt.Formatter for BigInt, as BigUInt.Format does.
func (x *BigInt) Format(f fmt.State, verb rune) {
	formatVerb(f, verb, x.String())
}

// Format implements fmt.Formatter for BigDecimal, as BigUInt.Format does.
func (x *BigDecimal) Format(f fmt.State, verb rune) {
	formatVerb(f, verb, x.String())
}

// StringScientific renders x in scientific notation: one significant
// digit, an optional fraction, and an explicitly signed decimal exponent,
// e.g. 1.2345E+3. Zero renders as 0E+0.
func (x *BigDecimal) StringScientific() string {
	digits := limbs.Format(x.coeff.limb)
	if digits == "0" {
		return "0E+0"
	}
	sign := ""
	if x.neg {
		sign = "-"
	}
	exp := int64(len(digits)) - 1 - int64(x.scale)
	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('E')
	if exp >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(fmt.Sprint(exp))
	return b.String()
}

func formatVerb(f fmt.State, verb rune, s string) {
	switch verb {
	case 'v', 's', 'd':
		fmt.Fprint(f, s)
	case 'q':
		fmt.Fprint(f, strconvQuote(s))
	default:
		fmt.Fprintf(f, "%%!%c(decimal=%s)", verb, s)
	}
}

func strconvQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (x *BigUInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *BigUInt) UnmarshalText(text []byte) error {
	v, err := BigUIntFromString(string(text))
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x *BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *BigInt) UnmarshalText(text []byte) error {
	v, err := BigIntFromString(string(text))
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x *BigDecimal) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *BigDecimal) UnmarshalText(text []byte) error {
	v, err := BigDecimalFromString(string(text))
	if err != nil {
		return err
	}
	*x = *v
	return nil
}
