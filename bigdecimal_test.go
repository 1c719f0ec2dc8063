package decimal

import (
	"testing"

	"github.com/arbprec/decimal/bigerr"
)

func mustBigDecimal(t *testing.T, s string) *BigDecimal {
	t.Helper()
	x, err := BigDecimalFromString(s)
	if err != nil {
		t.Fatalf("BigDecimalFromString(%q): %v", s, err)
	}
	return x
}

func TestBigDecimalStringRoundTrip(t *testing.T) {
	cases := []string{"0", "123", "-123", "3.140", "0.005", "-0.5"}
	for _, c := range cases {
		x := mustBigDecimal(t, c)
		if got := x.String(); got != c {
			t.Errorf("BigDecimalFromString(%q).String() = %q", c, got)
		}
	}
}

func TestBigDecimalAddAlignsScale(t *testing.T) {
	a := mustBigDecimal(t, "1.5")
	b := mustBigDecimal(t, "0.25")
	if got := a.Add(b).String(); got != "1.75" {
		t.Fatalf("1.5 + 0.25 = %s, want 1.75", got)
	}
}

func TestBigDecimalMulScalesAdd(t *testing.T) {
	a := mustBigDecimal(t, "1.5")
	b := mustBigDecimal(t, "0.2")
	if got := a.Mul(b).String(); got != "0.30" {
		t.Fatalf("1.5 * 0.2 = %s, want 0.30", got)
	}
}

func TestBigDecimalQuo(t *testing.T) {
	a := mustBigDecimal(t, "1")
	b := mustBigDecimal(t, "3")
	got, err := a.Quo(b, QuoContext{Scale: 10, Mode: RoundHalfEven})
	if err != nil {
		t.Fatalf("1/3: %v", err)
	}
	if got.String() != "0.3333333333" {
		t.Fatalf("1/3 to 10 places = %s", got)
	}
}

func TestBigDecimalQuoByZero(t *testing.T) {
	a := mustBigDecimal(t, "1")
	if _, err := a.Quo(NewBigDecimal(), QuoContext{Scale: 4}); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestBigDecimalRoundModes(t *testing.T) {
	cases := []struct {
		in   string
		mode RoundingMode
		want string
	}{
		{"1.25", RoundDown, "1.2"},
		{"1.21", RoundUp, "1.3"},
		{"1.25", RoundHalfUp, "1.3"},
		{"1.25", RoundHalfEven, "1.2"},
		{"1.35", RoundHalfEven, "1.4"},
		{"9.99", RoundUp, "10.0"},
	}
	for _, c := range cases {
		x := mustBigDecimal(t, c.in)
		got := x.Round(1, c.mode).String()
		if got != c.want {
			t.Errorf("Round(%s, mode %d) = %s, want %s", c.in, c.mode, got, c.want)
		}
	}
}

func TestBigDecimalQuantize(t *testing.T) {
	x := mustBigDecimal(t, "1.23456")
	exemplar := mustBigDecimal(t, "0.01")
	got := x.Quantize(exemplar, RoundHalfUp).String()
	if got != "1.23" {
		t.Fatalf("quantize = %s, want 1.23", got)
	}
}

func TestBigDecimalSqrtOfTwo(t *testing.T) {
	two := mustBigDecimal(t, "2")
	got, err := two.Sqrt(28)
	if err != nil {
		t.Fatalf("sqrt(2): %v", err)
	}
	want := "1.414213562373095048801688724"
	if got.String() != want {
		t.Fatalf("sqrt(2) at 28 digits = %s, want %s", got, want)
	}
}

func TestBigDecimalRem(t *testing.T) {
	cases := []struct{ x, y, want string }{
		{"7.5", "2", "1.5"},
		{"-7.5", "2", "-1.5"},
		{"10", "3", "1"},
		{"1.25", "0.5", "0.25"},
	}
	for _, c := range cases {
		x, y := mustBigDecimal(t, c.x), mustBigDecimal(t, c.y)
		got, err := x.Rem(y)
		if err != nil {
			t.Fatalf("%s %% %s: %v", c.x, c.y, err)
		}
		if got.Cmp(mustBigDecimal(t, c.want)) != 0 {
			t.Errorf("%s %% %s = %s, want %s", c.x, c.y, got, c.want)
		}
	}
	if _, err := mustBigDecimal(t, "1").Rem(NewBigDecimal()); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestBigDecimalRoundCarryExtendsLength(t *testing.T) {
	x := mustBigDecimal(t, "9.999")
	if got := x.Round(2, RoundHalfUp).String(); got != "10.00" {
		t.Fatalf("round(9.999, 2) = %s, want 10.00", got)
	}
}

func TestBigDecimalStringScientific(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1234.5", "1.2345E+3"},
		{"0.00120", "1.20E-3"},
		{"-7", "-7E+0"},
		{"0", "0E+0"},
	}
	for _, c := range cases {
		x := mustBigDecimal(t, c.in)
		if got := x.StringScientific(); got != c.want {
			t.Errorf("StringScientific(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestBigDecimalMarshalTextRoundTrip(t *testing.T) {
	x := mustBigDecimal(t, "-3.1400")
	text, err := x.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var y BigDecimal
	if err := y.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", text, err)
	}
	if y.Cmp(x) != 0 || y.String() != x.String() {
		t.Fatalf("round trip = %s, want %s", y.String(), x.String())
	}
}

func TestBigDecimalInt64(t *testing.T) {
	if v, err := mustBigDecimal(t, "123.9").Int64(); err != nil || v != 123 {
		t.Fatalf("Int64(123.9) = %d, %v", v, err)
	}
	if v, err := mustBigDecimal(t, "-123.9").Int64(); err != nil || v != -123 {
		t.Fatalf("Int64(-123.9) = %d, %v", v, err)
	}
	if _, err := mustBigDecimal(t, "1e30").Int64(); err == nil {
		t.Fatal("expected overflow")
	} else if k, _ := bigerr.KindOf(err); k != bigerr.Overflow {
		t.Fatalf("overflow kind = %v", k)
	}
}

func TestBigDecimalFloat64(t *testing.T) {
	if got := mustBigDecimal(t, "0.5").Float64(); got != 0.5 {
		t.Fatalf("Float64(0.5) = %v", got)
	}
	if got := mustBigDecimal(t, "-3.14159").Float64(); got != -3.14159 {
		t.Fatalf("Float64(-3.14159) = %v", got)
	}
}

func TestBigIntFromBigDecimalConversion(t *testing.T) {
	i, err := BigIntFromBigDecimal(mustBigDecimal(t, "-42.00"))
	if err != nil || i.String() != "-42" {
		t.Fatalf("BigIntFromBigDecimal(-42.00) = %v, %v", i, err)
	}
	if _, err := BigIntFromBigDecimal(mustBigDecimal(t, "1.5")); err == nil {
		t.Fatal("expected conversion error")
	} else if k, _ := bigerr.KindOf(err); k != bigerr.Conversion {
		t.Fatalf("conversion kind = %v", k)
	}
}

func TestBigDecimalQuantizePads(t *testing.T) {
	x := mustBigDecimal(t, "5")
	exemplar := mustBigDecimal(t, "0.001")
	if got := x.Quantize(exemplar, RoundHalfEven).String(); got != "5.000" {
		t.Fatalf("quantize(5, 0.001) = %s, want 5.000", got)
	}
}

func TestBigDecimalEqualAcrossScales(t *testing.T) {
	a := mustBigDecimal(t, "1.50")
	b := mustBigDecimal(t, "1.5")
	if !a.Equal(b) {
		t.Fatal("1.50 must equal 1.5")
	}
	if a.String() == b.String() {
		t.Fatal("representations should differ while values compare equal")
	}
}

func TestBigDecimalIsInteger(t *testing.T) {
	if !mustBigDecimal(t, "4.00").IsInteger() {
		t.Fatal("4.00 should be an integer value")
	}
	if mustBigDecimal(t, "4.01").IsInteger() {
		t.Fatal("4.01 should not be an integer value")
	}
}
