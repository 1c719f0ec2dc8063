package decimal

import "testing"

// decimalWithin reports |a - b| < 10^-places.
func decimalWithin(t *testing.T, a, b *BigDecimal, places int32) bool {
	t.Helper()
	tol := BigDecimalFromParts(false, BigUIntFromUint64(1), places)
	return a.Sub(b).Abs().Cmp(tol) < 0
}

func TestPiThirtyDigits(t *testing.T) {
	got := Pi(30).String()
	want := "3.14159265358979323846264338328"
	if got != want {
		t.Fatalf("pi(30) = %s, want %s", got, want)
	}
}

func TestPiFiftyDigits(t *testing.T) {
	got := Pi(50).String()
	want := "3.1415926535897932384626433832795028841971693993751"
	if got != want {
		t.Fatalf("pi(50) = %s, want %s", got, want)
	}
}

func TestExpOfOne(t *testing.T) {
	one := mustBigDecimal(t, "1")
	got, err := one.Exp(30)
	if err != nil {
		t.Fatalf("exp(1): %v", err)
	}
	want := "2.71828182845904523536028747135"
	if got.String() != want {
		t.Fatalf("exp(1) at 30 digits = %s, want %s", got, want)
	}
}

func TestLnOfTwo(t *testing.T) {
	two := mustBigDecimal(t, "2")
	got, err := two.Ln(20)
	if err != nil {
		t.Fatalf("ln(2): %v", err)
	}
	want := "0.69314718055994530942"
	if got.String() != want {
		t.Fatalf("ln(2) at 20 digits = %s, want %s", got, want)
	}
}

func TestExpLnRoundTrip(t *testing.T) {
	for _, s := range []string{"10", "0.5", "3.25"} {
		x := mustBigDecimal(t, s)
		lnX, err := x.Ln(30)
		if err != nil {
			t.Fatalf("ln(%s): %v", s, err)
		}
		back, err := lnX.Exp(30)
		if err != nil {
			t.Fatalf("exp(ln(%s)): %v", s, err)
		}
		if !decimalWithin(t, back, x, 24) {
			t.Fatalf("exp(ln(%s)) = %s, drifted from %s", s, back, x)
		}
	}
}

func TestLnDomainErrors(t *testing.T) {
	if _, err := NewBigDecimal().Ln(10); err == nil {
		t.Fatal("expected ln(0) error")
	}
	if _, err := mustBigDecimal(t, "-1").Ln(10); err == nil {
		t.Fatal("expected ln(-1) error")
	}
}

func TestSinCosOfOne(t *testing.T) {
	one := mustBigDecimal(t, "1")
	s, err := one.Sin(20)
	if err != nil {
		t.Fatalf("sin(1): %v", err)
	}
	if got := s.String(); got != "0.84147098480789650665" {
		t.Fatalf("sin(1) = %s", got)
	}
	c, err := one.Cos(20)
	if err != nil {
		t.Fatalf("cos(1): %v", err)
	}
	if got := c.String(); got != "0.54030230586813971740" {
		t.Fatalf("cos(1) = %s", got)
	}
}

func TestSinSquaredPlusCosSquared(t *testing.T) {
	one := mustBigDecimal(t, "1")
	for _, s := range []string{"0.1", "1.2345", "3", "-2.5", "6.9"} {
		x := mustBigDecimal(t, s)
		sin, err := x.Sin(25)
		if err != nil {
			t.Fatalf("sin(%s): %v", s, err)
		}
		cos, err := x.Cos(25)
		if err != nil {
			t.Fatalf("cos(%s): %v", s, err)
		}
		sum := sin.Mul(sin).Add(cos.Mul(cos))
		if !decimalWithin(t, sum, one, 20) {
			t.Fatalf("sin^2(%s)+cos^2(%s) = %s, want 1", s, s, sum)
		}
	}
}

func TestSinPeriodicity(t *testing.T) {
	x := mustBigDecimal(t, "1.5")
	twoPi := Pi(40).Mul(mustBigDecimal(t, "2"))
	shifted := x.Add(twoPi)

	a, err := x.Sin(25)
	if err != nil {
		t.Fatalf("sin(x): %v", err)
	}
	b, err := shifted.Sin(25)
	if err != nil {
		t.Fatalf("sin(x+2pi): %v", err)
	}
	if !decimalWithin(t, a, b, 20) {
		t.Fatalf("sin(x+2pi) = %s, sin(x) = %s", b, a)
	}
}

func TestTanOfOne(t *testing.T) {
	one := mustBigDecimal(t, "1")
	got, err := one.Tan(20)
	if err != nil {
		t.Fatalf("tan(1): %v", err)
	}
	if got.String() != "1.5574077246549022305" {
		t.Fatalf("tan(1) = %s", got)
	}
}

func TestReciprocalTrigIdentities(t *testing.T) {
	one := mustBigDecimal(t, "1")
	x := mustBigDecimal(t, "0.7")

	s, _ := x.Sin(25)
	csc, err := x.Csc(25)
	if err != nil {
		t.Fatalf("csc: %v", err)
	}
	if !decimalWithin(t, s.Mul(csc), one, 20) {
		t.Fatalf("sin*csc = %s", s.Mul(csc))
	}

	c, _ := x.Cos(25)
	sec, err := x.Sec(25)
	if err != nil {
		t.Fatalf("sec: %v", err)
	}
	if !decimalWithin(t, c.Mul(sec), one, 20) {
		t.Fatalf("cos*sec = %s", c.Mul(sec))
	}

	tan, _ := x.Tan(25)
	cot, err := x.Cot(25)
	if err != nil {
		t.Fatalf("cot: %v", err)
	}
	if !decimalWithin(t, tan.Mul(cot), one, 20) {
		t.Fatalf("tan*cot = %s", tan.Mul(cot))
	}
}

func TestPowerIntegerExponent(t *testing.T) {
	two := mustBigDecimal(t, "2")
	got, err := two.Power(mustBigDecimal(t, "10"), 28)
	if err != nil {
		t.Fatalf("2^10: %v", err)
	}
	if got.Cmp(mustBigDecimal(t, "1024")) != 0 {
		t.Fatalf("2^10 = %s", got)
	}

	inv, err := two.Power(mustBigDecimal(t, "-2"), 28)
	if err != nil {
		t.Fatalf("2^-2: %v", err)
	}
	if !decimalWithin(t, inv, mustBigDecimal(t, "0.25"), 25) {
		t.Fatalf("2^-2 = %s", inv)
	}
}

func TestPowerFractionalExponentMatchesSqrt(t *testing.T) {
	two := mustBigDecimal(t, "2")
	half := mustBigDecimal(t, "0.5")
	viaPower, err := two.Power(half, 28)
	if err != nil {
		t.Fatalf("2^0.5: %v", err)
	}
	viaSqrt, err := two.Sqrt(28)
	if err != nil {
		t.Fatalf("sqrt(2): %v", err)
	}
	if !decimalWithin(t, viaPower, viaSqrt, 25) {
		t.Fatalf("2^0.5 = %s, sqrt(2) = %s", viaPower, viaSqrt)
	}
}

func TestLog10(t *testing.T) {
	thousand := mustBigDecimal(t, "1000")
	got, err := thousand.Log10(15)
	if err != nil {
		t.Fatalf("log10(1000): %v", err)
	}
	if !decimalWithin(t, got, mustBigDecimal(t, "3"), 12) {
		t.Fatalf("log10(1000) = %s", got)
	}
}

func TestLogArbitraryBase(t *testing.T) {
	eight := mustBigDecimal(t, "8")
	two := mustBigDecimal(t, "2")
	got, err := eight.Log(two, 15)
	if err != nil {
		t.Fatalf("log2(8): %v", err)
	}
	if !decimalWithin(t, got, mustBigDecimal(t, "3"), 12) {
		t.Fatalf("log2(8) = %s", got)
	}
}
