package decimal

import "testing"

func TestBigIntAddSub(t *testing.T) {
	a := BigIntFromInt64(-5)
	b := BigIntFromInt64(3)
	if got := a.Add(b).String(); got != "-2" {
		t.Fatalf("-5 + 3 = %s, want -2", got)
	}
	if got := a.Sub(b).String(); got != "-8" {
		t.Fatalf("-5 - 3 = %s, want -8", got)
	}
}

func TestBigIntDivisionModes(t *testing.T) {
	a := BigIntFromInt64(-7)
	b := BigIntFromInt64(2)

	q, r, err := a.QuoRem(b, Truncate)
	if err != nil || q.String() != "-3" || r.String() != "-1" {
		t.Fatalf("truncate: q=%v r=%v err=%v, want -3 -1", q, r, err)
	}

	q, r, err = a.QuoRem(b, Floor)
	if err != nil || q.String() != "-4" || r.String() != "1" {
		t.Fatalf("floor: q=%v r=%v err=%v, want -4 1", q, r, err)
	}

	q, r, err = a.QuoRem(b, Euclidean)
	if err != nil || q.String() != "-4" || r.String() != "1" || r.IsNegative() {
		t.Fatalf("euclidean: q=%v r=%v err=%v, want -4 1 (non-negative remainder)", q, r, err)
	}
}

func TestBigIntZeroHasPositiveSign(t *testing.T) {
	a := BigIntFromInt64(5)
	b := BigIntFromInt64(5)
	z := a.Sub(b)
	if z.IsNegative() || z.Sign() != 0 {
		t.Fatalf("zero result must not be negative, got sign %d neg %v", z.Sign(), z.IsNegative())
	}
}

func TestBigIntDivisionByZero(t *testing.T) {
	a := BigIntFromInt64(1)
	if _, _, err := a.QuoRem(NewBigInt(), Truncate); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestBigIntPow(t *testing.T) {
	minusTwo := BigIntFromInt64(-2)
	if got := minusTwo.Pow(3).String(); got != "-8" {
		t.Fatalf("(-2)**3 = %s", got)
	}
	if got := minusTwo.Pow(4).String(); got != "16" {
		t.Fatalf("(-2)**4 = %s", got)
	}
}

func TestBigIntQuoRemInvariant(t *testing.T) {
	// q*y + r == x must hold for every mode and sign combination.
	values := []int64{7, -7, 13, -13}
	divisors := []int64{3, -3, 5, -5}
	for _, xv := range values {
		for _, yv := range divisors {
			x, y := BigIntFromInt64(xv), BigIntFromInt64(yv)
			for _, mode := range []DivisionMode{Truncate, Floor, Euclidean} {
				q, r, err := x.QuoRem(y, mode)
				if err != nil {
					t.Fatalf("QuoRem(%d, %d, %d): %v", xv, yv, mode, err)
				}
				if got := q.Mul(y).Add(r); got.Cmp(x) != 0 {
					t.Errorf("mode %d: %d/%d: q*y+r = %s, want %d", mode, xv, yv, got, xv)
				}
				if mode == Euclidean && r.IsNegative() {
					t.Errorf("euclidean remainder of %d/%d is negative: %s", xv, yv, r)
				}
			}
		}
	}
}

func TestBigIntGenericFromInt(t *testing.T) {
	if got := BigIntFromInt(int8(-7)).String(); got != "-7" {
		t.Fatalf("BigIntFromInt(int8) = %s", got)
	}
	if got := BigIntFromInt(uint32(4000000000)).String(); got != "4000000000" {
		t.Fatalf("BigIntFromInt(uint32) = %s", got)
	}
}

func TestBigIntAbsNeg(t *testing.T) {
	a := BigIntFromInt64(-42)
	if got := a.Abs().String(); got != "42" {
		t.Fatalf("abs(-42) = %s", got)
	}
	if got := a.Neg().String(); got != "42" {
		t.Fatalf("neg(-42) = %s", got)
	}
}
