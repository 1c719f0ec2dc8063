package decimal

import (
	"github.com/arbprec/decimal/bigerr"
	"github.com/arbprec/decimal/internal/bigword"
)

// Add returns x + y as a freshly allocated BigUInt.
func (x *BigUInt) Add(y *BigUInt) *BigUInt {
	z := &BigUInt{limb: make([]bigword.Word, max(len(x.limb), len(y.limb))+1)}
	z.addInto(x.limb, y.limb)
	return z.normalize()
}

// AddAssign sets x = x + y, mutating and returning x.
func (x *BigUInt) AddAssign(y *BigUInt) *BigUInt {
	out := make([]bigword.Word, max(len(x.limb), len(y.limb))+1)
	z := &BigUInt{limb: out}
	z.addInto(x.limb, y.limb)
	x.limb = z.normalize().limb
	return x
}

// addInto computes a + b into z.limb, which must have length
// max(len(a),len(b))+1.
func (z *BigUInt) addInto(a, b []bigword.Word) {
	if len(a) < len(b) {
		a, b = b, a
	}
	c := bigword.AddVV(z.limb[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = bigword.AddVW(z.limb[len(b):len(a)], a[len(b):], c)
	}
	z.limb[len(a)] = c
}

// Sub returns x - y. Precondition: x >= y; violating it fails with a
// ValueError because BigUInt cannot represent negative values.
func (x *BigUInt) Sub(y *BigUInt) (*BigUInt, error) {
	const op = "BigUInt.Sub"
	if x.Cmp(y) < 0 {
		return nil, bigerr.New(op, bigerr.Value, "subtraction underflow: x < y")
	}
	z := &BigUInt{limb: make([]bigword.Word, len(x.limb))}
	z.subInto(x.limb, y.limb)
	return z.normalize(), nil
}

// SubAssign sets x = x - y, mutating and returning x, or returns a
// ValueError leaving x unchanged.
func (x *BigUInt) SubAssign(y *BigUInt) error {
	const op = "BigUInt.SubAssign"
	if x.Cmp(y) < 0 {
		return bigerr.New(op, bigerr.Value, "subtraction underflow: x < y")
	}
	z := &BigUInt{limb: make([]bigword.Word, len(x.limb))}
	z.subInto(x.limb, y.limb)
	x.limb = z.normalize().limb
	return nil
}

// subInto computes a - b into z.limb (len(z.limb) == len(a), a >= b).
func (z *BigUInt) subInto(a, b []bigword.Word) {
	c := bigword.SubVV(z.limb[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = bigword.SubVW(z.limb[len(b):], a[len(b):], c)
	}
	if c != 0 {
		panic("decimal: internal invariant violated: Sub precondition x>=y was false")
	}
}

