package decimal

import (
	"encoding/binary"
	"math/bits"

	"github.com/arbprec/decimal/bigerr"
	"github.com/arbprec/decimal/internal/bigword"

	"golang.org/x/exp/constraints"
)

// BigUIntFromInt converts any signed or unsigned integer type to a
// BigUInt. A negative value fails with a ValueError, mirroring
// BigUIntFromString's rejection of negative literals.
func BigUIntFromInt[T constraints.Integer](v T) (*BigUInt, error) {
	const op = "BigUIntFromInt"
	if v < 0 {
		return nil, bigerr.New(op, bigerr.Value, "negative value has no BigUInt representation")
	}
	return BigUIntFromUint64(uint64(v)), nil
}

// Uint64 converts x to a uint64, failing with an OverflowError if x does
// not fit.
func (x *BigUInt) Uint64() (uint64, error) {
	const op = "BigUInt.Uint64"
	limb := bigword.Norm(x.limb)
	var v uint64
	for i := len(limb) - 1; i >= 0; i-- {
		if v > (1<<64-1)/bigword.Base {
			return 0, bigerr.New(op, bigerr.Overflow, "value overflows uint64")
		}
		v *= bigword.Base
		next := v + uint64(limb[i])
		if next < v {
			return 0, bigerr.New(op, bigerr.Overflow, "value overflows uint64")
		}
		v = next
	}
	return v, nil
}

// Uint128 converts x to a big-endian 128-bit value expressed as (hi, lo),
// failing with an OverflowError if x does not fit in 128 bits.
func (x *BigUInt) Uint128() (hi, lo uint64, err error) {
	const op = "BigUInt.Uint128"
	limb := bigword.Norm(x.limb)
	if len(limb) > 5 { // 5*9 = 45 digits is always enough headroom to bound 128 bits (~39 digits)
		return 0, 0, bigerr.New(op, bigerr.Overflow, "value overflows uint128")
	}
	var hiAcc, loAcc uint64
	for i := len(limb) - 1; i >= 0; i-- {
		// (hiAcc:loAcc) = (hiAcc:loAcc)*Base + limb[i], checked via
		// math/bits' 128-bit-aware multiply/add primitives.
		hiOverflow, hiPart := bits.Mul64(hiAcc, bigword.Base)
		if hiOverflow != 0 {
			return 0, 0, bigerr.New(op, bigerr.Overflow, "value overflows uint128")
		}
		mHi, mLo := bits.Mul64(loAcc, bigword.Base)
		newHi, c := bits.Add64(mHi, hiPart, 0)
		if c != 0 {
			return 0, 0, bigerr.New(op, bigerr.Overflow, "value overflows uint128")
		}
		sum, c2 := bits.Add64(mLo, uint64(limb[i]), 0)
		newHi, c = bits.Add64(newHi, 0, c2)
		if c != 0 {
			return 0, 0, bigerr.New(op, bigerr.Overflow, "value overflows uint128")
		}
		hiAcc, loAcc = newHi, sum
	}
	return hiAcc, loAcc, nil
}

// AppendBinary writes x's limbs as a sequence of big-endian uint32 words
// (one per limb, most significant first) using encoding/binary, appending
// them to buf and returning the extended slice.
func (x *BigUInt) AppendBinary(buf []byte) []byte {
	limb := bigword.Norm(x.limb)
	out := buf
	for i := len(limb) - 1; i >= 0; i-- {
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(limb[i]))
		out = append(out, tmp[:]...)
	}
	return out
}
