package num

import "math/bits"

// This file implements the §6 to_ulong/from_ulong surface as
// Number.Uint64/Number.SetUint64, grounded on the teacher's
// dec.toUint64/dec.setUint64 (dec.go) but working one decimal digit
// per cell instead of one base-1e19 limb.
//
// §9's open question about bc_num_ulong2num's loop/indent quirk is
// resolved here by deriving the expand step independently: decimal
// digit count of the target value first, then an LSB-first digit
// write, with no dependency on how many iterations a C for-loop body
// happened to run.

// maxUint64Digits is the decimal digit count of math.MaxUint64
// (18446744073709551615), the capacity SetUint64 ever needs.
const maxUint64Digits = 20

// Uint64 returns n truncated toward zero as a uint64. It fails with
// StatusNegative if n is negative and StatusOverflow if n's integer
// part does not fit in 64 bits.
func (n *Number) Uint64() (uint64, error) {
	if n.neg {
		return 0, &Error{Op: "Uint64", Status: StatusNegative}
	}
	if n.IntLen() > maxUint64Digits {
		return 0, &Error{Op: "Uint64", Status: StatusOverflow}
	}
	var v uint64
	for i := len(n.d) - 1; i >= n.rdx; i-- {
		hi, lo := bits.Mul64(v, 10)
		if hi != 0 {
			return 0, &Error{Op: "Uint64", Status: StatusOverflow}
		}
		sum, carry := bits.Add64(lo, uint64(n.d[i]), 0)
		if carry != 0 {
			return 0, &Error{Op: "Uint64", Status: StatusOverflow}
		}
		v = sum
	}
	return v, nil
}

// SetUint64 sets n to v at scale 0 and returns n.
func (n *Number) SetUint64(v uint64) *Number {
	if v == 0 {
		return n.SetZero(0)
	}
	dig := decimalDigits64(v)
	n.d = n.d.make(dig)
	for i := 0; i < dig; i++ {
		n.d[i] = digit(v % 10)
		v /= 10
	}
	n.rdx = 0
	n.neg = false
	return n.clean()
}

// decimalDigits64 returns the number of decimal digits needed to
// represent v, with decimalDigits64(0) == 1.
func decimalDigits64(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
