package num

// This file implements the multiplicative core of §4.5: a scaled Mul
// entry point plus the unsigned integer multiply "k" it delegates to,
// which picks between schoolbook and Karatsuba the same way the
// teacher's dec.mul/decKaratsuba pick between decBasicMul and
// decKaratsuba, just one decimal digit per cell instead of one
// base-1e19 limb per cell.

// karatsubaThreshold is the minimum operand length (in digit cells)
// below which schoolbook multiplication is preferred; Karatsuba's
// recursion overhead does not pay for itself below this size.
const karatsubaThreshold = 64

// Mul sets z = a * b truncated or extended to scale fractional digits
// and returns any error. z may alias a or b.
func Mul(z, a, b *Number, scale int, sig *Signal) error {
	return binaryGuard(z, a, b, func(dst, a, b *Number) error {
		return mulScaled(dst, a, b, scale, sig)
	})
}

// mulScaled implements §4.5's retire step: align both operands to
// integer (conceptually, by tracking their combined rdx rather than
// physically shifting), multiply magnitudes, then truncate or extend
// to the clamped result scale.
func mulScaled(z, a, b *Number, scale int, sig *Signal) error {
	if a.IsZero() || b.IsZero() {
		s := scale
		if s < 0 {
			s = 0
		}
		z.SetZero(s)
		return nil
	}

	prod, err := mulMag(a.d, b.d, sig)
	if err != nil {
		return err
	}

	resultRdx := min(a.rdx+b.rdx, max(scale, a.rdx, b.rdx))

	z.d = z.d.set(prod.trim())
	z.rdx = a.rdx + b.rdx
	z.neg = a.neg != b.neg
	z.clean()

	switch {
	case z.rdx < resultRdx:
		z.Extend(resultRdx - z.rdx)
	case z.rdx > resultRdx:
		z.Truncate(z.rdx - resultRdx)
	}

	z.clean()
	return nil
}

// mulMag computes the unsigned product of two magnitudes ("k" in
// §4.5): zero and unit fast paths, then a size-based dispatch between
// schoolbook and Karatsuba.
func mulMag(x, y digits, sig *Signal) (digits, error) {
	if err := sig.check("Mul"); err != nil {
		return nil, err
	}
	if len(x) == 0 || len(y) == 0 {
		return digits{}, nil
	}
	if len(x) == 1 && x[0] == 1 {
		return append(digits(nil), y...), nil
	}
	if len(y) == 1 && y[0] == 1 {
		return append(digits(nil), x...), nil
	}
	if len(x) < karatsubaThreshold || len(y) < karatsubaThreshold || len(x)+len(y) < karatsubaThreshold {
		return schoolbookMul(x, y), nil
	}
	return karatsubaMul(x, y, sig)
}

// schoolbookMul is the double-loop grade-school multiply: each
// partial product is accumulated at its column with carry propagation,
// and any final carry is written past the last column.
func schoolbookMul(x, y digits) digits {
	z := make(digits, len(x)+len(y))
	for i := range y {
		yi := int(y[i])
		if yi == 0 {
			continue
		}
		carry := 0
		for j := range x {
			v := int(z[i+j]) + int(x[j])*yi + carry
			z[i+j] = digit(v % 10)
			carry = v / 10
		}
		k := i + len(x)
		for carry > 0 {
			v := int(z[k]) + carry
			z[k] = digit(v % 10)
			carry = v / 10
			k++
		}
	}
	return z
}

// karatsubaMul implements §4.5's Karatsuba split: z0 = l1*l2, z2 =
// h1*h2, z1 = (h1+l1)*(h2+l2) - z0 - z2, then z2 shifted by 2m plus
// z1 shifted by m plus z0.
func karatsubaMul(x, y digits, sig *Signal) (digits, error) {
	if err := sig.check("Mul"); err != nil {
		return nil, err
	}

	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	m := (n + 1) / 2 // ceil(max(|x|,|y|)/2)

	xl, xh := splitAt(x, m)
	yl, yh := splitAt(y, m)

	z2, err := mulMag(xh, yh, sig)
	if err != nil {
		return nil, err
	}
	z0, err := mulMag(xl, yl, sig)
	if err != nil {
		return nil, err
	}

	sumX := addMag(xh, xl).trim()
	sumY := addMag(yh, yl).trim()
	z1, err := mulMag(sumX, sumY, sig)
	if err != nil {
		return nil, err
	}
	z1 = subtractMag(z1, z0)
	z1 = subtractMag(z1, z2)

	var result digits
	result = addShifted(result, z0, 0)
	result = addShifted(result, z1, m)
	result = addShifted(result, z2, 2*m)
	return result.trim(), nil
}

// splitAt splits x into a low half x[0:m) and a high half x[m:) the
// way §4.5 requires: x = h*10**m + l. Both halves alias x; mulMag and
// schoolbookMul only ever read their operands.
func splitAt(x digits, m int) (lo, hi digits) {
	if m > len(x) {
		m = len(x)
	}
	return x[:m], x[m:]
}

// subtractMag returns a - b, where a (as an unsigned magnitude) is
// always >= b for every call site in karatsubaMul.
func subtractMag(a, b digits) digits {
	if len(b) > len(a) {
		padded := make(digits, len(b))
		copy(padded, a)
		a = padded
	}
	return subMag(a, b).trim()
}

// addShifted adds src*10**shift into dst (which may need to grow) and
// returns the (possibly reallocated) result. It is the karatsubaMul
// equivalent of the teacher's decAddAt.
func addShifted(dst, src digits, shift int) digits {
	if len(src) == 0 {
		return dst
	}
	need := shift + len(src) + 1
	if len(dst) < need {
		t := make(digits, need)
		copy(t, dst)
		dst = t
	}
	var carry digit
	i := shift
	for j := 0; j < len(src); j++ {
		v := dst[i] + src[j] + carry
		if v >= 10 {
			v -= 10
			carry = 1
		} else {
			carry = 0
		}
		dst[i] = v
		i++
	}
	for carry > 0 {
		if i >= len(dst) {
			t := make(digits, i+1)
			copy(t, dst)
			dst = t
		}
		v := dst[i] + carry
		if v >= 10 {
			v -= 10
			carry = 1
		} else {
			carry = 0
		}
		dst[i] = v
		i++
	}
	return dst
}

// trim drops high-order zero cells without any rdx-aware restoration
// (unlike Number.clean, digits has no rdx of its own); it is used on
// purely magnitude-level intermediates inside mul/div/pow.
func (z digits) trim() digits {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}
