package num

// This file implements the additive core of §4.4. scale is accepted on
// both entry points for symmetry with the rest of the package's binary
// operations but is ignored: the result's rdx is always
// max(a.rdx, b.rdx), exactly as spec.md §4.4 requires.

// Add sets z = a + b and returns any error. scale is accepted but
// unused (see above). z may alias a or b.
func Add(z, a, b *Number, scale int, sig *Signal) error {
	_ = scale
	return binaryGuard(z, a, b, func(dst, a, b *Number) error {
		return addSigned(dst, a, b, sig)
	})
}

// Sub sets z = a - b and returns any error. scale is accepted but
// unused. z may alias a or b.
//
// Sub is implemented as Add(a, -b): rather than duplicate the sign
// dispatch table of §4.4 with b's role inverted, a negated scratch
// copy of b is built once and fed through the same addSigned kernel
// Add uses, which is exactly the identity a - b = a + (-b).
func Sub(z, a, b *Number, scale int, sig *Signal) error {
	_ = scale
	return binaryGuard(z, a, b, func(dst, a, b *Number) error {
		neg := getNumber()
		defer putNumber(neg)
		neg.Copy(b)
		if !neg.IsZero() {
			neg.neg = !neg.neg
		}
		return addSigned(dst, a, neg, sig)
	})
}

// addSigned dispatches to the unsigned add or unsigned subtract kernel
// according to whether a and b carry the same sign.
func addSigned(z, a, b *Number, sig *Signal) error {
	if a.IsZero() {
		z.Copy(b)
		z.Extend(a.rdx - z.rdx)
		z.clean()
		return nil
	}
	if b.IsZero() {
		z.Copy(a)
		z.Extend(b.rdx - z.rdx)
		z.clean()
		return nil
	}
	if a.neg == b.neg {
		return addUnsigned(z, a, b, sig)
	}
	return subUnsigned(z, a, b, sig)
}

// addUnsigned computes |a| + |b|, carrying the sign of a (a and b
// necessarily share a sign here, so a's is as good as either's).
func addUnsigned(z, a, b *Number, sig *Signal) error {
	if err := sig.check("Add"); err != nil {
		return err
	}
	ad, bd, rdx := align(a, b)
	sum := addMag(ad, bd)
	z.d = z.d.set(sum)
	z.rdx = rdx
	z.neg = a.neg
	z.clean()
	return nil
}

// subUnsigned computes |a| - |b| or |b| - |a| (whichever is
// non-negative), carrying the sign of whichever operand had the
// larger magnitude, per §4.3/§4.4.
func subUnsigned(z, a, b *Number, sig *Signal) error {
	if err := sig.check("Sub"); err != nil {
		return err
	}
	ad, bd, rdx := align(a, b)
	c, err := compare(ad, bd, sig)
	if err != nil {
		return err
	}
	if c == 0 {
		z.SetZero(rdx)
		return nil
	}
	var diff digits
	var neg bool
	if c > 0 {
		diff = subMag(ad, bd)
		neg = a.neg
	} else {
		diff = subMag(bd, ad)
		neg = b.neg
	}
	z.d = z.d.set(diff)
	z.rdx = rdx
	z.neg = neg
	z.clean()
	return nil
}
