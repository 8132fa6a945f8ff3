package num

// This file implements integer exponentiation (§4.6 "p"): square-and-
// multiply with an additively tracked result scale, grounded on the
// same "extract a machine-width exponent, then binary-exponentiate"
// shape ModExp uses, just without the per-step modular reduction.

// Pow sets z = a**b truncated or extended to scale fractional digits
// and returns any error. b must be an integer (b.Scale() == 0); a
// negative b computes 1/a**|b| at the requested scale. z may alias a
// or b.
func Pow(z, a, b *Number, scale int, sig *Signal) error {
	return binaryGuard(z, a, b, func(dst, a, b *Number) error {
		return powScaled(dst, a, b, scale, sig)
	})
}

// powScaled is Pow's unguarded kernel.
func powScaled(z, a, b *Number, scale int, sig *Signal) error {
	if b.rdx != 0 {
		return statusErr("Pow", StatusNonInteger)
	}
	if scale < 0 {
		scale = 0
	}

	e, err := exponentOf(b)
	if err != nil {
		return err
	}

	// A zero exponent wins over a zero base (pow(0,0) == 1); a zero
	// base then wins over a negative exponent regardless of its sign,
	// so pow(0, b) is 0 for every other b rather than routing through
	// a reciprocal of 0.
	if e == 0 {
		z.SetOne()
		z.Extend(scale)
		return nil
	}
	if a.IsZero() {
		z.SetZero(scale)
		return nil
	}

	if b.neg {
		pos := getNumber()
		defer putNumber(pos)
		if err := powUnsigned(pos, a, e, scale, sig); err != nil {
			return err
		}
		one := getNumber()
		defer putNumber(one)
		one.SetOne()
		return divScaled(z, one, pos, scale, sig)
	}
	return powUnsigned(z, a, e, scale, sig)
}

// exponentOf extracts b's value as a non-negative machine exponent,
// ignoring its sign (the caller handles negative exponents itself).
// It fails with StatusOverflow on an exponent too large to use as a
// repetition count for squaring.
func exponentOf(b *Number) (uint64, error) {
	abs := getNumber()
	defer putNumber(abs)
	abs.Copy(b)
	abs.neg = false
	e, err := abs.Uint64()
	if err != nil {
		return 0, &Error{Op: "Pow", Status: StatusOverflow}
	}
	return e, nil
}

// powUnsigned computes a**e (e a non-negative machine exponent) by
// square-and-multiply, per §4.6: working precision is
// min(a.rdx*e, max(scale, a.rdx)) before the final truncation to
// scale, and the running square's own rdx is doubled on every
// squaring step, exactly tracking the digits the schoolbook multiply
// actually produces. The caller has already handled e == 0 and a
// zero a, so e and a here are never degenerate.
func powUnsigned(z, a *Number, e uint64, scale int, sig *Signal) error {
	if err := sig.check("Pow"); err != nil {
		return err
	}

	workScale := a.rdx * int(e)
	if m := max(scale, a.rdx); workScale > m {
		workScale = m
	}

	base := getNumber()
	defer putNumber(base)
	base.Copy(a)

	acc := getNumber()
	defer putNumber(acc)
	acc.SetOne()

	neg := false
	for e > 0 {
		if err := sig.check("Pow"); err != nil {
			return err
		}
		if e&1 != 0 {
			neg = neg != base.neg
			prod := getNumber()
			if err := mulScaled(prod, acc, base, acc.rdx+base.rdx, sig); err != nil {
				putNumber(prod)
				return err
			}
			acc.Copy(prod)
			putNumber(prod)
		}
		e >>= 1
		if e == 0 {
			break
		}
		sq := getNumber()
		if err := mulScaled(sq, base, base, base.rdx*2, sig); err != nil {
			putNumber(sq)
			return err
		}
		base.Copy(sq)
		putNumber(sq)
	}

	acc.neg = neg && !acc.IsZero()

	switch {
	case acc.rdx < workScale:
		acc.Extend(workScale - acc.rdx)
	case acc.rdx > workScale:
		acc.Truncate(acc.rdx - workScale)
	}

	z.Copy(acc)
	switch {
	case z.rdx < scale:
		z.Extend(scale - z.rdx)
	case z.rdx > scale:
		z.Truncate(z.rdx - scale)
	}
	z.clean()
	return nil
}
