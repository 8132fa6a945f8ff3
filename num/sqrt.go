package num

// This file implements Newton's-method square root (§4.6 "sqrt"). It
// follows the algorithm the spec itself mandates rather than the
// teacher's reciprocal-square-root trick (decimal_sqrt.go), because
// this engine's sqrt must return an exact scale-limited decimal value
// the way the rest of the package does, not a rounded Decimal: the
// iteration, the initial-estimate construction and the stagnation
// guard are all grounded on db47h/decimal's general "compute at
// precision+guard, loop until two iterates agree" shape, adapted to
// the digit-cell representation and the cmp-based termination rule
// §4.6 spells out.

// Sqrt sets z to the square root of a, truncated to scale fractional
// digits, and returns any error: StatusNegative if a < 0. z may alias
// a.
func Sqrt(z, a *Number, scale int, sig *Signal) error {
	if a.neg {
		return &Error{Op: "Sqrt", Status: StatusNegative}
	}
	if scale < 0 {
		scale = 0
	}
	if a.IsZero() {
		z.SetZero(scale)
		return nil
	}

	one := getNumber()
	defer putNumber(one)
	one.SetOne()
	if c, err := Cmp(a, one, sig); err != nil {
		return err
	} else if c == 0 {
		z.SetOne()
		z.Extend(scale)
		return nil
	}

	work := getNumber()
	defer putNumber(work)
	if err := sqrtNewton(work, a, scale+2, sig); err != nil {
		return err
	}
	work.Truncate(work.rdx - scale)
	z.Copy(work)
	return nil
}

// sqrtNewton computes sqrt(a) to prec fractional digits into x,
// iterating x_{n+1} = (x_n + a/x_n)/2 from an initial estimate built
// per §4.6: a leading digit of 2 or 6 depending on the parity of a's
// integer-part length, shifted so x0 has roughly half as many integer
// digits as a.
func sqrtNewton(x, a *Number, prec int, sig *Signal) error {
	intLen := a.IntLen()
	if intLen == 0 {
		intLen = 1
	}

	x.SetZero(0)
	if intLen%2 == 0 {
		x.d = x.d.make(1)
		x.d[0] = 6
	} else {
		x.d = x.d.make(1)
		x.d[0] = 2
	}
	x.rdx = 0
	x.neg = false
	if k := (intLen - 2) / 2; k > 0 {
		if err := x.Shift(k); err != nil {
			return err
		}
	}

	type state struct {
		cmp    int
		digits int
	}
	var lastState state
	repeats := 0
	working := prec

	tmp := getNumber()
	defer putNumber(tmp)
	next := getNumber()
	defer putNumber(next)
	two := getNumber()
	defer putNumber(two)
	two.SetUint64(2)

	for {
		if err := sig.check("Sqrt"); err != nil {
			return err
		}

		if err := divScaled(tmp, a, x, working, sig); err != nil {
			return err
		}
		if err := Add(next, x, tmp, 0, sig); err != nil {
			return err
		}
		if err := divScaled(next, next, two, working, sig); err != nil {
			return err
		}

		c, err := Cmp(next, x, sig)
		if err != nil {
			return err
		}

		agree := agreeingDigits(next, x)
		need := next.IntLen() + prec - 2 + 1

		x.Copy(next)

		if c == 0 && agree >= need {
			break
		}

		st := state{cmp: c, digits: agree}
		if st == lastState {
			repeats++
			if repeats > 4 {
				working++
				repeats = 0
			}
		} else {
			repeats = 0
		}
		lastState = st
	}

	return nil
}

// agreeingDigits returns the number of leading (most-significant)
// digit cells on which a and b agree, used by the stagnation detector
// to recognise a repeating (cmp, agreement) pair.
func agreeingDigits(a, b *Number) int {
	ad, bd, _ := align(a, b)
	n := len(ad)
	if len(bd) > n {
		n = len(bd)
	}
	agree := 0
	for i := n - 1; i >= 0; i-- {
		var av, bv digit
		if i < len(ad) {
			av = ad[i]
		}
		if i < len(bd) {
			bv = bd[i]
		}
		if av != bv {
			break
		}
		agree++
	}
	return agree
}
