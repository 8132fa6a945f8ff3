package num

// This file implements the low-level digit operations of §4.2: magnitude
// compare, subtract-in-place with decimal borrow, and the shift/extend/
// truncate family that move a Number's radix point or grow/shrink its
// fractional width.

// padLow returns x with k zero cells inserted at the low (least
// significant) end, so that what used to be index i is now index
// i+k. k must be >= 0; k == 0 returns x unchanged.
func padLow(x digits, k int) digits {
	if k <= 0 {
		return x
	}
	z := make(digits, len(x)+k)
	copy(z[k:], x)
	return z
}

// align returns a and b padded with low-order zero cells so that both
// use the same rdx (= max(a.rdx, b.rdx)); after alignment, index i in
// either result represents the same place value (10**(i-rdx)).
func align(a, b *Number) (ad, bd digits, rdx int) {
	rdx = max(a.rdx, b.rdx)
	ad = padLow(a.d, rdx-a.rdx)
	bd = padLow(b.d, rdx-b.rdx)
	return
}

// compare returns a signed value whose sign is that of the first
// non-equal cell scanned from most significant to least significant,
// treating missing cells past either slice's end as zero so a and b
// need not have equal length. It polls sig so a long division's
// repeated magnitude tests remain cancellable.
func compare(a, b digits, sig *Signal) (int, error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		if err := sig.check("compare"); err != nil {
			return 0, err
		}
		var av, bv digit
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			if av < bv {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, nil
}

// subArrays computes a[0:len(b)] -= b in place with decimal borrow
// propagation and returns the outgoing borrow (0 or 1). The caller
// must have verified |a| >= |b| at these positions; for a call
// spanning a's entire length the returned borrow must be 0.
func subArrays(a, b digits) (borrow digit) {
	for i := range b {
		v := a[i] - b[i] - borrow
		if v < 0 {
			v += 10
			borrow = 1
		} else {
			borrow = 0
		}
		a[i] = v
	}
	return borrow
}

// addMag returns the unsigned sum of two magnitudes already aligned
// to a common rdx (so index i in each represents the same place
// value). The result has one extra high cell to hold a final carry;
// the caller normalises it.
func addMag(x, y digits) digits {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	z := make(digits, n+1)
	var carry digit
	for i := 0; i < n; i++ {
		var xi, yi digit
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		v := xi + yi + carry
		if v >= 10 {
			v -= 10
			carry = 1
		} else {
			carry = 0
		}
		z[i] = v
	}
	z[n] = carry
	return z
}

// subMag returns x - y for two magnitudes already aligned to a common
// rdx, with |x| >= |y| (the caller picks minuend/subtrahend by
// comparing magnitudes first). It delegates the shared-length portion
// to subArrays and then propagates any outgoing borrow through x's
// excess high-order cells.
func subMag(x, y digits) digits {
	z := make(digits, len(x))
	copy(z, x)
	b := subArrays(z[:len(y)], y)
	for i := len(y); b != 0 && i < len(z); i++ {
		v := z[i] - b
		if v < 0 {
			v += 10
			b = 1
		} else {
			b = 0
		}
		z[i] = v
	}
	return z
}

// extendLow inserts k zero cells at the low end of d, shifting
// existing cells up by k positions (a Number.Extend/Shift helper).
func extendLow(d digits, k int) digits {
	if k <= 0 {
		return d
	}
	z := d.make(len(d) + k)
	copy(z[k:], d)
	for i := 0; i < k; i++ {
		z[i] = 0
	}
	return z
}

// Shift multiplies n by 10**k in place (k must be >= 0): it first
// reinterprets up to rdx already-stored fractional cells as newly
// significant integer cells by decrementing rdx, and only appends new
// low-order zero cells once rdx has been exhausted.
func (n *Number) Shift(k int) error {
	if k < 0 {
		panic("num: Shift: negative k")
	}
	if k == 0 {
		return nil
	}
	if len(n.d)+k > maxLen {
		return statusErr("Shift", StatusLengthExceeded)
	}
	if n.rdx > 0 {
		dec := k
		if dec > n.rdx {
			dec = n.rdx
		}
		n.rdx -= dec
		k -= dec
	}
	if k > 0 {
		n.d = extendLow(n.d, k)
	}
	n.clean()
	return nil
}

// Extend inserts k zero fractional cells at the low end of n without
// changing its value, increasing both its cell count and its rdx by
// k. It is the precision-widening counterpart to Truncate.
func (n *Number) Extend(k int) *Number {
	if k <= 0 {
		return n
	}
	n.d = extendLow(n.d, k)
	n.rdx += k
	return n
}

// Truncate removes the k least-significant fractional cells of n,
// discarding precision (it does not round). It requires k <= n.rdx.
func (n *Number) Truncate(k int) *Number {
	if k <= 0 {
		return n
	}
	if k > n.rdx {
		panic("num: Truncate: k > rdx")
	}
	copy(n.d, n.d[k:])
	n.d = n.d[:len(n.d)-k]
	n.rdx -= k
	return n.clean()
}
