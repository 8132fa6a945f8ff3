package num

// Cmp returns -1, 0, or +1 according to whether a < b, a == b, or
// a > b, testing in order: identity, then zero operands (decided by
// the other operand's sign), then opposite signs, then magnitude, by
// one cell-by-cell compare of both operands aligned on their radix
// point from the most significant cell down (a missing high cell
// counts as zero, so a longer integer part wins there without a
// separate length test). sig may be nil to run uncancellably.
func Cmp(a, b *Number, sig *Signal) (int, error) {
	if a == b {
		return 0, nil
	}
	if a.IsZero() || b.IsZero() {
		as, bs := a.Sign(), b.Sign()
		switch {
		case as < bs:
			return -1, nil
		case as > bs:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.neg != b.neg {
		if a.neg {
			return -1, nil
		}
		return 1, nil
	}

	ad, bd, _ := align(a, b)
	r, err := compare(ad, bd, sig)
	if err != nil {
		return 0, err
	}
	if a.neg {
		r = -r
	}
	return r, nil
}
