package num

import "strings"

// This file implements §4.8's parse: the union of the bc decimal
// grammar ([0-9]+(\.[0-9]+)?) and the dc multi-base grammar
// ([0-9A-F]+(\.[0-9A-F]+)?), with digit values validated against
// ibase. It is grounded on the teacher's scan-then-normalise Parse
// shape (decimal_conv.go) but follows the digit-by-digit accumulation
// §4.8 spells out rather than the teacher's binary-exponent mantissa
// math, since this engine's input is always base 2-16 digits, never a
// binary float.

const digitAlphabet = "0123456789ABCDEF"

// Parse sets n to the value of s read in the given input base
// (2..=16) and returns any error. An empty string sets n to zero.
func Parse(n *Number, s string, ibase int) error {
	if ibase < 2 || ibase > 16 {
		panic("num: Parse: ibase out of range")
	}
	if s == "" {
		n.SetZero(0)
		return nil
	}
	if !strValid(s, ibase) {
		return statusErr("Parse", StatusBadString)
	}

	if ibase == 10 {
		return parseDecimal(n, s)
	}
	return parseBase(n, s, ibase)
}

// strValid validates s against §4.8's grammar: digits 0-9A-F (case
// insensitive), at most one '.', and every digit value < ibase.
func strValid(s string, ibase int) bool {
	dotSeen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if dotSeen {
				return false
			}
			dotSeen = true
			continue
		}
		v, ok := digitValue(c)
		if !ok || v >= ibase {
			return false
		}
	}
	return true
}

// digitValue returns the numeric value of a base-16 digit character
// and whether c is one at all.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	default:
		return 0, false
	}
}

// parseDecimal implements §4.8's ibase==10 branch: strip leading
// zeros, derive rdx from the position of '.' relative to the end of
// the string, and write digit cells from the string's tail to the
// Number's head (the string is MSB-first; the Number is LSB-first).
func parseDecimal(n *Number, s string) error {
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	_ = hasDot

	intPart = strings.TrimLeft(intPart, "0")

	if intPart == "" && strings.Trim(fracPart, "0") == "" {
		n.SetZero(len(fracPart))
		return nil
	}

	rdx := len(fracPart)
	total := len(intPart) + rdx
	n.d = n.d.make(total)
	for i := 0; i < len(fracPart); i++ {
		n.d[len(fracPart)-1-i] = digit(fracPart[i] - '0')
	}
	for i := 0; i < len(intPart); i++ {
		n.d[total-1-i] = digit(intPart[i] - '0')
	}
	n.rdx = rdx
	n.neg = false
	n.clean()
	return nil
}

// parseBase implements §4.8's ibase!=10 branch: accumulate the
// integer digits as n := n*ibase + digit, then accumulate the
// fractional digits into a separate result/mult pair (result :=
// result*ibase + digit, mult := mult*ibase) and fold result/mult into
// n at the end.
func parseBase(n *Number, s string, ibase int) error {
	intPart, fracPart, _ := strings.Cut(s, ".")

	base := getNumber()
	defer putNumber(base)
	base.SetUint64(uint64(ibase))

	acc := getNumber()
	defer putNumber(acc)
	acc.SetZero(0)

	d := getNumber()
	defer putNumber(d)
	prod := getNumber()
	defer putNumber(prod)

	for i := 0; i < len(intPart); i++ {
		v, _ := digitValue(intPart[i])
		if err := Mul(prod, acc, base, 0, nil); err != nil {
			return err
		}
		d.SetUint64(uint64(v))
		if err := Add(acc, prod, d, 0, nil); err != nil {
			return err
		}
	}

	if len(fracPart) > 0 {
		result := getNumber()
		defer putNumber(result)
		result.SetZero(0)

		mult := getNumber()
		defer putNumber(mult)
		mult.SetOne()

		for i := 0; i < len(fracPart); i++ {
			v, _ := digitValue(fracPart[i])
			if err := Mul(prod, result, base, 0, nil); err != nil {
				return err
			}
			d.SetUint64(uint64(v))
			if err := Add(result, prod, d, 0, nil); err != nil {
				return err
			}
			if err := Mul(mult, mult, base, 0, nil); err != nil {
				return err
			}
		}

		frac := getNumber()
		defer putNumber(frac)
		if err := Div(frac, result, mult, len(fracPart), nil); err != nil {
			return err
		}
		if err := Add(acc, acc, frac, 0, nil); err != nil {
			return err
		}
	}

	n.Copy(acc)
	return nil
}
