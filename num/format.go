package num

import "strings"

// This file supplies the textual convenience surface spec.md §6 says
// is the only serialised form a Number has: String/Text grounded on
// the teacher's Append/toa split (decimal_toa.go), and
// MarshalText/UnmarshalText grounded on decimal_marsh.go, both
// restricted to this engine's exact fixed-point grammar (no exponent
// notation, since a Number's scale is exact and has no floating
// exponent to normalise away).

// String returns n formatted in base 10 with no line wrapping, the
// fmt.Stringer most callers want.
func (n *Number) String() string {
	s, err := n.Text(10)
	if err != nil {
		return "<invalid num.Number>"
	}
	return s
}

// Text returns n formatted in the given output base (any base >= 2)
// with no line wrapping.
func (n *Number) Text(obase int) (string, error) {
	var sb strings.Builder
	var nchars int
	if err := Print(&sb, n, obase, false, &nchars, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MarshalText implements encoding.TextMarshaler, emitting n in base
// 10.
func (n *Number) MarshalText() ([]byte, error) {
	s, err := n.Text(10)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing text in
// base 10. A leading '-' marks a negative value.
func (n *Number) UnmarshalText(text []byte) error {
	s := string(text)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if err := Parse(n, s, 10); err != nil {
		return err
	}
	n.SetNeg(neg)
	return nil
}
