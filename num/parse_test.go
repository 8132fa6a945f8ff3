package num

import "testing"

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		s        string
		want     string
		wantRdx  int
	}{
		{"123.45", "123.45", 2},
		{"0", "0", 0},
		{"007", "7", 0},
		{"0.00", "0", 2},
		{".5", ".5", 1},
		{"", "0", 0},
	}
	for _, c := range cases {
		n := New()
		if err := Parse(n, c.s, 10); err != nil {
			t.Fatalf("Parse(%q): %v", c.s, err)
		}
		if got := n.String(); got != c.want {
			t.Errorf("Parse(%q) = %s, want %s", c.s, got, c.want)
		}
		if n.Scale() != c.wantRdx {
			t.Errorf("Parse(%q).Scale() = %d, want %d", c.s, n.Scale(), c.wantRdx)
		}
	}
}

func TestParseBadString(t *testing.T) {
	cases := []string{"1.2.3", "12G", "abc", "F", "1A"}
	for _, s := range cases {
		n := New()
		err := Parse(n, s, 10)
		if e, ok := err.(*Error); !ok || e.Status != StatusBadString {
			t.Errorf("Parse(%q, ibase=10): got %v, want StatusBadString", s, err)
		}
	}
}

func TestParseHex(t *testing.T) {
	n := New()
	if err := Parse(n, "FF", 16); err != nil {
		t.Fatal(err)
	}
	got, err := n.Text(10)
	if err != nil {
		t.Fatal(err)
	}
	if got != "255" {
		t.Fatalf("Parse(FF,16)->base10 = %s, want 255", got)
	}
}

func TestParseBaseRoundTrip(t *testing.T) {
	for _, base := range []int{2, 8, 10, 16} {
		n := New().SetUint64(12345)
		text, err := n.Text(base)
		if err != nil {
			t.Fatalf("base %d: Text: %v", base, err)
		}
		back := New()
		if err := Parse(back, text, base); err != nil {
			t.Fatalf("base %d: Parse(%q): %v", base, text, err)
		}
		v, err := back.Uint64()
		if err != nil {
			t.Fatalf("base %d: Uint64: %v", base, err)
		}
		if v != 12345 {
			t.Fatalf("base %d round trip: got %d, want 12345", base, v)
		}
	}
}
