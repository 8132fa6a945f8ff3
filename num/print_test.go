package num

import (
	"strings"
	"testing"
)

func TestTextDecimal(t *testing.T) {
	cases := []struct {
		s, want string
	}{
		{"191.25", "191.25"},
		{"-4", "-4"},
		{"0", "0"},
	}
	for _, c := range cases {
		n := mustParse(t, c.s, 10)
		got, err := n.Text(10)
		if err != nil {
			t.Fatalf("Text(%q): %v", c.s, err)
		}
		if got != c.want {
			t.Errorf("Text(%q) = %s, want %s", c.s, got, c.want)
		}
	}
}

func TestTextHex(t *testing.T) {
	n := New().SetUint64(255)
	got, err := n.Text(16)
	if err != nil {
		t.Fatal(err)
	}
	if got != "FF" {
		t.Fatalf("Text(255,16) = %s, want FF", got)
	}
}

func TestTextBaseAboveHex(t *testing.T) {
	n := New().SetUint64(12345)
	got, err := n.Text(100)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, " ") {
		t.Fatalf("Text(12345,100) = %q, want space-separated digit groups", got)
	}
}

func TestPrintLineWrap(t *testing.T) {
	n := New().SetUint64(123456789)
	var sb strings.Builder
	var nchars int
	if err := Print(&sb, n, 10, false, &nchars, 5); err != nil {
		t.Fatal(err)
	}
	got := sb.String()
	if !strings.Contains(got, "\\\n") {
		t.Fatalf("Print with lineLen=5 did not wrap: %q", got)
	}
	joined := strings.ReplaceAll(got, "\\\n", "")
	if joined != "123456789" {
		t.Fatalf("unwrapped Print output = %q, want 123456789", joined)
	}
}

func TestStream(t *testing.T) {
	n := New().SetUint64(65)
	var sb strings.Builder
	var nchars int
	if err := Stream(&sb, n, 256, &nchars, 0); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "A" {
		t.Fatalf("Stream(65, obase=256) = %q, want %q", sb.String(), "A")
	}
	if nchars != 1 {
		t.Fatalf("nchars after Stream = %d, want 1", nchars)
	}
}

func TestStreamZero(t *testing.T) {
	n := New()
	var sb strings.Builder
	var nchars int
	if err := Stream(&sb, n, 256, &nchars, 0); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "\x00" {
		t.Fatalf("Stream(0) = %q, want a single zero byte", sb.String())
	}
}

func TestStreamMultiDigit(t *testing.T) {
	// base 10: 321 streams as three raw digit-value bytes (3, 2, 1),
	// most significant first, not the ASCII text "321".
	n := New().SetUint64(321)
	var sb strings.Builder
	var nchars int
	if err := Stream(&sb, n, 10, &nchars, 0); err != nil {
		t.Fatal(err)
	}
	want := []byte{3, 2, 1}
	if got := []byte(sb.String()); string(got) != string(want) {
		t.Fatalf("Stream(321, obase=10) = %v, want %v", got, want)
	}
	if nchars != 3 {
		t.Fatalf("nchars after Stream = %d, want 3", nchars)
	}
}

func TestStreamOverflow(t *testing.T) {
	n := New().SetUint64(300)
	var sb strings.Builder
	var nchars int
	err := Stream(&sb, n, 400, &nchars, 0)
	if e, ok := err.(*Error); !ok || e.Status != StatusOverflow {
		t.Fatalf("Stream(300, obase=400): got %v, want StatusOverflow", err)
	}
}
