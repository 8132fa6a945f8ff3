package context_test

import (
	"strings"
	"testing"

	"github.com/kelvins/bcnum/context"
	"github.com/kelvins/bcnum/num"
)

func TestContextArithmetic(t *testing.T) {
	c := context.New().SetScale(4)
	a := c.NewString("10")
	b := c.NewString("3")
	z := c.NewNumber()
	c.Div(z, a, b)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if got := z.String(); got != "3.3333" {
		t.Fatalf("10/3 at scale 4 = %s, want 3.3333", got)
	}
}

func TestContextStickyError(t *testing.T) {
	c := context.New()
	a := c.NewString("5")
	b := c.NewString("0")
	z := c.NewNumber()
	c.Div(z, a, b).Add(z, z, a)
	err := c.Err()
	if err == nil {
		t.Fatal("expected sticky divide-by-zero error")
	}
	if e, ok := err.(*num.Error); !ok || e.Status != num.StatusDivideByZero {
		t.Fatalf("got %v, want StatusDivideByZero", err)
	}
	if again := c.Err(); again != nil {
		t.Fatalf("Err() did not clear sticky state: %v", again)
	}
}

func TestContextPrint(t *testing.T) {
	c := context.New().SetObase(16)
	n := c.NewUint64(255)
	var sb strings.Builder
	var nchars int
	c.Print(&sb, n, false, &nchars, 0)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "FF" {
		t.Fatalf("Print base16 = %s, want FF", sb.String())
	}
}
