package num

import "testing"

func TestAddDecimal(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"123.45", "67.8", "191.25"},
		{"1", "-1", "0"},
		{"-1.5", "-2.5", "-4.0"},
		{"0", "5", "5"},
		{"5", "0", "5"},
		{"10", "-3", "7"},
		{"3", "-10", "-7"},
	}
	for _, c := range cases {
		a, b := mustParse(t, c.a, 10), mustParse(t, c.b, 10)
		z := New()
		if err := Add(z, a, b, 0, nil); err != nil {
			t.Fatalf("Add(%s,%s): %v", c.a, c.b, err)
		}
		if got := z.String(); got != c.want {
			t.Errorf("Add(%s,%s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestAddCommutative(t *testing.T) {
	a := mustParse(t, "123.456", 10)
	b := mustParse(t, "-78.9", 10)
	z1, z2 := New(), New()
	if err := Add(z1, a, b, 0, nil); err != nil {
		t.Fatal(err)
	}
	if err := Add(z2, b, a, 0, nil); err != nil {
		t.Fatal(err)
	}
	if z1.String() != z2.String() {
		t.Fatalf("add not commutative: %s vs %s", z1, z2)
	}
}

func TestSubSelfIsZero(t *testing.T) {
	a := mustParse(t, "42.125", 10)
	z := New()
	if err := Sub(z, a, a, 0, nil); err != nil {
		t.Fatal(err)
	}
	if !z.IsZero() {
		t.Fatalf("a-a = %s, want 0", z)
	}
	if z.Scale() != a.Scale() {
		t.Fatalf("a-a scale = %d, want %d", z.Scale(), a.Scale())
	}
}

func TestAddNegationIsZero(t *testing.T) {
	a := mustParse(t, "9.81", 10)
	negA := New()
	negA.Copy(a)
	negA.SetNeg(true)
	z := New()
	if err := Add(z, a, negA, 0, nil); err != nil {
		t.Fatal(err)
	}
	if !z.IsZero() {
		t.Fatalf("a+(-a) = %s, want 0", z)
	}
}

func TestAddAliasedDestination(t *testing.T) {
	a := mustParse(t, "5", 10)
	b := mustParse(t, "5", 10)
	if err := Add(a, a, b, 0, nil); err != nil {
		t.Fatal(err)
	}
	if got := a.String(); got != "10" {
		t.Fatalf("aliased Add(a,a,b) = %s, want 10", got)
	}
}

func TestAddAllAliased(t *testing.T) {
	a := mustParse(t, "5", 10)
	if err := Add(a, a, a, 0, nil); err != nil {
		t.Fatal(err)
	}
	if got := a.String(); got != "10" {
		t.Fatalf("Add(a,a,a) = %s, want 10", got)
	}
}
