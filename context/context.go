// Package context provides a scale/base/cancellation wrapper around
// num.Number, the direct generalisation of db47h/decimal's
// precision/rounding-mode Context to this engine's auxiliary
// configuration (spec.md §3: scale, ibase, obase) plus a shared
// cancellation Signal.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *num.Number
//
// create a new num.Number set to the value of x. Operators of the
// form
//
//	func (c *Context) Op(z, x, y *num.Number) *Context
//
// set z to the result of the operation at c's scale and return c,
// catching any *num.Error the way the teacher's Context catches NaN
// errors: once an operation fails, c is "sticky" and every further
// operation is a no-op until Err is called.
package context

import (
	"io"

	"github.com/kelvins/bcnum/num"
)

// DefaultObase is the output base a freshly constructed Context uses
// until SetObase changes it.
const DefaultObase = 10

// A Context bundles the scale, input base, output base and
// cancellation Signal that every num operation otherwise takes as
// separate arguments, plus a sticky error slot.
type Context struct {
	scale int
	ibase int
	obase int
	sig   *num.Signal
	err   error
}

// New returns a Context at scale 0, ibase 10, obase 10, with its own
// cancellation Signal.
func New() *Context {
	return &Context{scale: 0, ibase: 10, obase: DefaultObase, sig: new(num.Signal)}
}

// Scale returns c's scale.
func (c *Context) Scale() int { return c.scale }

// SetScale sets c's scale (clamped to >= 0) and returns c.
func (c *Context) SetScale(scale int) *Context {
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
	return c
}

// Ibase returns c's input base.
func (c *Context) Ibase() int { return c.ibase }

// SetIbase sets c's input base (clamped to 2..16) and returns c.
func (c *Context) SetIbase(ibase int) *Context {
	if ibase < 2 {
		ibase = 2
	}
	if ibase > 16 {
		ibase = 16
	}
	c.ibase = ibase
	return c
}

// Obase returns c's output base.
func (c *Context) Obase() int { return c.obase }

// SetObase sets c's output base (clamped to >= 2) and returns c.
func (c *Context) SetObase(obase int) *Context {
	if obase < 2 {
		obase = 2
	}
	c.obase = obase
	return c
}

// Signal returns the cancellation Signal every operation run through
// c polls.
func (c *Context) Signal() *num.Signal { return c.sig }

// Err returns the first error encountered since the last call to Err
// and clears the sticky error state.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// fail records err as c's sticky error (if one isn't already
// recorded) and reports whether c is already failing, so callers can
// write `if c.fail(err) { return z }`.
func (c *Context) fail(err error) bool {
	if err != nil && c.err == nil {
		c.err = err
	}
	return c.err != nil
}

// NewNumber returns a new num.Number equal to zero.
func (c *Context) NewNumber() *num.Number { return num.New() }

// NewUint64 returns a new num.Number set to v.
func (c *Context) NewUint64(v uint64) *num.Number {
	return num.New().SetUint64(v)
}

// NewString parses s (in c's input base) into a new num.Number. On a
// malformed literal it records the error on c and returns a zero
// Number.
func (c *Context) NewString(s string) *num.Number {
	n := num.New()
	if c.err != nil {
		return n
	}
	if err := num.Parse(n, s, c.ibase); c.fail(err) {
		return n
	}
	return n
}

// Add sets z = a + b and returns c.
func (c *Context) Add(z, a, b *num.Number) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.Add(z, a, b, c.scale, c.sig))
	return c
}

// Sub sets z = a - b and returns c.
func (c *Context) Sub(z, a, b *num.Number) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.Sub(z, a, b, c.scale, c.sig))
	return c
}

// Mul sets z = a * b at c's scale and returns c.
func (c *Context) Mul(z, a, b *num.Number) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.Mul(z, a, b, c.scale, c.sig))
	return c
}

// Div sets z = a / b at c's scale and returns c.
func (c *Context) Div(z, a, b *num.Number) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.Div(z, a, b, c.scale, c.sig))
	return c
}

// Mod sets z = a mod b and returns c.
func (c *Context) Mod(z, a, b *num.Number) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.Mod(z, a, b, c.scale, c.sig))
	return c
}

// DivMod sets q = a/b and r = a - trunc(a/b)*b at c's scale and
// returns c.
func (c *Context) DivMod(q, r, a, b *num.Number) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.DivMod(q, r, a, b, c.scale, c.sig))
	return c
}

// Pow sets z = a**b at c's scale and returns c.
func (c *Context) Pow(z, a, b *num.Number) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.Pow(z, a, b, c.scale, c.sig))
	return c
}

// Sqrt sets z = sqrt(a) at c's scale and returns c.
func (c *Context) Sqrt(z, a *num.Number) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.Sqrt(z, a, c.scale, c.sig))
	return c
}

// ModExp sets d = a**b mod m and returns c.
func (c *Context) ModExp(d, a, b, m *num.Number) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.ModExp(d, a, b, m, c.sig))
	return c
}

// Cmp returns the comparison of a and b. It does not participate in
// c's sticky-error chaining since it has no destination to leave
// undefined.
func (c *Context) Cmp(a, b *num.Number) (int, error) {
	return num.Cmp(a, b, c.sig)
}

// Print writes n to w in c's output base, subject to line wrapping,
// and returns c.
func (c *Context) Print(w io.Writer, n *num.Number, newline bool, nchars *int, lineLen int) *Context {
	if c.err != nil {
		return c
	}
	c.fail(num.Print(w, n, c.obase, newline, nchars, lineLen))
	return c
}
