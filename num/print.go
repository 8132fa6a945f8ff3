package num

import (
	"io"
	"strconv"
)

// This file implements §4.9's print: a column-wrapping writer shared
// by every digit emitter, a decimal fast path that walks cells
// directly, a hex-alphabet path for bases up to 16, a fixed-width
// decimal-group path for bases above 16, and the dc-only single-byte
// Stream. It is grounded on the teacher's Append/toa split
// (decimal_toa.go) for the "driver calls a per-base digit emitter"
// shape, adapted from the teacher's exponential/fixed float notation
// to this engine's exact base-N long-division digit extraction.

const hexAlphabet = "0123456789ABCDEF"

// MaxIbase is the largest base Parse accepts.
const MaxIbase = 16

// wrapWriter tracks the running column counter nchars shared across a
// whole Print call (and, per §4.9, across calls sharing the same
// counter) and emits "\\\n" plus a counter reset whenever the next
// byte would land on the last column of the line.
type wrapWriter struct {
	w       io.Writer
	lineLen int
	nchars  *int
}

func (ww *wrapWriter) put(c byte) error {
	if ww.lineLen > 1 && *ww.nchars >= ww.lineLen-1 {
		if _, err := ww.w.Write([]byte{'\\', '\n'}); err != nil {
			return statusErr("Print", StatusIO)
		}
		*ww.nchars = 0
	}
	if _, err := ww.w.Write([]byte{c}); err != nil {
		return statusErr("Print", StatusIO)
	}
	*ww.nchars++
	return nil
}

func (ww *wrapWriter) puts(s string) error {
	for i := 0; i < len(s); i++ {
		if err := ww.put(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// Print writes n in the given output base to w, wrapping lines at
// lineLen columns (a lineLen <= 1 disables wrapping) and advancing
// *nchars as it goes; nchars is a running counter the caller may share
// across several Print calls on the same line. newline, when true,
// emits a trailing '\n' and resets *nchars to 0 after the value.
func Print(w io.Writer, n *Number, obase int, newline bool, nchars *int, lineLen int) error {
	if obase < 2 {
		panic("num: Print: obase out of range")
	}
	ww := &wrapWriter{w: w, lineLen: lineLen, nchars: nchars}

	if n.neg {
		if err := ww.put('-'); err != nil {
			return err
		}
	}

	var err error
	switch {
	case n.IsZero():
		err = ww.put('0')
	case obase == 10:
		err = printDecimal(ww, n)
	case obase <= MaxIbase:
		err = printNum(ww, n, obase, digitHex, true)
	default:
		err = printNum(ww, n, obase, digitGroupWidth(obase), true)
	}
	if err != nil {
		return err
	}

	if newline {
		if _, werr := w.Write([]byte{'\n'}); werr != nil {
			return statusErr("Print", StatusIO)
		}
		*nchars = 0
	}
	return nil
}

// printDecimal implements §4.9's obase==10 fast path: walk n's cells
// from most to least significant, emitting one hex digit per cell
// (decimal cells only ever hold 0-9, so the hex alphabet's first ten
// characters suffice) and inserting '.' before the first fractional
// cell.
func printDecimal(ww *wrapWriter, n *Number) error {
	for i := len(n.d) - 1; i >= 0; i-- {
		if i == n.rdx-1 {
			if err := ww.put('.'); err != nil {
				return err
			}
		}
		if err := ww.put(hexAlphabet[n.d[i]]); err != nil {
			return err
		}
	}
	return nil
}

// digitHex emits a single output digit (0..15) as one hex-alphabet
// character, one column. sep is ignored: hex digits are never
// space-separated.
func digitHex(ww *wrapWriter, v uint64, sep bool) error {
	return ww.put(hexAlphabet[v])
}

// digitGroupWidth returns a digit emitter for obase > MaxIbase: each
// "digit" occupies ceil(log10(obase)) columns and is printed as a
// fixed-width decimal group, preceded by a space unless sep is false
// (the first group of the whole printed value has no leading space,
// per §4.9; a '.' already introduces the first fractional group).
func digitGroupWidth(obase int) func(ww *wrapWriter, v uint64, sep bool) error {
	width := len(strconv.Itoa(obase - 1))
	return func(ww *wrapWriter, v uint64, sep bool) error {
		if sep {
			if err := ww.put(' '); err != nil {
				return err
			}
		}
		s := strconv.FormatUint(v, 10)
		for len(s) < width {
			s = "0" + s
		}
		return ww.puts(s)
	}
}

// printNum is §4.9's general base-conversion driver. It splits n into
// integer and fractional parts, repeatedly divmods the integer part
// by obase (pushing digits onto a stack, emitted in reverse), then
// repeatedly scales the fractional part up by obase, emitting the
// integer part of the product as the next digit, for as long as a
// counter fracLen (starting at 1 and multiplied by obase after each
// digit) is <= n.rdx; the number of fractional digits is therefore
// floor(log_obase(n.rdx)) + 1, not n.rdx. dot
// controls whether the transition into the fractional part writes a
// literal '.': the text printers want one, Stream's raw byte emitter
// does not, matching the original's printChar ignoring its own radix
// flag.
func printNum(ww *wrapWriter, n *Number, obase int, emit func(ww *wrapWriter, v uint64, sep bool) error, dot bool) error {
	base := getNumber()
	defer putNumber(base)
	base.SetUint64(uint64(obase))

	intp := getNumber()
	defer putNumber(intp)
	intp.Copy(n)
	intp.neg = false
	if intp.rdx > 0 {
		intp.Truncate(intp.rdx)
	}

	fracp := fractionalMagnitude(n)
	defer putNumber(fracp)

	var stack []uint64
	q := getNumber()
	defer putNumber(q)
	r := getNumber()
	defer putNumber(r)
	for !intp.IsZero() {
		if err := DivMod(q, r, intp, base, 0, nil); err != nil {
			return err
		}
		v, err := r.Uint64()
		if err != nil {
			return err
		}
		stack = append(stack, v)
		intp.Copy(q)
	}
	first := true
	for i := len(stack) - 1; i >= 0; i-- {
		if err := emit(ww, stack[i], !first); err != nil {
			return err
		}
		first = false
	}

	if n.rdx > 0 {
		prod := getNumber()
		defer putNumber(prod)
		digitN := getNumber()
		defer putNumber(digitN)

		fracLen := 1
		firstFrac := true
		for fracLen <= n.rdx {
			if err := Mul(prod, fracp, base, n.rdx, nil); err != nil {
				return err
			}
			digitN.Copy(prod)
			if digitN.rdx > 0 {
				digitN.Truncate(digitN.rdx)
			}
			v, err := digitN.Uint64()
			if err != nil {
				return err
			}
			sep := !firstFrac
			if firstFrac {
				if dot {
					if err := ww.put('.'); err != nil {
						return err
					}
				}
				firstFrac = false
			}
			if err := emit(ww, v, sep); err != nil {
				return err
			}
			if err := Sub(fracp, prod, digitN, n.rdx, nil); err != nil {
				return err
			}
			fracLen *= obase
		}
	}
	return nil
}

// fractionalMagnitude returns a new Number holding just n's
// fractional cells (d[0:rdx]) at scale rdx, discarding its integer
// part and sign.
func fractionalMagnitude(n *Number) *Number {
	f := getNumber()
	f.d = f.d.make(n.rdx)
	copy(f.d, n.d[:n.rdx])
	f.rdx = n.rdx
	f.neg = false
	f.clean()
	return f
}

// Stream writes n's output-base digits as raw bytes, one byte per
// digit value, bypassing the hex/decimal-group digit tables and the
// '.' radix marker entirely, per §4.9's dc-mode byte emission ("one
// raw byte per integer value of n"). It drives the same obase digit
// loop Print uses (printNum), with nchars and lineLen threaded
// through for a shared running column counter even though, like the
// original's printChar, Stream never itself wraps a line. It is used
// by dc's P/N-style commands, which this package does not itself
// implement (lexer/parser/stack machine are out of scope per spec.md
// §1); it is exposed here as the byte-emission primitive those
// commands would call.
func Stream(w io.Writer, n *Number, obase int, nchars *int, lineLen int) error {
	if obase < 2 {
		panic("num: Stream: obase out of range")
	}
	ww := &wrapWriter{w: w, lineLen: lineLen, nchars: nchars}
	if n.IsZero() {
		return digitRaw(ww, 0, false)
	}
	return printNum(ww, n, obase, digitRaw, false)
}

// digitRaw emits a single output digit as one raw byte, the
// bc_num_printChar equivalent: no separators, no radix marker, and no
// line wrapping (line_len is accepted only so Stream's caller can
// share an nchars counter with Print calls on the same line). A digit
// value above 255 cannot be written as one byte and fails with
// StatusOverflow.
func digitRaw(ww *wrapWriter, v uint64, sep bool) error {
	if v > 255 {
		return &Error{Op: "Stream", Status: StatusOverflow}
	}
	if _, err := ww.w.Write([]byte{byte(v)}); err != nil {
		return statusErr("Stream", StatusIO)
	}
	*ww.nchars++
	return nil
}
