package grisu

import (
	"io"

	"github.com/lattice-substrate/json-number/numerr"
)

// AppendFloat appends the shortest JSON number literal for v to dst.
//
// Negative values, including negative zero, get a leading '-'. Zero is "0".
// Other values use the Grisu3 digits (or the exact fallback when Grisu3
// gives up) laid out in whichever of plain, fractional or exponent form is
// shortest, for example "1", "0.1", "12.5", "1e21" or "5e-324".
//
// NaN and ±Inf have no JSON literal; AppendFloat returns dst and
// ErrNotFinite for them.
func AppendFloat(dst []byte, v float64) ([]byte, error) {
	b := viewOf(v)
	if b.special() {
		return dst, ErrNotFinite
	}
	if b.negative() {
		dst = append(dst, '-')
		b = b.abs()
	}
	if b == 0 {
		return append(dst, '0'), nil
	}

	var buf digitBuffer
	dexp, ok := grisu3(b.float(), &buf)
	if !ok {
		buf.reset()
		dexp = exactDigits(b.float(), &buf)
	}
	layout(&buf, dexp)
	return append(dst, buf.bytes()...), nil
}

// FormatFloat returns the shortest JSON number literal for v.
func FormatFloat(v float64) (string, error) {
	var scratch [bufferSize]byte
	out, err := AppendFloat(scratch[:0], v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Write writes the shortest JSON number literal for v to w. No terminator
// is written.
func Write(w io.Writer, v float64) error {
	var scratch [bufferSize]byte
	out, err := AppendFloat(scratch[:0], v)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return numerr.Wrap(numerr.InternalIO, -1, "write literal", err)
	}
	return nil
}

// layout rewrites the digits in buf, worth digits × 10^dexp, in place
// into JSON number syntax.
func layout(buf *digitBuffer, dexp int) {
	n := buf.len()
	decimals := min(-dexp, max(1, n-1))
	switch {
	case dexp < 0 && (n >= -dexp || expLen(dexp+decimals)+1 <= expLen(dexp)) &&
		(n > decimals || dexp+decimals == 0):
		// Decimal point inside the digits, possibly with a residual
		// exponent: "12.5", "1.25e-99". A lone digit only takes a point
		// when nothing is left for the exponent: "0.5", never "0.5e-9".
		buf.insert(n-decimals, '.')
		if n == decimals {
			buf.insert(0, '0')
		}
		dexp += decimals
		if dexp != 0 {
			buf.append('e')
			buf.appendInt(dexp)
		}
	case dexp < 0 && dexp >= -3:
		// Leading zeros: "0.001", "0.012".
		buf.insertZeros(0, -dexp-n)
		buf.insert(0, '0', '.')
	case dexp < 0 || dexp > 2:
		buf.append('e')
		buf.appendInt(dexp)
	case dexp > 0:
		for ; dexp > 0; dexp-- {
			buf.append('0')
		}
	}
}

// expLen returns the printed length of u, sign included, for u in
// [-9999, 9999].
func expLen(u int) int {
	switch {
	case u > 0:
		switch {
		case u >= 1000:
			return 4
		case u >= 100:
			return 3
		case u >= 10:
			return 2
		}
		return 1
	case u < 0:
		switch {
		case u <= -1000:
			return 5
		case u <= -100:
			return 4
		case u <= -10:
			return 3
		}
		return 2
	}
	return 1
}
