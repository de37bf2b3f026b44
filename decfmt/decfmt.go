// Package decfmt renders a decimal value mantissa × 10^exponent as text.
//
// It is the textual form of number.Number and is independent of the
// JSON layout rules in package grisu: exponents small enough to spell out
// are written in positional notation, everything else in scientific form
// with one integer digit.
package decfmt

import (
	"io"
	"strconv"

	"github.com/lattice-substrate/json-number/numerr"
)

// maxFixedFraction is the largest number of fractional digits written in
// positional notation.
const maxFixedFraction = 17

// Append appends the text form of ±mantissa × 10^exponent to dst.
//
//	Append(nil, true, 15, 0)   // "15"
//	Append(nil, true, 15, -3)  // "0.015"
//	Append(nil, false, 15, 3)  // "-1.5e4"
//	Append(nil, true, 15, -30) // "1.5e-29"
func Append(dst []byte, positive bool, mantissa uint64, exponent int16) []byte {
	if !positive {
		dst = append(dst, '-')
	}
	if mantissa == 0 {
		return append(dst, '0')
	}

	var scratch [20]byte
	digits := strconv.AppendUint(scratch[:0], mantissa, 10)
	k := len(digits)
	e := int(exponent)

	switch {
	case e == 0:
		dst = append(dst, digits...)
	case e < 0 && -e <= maxFixedFraction:
		if k > -e {
			// Point within digits
			dst = append(dst, digits[:k+e]...)
			dst = append(dst, '.')
			dst = append(dst, digits[k+e:]...)
		} else {
			// 0.000...digits
			dst = append(dst, '0', '.')
			for i := 0; i < -e-k; i++ {
				dst = append(dst, '0')
			}
			dst = append(dst, digits...)
		}
	default:
		dst = append(dst, digits[0])
		if k > 1 {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}
		dst = append(dst, 'e')
		dst = strconv.AppendInt(dst, int64(e+k-1), 10)
	}
	return dst
}

// String returns the text form of ±mantissa × 10^exponent.
func String(positive bool, mantissa uint64, exponent int16) string {
	var scratch [48]byte
	return string(Append(scratch[:0], positive, mantissa, exponent))
}

// Write writes the text form of ±mantissa × 10^exponent to w.
func Write(w io.Writer, positive bool, mantissa uint64, exponent int16) error {
	var scratch [48]byte
	if _, err := w.Write(Append(scratch[:0], positive, mantissa, exponent)); err != nil {
		return numerr.Wrap(numerr.InternalIO, -1, "write decimal", err)
	}
	return nil
}
