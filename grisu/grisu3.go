// Package grisu converts IEEE 754 double-precision values into the shortest
// decimal digit string that reads back to the same double, and lays those
// digits out as a JSON number literal.
//
// Digits come from Florian Loitsch's Grisu3 ("Printing Floating-Point
// Numbers Quickly and Accurately with Integers", PLDI 2010), which works in
// 64-bit fixed point against a table of cached powers of ten. Grisu3 is not
// complete: for roughly half a percent of doubles it cannot prove its digits
// are the shortest, and reports ErrIncomplete. The formatter then falls back
// to an exact big-integer digit generator, so every finite double formats.
//
// The package also exposes Estimate, a Grisu2 digit estimator that never
// fails and is used by the number package to build decimal values from
// doubles.
package grisu

import (
	"errors"

	"github.com/lattice-substrate/json-number/numerr"
)

var (
	// ErrNotFinite is returned for NaN and ±Inf, which have no JSON literal.
	ErrNotFinite = numerr.New(numerr.NotFinite, -1, "value is not finite (NaN or Infinity)")

	// ErrIncomplete is returned by Shortest when Grisu3 cannot guarantee
	// that its digits are the shortest correctly rounded ones.
	ErrIncomplete = errors.New("grisu: digits not provably shortest")
)

// grisu3 writes the digits of v into buf and returns the decimal exponent
// of the last digit. v must be strictly positive and finite.
func grisu3(v float64, buf *digitBuffer) (dexp int, ok bool) {
	b := viewOf(v)
	if v <= 0 || b.special() {
		panic("grisu: grisu3 needs a strictly positive finite value")
	}
	dfp := b.diyFp()
	w := dfp.normalize()

	// Boundaries are the midpoints to the neighbouring doubles.
	bPlus := diyFp{f: dfp.f<<1 + 1, e: dfp.e - 1}.normalize()
	var bMinus diyFp
	if b.fraction() == 0 && b.biasedExp() != 0 {
		// The lower neighbour sits in the binade below, half as far away.
		bMinus = diyFp{f: dfp.f<<2 - 1, e: dfp.e - 2}
	} else {
		bMinus = diyFp{f: dfp.f<<1 - 1, e: dfp.e - 1}
	}
	bMinus.f <<= uint(bMinus.e - bPlus.e)
	bMinus.e = bPlus.e

	cmk, mk := cachedPowerFor(minTargetExp - diyFpBits - w.e)
	w = w.mul(cmk)
	bMinus = bMinus.mul(cmk)
	bPlus = bPlus.mul(cmk)

	kappa, ok := digitGen(bMinus, w, bPlus, buf)
	return kappa - mk, ok
}

// Shortest appends to dst the Grisu3 digits of |v| and returns them with
// the decimal exponent of the last digit, so that |v| reads back from
// digits × 10^exp. Zero yields the single digit "0".
//
// It returns ErrNotFinite for NaN and ±Inf and ErrIncomplete when Grisu3
// rejects its own result; in that case dst is returned unchanged and
// callers should use Exact.
func Shortest(dst []byte, v float64) (digits []byte, exp int, err error) {
	b := viewOf(v)
	if b.special() {
		return dst, 0, ErrNotFinite
	}
	b = b.abs()
	if b == 0 {
		return append(dst, '0'), 0, nil
	}
	var buf digitBuffer
	exp, ok := grisu3(b.float(), &buf)
	if !ok {
		return dst, 0, ErrIncomplete
	}
	return append(dst, buf.bytes()...), exp, nil
}
