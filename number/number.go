// Package number provides Number, a decimal value held as a sign, a 64-bit
// mantissa and a 16-bit power-of-ten exponent.
//
// A Number is what a JSON number literal denotes: it can be built from Go
// integers and floats or parsed from text, compared, converted back to the
// native types, and read as a fixed-point integer with a chosen number of
// decimal places. Numbers built from floats use the shortest digits that
// read back to the same float, so FromFloat64(0.1) is exactly 1 × 10^-1.
//
// Arithmetic on mantissas wraps on overflow. Conversions and comparisons
// that would need more than 64 bits of mantissa do not fail; they produce
// the low 64 bits of the exact result.
package number

import (
	"github.com/lattice-substrate/json-number/decfmt"
)

type category uint8

const (
	signPositive category = iota
	signNegative
	notANumber
)

// Number is a decimal floating-point value ±mantissa × 10^exponent, or NaN.
// The zero value is positive zero.
type Number struct {
	category category
	exponent int16
	mantissa uint64
}

// NaN is the not-a-number value. It is what non-finite floats convert to.
var NaN = Number{category: notANumber}

// FromParts returns ±mantissa × 10^exponent.
func FromParts(positive bool, mantissa uint64, exponent int16) Number {
	n := Number{exponent: exponent, mantissa: mantissa}
	if !positive {
		n.category = signNegative
	}
	return n
}

// Parts returns the sign, mantissa and exponent of n. The sign is false
// for negative numbers and for NaN.
func (n Number) Parts() (positive bool, mantissa uint64, exponent int16) {
	return n.category == signPositive, n.mantissa, n.exponent
}

// IsSignPositive reports whether n is a non-NaN number with a positive sign.
func (n Number) IsSignPositive() bool {
	return n.category == signPositive
}

// IsNaN reports whether n is NaN.
func (n Number) IsNaN() bool {
	return n.category == notANumber
}

// IsZero reports whether n is a zero of either sign.
func (n Number) IsZero() bool {
	return n.mantissa == 0 && n.category != notANumber
}

// IsEmpty reports whether n is zero or NaN.
func (n Number) IsEmpty() bool {
	return n.mantissa == 0 || n.category == notANumber
}

// Neg returns n with its sign flipped. The negation of NaN is NaN.
func (n Number) Neg() Number {
	switch n.category {
	case signPositive:
		n.category = signNegative
	case signNegative:
		n.category = signPositive
	}
	return n
}

// String returns the decimal text of n, or "nan".
func (n Number) String() string {
	if n.category == notANumber {
		return "nan"
	}
	return decfmt.String(n.category == signPositive, n.mantissa, n.exponent)
}
