package number

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/lattice-substrate/json-number/decfmt"
	"github.com/lattice-substrate/json-number/grisu"
	"github.com/lattice-substrate/json-number/numerr"
)

// FromInt64 returns v as a Number with exponent zero.
func FromInt64(v int64) Number {
	if v < 0 {
		// -v wraps for math.MinInt64, whose magnitude still fits the mantissa.
		return Number{category: signNegative, mantissa: uint64(-v)}
	}
	return Number{mantissa: uint64(v)}
}

// FromUint64 returns v as a Number with exponent zero.
func FromUint64(v uint64) Number {
	return Number{mantissa: v}
}

// FromInt converts any signed integer.
func FromInt[T constraints.Signed](v T) Number {
	return FromInt64(int64(v))
}

// FromUint converts any unsigned integer.
func FromUint[T constraints.Unsigned](v T) Number {
	return FromUint64(uint64(v))
}

// FromFloat64 returns the decimal value of v using the shortest digits that
// read back to v. NaN and ±Inf become NaN; zeros keep their sign.
func FromFloat64(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NaN
	}
	pos := !math.Signbit(v)
	if v == 0 {
		return FromParts(pos, 0, 0)
	}
	m, e := grisu.Estimate(math.Abs(v))
	return FromParts(pos, m, e)
}

// FromFloat32 is FromFloat64 applied to the float64 value of v.
func FromFloat32(v float32) Number {
	return FromFloat64(float64(v))
}

// Float64 returns the float64 nearest n, rounding half to even. NaN
// converts to NaN. Numbers beyond the float64 range return an OUT_OF_RANGE
// error rather than an infinity; numbers below it become a signed zero.
func (n Number) Float64() (float64, error) {
	if n.category == notANumber {
		return math.NaN(), nil
	}
	var f float64
	e := int(n.exponent)
	switch {
	case n.mantissa == 0:
	case n.mantissa <= maxExactMantissa64 && e >= 0 && e < len(pow10f64):
		f = float64(n.mantissa) * pow10f64[e]
	case n.mantissa <= maxExactMantissa64 && e < 0 && -e < len(pow10f64):
		f = float64(n.mantissa) / pow10f64[-e]
	default:
		var err error
		if f, err = n.parseFloat(64); err != nil {
			return 0, err
		}
	}
	if math.IsInf(f, 0) {
		return 0, numerr.Newf(numerr.OutOfRange, -1, "%s exceeds the float64 range", n)
	}
	if n.category == signNegative {
		f = -f
	}
	return f, nil
}

// parseFloat rounds the magnitude of n correctly to the given bit size by
// reading back its decimal text. Overflow yields +Inf.
func (n Number) parseFloat(bitSize int) (float64, error) {
	var scratch [48]byte
	text := decfmt.Append(scratch[:0], true, n.mantissa, n.exponent)
	f, err := strconv.ParseFloat(string(text), bitSize)
	if err != nil && !math.IsInf(f, 0) {
		return 0, numerr.Wrap(numerr.InternalError, -1, "convert "+string(text), err)
	}
	return f, nil
}

// MustFloat64 is like Float64 but panics when n is out of range.
func (n Number) MustFloat64() float64 {
	f, err := n.Float64()
	if err != nil {
		panic(err)
	}
	return f
}

// Float32 returns the float32 nearest n, rounding half to even. Values
// beyond the float32 range become ±Inf and NaN converts to NaN.
func (n Number) Float32() float32 {
	if n.category == notANumber {
		return float32(math.NaN())
	}
	var f float32
	e := int(n.exponent)
	switch {
	case n.mantissa == 0:
	case n.mantissa <= maxExactMantissa32 && e >= 0 && e < len(pow10f32):
		f = float32(n.mantissa) * pow10f32[e]
	case n.mantissa <= maxExactMantissa32 && e < 0 && -e < len(pow10f32):
		f = float32(n.mantissa) / pow10f32[-e]
	default:
		// The text of a finite Number always parses.
		v, _ := n.parseFloat(32)
		f = float32(v)
	}
	if n.category == signNegative {
		f = -f
	}
	return f
}

// Int64 returns n truncated toward zero. NaN is 0. Results that do not fit
// wrap around.
func (n Number) Int64() int64 {
	return int64(n.bits())
}

// Uint64 is like Int64 but returns the two's complement bits as a uint64.
func (n Number) Uint64() uint64 {
	return n.bits()
}

// ToInt converts n to any integer type with the truncating, wrapping
// semantics of Int64.
func ToInt[T constraints.Integer](n Number) T {
	return T(n.bits())
}

// bits is the value of n truncated toward zero, in 64-bit two's complement.
func (n Number) bits() uint64 {
	if n.category == notANumber {
		return 0
	}
	var u uint64
	if n.exponent <= 0 {
		u = shiftDown(n.mantissa, -int(n.exponent))
	} else {
		u = n.mantissa * decimalPower(int(n.exponent))
	}
	if n.category == signNegative {
		u = -u
	}
	return u
}
