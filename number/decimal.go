package number

import (
	"math"

	"github.com/govalues/decimal"

	"github.com/lattice-substrate/json-number/numerr"
)

// Decimal converts n to a decimal.Decimal. Values with more than
// decimal.MaxScale fractional digits are rounded half to even; NaN and
// values whose integer part needs more than decimal.MaxPrec digits fail
// with OUT_OF_RANGE.
func (n Number) Decimal() (decimal.Decimal, error) {
	if n.category == notANumber {
		return decimal.Decimal{}, numerr.New(numerr.OutOfRange, -1, "NaN has no decimal value")
	}
	if n.exponent <= 0 && -int(n.exponent) <= decimal.MaxScale && n.mantissa <= math.MaxInt64 {
		coef := int64(n.mantissa)
		if n.category == signNegative {
			coef = -coef
		}
		d, err := decimal.New(coef, -int(n.exponent))
		if err != nil {
			return decimal.Decimal{}, numerr.Wrap(numerr.OutOfRange, -1, "convert "+n.String(), err)
		}
		return d, nil
	}
	d, err := decimal.Parse(n.String())
	if err != nil {
		return decimal.Decimal{}, numerr.Wrap(numerr.OutOfRange, -1, "convert "+n.String(), err)
	}
	return d, nil
}

// FromDecimal returns the exact value of d.
func FromDecimal(d decimal.Decimal) Number {
	return FromParts(!d.IsNeg(), d.Coef(), int16(-d.Scale()))
}
