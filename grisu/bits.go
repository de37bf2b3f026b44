package grisu

import "math"

// IEEE 754 binary64 layout.
const (
	signMask  = 0x8000000000000000
	expMask   = 0x7FF0000000000000
	fracMask  = 0x000FFFFFFFFFFFFF
	hiddenBit = 0x0010000000000000
	expShift  = 52
	expBias   = 1075 // 1023 + 52: the fraction is read as an integer
)

// bitView is the raw bit pattern of a float64.
type bitView uint64

func viewOf(v float64) bitView {
	return bitView(math.Float64bits(v))
}

func (b bitView) negative() bool {
	return b&signMask != 0
}

func (b bitView) biasedExp() int {
	return int((b & expMask) >> expShift)
}

func (b bitView) fraction() uint64 {
	return uint64(b & fracMask)
}

// special reports NaN or ±Inf (exponent field all ones).
func (b bitView) special() bool {
	return b&expMask == expMask
}

func (b bitView) subnormal() bool {
	return b&expMask == 0 && b&fracMask != 0
}

// abs clears the sign bit.
func (b bitView) abs() bitView {
	return b &^ signMask
}

// diyFp returns the exact value of the (non-negative) double as f × 2^e.
func (b bitView) diyFp() diyFp {
	if b&expMask == 0 {
		return diyFp{f: b.fraction(), e: 1 - expBias}
	}
	return diyFp{f: b.fraction() + hiddenBit, e: b.biasedExp() - expBias}
}

func (b bitView) float() float64 {
	return math.Float64frombits(uint64(b))
}
