package number

// Powers of ten that float64 and float32 hold exactly. A mantissa that is
// itself exact scales by one of them with a single, correct rounding.
var (
	pow10f64 = [23]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
		1e20, 1e21, 1e22,
	}
	pow10f32 = [11]float32{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}
)

// Largest mantissas that convert to float64 and float32 without rounding.
const (
	maxExactMantissa64 = 1 << 53
	maxExactMantissa32 = 1 << 24
)

// pow10u64[i] = 10^i, every power of ten that fits in a uint64.
var pow10u64 = [20]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// decimalPower returns 10^e modulo 2^64.
func decimalPower(e int) uint64 {
	if e < len(pow10u64) {
		return pow10u64[e]
	}
	if e >= 64 {
		// 2^e divides 10^e.
		return 0
	}
	p := pow10u64[len(pow10u64)-1]
	for i := len(pow10u64) - 1; i < e; i++ {
		p *= 10
	}
	return p
}

// shiftDown returns m / 10^k, which is zero once 10^k exceeds every uint64.
func shiftDown(m uint64, k int) uint64 {
	if k >= len(pow10u64) {
		return 0
	}
	return m / pow10u64[k]
}
