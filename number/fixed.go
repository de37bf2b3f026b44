package number

// FixedPointUint64 returns n scaled by 10^point and truncated, the integer
// count of 10^-point units in n. For example 5.99 with point 2 is 599.
// It reports false for negative numbers, negative zero and NaN.
//
// Scaling up wraps modulo 2^64.
func (n Number) FixedPointUint64(point uint16) (uint64, bool) {
	if n.category != signPositive {
		return 0, false
	}
	switch d := int(point) + int(n.exponent); {
	case d == 0:
		return n.mantissa, true
	case d < 0:
		return shiftDown(n.mantissa, -d), true
	default:
		return n.mantissa * decimalPower(d), true
	}
}

// FixedPointInt64 is like FixedPointUint64 for signed results; it only
// reports false for NaN. Scaling up wraps modulo 2^64.
func (n Number) FixedPointInt64(point uint16) (int64, bool) {
	if n.category == notANumber {
		return 0, false
	}
	num := int64(n.mantissa)
	if n.category == signNegative {
		num = -num
	}
	switch d := int(point) + int(n.exponent); {
	case d == 0:
		return num, true
	case d < 0:
		if -d >= len(pow10u64)-1 {
			// |num| < 2^63 < 10^19
			return 0, true
		}
		return num / int64(pow10u64[-d]), true
	default:
		return num * int64(decimalPower(d)), true
	}
}
