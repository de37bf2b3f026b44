package number

// Equal reports whether n and o denote the same value. Zeros of either sign
// are equal, and NaN equals NaN. Mantissas are aligned by multiplying the
// one with the larger exponent by a power of ten modulo 2^64, so numbers
// more than 64 bits apart in magnitude may compare equal.
func (n Number) Equal(o Number) bool {
	if n.IsZero() && o.IsZero() || n.IsNaN() && o.IsNaN() {
		return true
	}
	if n.category != o.category {
		return false
	}
	switch d := int(n.exponent) - int(o.exponent); {
	case d == 0:
		return n.mantissa == o.mantissa
	case d > 0:
		return n.mantissa*decimalPower(d) == o.mantissa
	default:
		return n.mantissa == o.mantissa*decimalPower(-d)
	}
}

// EqualFloat64 reports whether n converts to exactly f. It is false for
// NaN and for numbers outside the float64 range.
func (n Number) EqualFloat64(f float64) bool {
	v, err := n.Float64()
	return err == nil && v == f
}

// EqualFloat32 reports whether n converts to exactly f.
func (n Number) EqualFloat32(f float32) bool {
	return n.Float32() == f
}

// EqualInt64 reports whether n equals the integer v.
func (n Number) EqualInt64(v int64) bool {
	return n.Equal(FromInt64(v))
}

// EqualUint64 reports whether n equals the integer v.
func (n Number) EqualUint64(v uint64) bool {
	return n.Equal(FromUint64(v))
}
