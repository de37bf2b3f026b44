package grisu

const (
	diyFpBits = 64
	mask32    = 0xFFFFFFFF
)

// diyFp is a "do-it-yourself" floating point number f × 2^e with a full
// 64-bit significand and no implicit bit.
type diyFp struct {
	f uint64
	e int
}

// normalize shifts f left until its top bit is set.
func (x diyFp) normalize() diyFp {
	if x.f == 0 {
		panic("grisu: normalize of zero significand")
	}
	for x.f&0xFFC0000000000000 == 0 {
		x.f <<= 10
		x.e -= 10
	}
	for x.f&signMask == 0 {
		x.f <<= 1
		x.e--
	}
	return x
}

// sub returns x - y. Both operands must share an exponent and x must not be
// smaller than y.
func (x diyFp) sub(y diyFp) diyFp {
	if x.e != y.e || x.f < y.f {
		panic("grisu: invalid diyFp subtraction")
	}
	return diyFp{f: x.f - y.f, e: x.e}
}

// mul returns the upper 64 bits of the 128-bit product, rounded to nearest
// (half up). The result is not normalized.
func (x diyFp) mul(y diyFp) diyFp {
	a, b := x.f>>32, x.f&mask32
	c, d := y.f>>32, y.f&mask32
	ac, bc := a*c, b*c
	ad, bd := a*d, b*d
	tmp := bd>>32 + ad&mask32 + bc&mask32
	tmp += 1 << 31
	return diyFp{
		f: ac + ad>>32 + bc>>32 + tmp>>32,
		e: x.e + y.e + 64,
	}
}
