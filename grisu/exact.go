package grisu

import (
	"math"
	"math/big"
)

var bigTen = big.NewInt(10)

// exactDigits writes the shortest correctly rounded digits of the positive
// finite v into buf and returns the decimal exponent of the last digit.
//
// It follows Burger and Dybvig's free-format algorithm over exact big
// integers, with ties between two equally close shortest candidates going
// to the even digit. It never fails and is the fallback for grisu3.
func exactDigits(v float64, buf *digitBuffer) int {
	b := viewOf(v)
	frac := b.fraction()
	mant, exp := frac|hiddenBit, b.biasedExp()-expBias
	if b.subnormal() {
		mant, exp = frac, 1-expBias
	}

	// At the bottom of a binade the gap below v is half the gap above it.
	lowerBoundary := b.biasedExp() > 1 && frac == 0
	// With an even significand round-half-even reads both boundaries back
	// to v, so they belong to the interval.
	inclusive := mant%2 == 0

	// r/s = v, mPlus/s and mMinus/s are the distances to the boundaries.
	extra := uint(1)
	if lowerBoundary {
		extra = 2
	}
	r := new(big.Int).Lsh(new(big.Int).SetUint64(mant), extra)
	s := new(big.Int).Lsh(big.NewInt(1), extra)
	mPlus := new(big.Int).Lsh(big.NewInt(1), extra-1)
	mMinus := big.NewInt(1)
	if exp >= 0 {
		r.Lsh(r, uint(exp))
		mPlus.Lsh(mPlus, uint(exp))
		mMinus.Lsh(mMinus, uint(exp))
	} else {
		s.Lsh(s, uint(-exp))
	}

	// Scale by 10^k with k ≈ ceil(log10 v); the fixups below correct k.
	k := int(math.Ceil(math.Log10(v)))
	if k > 0 {
		s.Mul(s, pow10Big(k))
	} else if k < 0 {
		p := pow10Big(-k)
		r.Mul(r, p)
		mPlus.Mul(mPlus, p)
		mMinus.Mul(mMinus, p)
	}

	// The first digit must not be 10: the upper boundary has to stay below 1.
	high := new(big.Int)
	for {
		high.Add(r, mPlus)
		if !reaches(high, s, inclusive) {
			break
		}
		s.Mul(s, bigTen)
		k++
	}
	// Nor 0: scale up while even the upper boundary is below 1/10.
	tmp := new(big.Int)
	for {
		tmp.Mul(high.Add(r, mPlus), bigTen)
		if reaches(tmp, s, inclusive) {
			break
		}
		r.Mul(r, bigTen)
		mPlus.Mul(mPlus, bigTen)
		mMinus.Mul(mMinus, bigTen)
		k--
	}

	var digits [24]byte
	nd := 0
	quot, rem := new(big.Int), new(big.Int)
	for {
		r.Mul(r, bigTen)
		mPlus.Mul(mPlus, bigTen)
		mMinus.Mul(mMinus, bigTen)
		quot.DivMod(r, s, rem)
		d := byte(quot.Int64())
		r.Set(rem)

		// low: rounding down stays inside the interval.
		// up: rounding up stays inside the interval.
		low := !reaches(r, mMinus, !inclusive)
		up := reaches(high.Add(r, mPlus), s, inclusive)
		switch {
		case !low && !up:
			digits[nd] = '0' + d
			nd++
			continue
		case low && !up:
		case !low && up:
			d++
		default:
			switch c := tmp.Lsh(r, 1).Cmp(s); {
			case c > 0, c == 0 && d%2 == 1:
				d++
			}
		}
		digits[nd] = '0' + d
		nd++
		break
	}

	// Rounding up may have produced a digit ten.
	for i := nd - 1; i > 0 && digits[i] > '9'; i-- {
		digits[i] = '0'
		digits[i-1]++
	}
	if digits[0] > '9' {
		digits[0] = '1'
		for i := 1; i < nd; i++ {
			digits[i] = '0'
		}
		k++
	}
	for nd > 1 && digits[nd-1] == '0' {
		nd--
	}
	buf.append(digits[:nd]...)
	// v = 0.d1d2... × 10^k.
	return k - nd
}

// reaches reports a >= b when inclusive, a > b otherwise.
func reaches(a, b *big.Int, inclusive bool) bool {
	c := a.Cmp(b)
	return c > 0 || inclusive && c == 0
}

func pow10Big(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// Exact is like Shortest but uses exact big-integer arithmetic and never
// reports ErrIncomplete. It is much slower than Shortest.
func Exact(dst []byte, v float64) (digits []byte, exp int, err error) {
	b := viewOf(v)
	if b.special() {
		return dst, 0, ErrNotFinite
	}
	b = b.abs()
	if b == 0 {
		return append(dst, '0'), 0, nil
	}
	var buf digitBuffer
	exp = exactDigits(b.float(), &buf)
	return append(dst, buf.bytes()...), exp, nil
}
