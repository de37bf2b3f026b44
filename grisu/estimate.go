package grisu

// Estimate returns a decimal mantissa and exponent whose value
// mantissa × 10^exponent reads back to v under round-to-nearest-even.
// v must be strictly positive and finite.
//
// Estimate runs Grisu2, which always succeeds but occasionally produces
// one digit more than necessary.
func Estimate(v float64) (mantissa uint64, exponent int16) {
	b := viewOf(v)
	if v <= 0 || b.special() {
		panic("grisu: Estimate needs a strictly positive finite value")
	}
	dfp := b.diyFp()
	w := dfp.normalize()

	mPlus := diyFp{f: dfp.f<<1 + 1, e: dfp.e - 1}.normalize()
	var mMinus diyFp
	if b.fraction() == 0 && b.biasedExp() != 0 {
		mMinus = diyFp{f: dfp.f<<2 - 1, e: dfp.e - 2}
	} else {
		mMinus = diyFp{f: dfp.f<<1 - 1, e: dfp.e - 1}
	}
	mMinus.f <<= uint(mMinus.e - mPlus.e)
	mMinus.e = mPlus.e

	cmk, mk := cachedPowerFor(minTargetExp - diyFpBits - w.e)
	w = w.mul(cmk)
	mPlus = mPlus.mul(cmk)
	mMinus = mMinus.mul(cmk)
	// Stay strictly inside the interval despite the rounding of mul.
	mPlus.f--
	mMinus.f++

	var buf digitBuffer
	kappa := estimateDigits(w, mPlus, mPlus.f-mMinus.f, &buf)
	for _, c := range buf.bytes() {
		mantissa = mantissa*10 + uint64(c-'0')
	}
	return mantissa, int16(kappa - mk)
}

// estimateDigits generates digits of high until the remainder falls inside
// delta, then nudges the last digit towards w. Leading zero digits are not
// written. It returns the decimal exponent of the last digit.
func estimateDigits(w, high diyFp, delta uint64, buf *digitBuffer) int {
	one := diyFp{f: 1 << uint(-high.e), e: high.e}
	shift := uint(-one.e)
	wpW := high.sub(w).f
	p1 := uint32(high.f >> shift)
	p2 := high.f & (one.f - 1)

	kappa, div := largestPow10(p1, diyFpBits+one.e)
	for kappa > 0 {
		d := p1 / div
		if d != 0 || buf.len() > 0 {
			buf.append(byte('0' + d))
		}
		p1 %= div
		kappa--
		rest := uint64(p1)<<shift + p2
		if rest <= delta {
			estimateRound(buf, delta, rest, uint64(div)<<shift, wpW)
			return kappa
		}
		div /= 10
	}

	for {
		p2 *= 10
		delta *= 10
		d := p2 >> shift
		if d != 0 || buf.len() > 0 {
			buf.append(byte('0' + d))
		}
		p2 &= one.f - 1
		kappa--
		if p2 < delta {
			scale := uint64(0)
			if -kappa < len(pow10u64) {
				scale = pow10u64[-kappa]
			}
			estimateRound(buf, delta, p2, one.f, wpW*scale)
			return kappa
		}
	}
}

func estimateRound(buf *digitBuffer, delta, rest, tenKappa, wpW uint64) {
	for rest < wpW && delta-rest >= tenKappa &&
		(rest+tenKappa < wpW || wpW-rest > rest+tenKappa-wpW) {
		buf.decrementLast()
		rest += tenKappa
	}
}
