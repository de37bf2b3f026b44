package grisu

// digitGen writes into buf the shortest digit string inside the interval
// (low, high), which brackets w, and returns the decimal exponent of the
// last written digit. All three inputs share one binary exponent in
// [minTargetExp, minTargetExp+28]. ok is false when the digits cannot be
// proven to be the shortest correctly rounded representation.
func digitGen(low, w, high diyFp, buf *digitBuffer) (kappa int, ok bool) {
	unit := uint64(1)
	tooLow := diyFp{f: low.f - unit, e: low.e}
	tooHigh := diyFp{f: high.f + unit, e: high.e}
	unsafeInterval := tooHigh.sub(tooLow)
	one := diyFp{f: 1 << uint(-w.e), e: w.e}
	shift := uint(-one.e)
	p1 := uint32(tooHigh.f >> shift)
	p2 := tooHigh.f & (one.f - 1)

	kappa, div := largestPow10(p1, diyFpBits+one.e)
	for kappa > 0 {
		digit := p1 / div
		buf.append(byte('0' + digit))
		p1 %= div
		kappa--
		rest := uint64(p1)<<shift + p2
		if rest < unsafeInterval.f {
			return kappa, roundWeed(buf, tooHigh.sub(w).f, unsafeInterval.f, rest, uint64(div)<<shift, unit)
		}
		div /= 10
	}

	for {
		p2 *= 10
		unit *= 10
		unsafeInterval.f *= 10
		digit := p2 >> shift
		buf.append(byte('0' + digit))
		p2 &= one.f - 1
		kappa--
		if p2 < unsafeInterval.f {
			return kappa, roundWeed(buf, tooHigh.sub(w).f*unit, unsafeInterval.f, p2, one.f, unit)
		}
	}
}

// roundWeed moves the last digit of buf towards the scaled value while that
// brings the digit string closer to it, then reports whether the result is
// guaranteed correct given an uncertainty of ulp on every input.
//
// wpW is the distance from too-high to w, delta the width of the unsafe
// interval, rest the distance from too-high to the current digits and
// tenKappa the weight of one unit in the last digit.
func roundWeed(buf *digitBuffer, wpW, delta, rest, tenKappa, ulp uint64) bool {
	wpWup := wpW - ulp
	wpWdown := wpW + ulp
	for rest < wpWup && delta-rest >= tenKappa &&
		(rest+tenKappa < wpWup || wpWup-rest >= rest+tenKappa-wpWup) {
		buf.decrementLast()
		rest += tenKappa
	}
	if rest < wpWdown && delta-rest >= tenKappa &&
		(rest+tenKappa < wpWdown || wpWdown-rest > rest+tenKappa-wpWdown) {
		return false
	}
	return 2*ulp <= rest && rest <= delta-4*ulp
}
