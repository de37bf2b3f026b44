package number

import (
	"math"

	"github.com/lattice-substrate/json-number/numerr"
)

// maxExplicitExponent caps the explicit exponent while it is accumulated;
// anything larger is out of range for an int16 exponent anyway.
const maxExplicitExponent = 1 << 20

// Parse parses a JSON number literal (RFC 8259 §6) into the exact decimal
// value it spells, without going through a float.
//
// The grammar is strict: an optional '-', an integer part without leading
// zeros, an optional fraction with at least one digit and an optional
// exponent with at least one digit. No '+' sign, no surrounding whitespace.
//
// Significant digits that do not fit in the 64-bit mantissa are dropped
// (truncated), with the exponent raised for dropped integer digits. A
// resulting exponent outside the int16 range fails with NUMBER_OVERFLOW or
// NUMBER_UNDERFLOW unless the value is zero. Grammar violations fail with
// INVALID_GRAMMAR at the offending byte offset.
func Parse(s string) (Number, error) {
	p := literalParser{data: s}
	return p.parse()
}

type literalParser struct {
	data string
	pos  int
}

func (p *literalParser) errorf(format string, args ...any) *numerr.Error {
	return numerr.Newf(numerr.InvalidGrammar, p.pos, format, args...)
}

func (p *literalParser) digit() (byte, bool) {
	if p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		return p.data[p.pos] - '0', true
	}
	return 0, false
}

func (p *literalParser) parse() (Number, error) {
	var n Number
	if p.pos < len(p.data) && p.data[p.pos] == '-' {
		n.category = signNegative
		p.pos++
	}
	if p.pos >= len(p.data) {
		return Number{}, p.errorf("unexpected end of input in number")
	}

	// exp counts fraction digits taken (down) and integer digits dropped (up).
	exp := 0
	full := false
	take := func(d byte) bool {
		if full || n.mantissa > (math.MaxUint64-uint64(d))/10 {
			full = true
			return false
		}
		n.mantissa = n.mantissa*10 + uint64(d)
		return true
	}

	switch c := p.data[p.pos]; {
	case c == '0':
		p.pos++
		if _, ok := p.digit(); ok {
			return Number{}, p.errorf("leading zero in number")
		}
	case c >= '1' && c <= '9':
		for d, ok := p.digit(); ok; d, ok = p.digit() {
			if !take(d) {
				exp++
			}
			p.pos++
		}
	default:
		return Number{}, p.errorf("invalid number character %q", string(c))
	}

	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		p.pos++
		if _, ok := p.digit(); !ok {
			return Number{}, p.errorf("expected digit after decimal point")
		}
		for d, ok := p.digit(); ok; d, ok = p.digit() {
			if take(d) {
				exp--
			}
			p.pos++
		}
	}

	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		p.pos++
		negExp := false
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			negExp = p.data[p.pos] == '-'
			p.pos++
		}
		if _, ok := p.digit(); !ok {
			return Number{}, p.errorf("expected digit in exponent")
		}
		explicit := 0
		for d, ok := p.digit(); ok; d, ok = p.digit() {
			if explicit < maxExplicitExponent {
				explicit = explicit*10 + int(d)
			}
			p.pos++
		}
		if negExp {
			explicit = -explicit
		}
		exp += explicit
	}

	if p.pos != len(p.data) {
		return Number{}, p.errorf("unexpected %q after number", string(p.data[p.pos]))
	}

	switch {
	case n.mantissa == 0:
		exp = 0
	case exp > math.MaxInt16:
		return Number{}, numerr.Newf(numerr.NumberOverflow, 0, "exponent of %q exceeds %d", p.data, math.MaxInt16)
	case exp < math.MinInt16:
		return Number{}, numerr.Newf(numerr.NumberUnderflow, 0, "exponent of %q is below %d", p.data, math.MinInt16)
	}
	n.exponent = int16(exp)
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}
