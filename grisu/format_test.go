package grisu

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/lattice-substrate/json-number/numerr"
)

func TestLayout(t *testing.T) {
	cases := []struct {
		digits string
		dexp   int
		want   string
	}{
		{"123", -5, "123e-5"},
		{"123", -3, "1.23e-1"},
		{"123", -2, "1.23"},
		{"123", -1, "12.3"},
		{"123", 0, "123"},
		{"123", 1, "1230"},
		{"123", 2, "12300"},
		{"123", 3, "123e3"},
		{"1", -1, "0.1"},
		{"1", -2, "0.01"},
		{"1", -3, "0.001"},
		{"1", -4, "1e-4"},
		{"12", -3, "0.012"},
		{"25", -2, "2.5e-1"},
		{"125", -101, "1.25e-99"},
		{"12345", -20, "12345e-20"},
		{"5", -324, "5e-324"},
		{"5", -10, "5e-10"},
		{"3", -100, "3e-100"},
		{"5", -1, "0.5"},
		{"17976931348623157", 292, "17976931348623157e292"},
		{"123456789123456", -6, "123456789.123456"},
	}
	for _, c := range cases {
		var buf digitBuffer
		buf.append([]byte(c.digits)...)
		layout(&buf, c.dexp)
		if got := string(buf.bytes()); got != c.want {
			t.Fatalf("layout(%s, %d): got %q want %q", c.digits, c.dexp, got, c.want)
		}
	}
}

func TestLayoutPreservesValue(t *testing.T) {
	digits := []string{"1", "12", "123", "4567", "98765432109876543"}
	for _, d := range digits {
		for dexp := -320; dexp <= 290; dexp++ {
			var buf digitBuffer
			buf.append([]byte(d)...)
			layout(&buf, dexp)
			text := string(buf.bytes())
			got, err := strconv.ParseFloat(text, 64)
			if err != nil {
				t.Fatalf("layout(%s, %d) = %q does not parse: %v", d, dexp, text, err)
			}
			want, err := strconv.ParseFloat(d+"e"+strconv.Itoa(dexp), 64)
			if err != nil {
				t.Fatal(err)
			}
			if math.Float64bits(got) != math.Float64bits(want) {
				t.Fatalf("layout(%s, %d) = %q reads %g want %g", d, dexp, text, got, want)
			}
		}
	}
}

func TestExpLen(t *testing.T) {
	cases := map[int]int{
		0: 1, 1: 1, 9: 1, 10: 2, 99: 2, 100: 3, 999: 3, 1000: 4, 9999: 4,
		-1: 2, -9: 2, -10: 3, -99: 3, -100: 4, -999: 4, -1000: 5, -9999: 5,
	}
	for u, want := range cases {
		if got := expLen(u); got != want {
			t.Fatalf("expLen(%d): got %d want %d", u, got, want)
		}
		if got := len(strconv.Itoa(u)); got != want {
			t.Fatalf("expLen table wrong for %d", u)
		}
	}
}

func TestDigitBufferAppendInt(t *testing.T) {
	for _, v := range []int{0, 7, -7, 10, -324, 308, 9999, -9999} {
		var buf digitBuffer
		buf.append('e')
		buf.appendInt(v)
		if got, want := string(buf.bytes()), "e"+strconv.Itoa(v); got != want {
			t.Fatalf("appendInt(%d): got %q want %q", v, got, want)
		}
	}
}

func TestDigitBufferOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	var buf digitBuffer
	buf.append(bytes.Repeat([]byte{'1'}, bufferSize)...)
	buf.insert(0, '0')
}

func TestFormatFloatVectors(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{1, "1"},
		{-1, "-1"},
		{0.1, "0.1"},
		{0.5, "0.5"},
		{0.25, "2.5e-1"},
		{0.001, "0.001"},
		{0.0001, "1e-4"},
		{1.5, "1.5"},
		{12.5, "12.5"},
		{100, "100"},
		{1000, "1e3"},
		{1e21, "1e21"},
		{123456789.123456, "123456789.123456"},
		{-3.141592653589793, "-3.141592653589793"},
		{math.MaxFloat64, "17976931348623157e292"},
		{math.SmallestNonzeroFloat64, "5e-324"},
		{-math.SmallestNonzeroFloat64, "-5e-324"},
		{2.2250738585072014e-308, "22250738585072014e-324"},
		{9007199254740992, "9007199254740992"},
	}
	for _, c := range cases {
		got, err := FormatFloat(c.v)
		if err != nil {
			t.Fatalf("FormatFloat(%g): %v", c.v, err)
		}
		if got != c.want {
			t.Fatalf("FormatFloat(%g): got %q want %q", c.v, got, c.want)
		}
	}
}

func TestFormatFloatRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FormatFloat(v)
		if !errors.Is(err, ErrNotFinite) {
			t.Fatalf("FormatFloat(%v): got %v want ErrNotFinite", v, err)
		}
		if numerr.ClassOf(err) != numerr.NotFinite {
			t.Fatalf("FormatFloat(%v): class %s", v, numerr.ClassOf(err))
		}
		dst := []byte("x")
		out, err := AppendFloat(dst, v)
		if err == nil || string(out) != "x" {
			t.Fatalf("AppendFloat(%v) modified dst: %q", v, out)
		}
	}
}

func TestAppendFloatAppends(t *testing.T) {
	out, err := AppendFloat([]byte("[1,"), 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "[1,2.5" {
		t.Fatalf("got %q", out)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, -12.75); err != nil {
		t.Fatal(err)
	}
	if b.String() != "-12.75" {
		t.Fatalf("got %q", b.String())
	}

	err := Write(failWriter{}, 1)
	if numerr.ClassOf(err) != numerr.InternalIO {
		t.Fatalf("write failure class: got %s (%v)", numerr.ClassOf(err), err)
	}
	if err := Write(&b, math.NaN()); !errors.Is(err, ErrNotFinite) {
		t.Fatalf("Write(NaN): %v", err)
	}
}

func TestFormatFloatPrefersExponentForLoneDigit(t *testing.T) {
	cases := map[float64]string{5e-10: "5e-10", 3e-100: "3e-100", -5e-10: "-5e-10", 0.5: "0.5"}
	for v, want := range cases {
		got, err := FormatFloat(v)
		if err != nil {
			t.Fatalf("FormatFloat(%g): %v", v, err)
		}
		if got != want {
			t.Fatalf("FormatFloat(%g): got %q want %q", v, got, want)
		}
	}
}

func TestFormatFloatRoundTripProperty(t *testing.T) {
	for i := uint64(1); i < 200000; i += 7 {
		bits := i * 0x9e3779b97f4a7c15
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s, err := FormatFloat(v)
		if err != nil {
			t.Fatalf("format bits=%016x: %v", bits, err)
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("parse bits=%016x text=%q: %v", bits, s, err)
		}
		if math.Float64bits(parsed) != bits {
			t.Fatalf("round-trip bits=%016x: %q reads back as %016x", bits, s, math.Float64bits(parsed))
		}
		if body := strings.TrimPrefix(s, "-"); body[0] < '0' || body[0] > '9' {
			t.Fatalf("literal must start with a digit bits=%016x: %q", bits, s)
		}
		if (s[0] == '-') != math.Signbit(v) {
			t.Fatalf("sign mismatch bits=%016x: %q", bits, s)
		}
		mirror, err := FormatFloat(-v)
		if err != nil {
			t.Fatalf("format -bits=%016x: %v", bits, err)
		}
		pos, neg := s, mirror
		if math.Signbit(v) {
			pos, neg = mirror, s
		}
		if neg != "-"+pos {
			t.Fatalf("negation bits=%016x: %q and %q differ beyond the sign", bits, pos, neg)
		}
		if len(s) > 24 {
			t.Fatalf("literal too long bits=%016x: %q", bits, s)
		}
	}
}
