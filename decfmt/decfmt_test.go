package decfmt

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/lattice-substrate/json-number/numerr"
)

func TestAppendVectors(t *testing.T) {
	cases := []struct {
		positive bool
		mantissa uint64
		exponent int16
		want     string
	}{
		{true, 0, 0, "0"},
		{true, 0, -5, "0"},
		{false, 0, 0, "-0"},
		{true, 7, 0, "7"},
		{false, 42, 0, "-42"},
		{true, 18446744073709551615, 0, "18446744073709551615"},
		{true, 15, -1, "1.5"},
		{true, 15, -2, "0.15"},
		{true, 15, -3, "0.015"},
		{true, 500, -1, "50.0"},
		{true, 3141592653589793, -15, "3.141592653589793"},
		{true, 1, -17, "0.00000000000000001"},
		{true, 1, -18, "1e-18"},
		{true, 15, -30, "1.5e-29"},
		{true, 5, 3, "5e3"},
		{false, 15, 3, "-1.5e4"},
		{true, 17976931348623157, 292, "1.7976931348623157e308"},
		{true, 5, -324, "5e-324"},
		{true, 1, 32767, "1e32767"},
		{true, 12, -32768, "1.2e-32767"},
	}
	for _, c := range cases {
		if got := string(Append(nil, c.positive, c.mantissa, c.exponent)); got != c.want {
			t.Fatalf("Append(%v, %d, %d): got %q want %q", c.positive, c.mantissa, c.exponent, got, c.want)
		}
		if got := String(c.positive, c.mantissa, c.exponent); got != c.want {
			t.Fatalf("String(%v, %d, %d): got %q want %q", c.positive, c.mantissa, c.exponent, got, c.want)
		}
	}
}

func TestAppendPreservesValue(t *testing.T) {
	for i := uint64(1); i < 20000; i += 13 {
		m := i * 0x9e3779b97f4a7c15 >> (i % 64)
		e := int16(int(i%700) - 350)
		text := String(i%2 == 0, m, e)

		got, ok := new(big.Rat).SetString(text)
		if !ok {
			t.Fatalf("String(%d, %d) = %q is not a decimal literal", m, e, text)
		}
		want := new(big.Rat).SetInt(new(big.Int).SetUint64(m))
		p := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(int(e)))), nil))
		if e < 0 {
			want.Quo(want, p)
		} else {
			want.Mul(want, p)
		}
		if i%2 != 0 {
			want.Neg(want)
		}
		if got.Cmp(want) != 0 {
			t.Fatalf("String(%d, %d) = %q has the wrong value", m, e, text)
		}
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, false, 125, -2); err != nil {
		t.Fatal(err)
	}
	if b.String() != "-1.25" {
		t.Fatalf("got %q", b.String())
	}
	if err := Write(failWriter{}, true, 1, 0); numerr.ClassOf(err) != numerr.InternalIO {
		t.Fatalf("got %v", err)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
