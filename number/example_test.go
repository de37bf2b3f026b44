package number_test

import (
	"fmt"

	"github.com/lattice-substrate/json-number/number"
)

func ExampleFromFloat64() {
	n := number.FromFloat64(0.1)
	positive, mantissa, exponent := n.Parts()
	fmt.Println(n, positive, mantissa, exponent)
	// Output: 0.1 true 1 -1
}

func ExampleNumber_FixedPointUint64() {
	cents, ok := number.FromFloat64(5.99).FixedPointUint64(2)
	fmt.Println(cents, ok)
	_, ok = number.FromFloat64(-5.99).FixedPointUint64(2)
	fmt.Println(ok)
	// Output:
	// 599 true
	// false
}

func ExampleNumber_FixedPointInt64() {
	cents, ok := number.FromFloat64(-1.49).FixedPointInt64(2)
	fmt.Println(cents, ok)
	// Output: -149 true
}

func ExampleNumber_Equal() {
	a := number.FromParts(true, 500, -1)
	b := number.FromParts(true, 50, 0)
	fmt.Println(a.Equal(b), number.NaN.Equal(number.NaN))
	// Output: true true
}

func ExampleParse() {
	n, err := number.Parse("-1.25e3")
	if err != nil {
		panic(err)
	}
	fmt.Println(n, n.Int64())
	// Output: -1.25e3 -1250
}

func ExampleNumber_Float64() {
	f, err := number.FromParts(true, 3141592653589793, -15).Float64()
	fmt.Println(f, err)
	_, err = number.FromParts(true, 1, 400).Float64()
	fmt.Println(err)
	// Output:
	// 3.141592653589793 <nil>
	// numerr: OUT_OF_RANGE: 1e400 exceeds the float64 range
}
