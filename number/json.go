package number

import (
	"github.com/lattice-substrate/json-number/decfmt"
	"github.com/lattice-substrate/json-number/numerr"
)

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler. NaN, which has no JSON literal,
// is written as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.category == notANumber {
		return jsonNull, nil
	}
	return decfmt.Append(nil, n.category == signPositive, n.mantissa, n.exponent), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a number literal or
// null, which decodes to NaN.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NaN
		return nil
	}
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "nan" and
// every literal Parse accepts.
func (n *Number) UnmarshalText(text []byte) error {
	if string(text) == "nan" {
		*n = NaN
		return nil
	}
	v, err := Parse(string(text))
	if err != nil {
		return numerr.Wrap(numerr.ClassOf(err), -1, "unmarshal number text", err)
	}
	*n = v
	return nil
}
