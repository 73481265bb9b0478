package felt

import (
	"math/big"
	"reflect"
)

// FromInterface converts a literal-ish value to an Element.
//
// input must be a primitive (uintXX, intXX, string, []byte), a big.Int or
// an Element. Strings are parsed with (big.Int).SetString(input, 0), so the
// prefix selects the base: "0b"/"0B" binary, "0", "0o"/"0O" octal,
// "0x"/"0X" hexadecimal, decimal otherwise. The result is reduced mod P.
//
// Panics on unsupported input; this is a construction bridge for trusted
// front-end values, not a validation layer. Untrusted text goes through
// the literal package instead.
func FromInterface(input interface{}) Element {
	var r big.Int

	switch v := input.(type) {
	case Element:
		return v
	case *Element:
		return *v
	case big.Int:
		r.Set(&v)
	case *big.Int:
		r.Set(v)
	case uint8:
		r.SetUint64(uint64(v))
	case uint16:
		r.SetUint64(uint64(v))
	case uint32:
		r.SetUint64(uint64(v))
	case uint64:
		r.SetUint64(v)
	case uint:
		r.SetUint64(uint64(v))
	case int8:
		r.SetInt64(int64(v))
	case int16:
		r.SetInt64(int64(v))
	case int32:
		r.SetInt64(int64(v))
	case int64:
		r.SetInt64(v)
	case int:
		r.SetInt64(int64(v))
	case string:
		if _, ok := r.SetString(v, 0); !ok {
			panic("felt: unable to set big.Int from string " + v)
		}
	case []byte:
		r.SetBytes(v)
	default:
		panic("felt: " + reflect.TypeOf(input).String() + " not supported")
	}

	return FromBigInt(&r)
}
