// Package literal maps source literals to runtime values. Each literal
// form is deterministic: a given token always constructs exactly one
// value. Numeric literals come in decimal, hexadecimal (0x), octal (0o)
// and binary (0b) with optional underscore digit separators; short-string
// literals pack up to 31 ASCII bytes big-endian into a field scalar. An
// optional type-suffix tag (_u8 .. _u256, _usize, _felt252) selects the
// constructed type; untagged literals default to the field scalar.
package literal

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/feltrun/felt"
	"github.com/consensys/feltrun/uints"
)

// Tag identifies the target type selected by a literal's suffix.
type Tag uint8

const (
	// TagFelt is the default for untagged and _felt252-tagged literals.
	TagFelt Tag = iota
	TagU8
	TagU16
	TagU32
	TagU64
	TagU128
	TagU256
	TagUsize
)

func (t Tag) String() string {
	switch t {
	case TagFelt:
		return "felt252"
	case TagU8:
		return "u8"
	case TagU16:
		return "u16"
	case TagU32:
		return "u32"
	case TagU64:
		return "u64"
	case TagU128:
		return "u128"
	case TagU256:
		return "u256"
	case TagUsize:
		return "usize"
	}
	return "unknown"
}

// width returns the bit width the tag constrains the literal to, 0 for the
// field scalar.
func (t Tag) width() uint {
	switch t {
	case TagU8:
		return 8
	case TagU16:
		return 16
	case TagU32, TagUsize:
		return 32
	case TagU64:
		return 64
	case TagU128:
		return 128
	case TagU256:
		return 256
	}
	return 0
}

// suffixes in source form, mapped to tags. Matched against the literal
// tail, so order does not matter: suffix matches are exact.
var suffixes = map[string]Tag{
	"_felt252": TagFelt,
	"_u8":      TagU8,
	"_u16":     TagU16,
	"_u32":     TagU32,
	"_u64":     TagU64,
	"_u128":    TagU128,
	"_u256":    TagU256,
	"_usize":   TagUsize,
}

// shortStringMaxBytes is the longest short string packable into the
// 252-bit field without reduction.
const shortStringMaxBytes = 31

// Literal is a parsed literal: a magnitude plus the tag that selects its
// runtime type. The magnitude is already checked against the tag's range.
type Literal struct {
	value big.Int
	tag   Tag
}

// Parse parses a literal token. It fails on malformed tokens and on
// magnitudes outside the tagged type's range; it never reduces or wraps a
// literal to make it fit.
func Parse(src string) (Literal, error) {
	body, tag := splitSuffix(src)

	var v big.Int
	switch {
	case body == "":
		return Literal{}, fmt.Errorf("literal: empty token %q", src)
	case body[0] == '\'':
		if err := unpackShortString(body, &v); err != nil {
			return Literal{}, err
		}
	default:
		if body[0] == '-' || body[0] == '+' {
			return Literal{}, fmt.Errorf("literal: sign not allowed in %q", src)
		}
		if _, ok := v.SetString(body, 0); !ok {
			return Literal{}, fmt.Errorf("literal: malformed numeric token %q", src)
		}
	}

	if err := checkRange(&v, tag); err != nil {
		return Literal{}, fmt.Errorf("literal %q: %w", src, err)
	}

	l := Literal{tag: tag}
	l.value.Set(&v)
	return l, nil
}

func splitSuffix(src string) (string, Tag) {
	if i := strings.LastIndexByte(src, '_'); i >= 0 {
		if tag, ok := suffixes[src[i:]]; ok {
			return src[:i], tag
		}
	}
	return src, TagFelt
}

func unpackShortString(body string, v *big.Int) error {
	if len(body) < 2 || body[len(body)-1] != '\'' {
		return fmt.Errorf("literal: unterminated short string %q", body)
	}
	content := body[1 : len(body)-1]
	if len(content) > shortStringMaxBytes {
		return fmt.Errorf("literal: short string %q longer than %d bytes", body, shortStringMaxBytes)
	}
	for i := 0; i < len(content); i++ {
		if content[i] >= 0x80 || content[i] == '\'' {
			return fmt.Errorf("literal: short string %q must be ASCII without quotes", body)
		}
	}
	v.SetBytes([]byte(content))
	return nil
}

func checkRange(v *big.Int, tag Tag) error {
	if w := tag.width(); w != 0 {
		if v.BitLen() > int(w) {
			return fmt.Errorf("magnitude exceeds %s range", tag)
		}
		return nil
	}
	if v.Cmp(felt.Modulus()) >= 0 {
		return fmt.Errorf("magnitude exceeds the field modulus")
	}
	return nil
}

// Tag returns the type tag selected by the literal's suffix.
func (l Literal) Tag() Tag {
	return l.tag
}

// BigInt returns the literal's magnitude as a fresh big.Int.
func (l Literal) BigInt() *big.Int {
	return new(big.Int).Set(&l.value)
}

// Felt constructs the field scalar an untagged or _felt252-tagged literal
// denotes. Fails on width-tagged literals; those construct through AsUint.
func (l Literal) Felt() (felt.Element, error) {
	if l.tag != TagFelt {
		return felt.Element{}, fmt.Errorf("literal: tagged %s, want felt252", l.tag)
	}
	return felt.FromBigInt(&l.value), nil
}

// AsUint constructs the checked integer a width-tagged literal denotes.
// The tag must select the instantiated width; usize selects the 32-bit
// width.
func AsUint[T uints.Bits](l Literal) (uints.Uint[T], error) {
	want := uints.Zero[T]().BitWidth()
	if l.tag.width() != want {
		return uints.Uint[T]{}, fmt.Errorf("literal: tagged %s, want u%d", l.tag, want)
	}
	r, ok := uints.FromBigInt[T](&l.value)
	if !ok {
		// Parse already range-checked; unreachable for well-formed Literals.
		return uints.Uint[T]{}, fmt.Errorf("literal: magnitude exceeds u%d range", want)
	}
	return r, nil
}
