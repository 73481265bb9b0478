package felt

// Bool is a two-valued type carried on field-scalar storage: its value is
// always the Element 0 or 1. There is no conversion from arbitrary field
// values; construct through True, False or BoolOf only.
type Bool struct {
	v Element
}

// False returns the false value. It is also the zero value of Bool.
func False() Bool {
	return Bool{}
}

// True returns the true value.
func True() Bool {
	return Bool{v: One()}
}

// BoolOf maps a native bool onto Bool.
func BoolOf(b bool) Bool {
	if b {
		return True()
	}
	return False()
}

// IsTrue reports whether b is true, for use as a branch condition.
func (b Bool) IsTrue() bool {
	return !b.v.IsZero()
}

// Not returns the logical negation of b.
func (b Bool) Not() Bool {
	return BoolOf(!b.IsTrue())
}

// And returns b && o.
func (b Bool) And(o Bool) Bool {
	return BoolOf(b.IsTrue() && o.IsTrue())
}

// Or returns b || o.
func (b Bool) Or(o Bool) Bool {
	return BoolOf(b.IsTrue() || o.IsTrue())
}

// Xor returns b != o.
func (b Bool) Xor(o Bool) Bool {
	return BoolOf(b.IsTrue() != o.IsTrue())
}

// Equal reports whether b and o carry the same truth value.
func (b Bool) Equal(o Bool) bool {
	return b.v.Equal(o.v)
}

// Felt returns the field encoding of b: 0 for false, 1 for true. The
// embedding is lossless since {0, 1} is a subset of the field.
func (b Bool) Felt() Element {
	return b.v
}

func (b Bool) String() string {
	if b.IsTrue() {
		return "true"
	}
	return "false"
}
