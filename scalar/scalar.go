package scalar

import (
	"github.com/calebcase/oops"
)

// Scalar value limits.
const (
	MaxValue = 0x10FFFF

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// ReplacementChar is U+FFFD REPLACEMENT CHARACTER. It must not be modified;
// unmarshal into a copy instead.
var ReplacementChar = Scalar{value: 0xFFFD}

// Scalar is a Unicode scalar value. The zero value is U+0000.
type Scalar struct {
	value uint32
}

// IsValid reports whether candidate is a Unicode scalar value.
func IsValid(candidate int64) bool {
	switch {
	case candidate < 0:
		return false
	case candidate > MaxValue:
		return false
	case surrogateMin <= candidate && candidate <= surrogateMax:
		return false
	}

	return true
}

// FromUTF16 returns the scalar for a single UTF-16 code unit. Surrogate
// code units are rejected.
func FromUTF16(unit uint16) (s Scalar, err error) {
	if surrogateMin <= unit && unit <= surrogateMax {
		return s, &RangeError{Param: "unit", Value: int64(unit)}
	}

	return Scalar{value: uint32(unit)}, nil
}

// FromInt32 returns the scalar for v.
func FromInt32(v int32) (s Scalar, err error) {
	if !IsValid(int64(v)) {
		return s, &RangeError{Param: "v", Value: int64(v)}
	}

	return Scalar{value: uint32(v)}, nil
}

// FromUint32 returns the scalar for v.
func FromUint32(v uint32) (s Scalar, err error) {
	if !IsValid(int64(v)) {
		return s, &RangeError{Param: "v", Value: int64(v)}
	}

	return Scalar{value: v}, nil
}

// FromRune returns the scalar for r.
func FromRune(r rune) (Scalar, error) {
	return FromInt32(r)
}

// TryFromInt32 is like FromInt32 but reports failure with ok instead of an
// error. On failure s is the zero Scalar.
func TryFromInt32(v int32) (s Scalar, ok bool) {
	if !IsValid(int64(v)) {
		return s, false
	}

	return Scalar{value: uint32(v)}, true
}

// TryFromUint32 is like FromUint32 but reports failure with ok instead of an
// error. On failure s is the zero Scalar.
func TryFromUint32(v uint32) (s Scalar, ok bool) {
	if !IsValid(int64(v)) {
		return s, false
	}

	return Scalar{value: v}, true
}

// Must returns s or panics if err is non-nil.
func Must(s Scalar, err error) Scalar {
	if err != nil {
		panic(oops.Trace(err))
	}

	return s
}

// Value returns the code point.
func (s Scalar) Value() uint32 {
	return s.value
}

// Rune returns the code point as a rune.
func (s Scalar) Rune() rune {
	return rune(s.value)
}

// IsASCII reports whether s is in U+0000 to U+007F.
func (s Scalar) IsASCII() bool {
	return s.value <= 0x7F
}

// IsBMP reports whether s is in the Basic Multilingual Plane.
func (s Scalar) IsBMP() bool {
	return s.value <= 0xFFFF
}

// Plane returns the Unicode plane (0 through 16).
func (s Scalar) Plane() int {
	return int(s.value >> 16)
}

// Compare returns -1, 0 or +1 depending on whether s is less than, equal to
// or greater than o.
func (s Scalar) Compare(o Scalar) int {
	switch {
	case s.value < o.value:
		return -1
	case s.value > o.value:
		return 1
	}

	return 0
}

// Less reports whether s orders before o.
func (s Scalar) Less(o Scalar) bool {
	return s.value < o.value
}

// LessOrEqual reports whether s orders before or equal to o.
func (s Scalar) LessOrEqual(o Scalar) bool {
	return s.value <= o.value
}

// Greater reports whether s orders after o.
func (s Scalar) Greater(o Scalar) bool {
	return s.value > o.value
}

// GreaterOrEqual reports whether s orders after or equal to o.
func (s Scalar) GreaterOrEqual(o Scalar) bool {
	return s.value >= o.value
}

// Equal reports whether s and o are the same scalar.
func (s Scalar) Equal(o Scalar) bool {
	return s.value == o.value
}

// Hash returns the code point as a signed 32-bit integer.
func (s Scalar) Hash() int32 {
	return int32(s.value)
}

// String returns s as a Go string.
func (s Scalar) String() string {
	return string(s.UTF8())
}

// Compare orders a and b by value.
func Compare(a, b Scalar) int {
	return a.Compare(b)
}
