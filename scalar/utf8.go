package scalar

import (
	"unicode/utf8"
)

// MaxUTF8Len is the longest UTF-8 sequence for any scalar.
const MaxUTF8Len = 4

const (
	tx = 0b_1000_0000
	t2 = 0b_1100_0000
	t3 = 0b_1110_0000
	t4 = 0b_1111_0000

	maskx = 0b_0011_1111

	max1 = 0x7F
	max2 = 0x7FF
	max3 = 0xFFFF
)

// UTF8Len returns the number of bytes in the UTF-8 encoding of s.
func (s Scalar) UTF8Len() int {
	switch {
	case s.value <= max1:
		return 1
	case s.value <= max2:
		return 2
	case s.value <= max3:
		return 3
	}

	return 4
}

// WriteUTF8 encodes s into the start of p and returns the number of bytes
// written. If p is shorter than UTF8Len nothing is written.
func (s Scalar) WriteUTF8(p []byte) (n int, err error) {
	n = s.UTF8Len()
	if len(p) < n {
		return 0, &BufferError{Need: n, Have: len(p)}
	}

	v := s.value

	switch n {
	case 1:
		p[0] = byte(v)
	case 2:
		p[0] = t2 | byte(v>>6)
		p[1] = tx | byte(v)&maskx
	case 3:
		p[0] = t3 | byte(v>>12)
		p[1] = tx | byte(v>>6)&maskx
		p[2] = tx | byte(v)&maskx
	default:
		p[0] = t4 | byte(v>>18)
		p[1] = tx | byte(v>>12)&maskx
		p[2] = tx | byte(v>>6)&maskx
		p[3] = tx | byte(v)&maskx
	}

	return n, nil
}

// AppendUTF8 appends the UTF-8 encoding of s to p.
func (s Scalar) AppendUTF8(p []byte) []byte {
	var buf [MaxUTF8Len]byte

	n, _ := s.WriteUTF8(buf[:])

	return append(p, buf[:n]...)
}

// UTF8 returns the UTF-8 encoding of s in a new slice.
func (s Scalar) UTF8() []byte {
	data := make([]byte, s.UTF8Len())

	// Sized by UTF8Len so this cannot fail.
	_, _ = s.WriteUTF8(data)

	return data
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is UTF-8.
func (s Scalar) MarshalBinary() (data []byte, err error) {
	return s.UTF8(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one well-formed UTF-8 sequence.
func (s *Scalar) UnmarshalBinary(data []byte) (err error) {
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size <= 1 || size != len(data) {
		return &EncodingError{Data: data}
	}

	s.value = uint32(r)

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Scalar) MarshalText() (text []byte, err error) {
	return s.MarshalBinary()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scalar) UnmarshalText(text []byte) (err error) {
	return s.UnmarshalBinary(text)
}
