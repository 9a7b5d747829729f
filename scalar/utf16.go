package scalar

// MaxUTF16Len is the longest UTF-16 sequence for any scalar.
const MaxUTF16Len = 2

const (
	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrSelf = 0x10000
)

// UTF16Len returns the number of code units in the UTF-16 encoding of s.
func (s Scalar) UTF16Len() int {
	if s.value < surrSelf {
		return 1
	}

	return 2
}

// WriteUTF16 encodes s into the start of p and returns the number of code
// units written. If p is shorter than UTF16Len nothing is written.
func (s Scalar) WriteUTF16(p []uint16) (n int, err error) {
	n = s.UTF16Len()
	if len(p) < n {
		return 0, &BufferError{Need: n, Have: len(p)}
	}

	if n == 1 {
		p[0] = uint16(s.value)

		return n, nil
	}

	v := s.value - surrSelf
	p[0] = uint16(surrHigh + v>>10)
	p[1] = uint16(surrLow + v&0x3FF)

	return n, nil
}

// AppendUTF16 appends the UTF-16 encoding of s to p.
func (s Scalar) AppendUTF16(p []uint16) []uint16 {
	var buf [MaxUTF16Len]uint16

	n, _ := s.WriteUTF16(buf[:])

	return append(p, buf[:n]...)
}

// UTF16 returns the UTF-16 encoding of s in a new slice.
func (s Scalar) UTF16() []uint16 {
	units := make([]uint16, s.UTF16Len())

	// Sized by UTF16Len so this cannot fail.
	_, _ = s.WriteUTF16(units)

	return units
}
