package scalar

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("scalar")

// Error kinds. Use errors.Is to test for them.
var (
	ErrOutOfRange      = Error.New("out of range")
	ErrBufferTooSmall  = Error.New("buffer too small")
	ErrInvalidEncoding = Error.New("invalid encoding")
)

// RangeError is returned when a candidate is not a valid scalar value.
type RangeError struct {
	// Param is the name of the offending parameter.
	Param string
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s=%#x", ErrOutOfRange, e.Param, e.Value)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// EncodingError is returned when data is not exactly one well-formed UTF-8
// sequence.
type EncodingError struct {
	Data []byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%v: % x", ErrInvalidEncoding, e.Data)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}

// BufferError is returned when a destination buffer cannot hold the encoded
// sequence.
type BufferError struct {
	Need int
	Have int
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("%v: need=%d have=%d", ErrBufferTooSmall, e.Need, e.Have)
}

func (e *BufferError) Unwrap() error {
	return ErrBufferTooSmall
}
