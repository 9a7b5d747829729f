package encoder

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/errs"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/calebcase/usv/scalar"
)

// Error is the error class for this package.
var Error = errs.Class("encoder")

// Form is an encoding form.
type Form int

// Encoding Forms
const (
	UTF8 Form = iota
	UTF16LE
	UTF16BE
)

func (f Form) String() string {
	switch f {
	case UTF8:
		return "utf8"
	case UTF16LE:
		return "utf16le"
	case UTF16BE:
		return "utf16be"
	}

	return "unknown"
}

// Encoding returns the x/text encoding that decodes streams written in this
// form. No byte order mark is expected. Unknown forms return nil.
func (f Form) Encoding() encoding.Encoding {
	switch f {
	case UTF8:
		return unicode.UTF8
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}

	return nil
}

func (f Form) order() binary.ByteOrder {
	if f == UTF16BE {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Encoder writes scalars to an io.Writer. It is not safe for concurrent use.
type Encoder struct {
	w    io.Writer
	form Form

	// Scratch space reused across calls so encoding does not allocate.
	units [scalar.MaxUTF16Len]uint16
	buf   [2 * scalar.MaxUTF16Len]byte

	written uint64
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer, form Form) *Encoder {
	return &Encoder{
		w:    w,
		form: form,
	}
}

// Form returns the encoding form.
func (e *Encoder) Form() Form {
	return e.form
}

// Written returns the number of bytes written so far.
func (e *Encoder) Written() uint64 {
	return e.written
}

// Encode writes s to the writer.
func (e *Encoder) Encode(s scalar.Scalar) (err error) {
	defer Error.WrapP(&err)

	var data []byte

	switch e.form {
	case UTF8:
		n, err := s.WriteUTF8(e.buf[:])
		if err != nil {
			return err
		}

		data = e.buf[:n]
	case UTF16LE, UTF16BE:
		n, err := s.WriteUTF16(e.units[:])
		if err != nil {
			return err
		}

		order := e.form.order()
		for i, u := range e.units[:n] {
			order.PutUint16(e.buf[2*i:], u)
		}

		data = e.buf[:2*n]
	default:
		return Error.New("unknown form: %d", e.form)
	}

	n, err := e.w.Write(data)
	e.written += uint64(n)
	if err != nil {
		return err
	}

	return nil
}

// EncodeAll writes each scalar in order, stopping at the first error.
func (e *Encoder) EncodeAll(ss ...scalar.Scalar) (err error) {
	for _, s := range ss {
		err = e.Encode(s)
		if err != nil {
			return err
		}
	}

	return nil
}
