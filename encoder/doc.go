// Package encoder writes scalar values to a byte stream.
//
// Each scalar is encoded with scalar.WriteUTF8 or scalar.WriteUTF16 into
// scratch space owned by the Encoder and then written in a single call. In
// the UTF-16 forms every code unit is written as two bytes in the byte order
// of the form and no byte order mark is emitted. Form.Encoding returns the
// matching golang.org/x/text encoding for reading the stream back.
package encoder
