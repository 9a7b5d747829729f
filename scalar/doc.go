// Package scalar provides a validated Unicode scalar value.
//
// A scalar value is any code point in the range U+0000 to U+10FFFF except
// the surrogate code points U+D800 to U+DFFF. A Scalar can only be
// constructed from a valid value, so code holding one never needs to check
// it again before encoding it.
//
// Construction
//
// Each integer constructor comes in two forms. FromInt32, FromUint32 and
// FromUTF16 return a *RangeError naming the offending parameter. TryFromInt32
// and TryFromUint32 report success as a bool and return the zero Scalar
// (U+0000) on failure.
//
// UTF-8
//
// The leading byte carries the high bits behind a length marker and every
// continuation byte carries 6 bits:
//
//  | Range               | Len | Byte 1   | Byte 2   | Byte 3   | Byte 4   |
//  |---------------------|-----|----------|----------|----------|----------|
//  | U+0000   - U+007F   | 1   | 0xxxxxxx |          |          |          |
//  | U+0080   - U+07FF   | 2   | 110xxxxx | 10xxxxxx |          |          |
//  | U+0800   - U+FFFF   | 3   | 1110xxxx | 10xxxxxx | 10xxxxxx |          |
//  | U+10000  - U+10FFFF | 4   | 11110xxx | 10xxxxxx | 10xxxxxx | 10xxxxxx |
//
// UTF-16
//
// Values in the Basic Multilingual Plane are a single code unit. Values
// above U+FFFF are split into a surrogate pair:
//
//  v    = value - 0x10000
//  high = 0xD800 + (v >> 10)
//  low  = 0xDC00 + (v & 0x3FF)
//
// Buffers
//
// WriteUTF8 and WriteUTF16 encode into a caller supplied buffer and report
// how many elements were written. A buffer of MaxUTF8Len bytes or
// MaxUTF16Len code units always suffices. If the buffer is too small nothing
// is written and a *BufferError is returned. UTF8 and UTF16 allocate and
// return an owned copy instead.
//
// Ordering
//
// Scalars are totally ordered by value. Compare is suitable for
// slices.SortFunc and Hash returns the value itself.
package scalar
