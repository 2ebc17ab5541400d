package utfchar

import (
	"cmp"
	"encoding/binary"
	"iter"
	"strconv"
)

// UTF8Char stores one codepoint as UTF-8 so it can be borrowed as bytes or
// a string without re-encoding.
//
// The first Len() bytes are always one valid, minimal UTF-8 sequence and
// the rest are zero. UTF8Char is comparable: == agrees with comparing the
// decoded runes, so it works as a map key. The zero value holds U+0000.
type UTF8Char struct {
	bytes [4]byte
}

// NewUTF8Char encodes r. Invalid runes become RuneError.
func NewUTF8Char(r rune) UTF8Char {
	b, _ := EncodeUTF8Array(r)
	return UTF8Char{bytes: b}
}

// UTF8CharFromSlice validates the start of src and stores it. It also
// returns how many bytes were consumed.
func UTF8CharFromSlice(src []byte) (UTF8Char, int, error) {
	_, n, err := DecodeUTF8(src)
	if err != nil {
		return UTF8Char{}, 0, err
	}
	var c UTF8Char
	copy(c.bytes[:], src[:n])
	return c, n, nil
}

// UTF8CharFromArray validates a left-aligned sequence. Bytes past the
// sequence are ignored and zeroed in the result.
func UTF8CharFromArray(b [4]byte) (UTF8Char, error) {
	if _, err := DecodeUTF8Array(b); err != nil {
		return UTF8Char{}, err
	}
	clear(b[ExtraUTF8BytesUnchecked(b[0])+1:])
	return UTF8Char{bytes: b}, nil
}

// ParseUTF8Char reads a string that must hold exactly one codepoint.
//
// Failures:
//   - empty string: ErrEmpty
//   - more than one codepoint: ErrSeveralCodePoints
//   - malformed UTF-8 at the start: the decode error
func ParseUTF8Char(s string) (UTF8Char, error) {
	if s == "" {
		return UTF8Char{}, ErrEmpty
	}
	_, n, err := DecodeUTF8(unsafeStringToBytes(s))
	if err != nil {
		return UTF8Char{}, err
	}
	if n != len(s) {
		return UTF8Char{}, ErrSeveralCodePoints
	}
	var c UTF8Char
	copy(c.bytes[:], s)
	return c, nil
}

// MustParseUTF8Char is like ParseUTF8Char but panics on error.
// Meant for package-level variables and tests.
func MustParseUTF8Char(s string) UTF8Char {
	c, err := ParseUTF8Char(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Len is 1..4. There is no IsEmpty since a UTF8Char is never empty.
func (c UTF8Char) Len() int {
	return ExtraUTF8BytesUnchecked(c.bytes[0]) + 1
}

// Rune decodes c
func (c UTF8Char) Rune() rune {
	return DecodeUTF8Unchecked(c.bytes[:c.Len()])
}

// Array exposes the internal array and the number of used bytes
func (c UTF8Char) Array() ([4]byte, int) {
	return c.bytes, c.Len()
}

// Bytes borrows the encoded bytes. The slice aliases c and must not be
// modified.
func (c *UTF8Char) Bytes() []byte {
	return c.bytes[:c.Len()]
}

// Str borrows the encoded bytes as a string without copying. The string
// is only valid while c is neither modified nor reassigned.
func (c *UTF8Char) Str() string {
	return unsafeBytesToString(c.bytes[:c.Len()])
}

// String returns the character as a string
func (c UTF8Char) String() string {
	return string(c.bytes[:c.Len()])
}

// GoString formats c like a rune literal, e.g. 'é'
func (c UTF8Char) GoString() string {
	return strconv.QuoteRune(c.Rune())
}

// CopyTo writes the encoded bytes to dst and returns how many were
// written. If dst is too short it returns false and leaves dst
// unmodified. A buffer of length 4 is always large enough.
func (c UTF8Char) CopyTo(dst []byte) (int, bool) {
	n := c.Len()
	if len(dst) < n {
		return 0, false
	}
	return copy(dst, c.bytes[:n]), true
}

// IsASCII reports whether c is a single byte
func (c UTF8Char) IsASCII() bool {
	return IsASCII(c.bytes[0])
}

// ToUTF16 re-encodes c as UTF-16
func (c UTF8Char) ToUTF16() UTF16Char {
	return NewUTF16Char(c.Rune())
}

// Compare orders by codepoint.
//
// Reading the padded array big-endian is enough: a longer sequence starts
// with more leading ones, so it compares higher than any shorter one, and
// equal lengths compare by payload.
func (c UTF8Char) Compare(o UTF8Char) int {
	return cmp.Compare(binary.BigEndian.Uint32(c.bytes[:]), binary.BigEndian.Uint32(o.bytes[:]))
}

// Hash is consistent with ==, and equal to the Hash of the UTF16Char
// holding the same codepoint.
func (c UTF8Char) Hash() uint64 {
	return hashRune(c.Rune())
}

// Iter returns an iterator positioned at the first byte. Each call starts
// over; consuming an iterator does not affect c.
func (c UTF8Char) Iter() UTF8Iterator {
	return UTF8Iterator{bytes: c.bytes, len: uint8(c.Len())}
}

// All yields the encoded bytes in order
func (c UTF8Char) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := range c.Len() {
			if !yield(c.bytes[i]) {
				return
			}
		}
	}
}
