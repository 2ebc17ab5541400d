package utfchar

import "io"

// UTF8Iterator walks the bytes of a UTF8Char. It owns a copy of them.
// It also implements io.Reader and io.ByteReader.
type UTF8Iterator struct {
	bytes [4]byte
	pos   uint8
	len   uint8
}

var (
	_ io.Reader     = (*UTF8Iterator)(nil)
	_ io.ByteReader = (*UTF8Iterator)(nil)
)

// Next returns the next byte, or false once all bytes have been returned
func (it *UTF8Iterator) Next() (byte, bool) {
	if it.pos >= it.len {
		return 0, false
	}
	b := it.bytes[it.pos]
	it.pos++
	return b, true
}

// Len is the number of bytes not yet returned
func (it *UTF8Iterator) Len() int {
	return int(it.len - it.pos)
}

// ReadByte implements io.ByteReader
func (it *UTF8Iterator) ReadByte() (byte, error) {
	b, ok := it.Next()
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// Read implements io.Reader
func (it *UTF8Iterator) Read(p []byte) (int, error) {
	if it.pos >= it.len {
		return 0, io.EOF
	}
	n := copy(p, it.bytes[it.pos:it.len])
	it.pos += uint8(n)
	return n, nil
}

// UTF16Iterator walks the units of a UTF16Char. It owns a copy of them.
type UTF16Iterator struct {
	units [2]uint16
	pos   uint8
	len   uint8
}

// Next returns the next unit, or false once all units have been returned
func (it *UTF16Iterator) Next() (uint16, bool) {
	if it.pos >= it.len {
		return 0, false
	}
	u := it.units[it.pos]
	it.pos++
	return u, true
}

// Len is the number of units not yet returned
func (it *UTF16Iterator) Len() int {
	return int(it.len - it.pos)
}
