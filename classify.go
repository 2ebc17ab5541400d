package utfchar

import "math/bits"

// ExtraUTF8Bytes returns how many continuation bytes follow the lead byte b.
//
// Failures:
//   - 0x80..0xBF: ErrContinuationByte
//   - 0xF8..0xFF: ErrTooLongSequence
func ExtraUTF8Bytes(b byte) (int, error) {
	switch ones := bits.LeadingZeros8(^b); {
	case ones == 0:
		return 0, nil // ascii
	case ones == 1:
		return 0, ErrContinuationByte
	case ones < 5:
		return ones - 1, nil
	default:
		return 0, ErrTooLongSequence
	}
}

// ExtraUTF8BytesUnchecked is ExtraUTF8Bytes without the error check.
// b must be a valid lead byte; for anything else the result is meaningless
// but always in 0..7.
func ExtraUTF8BytesUnchecked(b byte) int {
	return max(bits.LeadingZeros8(^b)-1, 0)
}

// IsASCII reports whether b is a complete one-byte sequence
func IsASCII(b byte) bool {
	return b < 0x80
}

// IsContinuationByte reports whether b has the form 10xxxxxx
func IsContinuationByte(b byte) bool {
	return b&0xC0 == 0x80
}

// UTF16Class tells what role a UTF-16 unit can play
type UTF16Class uint8

const (
	UTF16Single        UTF16Class = iota // complete on its own
	UTF16HighSurrogate                   // must be followed by a low surrogate
	UTF16LowSurrogate                    // only valid after a high surrogate
)

func (c UTF16Class) String() string {
	switch c {
	case UTF16Single:
		return "single"
	case UTF16HighSurrogate:
		return "high surrogate"
	case UTF16LowSurrogate:
		return "low surrogate"
	}
	return "unknown"
}

// ClassifyUTF16 masks off the ten payload bits and looks at what's left.
func ClassifyUTF16(u uint16) UTF16Class {
	switch u & 0xFC00 {
	case surr1:
		return UTF16HighSurrogate
	case surr2:
		return UTF16LowSurrogate
	}
	return UTF16Single
}

// IsHighSurrogate reports whether u is in 0xD800..0xDBFF
func IsHighSurrogate(u uint16) bool {
	return u&0xFC00 == surr1
}

// IsLowSurrogate reports whether u is in 0xDC00..0xDFFF
func IsLowSurrogate(u uint16) bool {
	return u&0xFC00 == surr2
}
