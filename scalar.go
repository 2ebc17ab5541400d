package utfchar

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const (
	MaxRune   = '\U0010FFFF' // Maximum valid Unicode code point
	RuneError = '\uFFFD'     // Substituted when encoding an invalid rune

	// 0xd800-0xdc00 encodes the high 10 bits of a pair.
	// 0xdc00-0xe000 encodes the low 10 bits of a pair.
	// the value is those 20 bits plus 0x10000.
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

// FromUint32 converts a raw value into a rune, rejecting anything that is
// not a Unicode scalar value.
//
// Failures:
//   - 0xD800..0xDFFF: ErrSurrogateRange
//   - above 0x10FFFF: ErrTooHigh
func FromUint32(raw uint32) (rune, error) {
	if err := validateScalar(raw); err != nil {
		return 0, err
	}
	return rune(raw), nil
}

// ValidRune reports whether r is a Unicode scalar value
func ValidRune(r rune) bool {
	return validateScalar(uint32(r)) == nil // negative runes wrap above MaxRune
}

// validateScalar is the only gate between untrusted integers and runes
// stored in UTF8Char and UTF16Char.
func validateScalar(raw uint32) error {
	switch {
	case surr1 <= raw && raw < surr3:
		return ErrSurrogateRange
	case raw > MaxRune:
		return ErrTooHigh
	}
	return nil
}

// sanitize maps invalid runes to RuneError so the encoders stay total.
func sanitize(r rune) rune {
	if !ValidRune(r) {
		return RuneError
	}
	return r
}

// hashRune hashes the scalar, not its encoding, so both encoded forms of a
// codepoint hash alike.
func hashRune(r rune) uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(r))
	return xxhash.Sum64(b[:])
}
