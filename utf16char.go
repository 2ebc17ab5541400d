package utfchar

import (
	"cmp"
	"iter"
	"strconv"
)

// UTF16Char stores one codepoint as one UTF-16 unit or a surrogate pair.
//
// A missing second unit is stored as zero, which is never a valid low
// surrogate, so == agrees with comparing the decoded runes. Unlike
// UTF8Char, raw units do not sort by codepoint; use Compare. The zero
// value holds U+0000.
type UTF16Char struct {
	units [2]uint16
}

// NewUTF16Char encodes r. Invalid runes become RuneError.
func NewUTF16Char(r rune) UTF16Char {
	first, second, _ := EncodeUTF16Pair(r)
	return UTF16Char{units: [2]uint16{first, second}}
}

// UTF16CharFromSlice validates the start of src and stores it. It also
// returns how many units were consumed.
func UTF16CharFromSlice(src []uint16) (UTF16Char, int, error) {
	_, n, err := DecodeUTF16(src)
	if err != nil {
		return UTF16Char{}, 0, err
	}
	var c UTF16Char
	copy(c.units[:], src[:n])
	return c, n, nil
}

// UTF16CharFromPair validates a unit and optional second unit as
// returned by EncodeUTF16Pair or Pair.
func UTF16CharFromPair(first, second uint16, pair bool) (UTF16Char, error) {
	if _, err := DecodeUTF16Pair(first, second, pair); err != nil {
		return UTF16Char{}, err
	}
	if !pair {
		second = 0
	}
	return UTF16Char{units: [2]uint16{first, second}}, nil
}

// ParseUTF16Char reads a string that must hold exactly one codepoint.
// It fails the same way as ParseUTF8Char.
func ParseUTF16Char(s string) (UTF16Char, error) {
	c, err := ParseUTF8Char(s)
	if err != nil {
		return UTF16Char{}, err
	}
	return c.ToUTF16(), nil
}

// Len is 1 or 2
func (c UTF16Char) Len() int {
	if c.units[1] != 0 {
		return 2
	}
	return 1
}

// IsBMP reports whether c fits in a single unit
func (c UTF16Char) IsBMP() bool {
	return c.units[1] == 0
}

// Rune decodes c
func (c UTF16Char) Rune() rune {
	return DecodeUTF16PairUnchecked(c.units[0], c.units[1], c.units[1] != 0)
}

// Pair exposes the units in the form EncodeUTF16Pair returns them
func (c UTF16Char) Pair() (first, second uint16, pair bool) {
	return c.units[0], c.units[1], c.units[1] != 0
}

// Units borrows the encoded units. The slice aliases c and must not be
// modified.
func (c *UTF16Char) Units() []uint16 {
	return c.units[:c.Len()]
}

// String returns the character as a UTF-8 string
func (c UTF16Char) String() string {
	return string(c.Rune())
}

// GoString formats c like a rune literal
func (c UTF16Char) GoString() string {
	return strconv.QuoteRune(c.Rune())
}

// CopyTo writes the units to dst and returns how many were written. If
// dst is too short it returns false and leaves dst unmodified. A buffer of
// length 2 is always large enough.
func (c UTF16Char) CopyTo(dst []uint16) (int, bool) {
	n := c.Len()
	if len(dst) < n {
		return 0, false
	}
	return copy(dst, c.units[:n]), true
}

// ToUTF8 re-encodes c as UTF-8
func (c UTF16Char) ToUTF8() UTF8Char {
	return NewUTF8Char(c.Rune())
}

// Compare orders by codepoint
func (c UTF16Char) Compare(o UTF16Char) int {
	return cmp.Compare(c.Rune(), o.Rune())
}

// Hash is consistent with ==, and equal to the Hash of the UTF8Char
// holding the same codepoint.
func (c UTF16Char) Hash() uint64 {
	return hashRune(c.Rune())
}

// Iter returns an iterator positioned at the first unit. Each call starts
// over; consuming an iterator does not affect c.
func (c UTF16Char) Iter() UTF16Iterator {
	return UTF16Iterator{units: c.units, len: uint8(c.Len())}
}

// All yields the encoded units in order
func (c UTF16Char) All() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for i := range c.Len() {
			if !yield(c.units[i]) {
				return
			}
		}
	}
}
