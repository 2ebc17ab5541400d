package utfchar

// RuneLenUTF8 returns how many bytes the UTF-8 encoding of r takes.
// Invalid runes count as RuneError.
func RuneLenUTF8(r rune) int {
	switch c := uint32(sanitize(r)); {
	case c < 0x80:
		return 1
	case c < 0x800:
		return 2
	case c < 0x10000:
		return 3
	default:
		return 4
	}
}

// RuneLenUTF16 returns 2 for runes that need a surrogate pair, else 1
func RuneLenUTF16(r rune) int {
	if sanitize(r) >= surrSelf {
		return 2
	}
	return 1
}

// EncodeUTF8Array encodes r into a left-aligned, zero-padded array and
// returns the number of bytes used. Invalid runes encode as RuneError.
func EncodeUTF8Array(r rune) ([4]byte, int) {
	c := uint32(sanitize(r))
	if c < 0x80 { // ASCII, the common case
		return [4]byte{byte(c)}, 1
	}
	n := RuneLenUTF8(rune(c))

	// Six bits per byte, lowest bits in the most significant byte so that
	// a little-endian read puts the highest bits first.
	var parts uint32
	parts |= c & 0x3f
	c >>= 6
	parts <<= 8
	parts |= c & 0x3f
	c >>= 6
	parts <<= 8
	parts |= c & 0x3f
	c >>= 6
	parts <<= 8
	parts |= c & 0x3f
	parts |= 0x80808080      // 10xxxxxx on every byte
	parts >>= 8 * uint(4-n) // drop unused bytes, leaving them zero

	// Stamp n leading ones followed by a zero on the first byte.
	parts |= (0xff00 >> n) & 0xff
	parts &^= 1 << uint(7-n)

	return [4]byte{byte(parts), byte(parts >> 8), byte(parts >> 16), byte(parts >> 24)}, n
}

// EncodeUTF16Pair encodes r as one unit, or as a surrogate pair when pair
// is true. Invalid runes encode as RuneError.
func EncodeUTF16Pair(r rune) (first, second uint16, pair bool) {
	c := uint32(sanitize(r))
	if c < surrSelf {
		return uint16(c), 0, false
	}
	c -= surrSelf
	return uint16(surr1 + c>>10), uint16(surr2 + c&0x3ff), true
}

// EncodeUTF8Into writes the UTF-8 encoding of r to dst and returns the
// number of bytes written. If dst is too short it returns false and leaves
// dst unmodified. A buffer of length 4 is always large enough.
func EncodeUTF8Into(dst []byte, r rune) (int, bool) {
	b, n := EncodeUTF8Array(r)
	if len(dst) < n {
		return 0, false
	}
	return copy(dst, b[:n]), true
}

// EncodeUTF16Into writes the UTF-16 encoding of r to dst and returns the
// number of units written. If dst is too short it returns false and leaves
// dst unmodified. A buffer of length 2 is always large enough.
func EncodeUTF16Into(dst []uint16, r rune) (int, bool) {
	first, second, pair := EncodeUTF16Pair(r)
	switch {
	case len(dst) == 0, len(dst) == 1 && pair:
		return 0, false
	case pair:
		dst[0], dst[1] = first, second
		return 2, true
	default:
		dst[0] = first
		return 1, true
	}
}
