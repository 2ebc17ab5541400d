package utfchar

import "math/bits"

// DecodeUTF8 decodes the codepoint at the start of src and returns it
// together with the number of bytes it occupies.
//
// When src ends in the middle of a sequence the error has Kind
// KindTooShort and Need set to the number of missing bytes, so a caller
// reading from a buffer can refill and retry.
func DecodeUTF8(src []byte) (rune, int, error) {
	if len(src) == 0 {
		return 0, 0, errTooShort(1)
	}
	extra, err := ExtraUTF8Bytes(src[0])
	if err != nil {
		return 0, 0, err
	}
	if extra == 0 {
		return rune(src[0]), 1, nil
	}
	if len(src) <= extra {
		return 0, 0, errTooShort(extra + 1 - len(src))
	}
	r, err := decodeSequence(src[:1+extra])
	if err != nil {
		return 0, 0, err
	}
	return r, 1 + extra, nil
}

// DecodeUTF8Array decodes a sequence stored the way EncodeUTF8Array
// returns it. Bytes past the sequence length are ignored.
func DecodeUTF8Array(b [4]byte) (rune, error) {
	extra, err := ExtraUTF8Bytes(b[0])
	if err != nil {
		return 0, err
	}
	if extra == 0 {
		return rune(b[0]), nil
	}
	return decodeSequence(b[:1+extra])
}

// decodeSequence validates a complete multi-byte sequence whose length
// already matches its lead byte.
func decodeSequence(seq []byte) (rune, error) {
	for i := 1; i < len(seq); i++ {
		if !IsContinuationByte(seq[i]) {
			return 0, errNotContinuation(i)
		}
	}
	if overlong(seq[0], seq[1]) {
		return 0, ErrOverlong
	}
	c := uint32(DecodeUTF8Unchecked(seq))
	if err := validateScalar(c); err != nil {
		return 0, err
	}
	return rune(c), nil
}

// DecodeUTF8Unchecked decodes src, which must be exactly one valid UTF-8
// sequence. Nothing is validated: malformed input yields an unspecified
// rune, possibly not a valid scalar value. Use DecodeUTF8 unless the
// bytes come from EncodeUTF8Array or a UTF8Char.
//
// Panics if src is empty.
func DecodeUTF8Unchecked(src []byte) rune {
	if len(src) == 1 {
		return rune(src[0])
	}
	c := uint32(src[0]) & (0xff >> uint(len(src)+1))
	for _, b := range src[1:] {
		c = c<<6 | uint32(b&0x3f)
	}
	return rune(c)
}

// overlong reports whether a multi-byte sequence starting with first and
// second encodes a value that would fit in fewer bytes.
//
// The lead's length header is shifted out and the payload of the second
// byte appended. One byte more buys five payload bits (four going from one
// to two bytes), so if that many leading bits are zero the sequence is too
// long. The first two bytes always carry enough of them.
func overlong(first, second byte) bool {
	both := uint16(first)<<8 | uint16(second<<2)
	ones := bits.LeadingZeros16(^both)
	both <<= uint(1 + ones)
	if ones == 2 {
		return bits.LeadingZeros16(both) >= 4
	}
	return bits.LeadingZeros16(both) >= 5
}

// DecodeUTF16 decodes the codepoint at the start of src and returns it
// together with the number of units it occupies.
func DecodeUTF16(src []uint16) (rune, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrEmpty
	}
	switch ClassifyUTF16(src[0]) {
	case UTF16Single:
		return rune(src[0]), 1, nil
	case UTF16LowSurrogate:
		return 0, 0, ErrFirstLowSurrogate
	}
	if len(src) < 2 {
		return 0, 0, ErrMissingSecond
	}
	if !IsLowSurrogate(src[1]) {
		return 0, 0, ErrSecondNotLowSurrogate
	}
	return DecodeUTF16PairUnchecked(src[0], src[1], true), 2, nil
}

// DecodeUTF16Pair decodes a unit and optional second unit as returned by
// EncodeUTF16Pair. It agrees with DecodeUTF16 on every input, and also
// rejects a second unit attached to a codepoint that does not need one.
func DecodeUTF16Pair(first, second uint16, pair bool) (rune, error) {
	switch ClassifyUTF16(first) {
	case UTF16Single:
		if pair {
			return 0, ErrSuperfluousSecond
		}
	case UTF16LowSurrogate:
		return 0, ErrFirstLowSurrogate
	case UTF16HighSurrogate:
		if !pair {
			return 0, ErrMissingSecond
		}
		if !IsLowSurrogate(second) {
			return 0, ErrSecondNotLowSurrogate
		}
	}
	return DecodeUTF16PairUnchecked(first, second, pair), nil
}

// DecodeUTF16PairUnchecked combines units that are known to form a valid
// codepoint. Invalid input yields an unspecified rune.
func DecodeUTF16PairUnchecked(first, second uint16, pair bool) rune {
	if !pair {
		return rune(first)
	}
	return (rune(first)-surr1)<<10 | (rune(second) - surr2) + surrSelf
}
