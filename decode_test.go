package utfchar

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8(t *testing.T) {
	tests := []struct {
		name        string
		s           []byte
		expected    rune
		expectedLen int
		err         error
		need        int
		index       int
	}{
		{name: "ASCII character", s: []byte("a"), expected: 'a', expectedLen: 1},
		{name: "ASCII prefix", s: []byte("ab"), expected: 'a', expectedLen: 1},
		{name: "2-byte rune", s: []byte("ñ"), expected: 'ñ', expectedLen: 2},
		{name: "3-byte rune", s: []byte("漢字"), expected: '漢', expectedLen: 3},
		{name: "4-byte rune", s: []byte("😀"), expected: '😀', expectedLen: 4},
		{name: "encoded RuneError", s: []byte{0xEF, 0xBF, 0xBD}, expected: RuneError, expectedLen: 3},
		{name: "empty", s: nil, err: ErrTooShort, need: 1},
		{name: "truncated 2-byte", s: []byte{0xC3}, err: ErrTooShort, need: 1},
		{name: "truncated 4-byte", s: []byte{0xF0, 0x9F}, err: ErrTooShort, need: 2},
		{name: "lone 4-byte lead", s: []byte{0xF0}, err: ErrTooShort, need: 3},
		{name: "continuation lead", s: []byte{0x80, 0x80}, err: ErrContinuationByte},
		{name: "5-byte lead", s: []byte{0xF8, 0x80, 0x80, 0x80, 0x80}, err: ErrTooLongSequence},
		{name: "ASCII as continuation", s: []byte{0xC3, 'a'}, err: ErrNotContinuationByte, index: 1},
		{name: "lead as continuation", s: []byte{0xE6, 0xBC, 0xE6}, err: ErrNotContinuationByte, index: 2},
		{name: "bad fourth byte", s: []byte{0xF0, 0x9F, 0x98, 0x00}, err: ErrNotContinuationByte, index: 3},
		{name: "overlong NUL", s: []byte{0xC0, 0x80}, err: ErrOverlong},
		{name: "overlong DEL", s: []byte{0xC1, 0xBF}, err: ErrOverlong},
		{name: "overlong 3-byte", s: []byte{0xE0, 0x9F, 0xBF}, err: ErrOverlong},
		{name: "overlong 4-byte", s: []byte{0xF0, 0x8F, 0xBF, 0xBF}, err: ErrOverlong},
		{name: "encoded surrogate", s: []byte{0xED, 0xA0, 0x80}, err: ErrSurrogateRange},
		{name: "above MaxRune", s: []byte{0xF4, 0x90, 0x80, 0x80}, err: ErrTooHigh},
		{name: "F7 lead", s: []byte{0xF7, 0xBF, 0xBF, 0xBF}, err: ErrTooHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n, err := DecodeUTF8(tt.s)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				var e *Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, tt.need, e.Need)
				assert.Equal(t, tt.index, e.Index)
				assert.Zero(t, r)
				assert.Zero(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
			assert.Equal(t, tt.expectedLen, n)
		})
	}
}

// Once the lead byte is known, refilling with exactly Need more bytes
// after a KindTooShort error must succeed.
func TestDecodeUTF8Refill(t *testing.T) {
	full := []byte("😀")
	for cut := 1; cut < len(full); cut++ {
		_, _, err := DecodeUTF8(full[:cut])
		var e *Error
		require.ErrorAs(t, err, &e)
		require.Equal(t, KindTooShort, e.Kind)
		r, n, err := DecodeUTF8(full[:cut+e.Need])
		require.NoError(t, err)
		assert.Equal(t, '😀', r)
		assert.Equal(t, 4, n)
	}
}

// The whole two-byte prefix space, with a handful of tails, must agree with
// unicode/utf8, which rejects overlongs, surrogates and values above
// MaxRune. The array form must agree with the slice form.
func TestDecodeUTF8MatchesStdlib(t *testing.T) {
	tails := []byte{0x00, 0x80, 0xBF, 0xC0}
	for b0 := 0; b0 < 256; b0++ {
		for b1 := 0; b1 < 256; b1++ {
			for _, b2 := range tails {
				for _, b3 := range tails {
					buf := [4]byte{byte(b0), byte(b1), b2, b3}
					r, n, err := DecodeUTF8(buf[:])
					wr, wn := utf8.DecodeRune(buf[:])
					valid := wr != utf8.RuneError || wn > 1
					if (err == nil) != valid {
						t.Fatalf("DecodeUTF8(% x) err = %v, stdlib valid = %v", buf, err, valid)
					}
					if valid && (r != wr || n != wn) {
						t.Fatalf("DecodeUTF8(% x) = %U/%d, want %U/%d", buf, r, n, wr, wn)
					}

					ar, aerr := DecodeUTF8Array(buf)
					if aerr != err || ar != r {
						t.Fatalf("DecodeUTF8Array(% x) = %U/%v, slice form %U/%v", buf, ar, aerr, r, err)
					}
				}
			}
		}
	}
}

// Checking only the first two bytes is enough to detect overlongs at every
// length: whether the value is below the length's minimum never depends on
// the third and fourth bytes.
func TestOverlongFirstTwoBytesSuffice(t *testing.T) {
	minimum := [...]uint32{2: 0x80, 3: 0x800, 4: 0x10000}
	for lead := 0xC0; lead <= 0xF7; lead++ {
		n := ExtraUTF8BytesUnchecked(byte(lead)) + 1
		for second := 0x80; second <= 0xBF; second++ {
			lo := []byte{byte(lead), byte(second), 0x80, 0x80}[:n]
			hi := []byte{byte(lead), byte(second), 0xBF, 0xBF}[:n]
			loOverlong := uint32(DecodeUTF8Unchecked(lo)) < minimum[n]
			hiOverlong := uint32(DecodeUTF8Unchecked(hi)) < minimum[n]
			require.Equal(t, loOverlong, hiOverlong, "tail decides overlong for % x", lo)
			require.Equal(t, loOverlong, overlong(byte(lead), byte(second)), "overlong(%#x, %#x)", lead, second)
		}
	}
}

func TestDecodeUTF8Unchecked(t *testing.T) {
	assert.Equal(t, 'a', DecodeUTF8Unchecked([]byte("a")))
	assert.Equal(t, 'é', DecodeUTF8Unchecked([]byte("é")))
	assert.Equal(t, '😀', DecodeUTF8Unchecked([]byte("😀")))
	assert.Panics(t, func() { DecodeUTF8Unchecked(nil) })
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name        string
		units       []uint16
		expected    rune
		expectedLen int
		err         error
	}{
		{name: "ASCII", units: []uint16{'a'}, expected: 'a', expectedLen: 1},
		{name: "single with trailing data", units: []uint16{'a', 0xDC00}, expected: 'a', expectedLen: 1},
		{name: "BMP max", units: []uint16{0xFFFF}, expected: 0xFFFF, expectedLen: 1},
		{name: "surrogate pair", units: []uint16{0xD83D, 0xDE00}, expected: 0x1F600, expectedLen: 2},
		{name: "MaxRune", units: []uint16{0xDBFF, 0xDFFF, 'x'}, expected: MaxRune, expectedLen: 2},
		{name: "empty", units: nil, err: ErrEmpty},
		{name: "leading low surrogate", units: []uint16{0xDC00}, err: ErrFirstLowSurrogate},
		{name: "lone high surrogate", units: []uint16{0xD83D}, err: ErrMissingSecond},
		{name: "high then single", units: []uint16{0xD83D, 'a'}, err: ErrSecondNotLowSurrogate},
		{name: "high then high", units: []uint16{0xD83D, 0xD83D}, err: ErrSecondNotLowSurrogate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n, err := DecodeUTF16(tt.units)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
			assert.Equal(t, tt.expectedLen, n)
		})
	}
}

func TestDecodeUTF16Pair(t *testing.T) {
	tests := []struct {
		name     string
		first    uint16
		second   uint16
		pair     bool
		expected rune
		err      error
	}{
		{name: "single", first: 'a', expected: 'a'},
		{name: "private use", first: 0xE000, expected: 0xE000},
		{name: "surrogate pair", first: 0xD83D, second: 0xDE00, pair: true, expected: 0x1F600},
		{name: "missing second", first: 0xD83D, err: ErrMissingSecond},
		{name: "trailing surrogate first", first: 0xDC00, err: ErrFirstLowSurrogate},
		{name: "trailing surrogate first with second", first: 0xDC00, second: 0xDC00, pair: true, err: ErrFirstLowSurrogate},
		{name: "second not low", first: 0xD83D, second: 'a', pair: true, err: ErrSecondNotLowSurrogate},
		{name: "superfluous second", first: 'a', second: 0xDC00, pair: true, err: ErrSuperfluousSecond},
		{name: "second ignored when absent", first: 'a', second: 0xDC00, expected: 'a'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := DecodeUTF16Pair(tt.first, tt.second, tt.pair)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}
}

// The pair form must agree with the slice form, except that only the pair
// form can tell a spurious second unit from the start of the next codepoint.
func TestDecodeUTF16PairMatchesSlice(t *testing.T) {
	seconds := []uint16{0, 'a', 0xD7FF, 0xD800, 0xDBFF, 0xDC00, 0xDE00, 0xDFFF, 0xE000, 0xFFFF}
	for f := 0; f <= 0xFFFF; f++ {
		first := uint16(f)

		r, n, err := DecodeUTF16([]uint16{first})
		pr, perr := DecodeUTF16Pair(first, 0, false)
		if perr != err || pr != r {
			t.Fatalf("single %#04x: pair form %U/%v, slice form %U/%d/%v", first, pr, perr, r, n, err)
		}

		for _, second := range seconds {
			r, n, err := DecodeUTF16([]uint16{first, second})
			pr, perr := DecodeUTF16Pair(first, second, true)
			switch {
			case err == nil && n == 1:
				if perr != ErrSuperfluousSecond {
					t.Fatalf("%#04x %#04x: want ErrSuperfluousSecond, got %v", first, second, perr)
				}
			case perr != err || pr != r:
				t.Fatalf("%#04x %#04x: pair form %U/%v, slice form %U/%v", first, second, pr, perr, r, err)
			}
		}
	}
}

func TestDecodeUTF16MatchesStdlib(t *testing.T) {
	for r := rune(0); r <= MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		units := utf16.Encode([]rune{r})
		got, n, err := DecodeUTF16(units)
		if err != nil || got != r || n != len(units) {
			t.Fatalf("DecodeUTF16(%#04x) = %U/%d/%v, want %U", units, got, n, err, r)
		}
	}
}

// Decoding and re-encoding reproduces the input exactly.
func TestRoundTrip(t *testing.T) {
	for r := rune(0); r <= MaxRune; r++ {
		if !ValidRune(r) {
			continue
		}
		b, n := EncodeUTF8Array(r)
		got, gn, err := DecodeUTF8(b[:n])
		if err != nil || got != r || gn != n {
			t.Fatalf("UTF-8 round trip of %U: %U/%d/%v", r, got, gn, err)
		}
		if again, _ := EncodeUTF8Array(got); again != b {
			t.Fatalf("UTF-8 re-encode of %U: % x != % x", r, again, b)
		}

		first, second, pair := EncodeUTF16Pair(r)
		got, err = DecodeUTF16Pair(first, second, pair)
		if err != nil || got != r {
			t.Fatalf("UTF-16 round trip of %U: %U/%v", r, got, err)
		}
		if f2, s2, p2 := EncodeUTF16Pair(got); f2 != first || s2 != second || p2 != pair {
			t.Fatalf("UTF-16 re-encode of %U differs", r)
		}
	}
}

func BenchmarkDecodeUTF8(b *testing.B) {
	inputs := [][]byte{[]byte("a"), []byte("é"), []byte("漢"), []byte("😀")}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = DecodeUTF8(inputs[i&3])
	}
}

func BenchmarkDecodeUTF16(b *testing.B) {
	inputs := [][]uint16{{'a'}, {0xD83D, 0xDE00}}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = DecodeUTF16(inputs[i&1])
	}
}
