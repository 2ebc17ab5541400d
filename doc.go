// Package utfchar converts between runes and their UTF-8 and UTF-16
// encodings one codepoint at a time, with full validation and without
// allocating.
//
// Decoding rejects every malformed input instead of substituting U+FFFD:
// continuation bytes in lead position, truncated and overlong sequences,
// surrogates encoded as UTF-8, values above U+10FFFF, and unpaired or
// misordered UTF-16 surrogates. Every failure is an *Error whose Kind says
// what went wrong; use errors.Is with the Err* sentinels to test for one.
//
// UTF8Char and UTF16Char hold a single validated codepoint in encoded
// form, so the bytes or units can be borrowed directly:
//
//	c, err := utfchar.ParseUTF8Char("é")
//	if err != nil {
//		return err
//	}
//	w.Write(c.Bytes()) // c3 a9
//
// All functions are pure and safe for concurrent use.
package utfchar
