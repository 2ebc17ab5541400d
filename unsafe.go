package utfchar

import "unsafe"

// unsafeBytesToString converts []byte to string without allocation.
// The caller must not modify b for as long as the string is in use.
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// unsafeStringToBytes converts string to []byte without allocation.
// The result aliases read-only memory and must never be written to; it is
// only handed to the decoders, which don't.
func unsafeStringToBytes(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
