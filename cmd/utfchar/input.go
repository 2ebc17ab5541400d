package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	utfchar "github.com/42atomys/go-utfchar"
)

type parseFunc func(string) (utfchar.UTF8Char, error)

func inputParser(from string) (parseFunc, error) {
	switch from {
	case "text":
		return utfchar.ParseUTF8Char, nil
	case "scalar":
		return parseScalar, nil
	case "utf8":
		return parseUTF8Hex, nil
	case "utf16":
		return parseUTF16Hex, nil
	}
	return nil, fmt.Errorf("unknown input kind %q (want text, scalar, utf8 or utf16)", from)
}

// parseScalar accepts U+XXXX, 0xXXXX or a decimal number.
func parseScalar(s string) (utfchar.UTF8Char, error) {
	digits, base := s, 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		digits, base = s[2:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits, base = s[2:], 16
	}
	raw, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return utfchar.UTF8Char{}, fmt.Errorf("parse scalar %q: %w", s, err)
	}
	r, err := utfchar.FromUint32(uint32(raw))
	if err != nil {
		return utfchar.UTF8Char{}, err
	}
	return utfchar.NewUTF8Char(r), nil
}

// parseUTF8Hex accepts bytes as hex, optionally separated by spaces,
// commas or colons.
func parseUTF8Hex(s string) (utfchar.UTF8Char, error) {
	src, err := hex.DecodeString(strings.Join(hexFields(s), ""))
	if err != nil {
		return utfchar.UTF8Char{}, fmt.Errorf("parse hex bytes %q: %w", s, err)
	}
	if len(src) == 0 {
		return utfchar.UTF8Char{}, utfchar.ErrEmpty
	}
	c, n, err := utfchar.UTF8CharFromSlice(src)
	if err != nil {
		return utfchar.UTF8Char{}, err
	}
	if n != len(src) {
		return utfchar.UTF8Char{}, utfchar.ErrSeveralCodePoints
	}
	return c, nil
}

// parseUTF16Hex accepts units as separated hex numbers, or as one run of
// four hex digits per unit.
func parseUTF16Hex(s string) (utfchar.UTF8Char, error) {
	fields := hexFields(s)
	if len(fields) == 1 && len(fields[0]) > 4 && len(fields[0])%4 == 0 {
		run := fields[0]
		fields = fields[:0]
		for i := 0; i < len(run); i += 4 {
			fields = append(fields, run[i:i+4])
		}
	}
	if len(fields) == 0 {
		return utfchar.UTF8Char{}, utfchar.ErrEmpty
	}

	units := make([]uint16, 0, len(fields))
	for _, f := range fields {
		u, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X"), 16, 16)
		if err != nil {
			return utfchar.UTF8Char{}, fmt.Errorf("parse hex unit %q: %w", f, err)
		}
		units = append(units, uint16(u))
	}

	c, n, err := utfchar.UTF16CharFromSlice(units)
	if err != nil {
		return utfchar.UTF8Char{}, err
	}
	if n != len(units) {
		return utfchar.UTF8Char{}, utfchar.ErrSeveralCodePoints
	}
	return c.ToUTF8(), nil
}

func hexFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ':' || r == '\t'
	})
}

// kindField names the decode failure, or "syntax" for malformed arguments.
func kindField(err error) zap.Field {
	var e *utfchar.Error
	if errors.As(err, &e) {
		return zap.Stringer("kind", e.Kind)
	}
	return zap.String("kind", "syntax")
}
