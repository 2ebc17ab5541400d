package utfchar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsafeBytesToString(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "Empty byte slice",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "Nil byte slice",
			input:    nil,
			expected: "",
		},
		{
			name:     "Multi-byte codepoint",
			input:    []byte{0xF0, 0x9F, 0x98, 0x80},
			expected: "😀",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := unsafeBytesToString(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestUnsafeStringToBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: []byte{},
		},
		{
			name:     "Multi-byte codepoint",
			input:    "é",
			expected: []byte{0xC3, 0xA9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := unsafeStringToBytes(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStrAliasesChar(t *testing.T) {
	c := NewUTF8Char('é')
	s := c.Str()
	assert.Equal(t, "é", s)
	assert.Equal(t, len(c.Bytes()), len(s))
}
