package utfchar

import (
	"encoding"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Both types serialize as the character itself, as a text string. Decoding
// goes through ParseUTF8Char, so a serialized value holding zero or several
// codepoints is rejected.

var (
	_ encoding.TextMarshaler   = UTF8Char{}
	_ encoding.TextUnmarshaler = (*UTF8Char)(nil)
	_ cbor.Marshaler           = UTF8Char{}
	_ cbor.Unmarshaler         = (*UTF8Char)(nil)
	_ msgpack.CustomEncoder    = UTF8Char{}
	_ msgpack.CustomDecoder    = (*UTF8Char)(nil)

	_ encoding.TextMarshaler   = UTF16Char{}
	_ encoding.TextUnmarshaler = (*UTF16Char)(nil)
	_ cbor.Marshaler           = UTF16Char{}
	_ cbor.Unmarshaler         = (*UTF16Char)(nil)
	_ msgpack.CustomEncoder    = UTF16Char{}
	_ msgpack.CustomDecoder    = (*UTF16Char)(nil)
)

// MarshalText implements encoding.TextMarshaler
func (c UTF8Char) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *UTF8Char) UnmarshalText(text []byte) error {
	v, err := ParseUTF8Char(unsafeBytesToString(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalCBOR encodes c as a CBOR text string
func (c UTF8Char) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(c.String())
}

// UnmarshalCBOR decodes a CBOR text string holding one codepoint
func (c *UTF8Char) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseUTF8Char(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// EncodeMsgpack encodes c as a msgpack string
func (c UTF8Char) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(c.String())
}

// DecodeMsgpack decodes a msgpack string holding one codepoint
func (c *UTF8Char) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := ParseUTF8Char(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c UTF16Char) MarshalText() ([]byte, error) {
	return c.ToUTF8().MarshalText()
}

func (c *UTF16Char) UnmarshalText(text []byte) error {
	var u UTF8Char
	if err := u.UnmarshalText(text); err != nil {
		return err
	}
	*c = u.ToUTF16()
	return nil
}

func (c UTF16Char) MarshalCBOR() ([]byte, error) {
	return c.ToUTF8().MarshalCBOR()
}

func (c *UTF16Char) UnmarshalCBOR(data []byte) error {
	var u UTF8Char
	if err := u.UnmarshalCBOR(data); err != nil {
		return err
	}
	*c = u.ToUTF16()
	return nil
}

func (c UTF16Char) EncodeMsgpack(enc *msgpack.Encoder) error {
	return c.ToUTF8().EncodeMsgpack(enc)
}

func (c *UTF16Char) DecodeMsgpack(dec *msgpack.Decoder) error {
	var u UTF8Char
	if err := u.DecodeMsgpack(dec); err != nil {
		return err
	}
	*c = u.ToUTF16()
	return nil
}
