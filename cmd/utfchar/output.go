package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	utfchar "github.com/42atomys/go-utfchar"
)

// report describes one codepoint in every encoding
type report struct {
	Scalar   string           `json:"scalar" yaml:"scalar" cbor:"scalar"`
	Char     utfchar.UTF8Char `json:"char" yaml:"char" cbor:"char"`
	Quoted   string           `json:"quoted" yaml:"quoted" cbor:"quoted"`
	UTF8     string           `json:"utf8" yaml:"utf8" cbor:"utf8"`
	UTF8Len  int              `json:"utf8_len" yaml:"utf8_len" cbor:"utf8_len"`
	UTF16    string           `json:"utf16" yaml:"utf16" cbor:"utf16"`
	UTF16Len int              `json:"utf16_len" yaml:"utf16_len" cbor:"utf16_len"`
}

func newReport(c utfchar.UTF8Char) report {
	u := c.ToUTF16()

	var utf8Hex []string
	for b := range c.All() {
		utf8Hex = append(utf8Hex, fmt.Sprintf("%02x", b))
	}
	var utf16Hex []string
	for unit := range u.All() {
		utf16Hex = append(utf16Hex, fmt.Sprintf("%04x", unit))
	}

	return report{
		Scalar:   fmt.Sprintf("%U", c.Rune()),
		Char:     c,
		Quoted:   c.GoString(),
		UTF8:     strings.Join(utf8Hex, " "),
		UTF8Len:  c.Len(),
		UTF16:    strings.Join(utf16Hex, " "),
		UTF16Len: u.Len(),
	}
}

type renderFunc func(io.Writer, []report) error

func renderer(format string) (renderFunc, error) {
	switch format {
	case "text":
		return renderText, nil
	case "json":
		return renderJSON, nil
	case "yaml":
		return renderYAML, nil
	case "cbor":
		return renderCBOR, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, json, yaml or cbor)", format)
}

func renderText(w io.Writer, reports []report) error {
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "%-9s %-6s utf8[%d]: %-12s utf16[%d]: %s\n",
			r.Scalar, r.Quoted, r.UTF8Len, r.UTF8, r.UTF16Len, r.UTF16); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, reports []report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func renderYAML(w io.Writer, reports []report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}

// renderCBOR writes the deterministic CBOR encoding as one hex line.
func renderCBOR(w io.Writer, reports []report) error {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	data, err := em.Marshal(reports)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, hex.EncodeToString(data))
	return err
}
