// Package jtext decodes the legacy double-byte text found in JWW files.
// Drawings produced by the original application store names and labels as
// Shift-JIS; the codec can be switched by name and always falls back to a
// one-byte-per-rune decoding instead of erroring, to stay usable in
// environments where the requested codec misbehaves.
package jtext

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

type Decoder struct {
	enc encoding.Encoding
}

// NewDecoder picks a codec by name. An empty name means Shift-JIS; an
// unrecognized name selects the raw single-byte fallback.
func NewDecoder(name string) *Decoder {
	switch strings.ToLower(name) {
	case "", "shift_jis", "shift-jis", "sjis", "cp932":
		return &Decoder{enc: japanese.ShiftJIS}
	case "windows-1252", "latin1":
		return &Decoder{enc: charmap.Windows1252}
	case "utf-8", "utf8":
		return &Decoder{enc: unicode.UTF8}
	default:
		return &Decoder{}
	}
}

func (d *Decoder) Decode(bs []byte) string {
	if len(bs) == 0 {
		return ""
	}
	if d.enc != nil {
		result, err := d.enc.NewDecoder().Bytes(bs)
		if err == nil {
			return string(result)
		}
	}
	return decodeRaw(bs)
}

// DecodeTrimmed cuts the input at the first zero byte, decodes it, and
// drops the trailing space padding some writers leave in fixed fields.
func (d *Decoder) DecodeTrimmed(bs []byte) string {
	for i, b := range bs {
		if b == 0 {
			bs = bs[:i]
			break
		}
	}
	return strings.TrimRight(d.Decode(bs), " ")
}

func decodeRaw(bs []byte) string {
	runes := make([]rune, 0, len(bs))
	for _, b := range bs {
		runes = append(runes, rune(b))
	}
	return string(runes)
}
