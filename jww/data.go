// Package jww decodes JW_CAD's proprietary binary drawing format into an
// in-memory document: a header, a fixed-size layer table, and the entity
// stream in file order.
package jww

import (
	"jwwconv/jww/jdiag"
	"jwwconv/jww/jentity"
	"jwwconv/jww/jheader"
	"jwwconv/jww/jlayer"
)

type (
	// Document is the immutable result of one decode. Layers are indexed
	// by layer number; Entities keep their stream order. Diagnostics
	// lists every issue the decode recovered from.
	Document struct {
		Header      jheader.Header     `json:"header"`
		Layers      []jlayer.Layer     `json:"layers"`
		Entities    []jentity.Entity   `json:"entities"`
		Diagnostics []jdiag.Diagnostic `json:"diagnostics,omitempty"`
	}

	FileInfo struct {
		Signature string `json:"signature"`
		Version   uint16 `json:"version"`
		Size      int    `json:"size"`
	}

	ParseOptions struct {
		// StrictMode aborts on recoverable entity errors instead of
		// resynchronizing. Header errors abort regardless; layer-table
		// errors substitute defaults regardless.
		StrictMode bool
		// SkipInvalidEntities drops truncated entity records and keeps
		// reading. Off together with StrictMode, a truncated record
		// still fails the parse; data is never dropped silently.
		SkipInvalidEntities bool
		// Encoding names the legacy text codec, Shift-JIS when empty.
		// See jtext.NewDecoder for the recognized names.
		Encoding string
	}
)

func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		SkipInvalidEntities: true,
	}
}
