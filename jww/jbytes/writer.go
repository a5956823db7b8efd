package jbytes

import (
	"encoding/binary"
	"math"
)

// Writer packs little-endian primitives into a growing slice. It is the
// counterpart of Reader used to build fixture buffers; there is no
// document-level encoder.
type Writer struct {
	bs []byte
}

func NewWriter() *Writer {
	return &Writer{bs: make([]byte, 0)}
}

func (w *Writer) Bytes() []byte {
	return w.bs
}

func (w *Writer) Len() int {
	return len(w.bs)
}

func (w *Writer) WriteUint8(value uint8) *Writer {
	w.bs = append(w.bs, value)
	return w
}

func (w *Writer) WriteUint16(value uint16) *Writer {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	w.bs = append(w.bs, bs...)
	return w
}

func (w *Writer) WriteInt16(value int16) *Writer {
	return w.WriteUint16(uint16(value))
}

func (w *Writer) WriteUint32(value uint32) *Writer {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	w.bs = append(w.bs, bs...)
	return w
}

func (w *Writer) WriteInt32(value int32) *Writer {
	return w.WriteUint32(uint32(value))
}

func (w *Writer) WriteFloat32(value float32) *Writer {
	return w.WriteUint32(math.Float32bits(value))
}

func (w *Writer) WriteFloat64(value float64) *Writer {
	bs := make([]byte, 8)
	binary.LittleEndian.PutUint64(bs, math.Float64bits(value))
	w.bs = append(w.bs, bs...)
	return w
}

func (w *Writer) WriteBytes(bs []byte) *Writer {
	w.bs = append(w.bs, bs...)
	return w
}

// WriteText lays out text in a fixed-width field padded with zero bytes.
// Text longer than the field is cut at the field width.
func (w *Writer) WriteText(text string, width int) *Writer {
	bs := make([]byte, width)
	copy(bs, text)
	w.bs = append(w.bs, bs...)
	return w
}

// PadTo appends zero bytes until the length is a multiple of boundary.
func (w *Writer) PadTo(boundary int) *Writer {
	for len(w.bs)%boundary != 0 {
		w.bs = append(w.bs, 0)
	}
	return w
}
