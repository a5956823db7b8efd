package jbytes

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"jwwconv/ds"
	"jwwconv/jww/jtext"
)

func NewReader(bs []byte) *Reader {
	return &Reader{
		bs: bs,
	}
}

func (b *Reader) Len() int {
	return len(b.bs)
}

func (b *Reader) Pos() int {
	return b.pos
}

func (b *Reader) Remaining() int {
	return len(b.bs) - b.pos
}

// take returns the next n bytes without copying. The position is left
// untouched when the requested width passes the end of the slice, so a
// caller that repositions afterwards can keep going.
func (b *Reader) take(n int) ([]byte, error) {
	if n < 0 || b.pos+n > len(b.bs) {
		return nil, TruncatedError{Offset: b.pos, Want: n, Have: len(b.bs) - b.pos}
	}
	bs := b.bs[b.pos : b.pos+n]
	b.pos += n
	return bs, nil
}

func (b *Reader) ReadUint8() (uint8, error) {
	bs, err := b.take(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (b *Reader) ReadInt8() (int8, error) {
	result, err := b.ReadUint8()
	return int8(result), err
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadInt16() (int16, error) {
	result, err := b.ReadUint16()
	return int16(result), err
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadInt32() (int32, error) {
	result, err := b.ReadUint32()
	return int32(result), err
}

func (b *Reader) ReadFloat32() (float32, error) {
	result, err := b.ReadUint32()
	return math.Float32frombits(result), err
}

func (b *Reader) ReadFloat64() (float64, error) {
	bs, err := b.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(bs)), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs, err := b.take(n)
	if err != nil {
		return nil, err
	}
	result := make([]byte, n)
	copy(result, bs)
	return result, nil
}

// ReadText consumes exactly n bytes and decodes them as legacy text,
// truncated at the first zero byte within the width.
func (b *Reader) ReadText(n int, decoder *jtext.Decoder) (string, error) {
	bs, err := b.take(n)
	if err != nil {
		return "", err
	}
	return decoder.DecodeTrimmed(bs), nil
}

// ReadTextNul consumes bytes up to and including the next zero byte and
// decodes everything before it.
func (b *Reader) ReadTextNul(decoder *jtext.Decoder) (string, error) {
	for i := b.pos; i < len(b.bs); i++ {
		if b.bs[i] == 0 {
			bs := b.bs[b.pos:i]
			b.pos = i + 1
			return decoder.Decode(bs), nil
		}
	}
	return "", TruncatedError{Offset: b.pos, Want: b.Remaining() + 1, Have: b.Remaining()}
}

func (b *Reader) Skip(n int) error {
	_, err := b.take(n)
	return err
}

// Seek repositions the cursor to an absolute offset. It is the only way
// to keep reading after a failed read.
func (b *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(b.bs) {
		return errors.Errorf("jbytes.Seek error: position %d outside buffer of %d bytes", pos, len(b.bs))
	}
	b.pos = pos
	return nil
}

// Align advances to the next multiple of boundary counted from the start
// of the buffer. A position already on the boundary stays put.
func (b *Reader) Align(boundary int) error {
	if boundary <= 0 {
		return errors.Errorf("jbytes.Align error: invalid boundary %d", boundary)
	}
	target := ds.NearestDivisibleByM(b.pos, boundary)
	if target > len(b.bs) {
		return TruncatedError{Offset: b.pos, Want: target - b.pos, Have: len(b.bs) - b.pos}
	}
	b.pos = target
	return nil
}
