package jbytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"jwwconv/jww/jtext"
)

func TestReaderIntegers(t *testing.T) {
	reader := NewReader([]byte{
		0x2A,
		0xD6,
		0x39, 0x05,
		0xC7, 0xFA,
		0x40, 0x42, 0x0F, 0x00,
		0x60, 0x79, 0xFE, 0xFF,
	})

	u8, err := reader.ReadUint8()
	assert.NoError(t, err)
	assert.Equal(t, uint8(42), u8)

	i8, err := reader.ReadInt8()
	assert.NoError(t, err)
	assert.Equal(t, int8(-42), i8)

	u16, err := reader.ReadUint16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(1337), u16)

	i16, err := reader.ReadInt16()
	assert.NoError(t, err)
	assert.Equal(t, int16(-1337), i16)

	i32, err := reader.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(1000000), i32)

	i32, err = reader.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(-100000), i32)

	assert.Equal(t, 0, reader.Remaining())
}

func TestReaderFloats(t *testing.T) {
	writer := NewWriter().
		WriteFloat32(1.5).
		WriteFloat64(-0.25)
	reader := NewReader(writer.Bytes())

	f32, err := reader.ReadFloat32()
	assert.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)

	f64, err := reader.ReadFloat64()
	assert.NoError(t, err)
	assert.Equal(t, -0.25, f64)
}

func TestReaderTruncation(t *testing.T) {
	reader := NewReader([]byte{1, 2, 3})

	_, err := reader.ReadUint32()
	require.Error(t, err)

	truncated := TruncatedError{}
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, 0, truncated.Offset)
	assert.Equal(t, 4, truncated.Want)
	assert.Equal(t, 3, truncated.Have)

	// a failed read does not advance; repositioning makes the rest
	// readable again
	require.NoError(t, reader.Seek(1))
	u16, err := reader.ReadUint16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0302), u16)
}

func TestReaderSkipAlignSeek(t *testing.T) {
	reader := NewReader(make([]byte, 512))

	assert.NoError(t, reader.Skip(10))
	assert.Equal(t, 10, reader.Pos())

	assert.NoError(t, reader.Align(256))
	assert.Equal(t, 256, reader.Pos())

	// already on the boundary, stays put
	assert.NoError(t, reader.Align(256))
	assert.Equal(t, 256, reader.Pos())

	assert.NoError(t, reader.Skip(1))
	assert.Error(t, reader.Align(1024))
	assert.Equal(t, 257, reader.Pos())

	assert.Error(t, reader.Skip(1000))
	assert.Error(t, reader.Seek(513))
	assert.Error(t, reader.Seek(-1))
	assert.NoError(t, reader.Seek(512))
	assert.Equal(t, 0, reader.Remaining())
}

func TestReaderText(t *testing.T) {
	decoder := jtext.NewDecoder("")
	writer := NewWriter().
		WriteText("Walls", 8).
		WriteBytes([]byte{0x82, 0xA0, 0x00, 0x00}).
		WriteBytes([]byte("tail\x00"))
	reader := NewReader(writer.Bytes())

	name, err := reader.ReadText(8, decoder)
	assert.NoError(t, err)
	assert.Equal(t, "Walls", name)

	kana, err := reader.ReadText(4, decoder)
	assert.NoError(t, err)
	assert.Equal(t, "あ", kana)

	tail, err := reader.ReadTextNul(decoder)
	assert.NoError(t, err)
	assert.Equal(t, "tail", tail)
	assert.Equal(t, 0, reader.Remaining())
}

func TestReaderTextNulMissingTerminator(t *testing.T) {
	decoder := jtext.NewDecoder("")
	reader := NewReader([]byte("never ends"))

	_, err := reader.ReadTextNul(decoder)
	assert.Error(t, err)
}

func TestReaderBytes(t *testing.T) {
	reader := NewReader([]byte{1, 2, 3, 4})

	bs, err := reader.ReadBytes(2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, bs)

	bs, err = reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Equal(t, []byte{}, bs)

	_, err = reader.ReadBytes(3)
	assert.Error(t, err)
}

func TestWriterPadTo(t *testing.T) {
	writer := NewWriter().
		WriteBytes([]byte("JWW")).
		PadTo(8)
	assert.Equal(t, 8, writer.Len())

	writer.PadTo(8)
	assert.Equal(t, 8, writer.Len())

	writer.WriteText("toolongname", 4)
	assert.Equal(t, []byte("tool"), writer.Bytes()[8:])
}
