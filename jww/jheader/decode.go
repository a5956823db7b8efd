package jheader

import (
	"bytes"

	"github.com/pkg/errors"
	"jwwconv/jww/jbytes"
	"jwwconv/jww/junits"
)

// SniffSignature classifies the first bytes of a buffer without touching
// the rest of it. It looks at 7 bytes at most and never fails.
func SniffSignature(bs []byte) (Signature, bool) {
	if len(bs) >= 3 {
		switch {
		case bytes.Equal(bs[:3], MagicJWW):
			return SignatureJWW, true
		case bytes.Equal(bs[:3], MagicJWS):
			return SignatureJWS, true
		}
	}
	if len(bs) >= 7 &&
		bytes.Equal(bs[:3], MagicLegacyPrefix) &&
		bytes.Equal(bs[3:7], MagicLegacyContinuation) {
		return SignatureJWCLegacy, true
	}
	return "", false
}

func decodeSignature(reader *jbytes.Reader) (Signature, error) {
	prefix, err := reader.ReadBytes(3)
	if err != nil {
		return "", errors.Wrap(err, "decodeSignature error: read magic")
	}
	switch {
	case bytes.Equal(prefix, MagicJWW):
		return SignatureJWW, nil
	case bytes.Equal(prefix, MagicJWS):
		return SignatureJWS, nil
	case bytes.Equal(prefix, MagicLegacyPrefix):
		continuation, err := reader.ReadBytes(4)
		if err != nil {
			return "", errors.Wrap(err, "decodeSignature error: read legacy continuation")
		}
		if !bytes.Equal(continuation, MagicLegacyContinuation) {
			return "", SignatureError{Magic: append(prefix, continuation...)}
		}
		// One separator byte follows the legacy magic. Its meaning is
		// unknown; it is skipped and otherwise ignored.
		if err := reader.Skip(1); err != nil {
			return "", errors.Wrap(err, "decodeSignature error: skip legacy separator")
		}
		return SignatureJWCLegacy, nil
	default:
		return "", SignatureError{Magic: prefix}
	}
}

// Decode reads the fixed-layout preamble and leaves the cursor on the
// Stride boundary. Every failure here is fatal for the whole parse;
// header corruption is never recoverable. The scale default is applied
// here, where the stored denominator is still visible; the count
// defaults are left for Normalize.
func Decode(reader *jbytes.Reader) (*Header, error) {
	header := Header{}
	err := error(nil)

	header.Signature, err = decodeSignature(reader)
	if err != nil {
		return nil, err
	}
	header.Version, err = reader.ReadUint16()
	if err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: read version")
	}
	if err := reader.Skip(1); err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: skip reserved byte")
	}

	scaleNumerator, err := reader.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: read scale numerator")
	}
	scaleDenominator, err := reader.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: read scale denominator")
	}
	// The default applies when the stored denominator is 0, not when the
	// ratio is: a stored numerator 0 over a nonzero denominator is a
	// legitimate scale of 0.
	if scaleDenominator == 0 {
		header.Scale = DefaultScale
	} else {
		header.Scale = float64(scaleNumerator) / float64(scaleDenominator)
	}

	offsetX, err := reader.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: read offset x")
	}
	offsetY, err := reader.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: read offset y")
	}
	header.OffsetX = junits.ToMillimeters(offsetX)
	header.OffsetY = junits.ToMillimeters(offsetY)

	rotation, err := reader.ReadInt16()
	if err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: read rotation")
	}
	header.Angle = junits.ToRadians(rotation)

	if err := reader.Skip(2); err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: skip reserved bytes")
	}

	layerCount, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: read layer count")
	}
	groupCount, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: read group count")
	}
	header.LayerCount = int(layerCount)
	header.GroupCount = int(groupCount)

	if err := reader.Align(Stride); err != nil {
		return nil, errors.Wrap(err, "jheader.Decode error: skip header padding")
	}

	return &header, nil
}

// Normalize substitutes the documented defaults for zero-valued counts.
// Scale is left alone: its default depends on the stored denominator,
// which only Decode sees.
func Normalize(header Header) Header {
	if header.LayerCount == 0 {
		header.LayerCount = DefaultLayerCount
	}
	if header.GroupCount == 0 {
		header.GroupCount = DefaultGroupCount
	}
	return header
}
