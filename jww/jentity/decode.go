package jentity

import (
	"github.com/pkg/errors"
	"jwwconv/jww/jbytes"
	"jwwconv/jww/jdiag"
	"jwwconv/jww/jtext"
	"jwwconv/jww/junits"
)

type (
	StreamOptions struct {
		// Strict aborts the stream on the first truncated payload.
		Strict bool
		// SkipInvalid drops a truncated record and resynchronizes
		// RecoverySkipSize bytes past the failure point. With both flags off a
		// truncated payload still fails the stream; data is never
		// dropped silently.
		SkipInvalid bool
	}

	payloadDecoder func(reader *jbytes.Reader, decoder *jtext.Decoder) (Payload, error)
)

// payloadDecoders is the complete dispatch table. A tag outside of it
// (other than the terminator) is an unknown record and is skipped.
var payloadDecoders = map[Tag]payloadDecoder{
	TagLine:      decodeLine,
	TagCircle:    decodeCircle,
	TagArc:       decodeArc,
	TagText:      decodeText,
	TagEllipse:   decodeEllipse,
	TagDimension: decodeDimension,
	TagPolyline:  decodePolyline,
	TagPoint:     decodePoint,
	TagSolid:     decodeSolid,
	TagHatch:     decodeHatch,
	TagBlock:     decodeBlock,
}

// decodeAttributes reads the 7 bytes every record carries after its tag.
func decodeAttributes(reader *jbytes.Reader) (*Entity, error) {
	entity := Entity{}

	layer, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "decodeAttributes error: read layer")
	}
	color, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "decodeAttributes error: read color")
	}
	lineType, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "decodeAttributes error: read line type")
	}
	lineWidth, err := reader.ReadUint16()
	if err != nil {
		return nil, errors.Wrap(err, "decodeAttributes error: read line width")
	}
	group, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "decodeAttributes error: read group")
	}
	if err := reader.Skip(1); err != nil {
		return nil, errors.Wrap(err, "decodeAttributes error: skip reserved byte")
	}

	entity.Layer = int(layer)
	entity.Color = int(color)
	entity.LineType = int(lineType)
	entity.LineWidth = float64(lineWidth) / junits.LengthScale
	entity.Group = int(group)
	return &entity, nil
}

// DecodeStream reads records until the terminator tag, the end of the
// buffer, or fewer than MinRecordSize bytes remain. Unknown tags are
// always skipped over their fixed payload block and never fail the
// stream; truncated payloads follow options.
func DecodeStream(
	reader *jbytes.Reader,
	decoder *jtext.Decoder,
	options StreamOptions,
) ([]Entity, []jdiag.Diagnostic, error) {
	entities := make([]Entity, 0)
	diagnostics := make([]jdiag.Diagnostic, 0)

	for index := 0; ; index++ {
		if reader.Remaining() <= MinRecordSize {
			break
		}
		start := reader.Pos()
		tag, err := reader.ReadUint8()
		if err != nil {
			return nil, diagnostics, errors.Wrap(err, "jentity.DecodeStream error: read tag")
		}
		if Tag(tag) == TagTerminator {
			break
		}

		decodePayload, known := payloadDecoders[Tag(tag)]
		if !known {
			skip := UnknownPayloadSize
			if remaining := reader.Remaining(); skip > remaining {
				skip = remaining
			}
			_ = reader.Skip(skip)
			diagnostics = append(diagnostics, jdiag.UnknownTag(index, start, tag))
			continue
		}

		entity, err := decodeAttributes(reader)
		if err == nil {
			var payload Payload
			payload, err = decodePayload(reader, decoder)
			if err == nil {
				entity.Kind = payload.Kind()
				entity.Data = payload
				entities = append(entities, *entity)
				continue
			}
		}

		if options.Strict || !options.SkipInvalid {
			return nil, diagnostics, errors.Wrapf(err, "jentity.DecodeStream error: record %d at offset %d", index, start)
		}
		skip := RecoverySkipSize
		if remaining := reader.Remaining(); skip > remaining {
			skip = remaining
		}
		_ = reader.Skip(skip)
		diagnostics = append(diagnostics, jdiag.SkippedEntity(index, start, err))
	}

	return entities, diagnostics, nil
}
