package jlayer

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"jwwconv/jww/jbytes"
	"jwwconv/jww/jdiag"
	"jwwconv/jww/jtext"
)

func DecodeRecord(reader *jbytes.Reader, number int, decoder *jtext.Decoder) (*Layer, error) {
	layer := Layer{Number: number}

	flags, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrapf(err, "jlayer.DecodeRecord error: read flags of layer %d", number)
	}
	layer.Visible = flags&FlagVisible != 0
	layer.Locked = flags&FlagLocked != 0

	color, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrapf(err, "jlayer.DecodeRecord error: read color of layer %d", number)
	}
	layer.Color = int(color)

	lineType, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrapf(err, "jlayer.DecodeRecord error: read line type of layer %d", number)
	}
	layer.LineType = int(lineType)

	if err := reader.Skip(1); err != nil {
		return nil, errors.Wrapf(err, "jlayer.DecodeRecord error: skip reserved byte of layer %d", number)
	}

	layer.Name, err = reader.ReadText(NameSize, decoder)
	if err != nil {
		return nil, errors.Wrapf(err, "jlayer.DecodeRecord error: read name of layer %d", number)
	}

	return &layer, nil
}

// DecodeTable reads exactly count records. A slot that fails to read is
// replaced with DefaultLayer and reported as a diagnostic; the loop
// always finishes, so the table always has exactly count entries. This
// holds even under strict mode, which matches the behavior of the
// existing file population.
func DecodeTable(reader *jbytes.Reader, count int, decoder *jtext.Decoder) ([]Layer, []jdiag.Diagnostic) {
	layers := make([]Layer, 0, count)
	diagnostics := make([]jdiag.Diagnostic, 0)
	for number := 0; number < count; number++ {
		start := reader.Pos()
		layer, err := DecodeRecord(reader, number, decoder)
		if err != nil {
			diagnostics = append(diagnostics, jdiag.SubstitutedLayer(number, start, err))
			layers = append(layers, DefaultLayer(number))
			next := start + RecordSize
			if next > reader.Len() {
				next = reader.Len()
			}
			_ = reader.Seek(next)
			continue
		}
		layers = append(layers, *layer)
	}
	return layers, diagnostics
}

// Normalize synthesizes names for layers whose stored name was empty.
func Normalize(layers []Layer) []Layer {
	return lo.Map(
		layers,
		func(layer Layer, _ int) Layer {
			if layer.Name == "" {
				layer.Name = SynthesizeName(layer.Number)
			}
			return layer
		},
	)
}
