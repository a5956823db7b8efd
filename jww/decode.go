package jww

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"jwwconv/jww/jbytes"
	"jwwconv/jww/jentity"
	"jwwconv/jww/jheader"
	"jwwconv/jww/jlayer"
	"jwwconv/jww/jtext"
)

// Parse decodes a whole drawing: header, layer table, then the entity
// stream, in that order. A header failure always fails the parse; layer
// and entity failures follow options. Callers that want to yield between
// phases can run jheader.Decode, jlayer.DecodeTable and
// jentity.DecodeStream themselves over one jbytes.Reader.
func Parse(bs []byte, options ParseOptions) (*Document, error) {
	reader := jbytes.NewReader(bs)
	decoder := jtext.NewDecoder(options.Encoding)

	header, err := jheader.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "jww.Parse error: decode header")
	}
	normalized := jheader.Normalize(*header)

	layers, layerDiagnostics := jlayer.DecodeTable(reader, normalized.LayerCount, decoder)
	layers = jlayer.Normalize(layers)

	entities, entityDiagnostics, err := jentity.DecodeStream(
		reader,
		decoder,
		jentity.StreamOptions{
			Strict:      options.StrictMode,
			SkipInvalid: options.SkipInvalidEntities,
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "jww.Parse error: decode entities")
	}

	return &Document{
		Header:      normalized,
		Layers:      layers,
		Entities:    entities,
		Diagnostics: append(layerDiagnostics, entityDiagnostics...),
	}, nil
}

// VisibleEntities returns the entities whose layer exists and is marked
// visible, the subset a renderer draws.
func (d Document) VisibleEntities() []jentity.Entity {
	return lo.Filter(
		d.Entities,
		func(entity jentity.Entity, _ int) bool {
			if entity.Layer < 0 || entity.Layer >= len(d.Layers) {
				return false
			}
			return d.Layers[entity.Layer].Visible
		},
	)
}
