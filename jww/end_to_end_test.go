package jww

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"jwwconv/jww/jbytes"
	"jwwconv/jww/jentity"
	"jwwconv/jww/jheader"
	"jwwconv/jww/jlayer"
)

// EndToEndTestSuite decodes one synthesized drawing carrying every
// entity kind and checks the document from several angles.
type EndToEndTestSuite struct {
	FileBytes []byte
	Document  *Document
	R         *require.Assertions
	suite.Suite
}

func (suite *EndToEndTestSuite) SetupSuite() {
	suite.R = suite.Require()

	writer := jbytes.NewWriter()
	writeHeader(writer, 2)
	writeLayer(writer, jlayer.FlagVisible, "Walls")
	writeLayer(writer, jlayer.FlagLocked, "") // hidden, name synthesized

	record := func(tag jentity.Tag, layer uint8) {
		writer.
			WriteUint8(uint8(tag)).
			WriteUint8(layer).
			WriteUint8(1).
			WriteUint8(0).
			WriteUint16(10).
			WriteUint8(0).
			WriteUint8(0)
	}

	record(jentity.TagLine, 0)
	writer.WriteInt32(0).WriteInt32(0).WriteInt32(10000).WriteInt32(0)

	record(jentity.TagCircle, 1)
	writer.WriteInt32(5000).WriteInt32(5000).WriteInt32(1000)

	record(jentity.TagArc, 0)
	writer.WriteInt32(0).WriteInt32(0).WriteInt32(2000).WriteInt16(0).WriteInt16(90).WriteUint8(1)

	record(jentity.TagText, 0)
	writer.
		WriteInt32(100).WriteInt32(200).
		WriteInt16(300).WriteInt16(0).WriteInt16(0).
		WriteUint8(0).
		WriteText("", jentity.FontNameSize).
		WriteUint16(2).WriteBytes([]byte{0x82, 0xA0}) // "あ"

	record(jentity.TagEllipse, 0)
	writer.WriteInt32(0).WriteInt32(0).WriteInt32(4000).WriteInt32(2000).WriteInt16(15)

	record(jentity.TagDimension, 0)
	writer.
		WriteInt32(0).WriteInt32(0).WriteInt32(10000).WriteInt32(0).
		WriteInt32(5000).WriteInt32(1000).
		WriteInt32(100000).
		WriteUint8(0).
		WriteUint16(0)

	record(jentity.TagPolyline, 0)
	writer.WriteUint16(3).WriteUint8(1).WriteUint8(0)
	writer.WriteInt32(0).WriteInt32(0).WriteInt32(1000).WriteInt32(0).WriteInt32(1000).WriteInt32(1000)

	record(jentity.TagPoint, 0)
	writer.WriteInt32(-500).WriteInt32(500)

	record(jentity.TagSolid, 0)
	for i := 0; i < 8; i++ {
		writer.WriteInt32(int32(i * 100))
	}

	record(jentity.TagHatch, 0)
	writer.WriteInt32(250).WriteInt16(45)
	writer.WriteUint16(2).WriteUint8(0).WriteUint8(0)
	writer.WriteInt32(0).WriteInt32(0).WriteInt32(2000).WriteInt32(0)

	record(jentity.TagBlock, 0)
	writer.
		WriteInt32(0).WriteInt32(0).
		WriteInt32(100).WriteInt32(100).
		WriteInt16(0).
		WriteUint16(4).WriteBytes([]byte("door"))

	writer.WriteUint8(uint8(jentity.TagTerminator))
	writer.WriteBytes(make([]byte, 8)) // junk past the terminator

	suite.FileBytes = writer.Bytes()

	document, err := Parse(suite.FileBytes, DefaultParseOptions())
	suite.R.NoError(err)
	suite.Document = document
}

func (suite *EndToEndTestSuite) TestHeader() {
	header := suite.Document.Header
	suite.R.Equal(jheader.SignatureJWW, header.Signature)
	suite.R.Equal(uint16(700), header.Version)
	suite.R.Equal(1.0, header.Scale)
	suite.R.Equal(2, header.LayerCount)
	suite.R.Equal(16, header.GroupCount)
}

func (suite *EndToEndTestSuite) TestLayers() {
	suite.R.Len(suite.Document.Layers, 2)
	suite.R.Equal("Walls", suite.Document.Layers[0].Name)
	suite.R.True(suite.Document.Layers[0].Visible)
	suite.R.Equal("Layer 1", suite.Document.Layers[1].Name)
	suite.R.False(suite.Document.Layers[1].Visible)
	suite.R.True(suite.Document.Layers[1].Locked)
}

func (suite *EndToEndTestSuite) TestEntityKindsInStreamOrder() {
	kinds := lo.Map(
		suite.Document.Entities,
		func(entity jentity.Entity, _ int) jentity.Kind {
			return entity.Kind
		},
	)
	suite.R.Equal(
		[]jentity.Kind{
			jentity.KindLine,
			jentity.KindCircle,
			jentity.KindArc,
			jentity.KindText,
			jentity.KindEllipse,
			jentity.KindDimension,
			jentity.KindPolyline,
			jentity.KindPoint,
			jentity.KindSolid,
			jentity.KindHatch,
			jentity.KindBlock,
		},
		kinds,
	)
}

func (suite *EndToEndTestSuite) TestEntityDetails() {
	entities := suite.Document.Entities

	line := entities[0].Data.(jentity.Line)
	suite.R.Equal(100.0, line.EndX)

	text := entities[3].Data.(jentity.Text)
	suite.R.Equal("あ", text.Value)
	suite.R.Equal("MS Gothic", text.Font)

	dimension := entities[5].Data.(jentity.Dimension)
	suite.R.Equal(100.0, dimension.Value)
	suite.R.Equal("100.00", dimension.Text)

	polyline := entities[6].Data.(jentity.Polyline)
	suite.R.True(polyline.Closed)
	suite.R.Len(polyline.Points, 3)

	block := entities[10].Data.(jentity.Block)
	suite.R.Equal("door", block.Name)
	suite.R.Equal(1.0, block.ScaleX)
}

func (suite *EndToEndTestSuite) TestNoDiagnostics() {
	suite.R.Empty(suite.Document.Diagnostics)
}

func (suite *EndToEndTestSuite) TestVisibleEntitiesSkipHiddenLayer() {
	visible := suite.Document.VisibleEntities()
	suite.R.Len(visible, len(suite.Document.Entities)-1)
	for _, entity := range visible {
		suite.R.Equal(0, entity.Layer)
	}
}

func (suite *EndToEndTestSuite) TestStrictModeAgreesOnCleanInput() {
	options := DefaultParseOptions()
	options.StrictMode = true
	document, err := Parse(suite.FileBytes, options)
	suite.R.NoError(err)
	suite.R.Equal(suite.Document.Entities, document.Entities)
	suite.R.Equal(suite.Document.Layers, document.Layers)
}

func (suite *EndToEndTestSuite) TestValidateAndFileInfo() {
	suite.R.True(Validate(suite.FileBytes))
	info := GetFileInfo(suite.FileBytes)
	suite.R.Equal("JWW", info.Signature)
	suite.R.Equal(uint16(700), info.Version)
	suite.R.Equal(len(suite.FileBytes), info.Size)
}

func (suite *EndToEndTestSuite) TestDocumentMarshalsToJSON() {
	documentBytes, err := json.Marshal(suite.Document)
	suite.R.NoError(err)
	suite.R.Contains(string(documentBytes), `"kind":"line"`)
	suite.R.Contains(string(documentBytes), `"name":"Walls"`)
}

func TestEndToEnd(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}
