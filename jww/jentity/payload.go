package jentity

import (
	"fmt"

	"github.com/pkg/errors"
	"jwwconv/jww/jbytes"
	"jwwconv/jww/jtext"
	"jwwconv/jww/junits"
)

// readCoordinate reads one signed 32-bit fixed-point length and converts
// it to millimeters.
func readCoordinate(reader *jbytes.Reader, name string) (float64, error) {
	value, err := reader.ReadInt32()
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", name)
	}
	return junits.ToMillimeters(value), nil
}

// readAngle reads one signed 16-bit fixed-point degree value and
// converts it to radians.
func readAngle(reader *jbytes.Reader, name string) (float64, error) {
	value, err := reader.ReadInt16()
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", name)
	}
	return junits.ToRadians(value), nil
}

// readLength16 reads one of the rare 16-bit length fields, still in
// hundredths of a millimeter.
func readLength16(reader *jbytes.Reader, name string) (float64, error) {
	value, err := reader.ReadInt16()
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", name)
	}
	return float64(value) / junits.LengthScale, nil
}

func readCoordinates(reader *jbytes.Reader, names ...string) ([]float64, error) {
	values := make([]float64, 0, len(names))
	for _, name := range names {
		value, err := readCoordinate(reader, name)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func readVertices(reader *jbytes.Reader, count int) ([]Vertex, error) {
	points := make([]Vertex, 0, count)
	for i := 0; i < count; i++ {
		x, err := readCoordinate(reader, fmt.Sprintf("point %d x", i))
		if err != nil {
			return nil, err
		}
		y, err := readCoordinate(reader, fmt.Sprintf("point %d y", i))
		if err != nil {
			return nil, err
		}
		points = append(points, Vertex{X: x, Y: y})
	}
	return points, nil
}

func readLegacyString(reader *jbytes.Reader, decoder *jtext.Decoder, name string) (string, error) {
	length, err := reader.ReadUint16()
	if err != nil {
		return "", errors.Wrapf(err, "read %s length", name)
	}
	bs, err := reader.ReadBytes(int(length))
	if err != nil {
		return "", errors.Wrapf(err, "read %s", name)
	}
	return decoder.Decode(bs), nil
}

func decodeLine(reader *jbytes.Reader, _ *jtext.Decoder) (Payload, error) {
	values, err := readCoordinates(reader, "start x", "start y", "end x", "end y")
	if err != nil {
		return nil, err
	}
	return Line{StartX: values[0], StartY: values[1], EndX: values[2], EndY: values[3]}, nil
}

func decodeCircle(reader *jbytes.Reader, _ *jtext.Decoder) (Payload, error) {
	values, err := readCoordinates(reader, "center x", "center y", "radius")
	if err != nil {
		return nil, err
	}
	return Circle{CenterX: values[0], CenterY: values[1], Radius: values[2]}, nil
}

func decodeArc(reader *jbytes.Reader, _ *jtext.Decoder) (Payload, error) {
	arc := Arc{}
	values, err := readCoordinates(reader, "center x", "center y", "radius")
	if err != nil {
		return nil, err
	}
	arc.CenterX, arc.CenterY, arc.Radius = values[0], values[1], values[2]
	if arc.StartAngle, err = readAngle(reader, "start angle"); err != nil {
		return nil, err
	}
	if arc.EndAngle, err = readAngle(reader, "end angle"); err != nil {
		return nil, err
	}
	flags, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "read arc flags")
	}
	arc.Clockwise = flags&0x01 != 0
	return arc, nil
}

func decodeEllipse(reader *jbytes.Reader, _ *jtext.Decoder) (Payload, error) {
	ellipse := Ellipse{}
	values, err := readCoordinates(reader, "center x", "center y", "radius x", "radius y")
	if err != nil {
		return nil, err
	}
	ellipse.CenterX, ellipse.CenterY = values[0], values[1]
	ellipse.RadiusX, ellipse.RadiusY = values[2], values[3]
	if ellipse.Rotation, err = readAngle(reader, "rotation"); err != nil {
		return nil, err
	}
	return ellipse, nil
}

var (
	hAligns = []HAlign{HAlignLeft, HAlignCenter, HAlignRight}
	vAligns = []VAlign{VAlignBottom, VAlignMiddle, VAlignTop}
)

func decodeText(reader *jbytes.Reader, decoder *jtext.Decoder) (Payload, error) {
	text := Text{}
	values, err := readCoordinates(reader, "x", "y")
	if err != nil {
		return nil, err
	}
	text.X, text.Y = values[0], values[1]
	if text.Height, err = readLength16(reader, "height"); err != nil {
		return nil, err
	}
	if text.Width, err = readLength16(reader, "width"); err != nil {
		return nil, err
	}
	if text.Angle, err = readAngle(reader, "angle"); err != nil {
		return nil, err
	}

	alignment, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "read alignment flags")
	}
	// Two 2-bit fields; the unused fourth value falls back to the first.
	text.HAlign = HAlignLeft
	if index := int(alignment & 0x03); index < len(hAligns) {
		text.HAlign = hAligns[index]
	}
	text.VAlign = VAlignBottom
	if index := int(alignment >> 2 & 0x03); index < len(vAligns) {
		text.VAlign = vAligns[index]
	}

	if text.Font, err = reader.ReadText(FontNameSize, decoder); err != nil {
		return nil, errors.Wrap(err, "read font name")
	}
	if text.Font == "" {
		text.Font = DefaultFont
	}
	if text.Value, err = readLegacyString(reader, decoder, "text value"); err != nil {
		return nil, err
	}
	return text, nil
}

var dimensionTypes = []DimensionType{
	DimensionLinear,
	DimensionAligned,
	DimensionAngular,
	DimensionRadius,
	DimensionDiameter,
}

func decodeDimension(reader *jbytes.Reader, decoder *jtext.Decoder) (Payload, error) {
	dimension := Dimension{}
	values, err := readCoordinates(
		reader,
		"start x", "start y", "end x", "end y", "text x", "text y",
	)
	if err != nil {
		return nil, err
	}
	dimension.StartX, dimension.StartY = values[0], values[1]
	dimension.EndX, dimension.EndY = values[2], values[3]
	dimension.TextX, dimension.TextY = values[4], values[5]

	rawValue, err := reader.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "read dimension value")
	}
	dimension.Value = float64(rawValue) / DimensionValueScale

	typeIndex, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "read dimension type")
	}
	dimension.Type = DimensionLinear
	if int(typeIndex) < len(dimensionTypes) {
		dimension.Type = dimensionTypes[typeIndex]
	}

	if dimension.Text, err = readLegacyString(reader, decoder, "dimension text"); err != nil {
		return nil, err
	}
	if dimension.Text == "" {
		dimension.Text = fmt.Sprintf("%.2f", dimension.Value)
	}
	return dimension, nil
}

func decodePolyline(reader *jbytes.Reader, _ *jtext.Decoder) (Payload, error) {
	polyline := Polyline{}
	count, err := reader.ReadUint16()
	if err != nil {
		return nil, errors.Wrap(err, "read point count")
	}
	flags, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "read polyline flags")
	}
	polyline.Closed = flags&0x01 != 0
	if err := reader.Skip(1); err != nil {
		return nil, errors.Wrap(err, "skip reserved byte")
	}
	if polyline.Points, err = readVertices(reader, int(count)); err != nil {
		return nil, err
	}
	return polyline, nil
}

func decodePoint(reader *jbytes.Reader, _ *jtext.Decoder) (Payload, error) {
	values, err := readCoordinates(reader, "x", "y")
	if err != nil {
		return nil, err
	}
	return Point{X: values[0], Y: values[1]}, nil
}

func decodeSolid(reader *jbytes.Reader, _ *jtext.Decoder) (Payload, error) {
	values, err := readCoordinates(
		reader,
		"x1", "y1", "x2", "y2", "x3", "y3", "x4", "y4",
	)
	if err != nil {
		return nil, err
	}
	return Solid{
		X1: values[0], Y1: values[1],
		X2: values[2], Y2: values[3],
		X3: values[4], Y3: values[5],
		X4: values[6], Y4: values[7],
	}, nil
}

func decodeHatch(reader *jbytes.Reader, _ *jtext.Decoder) (Payload, error) {
	hatch := Hatch{}
	err := error(nil)
	if hatch.Pitch, err = readCoordinate(reader, "pitch"); err != nil {
		return nil, err
	}
	if hatch.Angle, err = readAngle(reader, "angle"); err != nil {
		return nil, err
	}
	count, err := reader.ReadUint16()
	if err != nil {
		return nil, errors.Wrap(err, "read point count")
	}
	flags, err := reader.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "read hatch flags")
	}
	hatch.Closed = flags&0x01 != 0
	if err := reader.Skip(1); err != nil {
		return nil, errors.Wrap(err, "skip reserved byte")
	}
	if hatch.Points, err = readVertices(reader, int(count)); err != nil {
		return nil, err
	}
	return hatch, nil
}

func decodeBlock(reader *jbytes.Reader, decoder *jtext.Decoder) (Payload, error) {
	block := Block{}
	values, err := readCoordinates(reader, "x", "y")
	if err != nil {
		return nil, err
	}
	block.X, block.Y = values[0], values[1]

	// Scale factors share the hundredths encoding: a stored 100 is 1.0.
	scaleX, err := reader.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "read scale x")
	}
	scaleY, err := reader.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "read scale y")
	}
	block.ScaleX = float64(scaleX) / junits.LengthScale
	block.ScaleY = float64(scaleY) / junits.LengthScale

	if block.Rotation, err = readAngle(reader, "rotation"); err != nil {
		return nil, err
	}
	if block.Name, err = readLegacyString(reader, decoder, "block name"); err != nil {
		return nil, err
	}
	return block, nil
}
