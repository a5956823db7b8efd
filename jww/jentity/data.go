package jentity

type (
	// Entity is one record of the drawing stream. Kind mirrors the tag
	// the record was decoded from and never changes afterwards; Data
	// holds the matching payload variant.
	Entity struct {
		Kind      Kind    `json:"kind"`
		Layer     int     `json:"layer"`
		Color     int     `json:"color"`
		LineType  int     `json:"line_type"`
		LineWidth float64 `json:"line_width"`
		Group     int     `json:"group"`
		Data      Payload `json:"data"`
	}

	// Payload is the closed set of geometry variants. All lengths are
	// millimeters and all angles radians; nothing keeps the raw
	// fixed-point integers.
	Payload interface {
		Kind() Kind
	}

	Kind string

	Vertex struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}

	Line struct {
		StartX float64 `json:"start_x"`
		StartY float64 `json:"start_y"`
		EndX   float64 `json:"end_x"`
		EndY   float64 `json:"end_y"`
	}
	Circle struct {
		CenterX float64 `json:"center_x"`
		CenterY float64 `json:"center_y"`
		Radius  float64 `json:"radius"`
	}
	Arc struct {
		CenterX    float64 `json:"center_x"`
		CenterY    float64 `json:"center_y"`
		Radius     float64 `json:"radius"`
		StartAngle float64 `json:"start_angle"`
		EndAngle   float64 `json:"end_angle"`
		Clockwise  bool    `json:"clockwise"`
	}
	Ellipse struct {
		CenterX  float64 `json:"center_x"`
		CenterY  float64 `json:"center_y"`
		RadiusX  float64 `json:"radius_x"`
		RadiusY  float64 `json:"radius_y"`
		Rotation float64 `json:"rotation"`
	}
	Text struct {
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Height float64 `json:"height"`
		Width  float64 `json:"width"`
		Angle  float64 `json:"angle"`
		HAlign HAlign  `json:"h_align"`
		VAlign VAlign  `json:"v_align"`
		Font   string  `json:"font"`
		Value  string  `json:"value"`
	}
	Dimension struct {
		StartX float64       `json:"start_x"`
		StartY float64       `json:"start_y"`
		EndX   float64       `json:"end_x"`
		EndY   float64       `json:"end_y"`
		TextX  float64       `json:"text_x"`
		TextY  float64       `json:"text_y"`
		Value  float64       `json:"value"`
		Type   DimensionType `json:"type"`
		Text   string        `json:"text"`
	}
	Polyline struct {
		Closed bool     `json:"closed"`
		Points []Vertex `json:"points"`
	}
	Point struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	Solid struct {
		X1 float64 `json:"x1"`
		Y1 float64 `json:"y1"`
		X2 float64 `json:"x2"`
		Y2 float64 `json:"y2"`
		X3 float64 `json:"x3"`
		Y3 float64 `json:"y3"`
		X4 float64 `json:"x4"`
		Y4 float64 `json:"y4"`
	}
	Hatch struct {
		Pitch  float64  `json:"pitch"`
		Angle  float64  `json:"angle"`
		Closed bool     `json:"closed"`
		Points []Vertex `json:"points"`
	}
	Block struct {
		X        float64 `json:"x"`
		Y        float64 `json:"y"`
		ScaleX   float64 `json:"scale_x"`
		ScaleY   float64 `json:"scale_y"`
		Rotation float64 `json:"rotation"`
		Name     string  `json:"name"`
	}

	HAlign        string
	VAlign        string
	DimensionType string

	Tag uint8
)

const (
	KindLine      = Kind("line")
	KindCircle    = Kind("circle")
	KindArc       = Kind("arc")
	KindEllipse   = Kind("ellipse")
	KindText      = Kind("text")
	KindDimension = Kind("dimension")
	KindPolyline  = Kind("polyline")
	KindPoint     = Kind("point")
	KindSolid     = Kind("solid")
	KindHatch     = Kind("hatch")
	KindBlock     = Kind("block")
)

const (
	TagTerminator = Tag(0x00)
	TagLine       = Tag(0x01)
	TagCircle     = Tag(0x02)
	TagArc        = Tag(0x03)
	TagText       = Tag(0x04)
	TagEllipse    = Tag(0x05)
	TagDimension  = Tag(0x06)
	TagPolyline   = Tag(0x07)
	TagPoint      = Tag(0x08)
	TagSolid      = Tag(0x09)
	TagHatch      = Tag(0x0A)
	TagBlock      = Tag(0x0B)
)

const (
	// A record with an unsupported tag carries a fixed 32-byte payload
	// block; the stream resynchronizes right after it.
	UnknownPayloadSize = 32
	// After a truncated payload the cursor moves this many bytes
	// forward from the failure point before the next tag search.
	RecoverySkipSize = 16
	// Fewer remaining bytes than this cannot hold another record.
	MinRecordSize = 4

	FontNameSize = 32
	DefaultFont  = "MS Gothic"

	// Dimension values are stored in thousandths of a millimeter,
	// unlike every other length field.
	DimensionValueScale = 1000.0
)

const (
	HAlignLeft   = HAlign("left")
	HAlignCenter = HAlign("center")
	HAlignRight  = HAlign("right")

	VAlignBottom = VAlign("bottom")
	VAlignMiddle = VAlign("middle")
	VAlignTop    = VAlign("top")
)

const (
	DimensionLinear   = DimensionType("linear")
	DimensionAligned  = DimensionType("aligned")
	DimensionAngular  = DimensionType("angular")
	DimensionRadius   = DimensionType("radius")
	DimensionDiameter = DimensionType("diameter")
)

func (Line) Kind() Kind      { return KindLine }
func (Circle) Kind() Kind    { return KindCircle }
func (Arc) Kind() Kind       { return KindArc }
func (Ellipse) Kind() Kind   { return KindEllipse }
func (Text) Kind() Kind      { return KindText }
func (Dimension) Kind() Kind { return KindDimension }
func (Polyline) Kind() Kind  { return KindPolyline }
func (Point) Kind() Kind     { return KindPoint }
func (Solid) Kind() Kind     { return KindSolid }
func (Hatch) Kind() Kind     { return KindHatch }
func (Block) Kind() Kind     { return KindBlock }
