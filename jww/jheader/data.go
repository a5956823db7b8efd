package jheader

import (
	"fmt"
)

type (
	Header struct {
		Signature  Signature `json:"signature"`
		Version    uint16    `json:"version"`
		Scale      float64   `json:"scale"`
		OffsetX    float64   `json:"offset_x"`
		OffsetY    float64   `json:"offset_y"`
		Angle      float64   `json:"angle"`
		LayerCount int       `json:"layer_count"`
		GroupCount int       `json:"group_count"`
	}
	Signature      string
	SignatureError struct {
		Magic []byte
	}
)

// The header record always occupies Stride bytes; whatever the field
// reads leave before the boundary is reserved padding.
//
// Default table:
//
//	scale      stored denominator 0 -> 1.0 (applied by Decode)
//	layerCount 0                    -> 16  (applied by Normalize)
//	groupCount 0                    -> 16  (applied by Normalize)
const (
	Stride            = 256
	DefaultScale      = 1.0
	DefaultLayerCount = 16
	DefaultGroupCount = 16
)

const (
	SignatureJWW       = Signature("JWW")
	SignatureJWS       = Signature("JWS")
	SignatureJWCLegacy = Signature("JWC")
)

var (
	MagicJWW = []byte("JWW")
	MagicJWS = []byte("JWS")

	// Some old exports start with a 7-byte magic instead: the "JWC"
	// prefix, a "_VER" continuation, and one separator byte.
	MagicLegacyPrefix       = []byte("JWC")
	MagicLegacyContinuation = []byte("_VER")
)

func (e SignatureError) Error() string {
	return fmt.Sprintf(`unsupported signature "% X"`, e.Magic)
}
