// Package jdiag carries the recoverable issues a decode ran into. The
// decoder itself does no logging; callers inspect these records instead.
package jdiag

import (
	"fmt"
)

type (
	Diagnostic struct {
		Stage   Stage  `json:"stage"`
		Index   int    `json:"index"`
		Offset  int    `json:"offset"`
		Message string `json:"message"`
	}
	Stage string
)

const (
	StageLayer  = Stage("layer")
	StageEntity = Stage("entity")
)

func SubstitutedLayer(index int, offset int, err error) Diagnostic {
	return Diagnostic{
		Stage:   StageLayer,
		Index:   index,
		Offset:  offset,
		Message: fmt.Sprintf("layer %d substituted with defaults: %v", index, err),
	}
}

func SkippedEntity(index int, offset int, err error) Diagnostic {
	return Diagnostic{
		Stage:   StageEntity,
		Index:   index,
		Offset:  offset,
		Message: fmt.Sprintf("entity record %d skipped: %v", index, err),
	}
}

func UnknownTag(index int, offset int, tag byte) Diagnostic {
	return Diagnostic{
		Stage:   StageEntity,
		Index:   index,
		Offset:  offset,
		Message: fmt.Sprintf("entity record %d has unknown tag 0x%02X", index, tag),
	}
}
