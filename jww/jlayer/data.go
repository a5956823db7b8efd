package jlayer

import (
	"fmt"
)

type (
	Layer struct {
		Number   int    `json:"number"`
		Name     string `json:"name"`
		Visible  bool   `json:"visible"`
		Locked   bool   `json:"locked"`
		Color    int    `json:"color"`
		LineType int    `json:"line_type"`
	}
)

// Each layer record is a fixed 36 bytes: flags, color, line type, one
// reserved byte, and a 32-byte zero-padded name.
//
// Default table, applied by Normalize and by the per-slot substitution:
//
//	name     empty after trimming -> "Layer {number}"
//	record   slot read failure    -> visible, unlocked, color 0, line type 0
const (
	RecordSize = 36
	NameSize   = 32

	FlagVisible = 0x01
	FlagLocked  = 0x02
)

// DefaultLayer is the record substituted for a slot that could not be
// read. The name is left empty for Normalize to synthesize.
func DefaultLayer(number int) Layer {
	return Layer{
		Number:  number,
		Visible: true,
	}
}

func SynthesizeName(number int) string {
	return fmt.Sprintf("Layer %d", number)
}
