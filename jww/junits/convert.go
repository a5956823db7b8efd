// Package junits converts between the fixed-point units stored on disk
// and real-world units. Lengths are stored as signed 32-bit counts of
// hundredths of a millimeter, angles as signed 16-bit whole degrees.
package junits

import (
	"math"
)

const (
	LengthScale = 100.0
)

func ToMillimeters(value int32) float64 {
	return float64(value) / LengthScale
}

func FromMillimeters(mm float64) int32 {
	return int32(math.Round(mm * LengthScale))
}

func ToRadians(degrees int16) float64 {
	return float64(degrees) * math.Pi / 180
}

func FromRadians(radians float64) int16 {
	return int16(math.Round(radians * 180 / math.Pi))
}
