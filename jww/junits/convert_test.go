package junits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMillimeters(t *testing.T) {
	assert.Equal(t, 10.0, ToMillimeters(1000))
	assert.Equal(t, -20.0, ToMillimeters(-2000))
	assert.Equal(t, 0.01, ToMillimeters(1))
	assert.Equal(t, 0.0, ToMillimeters(0))
}

func TestFromMillimeters(t *testing.T) {
	assert.Equal(t, int32(1000), FromMillimeters(10.0))
	assert.Equal(t, int32(-2000), FromMillimeters(-20.0))
	assert.Equal(t, int32(1), FromMillimeters(0.01))
}

func TestToRadians(t *testing.T) {
	assert.InDelta(t, math.Pi/4, ToRadians(45), 1e-5)
	assert.InDelta(t, math.Pi, ToRadians(180), 1e-5)
	assert.InDelta(t, -math.Pi/2, ToRadians(-90), 1e-5)
	assert.Equal(t, 0.0, ToRadians(0))
}

func TestFromRadians(t *testing.T) {
	assert.Equal(t, int16(45), FromRadians(math.Pi/4))
	assert.Equal(t, int16(180), FromRadians(math.Pi))
	assert.Equal(t, int16(-90), FromRadians(-math.Pi/2))
}

func TestRoundTripDegrees(t *testing.T) {
	for _, degrees := range []int16{-180, -45, 0, 45, 90, 135, 180} {
		assert.Equal(t, degrees, FromRadians(ToRadians(degrees)))
	}
}
