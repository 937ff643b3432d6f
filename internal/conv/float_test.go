package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type celsius int16

func TestTypeClassification(t *testing.T) {
	assert.True(t, IsFloat[float32]())
	assert.True(t, IsFloat[float64]())
	assert.False(t, IsFloat[int]())
	assert.False(t, IsFloat[uint8]())

	assert.True(t, IsSigned[int8]())
	assert.True(t, IsSigned[float64]())
	assert.True(t, IsSigned[celsius]())
	assert.False(t, IsSigned[uint16]())
}

func TestBounds(t *testing.T) {
	assert.Equal(t, int8(math.MaxInt8), MaxOf[int8]())
	assert.Equal(t, int8(math.MinInt8), MinOf[int8]())
	assert.Equal(t, int64(math.MaxInt64), MaxOf[int64]())
	assert.Equal(t, int64(math.MinInt64), MinOf[int64]())
	assert.Equal(t, uint8(math.MaxUint8), MaxOf[uint8]())
	assert.Equal(t, uint8(0), MinOf[uint8]())
	assert.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())
	assert.Equal(t, celsius(math.MaxInt16), MaxOf[celsius]())
}

func TestFromFloat64(t *testing.T) {
	t.Run("float passthrough", func(t *testing.T) {
		assert.Equal(t, 2.5, FromFloat64[float64](2.5))
		assert.Equal(t, float32(0.25), FromFloat64[float32](0.25))
		assert.True(t, math.IsNaN(FromFloat64[float64](math.NaN())))
	})

	t.Run("truncates toward zero", func(t *testing.T) {
		assert.Equal(t, 2, FromFloat64[int](2.9))
		assert.Equal(t, -2, FromFloat64[int](-2.9))
		assert.Equal(t, int32(0), FromFloat64[int32](-0.5))
	})

	t.Run("saturates signed", func(t *testing.T) {
		assert.Equal(t, int8(127), FromFloat64[int8](1000))
		assert.Equal(t, int8(-128), FromFloat64[int8](-1000))
		assert.Equal(t, int8(-128), FromFloat64[int8](-128))
		assert.Equal(t, int64(math.MaxInt64), FromFloat64[int64](math.Inf(1)))
		assert.Equal(t, int64(math.MinInt64), FromFloat64[int64](math.Inf(-1)))
	})

	t.Run("saturates unsigned", func(t *testing.T) {
		assert.Equal(t, uint8(255), FromFloat64[uint8](300))
		assert.Equal(t, uint8(0), FromFloat64[uint8](-3))
		assert.Equal(t, uint64(math.MaxUint64), FromFloat64[uint64](1e30))
	})

	t.Run("nan maps to zero", func(t *testing.T) {
		assert.Equal(t, 0, FromFloat64[int](math.NaN()))
	})

	t.Run("named type", func(t *testing.T) {
		assert.Equal(t, celsius(-40), FromFloat64[celsius](-40.7))
	})
}
