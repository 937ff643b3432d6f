package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxIndex(t *testing.T) {
	t.Run("first occurrence wins", func(t *testing.T) {
		x := []int{3, 1, 4, 1, 5, 9, 2, 9}
		assert.Equal(t, 5, MaxIndex(x, 1, len(x)))
		assert.Equal(t, 1, MinIndex(x, 1, len(x)))

		imin, imax := MinMaxIndex(x, 1, len(x))
		assert.Equal(t, 1, imin)
		assert.Equal(t, 5, imax)
	})

	t.Run("strided", func(t *testing.T) {
		x := []int{5, 100, 1, -100, 7}
		assert.Equal(t, 2, MaxIndex(x, 2, 3))
		assert.Equal(t, 1, MinIndex(x, 2, 3))
	})

	t.Run("nan terminates", func(t *testing.T) {
		x := []float64{1, math.NaN(), 3, math.NaN()}
		assert.Equal(t, 1, MaxIndex(x, 1, 4))
		assert.Equal(t, 1, MinIndex(x, 1, 4))

		imin, imax := MinMaxIndex(x, 1, 4)
		assert.Equal(t, 1, imin)
		assert.Equal(t, 1, imax)
	})

	t.Run("single element", func(t *testing.T) {
		imin, imax := MinMaxIndex([]uint16{4}, 1, 1)
		assert.Equal(t, 0, imin)
		assert.Equal(t, 0, imax)
	})
}
