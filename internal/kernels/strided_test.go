package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFill(t *testing.T) {
	t.Run("contiguous", func(t *testing.T) {
		x := make([]int, 4)
		Fill(x, 1, 3, 9)
		assert.Equal(t, []int{9, 9, 9, 0}, x)
	})

	t.Run("strided leaves gaps", func(t *testing.T) {
		x := make([]int, 6)
		Fill(x, 2, 3, 7)
		assert.Equal(t, []int{7, 0, 7, 0, 7, 0}, x)
	})
}

func TestCopy(t *testing.T) {
	t.Run("contiguous", func(t *testing.T) {
		dst := make([]float32, 3)
		Copy(dst, 1, []float32{1, 2, 3}, 1, 3)
		assert.Equal(t, []float32{1, 2, 3}, dst)
	})

	t.Run("mixed strides", func(t *testing.T) {
		dst := make([]int16, 3)
		src := []int16{1, -1, 2, -1, 3}
		Copy(dst, 1, src, 2, 3)
		assert.Equal(t, []int16{1, 2, 3}, dst)
	})
}

func TestSwap(t *testing.T) {
	a := []int{1, 0, 2, 0, 3}
	b := []int{7, 8, 9}
	Swap(a, 2, b, 1, 3)
	assert.Equal(t, []int{7, 0, 8, 0, 9}, a)
	assert.Equal(t, []int{1, 2, 3}, b)
}

func TestReverse(t *testing.T) {
	t.Run("odd", func(t *testing.T) {
		x := []int{1, 2, 3, 4, 5}
		Reverse(x, 1, 5)
		assert.Equal(t, []int{5, 4, 3, 2, 1}, x)
	})

	t.Run("strided", func(t *testing.T) {
		x := []int{1, 0, 2, 0, 3, 0, 4}
		Reverse(x, 2, 4)
		assert.Equal(t, []int{4, 0, 3, 0, 2, 0, 1}, x)
	})
}

func TestIsZeroAndSum(t *testing.T) {
	x := []uint8{0, 5, 0, 5, 0}
	assert.True(t, IsZero(x, 2, 3))
	assert.False(t, IsZero(x, 1, 5))
	assert.Equal(t, uint8(10), Sum(x, 1, 5))
}

func TestGather(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 5}, Gather([]float64{1, 2, 3, 4, 5}, 2, 3))
}
