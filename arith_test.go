package blockvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/blockvec/internal/kernels"
)

func TestElementwise(t *testing.T) {
	tests := []struct {
		name string
		op   func(v *Vector[int32], b Readable[int32]) error
		want []int32
	}{
		{"Add", (*Vector[int32]).Add, []int32{12, -18, 33, 7}},
		{"Sub", (*Vector[int32]).Sub, []int32{8, -22, 27, 7}},
		{"Mul", (*Vector[int32]).Mul, []int32{20, -40, 90, 0}},
		{"Div", (*Vector[int32]).Div, []int32{5, -10, 10, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Alloc[int32](4)
			require.NoError(t, err)
			defer a.Release()
			for i, x := range []int32{10, -20, 30, 7} {
				require.NoError(t, a.Set(i, x))
			}

			// Divisor stored with stride 2 to exercise mixed strides.
			b, err := ViewArrayWithStride([]int32{2, 0, 2, 0, 3, 0, 9}, 2, 4)
			require.NoError(t, err)
			if tt.name != "Div" {
				require.NoError(t, b.Vector().Set(3, 0))
			}

			require.NoError(t, tt.op(a, b))
			assert.Equal(t, tt.want, a.Slice())
		})
	}
}

func TestIntegerDivTruncates(t *testing.T) {
	a, err := ViewArray([]int16{7, -7, 7, -7})
	require.NoError(t, err)
	b, err := ConstViewArray([]int16{2, 2, -2, -2})
	require.NoError(t, err)

	require.NoError(t, a.Vector().Div(b))
	assert.Equal(t, []int16{3, -3, -3, 3}, a.Vector().Slice())
}

func TestIntegerDivByZero(t *testing.T) {
	a, err := ViewArray([]uint32{10, 20, 30})
	require.NoError(t, err)
	b, err := ViewArray([]uint32{1, 2, 0})
	require.NoError(t, err)

	assert.ErrorIs(t, a.Vector().Div(b), ErrDivisionByZero)
	assert.Equal(t, []uint32{10, 20, 30}, a.Vector().Slice())
}

func TestFloatDivByZero(t *testing.T) {
	a, err := ViewArray([]float64{1, -1, 0})
	require.NoError(t, err)
	b, err := ViewArray([]float64{0, 0, 0})
	require.NoError(t, err)

	require.NoError(t, a.Vector().Div(b))
	got := a.Vector().Slice()
	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsInf(got[1], -1))
	assert.True(t, math.IsNaN(got[2]))
}

func TestBinarySizeMismatch(t *testing.T) {
	a, err := ViewArray([]float32{1, 2, 3})
	require.NoError(t, err)
	b, err := ViewArray([]float32{1, 2})
	require.NoError(t, err)

	for _, op := range []func(Readable[float32]) error{
		a.Vector().Add, a.Vector().Sub, a.Vector().Mul, a.Vector().Div,
	} {
		var sizeErr *ErrSizeMismatch
		assert.ErrorAs(t, op(b), &sizeErr)
	}
	assert.Equal(t, []float32{1, 2, 3}, a.Vector().Slice())
}

func TestMulBackends(t *testing.T) {
	for _, backend := range []kernels.Backend{kernels.Generic, kernels.VecMath} {
		t.Run(backend.String(), func(t *testing.T) {
			restore := kernels.SetBackend(backend)
			defer restore()

			a, err := ViewArray([]float64{1, 2, 3, 4, 5})
			require.NoError(t, err)
			b, err := ViewArray([]float64{2, 2, 2, 0.5, -1})
			require.NoError(t, err)

			require.NoError(t, a.Vector().Mul(b))
			assert.Equal(t, []float64{2, 4, 6, 2, -5}, a.Vector().Slice())
		})
	}
}

func TestScale(t *testing.T) {
	t.Run("Float", func(t *testing.T) {
		w, err := ViewArray([]float32{1, -2, 4})
		require.NoError(t, err)
		require.NoError(t, w.Vector().Scale(0.5))
		assert.Equal(t, []float32{0.5, -1, 2}, w.Vector().Slice())
	})

	t.Run("IntegerTruncatesTowardZero", func(t *testing.T) {
		w, err := ViewArray([]int{5, -5, 3})
		require.NoError(t, err)
		require.NoError(t, w.Vector().Scale(0.5))
		assert.Equal(t, []int{2, -2, 1}, w.Vector().Slice())
	})

	t.Run("IntegerSaturates", func(t *testing.T) {
		w, err := ViewArray([]int8{100, -100, 1})
		require.NoError(t, err)
		require.NoError(t, w.Vector().Scale(3))
		assert.Equal(t, []int8{127, -128, 3}, w.Vector().Slice())
	})

	t.Run("UnsignedNegative", func(t *testing.T) {
		w, err := ViewArray([]uint8{10, 0})
		require.NoError(t, err)
		require.NoError(t, w.Vector().Scale(-1))
		assert.Equal(t, []uint8{0, 0}, w.Vector().Slice())
	})

	t.Run("NaNToZero", func(t *testing.T) {
		w, err := ViewArray([]int32{4, 8})
		require.NoError(t, err)
		require.NoError(t, w.Vector().Scale(math.NaN()))
		assert.Equal(t, []int32{0, 0}, w.Vector().Slice())
	})

	t.Run("Strided", func(t *testing.T) {
		data := []float64{1, 1, 1, 1, 1}
		w, err := ViewArrayWithStride(data, 2, 3)
		require.NoError(t, err)
		require.NoError(t, w.Vector().Scale(3))
		assert.Equal(t, []float64{3, 1, 3, 1, 3}, data)
	})
}

func TestAddConstant(t *testing.T) {
	w, err := ViewArray([]int16{1, -1, 32760})
	require.NoError(t, err)
	require.NoError(t, w.Vector().AddConstant(10.9))
	assert.Equal(t, []int16{11, 9, 32767}, w.Vector().Slice())

	f, err := ViewArray([]float64{0.25, -1})
	require.NoError(t, err)
	require.NoError(t, f.Vector().AddConstant(0.5))
	assert.Equal(t, []float64{0.75, -0.5}, f.Vector().Slice())
}
