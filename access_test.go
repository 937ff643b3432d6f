package blockvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/blockvec/testutil"
)

func TestGetSet(t *testing.T) {
	rng := testutil.NewRNG(1)

	b, err := NewBlockZeroed[float64](30)
	require.NoError(t, err)
	defer b.Release()

	for _, stride := range []int{1, 2, 3} {
		v, err := AllocFromBlock(b, 0, 30/stride, stride)
		require.NoError(t, err)

		want := testutil.Uniform[float64](rng, v.Len())
		for i, x := range want {
			require.NoError(t, v.Set(i, x))
		}
		for i, x := range want {
			got, err := v.Get(i)
			require.NoError(t, err)
			assert.Equal(t, x, got)
		}
	}
}

func TestPtr(t *testing.T) {
	v, err := AllocZeroed[int64](4)
	require.NoError(t, err)
	defer v.Release()

	p, err := v.Ptr(2)
	require.NoError(t, err)
	*p += 5
	*p *= 3

	x, err := v.Get(2)
	require.NoError(t, err)
	assert.Equal(t, int64(15), x)

	cp, err := v.ConstPtr(2)
	require.NoError(t, err)
	assert.Same(t, p, cp)
}

func TestIndexOutOfRange(t *testing.T) {
	if !RangeCheck {
		t.Skip("range checking disabled")
	}

	v, err := AllocZeroed[uint32](3)
	require.NoError(t, err)
	defer v.Release()

	for _, i := range []int{-1, 3, 100} {
		var idxErr *ErrIndexOutOfRange

		_, err := v.Get(i)
		require.ErrorAs(t, err, &idxErr)
		assert.Equal(t, i, idxErr.Index)
		assert.Equal(t, 3, idxErr.Size)

		assert.ErrorAs(t, v.Set(i, 1), &idxErr)

		_, err = v.Ptr(i)
		assert.ErrorAs(t, err, &idxErr)
	}
	assert.True(t, v.IsNull())
}
