package mem

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedSlice(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		buf := AllocAlignedSlice[float64](17)
		assert.Len(t, buf, 17)
		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment)
		for _, v := range buf {
			assert.Zero(t, v)
		}
	})

	t.Run("int8", func(t *testing.T) {
		buf := AllocAlignedSlice[int8](3)
		assert.Len(t, buf, 3)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, AllocAlignedSlice[int32](0))
		assert.Nil(t, AllocAlignedSlice[int32](-4))
	})
}

func TestBytesFor(t *testing.T) {
	n, ok := BytesFor[int32](10)
	assert.True(t, ok)
	assert.Equal(t, 40, n)

	_, ok = BytesFor[float64](math.MaxInt / 4)
	assert.False(t, ok)

	_, ok = BytesFor[uint8](-1)
	assert.False(t, ok)
}

func TestCastSharesStorage(t *testing.T) {
	raw := AllocAligned(16)
	words := Cast[uint32](raw, 4)
	words[1] = 0xFFFFFFFF
	assert.Equal(t, byte(0xFF), raw[4])
	assert.Nil(t, Cast[uint32](nil, 4))
}

func BenchmarkAllocAlignedSlice(b *testing.B) {
	sizes := []int{16, 64, 256, 1024}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAlignedSlice[float64](size)
			}
		})
	}
}
