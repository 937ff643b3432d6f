package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every buffer handed out by this package (64 bytes).
const Alignment = 64

// Scalar is the set of pointer-free fixed-size element types that may live in
// raw byte storage.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// SizeOf returns the size in bytes of one element of T.
func SizeOf[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BytesFor returns the number of bytes needed for n elements of T and
// whether the computation fits in an int.
func BytesFor[T Scalar](n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	sz := SizeOf[T]()
	if n > 0 && sz > int(^uint(0)>>1)/n {
		return 0, false
	}
	return n * sz, true
}

// Cast reinterprets the first n elements of buf as a []T.
// buf must be at least n*SizeOf[T]() bytes long and suitably aligned,
// which holds for every buffer returned by AllocAligned.
func Cast[T Scalar](buf []byte, n int) []T {
	if n <= 0 || len(buf) == 0 {
		return nil
	}
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for typed views over raw storage
	return unsafe.Slice((*T)(ptr), n)
}

// AllocAlignedSlice allocates a zeroed, 64-byte aligned []T of length n.
func AllocAlignedSlice[T Scalar](n int) []T {
	size, ok := BytesFor[T](n)
	if !ok || size == 0 {
		return nil
	}
	return Cast[T](AllocAligned(size), n)
}
