// Package blockvec provides generic numeric blocks, strided vectors and
// views with explicit ownership.
//
// A Block owns a fixed number of elements drawn from an Arena. A Vector is a
// strided window over a Block or over caller storage; it may own a private
// Block, in which case releasing the Vector releases the Block too. Views
// never own storage.
//
// # Quick Start
//
//	v, _ := blockvec.AllocZeroed[float64](6)
//	defer v.Release()
//
//	// Every other element: physical indices 0, 2, 4.
//	even, _ := v.SubvectorWithStride(0, 2, 3)
//	even.Vector().SetAll(7)
//
//	hi, _ := v.Max()
//
// # Ownership
//
// Exactly one party releases storage. Release on an owning Vector frees its
// Block; Release on a View or non-owning Vector only invalidates that handle.
// Vectors built over a Block must not be used after the Block is released.
//
// # Element Types
//
// Every integer and floating-point type is supported through the Numeric
// constraint. Each instantiation keeps its native arithmetic: integer
// division truncates toward zero, float division follows IEEE 754.
// Scale and AddConstant take a float64 operand; integer results truncate
// toward zero and saturate at the bounds of the element type.
//
// # Range Checking
//
// Get, Set, Ptr and ConstPtr validate indices unless the package is built
// with the norangecheck tag. See RangeCheck.
//
// # Concurrency
//
// Vectors are not safe for concurrent mutation. Arenas and the memory
// controller are safe for concurrent use, so independent Blocks may be
// allocated from several goroutines.
package blockvec
