// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation for block storage, plus typed views
// (Cast) over those raw buffers for pointer-free numeric element types.
package mem
