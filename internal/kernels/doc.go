// Package kernels implements the element loops behind vector operations.
//
// Every kernel takes raw slices plus explicit strides and a logical length,
// so the same loop serves owning vectors, block views and views over caller
// storage. Callers are responsible for bounds and size checks; kernels
// assume (n-1)*stride < len(x) for each operand.
//
// # Backends
//
// Float64 operands with unit stride are dispatched to
// github.com/cwbudde/algo-vecmath when the CPU offers a SIMD unit it
// accelerates (AVX2 on amd64, ASIMD on arm64). The BLOCKVEC_KERNEL environment
// variable ("generic" or "vecmath") overrides the selection at start-up.
package kernels
