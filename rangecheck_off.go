//go:build norangecheck

package blockvec

// RangeCheck reports whether element access validates indices.
const RangeCheck = false
