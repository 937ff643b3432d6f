//go:build !norangecheck

package blockvec

// RangeCheck reports whether element access validates indices. Build with
// the norangecheck tag to disable it.
const RangeCheck = true
