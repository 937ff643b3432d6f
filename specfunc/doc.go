// Package specfunc provides special functions on float64.
//
// Each function comes in two forms: a plain form returning the value (NaN
// on failure) and an E form returning a Result with an absolute error
// estimate and an error wrapping ErrDomain or ErrMaxIter.
//
//	w := specfunc.LambertW0(1)             // 0.5671432904097838
//	r, err := specfunc.LambertWm1E(-0.1)   // r.Val ≈ -3.5771520639573
package specfunc
