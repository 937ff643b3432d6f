package specfunc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain is returned for arguments below the branch point -1/e, and
	// for NaN.
	ErrDomain = errors.New("specfunc: argument outside domain")

	// ErrMaxIter is returned when the iteration does not converge within
	// MaxIterations steps. The returned Result holds the last iterate.
	ErrMaxIter = errors.New("specfunc: maximum iterations exceeded")
)

// MaxIterations bounds the Halley refinement of both Lambert W branches.
const MaxIterations = 32

// Result is a function value together with an absolute error estimate.
type Result struct {
	Val float64
	Err float64
}

const (
	oneOverE = 1 / math.E
	eps      = 2.220446049250313e-16

	smallestNormal = 0x1p-1022
)

// LambertW0 returns the principal branch W0(x) of the solution of
// w*exp(w) = x, for x >= -1/e. It returns NaN on error.
func LambertW0(x float64) float64 {
	r, err := LambertW0E(x)
	if err != nil {
		return math.NaN()
	}
	return r.Val
}

// LambertWm1 returns the lower branch W-1(x) of the solution of
// w*exp(w) = x. It agrees with W0 for x >= 0. It returns NaN on error.
func LambertWm1(x float64) float64 {
	r, err := LambertWm1E(x)
	if err != nil {
		return math.NaN()
	}
	return r.Val
}

// LambertW0E computes W0(x) with an error estimate.
func LambertW0E(x float64) (Result, error) {
	q := x + oneOverE

	switch {
	case math.IsNaN(x):
		return Result{Val: math.NaN(), Err: math.NaN()}, fmt.Errorf("%w: x=NaN", ErrDomain)
	case x == 0:
		return Result{}, nil
	case math.IsInf(x, 1):
		return Result{Val: math.Inf(1)}, nil
	case q < 0:
		return Result{Val: -1, Err: math.Sqrt(-q)}, fmt.Errorf("%w: x=%g < -1/e", ErrDomain, x)
	case q == 0:
		return Result{Val: -1}, nil
	case q < 1e-3:
		w := branchSeries(math.Sqrt(q))
		return Result{Val: w, Err: 2 * eps * math.Abs(w)}, nil
	}

	var w float64
	if x < 1 {
		p := math.Sqrt(2 * math.E * q)
		w = -1 + p*(1+p*(-1.0/3+p*11.0/72))
	} else {
		w = math.Log(x)
		if x > 3 {
			w -= math.Log(w)
		}
	}
	return halley(x, w)
}

// LambertWm1E computes W-1(x) with an error estimate.
//
// As x approaches 0 from below W-1 diverges to -Inf; at x == 0 the
// function returns 0, matching W0.
func LambertWm1E(x float64) (Result, error) {
	if x >= 0 || math.IsNaN(x) {
		return LambertW0E(x)
	}

	q := x + oneOverE

	switch {
	case q < 0:
		return Result{Val: -1, Err: math.Sqrt(-q)}, fmt.Errorf("%w: x=%g < -1/e", ErrDomain, x)
	case q == 0:
		return Result{Val: -1}, nil
	}

	var w float64
	if x < -1e-6 {
		// Series about the branch point; Halley converges poorly for tiny
		// q because the increment alternates in sign.
		w = branchSeries(-math.Sqrt(q))
		if q < 3e-3 {
			return Result{Val: w, Err: 5 * eps * math.Abs(w)}, nil
		}
	} else {
		l1 := math.Log(-x)
		l2 := math.Log(-l1)
		w = l1 - l2 + l2/l1
		if x > -smallestNormal {
			return logNewton(x, w)
		}
	}
	return halley(x, w)
}

// branchSeries evaluates the expansion of W about x = -1/e in
// r = ±sqrt(x + 1/e).
func branchSeries(r float64) float64 {
	const (
		c0  = -1.0
		c1  = 2.331643981597124203363536062168
		c2  = -1.812187885639363490240191647568
		c3  = 1.936631114492359755363277457668
		c4  = -2.353551201881614516821543561516
		c5  = 3.066858901050631912893148922704
		c6  = -4.175335600258177138854984177460
		c7  = 5.858023729874774148815053846119
		c8  = -8.401032217523977370984161688514
		c9  = 12.250753501314460424
		c10 = -18.100697012472442755
		c11 = 27.029044799010561650
	)
	t8 := c8 + r*(c9+r*(c10+r*c11))
	t5 := c5 + r*(c6+r*(c7+r*t8))
	t1 := c1 + r*(c2+r*(c3+r*(c4+r*t5)))
	return c0 + r*t1
}

// halley refines w toward the root of w*exp(w) - x. Positive iterates use
// a Newton step, taken on the logarithm of the equation for x > 1 where
// w*exp(w) can overflow.
func halley(x, w float64) (Result, error) {
	for i := 0; i < MaxIterations; i++ {
		e := math.Exp(w)
		p := w + 1
		var t float64
		switch {
		case w > 0 && x > 1:
			t = logStep(x, w)
		case w > 0:
			t = ((w*e - x) / p) / e
		default:
			t = w*e - x
			t /= e*p - 0.5*(p+1)*t/p
		}
		w -= t

		tol := 10 * eps * math.Max(math.Abs(w), 1/(math.Abs(p)*e))
		if math.Abs(t) < tol {
			return Result{Val: w, Err: 2 * tol}, nil
		}
	}
	return Result{Val: w, Err: math.Abs(w)}, fmt.Errorf("%w: x=%g", ErrMaxIter, x)
}

// logNewton solves w + log|w| = log|x| by Newton iteration. It serves
// W-1 for subnormal x, where exp(w) has lost its precision.
func logNewton(x, w float64) (Result, error) {
	for i := 0; i < MaxIterations; i++ {
		t := logStep(x, w)
		w -= t

		tol := 10 * eps * math.Abs(w)
		if math.Abs(t) < tol {
			return Result{Val: w, Err: 2 * tol}, nil
		}
	}
	return Result{Val: w, Err: math.Abs(w)}, fmt.Errorf("%w: x=%g", ErrMaxIter, x)
}

// logStep is the Newton step for f(w) = w + log|w| - log|x|, with w and x
// of equal sign.
func logStep(x, w float64) float64 {
	f := w + math.Log(math.Abs(w)) - math.Log(math.Abs(x))
	return f * w / (w + 1)
}
