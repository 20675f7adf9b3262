// Package numeric implements the calculator's elementary function library.
//
// Every function is built from power series, bounded monotonic searches or
// closed forms over those; nothing here calls a transcendental primitive of
// the math package. Domain violations return NaN instead of failing, and NaN
// propagates through every function. Overflow to ±Inf is folded into NaN at
// the exported boundary.
package numeric

import "math"

// NaN returns the domain-error sentinel.
func NaN() float64 {
	return math.NaN()
}

// IsUndefined reports whether x is the NaN sentinel or an infinity.
func IsUndefined(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// anyUndefined reports whether any argument is undefined.
func anyUndefined(xs ...float64) bool {
	for _, x := range xs {
		if IsUndefined(x) {
			return true
		}
	}
	return false
}

// sentinel folds infinities into NaN.
func sentinel(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.NaN()
	}
	return x
}

// pow10 holds exact powers of ten 10^0 .. 10^22.
var pow10 = func() [23]float64 {
	var t [23]float64
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 10
	}
	return t
}()

// Round rounds x to the given number of decimal places, half away from zero.
// Values too large to carry that many places are returned unchanged.
func Round(x float64, places int) float64 {
	if IsUndefined(x) || places < 0 || places >= len(pow10) {
		return x
	}
	p := pow10[places]
	if math.Abs(x)*p >= 1<<53 {
		return x
	}
	return math.Round(x*p) / p
}

// IsWhole reports whether x is a finite integer value.
func IsWhole(x float64) bool {
	return !IsUndefined(x) && x == math.Trunc(x)
}

// Abs returns |x|.
func Abs(x float64) float64 {
	return math.Abs(x)
}

// Sgn returns -1, 0 or 1 according to the sign of x.
func Sgn(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Sqrt returns the square root of x by Newton iteration from a
// power-of-two first guess. Negative input is a domain error.
func Sqrt(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return math.NaN()
	case x == 0 || math.IsInf(x, 1):
		return x
	}
	_, exp := math.Frexp(x)
	g := math.Ldexp(1, exp/2)
	for range 12 {
		g = (g + x/g) / 2
	}
	return g
}

// intPow raises base to an integer power by binary exponentiation.
func intPow(base float64, n int) float64 {
	if n < 0 {
		return 1 / intPow(base, -n)
	}
	out := 1.0
	for n > 0 {
		if n&1 == 1 {
			out *= base
		}
		base *= base
		n >>= 1
	}
	return out
}
