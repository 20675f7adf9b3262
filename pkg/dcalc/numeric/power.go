package numeric

import "math"

// periodicityTrials caps the negative-base search in Pow.
const periodicityTrials = 200000

// Pow returns x^n over the reals.
//
// A negative base with a fractional exponent is real only for some
// exponents. Pow searches k = 0, 1, 2, ... for a rotation nπ + 2nkπ whose
// sine rounds to zero at 10 places; the cosine's sign then signs the result.
// The search gives up (NaN) once n·k rounds to an integer or after 2·10^5
// trials.
func Pow(x, n float64) float64 {
	if anyUndefined(x, n) || (x == 0 && n <= 0) {
		return math.NaN()
	}
	switch {
	case x > 0:
		return positivePow(x, n)
	case x == 0:
		return 0
	}

	sign := 0.0
	for k := 0; ; k++ {
		fk := float64(k)
		if k != 0 && IsWhole(Round(n*fk, 10)) {
			break
		}
		if k >= periodicityTrials {
			break
		}
		phase := n*Pi + 2*n*fk*Pi
		if Round(Sin(phase), 10) == 0 {
			sign = Sgn(Cos(phase))
			break
		}
	}
	if sign == 0 || math.IsNaN(sign) {
		return math.NaN()
	}
	return sign * positivePow(-x, n)
}

// positivePow returns x^n for x > 0.
func positivePow(x, n float64) float64 {
	switch {
	case n == 0:
		return 1
	case IsWhole(n) && math.Abs(n) <= 1<<20:
		return sentinel(intPow(x, int(n)))
	case n == 0.5:
		return Sqrt(x)
	}
	return sentinel(exp(n * lnWide(x)))
}

// Cbrt returns the real cube root of x.
func Cbrt(x float64) float64 {
	return Pow(x, 1.0/3)
}
