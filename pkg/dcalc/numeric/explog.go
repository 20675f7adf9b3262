package numeric

import "math"

// exp returns e^x as E^⌊x⌋ · e^f with the fraction f taken from the Taylor
// series. Overflow yields +Inf, underflow 0.
func exp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x > 709.79:
		return math.Inf(1)
	case x < -745.2:
		return 0
	}
	n := math.Floor(x)
	f := x - n

	sum, term := 1.0, 1.0
	for k := 1; k < 25; k++ {
		term *= f / float64(k)
		sum += term
	}
	return intPow(E, int(n)) * sum
}

// Exp returns e^x.
func Exp(x float64) float64 {
	return sentinel(exp(x))
}

// lnCeiling is e^600; logarithms are only searched below it.
var lnCeiling = exp(600)

// Ln returns the natural logarithm of x for 0 < x < e^600.
func Ln(x float64) float64 {
	if IsUndefined(x) || x <= 0 || x >= lnCeiling {
		return math.NaN()
	}
	return monotonicSearch(exp, x, -600, 100, 16, true)
}

var ln2 = Ln(2)

// lnWide extends Ln to every positive finite x by splitting off the binary
// exponent.
func lnWide(x float64) float64 {
	if IsUndefined(x) || x <= 0 {
		return math.NaN()
	}
	m, k := math.Frexp(x)
	return Ln(m) + float64(k)*ln2
}

// Lg returns the base-10 logarithm of x.
func Lg(x float64) float64 {
	return Ln(x) / Ln(10)
}

// Log returns the logarithm of value in the given base.
func Log(base, value float64) float64 {
	if anyUndefined(base, value) || base == 1 || base <= 0 || value <= 0 {
		return math.NaN()
	}
	return Ln(value) / Ln(base)
}
