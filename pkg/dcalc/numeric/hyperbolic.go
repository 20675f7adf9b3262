package numeric

import "math"

// Sinh returns (e^x − e^−x)/2.
func Sinh(x float64) float64 {
	if IsUndefined(x) {
		return math.NaN()
	}
	return sentinel((exp(x) - exp(-x)) / 2)
}

// Cosh returns (e^x + e^−x)/2.
func Cosh(x float64) float64 {
	if IsUndefined(x) {
		return math.NaN()
	}
	return sentinel((exp(x) + exp(-x)) / 2)
}

// Tanh returns sinh(x)/cosh(x), evaluated through e^−2|x| so large
// arguments saturate at ±1.
func Tanh(x float64) float64 {
	if IsUndefined(x) {
		return math.NaN()
	}
	t := exp(-2 * math.Abs(x))
	return Sgn(x) * (1 - t) / (1 + t)
}

// Arsinh returns ln(x + √(x²+1)), using odd symmetry for negative x.
func Arsinh(x float64) float64 {
	if IsUndefined(x) {
		return math.NaN()
	}
	ax := math.Abs(x)
	return Sgn(x) * lnWide(ax+Sqrt(ax*ax+1))
}

// Arcosh returns ln(x + √(x²−1)) for x ≥ 1.
func Arcosh(x float64) float64 {
	if IsUndefined(x) || x < 1 {
		return math.NaN()
	}
	return lnWide(x + Sqrt(x*x-1))
}

// Artanh returns ½·ln((1+x)/(1−x)) for |x| < 1.
func Artanh(x float64) float64 {
	if IsUndefined(x) || math.Abs(x) >= 1 {
		return math.NaN()
	}
	return 0.5 * Ln((1+x)/(1-x))
}
