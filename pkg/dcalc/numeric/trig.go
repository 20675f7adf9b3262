package numeric

import "math"

// angleCeiling is the largest angle magnitude accepted by reduction.
const angleCeiling = 1e10

// seriesTerms is the number of power-series terms used for sin and cos.
const seriesTerms = 16

// Reduce maps an angle into (−π, π]. Magnitudes above 10^10 are undefined.
func Reduce(x float64) float64 {
	if IsUndefined(x) || math.Abs(x) > angleCeiling {
		return math.NaN()
	}
	twoPi := 2 * Pi
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	if x > Pi {
		x -= twoPi
	}
	if x < -Pi {
		x += twoPi
	}
	return x
}

func sinSeries(r float64) float64 {
	sum, term := r, r
	for i := 1; i < seriesTerms; i++ {
		term *= -r * r / float64((2*i)*(2*i+1))
		sum += term
	}
	return sum
}

func cosSeries(r float64) float64 {
	sum, term := 1.0, 1.0
	for i := 1; i < seriesTerms; i++ {
		term *= -r * r / float64((2*i-1)*(2*i))
		sum += term
	}
	return sum
}

// Sin returns the sine of x in radians.
func Sin(x float64) float64 {
	sign := Sgn(x)
	r := Reduce(math.Abs(x))
	if math.IsNaN(r) {
		return math.NaN()
	}
	if r == 0 || math.Abs(r) == Pi {
		return 0
	}
	out := math.Min(math.Abs(sinSeries(r)), 1)
	if r < 0 {
		out = -out
	}
	return out * sign
}

// Cos returns the cosine of x in radians.
func Cos(x float64) float64 {
	r := Reduce(math.Abs(x))
	if math.IsNaN(r) {
		return math.NaN()
	}
	r = math.Abs(r)
	if r == Pi/2 {
		return 0
	}
	out := math.Min(math.Abs(cosSeries(r)), 1)
	if r > Pi/2 {
		out = -out
	}
	return out
}

// Tan returns sin(x)/cos(x); undefined where the cosine is exactly zero.
func Tan(x float64) float64 {
	s, c := Sin(x), Cos(x)
	if math.IsNaN(s) || math.IsNaN(c) || c == 0 {
		return math.NaN()
	}
	return s / c
}
