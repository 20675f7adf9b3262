package numeric

import "math"

// maxLevelSteps caps the moves made at one step size during a search.
// A correctly bracketed level needs at most ten.
const maxLevelSteps = 64

// monotonicSearch finds t with image(t) ≈ target for an increasing image.
// Starting from start it walks with step, step/10, step/100, ... for the
// given number of levels, reversing direction at every level. up selects the
// direction of the first level.
func monotonicSearch(image func(float64) float64, target, start, step float64, levels int, up bool) float64 {
	out := start
	for i := 0; i < levels; i++ {
		delta := step / pow10[i]
		if up {
			for n := 0; n < maxLevelSteps && image(out) < target; n++ {
				out += delta
			}
		} else {
			for n := 0; n < maxLevelSteps && image(out) > target; n++ {
				out -= delta
			}
		}
		up = !up
	}
	return out
}

// clamp continues an image that increases on [lo, hi] linearly past both
// ends, so a search that overshoots an endpoint turns back.
func clamp(image func(float64) float64, lo, hi float64) func(float64) float64 {
	low, high := image(lo), image(hi)
	return func(t float64) float64 {
		switch {
		case t <= lo:
			return low - (lo - t)
		case t >= hi:
			return high + (t - hi)
		}
		return image(t)
	}
}

var (
	sinImage    = clamp(Sin, -Pi/2, Pi/2)
	negCosImage = clamp(func(t float64) float64 { return -Cos(t) }, 0, Pi)
)

// Arcsin returns the angle in [−π/2, π/2] whose sine is x.
func Arcsin(x float64) float64 {
	if IsUndefined(x) || math.Abs(x) > 1 {
		return math.NaN()
	}
	// the search stalls where sin is flat
	if math.Abs(x) == 1 {
		return x * Pi / 2
	}
	return monotonicSearch(sinImage, x, -Pi/2, Pi/10, 15, true)
}

// Arccos returns the angle in [0, π] whose cosine is x.
func Arccos(x float64) float64 {
	if IsUndefined(x) || math.Abs(x) > 1 {
		return math.NaN()
	}
	switch x {
	case 1:
		return 0
	case -1:
		return Pi
	}
	return monotonicSearch(negCosImage, -x, 0, Pi/10, 15, true)
}

// tanCeiling stands in for tan at the vertical asymptote.
var tanCeiling = Tan(Pi/2 - 1e-15)

func boundedTan(t float64) float64 {
	if math.Abs(t) >= Pi/2 {
		return math.Copysign(tanCeiling, t)
	}
	v := Tan(t)
	if math.IsNaN(v) {
		return math.Copysign(tanCeiling, t)
	}
	return v
}

// Arctan returns the angle in (−π/2, π/2) whose tangent is x.
func Arctan(x float64) float64 {
	if IsUndefined(x) || math.Abs(x) >= tanCeiling {
		return math.NaN()
	}
	return monotonicSearch(boundedTan, x, 0, Pi/10, 15, x >= 0)
}
