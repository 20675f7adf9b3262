package poly

import (
	"math"
	"sort"
)

func linearShape(a, b float64) Shape {
	s := Shape{F0: b, Range: Whole}
	if a > 0 {
		s.Increasing = []Interval{Whole}
	} else {
		s.Decreasing = []Interval{Whole}
	}
	return s
}

func quadraticShape(a, b, c float64) Shape {
	v := Point{X: -b / (2 * a), Y: (4*a*c - b*b) / (4 * a)}
	s := Shape{F0: c}
	left, right := Interval{math.Inf(-1), v.X}, Interval{v.X, math.Inf(1)}
	if a > 0 {
		s.Minima = []Point{v}
		s.Range = Interval{v.Y, math.Inf(1)}
		s.Decreasing, s.Increasing = []Interval{left}, []Interval{right}
		s.ConcaveUp = []Interval{Whole}
	} else {
		s.Maxima = []Point{v}
		s.Range = Interval{math.Inf(-1), v.Y}
		s.Increasing, s.Decreasing = []Interval{left}, []Interval{right}
		s.ConcaveDown = []Interval{Whole}
	}
	return s
}

func cubicShape(a, b, c, d float64) Shape {
	coeffs := []float64{a, b, c, d}
	s := Shape{F0: d, Range: Whole}

	crit := distinctReal(quadraticRoots(3*a, 2*b, c))
	if len(crit) == 2 {
		lo := point(coeffs, crit[0])
		hi := point(coeffs, crit[1])
		outer := []Interval{{math.Inf(-1), crit[0]}, {crit[1], math.Inf(1)}}
		middle := []Interval{{crit[0], crit[1]}}
		if a > 0 {
			s.Maxima, s.Minima = []Point{lo}, []Point{hi}
			s.Increasing, s.Decreasing = outer, middle
		} else {
			s.Minima, s.Maxima = []Point{lo}, []Point{hi}
			s.Decreasing, s.Increasing = outer, middle
		}
	} else if a > 0 {
		s.Increasing = []Interval{Whole}
	} else {
		s.Decreasing = []Interval{Whole}
	}

	ip := point(coeffs, -b/(3*a))
	s.Inflections = []Point{ip}
	left, right := []Interval{{math.Inf(-1), ip.X}}, []Interval{{ip.X, math.Inf(1)}}
	if a > 0 {
		s.ConcaveDown, s.ConcaveUp = left, right
	} else {
		s.ConcaveUp, s.ConcaveDown = left, right
	}
	return s
}

func quarticShape(a, b, c, d, f float64) Shape {
	coeffs := []float64{a, b, c, d, f}
	s := Shape{F0: f}

	// extrema are the stationary points where f' changes sign
	var crit []float64
	for _, r := range cubicRoots(4*a, 3*b, 2*c, d) {
		if r.Kind == Real && r.Multiplicity%2 == 1 && !r.IsUndefined() {
			crit = append(crit, r.Re)
		}
	}
	sort.Float64s(crit)

	switch len(crit) {
	case 1:
		p := point(coeffs, crit[0])
		left, right := []Interval{{math.Inf(-1), p.X}}, []Interval{{p.X, math.Inf(1)}}
		if a > 0 {
			s.Minima = []Point{p}
			s.Range = Interval{p.Y, math.Inf(1)}
			s.Decreasing, s.Increasing = left, right
		} else {
			s.Maxima = []Point{p}
			s.Range = Interval{math.Inf(-1), p.Y}
			s.Increasing, s.Decreasing = left, right
		}
	case 3:
		p0, p1, p2 := point(coeffs, crit[0]), point(coeffs, crit[1]), point(coeffs, crit[2])
		firstAndThird := []Interval{{math.Inf(-1), p0.X}, {p1.X, p2.X}}
		secondAndFourth := []Interval{{p0.X, p1.X}, {p2.X, math.Inf(1)}}
		if a > 0 {
			s.Minima, s.Maxima = []Point{p0, p2}, []Point{p1}
			s.Range = Interval{math.Min(p0.Y, p2.Y), math.Inf(1)}
			s.Decreasing, s.Increasing = firstAndThird, secondAndFourth
		} else {
			s.Maxima, s.Minima = []Point{p0, p2}, []Point{p1}
			s.Range = Interval{math.Inf(-1), math.Max(p0.Y, p2.Y)}
			s.Increasing, s.Decreasing = firstAndThird, secondAndFourth
		}
	default:
		s.Range = Interval{math.NaN(), math.NaN()}
	}

	infl := distinctReal(quadraticRoots(12*a, 6*b, 2*c))
	if len(infl) == 2 {
		s.Inflections = []Point{point(coeffs, infl[0]), point(coeffs, infl[1])}
		outer := []Interval{{math.Inf(-1), infl[0]}, {infl[1], math.Inf(1)}}
		middle := []Interval{{infl[0], infl[1]}}
		if a > 0 {
			s.ConcaveUp, s.ConcaveDown = outer, middle
		} else {
			s.ConcaveDown, s.ConcaveUp = outer, middle
		}
	} else if a > 0 {
		s.ConcaveUp = []Interval{Whole}
	} else {
		s.ConcaveDown = []Interval{Whole}
	}
	return s
}

// distinctReal returns the simple real roots in ascending order.
func distinctReal(roots []Root) []float64 {
	var out []float64
	for _, r := range roots {
		if r.Kind == Real && r.Multiplicity == 1 {
			out = append(out, r.Re)
		}
	}
	sort.Float64s(out)
	return out
}

func point(coeffs []float64, x float64) Point {
	return Point{X: x, Y: Eval(coeffs, x)}
}
