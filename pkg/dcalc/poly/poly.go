// Package poly solves polynomials of degree one to four in closed form and
// reports the shape of their graphs.
//
// Coefficients are given highest degree first. Root finding follows the
// invariant/discriminant branches of the classical formulas; float
// comparisons against zero are exact, so the branch taken decides how many
// roots are real.
package poly

import (
	"math"
	"sort"

	perrors "github.com/sambeau/dcalc/pkg/dcalc/errors"
	"github.com/sambeau/dcalc/pkg/dcalc/numeric"
)

// Kind tags a root as real or as one member of a conjugate pair.
type Kind int

const (
	Real        Kind = iota
	ComplexPair      // Re ± Im·i
)

// Root is a real root or a conjugate pair with its multiplicity.
type Root struct {
	Kind         Kind
	Re           float64
	Im           float64 // non-negative for pairs, 0 for real roots
	Multiplicity int
}

func realRoot(x float64, mult int) Root {
	return Root{Kind: Real, Re: x, Multiplicity: mult}
}

func pairRoot(re, im float64, mult int) Root {
	return Root{Kind: ComplexPair, Re: re, Im: math.Abs(im), Multiplicity: mult}
}

// IsUndefined reports whether the root carries a NaN component.
func (r Root) IsUndefined() bool {
	return numeric.IsUndefined(r.Re) || numeric.IsUndefined(r.Im)
}

// Interval is an open interval; infinite ends are ±Inf.
type Interval struct {
	Lo, Hi float64
}

// Whole is the real line.
var Whole = Interval{math.Inf(-1), math.Inf(1)}

// Point is a point on the graph.
type Point struct {
	X, Y float64
}

// Shape describes the graph of the polynomial.
type Shape struct {
	F0          float64
	Maxima      []Point
	Minima      []Point
	Range       Interval // closed at finite ends
	Increasing  []Interval
	Decreasing  []Interval
	Inflections []Point
	ConcaveUp   []Interval
	ConcaveDown []Interval
}

// Solution is the result of solving one polynomial.
type Solution struct {
	Coefficients []float64
	Roots        []Root
	// Undetermined is set when no closed-form branch applies or a branch
	// produced an undefined value.
	Undetermined bool
	Shape        Shape
}

// Degree returns the polynomial degree.
func (s Solution) Degree() int {
	return len(s.Coefficients) - 1
}

// RealRoots returns the real roots in ascending order.
func (s Solution) RealRoots() []float64 {
	var out []float64
	for _, r := range s.Roots {
		if r.Kind == Real {
			out = append(out, r.Re)
		}
	}
	sort.Float64s(out)
	return out
}

// Eval evaluates the polynomial at x by Horner's rule.
func Eval(coeffs []float64, x float64) float64 {
	out := 0.0
	for _, c := range coeffs {
		out = out*x + c
	}
	return out
}

// Solve dispatches on the number of coefficients (2 to 5).
func Solve(coeffs ...float64) (Solution, error) {
	degree := len(coeffs) - 1
	if degree < 1 || degree > 4 {
		return Solution{}, perrors.New("ARG-0001", map[string]any{
			"Command": "solve",
			"Want":    "2 to 5 coefficients",
			"Got":     len(coeffs),
			"Usage":   "solve a b [c [d [f]]]",
		})
	}
	for _, c := range coeffs {
		if numeric.IsUndefined(c) {
			return Solution{}, perrors.New("DOMAIN-0001", map[string]any{"What": "a coefficient"})
		}
	}
	if coeffs[0] == 0 {
		return Solution{}, perrors.New("ARG-0002", map[string]any{"Degree": degree})
	}

	sol := Solution{Coefficients: append([]float64(nil), coeffs...)}
	switch degree {
	case 1:
		sol.Roots = []Root{realRoot(-coeffs[1]/coeffs[0], 1)}
		sol.Shape = linearShape(coeffs[0], coeffs[1])
	case 2:
		sol.Roots = quadraticRoots(coeffs[0], coeffs[1], coeffs[2])
		sol.Shape = quadraticShape(coeffs[0], coeffs[1], coeffs[2])
	case 3:
		sol.Roots = cubicRoots(coeffs[0], coeffs[1], coeffs[2], coeffs[3])
		sol.Shape = cubicShape(coeffs[0], coeffs[1], coeffs[2], coeffs[3])
	case 4:
		sol.Roots = quarticRoots(coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4])
		sol.Shape = quarticShape(coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4])
	}

	if len(sol.Roots) == 0 {
		sol.Undetermined = true
	}
	for _, r := range sol.Roots {
		if r.IsUndefined() {
			sol.Undetermined = true
		}
	}
	return sol, nil
}
