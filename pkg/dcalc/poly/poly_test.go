package poly

import (
	"errors"
	"math"
	"testing"

	perrors "github.com/sambeau/dcalc/pkg/dcalc/errors"
)

const tol = 1e-9

func mustSolve(t *testing.T, coeffs ...float64) Solution {
	t.Helper()
	sol, err := Solve(coeffs...)
	if err != nil {
		t.Fatalf("Solve(%v) error: %v", coeffs, err)
	}
	if sol.Undetermined {
		t.Fatalf("Solve(%v) undetermined: %+v", coeffs, sol.Roots)
	}
	return sol
}

func checkRealRoots(t *testing.T, sol Solution, want ...float64) {
	t.Helper()
	got := sol.RealRoots()
	if len(got) != len(want) {
		t.Fatalf("real roots = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("real roots = %v, want %v", got, want)
			return
		}
	}
}

func pairs(sol Solution) []Root {
	var out []Root
	for _, r := range sol.Roots {
		if r.Kind == ComplexPair {
			out = append(out, r)
		}
	}
	return out
}

func TestLinear(t *testing.T) {
	sol := mustSolve(t, 2, -4)
	checkRealRoots(t, sol, 2)
	if sol.Shape.F0 != -4 || len(sol.Shape.Increasing) != 1 {
		t.Errorf("shape = %+v", sol.Shape)
	}
}

func TestQuadratic(t *testing.T) {
	t.Run("two real roots", func(t *testing.T) {
		sol := mustSolve(t, 1, 0, -4)
		checkRealRoots(t, sol, -2, 2)
		if len(sol.Shape.Minima) != 1 || sol.Shape.Minima[0] != (Point{0, -4}) {
			t.Errorf("minima = %v", sol.Shape.Minima)
		}
		if sol.Shape.Range.Lo != -4 || !math.IsInf(sol.Shape.Range.Hi, 1) {
			t.Errorf("range = %+v", sol.Shape.Range)
		}
	})

	t.Run("complex pair", func(t *testing.T) {
		sol := mustSolve(t, 1, 0, 4)
		p := pairs(sol)
		if len(p) != 1 || p[0].Re != 0 || math.Abs(p[0].Im-2) > tol {
			t.Errorf("roots = %+v, want ±2i", sol.Roots)
		}
	})

	t.Run("repeated root", func(t *testing.T) {
		sol := mustSolve(t, 1, -2, 1)
		if len(sol.Roots) != 1 || sol.Roots[0].Re != 1 || sol.Roots[0].Multiplicity != 2 {
			t.Errorf("roots = %+v", sol.Roots)
		}
	})

	t.Run("downward", func(t *testing.T) {
		sol := mustSolve(t, -1, 2, 3)
		if len(sol.Shape.Maxima) != 1 || sol.Shape.Maxima[0] != (Point{1, 4}) {
			t.Errorf("maxima = %v", sol.Shape.Maxima)
		}
	})
}

func TestCubic(t *testing.T) {
	t.Run("one real root and a pair", func(t *testing.T) {
		sol := mustSolve(t, 1, 0, 0, -8)
		checkRealRoots(t, sol, 2)
		p := pairs(sol)
		if len(p) != 1 || math.Abs(p[0].Re+1) > tol || math.Abs(p[0].Im-math.Sqrt(3)) > tol {
			t.Errorf("pair = %+v, want -1±1.732i", p)
		}
	})

	t.Run("three real roots", func(t *testing.T) {
		sol := mustSolve(t, 1, -6, 11, -6)
		checkRealRoots(t, sol, 1, 2, 3)
	})

	t.Run("triple root", func(t *testing.T) {
		sol := mustSolve(t, 1, -3, 3, -1)
		if len(sol.Roots) != 1 || math.Abs(sol.Roots[0].Re-1) > tol || sol.Roots[0].Multiplicity != 3 {
			t.Errorf("roots = %+v", sol.Roots)
		}
	})

	t.Run("double root", func(t *testing.T) {
		sol := mustSolve(t, 1, 0, -3, 2)
		checkRealRoots(t, sol, -2, 1)
		for _, r := range sol.Roots {
			if math.Abs(r.Re-1) < tol && r.Multiplicity != 2 {
				t.Errorf("x=1 multiplicity = %d, want 2", r.Multiplicity)
			}
		}
	})

	t.Run("shape", func(t *testing.T) {
		sol := mustSolve(t, 1, 0, -3, 0)
		s := sol.Shape
		if len(s.Maxima) != 1 || math.Abs(s.Maxima[0].X+1) > tol || math.Abs(s.Maxima[0].Y-2) > tol {
			t.Errorf("maxima = %v", s.Maxima)
		}
		if len(s.Minima) != 1 || math.Abs(s.Minima[0].X-1) > tol {
			t.Errorf("minima = %v", s.Minima)
		}
		if len(s.Inflections) != 1 || s.Inflections[0].X != 0 {
			t.Errorf("inflections = %v", s.Inflections)
		}
	})
}

func TestQuartic(t *testing.T) {
	t.Run("biquadratic four real roots", func(t *testing.T) {
		sol := mustSolve(t, 1, 0, -5, 0, 4)
		checkRealRoots(t, sol, -2, -1, 1, 2)
	})

	t.Run("two real two complex", func(t *testing.T) {
		sol := mustSolve(t, 1, 0, 0, 0, -16)
		checkRealRoots(t, sol, -2, 2)
		p := pairs(sol)
		if len(p) != 1 || math.Abs(p[0].Re) > tol || math.Abs(p[0].Im-2) > tol {
			t.Errorf("pair = %+v, want ±2i", p)
		}
	})

	t.Run("quadruple root", func(t *testing.T) {
		sol := mustSolve(t, 1, -4, 6, -4, 1)
		if len(sol.Roots) != 1 || sol.Roots[0].Re != 1 || sol.Roots[0].Multiplicity != 4 {
			t.Errorf("roots = %+v", sol.Roots)
		}
	})

	t.Run("general four real roots", func(t *testing.T) {
		// (x-1)(x-2)(x-3)(x-4)
		sol := mustSolve(t, 1, -10, 35, -50, 24)
		checkRealRoots(t, sol, 1, 2, 3, 4)
	})

	t.Run("roots satisfy the polynomial", func(t *testing.T) {
		coeffs := []float64{2, -3, -11, 3, 1}
		sol := mustSolve(t, coeffs...)
		for _, x := range sol.RealRoots() {
			if v := Eval(coeffs, x); math.Abs(v) > 1e-7 {
				t.Errorf("f(%g) = %g", x, v)
			}
		}
	})

	t.Run("shape", func(t *testing.T) {
		sol := mustSolve(t, 1, 0, -5, 0, 4)
		s := sol.Shape
		if len(s.Minima) != 2 || len(s.Maxima) != 1 {
			t.Fatalf("extrema = %v / %v", s.Minima, s.Maxima)
		}
		if math.Abs(s.Maxima[0].X) > tol || math.Abs(s.Maxima[0].Y-4) > tol {
			t.Errorf("maximum = %v, want (0, 4)", s.Maxima[0])
		}
		if math.Abs(s.Minima[0].X+math.Sqrt(2.5)) > tol {
			t.Errorf("first minimum = %v", s.Minima[0])
		}
		if math.Abs(s.Range.Lo-(-2.25)) > tol {
			t.Errorf("range = %+v, want [-2.25, +Inf)", s.Range)
		}
		if len(s.Inflections) != 2 {
			t.Errorf("inflections = %v", s.Inflections)
		}
	})

	t.Run("repeated stationary point", func(t *testing.T) {
		// f' = 4x³ has a triple root at 0
		sol := mustSolve(t, 1, 0, 0, 0, 0)
		if len(sol.Shape.Minima) != 1 || sol.Shape.Minima[0].X != 0 {
			t.Errorf("minima = %v", sol.Shape.Minima)
		}
	})
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		code   string
	}{
		{"too few", []float64{1}, "ARG-0001"},
		{"too many", []float64{1, 2, 3, 4, 5, 6}, "ARG-0001"},
		{"zero leading", []float64{0, 1, 2}, "ARG-0002"},
		{"nan coefficient", []float64{1, math.NaN()}, "DOMAIN-0001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.coeffs...)
			var ce *perrors.CalcError
			if !errors.As(err, &ce) || ce.Code != tt.code {
				t.Errorf("Solve(%v) error = %v, want %s", tt.coeffs, err, tt.code)
			}
		})
	}
}
