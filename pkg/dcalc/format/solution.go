package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/sambeau/dcalc/pkg/dcalc/cplx"
	"github.com/sambeau/dcalc/pkg/dcalc/poly"
	"github.com/sambeau/dcalc/pkg/dcalc/settings"
)

const none = "none"

// Polynomial renders coefficients, highest degree first, as y=f(x)=...
func Polynomial(coeffs []float64, s settings.Settings) string {
	var sb strings.Builder
	sb.WriteString("y=f(x)=")
	degree := len(coeffs) - 1
	wrote := false
	for i, c := range coeffs {
		if Rounded(c, s) == 0 {
			continue
		}
		power := degree - i
		text := Number(c, s)
		if power > 0 {
			switch text {
			case "1":
				text = ""
			case "-1":
				text = "-"
			}
			if strings.Contains(text, "*10^") {
				text = "(" + text + ")"
			}
			text += "x"
			if power > 1 {
				text += "^" + strconv.Itoa(power)
			}
		}
		if wrote && !strings.HasPrefix(text, "-") {
			sb.WriteByte('+')
		}
		sb.WriteString(text)
		wrote = true
	}
	if !wrote {
		sb.WriteByte('0')
	}
	return sb.String()
}

// Interval renders an open interval; the whole line prints as R.
func Interval(iv poly.Interval, s settings.Settings) string {
	if math.IsInf(iv.Lo, -1) && math.IsInf(iv.Hi, 1) {
		return "R"
	}
	return "(" + bound(iv.Lo, s) + "," + bound(iv.Hi, s) + ")"
}

// Range renders the range of the function, closed at finite ends.
func Range(iv poly.Interval, s settings.Settings) string {
	if math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) {
		return MathError
	}
	if math.IsInf(iv.Lo, -1) && math.IsInf(iv.Hi, 1) {
		return "R"
	}
	open, closeBr := "(", ")"
	if !math.IsInf(iv.Lo, 0) {
		open = "["
	}
	if !math.IsInf(iv.Hi, 0) {
		closeBr = "]"
	}
	return open + bound(iv.Lo, s) + "," + bound(iv.Hi, s) + closeBr
}

func bound(x float64, s settings.Settings) string {
	switch {
	case math.IsInf(x, -1):
		return "-∞"
	case math.IsInf(x, 1):
		return "+∞"
	}
	return Number(x, s)
}

func intervals(ivs []poly.Interval, s settings.Settings) string {
	if len(ivs) == 0 {
		return none
	}
	parts := make([]string, len(ivs))
	for i, iv := range ivs {
		parts[i] = Interval(iv, s)
	}
	return strings.Join(parts, " ∪ ")
}

func points(ps []poly.Point, s settings.Settings) string {
	if len(ps) == 0 {
		return none
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = "(" + Number(p.X, s) + "," + Number(p.Y, s) + ")"
	}
	return strings.Join(parts, ", ")
}

// Roots renders the roots joined by ∨. Conjugate pairs are listed only when
// the settings ask for complex roots.
func Roots(sol poly.Solution, s settings.Settings) string {
	if sol.Undetermined {
		return MathError
	}
	var parts []string
	for _, r := range sol.Roots {
		var values []string
		if r.Kind == poly.Real {
			values = []string{Number(r.Re, s)}
		} else if s.ShowComplexRoots {
			values = []string{
				Complex(cplx.Rect{Re: r.Re, Im: r.Im}, s),
				Complex(cplx.Rect{Re: r.Re, Im: -r.Im}, s),
			}
		}
		for _, v := range values {
			text := "x=" + v
			if r.Multiplicity > 1 {
				text += " (×" + strconv.Itoa(r.Multiplicity) + ")"
			}
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "no real roots"
	}
	return strings.Join(parts, " ∨ ")
}

// Solution renders the polynomial, its shape and its roots, one fact per line.
func Solution(sol poly.Solution, s settings.Settings) string {
	sh := sol.Shape
	lines := []string{
		Polynomial(sol.Coefficients, s),
		"Domain: R",
		"Range: " + Range(sh.Range, s),
		"Increasing: " + intervals(sh.Increasing, s),
		"Decreasing: " + intervals(sh.Decreasing, s),
		"Concave up: " + intervals(sh.ConcaveUp, s),
		"Concave down: " + intervals(sh.ConcaveDown, s),
		"Maxima: " + points(sh.Maxima, s),
		"Minima: " + points(sh.Minima, s),
		"Inflection points: " + points(sh.Inflections, s),
		"f(0)=" + Number(sh.F0, s),
		"Roots of f(x)=0: " + Roots(sol, s),
	}
	return strings.Join(lines, "\n")
}
