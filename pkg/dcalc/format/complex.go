package format

import (
	"strconv"
	"strings"

	"github.com/sambeau/dcalc/pkg/dcalc/cplx"
	"github.com/sambeau/dcalc/pkg/dcalc/numeric"
	"github.com/sambeau/dcalc/pkg/dcalc/settings"
)

// Complex renders z in the settings' output form.
func Complex(z cplx.Value, s settings.Settings) string {
	if s.ComplexOutput == settings.Polar {
		return Polar(z.Polar(), s)
	}
	return Rect(z.Rect(), s)
}

// Rect renders a+bi, eliding a zero part and a unit coefficient before i.
func Rect(z cplx.Rect, s settings.Settings) string {
	if z.IsUndefined() {
		return MathError
	}
	a, b := Rounded(z.Re, s), Rounded(z.Im, s)
	oa, ob := Number(z.Re, s), Number(z.Im, s)

	if a == 0 || oa == "0" {
		switch {
		case b == 0 || ob == "0":
			return "0"
		case b == 1:
			return "i"
		case b == -1:
			return "-i"
		}
		return ob + "i"
	}
	switch {
	case b == 0 || ob == "0":
		return oa
	case b == 1:
		return oa + "+i"
	case b == -1:
		return oa + "-i"
	case b > 0:
		return oa + "+" + ob + "i"
	}
	return oa + ob + "i"
}

// Polar renders r∠θ; a zero angle shows the modulus alone.
func Polar(p cplx.Polar, s settings.Settings) string {
	if p.IsUndefined() {
		return MathError
	}
	r, theta := Rounded(p.R, s), Rounded(p.Theta, s)
	if r == 0 {
		return "0"
	}
	if theta == 0 {
		return Number(p.R, s)
	}
	return Number(p.R, s) + "∠" + Number(p.Theta, s)
}

// kTerm renders coef·K with unit coefficients elided.
func kTerm(coef float64, s settings.Settings) string {
	switch Rounded(coef, s) {
	case 1:
		return "K"
	case -1:
		return "-K"
	}
	return Number(coef, s) + "K"
}

// signedKTerm renders kTerm with an explicit leading sign.
func signedKTerm(coef float64, s settings.Settings) string {
	t := kTerm(coef, s)
	if strings.HasPrefix(t, "-") {
		return t
	}
	return "+" + t
}

// Family renders the general form of a complex power.
func Family(f *cplx.Family, s settings.Settings) string {
	if f == nil || numeric.IsUndefined(f.Modulus) || numeric.IsUndefined(f.Angle) {
		return MathError
	}
	var sb strings.Builder
	sb.WriteString("Z(K)=")
	if f.RealAxis && f.Sign < 0 {
		sb.WriteString("-")
	}

	mod := Number(f.Modulus, s)
	switch {
	case Rounded(f.Decay, s) == 0:
		sb.WriteString(mod)
	default:
		if mod != "1" {
			sb.WriteString(mod)
			sb.WriteString("*")
		}
		sb.WriteString(Number(numeric.Exp(numeric.Pi), s))
		sb.WriteString("^")
		exp := kTerm(f.Decay, s)
		if exp == "K" {
			sb.WriteString(exp)
		} else {
			sb.WriteString("(" + exp + ")")
		}
	}

	if !f.RealAxis {
		sb.WriteString("∠")
		switch {
		case f.FixedAngle:
			sb.WriteString(Number(f.Angle, s))
		case Rounded(f.Angle, s) == 0:
			sb.WriteString(kTerm(f.AngleStep, s))
		default:
			sb.WriteString("(" + Number(f.Angle, s) + signedKTerm(f.AngleStep, s) + ")")
		}
	}
	sb.WriteString(",K∈Z")
	return sb.String()
}

// RootForm renders the general form of an nth-root set.
func RootForm(set cplx.RootSet, s settings.Settings) string {
	if set.IsUndefined() {
		return MathError
	}
	if set.N == 1 || set.Modulus == 0 {
		return ""
	}
	n := strconv.Itoa(set.N)
	step := Number(2*numeric.Pi, s)

	var angle string
	if Rounded(set.Arg, s) == 0 {
		angle = "(" + step + "K/" + n + ")"
	} else {
		angle = "((" + Number(set.Arg, s) + "+" + step + "K)/" + n + ")"
	}
	return "Z(K+1)=" + Number(set.Modulus, s) + "∠" + angle + ",K∈[0," + strconv.Itoa(set.N-1) + "]∩Z"
}
