package cplx

import (
	"math"

	"github.com/sambeau/dcalc/pkg/dcalc/numeric"
)

// Family describes every value of the multi-valued power z^w:
//
//	Z(K) = Modulus · (e^π)^(Decay·K) ∠ (Angle + AngleStep·K),  K ∈ ℤ
//
// When the real part of w is an integer the angle does not depend on K and
// FixedAngle is set; RealAxis additionally marks angles of 0 or π, where
// every Z(K) is real and Sign gives its sign.
type Family struct {
	Modulus    float64
	Decay      float64
	Angle      float64
	AngleStep  float64
	FixedAngle bool
	RealAxis   bool
	Sign       float64
}

// PowResult is the principal value of z^w with its family when the exponent
// is rational.
type PowResult struct {
	Principal Rect
	Family    *Family
}

// Pow returns z^w = exp(w·ln z). K = 0 gives the principal value.
func Pow(z, w Value) PowResult {
	base, exp := z.Rect(), w.Rect()
	if base.IsUndefined() || exp.IsUndefined() {
		return PowResult{Principal: Undefined}
	}
	c, d := exp.Re, exp.Im

	r := Abs(base)
	if r == 0 {
		if c > 0 && d == 0 {
			return PowResult{Principal: Rect{}}
		}
		return PowResult{Principal: Undefined}
	}

	arg := ToPolar(base.Re, base.Im).Theta

	mod := numeric.Pow(r, c) / numeric.Exp(d*arg)
	angle := d*numeric.Ln(r) + c*arg
	principal := Rect{mod * numeric.Cos(angle), mod * numeric.Sin(angle)}
	if principal.IsUndefined() {
		return PowResult{Principal: Undefined}
	}

	res := PowResult{Principal: principal}
	if isRational(c) && isRational(d) {
		f := &Family{
			Modulus:    mod,
			Decay:      -2 * d,
			Angle:      angle,
			AngleStep:  2 * numeric.Pi * c,
			FixedAngle: numeric.IsWhole(c),
		}
		if f.FixedAngle && numeric.Round(numeric.Sin(angle), 10) == 0 {
			f.RealAxis = true
			f.Sign = numeric.Sgn(numeric.Cos(angle))
		}
		res.Family = f
	}
	return res
}

const (
	maxDenominator    = 10000
	rationalTolerance = 1e-9
)

// isRational reports whether x is within tolerance of a fraction p/q with
// q ≤ 10000, found from the continued-fraction convergents of x.
func isRational(x float64) bool {
	if numeric.IsUndefined(x) {
		return false
	}
	if numeric.IsWhole(x) {
		return true
	}
	target := math.Abs(x)
	tol := rationalTolerance * math.Max(1, target)

	// convergents h/k of the continued fraction of target
	h0, h1 := 0.0, 1.0
	k0, k1 := 1.0, 0.0
	rem := target
	for range 32 {
		a := math.Floor(rem)
		h0, h1 = h1, a*h1+h0
		k0, k1 = k1, a*k1+k0
		if k1 > maxDenominator {
			return false
		}
		if math.Abs(target-h1/k1) <= tol {
			return true
		}
		frac := rem - a
		if frac == 0 {
			return true
		}
		rem = 1 / frac
	}
	return false
}

// RootSet holds the nth roots of a complex number:
//
//	Z(K+1) = Modulus ∠ ((Arg + 2πK)/N),  K = 0 .. N−1
type RootSet struct {
	N       int
	Modulus float64
	Arg     float64 // argument of the (inverted, for negative n) base in [0, 2π)
	Roots   []Rect
}

// Truncated reports whether fewer than N roots were listed.
func (s RootSet) Truncated() bool {
	return len(s.Roots) < s.N
}

// IsUndefined reports whether the root set is a domain error.
func (s RootSet) IsUndefined() bool {
	return s.N == 0
}

// Roots returns the nth roots of z. A negative n takes roots of 1/z. At
// most count roots are listed; count ≤ 0 lists them all. n = 0, or a zero
// base with n < 0, is undefined.
func Roots(z Value, n, count int) RootSet {
	base := z.Rect()
	if n == 0 || base.IsUndefined() {
		return RootSet{}
	}
	if base.IsZero() {
		if n < 0 {
			return RootSet{}
		}
		return RootSet{N: n, Roots: []Rect{{}}}
	}
	if n < 0 {
		base = inverse(base)
		n = -n
	}

	p := ToPolar(base.Re, base.Im)
	r, arg := p.R, p.Theta
	if arg < 0 {
		arg += 2 * numeric.Pi
	}
	rn := numeric.Pow(r, 1/float64(n))

	if count <= 0 || count > n {
		count = n
	}
	set := RootSet{N: n, Modulus: rn, Arg: arg, Roots: make([]Rect, 0, count)}
	for k := 0; k < count; k++ {
		theta := (2*numeric.Pi*float64(k) + arg) / float64(n)
		set.Roots = append(set.Roots, FromPolar(rn, theta))
	}
	return set
}
