// Package cplx provides complex arithmetic on top of the numeric library.
//
// A complex number is either a Rect (a+bi) or a Polar (r∠θ); both satisfy
// Value and convert freely. Undefined results carry NaN components.
package cplx

import (
	"math"

	"github.com/sambeau/dcalc/pkg/dcalc/numeric"
)

// Value is a complex number in either representation.
type Value interface {
	Rect() Rect
	Polar() Polar
}

// Rect is the rectangular form a+bi.
type Rect struct {
	Re, Im float64
}

// Polar is the polar form r∠θ with θ in (−π, π].
type Polar struct {
	R, Theta float64
}

// Undefined is the NaN complex value.
var Undefined = Rect{math.NaN(), math.NaN()}

func (z Rect) Rect() Rect   { return z }
func (z Rect) Polar() Polar { return ToPolar(z.Re, z.Im) }

func (p Polar) Rect() Rect   { return FromPolar(p.R, p.Theta) }
func (p Polar) Polar() Polar { return p }

// IsUndefined reports whether either component is undefined.
func (z Rect) IsUndefined() bool {
	return numeric.IsUndefined(z.Re) || numeric.IsUndefined(z.Im)
}

// IsUndefined reports whether either component is undefined.
func (p Polar) IsUndefined() bool {
	return numeric.IsUndefined(p.R) || numeric.IsUndefined(p.Theta)
}

// IsZero reports whether z is exactly 0.
func (z Rect) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// Abs returns the modulus |z|.
func Abs(z Value) float64 {
	r := z.Rect()
	return numeric.Sqrt(r.Re*r.Re + r.Im*r.Im)
}

// ToPolar converts a+bi to r∠θ. The angle is arccos(a/r), negated when b < 0.
func ToPolar(a, b float64) Polar {
	if numeric.IsUndefined(a) || numeric.IsUndefined(b) {
		return Polar{math.NaN(), math.NaN()}
	}
	r := numeric.Sqrt(a*a + b*b)
	if r == 0 {
		return Polar{0, 0}
	}
	if b == 0 {
		if a > 0 {
			return Polar{r, 0}
		}
		return Polar{r, numeric.Pi}
	}
	theta := numeric.Arccos(math.Max(-1, math.Min(1, a/r)))
	if b < 0 {
		theta = -theta
	}
	return Polar{r, theta}
}

// FromPolar converts r∠θ to a+bi.
func FromPolar(r, theta float64) Rect {
	return Rect{r * numeric.Cos(theta), r * numeric.Sin(theta)}
}

// Add returns x + y.
func Add(x, y Value) Rect {
	a, b := x.Rect(), y.Rect()
	return Rect{a.Re + b.Re, a.Im + b.Im}
}

// Sub returns x − y.
func Sub(x, y Value) Rect {
	a, b := x.Rect(), y.Rect()
	return Rect{a.Re - b.Re, a.Im - b.Im}
}

// Mul returns x · y.
func Mul(x, y Value) Rect {
	a, b := x.Rect(), y.Rect()
	return mul(a, b)
}

func mul(a, b Rect) Rect {
	return Rect{a.Re*b.Re - a.Im*b.Im, a.Re*b.Im + a.Im*b.Re}
}

// Div returns x / y, undefined when y is zero.
func Div(x, y Value) Rect {
	a, b := x.Rect(), y.Rect()
	d := b.Re*b.Re + b.Im*b.Im
	if d == 0 {
		return Undefined
	}
	return Rect{(a.Re*b.Re + a.Im*b.Im) / d, (a.Im*b.Re - a.Re*b.Im) / d}
}

// Conj returns the complex conjugate of z.
func Conj(z Value) Rect {
	r := z.Rect()
	return Rect{r.Re, -r.Im}
}

// inverse returns 1/z as conj(z)/|z|².
func inverse(z Rect) Rect {
	d := z.Re*z.Re + z.Im*z.Im
	if d == 0 {
		return Undefined
	}
	return Rect{z.Re / d, -z.Im / d}
}

// IntPow returns z^n by repeated multiplication. 0^n is undefined for n ≤ 0.
func IntPow(z Value, n int) Rect {
	base := z.Rect()
	if base.IsUndefined() {
		return Undefined
	}
	if base.IsZero() {
		if n <= 0 {
			return Undefined
		}
		return Rect{}
	}
	if n == 0 {
		return Rect{1, 0}
	}

	m := n
	if m < 0 {
		m = -m
	}
	out := base
	for i := 1; i < m; i++ {
		out = mul(out, base)
		if out.IsUndefined() || out.IsZero() {
			break
		}
	}
	if out.IsUndefined() {
		return Undefined
	}
	if n < 0 {
		return inverse(out)
	}
	return out
}
