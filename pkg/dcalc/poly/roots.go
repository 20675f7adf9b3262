package poly

import (
	"github.com/sambeau/dcalc/pkg/dcalc/numeric"
)

var sqrt3 = numeric.Sqrt(3)

// quadraticRoots solves ax²+bx+c = 0 by the sign of b²−4ac.
func quadraticRoots(a, b, c float64) []Root {
	vertex := -b / (2 * a)
	dt := b*b - 4*a*c
	switch {
	case dt > 0:
		s := numeric.Sqrt(dt)
		return []Root{
			realRoot((-b+s)/(2*a), 1),
			realRoot((-b-s)/(2*a), 1),
		}
	case dt == 0:
		return []Root{realRoot(vertex, 2)}
	}
	return []Root{pairRoot(vertex, numeric.Sqrt(-dt)/(2*a), 1)}
}

// cubicRoots solves ax³+bx²+cx+d = 0 with the invariants
// A = b²−3ac, B = bc−9ad, C = c²−3bd and DT = B²−4AC.
func cubicRoots(a, b, c, d float64) []Root {
	A := b*b - 3*a*c
	B := b*c - 9*a*d
	C := c*c - 3*b*d
	DT := B*B - 4*A*C

	switch {
	case A == 0 && B == 0:
		return []Root{realRoot(-b/(3*a), 3)}

	case DT > 0:
		s := numeric.Sqrt(DT)
		y1 := numeric.Cbrt(A*b + 1.5*a*(-B+s))
		y2 := numeric.Cbrt(A*b + 1.5*a*(-B-s))
		x1 := (-b - y1 - y2) / (3 * a)
		re := (-b + 0.5*(y1+y2)) / (3 * a)
		im := sqrt3 * (y1 - y2) / (6 * a)
		return []Root{realRoot(x1, 1), pairRoot(re, im, 1)}

	case DT == 0:
		k := B / A
		return []Root{
			realRoot(-b/a+k, 1),
			realRoot(-k/2, 2),
		}
	}

	sa := numeric.Sqrt(A)
	t := (2*A*b - 3*a*B) / (2 * numeric.Sqrt(A*A*A))
	theta := numeric.Arccos(t) / 3
	ct, st := numeric.Cos(theta), numeric.Sin(theta)
	return []Root{
		realRoot((-b-2*sa*ct)/(3*a), 1),
		realRoot((-b+sa*(ct+sqrt3*st))/(3*a), 1),
		realRoot((-b+sa*(ct-sqrt3*st))/(3*a), 1),
	}
}

// quarticRoots solves ax⁴+bx³+cx²+dx+f = 0 through the invariants
//
//	D = 3b²−8ac
//	E = −b³+4abc−8a²d
//	F = 3b⁴+16a²c²−16ab²c+16a²bd−64a³f
//
// and the resolvent values A = D²−3F, B = DF−9E², C = F²−3DE²,
// DT = B²−4AC. A nil result means no branch applies.
func quarticRoots(a, b, c, d, f float64) []Root {
	D := 3*b*b - 8*a*c
	E := -b*b*b + 4*a*b*c - 8*a*a*d
	F := 3*b*b*b*b + 16*a*a*c*c - 16*a*b*b*c + 16*a*a*b*d - 64*a*a*a*f
	A := D*D - 3*F
	B := D*F - 9*E*E
	C := F*F - 3*D*E*E
	DT := B*B - 4*A*C

	a4 := 4 * a
	sgnE := numeric.Sgn(E)

	switch {
	case D == 0 && E == 0 && F == 0:
		return []Root{realRoot(-b/a4, 4)}

	case D*E*F != 0 && A == 0 && B == 0 && C == 0:
		return []Root{
			realRoot((-b*D+9*E)/(a4*D), 1),
			realRoot((-b*D-3*E)/(a4*D), 3),
		}

	case E == 0 && F == 0 && D != 0:
		if D > 0 {
			s := numeric.Sqrt(D)
			return []Root{
				realRoot((-b+s)/a4, 2),
				realRoot((-b-s)/a4, 2),
			}
		}
		return []Root{pairRoot(-b/a4, numeric.Sqrt(-D)/a4, 2)}

	case A*B*C != 0 && DT == 0:
		k := 2 * A * E / B
		x1 := realRoot((-b-k)/a4, 2)
		if A*B > 0 {
			s := numeric.Sqrt(2 * B / A)
			return []Root{
				x1,
				realRoot((-b+k+s)/a4, 1),
				realRoot((-b+k-s)/a4, 1),
			}
		}
		return []Root{x1, pairRoot((-b+k)/a4, numeric.Sqrt(-2*B/A)/a4, 1)}

	case DT > 0:
		s := numeric.Sqrt(DT)
		z1 := A*D + 1.5*(-B+s)
		z2 := A*D + 1.5*(-B-s)
		S := numeric.Cbrt(z1) + numeric.Cbrt(z2)
		z := D*D - D*S + S*S - 3*A
		sz := numeric.Sqrt(z)
		u := sgnE * numeric.Sqrt((D+S)/3)
		v := numeric.Sqrt((2*D - S + 2*sz) / 3)
		return []Root{
			realRoot((-b+u+v)/a4, 1),
			realRoot((-b+u-v)/a4, 1),
			pairRoot((-b-u)/a4, numeric.Sqrt((-2*D+S+2*sz)/3)/a4, 1),
		}

	case DT < 0:
		return quarticTrigRoots(a, b, D, E, F, A, B)
	}
	return nil
}

// quarticTrigRoots handles the DT < 0 branches through the angle
// θ = arccos((3B−2AD)/(2A^1.5)).
func quarticTrigRoots(a, b, D, E, F, A, B float64) []Root {
	a4 := 4 * a
	sa := numeric.Sqrt(A)
	theta := numeric.Arccos((3*B-2*A*D)/(2*A*sa)) / 3
	ct, st := numeric.Cos(theta), numeric.Sin(theta)
	y1 := (D - 2*sa*ct) / 3
	y2 := (D + sa*(ct+sqrt3*st)) / 3
	y3 := (D + sa*(ct-sqrt3*st)) / 3

	if E == 0 {
		sf := numeric.Sqrt(F)
		switch {
		case D > 0 && F > 0:
			p, m := numeric.Sqrt(D+2*sf), numeric.Sqrt(D-2*sf)
			return []Root{
				realRoot((-b+p)/a4, 1),
				realRoot((-b-p)/a4, 1),
				realRoot((-b+m)/a4, 1),
				realRoot((-b-m)/a4, 1),
			}
		case D < 0 && F > 0:
			return []Root{
				pairRoot(-b/a4, numeric.Sqrt(-D+2*sf)/a4, 1),
				pairRoot(-b/a4, numeric.Sqrt(-D-2*sf)/a4, 1),
			}
		case F < 0:
			w := numeric.Sqrt(A - F)
			r := numeric.Sqrt(2*D + 2*w)
			im := numeric.Sqrt(-2*D+2*w) / (2 * a4)
			return []Root{
				pairRoot((-2*b+r)/(2*a4), im, 1),
				pairRoot((-2*b-r)/(2*a4), im, 1),
			}
		}
		return nil
	}

	sgnE := numeric.Sgn(E)
	if D > 0 && F > 0 {
		s1 := sgnE * numeric.Sqrt(y1)
		s2, s3 := numeric.Sqrt(y2), numeric.Sqrt(y3)
		return []Root{
			realRoot((-b+s1+(s2+s3))/a4, 1),
			realRoot((-b+s1-(s2+s3))/a4, 1),
			realRoot((-b-s1+(s2-s3))/a4, 1),
			realRoot((-b-s1-(s2-s3))/a4, 1),
		}
	}
	s2 := numeric.Sqrt(y2)
	i1 := sgnE * numeric.Sqrt(-y1)
	i3 := numeric.Sqrt(-y3)
	return []Root{
		pairRoot((-b-s2)/a4, (i1+i3)/a4, 1),
		pairRoot((-b+s2)/a4, (i1-i3)/a4, 1),
	}
}
