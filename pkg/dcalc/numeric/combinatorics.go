package numeric

import "math"

// integralTolerance is the number of decimal places kept before testing a
// factorial argument for integrality.
const integralTolerance = 13

// naturalArg rounds x and reports whether it is a non-negative integer.
func naturalArg(x float64) (float64, bool) {
	x = Round(x, integralTolerance)
	if !IsWhole(x) || x < 0 {
		return x, false
	}
	return x, true
}

// Factorial returns n! for non-negative integers; 0! = 1.
func Factorial(n float64) float64 {
	n, ok := naturalArg(n)
	if !ok {
		return math.NaN()
	}
	out := 1.0
	for i := 2.0; i <= n; i++ {
		out *= i
		if math.IsInf(out, 0) {
			return math.NaN()
		}
	}
	return out
}

// Comb returns the number of k-combinations of n, n!/((n−k)!·k!).
// The product is built one factor at a time, so n may exceed the
// largest representable factorial.
func Comb(n, k float64) float64 {
	n, okN := naturalArg(n)
	k, okK := naturalArg(k)
	if !okN || !okK || k > n {
		return math.NaN()
	}
	if n-k < k {
		k = n - k
	}
	out := 1.0
	for i := 1.0; i <= k; i++ {
		out = out * (n - k + i) / i
		if math.IsInf(out, 0) {
			return math.NaN()
		}
	}
	return out
}

// Perm returns the number of k-permutations of n, n!/(n−k)!.
func Perm(n, k float64) float64 {
	n, okN := naturalArg(n)
	k, okK := naturalArg(k)
	if !okN || !okK || k > n {
		return math.NaN()
	}
	out := 1.0
	for i := 0.0; i < k; i++ {
		out *= n - i
		if math.IsInf(out, 0) {
			return math.NaN()
		}
	}
	return out
}
