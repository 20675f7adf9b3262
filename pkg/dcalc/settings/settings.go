// Package settings holds the caller-owned calculation settings.
//
// A Settings value is passed by value into every evaluation and formatting
// call. Nothing in the core mutates it; callers apply changes between calls.
package settings

import "fmt"

// Form selects how complex numbers are read or shown.
type Form int

const (
	Rectangular Form = iota // a+bi
	Polar                   // r∠θ
)

func (f Form) String() string {
	switch f {
	case Polar:
		return "polar"
	default:
		return "rectangular"
	}
}

// ParseForm accepts "rectangular", "rect", "polar" and "pol".
func ParseForm(s string) (Form, error) {
	switch s {
	case "rectangular", "rect", "r":
		return Rectangular, nil
	case "polar", "pol", "p":
		return Polar, nil
	}
	return Rectangular, fmt.Errorf("unknown complex form %q (want rectangular or polar)", s)
}

const (
	MinPrecision     = 1
	MaxPrecision     = 9
	DefaultPrecision = 3

	// RootDisplayThreshold is the root count above which only a
	// caller-chosen number of nth roots is listed.
	RootDisplayThreshold = 100
	DefaultRootLimit     = 99
)

// Settings is a read-only snapshot of the calculator state.
type Settings struct {
	Precision        int     // decimal places kept when formatting
	ComplexInput     Form    // how complex operands are entered
	ComplexOutput    Form    // how complex results are shown
	ShowComplexRoots bool    // list non-real polynomial roots
	Grouping         bool    // group thousands in plain decimals
	Locale           string  // BCP 47 tag used for grouping
	RootLimit        int     // roots listed when n > RootDisplayThreshold
	Ans              float64 // last finite real result
}

// Defaults returns the settings a fresh session starts with.
func Defaults() Settings {
	return Settings{
		Precision:        DefaultPrecision,
		ComplexInput:     Rectangular,
		ComplexOutput:    Rectangular,
		ShowComplexRoots: true,
		Locale:           "en",
		RootLimit:        DefaultRootLimit,
	}
}

// WithAns returns a copy carrying a new last result.
func (s Settings) WithAns(ans float64) Settings {
	s.Ans = ans
	return s
}

// WithPrecision returns a copy with the precision set, or an error when it
// is outside 1..9.
func (s Settings) WithPrecision(p int) (Settings, error) {
	if p < MinPrecision || p > MaxPrecision {
		return s, fmt.Errorf("precision must be between %d and %d, got %d", MinPrecision, MaxPrecision, p)
	}
	s.Precision = p
	return s, nil
}
