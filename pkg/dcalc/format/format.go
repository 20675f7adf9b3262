// Package format renders calculator values as text.
//
// Plain decimals are rounded to the configured precision. Magnitudes above
// 10^10 or below 10^-5 switch to mantissa*10^exponent; magnitudes below
// 10^-10 print as 0. Every rendering of a real number can be fed back to the
// normalizer and evaluates to the same value at that precision.
package format

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sambeau/dcalc/pkg/dcalc/numeric"
	"github.com/sambeau/dcalc/pkg/dcalc/settings"
)

// MathError is shown in place of an undefined value.
const MathError = "Math ERROR"

const (
	upperPlain = 1e10
	lowerPlain = 1e-5
	zeroCutoff = 1e-10
)

var ten = decimal.NewFromInt(10)

func precision(s settings.Settings) int32 {
	if s.Precision < settings.MinPrecision || s.Precision > settings.MaxPrecision {
		return settings.DefaultPrecision
	}
	return int32(s.Precision)
}

// Number renders a real value.
func Number(x float64, s settings.Settings) string {
	if numeric.IsUndefined(x) {
		return MathError
	}
	abs := math.Abs(x)
	if abs < zeroCutoff {
		return "0"
	}

	places := precision(s)
	d := decimal.NewFromFloat(x)

	exp := 0
	if abs > upperPlain || abs < lowerPlain {
		exp = int(d.Exponent()) + d.NumDigits() - 1
		d = d.Shift(int32(-exp))
	}
	d = d.Round(places)
	if exp != 0 && d.Abs().GreaterThanOrEqual(ten) {
		d = d.Shift(-1).Round(places)
		exp++
	}
	if d.IsZero() {
		return "0"
	}

	if exp == 0 {
		if s.Grouping {
			return grouped(d, places, s.Locale)
		}
		return d.String()
	}

	e := strconv.Itoa(exp)
	if exp < 0 {
		e = "(" + e + ")"
	}
	if d.Equal(decimal.NewFromInt(1)) {
		return "10^" + e
	}
	return d.String() + "*10^" + e
}

// grouped renders d with the locale's digit grouping. Grouped text is for
// display only; separators do not read back as expressions.
func grouped(d decimal.Decimal, places int32, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	f, _ := d.Float64()
	return p.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(int(places))))
}

// Rounded returns x rounded to the configured precision, as compared by the
// complex formatters.
func Rounded(x float64, s settings.Settings) float64 {
	return numeric.Round(x, int(precision(s)))
}
