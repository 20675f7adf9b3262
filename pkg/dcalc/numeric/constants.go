package numeric

// Pi from Machin's formula, 16·atan(1/5) − 4·atan(1/239), 11 series terms each.
var Pi = 16*atanSeries(1.0/5, 11) - 4*atanSeries(1.0/239, 11)

// E from the series Σ 1/k! over 18 terms.
var E = func() float64 {
	sum, term := 1.0, 1.0
	for k := 1; k < 18; k++ {
		term /= float64(k)
		sum += term
	}
	return sum
}()

// atanSeries sums the Gregory series for small arguments.
func atanSeries(x float64, terms int) float64 {
	sum := 0.0
	power := x
	for k := 0; k < terms; k++ {
		term := power / float64(2*k+1)
		if k%2 == 1 {
			term = -term
		}
		sum += term
		power *= x * x
	}
	return sum
}
