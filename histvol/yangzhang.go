package histvol

import "math"

// YangZhang combines overnight, open-to-close and Rogers-Satchell variance
// terms; it handles both drift and opening gaps.
func YangZhang(bars []Bar) (float64, error) {
	if err := validateBars(bars, 3); err != nil {
		return 0, err
	}

	n := float64(len(bars))
	k := 0.34 / (1.34 + (n+1)/(n-1))

	variance := overnightVariance(bars) + k*openCloseVariance(bars) + (1-k)*rogersSatchellVariance(bars)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance * tradingDaysPerYear), nil
}

func overnightVariance(bars []Bar) float64 {
	n := len(bars)
	var sum, sumSq float64
	for i := 1; i < n; i++ {
		gap := math.Log(bars[i].Open / bars[i-1].Close)
		sum += gap
		sumSq += gap * gap
	}
	mean := sum / float64(n-1)
	return (sumSq/float64(n-1) - mean*mean) * float64(n) / float64(n-1)
}

func openCloseVariance(bars []Bar) float64 {
	n := len(bars)
	var sum, sumSq float64
	for _, bar := range bars {
		move := math.Log(bar.Close / bar.Open)
		sum += move
		sumSq += move * move
	}
	mean := sum / float64(n)
	return (sumSq/float64(n) - mean*mean) * float64(n) / float64(n-1)
}
