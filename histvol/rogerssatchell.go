package histvol

import "math"

// RogersSatchell is drift-independent, so it stays unbiased on trending
// series where Parkinson and Garman-Klass drift off.
func RogersSatchell(bars []Bar) (float64, error) {
	if err := validateBars(bars, 2); err != nil {
		return 0, err
	}

	variance := rogersSatchellVariance(bars)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance * tradingDaysPerYear), nil
}

// rogersSatchellVariance is the per-day variance term, shared with Yang-Zhang.
func rogersSatchellVariance(bars []Bar) float64 {
	sum := 0.0
	for _, bar := range bars {
		sum += math.Log(bar.High/bar.Close)*math.Log(bar.High/bar.Open) +
			math.Log(bar.Low/bar.Close)*math.Log(bar.Low/bar.Open)
	}
	return sum / float64(len(bars))
}
