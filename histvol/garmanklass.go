package histvol

import "math"

// GarmanKlass combines the high-low range with the open-close move.
func GarmanKlass(bars []Bar) (float64, error) {
	if err := validateBars(bars, 2); err != nil {
		return 0, err
	}

	sum := 0.0
	for _, bar := range bars {
		hl := math.Log(bar.High / bar.Low)
		co := math.Log(bar.Close / bar.Open)
		sum += 0.5*hl*hl - (2*math.Ln2-1)*co*co
	}

	variance := sum / float64(len(bars))
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance * tradingDaysPerYear), nil
}
