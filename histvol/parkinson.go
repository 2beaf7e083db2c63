package histvol

import "math"

// Parkinson estimates volatility from the daily high-low range. It assumes
// no drift and no overnight jumps, so it reads low on gappy series.
func Parkinson(bars []Bar) (float64, error) {
	if err := validateBars(bars, 2); err != nil {
		return 0, err
	}

	sum := 0.0
	for _, bar := range bars {
		hl := math.Log(bar.High / bar.Low)
		sum += hl * hl
	}

	variance := sum / (4 * math.Ln2 * float64(len(bars)))
	return math.Sqrt(variance * tradingDaysPerYear), nil
}
