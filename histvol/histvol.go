// Package histvol estimates annualized realized volatility from daily OHLC
// bars supplied by the caller. Fetching and caching the bars is someone
// else's job; everything here is pure arithmetic over the slice it is given.
package histvol

import (
	"errors"
	"fmt"
	"math"
)

var ErrInsufficientData = errors.New("insufficient bar data")

const tradingDaysPerYear = 252

type Bar struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Estimator computes an annualized volatility from a window of bars.
type Estimator func(bars []Bar) (float64, error)

var periods = []struct {
	name string
	days int
}{
	{"1w", 5},
	{"1m", 21},
	{"3m", 63},
	{"6m", 126},
	{"1y", 252},
}

// ByPeriod runs an estimator over the standard trailing windows, skipping
// windows longer than the available history.
func ByPeriod(bars []Bar, estimate Estimator) map[string]float64 {
	results := make(map[string]float64)
	for _, period := range periods {
		if len(bars) < period.days {
			continue
		}
		vol, err := estimate(bars[len(bars)-period.days:])
		if err != nil {
			continue
		}
		results[period.name] = vol
	}
	return results
}

// CloseToClose is the plain sample standard deviation of daily log returns,
// annualized. It is the default seed for a surface model's base volatility.
func CloseToClose(bars []Bar) (float64, error) {
	if err := validateBars(bars, 3); err != nil {
		return 0, err
	}

	n := len(bars) - 1
	var sum, sumSq float64
	for i := 1; i < len(bars); i++ {
		logReturn := math.Log(bars[i].Close / bars[i-1].Close)
		sum += logReturn
		sumSq += logReturn * logReturn
	}
	mean := sum / float64(n)
	variance := (sumSq - float64(n)*mean*mean) / float64(n-1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance * tradingDaysPerYear), nil
}

func validateBars(bars []Bar, minLen int) error {
	if len(bars) < minLen {
		return fmt.Errorf("%w: need at least %d bars, got %d", ErrInsufficientData, minLen, len(bars))
	}
	for i, bar := range bars {
		if bar.Open <= 0 || bar.High <= 0 || bar.Low <= 0 || bar.Close <= 0 {
			return fmt.Errorf("%w: bar %d has a non-positive price", ErrInsufficientData, i)
		}
	}
	return nil
}
