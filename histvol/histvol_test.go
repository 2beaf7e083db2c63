package histvol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// simulateBars draws daily OHLC bars from a driftless geometric random walk,
// sampling an intraday path so highs and lows carry real range information.
func simulateBars(rng *rand.Rand, n, intraSteps int, dailyVol float64) []Bar {
	bars := make([]Bar, n)
	price := 100.0
	stepVol := dailyVol / math.Sqrt(float64(intraSteps))

	for i := range bars {
		open := price
		high, low := price, price
		for s := 0; s < intraSteps; s++ {
			price *= math.Exp(stepVol*rng.NormFloat64() - 0.5*stepVol*stepVol)
			if price > high {
				high = price
			}
			if price < low {
				low = price
			}
		}
		bars[i] = Bar{Open: open, High: high, Low: low, Close: price}
	}
	return bars
}

func flatBars(n int, price float64) []Bar {
	bars := make([]Bar, n)
	for i := range bars {
		bars[i] = Bar{Open: price, High: price, Low: price, Close: price}
	}
	return bars
}

func TestEstimatorsOnFlatSeries(t *testing.T) {
	bars := flatBars(30, 100)

	estimators := map[string]Estimator{
		"close-to-close":  CloseToClose,
		"parkinson":       Parkinson,
		"garman-klass":    GarmanKlass,
		"rogers-satchell": RogersSatchell,
		"yang-zhang":      YangZhang,
	}
	for name, estimate := range estimators {
		vol, err := estimate(bars)
		require.NoError(t, err, name)
		assert.InDelta(t, 0.0, vol, 1e-12, name)
	}
}

func TestEstimatorsRecoverKnownVolatility(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	annualVol := 0.20
	dailyVol := annualVol / math.Sqrt(252)
	bars := simulateBars(rng, 1500, 50, dailyVol)

	estimators := map[string]Estimator{
		"close-to-close":  CloseToClose,
		"parkinson":       Parkinson,
		"garman-klass":    GarmanKlass,
		"rogers-satchell": RogersSatchell,
		"yang-zhang":      YangZhang,
	}
	// Range-based estimators read slightly low on discretely sampled paths,
	// so the band is wide.
	for name, estimate := range estimators {
		vol, err := estimate(bars)
		require.NoError(t, err, name)
		assert.InDelta(t, annualVol, vol, 0.05, name)
	}
}

func TestByPeriodWindows(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	dailyVol := 0.20 / math.Sqrt(252)

	full := ByPeriod(simulateBars(rng, 300, 10, dailyVol), CloseToClose)
	for _, key := range []string{"1w", "1m", "3m", "6m", "1y"} {
		assert.Contains(t, full, key)
		assert.Greater(t, full[key], 0.0)
	}

	short := ByPeriod(simulateBars(rng, 100, 10, dailyVol), GarmanKlass)
	assert.Contains(t, short, "1m")
	assert.Contains(t, short, "3m")
	assert.NotContains(t, short, "6m")
	assert.NotContains(t, short, "1y")
}

func TestEstimatorsRejectBadBars(t *testing.T) {
	_, err := CloseToClose(flatBars(2, 100))
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = Parkinson(nil)
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = YangZhang(flatBars(2, 100))
	require.ErrorIs(t, err, ErrInsufficientData)

	bad := flatBars(10, 100)
	bad[4].Low = 0
	_, err = GarmanKlass(bad)
	require.ErrorIs(t, err, ErrInsufficientData)

	bad[4].Low = -3
	_, err = RogersSatchell(bad)
	require.ErrorIs(t, err, ErrInsufficientData)
}
