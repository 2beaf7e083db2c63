package surface

import (
	"testing"

	"github.com/bcdannyboy/optvol/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceGridMatchesPricer(t *testing.T) {
	strikes := []float64{90, 100, 110}
	tenors := []float64{30, 180}

	ps, err := PriceGrid(100, 0.05, 0.2, pricing.Call, strikes, tenors)
	require.NoError(t, err)
	require.Len(t, ps.Points, 6)

	for i, days := range tenors {
		for j, strike := range strikes {
			want, err := pricing.Price(pricing.Contract{
				Spot:         100,
				Strike:       strike,
				TimeToExpiry: days / 365,
				RiskFreeRate: 0.05,
				Volatility:   0.2,
				Type:         pricing.Call,
			})
			require.NoError(t, err)

			got := ps.At(i, j)
			assert.Equal(t, strike, got.Strike)
			assert.Equal(t, days, got.DaysToExpiry)
			assert.InDelta(t, want, got.Price, 1e-12)
		}
	}
}

func TestPriceGridMonotoneInStrike(t *testing.T) {
	strikes := Linspace(80, 120, 9)
	tenors := []float64{90}

	ps, err := PriceGrid(100, 0.05, 0.2, pricing.Call, strikes, tenors)
	require.NoError(t, err)

	// Call prices fall as strike rises.
	for j := 1; j < len(strikes); j++ {
		assert.Less(t, ps.At(0, j).Price, ps.At(0, j-1).Price)
	}
}

func TestPriceGridRejectsInvalidInputs(t *testing.T) {
	_, err := PriceGrid(100, 0.05, -0.2, pricing.Call, []float64{90, 110}, []float64{30})
	require.ErrorIs(t, err, pricing.ErrInvalidInput)

	_, err = PriceGrid(100, 0.05, 0.2, "strangle", []float64{90, 110}, []float64{30})
	require.ErrorIs(t, err, pricing.ErrInvalidInput)

	_, err = PriceGrid(100, 0.05, 0.2, pricing.Call, nil, []float64{30})
	require.ErrorIs(t, err, pricing.ErrInvalidInput)

	_, err = PriceGrid(-1, 0.05, 0.2, pricing.Call, []float64{90, 110}, []float64{30})
	require.ErrorIs(t, err, pricing.ErrInvalidInput)
}
