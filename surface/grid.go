package surface

import (
	"fmt"

	"github.com/bcdannyboy/optvol/pricing"
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced samples from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// StrikeGrid builds an ascending strike axis from spot-relative percentage
// bounds, e.g. (100, 80, 120, 25) covers 80% to 120% of spot in 25 steps.
func StrikeGrid(spot, lowPct, highPct float64, n int) ([]float64, error) {
	if spot <= 0 {
		return nil, fmt.Errorf("%w: spot must be positive, got %g", pricing.ErrInvalidInput, spot)
	}
	if lowPct <= 0 || highPct <= lowPct {
		return nil, fmt.Errorf("%w: strike bounds must satisfy 0 < low < high, got %g%% and %g%%", pricing.ErrInvalidInput, lowPct, highPct)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: strike grid needs at least 2 points, got %d", pricing.ErrInvalidInput, n)
	}
	return Linspace(spot*lowPct/100, spot*highPct/100, n), nil
}

// TenorGridDays builds an ascending tenor axis in calendar days.
func TenorGridDays(minDays, maxDays float64, n int) ([]float64, error) {
	if minDays <= 0 || maxDays <= minDays {
		return nil, fmt.Errorf("%w: tenor bounds must satisfy 0 < min < max, got %g and %g days", pricing.ErrInvalidInput, minDays, maxDays)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: tenor grid needs at least 2 points, got %d", pricing.ErrInvalidInput, n)
	}
	return Linspace(minDays, maxDays, n), nil
}
