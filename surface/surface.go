// Package surface evaluates a parametric volatility smile over a strike/tenor
// grid and composes the Black-Scholes pricer over the same grid. It is
// descriptive: the model is not calibrated to option prices and never calls
// the implied-volatility solver.
package surface

import (
	"fmt"
	"math"

	"github.com/bcdannyboy/optvol/pricing"
)

// DefaultFloor is the minimum volatility a generated surface will report.
const DefaultFloor = 0.05

// Params are the free parameters of the smile model. Skew and smile act on
// log-moneyness ln(K/S); TermSlope acts on sqrt(days/365).
type Params struct {
	BaseVol   float64
	Skew      float64
	Smile     float64
	TermSlope float64
}

type Config struct {
	// TermStructure enables the TermSlope contribution. Off, the model is
	// the flat-in-tenor smile variant.
	TermStructure bool
	// Floor clamps the final summed volatility; zero means DefaultFloor.
	Floor float64
}

func (cfg Config) floor() float64 {
	if cfg.Floor == 0 {
		return DefaultFloor
	}
	return cfg.Floor
}

type Point struct {
	Strike       float64
	DaysToExpiry float64
	Volatility   float64
}

// Grid is a rectangular surface sample, row-major with tenor as the outer
// dimension: Points[i*len(Strikes)+j] is tenor TenorDays[i], strike Strikes[j].
type Grid struct {
	Strikes   []float64
	TenorDays []float64
	Points    []Point
}

func (g *Grid) At(tenorIdx, strikeIdx int) Point {
	return g.Points[tenorIdx*len(g.Strikes)+strikeIdx]
}

// ModelVol evaluates the smile at a single (strike, tenor) cell. Individual
// contributions are not clamped; only the final sum is held at the floor.
func ModelVol(spot, strike, tenorDays float64, p Params, cfg Config) float64 {
	moneyness := math.Log(strike / spot)
	vol := p.BaseVol + p.Skew*moneyness + p.Smile*moneyness*moneyness
	if cfg.TermStructure {
		vol += p.TermSlope * math.Sqrt(tenorDays/365)
	}
	return math.Max(vol, cfg.floor())
}

// Generate samples the smile over every (tenor, strike) pair, outer loop
// tenor, inner loop strike.
func Generate(spot float64, strikes, tenorDays []float64, p Params, cfg Config) (*Grid, error) {
	if err := validateInputs(spot, strikes, tenorDays); err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(strikes)*len(tenorDays))
	for _, days := range tenorDays {
		for _, strike := range strikes {
			points = append(points, Point{
				Strike:       strike,
				DaysToExpiry: days,
				Volatility:   ModelVol(spot, strike, days, p, cfg),
			})
		}
	}

	return &Grid{Strikes: strikes, TenorDays: tenorDays, Points: points}, nil
}

func validateInputs(spot float64, strikes, tenorDays []float64) error {
	if math.IsNaN(spot) || math.IsInf(spot, 0) || spot <= 0 {
		return fmt.Errorf("%w: spot must be a positive finite number, got %g", pricing.ErrInvalidInput, spot)
	}
	if err := validateAxis("strike", strikes); err != nil {
		return err
	}
	return validateAxis("tenor", tenorDays)
}

func validateAxis(name string, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: %s grid is empty", pricing.ErrInvalidInput, name)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s grid value %g at index %d must be a positive finite number", pricing.ErrInvalidInput, name, v, i)
		}
		if i > 0 && values[i-1] >= v {
			return fmt.Errorf("%w: %s grid must be strictly increasing at index %d", pricing.ErrInvalidInput, name, i)
		}
	}
	return nil
}
