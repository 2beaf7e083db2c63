package pricing

import (
	"errors"
	"fmt"
	"math"
)

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

var (
	// ErrInvalidInput marks contract parameters rejected before any computation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotBracketed marks an observed price unreachable within the
	// implied-volatility search interval.
	ErrNotBracketed = errors.New("implied volatility not bracketed")
	// ErrDegenerate marks a non-finite intermediate result.
	ErrDegenerate = errors.New("degenerate numeric result")
)

// Contract holds the parameters of a single European option. All fields are
// fractions and years, never percentages or days.
type Contract struct {
	Spot         float64
	Strike       float64
	TimeToExpiry float64 // years
	RiskFreeRate float64 // annualized, continuously compounded
	Volatility   float64 // annualized
	Type         OptionType
}

// Greeks holds the analytic sensitivities of a contract. Theta is per
// calendar day, Vega is per one-percentage-point volatility move.
type Greeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
}

func (c Contract) Validate() error {
	if !isFinite(c.Spot) || c.Spot <= 0 {
		return fmt.Errorf("%w: spot must be a positive finite number, got %g", ErrInvalidInput, c.Spot)
	}
	if !isFinite(c.Strike) || c.Strike <= 0 {
		return fmt.Errorf("%w: strike must be a positive finite number, got %g", ErrInvalidInput, c.Strike)
	}
	if !isFinite(c.TimeToExpiry) || c.TimeToExpiry <= 0 {
		return fmt.Errorf("%w: time to expiry must be a positive finite number of years, got %g", ErrInvalidInput, c.TimeToExpiry)
	}
	if !isFinite(c.RiskFreeRate) || c.RiskFreeRate < 0 {
		return fmt.Errorf("%w: risk-free rate must be a non-negative finite number, got %g", ErrInvalidInput, c.RiskFreeRate)
	}
	if !isFinite(c.Volatility) || c.Volatility <= 0 {
		return fmt.Errorf("%w: volatility must be a positive finite number, got %g", ErrInvalidInput, c.Volatility)
	}
	if c.Type != Call && c.Type != Put {
		return fmt.Errorf("%w: unknown option type %q", ErrInvalidInput, c.Type)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
