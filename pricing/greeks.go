package pricing

import (
	"fmt"
	"math"
)

// ComputeGreeks returns delta, gamma, theta and vega for a contract. Theta is
// quoted per calendar day (annualized theta / 365), vega per 1% volatility
// move (per-unit vega / 100).
func ComputeGreeks(c Contract) (Greeks, error) {
	if err := c.Validate(); err != nil {
		return Greeks{}, err
	}

	S, K, T, r, sigma := c.Spot, c.Strike, c.TimeToExpiry, c.RiskFreeRate, c.Volatility
	d1, d2 := d1d2(S, K, T, r, sigma)
	sqrtT := math.Sqrt(T)
	discK := K * math.Exp(-r*T)

	var delta, theta float64
	if c.Type == Call {
		delta = stdNormal.CDF(d1)
		theta = (-S*stdNormal.Prob(d1)*sigma/(2*sqrtT) - r*discK*stdNormal.CDF(d2)) / 365
	} else {
		delta = stdNormal.CDF(d1) - 1
		theta = (-S*stdNormal.Prob(d1)*sigma/(2*sqrtT) + r*discK*stdNormal.CDF(-d2)) / 365
	}

	g := Greeks{
		Delta: delta,
		Gamma: stdNormal.Prob(d1) / (S * sigma * sqrtT),
		Theta: theta,
		Vega:  S * stdNormal.Prob(d1) * sqrtT / 100,
	}

	if !isFinite(g.Delta) || !isFinite(g.Gamma) || !isFinite(g.Theta) || !isFinite(g.Vega) {
		return Greeks{}, fmt.Errorf("%w: greeks %+v for S=%g K=%g T=%g r=%g sigma=%g",
			ErrDegenerate, g, S, K, T, r, sigma)
	}
	return g, nil
}
