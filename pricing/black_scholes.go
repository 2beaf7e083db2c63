package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.UnitNormal

// Price returns the Black-Scholes value of a European option.
func Price(c Contract) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	price := bsPrice(c.Spot, c.Strike, c.TimeToExpiry, c.RiskFreeRate, c.Volatility, c.Type == Call)
	if !isFinite(price) {
		return 0, fmt.Errorf("%w: price is %g for S=%g K=%g T=%g r=%g sigma=%g",
			ErrDegenerate, price, c.Spot, c.Strike, c.TimeToExpiry, c.RiskFreeRate, c.Volatility)
	}
	return price, nil
}

func bsPrice(S, K, T, r, sigma float64, isCall bool) float64 {
	d1, d2 := d1d2(S, K, T, r, sigma)
	if isCall {
		return S*stdNormal.CDF(d1) - K*math.Exp(-r*T)*stdNormal.CDF(d2)
	}
	return K*math.Exp(-r*T)*stdNormal.CDF(-d2) - S*stdNormal.CDF(-d1)
}

func d1d2(S, K, T, r, sigma float64) (float64, float64) {
	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	return d1, d1 - sigma*math.Sqrt(T)
}
