package pricing

import (
	"fmt"
	"math"
)

const (
	// Search interval: 0.1% to 500% annualized.
	ivLowerBound = 0.001
	ivUpperBound = 5.0

	maxIterations = 100
	ivTolerance   = 1e-8

	machEps = 2.220446049250313e-16
)

// ImpliedVolatility inverts the Black-Scholes price to the volatility that
// reproduces observedPrice, using Brent's method over [0.001, 5.0]. When the
// observed price is unreachable inside that interval the result is
// ErrNotBracketed, never a default value.
func ImpliedVolatility(observedPrice, spot, strike, timeToExpiry, riskFreeRate float64, optionType OptionType) (float64, error) {
	// Volatility is the unknown here; validate the rest of the contract
	// with a placeholder inside the search interval.
	probe := Contract{
		Spot:         spot,
		Strike:       strike,
		TimeToExpiry: timeToExpiry,
		RiskFreeRate: riskFreeRate,
		Volatility:   ivLowerBound,
		Type:         optionType,
	}
	if err := probe.Validate(); err != nil {
		return 0, err
	}
	if !isFinite(observedPrice) || observedPrice < 0 {
		return 0, fmt.Errorf("%w: observed price must be a non-negative finite number, got %g", ErrInvalidInput, observedPrice)
	}

	isCall := optionType == Call
	objective := func(sigma float64) float64 {
		return bsPrice(spot, strike, timeToExpiry, riskFreeRate, sigma, isCall) - observedPrice
	}

	fLow := objective(ivLowerBound)
	fHigh := objective(ivUpperBound)
	if !isFinite(fLow) || !isFinite(fHigh) {
		return 0, fmt.Errorf("%w: objective non-finite at interval endpoints", ErrDegenerate)
	}
	if (fLow > 0 && fHigh > 0) || (fLow < 0 && fHigh < 0) {
		return 0, fmt.Errorf("%w: price %g unreachable for sigma in [%g, %g]",
			ErrNotBracketed, observedPrice, ivLowerBound, ivUpperBound)
	}

	return brent(objective, ivLowerBound, ivUpperBound, fLow, fHigh)
}

// brent finds a root of f on [x1, x2] given f(x1) and f(x2) with opposite
// signs, combining bisection, secant and inverse quadratic interpolation.
func brent(f func(float64) float64, x1, x2, f1, f2 float64) (float64, error) {
	a, b, c := x1, x2, x2
	fa, fb, fc := f1, f2, f2
	var d, e float64

	for iter := 0; iter < maxIterations; iter++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*machEps*math.Abs(b) + 0.5*ivTolerance
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				// Interpolation failed, fall back to bisection.
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}

	return 0, fmt.Errorf("%w: root finder did not converge in %d iterations", ErrDegenerate, maxIterations)
}
