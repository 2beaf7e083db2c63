package surface

import "sort"

// Interpolate returns the model volatility at an off-node (strike, tenor)
// by bilinear interpolation between the four surrounding grid nodes.
// Queries outside the grid clamp to the nearest edge.
func (g *Grid) Interpolate(strike, tenorDays float64) float64 {
	nStrikes := len(g.Strikes)
	nTenors := len(g.TenorDays)

	tIdx := sort.SearchFloat64s(g.TenorDays, tenorDays)
	sIdx := sort.SearchFloat64s(g.Strikes, strike)

	// SearchFloat64s returns the insertion point; step back to the node at
	// or below the query.
	if tIdx > 0 && (tIdx == nTenors || g.TenorDays[tIdx] != tenorDays) {
		tIdx--
	}
	if sIdx > 0 && (sIdx == nStrikes || g.Strikes[sIdx] != strike) {
		sIdx--
	}

	if tIdx >= nTenors-1 && sIdx >= nStrikes-1 {
		return g.At(nTenors-1, nStrikes-1).Volatility
	}
	if tIdx >= nTenors-1 {
		return lerp(g.Strikes[sIdx], g.Strikes[sIdx+1], strike,
			g.At(nTenors-1, sIdx).Volatility, g.At(nTenors-1, sIdx+1).Volatility)
	}
	if sIdx >= nStrikes-1 {
		return lerp(g.TenorDays[tIdx], g.TenorDays[tIdx+1], tenorDays,
			g.At(tIdx, nStrikes-1).Volatility, g.At(tIdx+1, nStrikes-1).Volatility)
	}

	t0, t1 := g.TenorDays[tIdx], g.TenorDays[tIdx+1]
	s0, s1 := g.Strikes[sIdx], g.Strikes[sIdx+1]

	v00 := g.At(tIdx, sIdx).Volatility
	v01 := g.At(tIdx, sIdx+1).Volatility
	v10 := g.At(tIdx+1, sIdx).Volatility
	v11 := g.At(tIdx+1, sIdx+1).Volatility

	xt := clampUnit((tenorDays - t0) / (t1 - t0))
	xs := clampUnit((strike - s0) / (s1 - s0))

	return (1-xt)*(1-xs)*v00 + xt*(1-xs)*v10 + (1-xt)*xs*v01 + xt*xs*v11
}

func lerp(x0, x1, x, v0, v1 float64) float64 {
	return v0 + clampUnit((x-x0)/(x1-x0))*(v1-v0)
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
