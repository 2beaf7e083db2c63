package pricing

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"golang.org/x/exp/rand"
)

// MonteCarloPrice values a European option by simulating geometric Brownian
// motion terminal prices and discounting the mean payoff. It is a cross-check
// for the closed form, not a replacement: accuracy scales with 1/sqrt(paths).
// Results are deterministic for a fixed seed.
func MonteCarloPrice(c Contract, paths, steps int, seed uint64) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if paths <= 0 || steps <= 0 {
		return 0, fmt.Errorf("%w: paths and steps must be positive, got paths=%d steps=%d", ErrInvalidInput, paths, steps)
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > paths {
		numWorkers = paths
	}

	sums := make([]float64, numWorkers)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * paths / numWorkers
		end := (w + 1) * paths / numWorkers

		wg.Add(1)
		go func(w, n int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + uint64(w)))
			var sum float64
			for i := 0; i < n; i++ {
				sum += payoff(c, simulateTerminal(c, steps, rng))
			}
			sums[w] = sum
		}(w, end-start)
	}
	wg.Wait()

	// Sum per-worker partials in index order so the result does not depend
	// on goroutine scheduling.
	var total float64
	for _, s := range sums {
		total += s
	}

	price := math.Exp(-c.RiskFreeRate*c.TimeToExpiry) * total / float64(paths)
	if !isFinite(price) {
		return 0, fmt.Errorf("%w: monte carlo price is %g", ErrDegenerate, price)
	}
	return price, nil
}

func simulateTerminal(c Contract, steps int, rng *rand.Rand) float64 {
	dt := c.TimeToExpiry / float64(steps)
	drift := (c.RiskFreeRate - 0.5*c.Volatility*c.Volatility) * dt
	diffusion := c.Volatility * math.Sqrt(dt)

	s := c.Spot
	for i := 0; i < steps; i++ {
		s *= math.Exp(drift + diffusion*rng.NormFloat64())
	}
	return s
}

func payoff(c Contract, terminal float64) float64 {
	if c.Type == Call {
		return math.Max(0, terminal-c.Strike)
	}
	return math.Max(0, c.Strike-terminal)
}
