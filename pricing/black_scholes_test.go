package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func randomContract(rng *rand.Rand, optionType OptionType) Contract {
	return Contract{
		Spot:         50 + 100*rng.Float64(),
		Strike:       50 + 100*rng.Float64(),
		TimeToExpiry: 0.05 + 1.95*rng.Float64(),
		RiskFreeRate: 0.1 * rng.Float64(),
		Volatility:   0.05 + 0.75*rng.Float64(),
		Type:         optionType,
	}
}

func TestPriceReferenceCase(t *testing.T) {
	// S=100, K=100, T=0.25, r=5%, sigma=20%
	call := Contract{Spot: 100, Strike: 100, TimeToExpiry: 0.25, RiskFreeRate: 0.05, Volatility: 0.20, Type: Call}

	price, err := Price(call)
	require.NoError(t, err)
	assert.InDelta(t, 4.6150, price, 1e-3)

	put := call
	put.Type = Put
	putPrice, err := Price(put)
	require.NoError(t, err)
	assert.InDelta(t, 3.3726, putPrice, 1e-3)
}

func TestPutCallParity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		call := randomContract(rng, Call)
		put := call
		put.Type = Put

		callPrice, err := Price(call)
		require.NoError(t, err)
		putPrice, err := Price(put)
		require.NoError(t, err)

		parity := call.Spot - call.Strike*math.Exp(-call.RiskFreeRate*call.TimeToExpiry)
		assert.InDelta(t, parity, callPrice-putPrice, 1e-8,
			"parity violated for %+v", call)
	}
}

func TestPriceBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		c := randomContract(rng, Call)
		discK := c.Strike * math.Exp(-c.RiskFreeRate*c.TimeToExpiry)

		callPrice, err := Price(c)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, callPrice, math.Max(0, c.Spot-discK)-1e-9)
		assert.LessOrEqual(t, callPrice, c.Spot+1e-9)

		p := c
		p.Type = Put
		putPrice, err := Price(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, putPrice, math.Max(0, discK-c.Spot)-1e-9)
		assert.LessOrEqual(t, putPrice, discK+1e-9)
	}
}

func TestPriceMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		c := randomContract(rng, Call)

		base, err := Price(c)
		require.NoError(t, err)

		bumpedVol := c
		bumpedVol.Volatility += 0.05
		higherVol, err := Price(bumpedVol)
		require.NoError(t, err)
		assert.Greater(t, higherVol, base, "call not increasing in vol for %+v", c)

		bumpedSpot := c
		bumpedSpot.Spot *= 1.05
		higherSpot, err := Price(bumpedSpot)
		require.NoError(t, err)
		assert.Greater(t, higherSpot, base, "call not increasing in spot for %+v", c)

		p := c
		p.Type = Put
		putBase, err := Price(p)
		require.NoError(t, err)

		putBumpedVol := p
		putBumpedVol.Volatility += 0.05
		putHigherVol, err := Price(putBumpedVol)
		require.NoError(t, err)
		assert.Greater(t, putHigherVol, putBase, "put not increasing in vol for %+v", p)

		putBumpedSpot := p
		putBumpedSpot.Spot *= 1.05
		putLowerSpot, err := Price(putBumpedSpot)
		require.NoError(t, err)
		assert.Less(t, putLowerSpot, putBase, "put not decreasing in spot for %+v", p)
	}
}

func TestPriceRejectsInvalidInputs(t *testing.T) {
	valid := Contract{Spot: 100, Strike: 100, TimeToExpiry: 0.25, RiskFreeRate: 0.05, Volatility: 0.20, Type: Call}

	cases := []struct {
		name   string
		mutate func(*Contract)
	}{
		{"zero spot", func(c *Contract) { c.Spot = 0 }},
		{"negative spot", func(c *Contract) { c.Spot = -100 }},
		{"zero strike", func(c *Contract) { c.Strike = 0 }},
		{"zero time", func(c *Contract) { c.TimeToExpiry = 0 }},
		{"negative rate", func(c *Contract) { c.RiskFreeRate = -0.01 }},
		{"zero vol", func(c *Contract) { c.Volatility = 0 }},
		{"nan spot", func(c *Contract) { c.Spot = math.NaN() }},
		{"inf strike", func(c *Contract) { c.Strike = math.Inf(1) }},
		{"unknown type", func(c *Contract) { c.Type = "straddle" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			_, err := Price(c)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// The valid contract itself must pass.
	_, err := Price(valid)
	require.NoError(t, err)
}

func TestPriceDeterminism(t *testing.T) {
	c := Contract{Spot: 100, Strike: 105, TimeToExpiry: 0.5, RiskFreeRate: 0.03, Volatility: 0.25, Type: Put}

	first, err := Price(c)
	require.NoError(t, err)
	second, err := Price(c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
